package config

import (
	"errors"
	"math"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("screen = %dx%d, want 1280x720", cfg.Screen.Width, cfg.Screen.Height)
	}
	if math.Abs(cfg.Physics.Friction-0.95) > 1e-9 {
		t.Errorf("friction = %v, want 0.95", cfg.Physics.Friction)
	}
	if math.Abs(cfg.Physics.InputForce-500) > 1e-9 {
		t.Errorf("input_force = %v, want 500", cfg.Physics.InputForce)
	}
	if math.Abs(cfg.Physics.DT-1.0/60.0) > 1e-9 {
		t.Errorf("dt = %v, want 1/60", cfg.Physics.DT)
	}

	// World defaults to screen size
	if cfg.Derived.WorldW32 != 1280 || cfg.Derived.WorldH32 != 720 {
		t.Errorf("derived world = %vx%v, want 1280x720", cfg.Derived.WorldW32, cfg.Derived.WorldH32)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load(\"\") = %v", err)
		}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "zero friction rejected",
			mutate:  func(c *Config) { c.Physics.Friction = 0 },
			wantErr: ErrInvalidFriction,
		},
		{
			name:    "negative friction rejected",
			mutate:  func(c *Config) { c.Physics.Friction = -0.5 },
			wantErr: ErrInvalidFriction,
		},
		{
			name:    "friction above one rejected",
			mutate:  func(c *Config) { c.Physics.Friction = 1.05 },
			wantErr: ErrInvalidFriction,
		},
		{
			name: "world too small for body rejected",
			mutate: func(c *Config) {
				c.World.Width = 100
				c.World.Height = 100
			},
			wantErr: ErrDegenerateBounds,
		},
		{
			name: "world too small on one axis rejected",
			mutate: func(c *Config) {
				c.World.Width = 800
				c.World.Height = 140
			},
			wantErr: ErrDegenerateBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"defaults", func(c *Config) {}},
		{"friction exactly one", func(c *Config) { c.Physics.Friction = 1.0 }},
		{"inelastic restitution", func(c *Config) { c.Physics.Restitution = 0 }},
		{"zero input force", func(c *Config) { c.Physics.InputForce = 0 }},
		{"world exactly fits body", func(c *Config) {
			c.World.Width = 150
			c.World.Height = 150
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load(\"\") = %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
