// Package config provides configuration loading and access for the sandbox.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Configuration-time failure classes. Both are rejected before any tick
// runs; the physics core assumes the invariants hold and never re-validates.
var (
	// ErrInvalidFriction reports a friction coefficient outside (0,1].
	ErrInvalidFriction = errors.New("friction must be in (0,1]")

	// ErrDegenerateBounds reports a world too small to contain the body:
	// no valid resting position exists on at least one axis.
	ErrDegenerateBounds = errors.New("world bounds smaller than 2*(extent+margin)")
)

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the world rectangle and boundary margin.
// World can differ from the screen; 0 means use the screen dimension.
type WorldConfig struct {
	Width  int     `yaml:"width"`  // World width in world units (0 = screen width)
	Height int     `yaml:"height"` // World height in world units (0 = screen height)
	Margin float64 `yaml:"margin"` // Inset from the world edge, added to the body extent
}

// PhysicsConfig holds the motion parameters. All are fixed at startup; the
// running simulation never reconfigures them (reset constructs new params).
type PhysicsConfig struct {
	DT          float64 `yaml:"dt"`          // Fixed timestep in seconds
	Friction    float64 `yaml:"friction"`    // Velocity retention per tick, in (0,1]
	InputForce  float64 `yaml:"input_force"` // Acceleration per held direction (units/s^2)
	InputBoost  float64 `yaml:"input_boost"` // Force multiplier while boost is held
	Restitution float64 `yaml:"restitution"` // Reflected-velocity scale on wall hits, in [0,1]
	Extent      float64 `yaml:"extent"`      // Half-size of the body's bounding box
	MaxSpeed    float64 `yaml:"max_speed"`   // Hard speed cap (0 = uncapped)
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Window length in simulation seconds
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32      float32 // Physics.DT as float32
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	WorldW32  float32 // Effective world width as float32
	WorldH32  float32 // Effective world height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The result is validated
// before any derived value is computed.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects configurations the physics core is not defined over.
func (c *Config) Validate() error {
	p := c.Physics

	if p.DT <= 0 {
		return fmt.Errorf("physics.dt must be positive, got %v", p.DT)
	}
	if p.Friction <= 0 || p.Friction > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidFriction, p.Friction)
	}
	if p.InputForce < 0 {
		return fmt.Errorf("physics.input_force must be non-negative, got %v", p.InputForce)
	}
	if p.InputBoost < 1 {
		return fmt.Errorf("physics.input_boost must be at least 1, got %v", p.InputBoost)
	}
	if p.Restitution < 0 || p.Restitution > 1 {
		return fmt.Errorf("physics.restitution must be in [0,1], got %v", p.Restitution)
	}
	if p.Extent <= 0 {
		return fmt.Errorf("physics.extent must be positive, got %v", p.Extent)
	}
	if p.MaxSpeed < 0 {
		return fmt.Errorf("physics.max_speed must be non-negative, got %v", p.MaxSpeed)
	}
	if c.World.Margin < 0 {
		return fmt.Errorf("world.margin must be non-negative, got %v", c.World.Margin)
	}
	if c.Telemetry.StatsWindow <= 0 {
		return fmt.Errorf("telemetry.stats_window must be positive, got %v", c.Telemetry.StatsWindow)
	}

	worldW, worldH := c.effectiveWorldSize()
	needed := 2 * (p.Extent + c.World.Margin)
	if float64(worldW) < needed || float64(worldH) < needed {
		return fmt.Errorf("%w: world %dx%d, need at least %v per axis",
			ErrDegenerateBounds, worldW, worldH, needed)
	}

	return nil
}

// effectiveWorldSize resolves 0-valued world dimensions to the screen size.
func (c *Config) effectiveWorldSize() (int, int) {
	w := c.World.Width
	if w == 0 {
		w = c.Screen.Width
	}
	h := c.World.Height
	if h == 0 {
		h = c.Screen.Height
	}
	return w, h
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	worldW, worldH := c.effectiveWorldSize()
	c.Derived.WorldW32 = float32(worldW)
	c.Derived.WorldH32 = float32(worldH)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
