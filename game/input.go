package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/physics"
)

// frameTime returns the wall-clock duration of the last frame in seconds.
func frameTime() float32 {
	return rl.GetFrameTime()
}

// sampleIntent reads the held movement keys once for this frame. WASD, HJKL
// and the arrow keys all steer; Shift or the left mouse button boosts.
func sampleIntent() physics.Intent {
	return physics.Intent{
		Up:    rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyK) || rl.IsKeyDown(rl.KeyUp),
		Down:  rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyJ) || rl.IsKeyDown(rl.KeyDown),
		Left:  rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyH) || rl.IsKeyDown(rl.KeyLeft),
		Right: rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyL) || rl.IsKeyDown(rl.KeyRight),
		Boost: rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) ||
			rl.IsMouseButtonDown(rl.MouseButtonLeft),
	}
}

// handleInput processes non-movement keys.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.resetBody()
	}

	if rl.IsKeyPressed(rl.KeyF1) {
		g.debugMode = !g.debugMode
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.hud.visible = !g.hud.visible
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}
}
