package game

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/physics"
)

var (
	backgroundColor = rl.NewColor(18, 18, 24, 255)
	wallColor       = rl.NewColor(90, 95, 110, 255)
	marginColor     = rl.NewColor(45, 48, 58, 255)
	cubeColor       = rl.NewColor(64, 64, 191, 255)
	boostColor      = rl.NewColor(230, 64, 191, 255)
	velocityColor   = rl.NewColor(240, 200, 80, 255)
)

// cubeTint picks the body color for the frame's input snapshot.
func cubeTint(in physics.Intent) rl.Color {
	if in.Boost {
		return boostColor
	}
	return cubeColor
}

// toScreen maps a world-space point (origin at world center) to screen
// coordinates.
func (g *Game) toScreen(p physics.Vec2) rl.Vector2 {
	return rl.Vector2{
		X: g.cfg.Derived.ScreenW32/2 + p.X,
		Y: g.cfg.Derived.ScreenH32/2 + p.Y,
	}
}

// drawRect outlines a world-space rectangle on screen.
func (g *Game) drawRect(r physics.Rect, color rl.Color) {
	min := g.toScreen(r.Min)
	rl.DrawRectangleLines(int32(min.X), int32(min.Y), int32(r.Width()), int32(r.Height()), color)
}

// Draw renders one frame. It only reads physics state.
func (g *Game) Draw() {
	start := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	// World edge and the margin the body keeps from it
	g.drawRect(g.params.World, wallColor)
	g.drawRect(g.params.World.Inset(g.params.Margin), marginColor)

	// The cube
	half := g.body.Extent
	corner := g.toScreen(g.body.Pos.Sub(physics.Vec2{X: half, Y: half}))
	rl.DrawRectangleV(corner, rl.Vector2{X: half * 2, Y: half * 2}, cubeTint(g.intent))

	if g.debugMode {
		g.drawDebug()
	}
	g.hud.draw(g)

	if g.paused {
		rl.DrawText("PAUSED", int32(g.cfg.Screen.Width)/2-60, 20, 30, rl.Gray)
	}

	rl.EndDrawing()

	g.perf.Record("draw", time.Since(start))
}

// drawDebug overlays the effective bounds, the velocity vector, and the raw
// body state.
func (g *Game) drawDebug() {
	g.drawRect(g.params.Effective(&g.body), rl.NewColor(80, 160, 80, 255))

	// Velocity vector, scaled down so the terminal speed stays on screen
	center := g.toScreen(g.body.Pos)
	tip := g.toScreen(g.body.Pos.Add(g.body.Vel.Scale(0.5)))
	rl.DrawLineEx(center, tip, 2, velocityColor)

	lines := []string{
		fmt.Sprintf("tick %d", g.tick),
		fmt.Sprintf("pos (%.1f, %.1f)", g.body.Pos.X, g.body.Pos.Y),
		fmt.Sprintf("vel (%.1f, %.1f) |v| %.1f", g.body.Vel.X, g.body.Vel.Y, g.body.Vel.Length()),
		fmt.Sprintf("step %s  draw %s",
			g.perf.Avg("step").Round(time.Microsecond),
			g.perf.Avg("draw").Round(time.Microsecond)),
	}
	for i, line := range lines {
		rl.DrawText(line, 10, int32(10+i*18), 16, rl.RayWhite)
	}
}
