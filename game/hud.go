package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/physics"
)

// hudState holds pending parameter edits. The sliders never touch the live
// Params value; edits are staged here and applied on the next reset so the
// running core keeps its no-hot-reconfiguration contract.
type hudState struct {
	visible bool

	friction    float32
	force       float32
	restitution float32
}

func newHUDState(cfg *config.Config) *hudState {
	return &hudState{
		friction:    float32(cfg.Physics.Friction),
		force:       float32(cfg.Physics.InputForce),
		restitution: float32(cfg.Physics.Restitution),
	}
}

// apply folds the staged edits into a fresh Params value.
func (h *hudState) apply(p physics.Params) physics.Params {
	p.InputForce = h.force
	p.Restitution = h.restitution
	return p
}

// draw renders the parameter panel. Toggled with Tab.
func (h *hudState) draw(g *Game) {
	if !h.visible {
		return
	}

	panelX := g.cfg.Derived.ScreenW32 - 280
	panelY := float32(10)

	rl.DrawRectangle(int32(panelX)-10, int32(panelY)-5, 280, 180, rl.NewColor(0, 0, 0, 170))
	rl.DrawText("Parameters (applied on reset, R)", int32(panelX), int32(panelY), 14, rl.LightGray)
	panelY += 25

	slider := func(label string, value, minVal, maxVal float32, format string) float32 {
		rl.DrawText(label, int32(panelX), int32(panelY), 12, rl.Gray)
		panelY += 16
		v := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: 200, Height: 18},
			"", "",
			value, minVal, maxVal,
		)
		rl.DrawText(fmt.Sprintf(format, v), int32(panelX+210), int32(panelY+2), 14, rl.LightGray)
		panelY += 28
		return v
	}

	h.friction = slider("friction (velocity retention)", h.friction, 0.5, 1.0, "%.3f")
	h.force = slider("input force", h.force, 0, 3000, "%.0f")
	h.restitution = slider("restitution", h.restitution, 0, 1, "%.2f")

	terminal := h.force * g.params.DT / (1 - h.friction + 1e-6)
	rl.DrawText(fmt.Sprintf("terminal speed ~%.0f u/s", terminal), int32(panelX), int32(panelY), 12, rl.Gray)
}
