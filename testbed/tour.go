package testbed

import "github.com/spaghettifunk/gfxlabs/engine/core"

func hold(key core.KeyCode, frames int) []core.InputFrame {
	out := make([]core.InputFrame, frames)
	out[0].Press = []core.KeyCode{key}
	out[frames-1].Release = []core.KeyCode{key}
	return out
}

func look(dx, dy float32, frames int) []core.InputFrame {
	out := make([]core.InputFrame, frames)
	for i := range out {
		out[i].MouseDX = dx
		out[i].MouseDY = dy
	}
	return out
}

// NewTourInput scripts a looping walk around the cube scene for headless
// runs: forward, a turn to the right, a strafe, a look up and back down, then
// a reset to the start.
func NewTourInput() *core.ScriptedInput {
	var frames []core.InputFrame
	frames = append(frames, hold(core.KEY_W, 60)...)
	frames = append(frames, look(4, 0, 40)...)
	frames = append(frames, hold(core.KEY_D, 30)...)
	frames = append(frames, look(0, -3, 30)...)
	frames = append(frames, look(0, 3, 30)...)
	frames = append(frames, hold(core.KEY_R, 2)...)
	si := core.NewScriptedInput(frames...)
	si.Loop = true
	return si
}
