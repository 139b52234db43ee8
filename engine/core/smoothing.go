package core

import "github.com/charmbracelet/harmonica"

type springAxis struct {
	pos, vel, target float64
}

// step advances the axis one frame and returns how far it moved.
func (a *springAxis) step(s harmonica.Spring) float64 {
	prev := a.pos
	a.pos, a.vel = s.Update(a.pos, a.vel, a.target)
	return a.pos - prev
}

// LookSmoother eases mouse-look input. Raw yaw/pitch deltas are added to a
// target and a critically damped spring moves towards it, so Step returns
// smaller deltas spread over the following frames instead of one jump.
type LookSmoother struct {
	spring     harmonica.Spring
	yaw, pitch springAxis
}

// NewLookSmoother creates a smoother for a loop running at fps frames per second.
func NewLookSmoother(fps int) *LookSmoother {
	return &LookSmoother{
		// frequency 4, damping 1: moderate speed, no overshoot
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

func (ls *LookSmoother) Feed(dYaw, dPitch float32) {
	ls.yaw.target += float64(dYaw)
	ls.pitch.target += float64(dPitch)
}

// Step returns the yaw and pitch deltas to apply this frame.
func (ls *LookSmoother) Step() (float32, float32) {
	return float32(ls.yaw.step(ls.spring)), float32(ls.pitch.step(ls.spring))
}

// Pending returns the input that has been fed but not yet handed out by Step.
func (ls *LookSmoother) Pending() (float32, float32) {
	return float32(ls.yaw.target - ls.yaw.pos), float32(ls.pitch.target - ls.pitch.pos)
}

func (ls *LookSmoother) Reset() {
	ls.yaw = springAxis{}
	ls.pitch = springAxis{}
}
