package components

import (
	"fmt"

	"github.com/spaghettifunk/gfxlabs/engine/math"
)

// DirectionalLight lights the whole scene from one direction, like the sun.
type DirectionalLight struct {
	Direction math.Vec3
	Colour    math.Vec3
}

func NewDirectionalLight(direction, colour math.Vec3) (*DirectionalLight, error) {
	d, err := direction.Normalize()
	if err != nil {
		return nil, fmt.Errorf("light direction: %w", err)
	}
	return &DirectionalLight{Direction: d, Colour: colour}, nil
}

// ViewDirection returns the light direction in camera space, which is what
// the lighting shader works in.
func (l *DirectionalLight) ViewDirection(view math.Mat4) math.Vec3 {
	d, err := view.TransformDirection(l.Direction).Normalize()
	if err != nil {
		return l.Direction
	}
	return d
}
