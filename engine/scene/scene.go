package scene

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/gfxlabs/engine/config"
	"github.com/spaghettifunk/gfxlabs/engine/core"
	"github.com/spaghettifunk/gfxlabs/engine/math"
	"github.com/spaghettifunk/gfxlabs/engine/renderer/components"
	"github.com/spaghettifunk/gfxlabs/engine/renderer/metadata"
)

// Object is a mesh placed in the world by a transform.
type Object struct {
	ID        uuid.UUID
	Name      string
	Mesh      string
	Transform math.Transform
	// Spin is added to the transform angle every second, in radians.
	Spin float32
}

func (o *Object) Update(deltaTime float32) {
	if o.Spin != 0 {
		o.Transform.Rotate(o.Spin * deltaTime)
	}
}

// RenderData builds the model matrix for this frame.
func (o *Object) RenderData() (metadata.GeometryRenderData, error) {
	model, err := o.Transform.Model()
	if err != nil {
		return metadata.GeometryRenderData{}, fmt.Errorf("object '%s': %w", o.Name, err)
	}
	return metadata.GeometryRenderData{Model: model, Mesh: o.Mesh, UniqueID: o.ID}, nil
}

// Scene holds the objects and lights of the cube lab.
type Scene struct {
	Objects []*Object
	Lights  []*components.DirectionalLight

	ids *core.Identifiers
}

func NewScene() *Scene {
	return &Scene{ids: core.NewIdentifiers()}
}

// NewSceneFromConfig creates the objects and lights listed in cfg.
func NewSceneFromConfig(cfg *config.Config) (*Scene, error) {
	s := NewScene()
	for _, oc := range cfg.Objects {
		s.Add(oc.Name, oc.Mesh, math.TransformFromPositionRotationScale(
			config.Vec3(oc.Position),
			config.Vec3(oc.Axis),
			math.DegToRad(oc.AngleDegrees),
			config.Vec3(oc.Scale),
		)).Spin = math.DegToRad(oc.SpinDegrees)
	}
	for i, lc := range cfg.Lights {
		l, err := components.NewDirectionalLight(config.Vec3(lc.Direction), config.Vec3(lc.Colour))
		if err != nil {
			return nil, fmt.Errorf("lights[%d]: %w", i, err)
		}
		s.Lights = append(s.Lights, l)
	}
	core.LogDebug("scene created with %d objects and %d lights", len(s.Objects), len(s.Lights))
	return s, nil
}

func (s *Scene) Add(name, mesh string, transform math.Transform) *Object {
	o := &Object{Name: name, Mesh: mesh, Transform: transform}
	o.ID = s.ids.AcquireNewID(o)
	s.Objects = append(s.Objects, o)
	return o
}

func (s *Scene) Find(id uuid.UUID) (*Object, bool) {
	owner, ok := s.ids.Owner(id)
	if !ok {
		return nil, false
	}
	return owner.(*Object), true
}

func (s *Scene) Remove(id uuid.UUID) error {
	if err := s.ids.ReleaseID(id); err != nil {
		return err
	}
	for i, o := range s.Objects {
		if o.ID == id {
			s.Objects = append(s.Objects[:i], s.Objects[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Scene) Update(deltaTime float32) {
	for _, o := range s.Objects {
		o.Update(deltaTime)
	}
}

// Geometries returns the render data of every object, in insertion order.
func (s *Scene) Geometries() ([]metadata.GeometryRenderData, error) {
	out := make([]metadata.GeometryRenderData, 0, len(s.Objects))
	for _, o := range s.Objects {
		g, err := o.RenderData()
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}
