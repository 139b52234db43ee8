package views

import (
	"fmt"

	"github.com/spaghettifunk/gfxlabs/engine/math"
	"github.com/spaghettifunk/gfxlabs/engine/renderer"
	"github.com/spaghettifunk/gfxlabs/engine/renderer/components"
	"github.com/spaghettifunk/gfxlabs/engine/renderer/metadata"
)

const WORLD_VIEW_NAME = "world"

// RenderViewWorld draws lit objects through a camera with a perspective
// projection. The projection is rebuilt on resize.
type RenderViewWorld struct {
	FOV        float32
	NearClip   float32
	FarClip    float32
	Width      uint32
	Height     uint32
	Projection math.Mat4

	WorldCamera *components.Camera
	// UseQuaternionView builds the view matrix from the camera orientation
	// quaternion instead of the look-at basis.
	UseQuaternionView bool
}

func NewRenderViewWorld(camera *components.Camera, fov, nearClip, farClip float32, width, height uint32) (*RenderViewWorld, error) {
	vw := &RenderViewWorld{
		FOV:         fov,
		NearClip:    nearClip,
		FarClip:     farClip,
		WorldCamera: camera,
	}
	if err := vw.OnResize(width, height); err != nil {
		return nil, err
	}
	return vw, nil
}

func (vw *RenderViewWorld) Name() string {
	return WORLD_VIEW_NAME
}

func (vw *RenderViewWorld) OnResize(width, height uint32) error {
	if height == 0 {
		return fmt.Errorf("world view height must be positive: %w", math.ErrInvalidArgument)
	}
	aspect := float32(width) / float32(height)
	projection, err := vw.WorldCamera.Projection(vw.FOV, aspect, vw.NearClip, vw.FarClip)
	if err != nil {
		return err
	}
	vw.Width = width
	vw.Height = height
	vw.Projection = projection
	return nil
}

// SetCamera switches the camera the view looks through.
func (vw *RenderViewWorld) SetCamera(camera *components.Camera) {
	vw.WorldCamera = camera
}

// SetPerspective changes the frustum and rebuilds the projection.
func (vw *RenderViewWorld) SetPerspective(fov, nearClip, farClip float32) error {
	projection, err := vw.WorldCamera.Projection(fov, float32(vw.Width)/float32(vw.Height), nearClip, farClip)
	if err != nil {
		return err
	}
	vw.FOV, vw.NearClip, vw.FarClip = fov, nearClip, farClip
	vw.Projection = projection
	return nil
}

func (vw *RenderViewWorld) OnBuildPacket(geometries []metadata.GeometryRenderData, lights []*components.DirectionalLight) *metadata.RenderViewPacket {
	view := vw.WorldCamera.View()
	if vw.UseQuaternionView {
		view = vw.WorldCamera.QuaternionView()
	}
	packet := &metadata.RenderViewPacket{
		ViewName:         vw.Name(),
		RenderViewType:   metadata.RENDERER_VIEW_KNOWN_TYPE_WORLD,
		ViewMatrix:       view,
		ProjectionMatrix: vw.Projection,
		ViewPosition:     vw.WorldCamera.GetPosition(),
		Geometries:       geometries,
	}
	for _, l := range lights {
		packet.Lights = append(packet.Lights, metadata.LightRenderData{Direction: l.Direction, Colour: l.Colour})
	}
	return packet
}

// OnRender uploads V, the eye and the first light once, then MV and MVP for
// every geometry before drawing it. The light direction is sent in view space.
func (vw *RenderViewWorld) OnRender(backend renderer.RendererBackend, packet *metadata.RenderViewPacket) error {
	view := packet.ViewMatrix
	if err := backend.SetUniformMat4(renderer.UNIFORM_VIEW, view); err != nil {
		return err
	}
	if err := backend.SetUniformVec3(renderer.UNIFORM_EYE, packet.ViewPosition); err != nil {
		return err
	}
	if len(packet.Lights) > 0 {
		light := components.DirectionalLight{Direction: packet.Lights[0].Direction, Colour: packet.Lights[0].Colour}
		if err := backend.SetUniformVec3(renderer.UNIFORM_LIGHT_DIRECTION, light.ViewDirection(view)); err != nil {
			return err
		}
		if err := backend.SetUniformVec3(renderer.UNIFORM_LIGHT_COLOUR, light.Colour); err != nil {
			return err
		}
	}

	viewProjection := packet.ProjectionMatrix.Mul(view)
	for _, g := range packet.Geometries {
		if err := backend.SetUniformMat4(renderer.UNIFORM_MODEL_VIEW, view.Mul(g.Model)); err != nil {
			return err
		}
		if err := backend.SetUniformMat4(renderer.UNIFORM_MVP, viewProjection.Mul(g.Model)); err != nil {
			return err
		}
		if err := backend.DrawMesh(g.Mesh); err != nil {
			return err
		}
	}
	return nil
}
