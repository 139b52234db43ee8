package views

import (
	"github.com/spaghettifunk/gfxlabs/engine/math"
	"github.com/spaghettifunk/gfxlabs/engine/renderer"
	"github.com/spaghettifunk/gfxlabs/engine/renderer/metadata"
)

const SPRITE_VIEW_NAME = "sprite"

// RenderViewSprite draws textured quads whose model matrix maps them straight
// into clip space; there is no camera.
type RenderViewSprite struct{}

func (vs *RenderViewSprite) Name() string {
	return SPRITE_VIEW_NAME
}

func (vs *RenderViewSprite) OnResize(width, height uint32) error {
	return nil
}

func (vs *RenderViewSprite) OnBuildPacket(geometries []metadata.GeometryRenderData) *metadata.RenderViewPacket {
	return &metadata.RenderViewPacket{
		ViewName:         vs.Name(),
		RenderViewType:   metadata.RENDERER_VIEW_KNOWN_TYPE_SPRITE,
		ViewMatrix:       math.NewMat4Identity(),
		ProjectionMatrix: math.NewMat4Identity(),
		Geometries:       geometries,
	}
}

func (vs *RenderViewSprite) OnRender(backend renderer.RendererBackend, packet *metadata.RenderViewPacket) error {
	for _, g := range packet.Geometries {
		if err := backend.SetUniformMat4(renderer.UNIFORM_TRANSFORMATION, g.Model); err != nil {
			return err
		}
		if err := backend.DrawMesh(g.Mesh); err != nil {
			return err
		}
	}
	return nil
}
