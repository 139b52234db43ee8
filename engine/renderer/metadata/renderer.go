package metadata

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/gfxlabs/engine/math"
)

/**
 * @brief A structure which is generated by the application and sent once
 * to the renderer to render a given frame. Consists of any data required,
 * such as delta time and a collection of views to be rendered.
 */
type RenderPacket struct {
	DeltaTime float64
	/** An array of ViewPackets to be rendered. */
	ViewPackets []*RenderViewPacket
}

/** @brief Known render view types, which have logic associated with them. */
type RenderViewKnownType int

const (
	/** @brief A perspective view of lit 3D objects seen through a camera. */
	RENDERER_VIEW_KNOWN_TYPE_WORLD RenderViewKnownType = 0x01
	/** @brief A flat view of sprites placed directly in clip space. */
	RENDERER_VIEW_KNOWN_TYPE_SPRITE RenderViewKnownType = 0x02
)

func (t RenderViewKnownType) String() string {
	switch t {
	case RENDERER_VIEW_KNOWN_TYPE_WORLD:
		return "world"
	case RENDERER_VIEW_KNOWN_TYPE_SPRITE:
		return "sprite"
	}
	return "unknown"
}

/**
 * @brief A packet for and generated by a render view, which contains
 * data about what is to be rendered.
 */
type RenderViewPacket struct {
	/** @brief The name of the view this packet is associated with. */
	ViewName string
	/** @brief The known type of the view that built the packet. */
	RenderViewType RenderViewKnownType
	/** @brief The current view matrix. */
	ViewMatrix math.Mat4
	/** @brief The current projection matrix. */
	ProjectionMatrix math.Mat4
	/** @brief The current view position, if applicable. */
	ViewPosition math.Vec3
	/** @brief Directional lights, in world space. */
	Lights []LightRenderData
	/** @brief The Geometries to be drawn. */
	Geometries []GeometryRenderData
}

type LightRenderData struct {
	Direction math.Vec3
	Colour    math.Vec3
}

type GeometryRenderData struct {
	Model math.Mat4
	/** @brief The name of the mesh the backend draws with this model matrix. */
	Mesh     string
	UniqueID uuid.UUID
}
