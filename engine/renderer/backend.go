package renderer

import "github.com/spaghettifunk/gfxlabs/engine/math"

// Uniform names shared with the shaders.
const (
	UNIFORM_VIEW            = "V"
	UNIFORM_MODEL_VIEW      = "MV"
	UNIFORM_MVP             = "MVP"
	UNIFORM_TRANSFORMATION  = "transformation"
	UNIFORM_LIGHT_DIRECTION = "lightDirection"
	UNIFORM_LIGHT_COLOUR    = "lightColour"
	UNIFORM_EYE             = "eye"
)

// RendererBackend is the graphics API behind the renderer. Matrices are handed
// over column-major, ready for upload.
type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint16) error
	BeginFrame(deltaTime float64) error
	SetUniformMat4(name string, value math.Mat4) error
	SetUniformVec3(name string, value math.Vec3) error
	DrawMesh(name string) error
	EndFrame(deltaTime float64) error
}
