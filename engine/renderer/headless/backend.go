package headless

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/gfxlabs/engine/containers"
	"github.com/spaghettifunk/gfxlabs/engine/core"
	"github.com/spaghettifunk/gfxlabs/engine/math"
)

var (
	ErrNotInitialized = errors.New("headless renderer not initialized")
	ErrNotInFrame     = errors.New("call outside BeginFrame/EndFrame")
)

type Op int

const (
	OpSetUniformMat4 Op = iota
	OpSetUniformVec3
	OpDrawMesh
)

func (o Op) String() string {
	switch o {
	case OpSetUniformMat4:
		return "mat4"
	case OpSetUniformVec3:
		return "vec3"
	case OpDrawMesh:
		return "draw"
	}
	return "unknown"
}

// Call is one recorded backend call of a frame.
type Call struct {
	Op   Op
	Name string
	Mat4 math.Mat4
	Vec3 math.Vec3
}

// Frame holds every call made between BeginFrame and EndFrame.
type Frame struct {
	Number    uint64
	DeltaTime float64
	Calls     []Call
}

// Uniform returns the last value uploaded under name in the frame.
func (f Frame) Uniform(name string) (Call, bool) {
	for i := len(f.Calls) - 1; i >= 0; i-- {
		if f.Calls[i].Name == name && f.Calls[i].Op != OpDrawMesh {
			return f.Calls[i], true
		}
	}
	return Call{}, false
}

// Draws returns the meshes drawn in the frame, in order.
func (f Frame) Draws() []string {
	var out []string
	for _, c := range f.Calls {
		if c.Op == OpDrawMesh {
			out = append(out, c.Name)
		}
	}
	return out
}

// HeadlessRenderer is a renderer backend without a GPU. It checks that calls
// arrive in a valid order and records them so runs can be inspected.
type HeadlessRenderer struct {
	// FailInitialize is returned from Initialize when set.
	FailInitialize error
	// KeepFrames bounds how many finished frames are kept; 0 keeps all.
	KeepFrames int

	FrameNumber       uint64
	FramebufferWidth  uint32
	FramebufferHeight uint32

	initialized bool
	current     *Frame
	frames      []Frame
	kept        *containers.RingQueue[Frame]
}

func New() *HeadlessRenderer {
	return &HeadlessRenderer{}
}

func (hr *HeadlessRenderer) Initialize(appName string, appWidth, appHeight uint32) error {
	if hr.FailInitialize != nil {
		return hr.FailInitialize
	}
	if appWidth == 0 || appHeight == 0 {
		return fmt.Errorf("invalid framebuffer size %dx%d", appWidth, appHeight)
	}
	hr.FramebufferWidth = appWidth
	hr.FramebufferHeight = appHeight
	hr.initialized = true
	core.LogDebug("headless renderer '%s' initialized", appName)
	return nil
}

func (hr *HeadlessRenderer) Shutdown() error {
	if !hr.initialized {
		return ErrNotInitialized
	}
	hr.initialized = false
	core.LogDebug("headless renderer shut down after %d frames", hr.FrameNumber)
	return nil
}

func (hr *HeadlessRenderer) Resized(width, height uint16) error {
	if !hr.initialized {
		return ErrNotInitialized
	}
	hr.FramebufferWidth = uint32(width)
	hr.FramebufferHeight = uint32(height)
	return nil
}

func (hr *HeadlessRenderer) BeginFrame(deltaTime float64) error {
	if !hr.initialized {
		return ErrNotInitialized
	}
	if hr.current != nil {
		return fmt.Errorf("frame %d already begun", hr.current.Number)
	}
	hr.current = &Frame{Number: hr.FrameNumber, DeltaTime: deltaTime}
	return nil
}

func (hr *HeadlessRenderer) SetUniformMat4(name string, value math.Mat4) error {
	return hr.record(Call{Op: OpSetUniformMat4, Name: name, Mat4: value})
}

func (hr *HeadlessRenderer) SetUniformVec3(name string, value math.Vec3) error {
	return hr.record(Call{Op: OpSetUniformVec3, Name: name, Vec3: value})
}

func (hr *HeadlessRenderer) DrawMesh(name string) error {
	return hr.record(Call{Op: OpDrawMesh, Name: name})
}

func (hr *HeadlessRenderer) EndFrame(deltaTime float64) error {
	if hr.current == nil {
		return ErrNotInFrame
	}
	if hr.KeepFrames > 0 {
		if hr.kept == nil {
			hr.kept = containers.NewRingQueue[Frame](hr.KeepFrames)
		}
		hr.kept.Push(*hr.current)
	} else {
		hr.frames = append(hr.frames, *hr.current)
	}
	hr.current = nil
	hr.FrameNumber++
	return nil
}

// Frames returns the finished frames that are still kept.
func (hr *HeadlessRenderer) Frames() []Frame {
	if hr.kept != nil {
		return hr.kept.Items()
	}
	return hr.frames
}

// LastFrame returns the most recently finished frame.
func (hr *HeadlessRenderer) LastFrame() (Frame, bool) {
	frames := hr.Frames()
	if len(frames) == 0 {
		return Frame{}, false
	}
	return frames[len(frames)-1], true
}

func (hr *HeadlessRenderer) record(c Call) error {
	if hr.current == nil {
		return fmt.Errorf("%s '%s': %w", c.Op, c.Name, ErrNotInFrame)
	}
	hr.current.Calls = append(hr.current.Calls, c)
	return nil
}
