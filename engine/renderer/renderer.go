package renderer

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/gfxlabs/engine/core"
	"github.com/spaghettifunk/gfxlabs/engine/renderer/metadata"
)

var ErrUnknownView = errors.New("unknown render view")

// RenderView turns the view packets it built into backend calls.
type RenderView interface {
	Name() string
	OnResize(width, height uint32) error
	OnRender(backend RendererBackend, packet *metadata.RenderViewPacket) error
}

// Renderer is the frontend the game talks to. It owns the backend and the
// registered views and draws one packet per frame.
type Renderer struct {
	backend     RendererBackend
	views       map[string]RenderView
	initialized bool
	frameNumber uint64
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{
		backend: backend,
		views:   make(map[string]RenderView),
	}
}

func (r *Renderer) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := r.backend.Initialize(appName, appWidth, appHeight); err != nil {
		return fmt.Errorf("%w: renderer backend: %w", core.ErrCollaboratorInit, err)
	}
	r.initialized = true
	core.LogInfo("renderer initialized (%dx%d)", appWidth, appHeight)
	return nil
}

func (r *Renderer) Shutdown() error {
	if !r.initialized {
		return nil
	}
	r.initialized = false
	clear(r.views)
	return r.backend.Shutdown()
}

func (r *Renderer) RegisterView(view RenderView) error {
	if _, ok := r.views[view.Name()]; ok {
		return fmt.Errorf("render view '%s' already registered", view.Name())
	}
	r.views[view.Name()] = view
	return nil
}

func (r *Renderer) OnResize(width, height uint16) error {
	if err := r.backend.Resized(width, height); err != nil {
		return err
	}
	for _, v := range r.views {
		if err := v.OnResize(uint32(width), uint32(height)); err != nil {
			return fmt.Errorf("failed to resize view '%s': %w", v.Name(), err)
		}
	}
	return nil
}

func (r *Renderer) DrawFrame(renderPacket *metadata.RenderPacket) error {
	if !r.initialized {
		return core.ErrNotInitialized
	}
	if err := r.backend.BeginFrame(renderPacket.DeltaTime); err != nil {
		core.LogError("%s", err.Error())
		return err
	}
	for _, packet := range renderPacket.ViewPackets {
		view, ok := r.views[packet.ViewName]
		if !ok {
			return r.abortFrame(renderPacket.DeltaTime, fmt.Errorf("%w: '%s'", ErrUnknownView, packet.ViewName))
		}
		if err := view.OnRender(r.backend, packet); err != nil {
			core.LogError("failed to render view '%s'", packet.ViewName)
			return r.abortFrame(renderPacket.DeltaTime, err)
		}
	}
	if err := r.backend.EndFrame(renderPacket.DeltaTime); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	r.frameNumber++
	return nil
}

// abortFrame closes a frame that failed part way so the backend can begin the
// next one. The frame is not counted.
func (r *Renderer) abortFrame(deltaTime float64, cause error) error {
	if err := r.backend.EndFrame(deltaTime); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

// FrameNumber is the number of frames drawn so far.
func (r *Renderer) FrameNumber() uint64 {
	return r.frameNumber
}
