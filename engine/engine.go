package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/spaghettifunk/gfxlabs/engine/config"
	"github.com/spaghettifunk/gfxlabs/engine/core"
	"github.com/spaghettifunk/gfxlabs/engine/renderer"
	"github.com/spaghettifunk/gfxlabs/engine/renderer/metadata"
	"github.com/spaghettifunk/gfxlabs/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine has released every collaborator
	EngineStageShutdown
)

// ConfigSource delivers reloaded configurations. config.Watcher implements it.
type ConfigSource interface {
	Updates() <-chan *config.Config
	Errors() <-chan error
}

type Option func(e *Engine)

// WithTimeSource replaces the wall clock, e.g. with core.NewFixedStepSource.
func WithTimeSource(now core.TimeSource) Option {
	return func(e *Engine) {
		e.clock = core.NewClockWithSource(now)
	}
}

// WithConfigSource makes the loop apply reloaded configs between frames.
func WithConfigSource(source ConfigSource) Option {
	return func(e *Engine) {
		e.configSource = source
	}
}

// WithFrameLimit sleeps away the rest of each frame to hold the target FPS.
func WithFrameLimit() Option {
	return func(e *Engine) {
		e.limitFrames = true
	}
}

// Engine owns the clock, the input state, the event system, the frame metrics
// and the renderer, and drives the game through them one frame at a time.
type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	isRunning     bool
	isSuspended   bool
	limitFrames   bool
	systemManager *systems.SystemManager
	renderer      *renderer.Renderer
	input         core.InputSource
	inputState    *core.InputState
	events        *core.EventSystem
	metrics       *core.FrameMetrics
	configSource  ConfigSource
	width         uint32
	height        uint32
	clock         *core.Clock
	lastTime      float64
	frameCount    int
}

func New(g *Game, backend renderer.RendererBackend, input core.InputSource, opts ...Option) (*Engine, error) {
	if g.ApplicationConfig == nil || g.Config == nil {
		return nil, fmt.Errorf("game has no application config")
	}

	sm, err := systems.NewSystemManager(g.Config)
	if err != nil {
		core.LogError("%s", err.Error())
		return nil, err
	}

	events := core.NewEventSystem()
	e := &Engine{
		currentStage:  EngineStageUninitialized,
		gameInstance:  g,
		clock:         core.NewClock(),
		systemManager: sm,
		renderer:      renderer.New(backend),
		input:         input,
		inputState:    core.NewInputState(events),
		events:        events,
		metrics:       core.NewFrameMetrics(),
		isRunning:     true,
		isSuspended:   false,
		width:         g.ApplicationConfig.StartWidth,
		height:        g.ApplicationConfig.StartHeight,
	}
	for _, opt := range opts {
		opt(e)
	}

	g.SystemManager = e.systemManager
	g.Renderer = e.renderer
	g.Input = e.inputState
	g.Events = e.events
	return e, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	core.SetLogLevel(e.gameInstance.ApplicationConfig.LogLevel)

	app := e.gameInstance.ApplicationConfig
	if err := e.renderer.Initialize(app.Name, app.StartWidth, app.StartHeight); err != nil {
		return err
	}

	// register some events
	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	e.events.Register(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)
	e.events.Register(core.EVENT_CODE_KEY_RELEASED, e, e.onKey)
	e.events.Register(core.EVENT_CODE_RESIZED, e, e.onResized)

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	return nil
}

// Run drives frames until the game quits, the frame budget is spent or ctx is
// cancelled. Each frame polls input, updates the game, renders it and draws
// the resulting packet.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return core.ErrNotInitialized
	}
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	frames := e.gameInstance.ApplicationConfig.Frames
	var targetFrameSeconds float64 = 1.0 / 60.0
	if fps := e.gameInstance.ApplicationConfig.TargetFPS; fps > 0 {
		targetFrameSeconds = 1.0 / float64(fps)
	}

	for e.isRunning {
		if err := ctx.Err(); err != nil {
			core.LogInfo("run cancelled, shutting down.")
			e.isRunning = false
			break
		}

		if err := e.applyConfigUpdates(); err != nil {
			return err
		}

		if err := e.input.Poll(e.inputState); err != nil {
			return fmt.Errorf("failed to poll input: %w", err)
		}
		// the poll may have fired a quit
		if !e.isRunning {
			break
		}

		if e.isSuspended {
			e.inputState.Update()
			// Nothing is drawn while minimised; wait a frame instead of spinning.
			select {
			case <-ctx.Done():
			case <-time.After(time.Duration(targetFrameSeconds * float64(time.Second))):
			}
			// The first frame after resuming must not see the suspension as delta.
			e.clock.Update()
			e.lastTime = e.clock.Elapsed()
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		var currentTime float64 = e.clock.Elapsed()
		var delta float64 = (currentTime - e.lastTime)
		frameStartTime := time.Now()

		if err := e.gameInstance.FnUpdate(delta); err != nil {
			core.LogError("Game update failed, shutting down.")
			return fmt.Errorf("game update failed: %w", err)
		}

		packet := &metadata.RenderPacket{DeltaTime: delta}
		// Call the game's render routine.
		if err := e.gameInstance.FnRender(packet, delta); err != nil {
			core.LogError("Game render failed, shutting down.")
			return fmt.Errorf("game render failed: %w", err)
		}

		if err := e.renderer.DrawFrame(packet); err != nil {
			return fmt.Errorf("failed to draw frame: %w", err)
		}

		e.metrics.Update(delta)
		e.frameCount++
		if e.frameCount%600 == 0 {
			fps, frameTime := e.metrics.Frame()
			core.LogDebug("%d frames, %.1f fps, %.3f ms/frame", e.frameCount, fps, frameTime)
		}

		if e.limitFrames {
			remaining := targetFrameSeconds - time.Since(frameStartTime).Seconds()
			if remaining > 0 {
				// If there is time left, give it back to the OS.
				select {
				case <-ctx.Done():
				case <-time.After(time.Duration(remaining * float64(time.Second))):
				}
			}
		}

		// NOTE: Input update/state copying should always be handled
		// after any input should be recorded; I.E. before this line.
		// As a safety, input is the last thing to be updated before
		// this frame ends.
		e.inputState.Update()

		// Update last time
		e.lastTime = currentTime

		if frames > 0 && e.frameCount >= frames {
			core.LogInfo("frame budget of %d reached, shutting down.", frames)
			e.isRunning = false
		}
	}

	return nil
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShutdown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false

	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			return err
		}
	}
	if err := e.events.Shutdown(); err != nil {
		return err
	}
	if err := e.systemManager.Shutdown(); err != nil {
		return err
	}
	if err := e.renderer.Shutdown(); err != nil {
		return err
	}
	e.currentStage = EngineStageShutdown
	return nil
}

// GetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

// FrameCount is the number of frames drawn by Run.
func (e *Engine) FrameCount() int {
	return e.frameCount
}

func (e *Engine) Metrics() *core.FrameMetrics {
	return e.metrics
}

func (e *Engine) Events() *core.EventSystem {
	return e.events
}

// Resize reports a new framebuffer size. A zero dimension suspends the game
// until a non-zero size arrives.
func (e *Engine) Resize(width, height uint16) {
	data := core.EventContext{}
	data.Data.U16[0] = width
	data.Data.U16[1] = height
	e.events.Fire(core.EVENT_CODE_RESIZED, e, data)
}

// applyConfigUpdates drains the config source without blocking. A reloaded
// config replaces the game's one and is announced to listeners.
func (e *Engine) applyConfigUpdates() error {
	if e.configSource == nil {
		return nil
	}
	select {
	case err := <-e.configSource.Errors():
		core.LogWarn("config reload ignored: %s", err)
	default:
	}
	select {
	case cfg := <-e.configSource.Updates():
		e.gameInstance.Config = cfg
		if e.gameInstance.FnOnConfigReloaded != nil {
			if err := e.gameInstance.FnOnConfigReloaded(cfg); err != nil {
				return fmt.Errorf("failed to apply reloaded config: %w", err)
			}
		}
		e.events.Fire(core.EVENT_CODE_CONFIG_RELOADED, e, core.EventContext{Payload: cfg})
		core.LogInfo("config reloaded")
	default:
	}
	return nil
}

func (e *Engine) onEvent(code core.SystemEventCode, sender interface{}, listenerInst interface{}, data core.EventContext) bool {
	switch code {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
		return true
	}
	return false
}

func (e *Engine) onKey(code core.SystemEventCode, sender interface{}, listenerInst interface{}, data core.EventContext) bool {
	keyCode := core.KeyCode(data.Data.U16[0])

	if code == core.EVENT_CODE_KEY_PRESSED {
		if keyCode == core.KEY_ESCAPE {
			// NOTE: Technically firing an event to itself, but there may be other listeners.
			e.events.Fire(core.EVENT_CODE_APPLICATION_QUIT, e, core.EventContext{})
			// Block anything else from processing this.
			return true
		}
		core.LogDebug("key %d pressed", keyCode)
	} else if code == core.EVENT_CODE_KEY_RELEASED {
		core.LogDebug("key %d released", keyCode)
	}
	return false
}

func (e *Engine) onResized(code core.SystemEventCode, sender interface{}, listenerInst interface{}, data core.EventContext) bool {
	if code != core.EVENT_CODE_RESIZED {
		return false
	}
	width := uint32(data.Data.U16[0])
	height := uint32(data.Data.U16[1])

	// Check if different. If so, trigger a resize event.
	if width == e.width && height == e.height {
		return false
	}
	e.width = width
	e.height = height
	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	if err := e.renderer.OnResize(uint16(width), uint16(height)); err != nil {
		core.LogError("%s", err.Error())
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(width, height); err != nil {
			core.LogError("%s", err.Error())
		}
	}
	return true
}
