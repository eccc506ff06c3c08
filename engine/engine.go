package engine

import (
	"sync/atomic"
	"time"

	"github.com/spaghettifunk/anima-actors/engine/config"
	"github.com/spaghettifunk/anima-actors/engine/core"
	"github.com/spaghettifunk/anima-actors/engine/math"
	"github.com/spaghettifunk/anima-actors/engine/world"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

// Platform is the window/input layer the engine pumps every frame.
type Platform interface {
	Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error
	Shutdown() error
	PumpMessages() bool
	DrainEvents() core.EventBatch
	GetAbsoluteTime() float64
}

// Scene populates a fresh world with game objects and actors.
type Scene func(w *world.World) error

type Engine struct {
	currentStage Stage
	config       *config.Config
	scene        Scene
	world        *world.World
	platform     Platform
	isRunning    atomic.Bool
	isSuspended  bool
	width        uint32
	height       uint32
	clock        *core.Clock
	metrics      *core.FrameMetrics
	lastTime     float64

	targetFrameSeconds float64
}

func New(cfg *config.Config, p Platform, scene Scene) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	return &Engine{
		currentStage:       EngineStageUninitialized,
		config:             cfg,
		scene:              scene,
		world:              world.New(),
		platform:           p,
		width:              cfg.Application.StartWidth,
		height:             cfg.Application.StartHeight,
		clock:              core.NewClock(),
		metrics:            core.NewFrameMetrics(),
		targetFrameSeconds: 1.0 / 60.0,
	}, nil
}

func (e *Engine) Initialize() error {
	core.SetLogLevel(e.config.LogLevel())

	app := e.config.Application
	if err := e.platform.Startup(app.Name, app.StartPosX, app.StartPosY, app.StartWidth, app.StartHeight); err != nil {
		return err
	}

	if err := e.scene(e.world); err != nil {
		core.LogError("failed to build the scene: %s", err)
		return err
	}

	e.currentStage = EngineStageInitialized
	e.isRunning.Store(true)
	core.LogInfo("%s initialized (%dx%d)", app.Name, app.StartWidth, app.StartHeight)
	return nil
}

func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning
	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	for e.isRunning.Load() {
		if !e.platform.PumpMessages() {
			e.isRunning.Store(false)
			break
		}

		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime
		frameStartTime := e.platform.GetAbsoluteTime()

		if err := e.Frame(delta); err != nil {
			core.LogError("frame failed, shutting down: %s", err)
			e.isRunning.Store(false)
			return err
		}

		// Figure out how long the frame took and give the rest back to the OS.
		frameElapsedTime := e.platform.GetAbsoluteTime() - frameStartTime
		if remaining := e.targetFrameSeconds - frameElapsedTime; remaining > 0 {
			time.Sleep(time.Duration(remaining * float64(time.Second)))
		}

		e.lastTime = currentTime
	}
	return nil
}

// Frame runs a single frame: drain input, react to window events, update the world.
func (e *Engine) Frame(delta float64) error {
	batch := e.platform.DrainEvents()
	for _, ev := range batch {
		e.onEvent(ev)
	}
	if e.isSuspended {
		return nil
	}

	if err := e.world.Update(batch, delta); err != nil {
		return err
	}
	e.metrics.Update(delta)

	if n := e.config.Application.PoseLogInterval; n > 0 && e.world.Frame()%n == 0 {
		e.logCameraPose()
	}
	return nil
}

func (e *Engine) logCameraPose() {
	cam, ok := e.world.CurrentCamera()
	if !ok {
		return
	}
	pos := cam.GetPosition()
	fwd := cam.Forward()
	yaw, pitch := fwd.YawPitch()
	fps, frameMS := e.metrics.Frame()
	core.LogDebug("Camera Pos: [%.3f, %.3f, %.3f] Yaw/Pitch: [%.1f, %.1f] | %.0f fps (%.2f ms)",
		pos.X, pos.Y, pos.Z, math.RadToDeg(yaw), math.RadToDeg(pitch), fps, frameMS)
}

func (e *Engine) onEvent(ev core.Event) {
	switch ev.Kind {
	case core.EVENT_QUIT:
		core.LogInfo("quit received, shutting down.")
		e.isRunning.Store(false)
	case core.EVENT_KEY_DOWN:
		if ev.Code == core.KEY_ESCAPE {
			core.LogInfo("escape pressed, shutting down.")
			e.isRunning.Store(false)
		}
	case core.EVENT_RESIZED:
		e.onResized(uint32(ev.X), uint32(ev.Y))
	}
}

func (e *Engine) onResized(width, height uint32) {
	if width == e.width && height == e.height {
		return
	}
	e.width = width
	e.height = height
	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
}

// Stop asks the run loop to exit after the current frame. Safe to call from any goroutine.
func (e *Engine) Stop() {
	e.isRunning.Store(false)
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	e.isRunning.Store(false)
	e.world.Reset()
	return e.platform.Shutdown()
}

func (e *Engine) IsRunning() bool {
	return e.isRunning.Load()
}

func (e *Engine) IsSuspended() bool {
	return e.isSuspended
}

func (e *Engine) World() *world.World {
	return e.world
}

// GetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}
