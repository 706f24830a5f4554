package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/spaghettifunk/clay/engine/core"
	"github.com/spaghettifunk/clay/engine/renderer"
	"github.com/spaghettifunk/clay/engine/scene"
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

var (
	ErrNotInitialized = errors.New("engine not initialized")
	ErrAlreadyRunning = errors.New("engine already running")
)

// Engine drives a scene through the renderer once per frame.
type Engine struct {
	mu           sync.Mutex
	currentStage Stage
	gameInstance *Game
	scene        *scene.Scene
	renderer     *renderer.Renderer
	clock        *core.Clock
	metrics      core.Metrics
	frames       uint64
	lastTime     float64
}

func New(g *Game, s *scene.Scene, backend renderer.RendererBackend) *Engine {
	if g == nil {
		g = &Game{}
	}
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = DefaultApplicationConfig()
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		scene:        s,
		renderer:     renderer.New(backend),
		clock:        core.NewClock(),
	}
}

// SetClock replaces the frame clock, e.g. with a hand-driven one.
func (e *Engine) SetClock(clock *core.Clock) {
	e.clock = clock
}

func (e *Engine) Initialize() error {
	if e.scene == nil {
		return errors.New("engine has no scene")
	}
	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			core.LogError(err.Error())
			return err
		}
	}
	e.currentStage = EngineStageInitialized
	core.LogInfo("%s initialized with %d node(s)", e.gameInstance.ApplicationConfig.Name, len(e.scene.Nodes))
	return nil
}

// SetScene swaps the scene between two frames. Used by hot reload.
func (e *Engine) SetScene(s *scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scene = s
}

func (e *Engine) Scene() *scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scene
}

func (e *Engine) Frames() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

// Metrics returns frames per second and the average frame time in ms.
func (e *Engine) Metrics() (float64, float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.metrics.Frame()
}

// Run renders frames until ctx is done or MaxFrames is reached.
func (e *Engine) Run(ctx context.Context) error {
	switch e.currentStage {
	case EngineStageUninitialized:
		return ErrNotInitialized
	case EngineStageRunning:
		return ErrAlreadyRunning
	}
	e.currentStage = EngineStageRunning
	defer func() { e.currentStage = EngineStageInitialized }()

	appConfig := e.gameInstance.ApplicationConfig
	targetFrameSeconds := 1.0 / 60.0
	if appConfig.TargetFPS > 0 {
		targetFrameSeconds = 1.0 / appConfig.TargetFPS
	}

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed().Seconds()

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if appConfig.MaxFrames > 0 && e.Frames() >= appConfig.MaxFrames {
			return nil
		}

		// Update clock and get delta time.
		e.clock.Update()
		currentTime := e.clock.Elapsed().Seconds()
		delta := currentTime - e.lastTime
		frameStartTime := time.Now()

		if err := e.frame(currentTime, delta); err != nil {
			core.LogError("frame failed, shutting down: %s", err)
			return err
		}

		// Figure out how long the frame took and, if below, give the rest back.
		frameElapsedTime := time.Since(frameStartTime).Seconds()
		remainingSeconds := targetFrameSeconds - frameElapsedTime
		if remainingSeconds > 0 && appConfig.LimitFrames {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Duration(remainingSeconds * float64(time.Second))):
			}
		}

		e.mu.Lock()
		e.metrics.Update(time.Since(frameStartTime).Seconds())
		e.frames++
		e.mu.Unlock()

		// Update last time
		e.lastTime = currentTime
	}
}

func (e *Engine) frame(elapsed, delta float64) error {
	if e.gameInstance.FnUpdate != nil {
		if err := e.gameInstance.FnUpdate(elapsed, delta); err != nil {
			return err
		}
	}

	s := e.Scene()
	s.Animate(elapsed)
	packet := s.RenderPacket(delta)

	if err := e.renderer.DrawFrame(packet); err != nil {
		return err
	}

	if e.gameInstance.FnRender != nil {
		if err := e.gameInstance.FnRender(packet, delta); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	fps, frameTime := e.Metrics()
	core.LogInfo("%s shutting down after %d frame(s) (fps=%.1f, avg frame=%.3fms)",
		e.gameInstance.ApplicationConfig.Name, e.Frames(), fps, frameTime)
	e.currentStage = EngineStageUninitialized
	return nil
}
