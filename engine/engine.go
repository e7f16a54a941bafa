package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/spaghettifunk/animath/engine/assets"
	"github.com/spaghettifunk/animath/engine/config"
	"github.com/spaghettifunk/animath/engine/core"
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/renderer/components"
	"github.com/spaghettifunk/animath/engine/systems"
	"golang.org/x/exp/rand"
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
	// Engine has shut down
	EngineStageShutdown
)

// matrices multiplied or inverted per timed benchmark batch
const benchBatchSize = 4096

type Engine struct {
	currentStage Stage
	app          *ApplicationConfig
	scene        *config.Scene
	cameraSystem *systems.CameraSystem
	watcher      *assets.Watcher
	jobSystem    *systems.JobSystem
	clock        *core.Clock
	out          io.Writer

	// guards scene, cameraSystem and out against the watcher goroutine
	mutex   sync.Mutex
	reports int
}

func New(app *ApplicationConfig) (*Engine, error) {
	if app == nil {
		err := fmt.Errorf("engine needs an application config: %w", core.ErrConfigInvalid)
		core.LogError(err.Error())
		return nil, err
	}
	if app.Watch && app.ConfigPath == "" {
		err := fmt.Errorf("watching requires a config path: %w", core.ErrConfigInvalid)
		core.LogError(err.Error())
		return nil, err
	}
	if app.BenchIterations < 0 {
		err := fmt.Errorf("bench iterations must be >= 0: %w", core.ErrConfigInvalid)
		core.LogError(err.Error())
		return nil, err
	}
	out := app.Output
	if out == nil {
		out = os.Stdout
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		app:          app,
		clock:        core.NewClock(),
		out:          out,
	}, nil
}

func (e *Engine) Stage() Stage {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.currentStage
}

// CameraSystem returns the camera system built by Initialize.
func (e *Engine) CameraSystem() *systems.CameraSystem {
	return e.cameraSystem
}

/**
 * @brief Loads the scene, applies its log level and builds the camera
 * system. When watching, the scene file is also put under watch.
 */
func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	scene := config.Default()
	if e.app.ConfigPath != "" {
		s, err := config.Load(e.app.ConfigPath)
		if err != nil {
			core.LogError(err.Error())
			return err
		}
		scene = s
	}
	if err := e.applyLogLevel(scene); err != nil {
		return err
	}

	cs, err := systems.NewCameraSystemFromScene(scene)
	if err != nil {
		return err
	}
	e.scene = scene
	e.cameraSystem = cs

	js, err := systems.NewJobSystem(runtime.NumCPU(), len(scene.Cameras))
	if err != nil {
		core.LogError(err.Error())
		return err
	}
	e.jobSystem = js

	if e.app.CameraName != "" {
		if _, err := cs.Get(e.app.CameraName); err != nil {
			core.LogError(err.Error())
			return err
		}
	}

	if e.app.Watch {
		w, err := assets.NewWatcher(e.app.ConfigPath, e.onSceneChange)
		if err != nil {
			core.LogError(err.Error())
			return err
		}
		e.watcher = w
	}

	e.mutex.Lock()
	e.currentStage = EngineStageInitialized
	e.mutex.Unlock()
	core.LogInfo("%s initialized with %d camera(s).", e.name(), len(cs.Names()))
	return nil
}

/**
 * @brief Writes the camera report, runs the benchmark when asked to and,
 * when watching, keeps reporting on every scene change until ctx is done.
 */
func (e *Engine) Run(ctx context.Context) error {
	e.mutex.Lock()
	if e.currentStage != EngineStageInitialized {
		e.mutex.Unlock()
		return fmt.Errorf("run before initialize: %w", core.ErrUnknown)
	}
	e.currentStage = EngineStageRunning
	err := e.report()
	e.mutex.Unlock()
	if err != nil {
		return err
	}

	if e.app.BenchIterations > 0 {
		if err := e.bench(ctx); err != nil {
			return err
		}
	}

	if e.watcher != nil {
		core.LogInfo("Watching %s, interrupt to stop.", e.app.ConfigPath)
		<-ctx.Done()
	}
	return nil
}

func (e *Engine) Shutdown() error {
	e.mutex.Lock()
	e.currentStage = EngineStageShuttingDown
	e.mutex.Unlock()

	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			return err
		}
	}
	if e.jobSystem != nil {
		if err := e.jobSystem.Shutdown(); err != nil {
			return err
		}
	}
	if e.cameraSystem != nil {
		if err := e.cameraSystem.Shutdown(); err != nil {
			return err
		}
	}

	e.mutex.Lock()
	e.currentStage = EngineStageShutdown
	e.mutex.Unlock()
	core.LogInfo("%s shut down.", e.name())
	return nil
}

// Reports returns how many camera reports were written.
func (e *Engine) Reports() int {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.reports
}

func (e *Engine) name() string {
	if e.app.Name != "" {
		return e.app.Name
	}
	if e.scene != nil {
		return e.scene.Application.Name
	}
	return config.DefaultName
}

func (e *Engine) applyLogLevel(scene *config.Scene) error {
	level := scene.Application.LogLevel
	if e.app.LogLevel != "" {
		level = e.app.LogLevel
	}
	return core.SetLogLevel(level)
}

// onSceneChange keeps the previous scene when the new one cannot be used.
func (e *Engine) onSceneChange(scene *config.Scene, err error) {
	if err != nil {
		core.LogWarn("Keeping the previous scene: %s", err.Error())
		return
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()

	if err := e.cameraSystem.Configure(scene); err != nil {
		core.LogWarn("Keeping the previous cameras: %s", err.Error())
		return
	}
	if err := e.applyLogLevel(scene); err != nil {
		core.LogWarn(err.Error())
	}
	e.scene = scene
	if e.currentStage == EngineStageRunning {
		if err := e.report(); err != nil {
			core.LogError(err.Error())
		}
	}
}

/**
 * @brief Writes one report section per camera. Sections are built in
 * parallel on the job system and written in name order.
 */
func (e *Engine) report() error {
	names := e.cameraSystem.Names()
	if e.app.CameraName != "" {
		names = []string{e.app.CameraName}
	}
	cameras := make([]*components.Camera, len(names))
	for i, name := range names {
		c, err := e.cameraSystem.Get(name)
		if err != nil {
			core.LogError(err.Error())
			return err
		}
		cameras[i] = c
	}

	sections := make([]bytes.Buffer, len(cameras))
	errs := make([]error, len(cameras))
	for i, c := range cameras {
		err := e.jobSystem.Submit(systems.JobTask{
			Name: "report " + c.Name,
			OnStart: func() error {
				if err := writeCameraReport(&sections[i], c); err != nil {
					return err
				}
				c.EndFrame()
				return nil
			},
			OnFailure: func(err error) { errs[i] = err },
		})
		if err != nil {
			return err
		}
	}
	e.jobSystem.Wait()
	if err := errors.Join(errs...); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(e.out, "# %s\n", e.name()); err != nil {
		return err
	}
	for i := range sections {
		if _, err := sections[i].WriteTo(e.out); err != nil {
			return err
		}
	}
	e.reports++
	return nil
}

var cornerNames = [8]string{
	math.CornerNXNYNZ: "near bottom left",
	math.CornerPXNYNZ: "near bottom right",
	math.CornerPXPYNZ: "near top right",
	math.CornerNXPYNZ: "near top left",
	math.CornerPXNYPZ: "far bottom right",
	math.CornerNXNYPZ: "far bottom left",
	math.CornerNXPYPZ: "far top left",
	math.CornerPXPYPZ: "far top right",
}

var planeNames = [6]string{
	math.PlaneNX: "left",
	math.PlanePX: "right",
	math.PlaneNY: "bottom",
	math.PlanePY: "top",
	math.PlaneNZ: "near",
	math.PlanePZ: "far",
}

func writeCameraReport(w io.Writer, c *components.Camera) error {
	pos := c.GetPosition()
	p := c.GetProjection()
	view := c.GetView()
	proj := c.GetProjectionMatrix()
	vp := c.GetViewProjection()

	fmt.Fprintf(w, "\n## camera %q (%s)\n", c.Name, c.ID)
	fmt.Fprintf(w, "position   [%.3f %.3f %.3f]\n", pos.X, pos.Y, pos.Z)
	if target, ok := c.Target(); ok {
		fmt.Fprintf(w, "target     [%.3f %.3f %.3f]\n", target.X, target.Y, target.Z)
	} else {
		rot := c.GetEulerRotation()
		fmt.Fprintf(w, "rotation   [%.3f %.3f %.3f] deg\n", math.RadToDeg(rot.X), math.RadToDeg(rot.Y), math.RadToDeg(rot.Z))
	}
	fmt.Fprintf(w, "projection %s near %g far %g\n", p.Kind, p.Near, p.Far)
	fmt.Fprintf(w, "viewport   %v\n", c.GetViewport())
	fmt.Fprintf(w, "view\n%s", view.String())
	fmt.Fprintf(w, "projection\n%s", proj.String())
	fmt.Fprintf(w, "view-projection\n%s", vp.String())

	planes, err := c.FrustumPlanes()
	if err != nil {
		return err
	}
	for i, plane := range planes {
		fmt.Fprintf(w, "plane %-6s (%.4f %.4f %.4f %.4f)\n", planeNames[i], plane.X, plane.Y, plane.Z, plane.W)
	}
	for i, corner := range c.FrustumCorners() {
		fmt.Fprintf(w, "corner %-17s [%.3f %.3f %.3f]\n", cornerNames[i], corner.X, corner.Y, corner.Z)
	}
	box := c.WorldAabb()
	_, err = fmt.Fprintf(w, "bounds [%.3f %.3f %.3f] - [%.3f %.3f %.3f]\n",
		box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z)
	return err
}

type benchCase struct {
	name string
	run  func(operands []math.Matrix4d, dest *math.Matrix4d)
}

var benchCases = []benchCase{
	{"mul", func(ops []math.Matrix4d, dest *math.Matrix4d) {
		for i := 1; i < len(ops); i++ {
			ops[i-1].MulTo(&ops[i], dest)
		}
	}},
	{"mul affine", func(ops []math.Matrix4d, dest *math.Matrix4d) {
		for i := 1; i < len(ops); i++ {
			ops[i-1].MulAffineTo(&ops[i], dest)
		}
	}},
	{"invert", func(ops []math.Matrix4d, dest *math.Matrix4d) {
		for i := 1; i < len(ops); i++ {
			ops[i].InvertTo(dest)
		}
	}},
	{"invert affine", func(ops []math.Matrix4d, dest *math.Matrix4d) {
		for i := 1; i < len(ops); i++ {
			ops[i].InvertAffineTo(dest)
		}
	}},
	{"transform position", func(ops []math.Matrix4d, dest *math.Matrix4d) {
		v := math.NewVector3dOne()
		for i := 1; i < len(ops); i++ {
			v = ops[i].TransformPosition(v).Normalized()
		}
		dest.SetTranslation(v.X, v.Y, v.Z)
	}},
}

/**
 * @brief Times the general and affine tiers on random affine matrices and
 * writes one line of metrics per operation.
 */
func (e *Engine) bench(ctx context.Context) error {
	r := rand.New(rand.NewSource(e.app.Seed))
	operands := make([]math.Matrix4d, benchBatchSize+1)
	for i := range operands {
		operands[i] = math.RandomAffine(r)
	}

	var sink math.Matrix4d
	if err := e.printf("\n# bench (%d x %d)\n", e.app.BenchIterations, benchBatchSize); err != nil {
		return err
	}
	for _, bc := range benchCases {
		metrics := core.NewMetrics(bc.name)
		for i := 0; i < e.app.BenchIterations; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			e.clock.Start()
			bc.run(operands, &sink)
			e.clock.Update()
			metrics.Update(e.clock.Elapsed(), benchBatchSize)
		}
		e.clock.Stop()
		if err := e.printf("%s\n", metrics.String()); err != nil {
			return err
		}
	}
	core.LogDebug("bench sink determinant %g", sink.Determinant())
	return nil
}

// printf writes to the output while holding the lock a scene change takes
// to write its report.
func (e *Engine) printf(format string, args ...interface{}) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	_, err := fmt.Fprintf(e.out, format, args...)
	return err
}
