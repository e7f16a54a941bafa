package engine

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spaghettifunk/animath/engine/config"
	"github.com/spaghettifunk/animath/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoCameras = `
[application]
name = "report"
[[cameras]]
name = "main"
position = [0.0, 0.0, 5.0]
target = [0.0, 0.0, 0.0]
[[cameras]]
name = "top"
position = [0.0, 10.0, 0.0]
rotation = [-89.0, 0.0, 0.0]
  [cameras.projection]
  kind = "ortho_symmetric"
  width = 10.0
  height = 10.0
  near = 0.1
  far = 20.0
`

func writeScene(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestNewRejectsBadApplication(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, core.ErrConfigInvalid)
	_, err = New(&ApplicationConfig{Watch: true})
	assert.ErrorIs(t, err, core.ErrConfigInvalid)
	_, err = New(&ApplicationConfig{BenchIterations: -1})
	assert.ErrorIs(t, err, core.ErrConfigInvalid)
}

func TestRunReportsEveryCamera(t *testing.T) {
	var out bytes.Buffer
	e, err := New(&ApplicationConfig{ConfigPath: writeScene(t, twoCameras), Output: &out})
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	assert.Equal(t, EngineStageInitialized, e.Stage())

	require.NoError(t, e.Run(context.Background()))
	report := out.String()
	assert.True(t, strings.HasPrefix(report, "# report\n"))
	assert.Contains(t, report, `## camera "main"`)
	assert.Contains(t, report, `## camera "top"`)
	assert.Contains(t, report, "projection ortho_symmetric")
	assert.Contains(t, report, "corner far top right")
	assert.Equal(t, 1, e.Reports())

	main, err := e.CameraSystem().Get("main")
	require.NoError(t, err)
	assert.Equal(t, 1, main.HistoryLen())

	require.NoError(t, e.Shutdown())
	assert.Equal(t, EngineStageShutdown, e.Stage())
}

func TestRunSingleCamera(t *testing.T) {
	var out bytes.Buffer
	e, err := New(&ApplicationConfig{Name: "one", ConfigPath: writeScene(t, twoCameras), CameraName: "top", Output: &out})
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Run(context.Background()))

	assert.True(t, strings.HasPrefix(out.String(), "# one\n"))
	assert.NotContains(t, out.String(), `"main"`)
	assert.Contains(t, out.String(), "rotation   [-89.000 0.000 0.000] deg")
}

func TestInitializeUnknownCamera(t *testing.T) {
	e, err := New(&ApplicationConfig{CameraName: "missing", Output: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.ErrorIs(t, e.Initialize(), core.ErrCameraNotFound)
}

func TestInitializeBadConfig(t *testing.T) {
	e, err := New(&ApplicationConfig{ConfigPath: writeScene(t, "[application]\nbogus = true\n")})
	require.NoError(t, err)
	assert.ErrorIs(t, e.Initialize(), core.ErrConfigInvalid)
}

func TestRunBeforeInitialize(t *testing.T) {
	e, err := New(&ApplicationConfig{Output: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Error(t, e.Run(context.Background()))
}

func TestBench(t *testing.T) {
	var out bytes.Buffer
	e, err := New(&ApplicationConfig{BenchIterations: 2, Seed: 7, Output: &out})
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Run(context.Background()))

	for _, bc := range benchCases {
		assert.Contains(t, out.String(), bc.name+": ")
	}
	assert.Contains(t, out.String(), "ns/op")
}

func TestBenchStopsOnCancel(t *testing.T) {
	e, err := New(&ApplicationConfig{BenchIterations: 1000, Output: &bytes.Buffer{}})
	require.NoError(t, err)
	require.NoError(t, e.Initialize())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, e.Run(ctx), context.Canceled)
}

func TestSceneChange(t *testing.T) {
	var out bytes.Buffer
	e, err := New(&ApplicationConfig{ConfigPath: writeScene(t, twoCameras), Output: &out})
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Run(context.Background()))

	e.onSceneChange(nil, core.ErrConfigInvalid)
	assert.Equal(t, 1, e.Reports())

	scene, err := config.Decode(strings.NewReader("[[cameras]]\nname = \"solo\"\n"))
	require.NoError(t, err)
	e.onSceneChange(scene, nil)
	assert.Equal(t, 2, e.Reports())
	assert.Equal(t, []string{"solo"}, e.CameraSystem().Names())
	assert.Contains(t, out.String(), `## camera "solo"`)
}

// overlapWriter flags a write that starts while another one is running.
type overlapWriter struct {
	busy    sync.Mutex
	overlap atomic.Bool
	buf     bytes.Buffer
}

func (w *overlapWriter) Write(p []byte) (int, error) {
	if !w.busy.TryLock() {
		w.overlap.Store(true)
		return len(p), nil
	}
	defer w.busy.Unlock()
	time.Sleep(20 * time.Microsecond)
	return w.buf.Write(p)
}

func TestBenchAndSceneChangeShareOutput(t *testing.T) {
	out := &overlapWriter{}
	e, err := New(&ApplicationConfig{ConfigPath: writeScene(t, twoCameras), BenchIterations: 20, Output: out})
	require.NoError(t, err)
	require.NoError(t, e.Initialize())

	scene, err := config.Decode(strings.NewReader("[[cameras]]\nname = \"solo\"\n"))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- e.Run(context.Background()) }()
	for running := true; running; {
		select {
		case err := <-done:
			require.NoError(t, err)
			running = false
		default:
			e.onSceneChange(scene, nil)
		}
	}

	assert.False(t, out.overlap.Load())
	assert.GreaterOrEqual(t, e.Reports(), 1)
	assert.Contains(t, out.buf.String(), "# bench")
}
