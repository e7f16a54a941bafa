package config

import (
	"bytes"
	m "math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spaghettifunk/animath/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneTOML = `
[application]
name = "viewer"
log_level = "debug"
max_cameras = 4
history_size = 3

[[cameras]]
name = "main"
position = [0.0, 2.0, 10.0]
target = [0.0, 0.0, 0.0]

  [cameras.projection]
  kind = "perspective"
  fovy = 45.0
  near = 0.5
  far = inf
  viewport = [0, 0, 800, 600]

[[cameras]]
name = "map"
rotation = [-90.0, 0.0, 0.0]

  [cameras.projection]
  kind = "ortho_symmetric"
  width = 20.0
  height = 20.0
  near = 0.1
  far = 100.0
  zero_to_one = true
`

func TestDecodeScene(t *testing.T) {
	s, err := Decode(strings.NewReader(sceneTOML))
	require.NoError(t, err)

	assert.Equal(t, "viewer", s.Application.Name)
	assert.Equal(t, 3, s.Application.HistorySize)
	require.Len(t, s.Cameras, 2)

	main := s.Cameras[0]
	assert.Equal(t, []float64{0, 2, 10}, main.Position)
	assert.Equal(t, []float64{0, 1, 0}, main.Up)
	assert.Nil(t, main.Rotation)
	assert.True(t, m.IsInf(main.Projection.Far, 1))
	assert.InDelta(t, 800.0/600.0, main.Projection.Aspect, 1e-15)

	mapCam := s.Cameras[1]
	assert.Equal(t, []float64{0, 0, 0}, mapCam.Position)
	assert.Equal(t, KindOrthoSymmetric, mapCam.Projection.Kind)
	assert.True(t, mapCam.Projection.ZeroToOne)
	assert.Equal(t, DefaultViewport, mapCam.Projection.Viewport)
}

func TestDecodeAppliesDefaults(t *testing.T) {
	s, err := Decode(strings.NewReader("[[cameras]]\nname = \"a\"\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultName, s.Application.Name)
	assert.Equal(t, DefaultLogLevel, s.Application.LogLevel)
	assert.Equal(t, DefaultMaxCameras, s.Application.MaxCameras)
	p := s.Cameras[0].Projection
	assert.Equal(t, KindPerspective, p.Kind)
	assert.Equal(t, DefaultFovY, p.FovY)
	assert.Equal(t, DefaultNear, p.Near)
	assert.Equal(t, DefaultFar, p.Far)
	assert.InDelta(t, 1280.0/720.0, p.Aspect, 1e-15)
	assert.Equal(t, []float64{0, 0, 0}, s.Cameras[0].Rotation)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"unknown key", "[application]\ncolour = \"red\"\n"},
		{"syntax", "[application\n"},
		{"log level", "[application]\nlog_level = \"loud\"\n"},
		{"too many cameras", "[application]\nmax_cameras = 1\n[[cameras]]\nname = \"a\"\n[[cameras]]\nname = \"b\"\n"},
		{"unnamed camera", "[[cameras]]\nposition = [1.0, 2.0, 3.0]\n"},
		{"duplicate camera", "[[cameras]]\nname = \"a\"\n[[cameras]]\nname = \"a\"\n"},
		{"short vector", "[[cameras]]\nname = \"a\"\nposition = [1.0, 2.0]\n"},
		{"rotation and target", "[[cameras]]\nname = \"a\"\nrotation = [0.0, 0.0, 0.0]\ntarget = [0.0, 0.0, -1.0]\n"},
		{"unknown kind", "[[cameras]]\nname = \"a\"\n[cameras.projection]\nkind = \"fisheye\"\n"},
		{"fov", "[[cameras]]\nname = \"a\"\n[cameras.projection]\nfovy = 190.0\n"},
		{"near after far", "[[cameras]]\nname = \"a\"\n[cameras.projection]\nnear = 10.0\nfar = 1.0\n"},
		{"both infinite", "[[cameras]]\nname = \"a\"\n[cameras.projection]\nnear = inf\nfar = inf\n"},
		{"infinite ortho", "[[cameras]]\nname = \"a\"\n[cameras.projection]\nkind = \"ortho\"\nleft = -1.0\nright = 1.0\nbottom = -1.0\ntop = 1.0\nnear = 0.1\nfar = inf\n"},
		{"empty frustum", "[[cameras]]\nname = \"a\"\n[cameras.projection]\nkind = \"frustum\"\nnear = 1.0\nfar = 10.0\n"},
		{"viewport", "[[cameras]]\nname = \"a\"\n[cameras.projection]\nviewport = [0, 0, 100, -1]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.toml))
			assert.ErrorIs(t, err, core.ErrConfigInvalid)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	src, err := Decode(strings.NewReader(sceneTOML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, src.Encode(&buf))
	assert.Contains(t, buf.String(), "inf")

	back, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, src, back)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(sceneTOML), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "viewer", s.Application.Name)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultSceneIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, "main", s.Cameras[0].Name)
	assert.Equal(t, []float64{0, 1, 0}, s.Cameras[0].Up)
}

func TestExampleSceneLoads(t *testing.T) {
	s, err := Load(filepath.Join("..", "..", "assets", "scene.toml"))
	require.NoError(t, err)
	require.Len(t, s.Cameras, 4)
	assert.Equal(t, KindFrustum, s.Cameras[3].Projection.Kind)
	assert.True(t, m.IsInf(s.Cameras[1].Projection.Far, 1))
}
