package config

import (
	"errors"
	"fmt"
	"io"
	m "math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/animath/engine/core"
)

const (
	DefaultName        = "animath"
	DefaultLogLevel    = "info"
	DefaultMaxCameras  = 16
	DefaultHistorySize = 8
	DefaultFovY        = 60.0
	DefaultNear        = 0.1
	DefaultFar         = 1000.0
)

// Projection kinds accepted in [cameras.projection].kind.
const (
	KindPerspective    = "perspective"
	KindFrustum        = "frustum"
	KindOrtho          = "ortho"
	KindOrthoSymmetric = "ortho_symmetric"
)

var DefaultViewport = [4]int{0, 0, 1280, 720}

/**
 * @brief The scene file: application settings plus the cameras that the
 * camera system registers on startup.
 */
type Scene struct {
	Application Application `toml:"application"`
	Cameras     []Camera    `toml:"cameras"`
}

type Application struct {
	Name        string `toml:"name"`
	LogLevel    string `toml:"log_level"`
	MaxCameras  int    `toml:"max_cameras"`
	HistorySize int    `toml:"history_size"`
}

/**
 * @brief A camera entry. Orientation comes either from Rotation (Euler
 * angles in degrees, pitch/yaw/roll) or from Target and Up.
 */
type Camera struct {
	Name       string     `toml:"name"`
	Position   []float64  `toml:"position,omitempty"`
	Rotation   []float64  `toml:"rotation,omitempty"`
	Target     []float64  `toml:"target,omitempty"`
	Up         []float64  `toml:"up,omitempty"`
	Projection Projection `toml:"projection"`
}

/**
 * @brief Projection settings. Which fields matter depends on Kind: FovY and
 * Aspect for perspective, Left/Right/Bottom/Top for frustum and ortho,
 * Width/Height for ortho_symmetric. Near and Far may be inf for the
 * perspective kind.
 */
type Projection struct {
	Kind      string  `toml:"kind"`
	FovY      float64 `toml:"fovy,omitempty"`
	Aspect    float64 `toml:"aspect,omitempty"`
	Near      float64 `toml:"near"`
	Far       float64 `toml:"far"`
	Left      float64 `toml:"left,omitempty"`
	Right     float64 `toml:"right,omitempty"`
	Bottom    float64 `toml:"bottom,omitempty"`
	Top       float64 `toml:"top,omitempty"`
	Width     float64 `toml:"width,omitempty"`
	Height    float64 `toml:"height,omitempty"`
	ZeroToOne bool    `toml:"zero_to_one"`
	Viewport  [4]int  `toml:"viewport"`
}

// Default returns a scene with a single perspective camera named "main".
func Default() *Scene {
	s := &Scene{
		Cameras: []Camera{{
			Name:     "main",
			Position: []float64{0, 0, 5},
			Target:   []float64{0, 0, 0},
		}},
	}
	s.ApplyDefaults()
	return s
}

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	core.LogDebug("Loaded config %s with %d camera(s).", path, len(s.Cameras))
	return s, nil
}

/**
 * @brief Decodes a scene from r. Unknown keys are rejected, omitted fields
 * get their defaults and the result is validated.
 */
func Decode(r io.Reader) (*Scene, error) {
	var s Scene
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", core.ErrConfigInvalid, strict.String())
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %s", core.ErrConfigInvalid, row, col, decodeErr.Error())
		}
		return nil, fmt.Errorf("%w: %s", core.ErrConfigInvalid, err.Error())
	}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Encode writes the scene as TOML.
func (s *Scene) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(s)
}

// ApplyDefaults fills every omitted field.
func (s *Scene) ApplyDefaults() {
	if s.Application.Name == "" {
		s.Application.Name = DefaultName
	}
	if s.Application.LogLevel == "" {
		s.Application.LogLevel = DefaultLogLevel
	}
	if s.Application.MaxCameras == 0 {
		s.Application.MaxCameras = DefaultMaxCameras
	}
	if s.Application.HistorySize == 0 {
		s.Application.HistorySize = DefaultHistorySize
	}
	for i := range s.Cameras {
		c := &s.Cameras[i]
		if c.Position == nil {
			c.Position = []float64{0, 0, 0}
		}
		if c.Target != nil && c.Up == nil {
			c.Up = []float64{0, 1, 0}
		}
		if c.Target == nil && c.Rotation == nil {
			c.Rotation = []float64{0, 0, 0}
		}
		p := &c.Projection
		if p.Kind == "" {
			p.Kind = KindPerspective
		}
		if p.Viewport[2] == 0 && p.Viewport[3] == 0 {
			p.Viewport = DefaultViewport
		}
		if p.Near == 0 && p.Far == 0 {
			p.Near, p.Far = DefaultNear, DefaultFar
		}
		if p.Kind == KindPerspective {
			if p.FovY == 0 {
				p.FovY = DefaultFovY
			}
			if p.Aspect == 0 && p.Viewport[3] > 0 {
				p.Aspect = float64(p.Viewport[2]) / float64(p.Viewport[3])
			}
		}
	}
}

// Validate checks the scene for values the camera system cannot use.
func (s *Scene) Validate() error {
	if _, err := log.ParseLevel(s.Application.LogLevel); err != nil {
		return invalid("application.log_level %q", s.Application.LogLevel)
	}
	if s.Application.MaxCameras < 1 {
		return invalid("application.max_cameras must be >= 1, got %d", s.Application.MaxCameras)
	}
	if len(s.Cameras) > s.Application.MaxCameras {
		return invalid("%d cameras exceed application.max_cameras %d", len(s.Cameras), s.Application.MaxCameras)
	}
	if s.Application.HistorySize < 0 {
		return invalid("application.history_size must be >= 0, got %d", s.Application.HistorySize)
	}

	seen := make(map[string]bool, len(s.Cameras))
	for i := range s.Cameras {
		c := &s.Cameras[i]
		if c.Name == "" {
			return invalid("cameras[%d] has no name", i)
		}
		if seen[c.Name] {
			return invalid("duplicate camera %q", c.Name)
		}
		seen[c.Name] = true
		if err := c.validate(); err != nil {
			return fmt.Errorf("camera %q: %w", c.Name, err)
		}
	}
	return nil
}

func (c *Camera) validate() error {
	for _, v := range []struct {
		name string
		val  []float64
	}{{"position", c.Position}, {"rotation", c.Rotation}, {"target", c.Target}, {"up", c.Up}} {
		if v.val != nil && len(v.val) != 3 {
			return invalid("%s needs 3 components, got %d", v.name, len(v.val))
		}
	}
	if c.Target != nil && c.Rotation != nil {
		return invalid("rotation and target are mutually exclusive")
	}

	p := c.Projection
	if p.Viewport[2] <= 0 || p.Viewport[3] <= 0 {
		return invalid("viewport size must be positive, got %dx%d", p.Viewport[2], p.Viewport[3])
	}
	switch p.Kind {
	case KindPerspective:
		if p.FovY <= 0 || p.FovY >= 180 {
			return invalid("fovy must be in (0, 180) degrees, got %g", p.FovY)
		}
		if p.Aspect <= 0 {
			return invalid("aspect must be positive, got %g", p.Aspect)
		}
		return validateDepth(p.Near, p.Far, true)
	case KindFrustum:
		if p.Left == p.Right || p.Bottom == p.Top {
			return invalid("frustum bounds are empty")
		}
		return validateDepth(p.Near, p.Far, false)
	case KindOrtho:
		if p.Left == p.Right || p.Bottom == p.Top {
			return invalid("ortho bounds are empty")
		}
		if p.Near == p.Far || m.IsInf(p.Near, 0) || m.IsInf(p.Far, 0) {
			return invalid("ortho depth range [%g, %g] is invalid", p.Near, p.Far)
		}
	case KindOrthoSymmetric:
		if p.Width <= 0 || p.Height <= 0 {
			return invalid("width and height must be positive")
		}
		if p.Near == p.Far || m.IsInf(p.Near, 0) || m.IsInf(p.Far, 0) {
			return invalid("ortho depth range [%g, %g] is invalid", p.Near, p.Far)
		}
	default:
		return invalid("unknown projection kind %q", p.Kind)
	}
	return nil
}

// validateDepth accepts 0 < near < far, and an infinite near or far plane
// when allowInf is set.
func validateDepth(near, far float64, allowInf bool) error {
	nearInf, farInf := m.IsInf(near, 1), m.IsInf(far, 1)
	if (nearInf || farInf) && !allowInf {
		return invalid("infinite depth range is only supported by perspective projections")
	}
	if nearInf && farInf {
		return invalid("near and far cannot both be infinite")
	}
	if m.IsNaN(near) || m.IsNaN(far) || near <= 0 || far <= 0 {
		return invalid("near and far must be positive, got %g and %g", near, far)
	}
	if !nearInf && !farInf && near >= far {
		return invalid("near %g must be less than far %g", near, far)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", core.ErrConfigInvalid, fmt.Sprintf(format, args...))
}
