package systems

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/spaghettifunk/animath/engine/config"
	"github.com/spaghettifunk/animath/engine/core"
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/renderer/components"
)

type CameraSystem struct {
	Config  *CameraSystemConfig
	Lookup  map[string]uuid.UUID
	Cameras map[uuid.UUID]*components.CameraLookup
	// A default, non-registered camera that always exists as a fallback.
	DefaultCamera *components.Camera

	// names of the cameras registered by the last Configure call
	configured map[string]struct{}
	mutex      sync.RWMutex
}

/** @brief The camera system configuration. */
type CameraSystemConfig struct {
	/**
	 * @brief NOTE: The maximum number of cameras that can be managed by
	 * the system. The default camera does not count.
	 */
	MaxCameraCount uint16
	/** @brief How many past view-projection matrices each camera keeps. */
	HistorySize int
}

/**
 * @brief Initializes the camera system.
 *
 * @param config The configuration for this system.
 * @return The camera system, or an error wrapping ErrConfigInvalid.
 */
func NewCameraSystem(cfg *CameraSystemConfig) (*CameraSystem, error) {
	if cfg.MaxCameraCount == 0 {
		err := fmt.Errorf("func NewCameraSystem - config.MaxCameraCount must be > 0: %w", core.ErrConfigInvalid)
		core.LogError(err.Error())
		return nil, err
	}
	if cfg.HistorySize < 0 {
		err := fmt.Errorf("func NewCameraSystem - config.HistorySize must be >= 0: %w", core.ErrConfigInvalid)
		core.LogError(err.Error())
		return nil, err
	}
	cs := &CameraSystem{
		Config:     cfg,
		Cameras:    make(map[uuid.UUID]*components.CameraLookup, cfg.MaxCameraCount),
		Lookup:     make(map[string]uuid.UUID, cfg.MaxCameraCount),
		configured: make(map[string]struct{}),
	}
	// Setup default camera.
	cs.DefaultCamera = components.NewCamera(cfg.HistorySize)
	cs.DefaultCamera.Name = components.DEFAULT_CAMERA_NAME
	return cs, nil
}

// NewCameraSystemFromScene builds the system with the limits of the scene's
// application section and registers its cameras.
func NewCameraSystemFromScene(scene *config.Scene) (*CameraSystem, error) {
	cs, err := NewCameraSystem(&CameraSystemConfig{
		MaxCameraCount: uint16(scene.Application.MaxCameras),
		HistorySize:    scene.Application.HistorySize,
	})
	if err != nil {
		return nil, err
	}
	if err := cs.Configure(scene); err != nil {
		return nil, err
	}
	return cs, nil
}

/**
 * @brief Shuts down the camera system. Every registered camera is dropped.
 */
func (cs *CameraSystem) Shutdown() error {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	for id, l := range cs.Cameras {
		l.Camera.Reset()
		delete(cs.Cameras, id)
	}
	clear(cs.Lookup)
	clear(cs.configured)
	return nil
}

/**
 * @brief Acquires a pointer to a camera by name.
 * If one is not found, a new one is created and retuned.
 * Internal reference counter is incremented.
 *
 * @param name The name of the camera to acquire.
 * @return A pointer to a camera if successful; an error otherwise.
 */
func (cs *CameraSystem) Acquire(name string) (*components.Camera, error) {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()
	return cs.acquire(name)
}

func (cs *CameraSystem) acquire(name string) (*components.Camera, error) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, nil
	}
	if name == "" {
		err := fmt.Errorf("func CameraSystemAcquire requires a name: %w", core.ErrConfigInvalid)
		core.LogError(err.Error())
		return nil, err
	}

	id, ok := cs.Lookup[name]
	if !ok {
		if len(cs.Cameras) >= int(cs.Config.MaxCameraCount) {
			err := fmt.Errorf("func CameraSystemAcquire failed to acquire '%s', adjust camera system config to allow more: %w", name, core.ErrCameraLimit)
			core.LogError(err.Error())
			return nil, err
		}

		// Create/register the new camera.
		core.LogDebug("Creating new camera named '%s'...", name)
		id = uuid.New()
		camera := components.NewCamera(cs.Config.HistorySize)
		camera.ID = id
		camera.Name = name
		cs.Cameras[id] = &components.CameraLookup{
			ID:     id,
			Camera: camera,
		}

		// Update the hashtable.
		cs.Lookup[name] = id
	}
	cs.Cameras[id].ReferenceCount++
	return cs.Cameras[id].Camera, nil
}

/**
 * @brief Releases a camera with the given name. Internal reference
 * counter is decremented. If this reaches 0, the camera is reset
 * and unregistered, which frees its slot.
 *
 * @param name The name of the camera to release.
 */
func (cs *CameraSystem) Release(name string) error {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()
	return cs.release(name)
}

func (cs *CameraSystem) release(name string) error {
	if name == components.DEFAULT_CAMERA_NAME {
		core.LogDebug("Cannot release default camera. Nothing was done.")
		return nil
	}
	id, ok := cs.Lookup[name]
	if !ok {
		core.LogWarn("CameraSystemRelease failed lookup for '%s'. Nothing was done.", name)
		return fmt.Errorf("release '%s': %w", name, core.ErrCameraNotFound)
	}

	// Decrement the reference count, and reset the camera if the counter reaches 0.
	l := cs.Cameras[id]
	l.ReferenceCount--
	if l.ReferenceCount < 1 {
		l.Camera.Reset()
		delete(cs.Cameras, id)
		delete(cs.Lookup, name)
		delete(cs.configured, name)
	}
	return nil
}

/**
 * @brief Gets a registered camera by name without touching its
 * reference count.
 */
func (cs *CameraSystem) Get(name string) (*components.Camera, error) {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, nil
	}
	id, ok := cs.Lookup[name]
	if !ok {
		return nil, fmt.Errorf("get '%s': %w", name, core.ErrCameraNotFound)
	}
	return cs.Cameras[id].Camera, nil
}

func (cs *CameraSystem) GetByID(id uuid.UUID) (*components.Camera, error) {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	l, ok := cs.Cameras[id]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", id, core.ErrCameraNotFound)
	}
	return l.Camera, nil
}

// ReferenceCount returns how many holders the named camera has, 0 when it
// is not registered.
func (cs *CameraSystem) ReferenceCount(name string) uint16 {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	id, ok := cs.Lookup[name]
	if !ok {
		return 0
	}
	return cs.Cameras[id].ReferenceCount
}

// Names returns the registered camera names in sorted order.
func (cs *CameraSystem) Names() []string {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	names := make([]string, 0, len(cs.Lookup))
	for name := range cs.Lookup {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

/**
 * @brief Gets a pointer to the default camera.
 *
 * @return A pointer to the default camera.
 */
func (cs *CameraSystem) GetDefault() *components.Camera {
	return cs.DefaultCamera
}

/**
 * @brief Registers the cameras of a scene and applies their settings.
 * Cameras registered by an earlier call and missing from the scene are
 * released; cameras present in both keep their id and are reconfigured.
 * Nothing changes when an entry cannot be applied.
 */
func (cs *CameraSystem) Configure(scene *config.Scene) error {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	settings := make([]cameraSettings, len(scene.Cameras))
	for i := range scene.Cameras {
		s, err := newCameraSettings(&scene.Cameras[i])
		if err != nil {
			core.LogError(err.Error())
			return err
		}
		settings[i] = s
	}

	wanted := make(map[string]struct{}, len(settings))
	added := 0
	for _, s := range settings {
		wanted[s.name] = struct{}{}
		if _, ok := cs.Lookup[s.name]; !ok && s.name != components.DEFAULT_CAMERA_NAME {
			added++
		}
	}
	// only cameras nobody else holds free their slot when released
	removed := 0
	for name := range cs.configured {
		if _, ok := wanted[name]; !ok && cs.Cameras[cs.Lookup[name]].ReferenceCount == 1 {
			removed++
		}
	}
	if len(cs.Cameras)+added-removed > int(cs.Config.MaxCameraCount) {
		err := fmt.Errorf("scene needs %d camera(s), limit is %d: %w", len(cs.Cameras)+added-removed, cs.Config.MaxCameraCount, core.ErrCameraLimit)
		core.LogError(err.Error())
		return err
	}

	for name := range cs.configured {
		if _, ok := wanted[name]; !ok {
			core.LogDebug("Camera '%s' is no longer in the scene, releasing it.", name)
			if err := cs.release(name); err != nil {
				return err
			}
			delete(cs.configured, name)
		}
	}
	for _, s := range settings {
		_, held := cs.configured[s.name]
		var camera *components.Camera
		if held {
			camera = cs.Cameras[cs.Lookup[s.name]].Camera
		} else if s.name == components.DEFAULT_CAMERA_NAME {
			camera = cs.DefaultCamera
		} else {
			c, err := cs.acquire(s.name)
			if err != nil {
				return err
			}
			camera = c
		}
		s.apply(camera)
		if s.name != components.DEFAULT_CAMERA_NAME {
			cs.configured[s.name] = struct{}{}
		}
	}
	core.LogInfo("Camera system configured with %d camera(s).", len(settings))
	return nil
}

// cameraSettings is a config entry converted to radians and engine types.
type cameraSettings struct {
	name       string
	position   math.Vector3d
	rotation   math.Vector3d
	lookAt     bool
	target     math.Vector3d
	up         math.Vector3d
	projection components.Projection
	viewport   math.Viewport
}

func newCameraSettings(c *config.Camera) (cameraSettings, error) {
	kind, err := components.ParseProjectionKind(c.Projection.Kind)
	if err != nil {
		return cameraSettings{}, fmt.Errorf("camera '%s': %w", c.Name, err)
	}
	p := c.Projection
	s := cameraSettings{
		name:     c.Name,
		position: vector(c.Position),
		viewport: math.Viewport(p.Viewport),
		projection: components.Projection{
			Kind:      kind,
			FovY:      math.DegToRad(p.FovY),
			Aspect:    p.Aspect,
			Near:      p.Near,
			Far:       p.Far,
			Left:      p.Left,
			Right:     p.Right,
			Bottom:    p.Bottom,
			Top:       p.Top,
			Width:     p.Width,
			Height:    p.Height,
			ZeroToOne: p.ZeroToOne,
		},
	}
	if c.Target != nil {
		s.lookAt = true
		s.target = vector(c.Target)
		s.up = vector(c.Up)
	} else {
		r := vector(c.Rotation)
		s.rotation = math.Vector3d{X: math.DegToRad(r.X), Y: math.DegToRad(r.Y), Z: math.DegToRad(r.Z)}
	}
	return s, nil
}

// apply sets the viewport before the projection so a configured aspect wins
// over the one derived from the viewport.
func (s cameraSettings) apply(c *components.Camera) {
	c.SetPosition(s.position)
	if s.lookAt {
		c.SetLookAt(s.target, s.up)
	} else {
		c.SetEulerRotation(s.rotation)
	}
	c.SetViewport(s.viewport)
	c.SetProjection(s.projection)
}

func vector(v []float64) math.Vector3d {
	if len(v) < 3 {
		return math.NewVector3dZero()
	}
	return math.Vector3d{X: v[0], Y: v[1], Z: v[2]}
}
