package engine

import "io"

type ApplicationConfig struct {
	// The application name used in the report header. Overrides the scene's name when set.
	Name string
	// Path to the TOML scene file. The built-in default scene is used when empty.
	ConfigPath string
	// Only report this camera. Every registered camera is reported when empty.
	CameraName string
	// Reload the scene file and report again whenever it changes.
	Watch bool
	// Number of timed batches for the matrix benchmark, 0 disables it.
	BenchIterations int
	// Seed for the benchmark's random matrices.
	Seed uint64
	// Overrides the scene's log level when set.
	LogLevel string
	// Where reports are written.
	Output io.Writer
}
