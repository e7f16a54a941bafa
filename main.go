/*
Command animath loads a scene of cameras and prints, for each camera, its
view, projection and view-projection matrices together with the derived
frustum planes, corners and bounds. It can also benchmark the matrix
operations and follow changes to the scene file.
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/animath/engine"
	"github.com/spaghettifunk/animath/engine/core"
)

func main() {
	configPath := flag.String("config", "", "TOML scene file, the built-in scene is used when empty")
	cameraName := flag.String("camera", "", "only report the named camera")
	watch := flag.Bool("watch", false, "report again whenever the scene file changes")
	bench := flag.Int("bench", 0, "number of timed benchmark batches to run")
	seed := flag.Uint64("seed", 1, "seed for the benchmark's random matrices")
	logLevel := flag.String("log-level", "", "debug, info, warn, error or fatal; overrides the scene")
	flag.Parse()

	// capture sigterm and other system calls here
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	e, err := engine.New(&engine.ApplicationConfig{
		ConfigPath:      *configPath,
		CameraName:      *cameraName,
		Watch:           *watch,
		BenchIterations: *bench,
		Seed:            *seed,
		LogLevel:        *logLevel,
		Output:          os.Stdout,
	})
	if err != nil {
		os.Exit(2)
	}

	if err := e.Initialize(); err != nil {
		_ = e.Shutdown()
		os.Exit(1)
	}

	runErr := e.Run(ctx)
	if err := e.Shutdown(); err != nil {
		core.LogError(err.Error())
	}
	if runErr != nil && ctx.Err() == nil {
		core.LogError(runErr.Error())
		os.Exit(1)
	}
}
