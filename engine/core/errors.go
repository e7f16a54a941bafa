package core

import (
	"errors"
)

var (
	ErrConfigInvalid  = errors.New("invalid configuration")
	ErrCameraNotFound = errors.New("camera not found")
	ErrCameraLimit    = errors.New("camera limit reached")
	ErrWatcherClosed  = errors.New("watcher closed")
	ErrUnknown        = errors.New("unknown")
)
