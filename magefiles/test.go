//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests.
func (Test) Unit() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the unit tests with the race detector, which needs cgo.
func (Test) Race() error {
	if _, err := executeCmd("go", withArgs("test", "-race", "./..."), withEnv("CGO_ENABLED=1"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the matrix benchmarks.
func (Test) Bench() error {
	if _, err := executeCmd("go", withArgs("test", "-run", "^$", "-bench", ".", "-benchmem"), withDir("engine/math"), withStream()); err != nil {
		return err
	}
	return nil
}
