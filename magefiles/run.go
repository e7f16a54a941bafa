//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Reports every camera of the example scene.
func (Run) Demo() error {
	fmt.Println("Run demo...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "assets/scene.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Reports the example scene and then times the matrix operations.
func (Run) Bench() error {
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "assets/scene.toml", "-bench", "30", "-log-level", "warn"), withStream()); err != nil {
		return err
	}
	return nil
}
