//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Generates the sample bricks into samples/.
func (Run) Samples() error {
	mg.Deps(Build.Binary)
	fmt.Println("Generating samples...")
	for _, format := range []string{"obj", "stl"} {
		args := withArgs("batch", "--sizes", "1x1x1,2x2x1,2x4x1", "--out-dir", "samples", "--format", format)
		if _, err := executeCmd("bin/brickforge", args, withStream()); err != nil {
			return err
		}
	}
	return nil
}

// Regenerates samples/brick.obj whenever brick.toml changes.
func (Run) Watch() error {
	mg.Deps(Build.Binary)
	if _, err := executeCmd("bin/brickforge", withArgs("watch", "-c", "brick.toml", "-o", "samples/brick.obj"), withStream()); err != nil {
		return err
	}
	return nil
}
