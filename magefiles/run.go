//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Prints the vector and matrix walkthrough.
func (Run) Vectors() error {
	return runLab("vectors")
}

// Animates the sprite in every mode, one after the other.
func (Run) Transforms() error {
	for _, mode := range []string{"static", "spin", "orbit", "twirl", "pulse", "bounce"} {
		if err := runLab("transforms", "--mode", mode, "--frames", "120"); err != nil {
			return err
		}
	}
	return nil
}

// Flies the camera through the cube scene, reloading labs.toml when it changes.
func (Run) Scene() error {
	mg.Deps(Build.Binary)
	fmt.Println("Run scene...")
	_, err := executeCmd("bin/gfxlabs", withArgs("scene", "--config", "labs.toml", "--watch", "--limit", "--frames", "0"), withStream())
	return err
}

func runLab(args ...string) error {
	mg.Deps(Build.Binary)
	fmt.Printf("Run %s...\n", args[0])
	_, err := executeCmd("bin/gfxlabs", withArgs(args...), withStream())
	return err
}
