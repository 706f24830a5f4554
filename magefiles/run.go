//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

const exampleScene = "assets/scenes/triangle.toml"

// Prints the matrices of the example scene.
func (Run) MVP() error {
	return runClay("mvp", "--scene", exampleScene, "--vertices")
}

// Animates the example scene for two seconds.
func (Run) Play() error {
	return runClay("play", "--scene", exampleScene, "--frames", "120")
}

// Renders the example scene and reloads it on change, until interrupted.
func (Run) Watch() error {
	mg.Deps(Build.Clay)
	fmt.Println("Watching scene...")
	if _, err := executeCmd("bin/clay", withArgs("watch", "--scene", exampleScene, "--log-level", "debug"), withStream()); err != nil {
		return err
	}
	return nil
}

func runClay(args ...string) error {
	fmt.Println("Run clay...")
	if _, err := executeCmd("go", withArgs(append([]string{"run", "./cmd/clay"}, args...)...), withStream()); err != nil {
		return err
	}
	return nil
}
