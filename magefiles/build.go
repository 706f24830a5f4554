//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the clay binary into bin/.
func (Build) Clay() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/clay", "./cmd/clay"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs go vet and the test suite with the race detector.
func (Build) Test() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs go mod tidy.
func (Build) Tidy() error {
	return goTidy()
}
