//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Checks the shaders and runs the testbed with lineage.toml.
func (Run) Engine() error {
	mg.Deps(Check.Shaders)
	fmt.Println("Run engine...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "lineage.toml"), withStream()); err != nil {
		return err
	}
	return nil
}
