//go:build mage

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/spaghettifunk/lineage/engine/renderer/shaders"
)

const shaderDir = "engine/renderer/shaders"

type Build mg.Namespace

// Builds the lineage binary into bin/.
func (Build) Engine() error {
	mg.Deps(Check.Shaders)
	if _, err := executeCmd("go", withArgs("build", "-o", filepath.Join("bin", "lineage"), "."), withStream()); err != nil {
		return err
	}
	return nil
}

type Check mg.Namespace

// Validates every embedded GLSL file with glslangValidator.
func (Check) Shaders() error {
	files, err := shaders.Files()
	if err != nil {
		return err
	}
	for _, f := range files {
		if !strings.HasSuffix(f, ".vert") && !strings.HasSuffix(f, ".frag") {
			continue
		}
		if _, err := executeCmd("glslangValidator", withArgs(f), withDir(shaderDir)); err != nil {
			return fmt.Errorf("shader %s: %w", f, err)
		}
	}
	return nil
}

type Test mg.Namespace

// Runs every package test.
func (Test) All() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs every package test with the race detector.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}
