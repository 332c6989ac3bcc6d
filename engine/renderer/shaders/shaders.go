// Package shaders holds the GLSL sources compiled at start-up.
package shaders

import (
	"embed"
	"fmt"

	"github.com/spaghettifunk/lineage/engine/renderer/opengl"
)

//go:embed *.vert *.frag
var sources embed.FS

// Uniform names shared by every program.
const (
	UniformModel      = "model"
	UniformView       = "view"
	UniformProjection = "projection"
)

// Program identifies one vertex and fragment shader pair.
type Program string

const (
	Default   Program = "default"
	Prototype Program = "prototype"
)

// Programs lists every pair shipped with the engine.
var Programs = []Program{Default, Prototype}

// Sources returns the stages of p ready for opengl.BuildProgram.
func Sources(p Program) ([]opengl.ShaderSource, error) {
	vert, err := sources.ReadFile(string(p) + ".vert")
	if err != nil {
		return nil, fmt.Errorf("vertex shader for %q: %w", p, err)
	}
	frag, err := sources.ReadFile(string(p) + ".frag")
	if err != nil {
		return nil, fmt.Errorf("fragment shader for %q: %w", p, err)
	}
	return []opengl.ShaderSource{
		{Stage: opengl.VertexShader, Source: string(vert)},
		{Stage: opengl.FragmentShader, Source: string(frag)},
	}, nil
}

// Build compiles and links p.
func Build(d opengl.Driver, p Program) (*opengl.Program, error) {
	srcs, err := Sources(p)
	if err != nil {
		return nil, err
	}
	prog, err := opengl.BuildProgram(d, srcs...)
	if err != nil {
		return nil, fmt.Errorf("building %s program: %w", p, err)
	}
	return prog, nil
}

// Files returns the embedded file names, for tooling that validates them.
func Files() ([]string, error) {
	entries, err := sources.ReadDir(".")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// ReadFile returns the source of one embedded file.
func ReadFile(name string) ([]byte, error) {
	return sources.ReadFile(name)
}
