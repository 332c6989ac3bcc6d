package opengl_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/lineage/engine/core"
	"github.com/spaghettifunk/lineage/engine/renderer/opengl"
	"github.com/spaghettifunk/lineage/engine/renderer/opengl/opengltest"
)

const testVertexSource = `#version 450 core
layout(location = 0) in vec3 vertex_position;
layout(location = 2) in vec4 vertex_color;
uniform mat4 model;
out vec4 color;
void main() {
	color = vertex_color;
	gl_Position = model * vec4(vertex_position, 1.0);
}
`

const testFragmentSource = `#version 450 core
in vec4 color;
out vec4 frag_color;
void main() {
	frag_color = color;
}
`

// captureLog redirects the engine logger for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	core.SetLogOutput(&buf)
	t.Cleanup(func() { core.SetLogOutput(os.Stderr) })
	return &buf
}

func TestCompileShader(t *testing.T) {
	d := opengltest.New()
	s, err := opengl.CompileShader(d, opengl.VertexShader, testVertexSource)
	require.NoError(t, err)
	defer s.Destroy()

	assert.True(t, s.IsCompiled())
	assert.Empty(t, s.InfoLog())
	assert.Equal(t, opengl.VertexShader, s.Stage())
}

func TestCompileShaderFailureSurfacesInfoLog(t *testing.T) {
	d := opengltest.New()
	_, err := opengl.CompileShader(d, opengl.FragmentShader, "#version 450 core\nthis is not glsl\n")
	require.Error(t, err)

	var compileErr *opengl.ShaderCompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, opengl.FragmentShader, compileErr.Stage)
	assert.NotEmpty(t, compileErr.Log)
	assert.Contains(t, err.Error(), compileErr.Log)
	assert.Contains(t, err.Error(), "GL_FRAGMENT_SHADER")

	var gerr *opengl.GraphicsError
	assert.False(t, errors.As(err, &gerr))
	// the failed shader is released
	assert.Equal(t, 1, d.Calls("DeleteShader"))
	assert.Equal(t, 0, d.LiveObjects())
}

func TestLinkProgram(t *testing.T) {
	d := opengltest.New()
	vs, err := opengl.CompileShader(d, opengl.VertexShader, testVertexSource)
	require.NoError(t, err)
	defer vs.Destroy()
	fs, err := opengl.CompileShader(d, opengl.FragmentShader, testFragmentSource)
	require.NoError(t, err)
	defer fs.Destroy()

	p, err := opengl.LinkProgram(d, vs, fs)
	require.NoError(t, err)
	defer p.Destroy()

	assert.True(t, p.IsLinked())
	assert.Equal(t, 0, p.AttachedShaderCount())
	assert.Equal(t, 2, p.ActiveAttributeCount())
	assert.Equal(t, 1, p.ActiveUniformCount())
	assert.Equal(t, int32(0), p.AttributeLocation("vertex_position"))
	assert.Equal(t, int32(2), p.AttributeLocation("vertex_color"))
	assert.Equal(t, opengl.InvalidLocation, p.AttributeLocation("vertex_normal"))
	assert.Equal(t, int32(0), p.UniformLocation("model"))
	assert.Equal(t, opengl.InvalidLocation, p.UniformLocation("view"))
}

func TestLinkProgramFailure(t *testing.T) {
	d := opengltest.New()
	vs, err := opengl.CompileShader(d, opengl.VertexShader, testVertexSource)
	require.NoError(t, err)
	defer vs.Destroy()

	_, err = opengl.LinkProgram(d, vs)
	var linkErr *opengl.ProgramLinkError
	require.True(t, errors.As(err, &linkErr))
	assert.NotEmpty(t, linkErr.Log)
	assert.Equal(t, 1, d.Calls("DetachShader"))
	assert.Equal(t, 1, d.Calls("DeleteProgram"))
}

func TestBuildProgram(t *testing.T) {
	d := opengltest.New()
	p, err := opengl.BuildProgram(d,
		opengl.ShaderSource{Stage: opengl.VertexShader, Source: testVertexSource},
		opengl.ShaderSource{Stage: opengl.FragmentShader, Source: testFragmentSource},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Calls("DeleteShader"))
	assert.Equal(t, 1, d.LiveObjects())
	p.Destroy()

	_, err = opengl.BuildProgram(d,
		opengl.ShaderSource{Stage: opengl.VertexShader, Source: testVertexSource},
		opengl.ShaderSource{Stage: opengl.FragmentShader, Source: "void main() {}"},
	)
	var compileErr *opengl.ShaderCompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, opengl.FragmentShader, compileErr.Stage)
	assert.Equal(t, 0, d.LiveObjects())
}

func TestConfigureNamedAttribute(t *testing.T) {
	logs := captureLog(t)
	d := opengltest.New()
	p, err := opengl.BuildProgram(d,
		opengl.ShaderSource{Stage: opengl.VertexShader, Source: testVertexSource},
		opengl.ShaderSource{Stage: opengl.FragmentShader, Source: testFragmentSource},
	)
	require.NoError(t, err)
	vao, err := opengl.NewVertexArray(d)
	require.NoError(t, err)

	spec := opengl.AttributeSpec{Count: 4, Type: opengl.Float, Offset: 12}
	assert.True(t, opengl.ConfigureNamedAttribute(vao, 0, p, "vertex_color", spec, true))
	state, ok := vao.Attribute(2)
	require.True(t, ok)
	assert.Equal(t, spec, state.Spec)
	assert.Equal(t, uint32(0), state.Binding)
	assert.True(t, state.Enabled)

	format, binding, enabled, ok := d.AttributeFormat(vao.Handle(), 2)
	require.True(t, ok)
	assert.Equal(t, spec, format)
	assert.Equal(t, uint32(0), binding)
	assert.True(t, enabled)

	calls := d.Calls("VertexArrayAttribFormat")
	assert.False(t, opengl.ConfigureNamedAttribute(vao, 0, p, "vertex_normal", spec, true))
	assert.Equal(t, calls, d.Calls("VertexArrayAttribFormat"))
	assert.Contains(t, logs.String(), "vertex_normal")
}
