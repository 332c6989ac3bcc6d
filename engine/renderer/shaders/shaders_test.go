package shaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/lineage/engine/renderer/opengl"
	"github.com/spaghettifunk/lineage/engine/renderer/opengl/opengltest"
)

func TestBuildAllPrograms(t *testing.T) {
	d := opengltest.New()
	for _, p := range Programs {
		prog, err := Build(d, p)
		require.NoError(t, err, p)
		assert.Equal(t, int32(0), prog.AttributeLocation("vertex_position"), p)
		assert.NotEqual(t, opengl.InvalidLocation, prog.AttributeLocation("vertex_color"), p)
		prog.Destroy()
	}
	assert.Equal(t, 0, d.LiveObjects())
}

func TestDefaultProgramInterface(t *testing.T) {
	d := opengltest.New()
	prog, err := Build(d, Default)
	require.NoError(t, err)
	defer prog.Destroy()

	for _, name := range []string{UniformModel, UniformView, UniformProjection} {
		assert.NotEqual(t, opengl.InvalidLocation, prog.UniformLocation(name), name)
	}
	assert.Equal(t, int32(1), prog.AttributeLocation("vertex_normal"))
	assert.Equal(t, int32(2), prog.AttributeLocation("vertex_color"))
}

func TestUnknownProgram(t *testing.T) {
	_, err := Sources(Program("missing"))
	assert.Error(t, err)
}

func TestFiles(t *testing.T) {
	files, err := Files()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"default.frag", "default.vert", "prototype.frag", "prototype.vert"}, files)
}
