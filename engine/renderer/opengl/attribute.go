package opengl

import "github.com/spaghettifunk/lineage/engine/core"

// ConfigureAttribute sets the format, binding index and enabled flag of one
// attribute slot.
func ConfigureAttribute(vao *VertexArray, binding, index uint32, spec AttributeSpec, enabled bool) {
	vao.SetAttributeFormat(index, spec)
	vao.SetAttributeBinding(index, binding)
	vao.SetAttributeEnabled(index, enabled)
}

// ConfigureNamedAttribute resolves name through program and configures the
// resulting slot. Shader variants may not declare every attribute, so a
// missing name is logged and skipped; the return value reports whether the
// attribute was configured.
func ConfigureNamedAttribute(vao *VertexArray, binding uint32, program *Program, name string, spec AttributeSpec, enabled bool) bool {
	loc := program.AttributeLocation(name)
	if loc == InvalidLocation {
		core.LogWarn("attribute %q not found in program %d, skipping", name, program.Handle())
		return false
	}
	ConfigureAttribute(vao, binding, uint32(loc), spec, enabled)
	return true
}
