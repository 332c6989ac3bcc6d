package vertex

import "github.com/spaghettifunk/lineage/engine/renderer/opengl"

// Configure sets up every attribute of layout on vao, resolving slots by
// name through program. Attributes the program does not use are skipped with
// a warning. It returns the number of attributes configured.
func Configure(vao *opengl.VertexArray, program *opengl.Program, binding uint32, layout Layout) int {
	n := 0
	for _, a := range layout.Attributes {
		if opengl.ConfigureNamedAttribute(vao, binding, program, a.Name, a.AttributeSpec, true) {
			n++
		}
	}
	return n
}

// ConfigureIndexed sets up the attributes of layout that have an entry in
// locations, using the given slots directly.
func ConfigureIndexed(vao *opengl.VertexArray, binding uint32, layout Layout, locations map[Semantic]uint32) int {
	n := 0
	for _, a := range layout.Attributes {
		index, ok := locations[a.Semantic]
		if !ok {
			continue
		}
		opengl.ConfigureAttribute(vao, binding, index, a.AttributeSpec, true)
		n++
	}
	return n
}
