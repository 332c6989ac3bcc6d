// Package vertex describes how vertex structs are laid out in memory and
// turns those descriptions into vertex array attribute configuration.
//
// A vertex type declares its fields once, with struct tags:
//
//	type ColorVertex struct {
//		Position mgl32.Vec3 `vertex:"position"`
//		Color    mgl32.Vec4 `vertex:"color"`
//	}
//
// Describe derives the Layout from the tags by reflection. Register pins a
// hand-written table against that derivation and panics at start-up if the
// two disagree, so a field reordering can never silently desynchronise the
// GPU view of the struct.
package vertex

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/spaghettifunk/lineage/engine/renderer/opengl"
)

const tagName = "vertex"

var (
	ErrNotStruct         = errors.New("vertex type is not a struct")
	ErrUnknownSemantic   = errors.New("unknown vertex semantic")
	ErrDuplicateSemantic = errors.New("duplicate vertex semantic")
	ErrUnsupportedField  = errors.New("unsupported vertex field type")
	ErrNoAttributes      = errors.New("vertex type declares no attributes")
)

// Semantic is the meaning of a vertex attribute.
type Semantic uint8

const (
	Position Semantic = iota
	Normal
	Color
	TexCoord
	semanticCount
)

var semanticNames = [...]string{
	Position: "position",
	Normal:   "normal",
	Color:    "color",
	TexCoord: "texcoord",
}

func (s Semantic) String() string {
	if s < semanticCount {
		return semanticNames[s]
	}
	return fmt.Sprintf("Semantic(%d)", uint8(s))
}

// AttributeName is the shader input conventionally bound to s.
func (s Semantic) AttributeName() string {
	return "vertex_" + s.String()
}

func ParseSemantic(name string) (Semantic, error) {
	for i, n := range semanticNames {
		if n == name {
			return Semantic(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSemantic, name)
}

// Attribute is one field of a vertex type.
type Attribute struct {
	Semantic Semantic
	// Name is the shader attribute the field feeds.
	Name string
	opengl.AttributeSpec
}

// Layout is the attribute schema of a vertex type.
type Layout struct {
	Name       string
	Stride     int32
	Attributes []Attribute
}

// Attribute returns the attribute with the given semantic.
func (l Layout) Attribute(s Semantic) (Attribute, bool) {
	for _, a := range l.Attributes {
		if a.Semantic == s {
			return a, true
		}
	}
	return Attribute{}, false
}

// Describe derives the layout of V from its `vertex` struct tags. Tags have
// the form "semantic[,normalized][,name=shader_name]"; fields without a tag
// or tagged "-" take up space but are not attributes.
func Describe[V any]() (Layout, error) {
	return describe(reflect.TypeOf((*V)(nil)).Elem())
}

func describe(t reflect.Type) (Layout, error) {
	if t.Kind() != reflect.Struct {
		return Layout{}, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}
	layout := Layout{Name: t.Name(), Stride: int32(t.Size())}
	seen := make(map[Semantic]bool)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, ok := f.Tag.Lookup(tagName)
		if !ok || tag == "-" {
			continue
		}
		attr, err := parseTag(tag)
		if err != nil {
			return Layout{}, fmt.Errorf("%s.%s: %w", t.Name(), f.Name, err)
		}
		if seen[attr.Semantic] {
			return Layout{}, fmt.Errorf("%s.%s: %w: %s", t.Name(), f.Name, ErrDuplicateSemantic, attr.Semantic)
		}
		seen[attr.Semantic] = true

		count, xtype, err := componentsOf(f.Type)
		if err != nil {
			return Layout{}, fmt.Errorf("%s.%s: %w", t.Name(), f.Name, err)
		}
		attr.Count = count
		attr.Type = xtype
		attr.Offset = uint32(f.Offset)
		layout.Attributes = append(layout.Attributes, attr)
	}
	if len(layout.Attributes) == 0 {
		return Layout{}, fmt.Errorf("%w: %s", ErrNoAttributes, t)
	}
	return layout, nil
}

func parseTag(tag string) (Attribute, error) {
	parts := strings.Split(tag, ",")
	s, err := ParseSemantic(strings.TrimSpace(parts[0]))
	if err != nil {
		return Attribute{}, err
	}
	attr := Attribute{Semantic: s, Name: s.AttributeName()}
	for _, opt := range parts[1:] {
		opt = strings.TrimSpace(opt)
		switch {
		case opt == "normalized":
			attr.Normalized = true
		case strings.HasPrefix(opt, "name="):
			attr.Name = strings.TrimPrefix(opt, "name=")
		default:
			return Attribute{}, fmt.Errorf("unknown tag option %q", opt)
		}
	}
	return attr, nil
}

var scalarTypes = map[reflect.Kind]opengl.ScalarType{
	reflect.Int8:    opengl.Byte,
	reflect.Uint8:   opengl.UnsignedByte,
	reflect.Int16:   opengl.Short,
	reflect.Uint16:  opengl.UnsignedShort,
	reflect.Int32:   opengl.Int,
	reflect.Uint32:  opengl.UnsignedInt,
	reflect.Float32: opengl.Float,
	reflect.Float64: opengl.Double,
}

// componentsOf maps a field type onto a component count and scalar type.
// Scalars and arrays of one to four scalars are accepted, which covers the
// mgl32 vector types.
func componentsOf(t reflect.Type) (int32, opengl.ScalarType, error) {
	count := 1
	elem := t
	if t.Kind() == reflect.Array {
		count = t.Len()
		elem = t.Elem()
	}
	xtype, ok := scalarTypes[elem.Kind()]
	if !ok || count < 1 || count > 4 {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnsupportedField, t)
	}
	return int32(count), xtype, nil
}

var (
	registryMu sync.RWMutex
	registry   = make(map[reflect.Type]Layout)
)

// Register records the declared layout of V after checking it against the
// layout derived from the struct. It panics on any mismatch and is meant to
// be called from a package level var initialiser.
func Register[V any](declared Layout) Layout {
	t := reflect.TypeOf((*V)(nil)).Elem()
	derived, err := describe(t)
	if err != nil {
		panic(fmt.Sprintf("vertex: cannot describe %s: %v", t, err))
	}
	if declared.Name == "" {
		declared.Name = derived.Name
	}
	if err := compare(declared, derived); err != nil {
		panic(fmt.Sprintf("vertex: declared layout of %s does not match its memory layout: %v", t, err))
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[t] = declared
	return declared
}

// Lookup returns the layout registered for V.
func Lookup[V any]() (Layout, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	l, ok := registry[reflect.TypeOf((*V)(nil)).Elem()]
	return l, ok
}

// LayoutOf returns the registered layout of V, or derives one when V was
// never registered.
func LayoutOf[V any]() (Layout, error) {
	if l, ok := Lookup[V](); ok {
		return l, nil
	}
	return Describe[V]()
}

func compare(declared, derived Layout) error {
	if declared.Stride != derived.Stride {
		return fmt.Errorf("stride %d, struct size %d", declared.Stride, derived.Stride)
	}
	if len(declared.Attributes) != len(derived.Attributes) {
		return fmt.Errorf("%d attributes declared, %d tagged", len(declared.Attributes), len(derived.Attributes))
	}
	for _, want := range declared.Attributes {
		got, ok := derived.Attribute(want.Semantic)
		if !ok {
			return fmt.Errorf("%s is not a tagged field", want.Semantic)
		}
		if want != got {
			return fmt.Errorf("%s declared %+v, found %+v", want.Semantic, want, got)
		}
	}
	return nil
}

// Equal reports whether l and o describe the same memory layout with the
// same shader attribute names.
func (l Layout) Equal(o Layout) bool {
	if l.Name != o.Name || l.Stride != o.Stride || len(l.Attributes) != len(o.Attributes) {
		return false
	}
	for i := range l.Attributes {
		if l.Attributes[i] != o.Attributes[i] {
			return false
		}
	}
	return true
}
