package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spaghettifunk/lineage/engine/core"
	"github.com/spaghettifunk/lineage/engine/renderer/opengl"
)

var ErrUnknownManagerKind = errors.New("unknown render manager kind")

// ManagerKind selects one of the bundled render managers.
type ManagerKind uint8

const (
	DefaultManager ManagerKind = iota
	PrototypeManager
)

func (k ManagerKind) String() string {
	switch k {
	case DefaultManager:
		return "default"
	case PrototypeManager:
		return "prototype"
	default:
		return fmt.Sprintf("ManagerKind(%d)", uint8(k))
	}
}

// ParseManagerKind converts a configuration string into a ManagerKind.
func ParseManagerKind(s string) (ManagerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default", "":
		return DefaultManager, nil
	case "prototype":
		return PrototypeManager, nil
	}
	return DefaultManager, fmt.Errorf("%w: %q", ErrUnknownManagerKind, s)
}

// New builds the render manager of the given kind. Shader compile and link
// failures are returned unchanged so callers can report the info log.
func New(kind ManagerKind, ctx *opengl.Context, state State, opts ...Option) (RenderManager, error) {
	var (
		rm  RenderManager
		err error
	)
	switch kind {
	case DefaultManager:
		rm, err = NewDefaultRenderManager(ctx, state, opts...)
	case PrototypeManager:
		rm, err = NewPrototypeRenderManager(ctx, state, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownManagerKind, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s render manager: %w", kind, err)
	}
	core.LogInfo("Renderer initialized with the %s render manager.", kind)
	return rm, nil
}
