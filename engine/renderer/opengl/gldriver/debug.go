package gldriver

import (
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/spaghettifunk/lineage/engine/core"
)

// EnableDebugOutput routes driver debug messages to the engine logger. It
// needs a context created with the debug flag to report anything useful.
func EnableDebugOutput() {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(logDebugMessage, nil)
}

func logDebugMessage(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		core.LogError("GL debug [0x%X]: %s", id, message)
	case gl.DEBUG_SEVERITY_MEDIUM, gl.DEBUG_SEVERITY_LOW:
		core.LogWarn("GL debug [0x%X]: %s", id, message)
	default:
		core.LogDebug("GL debug [0x%X]: %s", id, message)
	}
}
