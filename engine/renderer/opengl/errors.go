package opengl

import (
	"errors"
	"fmt"
)

var (
	ErrImmutableBuffer  = errors.New("buffer storage is immutable")
	ErrBufferNotDynamic = errors.New("immutable buffer was created without dynamic storage")
	ErrBufferRange      = errors.New("buffer range out of bounds")
	ErrEmptyData        = errors.New("buffer data is empty")
	ErrInvalidHandle    = errors.New("operation on an invalid handle")
	ErrUnmapCorrupted   = errors.New("buffer contents became corrupt while mapped")
	ErrContextClosed    = errors.New("context is closed")
)

// GraphicsError is returned when the driver refuses an operation. Code is the
// last error code read from the driver, which may be GL_NO_ERROR when the
// driver failed silently.
type GraphicsError struct {
	Op   string
	Code ErrorCode
}

func (e *GraphicsError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Op, ErrorString(e.Code))
}

// newGraphicsError reads the pending driver errors and wraps the last one.
func newGraphicsError(d Driver, op string) *GraphicsError {
	code, _ := drainErrors(d)
	return &GraphicsError{Op: op, Code: code}
}

// checkDriver returns a *GraphicsError if the driver reported an error since
// the last check.
func checkDriver(d Driver, op string) error {
	if code, n := drainErrors(d); n > 0 {
		return &GraphicsError{Op: op, Code: code}
	}
	return nil
}

// ShaderCompileError carries the info log of a shader that failed to compile.
type ShaderCompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%s compilation failed: %s", e.Stage, e.Log)
}

// ProgramLinkError carries the info log of a program that failed to link.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("program link failed: %s", e.Log)
}
