package opengl

import "fmt"

// The enum values below are the OpenGL tokens. They are declared here so that
// the handle wrappers and their tests stay free of cgo; the gldriver package
// passes them straight through to the native API.

// ErrorCode is a value returned by glGetError.
type ErrorCode uint32

const (
	NoError                     ErrorCode = 0
	InvalidEnum                 ErrorCode = 0x0500
	InvalidValue                ErrorCode = 0x0501
	InvalidOperation            ErrorCode = 0x0502
	StackOverflow               ErrorCode = 0x0503
	StackUnderflow              ErrorCode = 0x0504
	OutOfMemory                 ErrorCode = 0x0505
	InvalidFramebufferOperation ErrorCode = 0x0506
)

// ErrorString returns a printable name for an error code.
func ErrorString(code ErrorCode) string {
	switch code {
	case NoError:
		return "GL_NO_ERROR (0x0000)"
	case InvalidEnum:
		return "GL_INVALID_ENUM (0x0500)"
	case InvalidValue:
		return "GL_INVALID_VALUE (0x0501)"
	case InvalidOperation:
		return "GL_INVALID_OPERATION (0x0502)"
	case StackOverflow:
		return "GL_STACK_OVERFLOW (0x0503)"
	case StackUnderflow:
		return "GL_STACK_UNDERFLOW (0x0504)"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY (0x0505)"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION (0x0506)"
	default:
		return fmt.Sprintf("Unknown Error (0x%04X)", uint32(code))
	}
}

func (c ErrorCode) String() string {
	return ErrorString(c)
}

// ShaderStage is the kind of a shader object.
type ShaderStage uint32

const (
	FragmentShader       ShaderStage = 0x8B30
	VertexShader         ShaderStage = 0x8B31
	GeometryShader       ShaderStage = 0x8DD9
	TessEvaluationShader ShaderStage = 0x8E87
	TessControlShader    ShaderStage = 0x8E88
	ComputeShader        ShaderStage = 0x91B9
)

func (s ShaderStage) String() string {
	switch s {
	case ComputeShader:
		return "GL_COMPUTE_SHADER"
	case FragmentShader:
		return "GL_FRAGMENT_SHADER"
	case GeometryShader:
		return "GL_GEOMETRY_SHADER"
	case TessControlShader:
		return "GL_TESS_CONTROL_SHADER"
	case TessEvaluationShader:
		return "GL_TESS_EVALUATION_SHADER"
	case VertexShader:
		return "GL_VERTEX_SHADER"
	default:
		return "Unknown Shader Type"
	}
}

// ScalarType is the component type of a vertex attribute or index.
type ScalarType uint32

const (
	Byte          ScalarType = 0x1400
	UnsignedByte  ScalarType = 0x1401
	Short         ScalarType = 0x1402
	UnsignedShort ScalarType = 0x1403
	Int           ScalarType = 0x1404
	UnsignedInt   ScalarType = 0x1405
	Float         ScalarType = 0x1406
	Double        ScalarType = 0x140A
)

// Size returns the width of one component in bytes.
func (t ScalarType) Size() int {
	switch t {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort:
		return 2
	case Int, UnsignedInt, Float:
		return 4
	case Double:
		return 8
	default:
		return 0
	}
}

func (t ScalarType) String() string {
	switch t {
	case Byte:
		return "GL_BYTE"
	case UnsignedByte:
		return "GL_UNSIGNED_BYTE"
	case Short:
		return "GL_SHORT"
	case UnsignedShort:
		return "GL_UNSIGNED_SHORT"
	case Int:
		return "GL_INT"
	case UnsignedInt:
		return "GL_UNSIGNED_INT"
	case Float:
		return "GL_FLOAT"
	case Double:
		return "GL_DOUBLE"
	default:
		return fmt.Sprintf("ScalarType(0x%04X)", uint32(t))
	}
}

// PrimitiveKind is the topology used by a draw call.
type PrimitiveKind uint32

const (
	Points        PrimitiveKind = 0x0000
	Lines         PrimitiveKind = 0x0001
	LineLoop      PrimitiveKind = 0x0002
	LineStrip     PrimitiveKind = 0x0003
	Triangles     PrimitiveKind = 0x0004
	TriangleStrip PrimitiveKind = 0x0005
	TriangleFan   PrimitiveKind = 0x0006
)

func (p PrimitiveKind) String() string {
	switch p {
	case Points:
		return "GL_POINTS"
	case Lines:
		return "GL_LINES"
	case LineLoop:
		return "GL_LINE_LOOP"
	case LineStrip:
		return "GL_LINE_STRIP"
	case Triangles:
		return "GL_TRIANGLES"
	case TriangleStrip:
		return "GL_TRIANGLE_STRIP"
	case TriangleFan:
		return "GL_TRIANGLE_FAN"
	default:
		return fmt.Sprintf("PrimitiveKind(0x%04X)", uint32(p))
	}
}

// BufferTarget is a buffer binding point.
type BufferTarget uint32

const (
	ArrayBuffer        BufferTarget = 0x8892
	ElementArrayBuffer BufferTarget = 0x8893
	UniformBuffer      BufferTarget = 0x8A11
)

// StorageFlags is the flag set passed to glNamedBufferStorage.
type StorageFlags uint32

const (
	MapReadBit        StorageFlags = 0x0001
	MapWriteBit       StorageFlags = 0x0002
	MapPersistentBit  StorageFlags = 0x0040
	MapCoherentBit    StorageFlags = 0x0080
	DynamicStorageBit StorageFlags = 0x0100
	ClientStorageBit  StorageFlags = 0x0200
)

// BufferUsage is the usage hint passed to glNamedBufferData.
type BufferUsage uint32

const (
	StreamDraw  BufferUsage = 0x88E0
	StaticDraw  BufferUsage = 0x88E4
	DynamicDraw BufferUsage = 0x88E8
)

// MapAccess is the access policy passed to glMapNamedBuffer.
type MapAccess uint32

const (
	ReadOnly  MapAccess = 0x88B8
	WriteOnly MapAccess = 0x88B9
	ReadWrite MapAccess = 0x88BA
)

// ClearMask selects the buffers cleared by glClear.
type ClearMask uint32

const (
	DepthBufferBit   ClearMask = 0x00000100
	StencilBufferBit ClearMask = 0x00000400
	ColorBufferBit   ClearMask = 0x00004000
)

// Parameter names used with the driver's query surface.
const (
	ParamBufferSize             uint32 = 0x8764
	ParamBufferUsage            uint32 = 0x8765
	ParamBufferAccess           uint32 = 0x88BB
	ParamBufferMapped           uint32 = 0x88BC
	ParamBufferImmutableStorage uint32 = 0x821F
	ParamBufferStorageFlags     uint32 = 0x8220
	ParamBufferMapLength        uint32 = 0x9120
	ParamBufferMapOffset        uint32 = 0x9121

	ParamShaderType    uint32 = 0x8B4F
	ParamCompileStatus uint32 = 0x8B81
	ParamLinkStatus    uint32 = 0x8B82
	ParamInfoLogLength uint32 = 0x8B84
	ParamAttachedCount uint32 = 0x8B85
	ParamActiveUniform uint32 = 0x8B86
	ParamActiveAttrib  uint32 = 0x8B89

	ParamNumExtensions uint32 = 0x821D
)

// StringName selects one of the glGetString values.
type StringName uint32

const (
	Vendor                 StringName = 0x1F00
	RendererName           StringName = 0x1F01
	Version                StringName = 0x1F02
	Extensions             StringName = 0x1F03
	ShadingLanguageVersion StringName = 0x8B8C
)
