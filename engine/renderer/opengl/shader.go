package opengl

// Shader owns a shader object of a fixed stage.
type Shader struct {
	noCopy noCopy

	driver Driver
	handle Handle
	stage  ShaderStage
}

func NewShader(d Driver, stage ShaderStage) (*Shader, error) {
	h := d.CreateShader(stage)
	if h == InvalidHandle {
		return nil, newGraphicsError(d, "glCreateShader")
	}
	return &Shader{driver: d, handle: h, stage: stage}, nil
}

// CompileShader creates a shader, sets its source and compiles it. The shader
// is destroyed when compilation fails.
func CompileShader(d Driver, stage ShaderStage, source string) (*Shader, error) {
	s, err := NewShader(d, stage)
	if err != nil {
		return nil, err
	}
	s.SetSource(source)
	if err := s.Compile(); err != nil {
		s.Destroy()
		return nil, err
	}
	return s, nil
}

func (s *Shader) Handle() Handle {
	return s.handle
}

func (s *Shader) Stage() ShaderStage {
	return s.stage
}

func (s *Shader) Valid() bool {
	return s.handle != InvalidHandle
}

// Move transfers ownership of the handle to a new Shader. s is left invalid.
func (s *Shader) Move() *Shader {
	moved := &Shader{driver: s.driver, handle: s.handle, stage: s.stage}
	s.handle = InvalidHandle
	return moved
}

// Destroy releases the handle. It is a no-op on an invalid shader.
func (s *Shader) Destroy() {
	if s.handle == InvalidHandle {
		return
	}
	s.driver.DeleteShader(s.handle)
	s.handle = InvalidHandle
}

func (s *Shader) SetSource(source string) {
	s.driver.ShaderSource(s.handle, source)
}

// Compile compiles the attached source. A *ShaderCompileError carrying the
// info log is returned when the driver rejects the source.
func (s *Shader) Compile() error {
	if s.handle == InvalidHandle {
		return ErrInvalidHandle
	}
	s.driver.CompileShader(s.handle)
	if err := checkDriver(s.driver, "glCompileShader"); err != nil {
		return err
	}
	if !s.IsCompiled() {
		return &ShaderCompileError{Stage: s.stage, Log: s.InfoLog()}
	}
	return nil
}

func (s *Shader) IsCompiled() bool {
	return s.driver.GetShaderiv(s.handle, ParamCompileStatus) != 0
}

func (s *Shader) InfoLog() string {
	if s.driver.GetShaderiv(s.handle, ParamInfoLogLength) == 0 {
		return ""
	}
	return s.driver.GetShaderInfoLog(s.handle)
}
