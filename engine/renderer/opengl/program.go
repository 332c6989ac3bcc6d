package opengl

import "fmt"

// Program owns a program object. Shaders are attached, the program is
// linked, and the shaders may then be detached; the linked code stays with
// the program.
type Program struct {
	noCopy noCopy

	driver Driver
	handle Handle
}

func NewProgram(d Driver) (*Program, error) {
	h := d.CreateProgram()
	if h == InvalidHandle {
		return nil, newGraphicsError(d, "glCreateProgram")
	}
	return &Program{driver: d, handle: h}, nil
}

// LinkProgram attaches shaders to a new program, links it and detaches them
// again. The program is destroyed when linking fails.
func LinkProgram(d Driver, shaders ...*Shader) (*Program, error) {
	p, err := NewProgram(d)
	if err != nil {
		return nil, err
	}
	for _, s := range shaders {
		p.Attach(s)
	}
	err = p.Link()
	for _, s := range shaders {
		p.Detach(s)
	}
	if err != nil {
		p.Destroy()
		return nil, err
	}
	return p, nil
}

// ShaderSource is one stage of a program built with BuildProgram.
type ShaderSource struct {
	Stage  ShaderStage
	Source string
}

// BuildProgram compiles every source, links them into a program and releases
// the intermediate shaders.
func BuildProgram(d Driver, sources ...ShaderSource) (*Program, error) {
	shaders := make([]*Shader, 0, len(sources))
	defer func() {
		for _, s := range shaders {
			s.Destroy()
		}
	}()
	for _, src := range sources {
		s, err := CompileShader(d, src.Stage, src.Source)
		if err != nil {
			return nil, fmt.Errorf("compiling %s: %w", src.Stage, err)
		}
		shaders = append(shaders, s)
	}
	return LinkProgram(d, shaders...)
}

func (p *Program) Handle() Handle {
	return p.handle
}

func (p *Program) Valid() bool {
	return p.handle != InvalidHandle
}

// Move transfers ownership of the handle to a new Program. p is left invalid.
func (p *Program) Move() *Program {
	moved := &Program{driver: p.driver, handle: p.handle}
	p.handle = InvalidHandle
	return moved
}

// Destroy releases the handle. It is a no-op on an invalid program.
func (p *Program) Destroy() {
	if p.handle == InvalidHandle {
		return
	}
	p.driver.DeleteProgram(p.handle)
	p.handle = InvalidHandle
}

func (p *Program) Attach(s *Shader) {
	p.driver.AttachShader(p.handle, s.Handle())
}

func (p *Program) Detach(s *Shader) {
	p.driver.DetachShader(p.handle, s.Handle())
}

// Link links the attached shaders. Linking twice is not guarded.
func (p *Program) Link() error {
	if p.handle == InvalidHandle {
		return ErrInvalidHandle
	}
	p.driver.LinkProgram(p.handle)
	if err := checkDriver(p.driver, "glLinkProgram"); err != nil {
		return err
	}
	if !p.IsLinked() {
		return &ProgramLinkError{Log: p.InfoLog()}
	}
	return nil
}

func (p *Program) IsLinked() bool {
	return p.driver.GetProgramiv(p.handle, ParamLinkStatus) != 0
}

func (p *Program) InfoLog() string {
	if p.driver.GetProgramiv(p.handle, ParamInfoLogLength) == 0 {
		return ""
	}
	return p.driver.GetProgramInfoLog(p.handle)
}

func (p *Program) AttachedShaderCount() int {
	return int(p.driver.GetProgramiv(p.handle, ParamAttachedCount))
}

func (p *Program) ActiveAttributeCount() int {
	return int(p.driver.GetProgramiv(p.handle, ParamActiveAttrib))
}

func (p *Program) ActiveUniformCount() int {
	return int(p.driver.GetProgramiv(p.handle, ParamActiveUniform))
}

// AttributeLocation returns the slot of the named vertex attribute, or
// InvalidLocation when the program has no such active attribute.
func (p *Program) AttributeLocation(name string) int32 {
	if loc := p.driver.GetAttribLocation(p.handle, name); loc >= 0 {
		return loc
	}
	return InvalidLocation
}

// UniformLocation returns the slot of the named uniform, or InvalidLocation.
func (p *Program) UniformLocation(name string) int32 {
	if loc := p.driver.GetUniformLocation(p.handle, name); loc >= 0 {
		return loc
	}
	return InvalidLocation
}
