package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/lineage/engine/core"
	"github.com/spaghettifunk/lineage/engine/renderer/opengl"
	"github.com/spaghettifunk/lineage/engine/renderer/shaders"
	"github.com/spaghettifunk/lineage/engine/renderer/vertex"
	"github.com/spaghettifunk/lineage/engine/scene"
)

// ErrLayoutMismatch is returned when a mesh's vertex layout differs from the
// layout the vertex array was configured with.
var ErrLayoutMismatch = errors.New("mesh vertex layout does not match the configured vertex array")

// DefaultRenderManager draws the scene graph of its state through the
// camera of its state.
type DefaultRenderManager struct {
	ctx   *opengl.Context
	state State
	opts  options

	program *opengl.Program
	vao     *opengl.VertexArray
	layout  vertex.Layout

	modelLocation      int32
	viewLocation       int32
	projectionLocation int32
}

func NewDefaultRenderManager(ctx *opengl.Context, state State, opts ...Option) (*DefaultRenderManager, error) {
	d := ctx.Driver()
	program, err := shaders.Build(d, shaders.Default)
	if err != nil {
		return nil, err
	}
	vao, err := opengl.NewVertexArray(d)
	if err != nil {
		program.Destroy()
		return nil, err
	}
	vertex.Configure(vao, program, BindingIndex, vertex.VertexLayout)

	r := &DefaultRenderManager{
		ctx:                ctx,
		state:              state,
		opts:               applyOptions(opts),
		program:            program,
		vao:                vao,
		layout:             vertex.VertexLayout,
		modelLocation:      uniformLocation(program, shaders.UniformModel),
		viewLocation:       uniformLocation(program, shaders.UniformView),
		projectionLocation: uniformLocation(program, shaders.UniformProjection),
	}
	core.LogDebug("default render manager ready (program %d, vertex array %d)", program.Handle(), vao.Handle())
	return r, nil
}

func uniformLocation(p *opengl.Program, name string) int32 {
	loc := p.UniformLocation(name)
	if loc == opengl.InvalidLocation {
		core.LogWarn("uniform %q not found in program %d", name, p.Handle())
	}
	return loc
}

// Render draws one frame. Nothing is drawn while the framebuffer has no
// area, which is the case when the window is minimised.
func (r *DefaultRenderManager) Render(args RenderArgs) error {
	if args.FramebufferWidth <= 0 || args.FramebufferHeight <= 0 {
		return nil
	}
	if err := r.render(args); err != nil {
		return err
	}
	if r.opts.pollErrors {
		pollErrors(r.ctx)
	}
	return nil
}

func (r *DefaultRenderManager) render(args RenderArgs) error {
	r.ctx.PushProgram(r.program)
	defer r.ctx.PopProgram()
	r.ctx.PushVertexArray(r.vao)
	defer r.ctx.PopVertexArray()

	camera := r.state.Camera()
	r.ctx.SetUniformMat4(r.viewLocation, camera.View())
	r.ctx.SetUniformMat4(r.projectionLocation, camera.Projection(args.AspectRatio()))

	r.ctx.Viewport(0, 0, int32(args.FramebufferWidth), int32(args.FramebufferHeight))
	r.ctx.ClearColor(r.state.BackgroundColor())
	r.ctx.Clear(opengl.ColorBufferBit | opengl.DepthBufferBit)

	graph := r.state.SceneGraph()
	if graph == nil {
		return nil
	}
	return r.drawGraph(graph)
}

func (r *DefaultRenderManager) drawGraph(graph *scene.Graph) error {
	return graph.Walk(func(n *scene.Node, world mgl32.Mat4) error {
		if len(n.Meshes) == 0 {
			return nil
		}
		r.ctx.SetUniformMat4(r.modelLocation, world)
		for _, index := range n.Meshes {
			mesh, err := graph.Mesh(index)
			if err != nil {
				return fmt.Errorf("drawing node %s: %w", n.ID, err)
			}
			if !mesh.Layout().Equal(r.layout) {
				return fmt.Errorf("drawing node %s mesh %d: %w: %s, expected %s",
					n.ID, index, ErrLayoutMismatch, mesh.Layout().Name, r.layout.Name)
			}
			mesh.Draw(r.ctx, r.vao, BindingIndex)
		}
		return nil
	})
}

func (r *DefaultRenderManager) TargetDeltaT() float64 {
	return TargetDeltaT
}

// Destroy releases the program and vertex array. The scene graph belongs to
// the state and is left alone.
func (r *DefaultRenderManager) Destroy() {
	r.vao.Destroy()
	r.program.Destroy()
}

func pollErrors(ctx *opengl.Context) {
	if code := ctx.LastError(); code != opengl.NoError {
		core.LogWarn("OpenGL error after frame: %s", opengl.ErrorString(code))
	}
}
