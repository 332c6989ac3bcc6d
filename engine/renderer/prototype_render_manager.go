package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/lineage/engine/core"
	"github.com/spaghettifunk/lineage/engine/renderer/opengl"
	"github.com/spaghettifunk/lineage/engine/renderer/shaders"
	"github.com/spaghettifunk/lineage/engine/renderer/vertex"
	"github.com/spaghettifunk/lineage/engine/scene"
)

// prototypeVertices are two triangles meeting at the origin, drawn directly
// in clip space.
var prototypeVertices = []vertex.ColorVertex{
	{Position: mgl32.Vec3{0, 0, 0}, Color: mgl32.Vec4{1, 0, 0, 1}},
	{Position: mgl32.Vec3{0.5, 0, 0}, Color: mgl32.Vec4{0, 1, 0, 1}},
	{Position: mgl32.Vec3{0, 0.5, 0}, Color: mgl32.Vec4{0, 0, 1, 1}},
	{Position: mgl32.Vec3{0, 0, 0}, Color: mgl32.Vec4{0, 1, 1, 1}},
	{Position: mgl32.Vec3{-0.5, 0, 0}, Color: mgl32.Vec4{1, 0, 1, 1}},
	{Position: mgl32.Vec3{0, -0.5, 0}, Color: mgl32.Vec4{1, 1, 0, 1}},
}

// PrototypeRenderManager draws a fixed pair of triangles over the
// background color of its state. It exercises the pipeline without a scene.
type PrototypeRenderManager struct {
	ctx   *opengl.Context
	state BackgroundState
	opts  options

	program *opengl.Program
	vao     *opengl.VertexArray
	mesh    *scene.Mesh
}

func NewPrototypeRenderManager(ctx *opengl.Context, state BackgroundState, opts ...Option) (*PrototypeRenderManager, error) {
	d := ctx.Driver()
	program, err := shaders.Build(d, shaders.Prototype)
	if err != nil {
		return nil, err
	}
	mesh, err := scene.NewMesh(d, opengl.Triangles, prototypeVertices)
	if err != nil {
		program.Destroy()
		return nil, err
	}
	vao, err := opengl.NewVertexArray(d)
	if err != nil {
		mesh.Destroy()
		program.Destroy()
		return nil, err
	}
	vertex.Configure(vao, program, BindingIndex, mesh.Layout())

	core.LogDebug("prototype render manager ready (program %d, vertex array %d)", program.Handle(), vao.Handle())
	return &PrototypeRenderManager{
		ctx:     ctx,
		state:   state,
		opts:    applyOptions(opts),
		program: program,
		vao:     vao,
		mesh:    mesh,
	}, nil
}

func (r *PrototypeRenderManager) Render(args RenderArgs) error {
	if args.FramebufferWidth <= 0 || args.FramebufferHeight <= 0 {
		return nil
	}
	r.render(args)
	if r.opts.pollErrors {
		pollErrors(r.ctx)
	}
	return nil
}

func (r *PrototypeRenderManager) render(args RenderArgs) {
	r.ctx.PushProgram(r.program)
	defer r.ctx.PopProgram()
	r.ctx.PushVertexArray(r.vao)
	defer r.ctx.PopVertexArray()

	r.ctx.Viewport(0, 0, int32(args.FramebufferWidth), int32(args.FramebufferHeight))
	r.ctx.ClearColor(r.state.BackgroundColor())
	r.ctx.Clear(opengl.ColorBufferBit)

	r.mesh.Draw(r.ctx, r.vao, BindingIndex)
}

func (r *PrototypeRenderManager) TargetDeltaT() float64 {
	return TargetDeltaT
}

func (r *PrototypeRenderManager) Destroy() {
	r.vao.Destroy()
	r.mesh.Destroy()
	r.program.Destroy()
}
