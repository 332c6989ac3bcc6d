package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform is a position, rotation and scale relative to the parent frame.
// The local matrix is cached until one of the components changes. The zero
// value is the identity transform.
type Transform struct {
	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3

	local mgl32.Mat4
	// valid is false while local needs recomputing
	valid bool
	// initialized is false until rotation and scale hold real values
	initialized bool
}

func NewTransform() Transform {
	return TransformFromPositionRotationScale(mgl32.Vec3{}, mgl32.QuatIdent(), mgl32.Vec3{1, 1, 1})
}

func TransformFromPosition(position mgl32.Vec3) Transform {
	return TransformFromPositionRotationScale(position, mgl32.QuatIdent(), mgl32.Vec3{1, 1, 1})
}

func TransformFromPositionRotationScale(position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) Transform {
	return Transform{
		position:    position,
		rotation:    rotation,
		scale:       scale,
		initialized: true,
	}
}

// init gives a zero value its identity rotation and unit scale.
func (t *Transform) init() {
	if t.initialized {
		return
	}
	t.rotation = mgl32.QuatIdent()
	t.scale = mgl32.Vec3{1, 1, 1}
	t.initialized = true
	t.valid = false
}

func (t *Transform) Position() mgl32.Vec3 {
	return t.position
}

func (t *Transform) SetPosition(position mgl32.Vec3) {
	t.init()
	t.position = position
	t.valid = false
}

func (t *Transform) Translate(translation mgl32.Vec3) {
	t.init()
	t.position = t.position.Add(translation)
	t.valid = false
}

func (t *Transform) Rotation() mgl32.Quat {
	t.init()
	return t.rotation
}

func (t *Transform) SetRotation(rotation mgl32.Quat) {
	t.init()
	t.rotation = rotation
	t.valid = false
}

// Rotate applies rotation after the current rotation, in the local frame.
func (t *Transform) Rotate(rotation mgl32.Quat) {
	t.init()
	t.rotation = t.rotation.Mul(rotation).Normalize()
	t.valid = false
}

func (t *Transform) Scale() mgl32.Vec3 {
	t.init()
	return t.scale
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.init()
	t.scale = scale
	t.valid = false
}

// Local returns translate · rotate · scale: a point is scaled first, then
// rotated, then translated.
func (t *Transform) Local() mgl32.Mat4 {
	t.init()
	if !t.valid {
		tr := mgl32.Translate3D(t.position.X(), t.position.Y(), t.position.Z())
		r := t.rotation.Mat4()
		s := mgl32.Scale3D(t.scale.X(), t.scale.Y(), t.scale.Z())
		t.local = tr.Mul4(r).Mul4(s)
		t.valid = true
	}
	return t.local
}

// World places the local matrix in the frame described by parent.
func (t *Transform) World(parent mgl32.Mat4) mgl32.Mat4 {
	return parent.Mul4(t.Local())
}
