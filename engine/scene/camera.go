package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/lineage/engine/core"
)

const (
	DefaultFieldOfView float32 = 45 * math.Pi / 180
	DefaultNear        float32 = 0.1
	DefaultFar         float32 = 100

	MinFieldOfView float32 = 10 * math.Pi / 180
	MaxFieldOfView float32 = 120 * math.Pi / 180
)

// DefaultCameraPosition keeps the origin in view with the default settings.
var DefaultCameraPosition = mgl32.Vec3{0, 0, 5}

// Camera is the viewer of a scene. FieldOfView is the vertical angle in
// radians.
type Camera struct {
	Position    mgl32.Vec3
	Rotation    mgl32.Quat
	FieldOfView float32
	Near        float32
	Far         float32
}

func NewCamera() Camera {
	c := Camera{}
	c.Reset()
	return c
}

func (c *Camera) Reset() {
	c.Position = DefaultCameraPosition
	c.Rotation = mgl32.QuatIdent()
	c.FieldOfView = DefaultFieldOfView
	c.Near = DefaultNear
	c.Far = DefaultFar
}

// View returns inverse(translate(position) · rotate(rotation)).
func (c Camera) View() mgl32.Mat4 {
	t := mgl32.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z())
	return t.Mul4(c.Rotation.Mat4()).Inv()
}

// Projection returns a perspective projection for the given width / height
// ratio.
func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FieldOfView, aspect, c.Near, c.Far)
}

// Move translates the camera by delta expressed in its own frame, so
// negative z is always forward.
func (c *Camera) Move(delta mgl32.Vec3) {
	c.Position = c.Position.Add(c.Rotation.Rotate(delta))
}

func (c *Camera) Pitch(angle float32) {
	c.rotate(angle, mgl32.Vec3{1, 0, 0})
}

func (c *Camera) Yaw(angle float32) {
	c.rotate(angle, mgl32.Vec3{0, 1, 0})
}

func (c *Camera) Roll(angle float32) {
	c.rotate(angle, mgl32.Vec3{0, 0, 1})
}

func (c *Camera) rotate(angle float32, axis mgl32.Vec3) {
	c.Rotation = c.Rotation.Mul(mgl32.QuatRotate(angle, axis)).Normalize()
}

// Zoom changes the field of view, keeping it within a usable range.
func (c *Camera) Zoom(delta float32) {
	c.FieldOfView = core.Clamp(c.FieldOfView+delta, MinFieldOfView, MaxFieldOfView)
}
