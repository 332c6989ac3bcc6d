package scene

import "github.com/go-gl/mathgl/mgl32"

var (
	ColorWhite   = mgl32.Vec4{1, 1, 1, 1}
	ColorBlack   = mgl32.Vec4{0, 0, 0, 1}
	ColorRed     = mgl32.Vec4{1, 0, 0, 1}
	ColorGreen   = mgl32.Vec4{0, 1, 0, 1}
	ColorBlue    = mgl32.Vec4{0, 0, 1, 1}
	ColorCyan    = mgl32.Vec4{0, 1, 1, 1}
	ColorMagenta = mgl32.Vec4{1, 0, 1, 1}
	ColorYellow  = mgl32.Vec4{1, 1, 0, 1}
)
