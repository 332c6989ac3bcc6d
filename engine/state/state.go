package state

// TargetDeltaT is the state loop cadence of the bundled managers: 60 Hz.
const TargetDeltaT = 1.0 / 60.0

// StateArgs describes one iteration of the state loop.
type StateArgs struct {
	// AbsT is the total elapsed time, in seconds.
	AbsT float64
	// DeltaT is the time since the previous iteration, in seconds.
	DeltaT float64
}

// Manager advances the application state. The application loop decides
// when to call Run, based on TargetDeltaT.
type Manager interface {
	Run(args StateArgs)
	TargetDeltaT() float64
}

// Mode selects what the generic translate, rotate and color inputs act on.
type Mode uint8

const (
	ModeCamera Mode = iota
	ModeBackground
	ModeObject
)

func (m Mode) String() string {
	switch m {
	case ModeCamera:
		return "camera"
	case ModeBackground:
		return "background"
	case ModeObject:
		return "object"
	default:
		return "unknown"
	}
}
