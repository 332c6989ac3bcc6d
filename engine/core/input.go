package core

import "fmt"

// Key code definitions. Values match the GLFW key tokens so the platform
// layer can forward raw codes unchanged.
type KeyCode int

const (
	KEY_UNKNOWN       KeyCode = -1
	KEY_SPACE         KeyCode = 32
	KEY_A             KeyCode = 65
	KEY_B             KeyCode = 66
	KEY_C             KeyCode = 67
	KEY_D             KeyCode = 68
	KEY_E             KeyCode = 69
	KEY_F             KeyCode = 70
	KEY_G             KeyCode = 71
	KEY_H             KeyCode = 72
	KEY_I             KeyCode = 73
	KEY_J             KeyCode = 74
	KEY_K             KeyCode = 75
	KEY_L             KeyCode = 76
	KEY_M             KeyCode = 77
	KEY_N             KeyCode = 78
	KEY_O             KeyCode = 79
	KEY_P             KeyCode = 80
	KEY_Q             KeyCode = 81
	KEY_R             KeyCode = 82
	KEY_S             KeyCode = 83
	KEY_T             KeyCode = 84
	KEY_U             KeyCode = 85
	KEY_V             KeyCode = 86
	KEY_W             KeyCode = 87
	KEY_X             KeyCode = 88
	KEY_Y             KeyCode = 89
	KEY_Z             KeyCode = 90
	KEY_LEFT_BRACKET  KeyCode = 91
	KEY_RIGHT_BRACKET KeyCode = 93
	KEY_ESCAPE        KeyCode = 256
	KEY_ENTER         KeyCode = 257
	KEY_TAB           KeyCode = 258
	KEY_F1            KeyCode = 290
	KEY_F2            KeyCode = 291
	KEY_F3            KeyCode = 292
)

// KeyAction is the raw action reported with a key event.
type KeyAction int

const (
	ACTION_RELEASE KeyAction = 0
	ACTION_PRESS   KeyAction = 1
	ACTION_REPEAT  KeyAction = 2
)

// ModifierKey is a bit set of the modifiers held during a key event.
type ModifierKey int

const (
	MOD_NONE    ModifierKey = 0
	MOD_SHIFT   ModifierKey = 0x0001
	MOD_CONTROL ModifierKey = 0x0002
	MOD_ALT     ModifierKey = 0x0004
	MOD_SUPER   ModifierKey = 0x0008
)

// InputType is an abstract input signal. The render and scene layers never
// see raw key codes, only these.
type InputType uint8

const (
	InputInvalid InputType = iota
	InputApplicationExit
	InputModeCamera
	InputModeBackground
	InputModeObject
	InputReset
	InputCycle
	InputTranslateRight
	InputTranslateLeft
	InputTranslateUp
	InputTranslateDown
	InputTranslateForward
	InputTranslateBackward
	InputRotatePitchUp
	InputRotatePitchDown
	InputRotateYawRight
	InputRotateYawLeft
	InputRotateRollRight
	InputRotateRollLeft
	InputColorRedIncrease
	InputColorRedDecrease
	InputColorGreenIncrease
	InputColorGreenDecrease
	InputColorBlueIncrease
	InputColorBlueDecrease
	InputCameraFovIncrease
	InputCameraFovDecrease
	inputTypeCount
)

var inputTypeNames = [...]string{
	InputInvalid:            "invalid",
	InputApplicationExit:    "application_exit",
	InputModeCamera:         "mode_camera",
	InputModeBackground:     "mode_background",
	InputModeObject:         "mode_object",
	InputReset:              "reset",
	InputCycle:              "cycle",
	InputTranslateRight:     "translate_right",
	InputTranslateLeft:      "translate_left",
	InputTranslateUp:        "translate_up",
	InputTranslateDown:      "translate_down",
	InputTranslateForward:   "translate_forward",
	InputTranslateBackward:  "translate_backward",
	InputRotatePitchUp:      "rotate_pitch_up",
	InputRotatePitchDown:    "rotate_pitch_down",
	InputRotateYawRight:     "rotate_yaw_right",
	InputRotateYawLeft:      "rotate_yaw_left",
	InputRotateRollRight:    "rotate_roll_right",
	InputRotateRollLeft:     "rotate_roll_left",
	InputColorRedIncrease:   "color_red_increase",
	InputColorRedDecrease:   "color_red_decrease",
	InputColorGreenIncrease: "color_green_increase",
	InputColorGreenDecrease: "color_green_decrease",
	InputColorBlueIncrease:  "color_blue_increase",
	InputColorBlueDecrease:  "color_blue_decrease",
	InputCameraFovIncrease:  "camera_fov_increase",
	InputCameraFovDecrease:  "camera_fov_decrease",
}

func (t InputType) String() string {
	if t < inputTypeCount {
		return inputTypeNames[t]
	}
	return fmt.Sprintf("InputType(%d)", uint8(t))
}

// ParseInputType is the inverse of InputType.String.
func ParseInputType(s string) (InputType, error) {
	for i, name := range inputTypeNames {
		if name == s {
			return InputType(i), nil
		}
	}
	return InputInvalid, fmt.Errorf("%w: %q", ErrUnknownInputType, s)
}

// InputState is the state an input signal may be in.
type InputState uint8

const (
	InputStateInvalid InputState = iota
	InputStateInactive
	InputStateActive
)

func (s InputState) String() string {
	switch s {
	case InputStateInactive:
		return "inactive"
	case InputStateActive:
		return "active"
	default:
		return "invalid"
	}
}

// InputEvent is delivered to input observers whenever an input changes state.
type InputEvent struct {
	Type  InputType
	State InputState
}

type keyBinding struct {
	key  KeyCode
	mods ModifierKey
}

// DefaultKeyBindings maps key + modifier combinations to input signals.
var DefaultKeyBindings = map[keyBinding]InputType{
	{KEY_ESCAPE, MOD_NONE}:        InputApplicationExit,
	{KEY_F1, MOD_NONE}:            InputModeCamera,
	{KEY_F2, MOD_NONE}:            InputModeBackground,
	{KEY_F3, MOD_NONE}:            InputModeObject,
	{KEY_X, MOD_NONE}:             InputReset,
	{KEY_TAB, MOD_NONE}:           InputCycle,
	{KEY_D, MOD_NONE}:             InputTranslateRight,
	{KEY_A, MOD_NONE}:             InputTranslateLeft,
	{KEY_R, MOD_NONE}:             InputTranslateUp,
	{KEY_F, MOD_NONE}:             InputTranslateDown,
	{KEY_W, MOD_NONE}:             InputTranslateForward,
	{KEY_S, MOD_NONE}:             InputTranslateBackward,
	{KEY_U, MOD_NONE}:             InputColorRedIncrease,
	{KEY_J, MOD_NONE}:             InputColorRedDecrease,
	{KEY_I, MOD_NONE}:             InputColorGreenIncrease,
	{KEY_K, MOD_NONE}:             InputColorGreenDecrease,
	{KEY_O, MOD_NONE}:             InputColorBlueIncrease,
	{KEY_L, MOD_NONE}:             InputColorBlueDecrease,
	{KEY_LEFT_BRACKET, MOD_NONE}:  InputCameraFovDecrease,
	{KEY_RIGHT_BRACKET, MOD_NONE}: InputCameraFovIncrease,
	{KEY_W, MOD_SHIFT}:            InputRotatePitchDown,
	{KEY_S, MOD_SHIFT}:            InputRotatePitchUp,
	{KEY_D, MOD_SHIFT}:            InputRotateYawRight,
	{KEY_A, MOD_SHIFT}:            InputRotateYawLeft,
	{KEY_E, MOD_SHIFT}:            InputRotateRollRight,
	{KEY_Q, MOD_SHIFT}:            InputRotateRollLeft,
}

// releaseModifiers lists every modifier combination a released key may have
// been pressed with.
var releaseModifiers = []ModifierKey{MOD_NONE, MOD_SHIFT, MOD_CONTROL, MOD_ALT, MOD_SUPER}

// InputManager turns raw key events into abstract input signals and
// distributes them to observers.
type InputManager struct {
	bindings  map[keyBinding]InputType
	states    map[InputType]InputState
	observers Observers[InputEvent]
}

func NewInputManager() *InputManager {
	im := &InputManager{
		bindings: make(map[keyBinding]InputType, len(DefaultKeyBindings)),
		states:   make(map[InputType]InputState),
	}
	for k, v := range DefaultKeyBindings {
		im.bindings[k] = v
	}
	LogInfo("Input subsystem initialized.")
	return im
}

// Bind maps key+mods to the given input, replacing any existing binding.
func (im *InputManager) Bind(key KeyCode, mods ModifierKey, input InputType) {
	im.bindings[keyBinding{key, mods}] = input
}

// InputState returns the current state of the given input.
func (im *InputManager) InputState(t InputType) InputState {
	if s, ok := im.states[t]; ok {
		return s
	}
	return InputStateInvalid
}

// IsActive reports whether the input is currently active.
func (im *InputManager) IsActive(t InputType) bool {
	return im.InputState(t) == InputStateActive
}

// SetInputState changes an input's state and notifies observers if it changed.
func (im *InputManager) SetInputState(t InputType, s InputState) {
	if t == InputInvalid {
		return
	}
	current := im.InputState(t)
	if current == s {
		return
	}
	im.states[t] = s
	im.observers.Notify(InputEvent{Type: t, State: s})
}

// AddObserver registers a callback for input state changes.
func (im *InputManager) AddObserver(fn func(InputEvent)) (Subscription, error) {
	return im.observers.Add(fn)
}

// RemoveObserver unregisters a callback added with AddObserver.
func (im *InputManager) RemoveObserver(sub Subscription) bool {
	return im.observers.Remove(sub)
}

// HandleKey processes one raw key event from the window.
func (im *InputManager) HandleKey(key KeyCode, action KeyAction, mods ModifierKey) {
	switch action {
	case ACTION_PRESS:
		// activate this input only
		im.SetInputState(im.lookup(key, mods), InputStateActive)
	case ACTION_RELEASE:
		// deactivate every input which shares this primary key
		for _, m := range releaseModifiers {
			im.SetInputState(im.lookup(key, m), InputStateInactive)
		}
	}
}

func (im *InputManager) lookup(key KeyCode, mods ModifierKey) InputType {
	if t, ok := im.bindings[keyBinding{key, mods}]; ok {
		return t
	}
	return InputInvalid
}
