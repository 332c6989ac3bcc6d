package core

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserversOrderAndRemoval(t *testing.T) {
	var o Observers[int]
	var got []string

	first, err := o.Add(func(v int) { got = append(got, "first") })
	require.NoError(t, err)
	_, err = o.Add(func(v int) { got = append(got, "second") })
	require.NoError(t, err)
	_, err = o.Add(nil)
	assert.ErrorIs(t, err, ErrInvalidSubscriber)

	o.Notify(1)
	assert.Equal(t, []string{"first", "second"}, got)

	assert.True(t, o.Remove(first))
	assert.False(t, o.Remove(first))
	got = nil
	o.Notify(2)
	assert.Equal(t, []string{"second"}, got)
	assert.Equal(t, 1, o.Len())
}

func TestObserversRemoveDuringNotify(t *testing.T) {
	var o Observers[int]
	calls := 0
	var sub Subscription
	sub, _ = o.Add(func(int) {
		calls++
		o.Remove(sub)
	})
	o.Notify(1)
	o.Notify(2)
	assert.Equal(t, 1, calls)
}

func TestInputManagerPressAndRelease(t *testing.T) {
	im := NewInputManager()
	var events []InputEvent
	_, err := im.AddObserver(func(e InputEvent) { events = append(events, e) })
	require.NoError(t, err)

	im.HandleKey(KEY_W, ACTION_PRESS, MOD_SHIFT)
	assert.True(t, im.IsActive(InputRotatePitchDown))
	assert.False(t, im.IsActive(InputTranslateForward))
	assert.Equal(t, InputStateInvalid, im.InputState(InputTranslateForward))

	// a repeat does not change state
	im.HandleKey(KEY_W, ACTION_REPEAT, MOD_SHIFT)
	im.HandleKey(KEY_W, ACTION_PRESS, MOD_SHIFT)
	require.Len(t, events, 1)

	// release without the modifier still deactivates the shifted input
	im.HandleKey(KEY_W, ACTION_RELEASE, MOD_NONE)
	assert.Equal(t, InputStateInactive, im.InputState(InputRotatePitchDown))
	assert.Equal(t, InputStateInactive, im.InputState(InputTranslateForward))
	assert.Equal(t, []InputEvent{
		{Type: InputRotatePitchDown, State: InputStateActive},
		{Type: InputTranslateForward, State: InputStateInactive},
		{Type: InputRotatePitchDown, State: InputStateInactive},
	}, events)
}

func TestInputManagerUnboundKey(t *testing.T) {
	im := NewInputManager()
	notified := false
	_, _ = im.AddObserver(func(InputEvent) { notified = true })
	im.HandleKey(KEY_Z, ACTION_PRESS, MOD_NONE)
	assert.False(t, notified)

	im.Bind(KEY_Z, MOD_NONE, InputReset)
	im.HandleKey(KEY_Z, ACTION_PRESS, MOD_NONE)
	assert.True(t, notified)
	assert.True(t, im.IsActive(InputReset))
}

func TestInputTypeNames(t *testing.T) {
	for i := InputInvalid; i < inputTypeCount; i++ {
		parsed, err := ParseInputType(i.String())
		require.NoError(t, err)
		assert.Equal(t, i, parsed)
	}
	_, err := ParseInputType("jump")
	assert.ErrorIs(t, err, ErrUnknownInputType)
}

func TestClock(t *testing.T) {
	now := 10.0
	c := NewClock(func() float64 { return now })
	c.Update()
	assert.Zero(t, c.Elapsed())

	c.Start()
	now = 12.5
	c.Update()
	assert.Equal(t, 2.5, c.Elapsed())

	c.Stop()
	now = 20
	c.Update()
	assert.Equal(t, 2.5, c.Elapsed())
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < 61; i++ {
		m.Update(1.0 / 60.0)
	}
	fps, avg := m.Frame()
	assert.InDelta(t, 1000.0/60.0, avg, 1e-9)
	assert.InDelta(t, 60, fps, 1)
	assert.Equal(t, avg, m.FrameTime())
}

func TestParseLogLevel(t *testing.T) {
	l, err := ParseLogLevel(" Warning ")
	require.NoError(t, err)
	assert.Equal(t, LogLevelWarn, l)

	_, err = ParseLogLevel("verbose")
	assert.ErrorIs(t, err, ErrUnknownLogLevel)
}

func TestLogOutputAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)
	SetLogLevel(LogLevelWarn)
	defer SetLogLevel(LogLevelDebug)

	LogInfo("hidden %d", 1)
	LogWarn("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden 1")
	assert.Contains(t, buf.String(), "shown 2")
}

func TestClampAndAngles(t *testing.T) {
	assert.Equal(t, 5, Clamp(9, 0, 5))
	assert.Equal(t, float32(0), Clamp(float32(-1), 0, 1))
	assert.InDelta(t, 90, RadToDeg(DegToRad(90)), 1e-4)
	assert.NotEqual(t, NewID(), NewID())
}
