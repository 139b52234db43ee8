package core

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockFixedStep(t *testing.T) {
	c := NewClockWithSource(NewFixedStepSource(16 * time.Millisecond))
	c.Update()
	assert.Zero(t, c.Elapsed(), "not started")

	c.Start()
	c.Update()
	assert.InDelta(t, 0.016, c.Elapsed(), 1e-9)
	c.Update()
	assert.InDelta(t, 0.032, c.Elapsed(), 1e-9)

	c.Stop()
	c.Update()
	assert.InDelta(t, 0.032, c.Elapsed(), 1e-9)
}

func TestFrameMetrics(t *testing.T) {
	m := NewFrameMetrics()
	for i := 0; i < 60; i++ {
		m.Update(0.0625)
	}
	fps, avg := m.Frame()
	assert.Equal(t, float64(16), fps)
	assert.InDelta(t, 62.5, avg, 1e-9)
	assert.Equal(t, uint64(60), m.TotalFrames())
}

func TestEventSystem(t *testing.T) {
	es := NewEventSystem()
	first, second := new(int), new(int)
	var calls []string

	require.True(t, es.Register(EVENT_CODE_KEY_PRESSED, first, func(code SystemEventCode, sender, listener interface{}, data EventContext) bool {
		calls = append(calls, "first")
		return KeyCode(data.Data.U16[0]) == KEY_ESCAPE
	}))
	require.True(t, es.Register(EVENT_CODE_KEY_PRESSED, second, func(code SystemEventCode, sender, listener interface{}, data EventContext) bool {
		calls = append(calls, "second")
		return true
	}))
	assert.False(t, es.Register(EVENT_CODE_KEY_PRESSED, first, nil), "duplicate listener")

	ctx := EventContext{}
	ctx.Data.U16[0] = uint16(KEY_W)
	assert.True(t, es.Fire(EVENT_CODE_KEY_PRESSED, nil, ctx))
	assert.Equal(t, []string{"first", "second"}, calls)

	calls = nil
	ctx.Data.U16[0] = uint16(KEY_ESCAPE)
	assert.True(t, es.Fire(EVENT_CODE_KEY_PRESSED, nil, ctx))
	assert.Equal(t, []string{"first"}, calls, "handled events stop propagating")

	assert.True(t, es.Unregister(EVENT_CODE_KEY_PRESSED, first))
	assert.False(t, es.Unregister(EVENT_CODE_KEY_PRESSED, first))
	assert.False(t, es.Fire(EVENT_CODE_RESIZED, nil, EventContext{}))

	require.NoError(t, es.Shutdown())
	calls = nil
	assert.False(t, es.Fire(EVENT_CODE_KEY_PRESSED, nil, ctx))
	assert.Empty(t, calls)
}

func TestInputState(t *testing.T) {
	es := NewEventSystem()
	var pressed []KeyCode
	es.Register(EVENT_CODE_KEY_PRESSED, nil, func(code SystemEventCode, sender, listener interface{}, data EventContext) bool {
		pressed = append(pressed, KeyCode(data.Data.U16[0]))
		return false
	})

	s := NewInputState(es)
	s.ProcessKey(KEY_W, true)
	s.ProcessKey(KEY_W, true)
	assert.Equal(t, []KeyCode{KEY_W}, pressed, "repeated state changes fire once")
	assert.True(t, s.IsKeyDown(KEY_W))
	assert.True(t, s.WasKeyUp(KEY_W))

	s.ProcessMouseMove(10, 5)
	s.ProcessMouseDelta(2, -1)
	dx, dy := s.MouseDelta()
	assert.Equal(t, float32(12), dx)
	assert.Equal(t, float32(4), dy)

	s.Update()
	assert.True(t, s.WasKeyDown(KEY_W))
	dx, dy = s.MouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	x, y := s.MousePosition()
	assert.Equal(t, float32(12), x)
	assert.Equal(t, float32(4), y)

	s.ProcessButton(BUTTON_LEFT, true)
	assert.True(t, s.IsButtonDown(BUTTON_LEFT))
	assert.False(t, s.WasButtonDown(BUTTON_LEFT))
}

func TestScriptedInput(t *testing.T) {
	s := NewInputState(nil)
	si := NewScriptedInput(
		InputFrame{Press: []KeyCode{KEY_W}, MouseDX: 3},
		InputFrame{},
		InputFrame{Release: []KeyCode{KEY_W}, MouseDY: -2},
	)

	require.NoError(t, si.Poll(s))
	assert.True(t, s.IsKeyDown(KEY_W))
	dx, _ := s.MouseDelta()
	assert.Equal(t, float32(3), dx)
	s.Update()

	require.NoError(t, si.Poll(s))
	assert.True(t, s.IsKeyDown(KEY_W), "keys stay down until released")
	s.Update()

	require.NoError(t, si.Poll(s))
	assert.False(t, s.IsKeyDown(KEY_W))
	_, dy := s.MouseDelta()
	assert.Equal(t, float32(-2), dy)
	assert.True(t, si.Done())

	s.Update()
	require.NoError(t, si.Poll(s))
	dx, dy = s.MouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	loop := &ScriptedInput{Frames: []InputFrame{{MouseDX: 1}}, Loop: true}
	for i := 0; i < 3; i++ {
		require.NoError(t, loop.Poll(s))
	}
	assert.False(t, loop.Done())
	dx, _ = s.MouseDelta()
	assert.Equal(t, float32(3), dx)
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want KeyCode
	}{
		{"w", KEY_W},
		{"A", KEY_A},
		{" escape ", KEY_ESCAPE},
		{"space", KEY_SPACE},
		{"up", KEY_UP},
	}
	for _, tt := range tests {
		k, err := ParseKey(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, k, tt.name)
	}
	_, err := ParseKey("f13")
	assert.Error(t, err)
}

func TestIdentifiers(t *testing.T) {
	ids := NewIdentifiers()
	owner := "camera"
	id := ids.AcquireNewID(owner)
	assert.NotEqual(t, uuid.Nil, id)
	assert.NotEqual(t, id, ids.AcquireNewID(owner))

	o, ok := ids.Owner(id)
	require.True(t, ok)
	assert.Equal(t, owner, o)

	require.NoError(t, ids.ReleaseID(id))
	assert.Error(t, ids.ReleaseID(id))
	assert.Equal(t, 1, ids.Len())
}

func TestLookSmoother(t *testing.T) {
	ls := NewLookSmoother(60)
	ls.Feed(1, -0.5)

	var yaw, pitch float32
	dy, dp := ls.Step()
	assert.Greater(t, dy, float32(0))
	assert.Less(t, dy, float32(1), "the first step only covers part of the input")
	yaw += dy
	pitch += dp

	for i := 0; i < 600; i++ {
		dy, dp = ls.Step()
		yaw += dy
		pitch += dp
	}
	assert.InDelta(t, 1, yaw, 1e-3)
	assert.InDelta(t, -0.5, pitch, 1e-3)
	py, pp := ls.Pending()
	assert.InDelta(t, 0, py, 1e-3)
	assert.InDelta(t, 0, pp, 1e-3)

	ls.Reset()
	dy, dp = ls.Step()
	assert.Zero(t, dy)
	assert.Zero(t, dp)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)

	SetLogLevel(LogLevelWarn)
	LogInfo("hidden %d", 1)
	LogWarn("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 2")

	lvl, err := ParseLogLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, lvl)
	_, err = ParseLogLevel("loud")
	assert.Error(t, err)
	SetLogLevel(LogLevelInfo)
}
