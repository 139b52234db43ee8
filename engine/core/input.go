package core

import (
	"fmt"
	"strings"
)

type Button uint16

const (
	BUTTON_LEFT Button = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
	BUTTON_MAX_BUTTONS
)

// Key code definitions
type KeyCode uint16

const (
	KEY_ENTER  KeyCode = 0x0D
	KEY_TAB    KeyCode = 0x09
	KEY_SHIFT  KeyCode = 0x10
	KEY_ESCAPE KeyCode = 0x1B
	KEY_SPACE  KeyCode = 0x20
	KEY_LEFT   KeyCode = 0x25
	KEY_UP     KeyCode = 0x26
	KEY_RIGHT  KeyCode = 0x27
	KEY_DOWN   KeyCode = 0x28
	KEY_A      KeyCode = 0x41
	KEY_D      KeyCode = 0x44
	KEY_E      KeyCode = 0x45
	KEY_Q      KeyCode = 0x51
	KEY_R      KeyCode = 0x52
	KEY_S      KeyCode = 0x53
	KEY_W      KeyCode = 0x57
	KEY_Z      KeyCode = 0x5A

	KEYS_MAX_KEYS KeyCode = 0xFF
)

var keyNames = map[string]KeyCode{
	"enter":  KEY_ENTER,
	"tab":    KEY_TAB,
	"shift":  KEY_SHIFT,
	"escape": KEY_ESCAPE,
	"esc":    KEY_ESCAPE,
	"space":  KEY_SPACE,
	"left":   KEY_LEFT,
	"up":     KEY_UP,
	"right":  KEY_RIGHT,
	"down":   KEY_DOWN,
}

// ParseKey maps a key name ("w", "escape", "space", ...) to its KeyCode.
// Single letters map to their upper-case ASCII code.
func ParseKey(name string) (KeyCode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNames[n]; ok {
		return k, nil
	}
	if len(n) == 1 && n[0] >= 'a' && n[0] <= 'z' {
		return KeyCode(n[0] - 'a' + 'A'), nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// Mouse state structure
type MouseState struct {
	X       float32
	Y       float32
	Buttons [BUTTON_MAX_BUTTONS]bool // button states (pressed/released)
}

// Keyboard state structure
type KeyboardState struct {
	Keys [256]bool
}

// InputState holds current and previous states for keyboard and mouse, plus
// the pointer movement accumulated since the last Update.
type InputState struct {
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState
	MouseCurrent     MouseState
	MousePrevious    MouseState

	deltaX, deltaY float32
	events         *EventSystem
}

// NewInputState creates an input state that fires key/button/mouse events into
// events. events may be nil.
func NewInputState(events *EventSystem) *InputState {
	return &InputState{events: events}
}

// Update rolls the current state into the previous one and clears the
// accumulated pointer delta. Called once per frame after the game update.
func (s *InputState) Update() {
	s.KeyboardPrevious = s.KeyboardCurrent
	s.MousePrevious = s.MouseCurrent
	s.deltaX, s.deltaY = 0, 0
}

// keyboard input
func (s *InputState) IsKeyDown(key KeyCode) bool {
	return s.KeyboardCurrent.Keys[key]
}

func (s *InputState) IsKeyUp(key KeyCode) bool {
	return !s.KeyboardCurrent.Keys[key]
}

func (s *InputState) WasKeyDown(key KeyCode) bool {
	return s.KeyboardPrevious.Keys[key]
}

func (s *InputState) WasKeyUp(key KeyCode) bool {
	return !s.KeyboardPrevious.Keys[key]
}

func (s *InputState) ProcessKey(key KeyCode, pressed bool) {
	// Only handle this if the state actually changed.
	if s.KeyboardCurrent.Keys[key] == pressed {
		return
	}
	s.KeyboardCurrent.Keys[key] = pressed

	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}
	ctx := EventContext{}
	ctx.Data.U16[0] = uint16(key)
	s.fire(code, ctx)
}

// mouse input
func (s *InputState) IsButtonDown(button Button) bool {
	return s.MouseCurrent.Buttons[button]
}

func (s *InputState) WasButtonDown(button Button) bool {
	return s.MousePrevious.Buttons[button]
}

func (s *InputState) ProcessButton(button Button, pressed bool) {
	if s.MouseCurrent.Buttons[button] == pressed {
		return
	}
	s.MouseCurrent.Buttons[button] = pressed

	code := EVENT_CODE_BUTTON_RELEASED
	if pressed {
		code = EVENT_CODE_BUTTON_PRESSED
	}
	ctx := EventContext{}
	ctx.Data.U16[0] = uint16(button)
	s.fire(code, ctx)
}

// ProcessMouseMove records an absolute pointer position; the movement since the
// previous position is added to the frame's delta.
func (s *InputState) ProcessMouseMove(x, y float32) {
	if s.MouseCurrent.X == x && s.MouseCurrent.Y == y {
		return
	}
	s.deltaX += x - s.MouseCurrent.X
	s.deltaY += y - s.MouseCurrent.Y
	s.MouseCurrent.X = x
	s.MouseCurrent.Y = y

	ctx := EventContext{}
	ctx.Data.F32[0] = x
	ctx.Data.F32[1] = y
	s.fire(EVENT_CODE_MOUSE_MOVED, ctx)
}

// ProcessMouseDelta records relative pointer motion, as reported by a cursor
// that is re-centred every frame.
func (s *InputState) ProcessMouseDelta(dx, dy float32) {
	s.ProcessMouseMove(s.MouseCurrent.X+dx, s.MouseCurrent.Y+dy)
}

// MouseDelta returns the pointer movement since the last Update, in screen
// units: +x to the right, +y downwards.
func (s *InputState) MouseDelta() (float32, float32) {
	return s.deltaX, s.deltaY
}

func (s *InputState) MousePosition() (float32, float32) {
	return s.MouseCurrent.X, s.MouseCurrent.Y
}

func (s *InputState) fire(code SystemEventCode, ctx EventContext) {
	if s.events != nil {
		s.events.Fire(code, s, ctx)
	}
}

// InputSource is the input collaborator: it feeds device events for one frame
// into the state.
type InputSource interface {
	Poll(state *InputState) error
}

// InputFrame is one frame of scripted input.
type InputFrame struct {
	Press   []KeyCode
	Release []KeyCode
	MouseDX float32
	MouseDY float32
}

// ScriptedInput replays a fixed list of frames. Keys stay down until released.
// With Loop set the script restarts after the last frame; otherwise later polls
// add nothing.
type ScriptedInput struct {
	Frames []InputFrame
	Loop   bool
	next   int
}

func NewScriptedInput(frames ...InputFrame) *ScriptedInput {
	return &ScriptedInput{Frames: frames}
}

func (si *ScriptedInput) Poll(state *InputState) error {
	if si.next >= len(si.Frames) {
		if !si.Loop || len(si.Frames) == 0 {
			return nil
		}
		si.next = 0
	}
	f := si.Frames[si.next]
	si.next++

	for _, k := range f.Press {
		state.ProcessKey(k, true)
	}
	for _, k := range f.Release {
		state.ProcessKey(k, false)
	}
	if f.MouseDX != 0 || f.MouseDY != 0 {
		state.ProcessMouseDelta(f.MouseDX, f.MouseDY)
	}
	return nil
}

// Done reports whether a non-looping script has been fully replayed.
func (si *ScriptedInput) Done() bool {
	return !si.Loop && si.next >= len(si.Frames)
}
