package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func press(code string) DebouncedInput {
	return DebouncedInput{Device: DeviceKeyboard, Code: code, Phase: PhasePress}
}

func release(code string) DebouncedInput {
	return DebouncedInput{Device: DeviceKeyboard, Code: code, Phase: PhaseRelease}
}

func TestTracker_PressSetsDirection(t *testing.T) {
	tests := []struct {
		code string
		dir  Direction
	}{
		{"KeyW", DirForward},
		{"ArrowUp", DirForward},
		{"KeyS", DirBackward},
		{"ArrowDown", DirBackward},
		{"KeyA", DirLeft},
		{"ArrowLeft", DirLeft},
		{"KeyD", DirRight},
		{"ArrowRight", DirRight},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			tr := NewTracker()
			tr.Apply(press(tt.code))
			if !tr.Held(tt.dir) {
				t.Errorf("Held(%v) after press %s = false, want true", tt.dir, tt.code)
			}
			tr.Apply(release(tt.code))
			if tr.Held(tt.dir) {
				t.Errorf("Held(%v) after release %s = true, want false", tt.dir, tt.code)
			}
		})
	}
}

func TestTracker_PressIsIdempotent(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 5; i++ {
		tr.Apply(press("KeyW"))
	}
	assert.True(t, tr.Held(DirForward))
	tr.Apply(release("KeyW"))
	assert.False(t, tr.Held(DirForward), "a single release must clear a repeated press")
}

func TestTracker_EitherKeyReleaseClears(t *testing.T) {
	tr := NewTracker()
	tr.Apply(press("KeyW"))
	tr.Apply(press("ArrowUp"))
	tr.Apply(release("ArrowUp"))
	assert.False(t, tr.Held(DirForward))
	assert.False(t, tr.AnyHeld())
}

func TestTracker_InteractIsEdgeTriggered(t *testing.T) {
	tr := NewTracker()
	tr.Apply(press("KeyE"))
	assert.True(t, tr.InteractPending())
	assert.True(t, tr.ConsumeInteract())
	assert.False(t, tr.ConsumeInteract(), "interact must be consumed once")

	tr.Apply(release("KeyE"))
	assert.False(t, tr.InteractPending(), "release must not latch interact")
}

func TestTracker_EscapeTogglesMenu(t *testing.T) {
	tr := NewTracker()
	tr.Apply(press("Escape"))
	assert.True(t, tr.MenuOpen())
	tr.Apply(release("Escape"))
	assert.True(t, tr.MenuOpen(), "release must not toggle")
	tr.Apply(press("Escape"))
	assert.False(t, tr.MenuOpen())
}

func TestTracker_UnboundKeyIsIgnored(t *testing.T) {
	tr := NewTracker()
	intent := tr.Apply(press("KeyZ"))
	assert.Equal(t, ActionNone, intent.Action)
	assert.False(t, tr.AnyHeld())
	assert.False(t, tr.InteractPending())
}

func TestTracker_ReleaseAll(t *testing.T) {
	tr := NewTracker()
	tr.Apply(press("KeyW"))
	tr.Apply(press("KeyD"))
	tr.ReleaseAll()
	assert.False(t, tr.AnyHeld())
}

func TestMapToIntent_SharedAction(t *testing.T) {
	for _, code := range []string{"ArrowUp", "KeyW"} {
		if got := MapToIntent(press(code)).Action; got != ActionMoveForward {
			t.Errorf("MapToIntent(%s) = %v, want %v", code, ActionName(got), ActionName(ActionMoveForward))
		}
	}
	assert.Equal(t, ActionNone, MapToIntent(press("KeyZ")).Action)
	assert.Equal(t, "None", ActionName(ActionNone))
	assert.Equal(t, "Close Page", ActionName(ActionClosePage))
}

func TestDecodeTerminalKeys(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []string
	}{
		{"letters", []byte("we"), []string{"KeyW", "KeyE"}},
		{"upper", []byte("W"), []string{"KeyW"}},
		{"arrow csi", []byte{0x1b, '[', 'A'}, []string{"ArrowUp"}},
		{"arrow ss3", []byte{0x1b, 'O', 'D'}, []string{"ArrowLeft"}},
		{"lone escape", []byte{0x1b}, []string{"Escape"}},
		{"brackets", []byte("[]"), []string{"BracketLeft", "BracketRight"}},
		{"ctrl c", []byte{3}, []string{CodeInterrupt}},
		{"mixed", []byte{'d', 0x1b, '[', 'B', '\r'}, []string{"KeyD", "ArrowDown", "Enter"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeTerminalKeys(tt.in))
		})
	}
}
