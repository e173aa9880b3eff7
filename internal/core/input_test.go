package core

import "testing"

func TestInputFrameCollapsesDuplicates(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Set(ActionJump)

	if len(f.Actions) != 1 {
		t.Errorf("len(Actions) = %d, expected 1", len(f.Actions))
	}
	if !f.Has(ActionJump) {
		t.Error("Has(ActionJump) should be true")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on a zero frame should allocate the action set")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)
	f.Set(ActionJump)
	f.Clear()

	if f.Has(ActionRestart) || f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
