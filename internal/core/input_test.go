package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionJump)

	if !f.Has(ActionLeft) || !f.Has(ActionJump) {
		t.Error("constructor actions should be set")
	}
	if f.Has(ActionRight) {
		t.Error("Right should not be set")
	}

	f.Clear()

	if f.Has(ActionLeft) || f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionRestart) {
		t.Error("zero frame should report nothing")
	}
	zero.Set(ActionRestart)
	if !zero.Has(ActionRestart) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionJumpRelease.String() != "JumpRelease" {
		t.Errorf("unexpected name %q", ActionJumpRelease.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}
