package core

import "testing"

func TestEdgeInputConsumedOnRead(t *testing.T) {
	in := NewEdgeInput()
	in.Tap(ActionJump)

	if !in.JumpPressed() {
		t.Fatal("JumpPressed() should report the tap")
	}
	if in.JumpPressed() {
		t.Error("JumpPressed() should be cleared after the first read")
	}
}

func TestEdgeInputHeldKeyDoesNotRetrigger(t *testing.T) {
	in := NewEdgeInput()
	in.KeyDown(ActionJump)

	if !in.JumpPressed() {
		t.Fatal("first KeyDown should produce an edge")
	}

	// Auto-repeat while the key is still down.
	in.KeyDown(ActionJump)
	in.KeyDown(ActionJump)
	if in.JumpPressed() {
		t.Error("held key should not produce a second edge")
	}

	in.KeyUp(ActionJump)
	in.KeyDown(ActionJump)
	if !in.JumpPressed() {
		t.Error("release then press should produce a new edge")
	}
}

func TestEdgeInputPointer(t *testing.T) {
	in := NewEdgeInput()
	in.PointerDown()
	in.PointerDown()

	if !in.JumpPressed() {
		t.Fatal("pointer press should count as a jump")
	}
	if in.JumpPressed() {
		t.Error("pointer edge should be consumed on read")
	}

	in.PointerUp()
	in.PointerDown()
	if !in.JumpPressed() {
		t.Error("new pointer press should produce a new edge")
	}
}

func TestEdgeInputKeyAndPointerCollapse(t *testing.T) {
	in := NewEdgeInput()
	in.Tap(ActionJump)
	in.PointerDown()

	if !in.JumpPressed() {
		t.Fatal("expected jump edge")
	}
	if in.JumpPressed() {
		t.Error("key and pointer edges in the same frame should collapse into one jump")
	}
}

func TestEdgeInputConsume(t *testing.T) {
	in := NewEdgeInput()
	in.Tap(ActionJump)
	in.Tap(ActionPause)
	in.KeyDown(ActionJump)
	in.PointerDown()

	in.Consume()

	if in.JumpPressed() {
		t.Error("Consume should drop pending jump edges")
	}
	if in.PausePressed() {
		t.Error("Consume should drop pending pause edges")
	}

	// Held state was cleared too, so the next press is a fresh edge.
	in.KeyDown(ActionJump)
	if !in.JumpPressed() {
		t.Error("press after Consume should produce an edge")
	}
}

func TestEdgeInputIgnoresNone(t *testing.T) {
	in := NewEdgeInput()
	in.Tap(ActionNone)
	if in.Pressed(ActionNone) {
		t.Error("ActionNone should never produce an edge")
	}
}
