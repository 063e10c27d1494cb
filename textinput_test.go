package sketch

import "testing"

func TestBufferedInputLifecycle(t *testing.T) {
	in := NewBufferedInput()

	if in.IsOpen() {
		t.Error("new input reports open")
	}
	if _, _, ok := in.ReadAndClose(); ok {
		t.Error("ReadAndClose succeeded on closed input")
	}

	if !in.Open(Pt(3, 4)) {
		t.Fatal("Open failed")
	}
	if !in.IsOpen() {
		t.Error("IsOpen = false after Open")
	}
	if in.Open(Pt(9, 9)) {
		t.Error("second Open succeeded")
	}
	if got := in.Position(); got != Pt(3, 4) {
		t.Errorf("Position = %+v, want {3 4}", got)
	}

	in.SetValue("abc")
	in.Refresh() // no-op, must not disturb state

	s, p, ok := in.ReadAndClose()
	if !ok || s != "abc" || p != Pt(3, 4) {
		t.Errorf("ReadAndClose = %q, %+v, %v", s, p, ok)
	}
	if in.IsOpen() {
		t.Error("still open after ReadAndClose")
	}
}

func TestBufferedInputSetValueWhenClosed(t *testing.T) {
	in := NewBufferedInput()
	in.SetValue("ignored")
	in.Open(Pt(0, 0))
	s, _, _ := in.ReadAndClose()
	if s != "" {
		t.Errorf("value = %q, want empty (SetValue before Open must be dropped)", s)
	}
}

func TestBufferedInputReopenResets(t *testing.T) {
	in := NewBufferedInput()
	in.Open(Pt(1, 1))
	in.SetValue("first")
	in.ReadAndClose()

	in.Open(Pt(2, 2))
	s, p, ok := in.ReadAndClose()
	if !ok || s != "" || p != Pt(2, 2) {
		t.Errorf("ReadAndClose = %q, %+v, %v", s, p, ok)
	}
}
