package sketch

import "testing"

func TestOnRegistersHandlers(t *testing.T) {
	b := New(50, 50)

	var starts, moves, ends int
	if !b.On("drawstart", func(*LayerSurface, float64, float64) { starts++ }) {
		t.Fatal("drawstart rejected")
	}
	if !b.On("drawmove", func(*LayerSurface, float64, float64) { moves++ }) {
		t.Fatal("drawmove rejected")
	}
	if !b.On("drawend", func(*LayerSurface, float64, float64) { ends++ }) {
		t.Fatal("drawend rejected")
	}

	b.PointerDown(1, 1)
	b.PointerMove(2, 2)
	b.PointerMove(3, 3)
	b.PointerUp(3, 3)

	if starts != 1 || moves != 2 || ends != 1 {
		t.Errorf("starts=%d moves=%d ends=%d, want 1 2 1", starts, moves, ends)
	}
}

func TestOnRejectsUnknownKey(t *testing.T) {
	b := New(50, 50)
	if b.On("doubleclick", func(*LayerSurface, float64, float64) {}) {
		t.Error("unknown key accepted")
	}
}

func TestOnRejectsWrongSignature(t *testing.T) {
	b := New(50, 50)
	if b.On("drawstart", func(s string) {}) {
		t.Error("wrong signature accepted")
	}
	if b.On("changemode", 42) {
		t.Error("non-function accepted")
	}

	// The existing handler stays in place after a rejected registration.
	var fired bool
	if !b.On("changemode", func(string) { fired = true }) {
		t.Fatal("valid handler rejected")
	}
	b.On("changemode", func(int) {})
	b.SetMode("figure")
	if !fired {
		t.Error("original handler lost after rejected re-registration")
	}
}

func TestLayerLifecycleCallbacks(t *testing.T) {
	var added, removed, selected, shown, hidden []int
	b := New(50, 50, WithCallbacks(Callbacks{
		AddLayer:    func(_ *LayerSurface, i int) { added = append(added, i) },
		RemoveLayer: func(_ *LayerSurface, i int) { removed = append(removed, i) },
		SelectLayer: func(i int) { selected = append(selected, i) },
		ShowLayer:   func(_ *LayerSurface, i int) { shown = append(shown, i) },
		HideLayer:   func(_ *LayerSurface, i int) { hidden = append(hidden, i) },
	}))

	b.AddLayer()
	b.SelectLayer(0)
	b.HideLayer(1)
	b.ShowLayer(1)
	b.RemoveLayer(1)
	b.RemoveLayer(9) // out of range, no callback

	// New fires addlayer for the initial layer too.
	if len(added) != 2 || added[0] != 0 || added[1] != 1 {
		t.Errorf("added = %v", added)
	}
	if len(removed) != 1 || removed[0] != 1 {
		t.Errorf("removed = %v", removed)
	}
	if len(selected) != 1 || selected[0] != 0 {
		t.Errorf("selected = %v", selected)
	}
	if len(shown) != 1 || len(hidden) != 1 {
		t.Errorf("shown = %v, hidden = %v", shown, hidden)
	}
}

func TestNilCallbacksAreFilled(t *testing.T) {
	// A partially populated Callbacks must not panic on unset events.
	b := New(50, 50, WithCallbacks(Callbacks{
		ChangeMode: func(string) {},
	}))
	b.PointerDown(1, 1)
	b.PointerMove(2, 2)
	b.PointerUp(2, 2)
	b.AddLayer()
	b.RemoveLayer(1)
}
