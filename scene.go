package sketch

// Scene is the ordered stack of layer surfaces plus the active-layer
// selector. Exactly one layer is active whenever the scene is non-empty;
// the active index always stays in [0, len) while len > 0.
//
// Index-taking operations validate their argument and absorb out-of-range
// values as a no-op, reporting failure through their boolean result.
type Scene struct {
	layers []*LayerSurface
	active int
}

// newScene returns an empty scene.
func newScene() *Scene {
	return &Scene{}
}

// Len returns the number of layers.
func (s *Scene) Len() int { return len(s.layers) }

// valid reports whether i addresses an existing layer.
func (s *Scene) valid(i int) bool {
	return i >= 0 && i < len(s.layers)
}

// ActiveIndex returns the index of the active layer, or -1 when empty.
func (s *Scene) ActiveIndex() int {
	if len(s.layers) == 0 {
		return -1
	}
	return s.active
}

// Active returns the active layer, or nil when the scene is empty.
func (s *Scene) Active() *LayerSurface {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[s.active]
}

// Layer returns the layer at i, or nil when out of range.
func (s *Scene) Layer(i int) *LayerSurface {
	if !s.valid(i) {
		return nil
	}
	return s.layers[i]
}

// add appends a layer and makes it active, returning its index.
func (s *Scene) add(l *LayerSurface) int {
	s.layers = append(s.layers, l)
	s.active = len(s.layers) - 1
	return s.active
}

// remove deletes the layer at i. The active index is decremented and then
// re-validated back into [0, len).
func (s *Scene) remove(i int) (*LayerSurface, bool) {
	if !s.valid(i) {
		return nil, false
	}
	l := s.layers[i]
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	s.active--
	if s.active < 0 {
		s.active = 0
	}
	if s.active >= len(s.layers) && len(s.layers) > 0 {
		s.active = len(s.layers) - 1
	}
	return l, true
}

// sel makes the layer at i active.
func (s *Scene) sel(i int) bool {
	if !s.valid(i) {
		return false
	}
	s.active = i
	return true
}

// show makes the layer at i visible.
func (s *Scene) show(i int) (*LayerSurface, bool) {
	if !s.valid(i) {
		return nil, false
	}
	s.layers[i].setVisible(true)
	return s.layers[i], true
}

// hide makes the layer at i invisible.
func (s *Scene) hide(i int) (*LayerSurface, bool) {
	if !s.valid(i) {
		return nil, false
	}
	s.layers[i].setVisible(false)
	return s.layers[i], true
}
