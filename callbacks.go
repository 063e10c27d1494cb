package sketch

// Callbacks holds the lifecycle handlers the host can hook.
// Every field defaults to a no-op at construction, so callers only
// override what they care about.
type Callbacks struct {
	// DrawStart fires on pointer-down, before mode dispatch.
	DrawStart func(layer *LayerSurface, x, y float64)
	// DrawMove fires on pointer-move while a gesture is live.
	DrawMove func(layer *LayerSurface, x, y float64)
	// DrawEnd fires on pointer-up of a live gesture.
	DrawEnd func(layer *LayerSurface, x, y float64)
	// ChangeMode fires when the interaction mode changes, with the
	// new mode name. Invalid names never reach this handler.
	ChangeMode func(mode string)
	// SelectLayer fires when the active layer changes by selection.
	SelectLayer func(index int)
	// ShowLayer and HideLayer fire on visibility toggles.
	ShowLayer func(layer *LayerSurface, index int)
	HideLayer func(layer *LayerSurface, index int)
	// AddLayer and RemoveLayer fire on layer lifecycle changes.
	AddLayer    func(layer *LayerSurface, index int)
	RemoveLayer func(layer *LayerSurface, index int)
}

// defaultCallbacks returns a Callbacks with every handler wired to a no-op.
func defaultCallbacks() Callbacks {
	nopLayer := func(*LayerSurface, float64, float64) {}
	nopIndexed := func(*LayerSurface, int) {}
	return Callbacks{
		DrawStart:   nopLayer,
		DrawMove:    nopLayer,
		DrawEnd:     nopLayer,
		ChangeMode:  func(string) {},
		SelectLayer: func(int) {},
		ShowLayer:   nopIndexed,
		HideLayer:   nopIndexed,
		AddLayer:    nopIndexed,
		RemoveLayer: nopIndexed,
	}
}

// fillDefaults replaces nil handlers with no-ops so the dispatch sites
// never have to nil-check.
func (c *Callbacks) fillDefaults() {
	d := defaultCallbacks()
	if c.DrawStart == nil {
		c.DrawStart = d.DrawStart
	}
	if c.DrawMove == nil {
		c.DrawMove = d.DrawMove
	}
	if c.DrawEnd == nil {
		c.DrawEnd = d.DrawEnd
	}
	if c.ChangeMode == nil {
		c.ChangeMode = d.ChangeMode
	}
	if c.SelectLayer == nil {
		c.SelectLayer = d.SelectLayer
	}
	if c.ShowLayer == nil {
		c.ShowLayer = d.ShowLayer
	}
	if c.HideLayer == nil {
		c.HideLayer = d.HideLayer
	}
	if c.AddLayer == nil {
		c.AddLayer = d.AddLayer
	}
	if c.RemoveLayer == nil {
		c.RemoveLayer = d.RemoveLayer
	}
}

// On registers a handler by its event name, validating both the key and
// the handler signature. Unknown keys and mismatched signatures are
// rejected with false and leave the existing handler in place.
//
// Recognized keys and signatures:
//
//	drawstart, drawmove, drawend  func(*LayerSurface, float64, float64)
//	changemode                    func(string)
//	selectlayer                   func(int)
//	showlayer, hidelayer,
//	addlayer, removelayer         func(*LayerSurface, int)
func (b *Board) On(name string, handler any) bool {
	switch name {
	case "drawstart":
		if fn, ok := handler.(func(*LayerSurface, float64, float64)); ok {
			b.callbacks.DrawStart = fn
			return true
		}
	case "drawmove":
		if fn, ok := handler.(func(*LayerSurface, float64, float64)); ok {
			b.callbacks.DrawMove = fn
			return true
		}
	case "drawend":
		if fn, ok := handler.(func(*LayerSurface, float64, float64)); ok {
			b.callbacks.DrawEnd = fn
			return true
		}
	case "changemode":
		if fn, ok := handler.(func(string)); ok {
			b.callbacks.ChangeMode = fn
			return true
		}
	case "selectlayer":
		if fn, ok := handler.(func(int)); ok {
			b.callbacks.SelectLayer = fn
			return true
		}
	case "showlayer":
		if fn, ok := handler.(func(*LayerSurface, int)); ok {
			b.callbacks.ShowLayer = fn
			return true
		}
	case "hidelayer":
		if fn, ok := handler.(func(*LayerSurface, int)); ok {
			b.callbacks.HideLayer = fn
			return true
		}
	case "addlayer":
		if fn, ok := handler.(func(*LayerSurface, int)); ok {
			b.callbacks.AddLayer = fn
			return true
		}
	case "removelayer":
		if fn, ok := handler.(func(*LayerSurface, int)); ok {
			b.callbacks.RemoveLayer = fn
			return true
		}
	default:
		logger().Debug("callback key rejected", "name", name)
		return false
	}
	logger().Debug("callback handler rejected", "name", name)
	return false
}
