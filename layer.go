package sketch

// LayerSurface owns one rendering surface and the committed shape list
// drawn onto it. Styles are layer-global: changing the stroke color, fill
// color, or line width restyles every committed shape on the next replay.
// That retroactive behavior is intentional, not a bug.
//
// All mutation happens synchronously inside the pointer-event handlers of
// the owning Board; a LayerSurface must not be shared across goroutines
// without external locking.
type LayerSurface struct {
	canvas Canvas
	shapes []Shape

	state   TransformState
	mapping Matrix

	stroke    RGBA
	fill      RGBA
	lineWidth float64
	textStyle TextStyle

	visible bool
	input   TextInput

	// gesture scratch state
	anchor       Point
	snapshot     []byte
	transforming bool
}

// newLayerSurface wraps a canvas with neutral state and default styles.
func newLayerSurface(canvas Canvas, input TextInput) *LayerSurface {
	return &LayerSurface{
		canvas:    canvas,
		state:     newTransformState(),
		mapping:   Identity(),
		stroke:    Black,
		fill:      Transparent,
		lineWidth: 1,
		textStyle: DefaultTextStyle(),
		visible:   true,
		input:     input,
	}
}

// Canvas returns the rendering surface this layer draws to.
func (l *LayerSurface) Canvas() Canvas { return l.canvas }

// Shapes returns the committed shape list in drawing order.
// The returned slice must not be modified.
func (l *LayerSurface) Shapes() []Shape { return l.shapes }

// State returns a copy of the accumulated transform state.
func (l *LayerSurface) State() TransformState { return l.state }

// Mapping returns the effective pixel mapping applied at replay.
func (l *LayerSurface) Mapping() Matrix { return l.mapping }

// Visible reports whether the layer is currently shown.
func (l *LayerSurface) Visible() bool { return l.visible }

// Input returns the layer's text capture widget, or nil when text capture
// is disabled.
func (l *LayerSurface) Input() TextInput { return l.input }

// setVisible flips the flag and forwards to the canvas when it manages
// its own visibility.
func (l *LayerSurface) setVisible(v bool) {
	l.visible = v
	if vc, ok := l.canvas.(VisibilityCanvas); ok {
		vc.SetVisible(v)
	}
}

// applyStyles pushes the layer-global style and mapping onto the canvas.
func (l *LayerSurface) applyStyles() {
	l.canvas.SetStrokeColor(l.stroke)
	l.canvas.SetFillColor(l.fill)
	l.canvas.SetLineWidth(l.lineWidth)
	l.canvas.SetFont(l.textStyle.Font)
	l.canvas.SetMatrix(l.mapping)
}

// ReplayAll clears the surface and re-draws every committed shape from its
// parametric data through the current mapping. Replay is a full redraw;
// the engine never band-limits invalidation.
func (l *LayerSurface) ReplayAll() {
	l.canvas.Clear()
	l.applyStyles()
	for _, s := range l.shapes {
		s.draw(l.canvas)
	}
}

// Clear drops the committed shapes and clears the surface pixels.
// The transform state deliberately persists.
func (l *LayerSurface) Clear() {
	l.shapes = nil
	l.canvas.Clear()
}

// SetStrokeStyle sets the layer stroke color and replays so committed
// shapes pick up the change.
func (l *LayerSurface) SetStrokeStyle(c RGBA) {
	l.stroke = c
	l.ReplayAll()
}

// StrokeStyle returns the layer stroke color.
func (l *LayerSurface) StrokeStyle() RGBA { return l.stroke }

// SetFillStyle sets the layer fill color and replays.
func (l *LayerSurface) SetFillStyle(c RGBA) {
	l.fill = c
	l.ReplayAll()
}

// FillStyle returns the layer fill color.
func (l *LayerSurface) FillStyle() RGBA { return l.fill }

// SetLineWidth sets the stroke width and replays.
// Non-finite widths coerce to the 1px default; negative widths clamp to 0.
func (l *LayerSurface) SetLineWidth(w float64) {
	l.lineWidth = sizeOr(w, 1)
	l.ReplayAll()
}

// LineWidth returns the stroke width.
func (l *LayerSurface) LineWidth() float64 { return l.lineWidth }

// SetTextStyle replaces the default style applied to future text commits.
func (l *LayerSurface) SetTextStyle(ts TextStyle) {
	ts.Font = ts.Font.normalized()
	l.textStyle = ts
}

// TextStyle returns the default style for future text commits.
func (l *LayerSurface) TextStyle() TextStyle { return l.textStyle }

// --- freehand stroke gesture -------------------------------------------

// beginStroke opens a new freehand stroke at p.
func (l *LayerSurface) beginStroke(p Point) {
	l.anchor = p
	l.shapes = append(l.shapes, NewStroke(p))
}

// extendStroke appends p to the open stroke and draws only the new
// segment; the committed entry is replaced wholesale, never mutated.
func (l *LayerSurface) extendStroke(p Point) {
	n := len(l.shapes)
	if n == 0 {
		return
	}
	s, ok := l.shapes[n-1].(Stroke)
	if !ok || s.Len() == 0 {
		return
	}
	last := s.At(s.Len() - 1)
	l.shapes[n-1] = s.withPoint(p)

	l.applyStyles()
	l.canvas.BeginPath()
	l.canvas.MoveTo(last.X, last.Y)
	l.canvas.LineTo(p.X, p.Y)
	l.canvas.StrokePath()
}

// --- shape preview gesture ---------------------------------------------

// beginPreview snapshots the raw pixels before any preview drawing and
// records the gesture anchor as a provisional one-point entry.
func (l *LayerSurface) beginPreview(p Point) {
	l.anchor = p
	l.snapshot = l.canvas.Snapshot()
	l.shapes = append(l.shapes, NewStroke(p))
}

// previewShape erases the previous preview by restoring the snapshot and
// draws the candidate shape from the anchor to p. The provisional list
// entry tracks the latest pointer position: the trailing point is popped
// and the new one pushed, mirroring the committed-model discipline.
func (l *LayerSurface) previewShape(kind FigureKind, p Point) {
	n := len(l.shapes)
	if n == 0 || l.snapshot == nil {
		return
	}
	s, ok := l.shapes[n-1].(Stroke)
	if !ok {
		return
	}
	if s.Len() > 1 {
		s, _ = s.withoutLast()
	}
	l.canvas.Restore(l.snapshot)
	l.drawCandidate(kind, p)
	l.shapes[n-1] = s.withPoint(p)
}

// commitPreview pops the provisional entry and pushes the finalized
// immutable shape built from the same anchor and end point. The committed
// list never retains a preview entry.
func (l *LayerSurface) commitPreview(kind FigureKind, p Point) {
	n := len(l.shapes)
	if n == 0 {
		return
	}
	if _, ok := l.shapes[n-1].(Stroke); ok {
		l.shapes = l.shapes[:n-1]
	}
	if l.snapshot != nil {
		l.canvas.Restore(l.snapshot)
		l.snapshot = nil
	}
	shape := buildFigure(kind, l.anchor, p)
	l.shapes = append(l.shapes, shape)
	l.applyStyles()
	shape.draw(l.canvas)
}

// drawCandidate renders the transient preview without touching the
// committed model.
func (l *LayerSurface) drawCandidate(kind FigureKind, p Point) {
	l.applyStyles()
	buildFigure(kind, l.anchor, p).draw(l.canvas)
}

// buildFigure constructs the shape described by an anchor-to-pointer drag.
func buildFigure(kind FigureKind, anchor, p Point) Shape {
	switch kind {
	case FigureCircle:
		return NewCircle(anchor.X, anchor.Y, Dist(anchor, p))
	case FigureLine:
		return NewLine(anchor, p)
	default:
		off := Offset(anchor, p)
		return NewRect(anchor.Y, anchor.X, off.X, off.Y)
	}
}

// --- transform gesture ---------------------------------------------------

// beginTransform records the drag anchor. The anchor is held as a
// provisional one-point list entry and discarded when the gesture ends.
func (l *LayerSurface) beginTransform(p Point) {
	l.anchor = p
	l.transforming = true
	l.shapes = append(l.shapes, NewStroke(p))
}

// endTransform discards the anchor-point entry and replays, since the
// mid-drag replays painted the entry onto the surface. The pixels must
// match a replay of the committed list once the gesture is over.
func (l *LayerSurface) endTransform() {
	l.transforming = false
	n := len(l.shapes)
	if n == 0 {
		return
	}
	if s, ok := l.shapes[n-1].(Stroke); ok && s.Len() == 1 {
		l.shapes = l.shapes[:n-1]
		l.ReplayAll()
	}
}

// ApplyTransform mutates one transform component, recomputes the mapping
// around the pivot, and replays the full shape list. Invalid amounts are
// absorbed as a no-op and reported as false.
func (l *LayerSurface) ApplyTransform(kind TransformKind, amounts ...float64) bool {
	pivot := l.centerReference()
	m, ok := l.state.Apply(kind, pivot, amounts...)
	if !ok {
		return false
	}
	l.mapping = m
	l.ReplayAll()
	return true
}

// centerReference returns the transform pivot: the center of the FIRST
// committed shape, or the origin when nothing is committed. The provisional
// anchor entry of an in-flight transform gesture is not committed and never
// serves as the pivot. Centering is based on one reference shape, not the
// union of the scene; callers must not assume whole-scene centering.
func (l *LayerSurface) centerReference() Point {
	shapes := l.shapes
	if l.transforming && len(shapes) > 0 {
		shapes = shapes[:len(shapes)-1]
	}
	if len(shapes) == 0 {
		return Point{}
	}
	return shapes[0].center(l.canvas)
}

// --- text capture ---------------------------------------------------------

// OpenTextCapture shows the capture widget at p. Refused when no widget is
// configured or one is already open for this layer.
func (l *LayerSurface) OpenTextCapture(p Point) bool {
	if l.input == nil || l.input.IsOpen() {
		return false
	}
	return l.input.Open(p)
}

// HasTextCapture reports whether a capture is open on this layer.
func (l *LayerSurface) HasTextCapture() bool {
	return l.input != nil && l.input.IsOpen()
}

// refreshTextCapture redraws a pending capture in place. Called when the
// board re-enters TEXT mode so the widget stays aligned with its anchor.
func (l *LayerSurface) refreshTextCapture() {
	if l.input == nil || !l.input.IsOpen() {
		return
	}
	l.input.Refresh()
}

// CommitText reads the pending capture, removes it, and appends a Text
// shape styled with the CURRENT layer default (commit-time, not open-time).
// Returns the committed string and false when no capture was open.
func (l *LayerSurface) CommitText() (string, bool) {
	if l.input == nil {
		return "", false
	}
	value, at, ok := l.input.ReadAndClose()
	if !ok {
		return "", false
	}
	shape := NewText(value, at, l.textStyle)
	l.shapes = append(l.shapes, shape)
	l.applyStyles()
	shape.draw(l.canvas)
	return value, true
}
