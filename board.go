package sketch

// Mode is the high-level interaction behavior selected on a board.
type Mode int

const (
	// ModeHand draws freehand strokes.
	ModeHand Mode = iota
	// ModeFigure drags out a primitive shape with live preview.
	ModeFigure
	// ModeText places a text capture widget.
	ModeText
	// ModeTransform drags a translate/scale/rotate delta.
	ModeTransform
	// ModeTool is recognized but currently inert.
	ModeTool
)

// String returns the lowercase name used by the public string API.
func (m Mode) String() string {
	switch m {
	case ModeHand:
		return "hand"
	case ModeFigure:
		return "figure"
	case ModeText:
		return "text"
	case ModeTransform:
		return "transform"
	case ModeTool:
		return "tool"
	}
	return "unknown"
}

func parseMode(name string) (Mode, bool) {
	switch name {
	case "hand":
		return ModeHand, true
	case "figure":
		return ModeFigure, true
	case "text":
		return ModeText, true
	case "transform":
		return ModeTransform, true
	case "tool":
		return ModeTool, true
	}
	return 0, false
}

// FigureKind refines FIGURE mode: which primitive a drag produces.
type FigureKind int

const (
	// FigureRect drags out an axis-aligned rectangle.
	FigureRect FigureKind = iota
	// FigureCircle drags out a circle centered on the anchor.
	FigureCircle
	// FigureLine drags out a straight segment.
	FigureLine
)

// String returns the lowercase name used by the public string API.
func (k FigureKind) String() string {
	switch k {
	case FigureRect:
		return "rectangle"
	case FigureCircle:
		return "circle"
	case FigureLine:
		return "line"
	}
	return "unknown"
}

func parseFigureKind(name string) (FigureKind, bool) {
	switch name {
	case "rectangle":
		return FigureRect, true
	case "circle":
		return FigureCircle, true
	case "line":
		return FigureLine, true
	}
	return 0, false
}

// Board is the drawing engine front end: it owns the layer stack and turns
// pointer gestures into mutations of the committed scene according to the
// current mode, figure kind, and transform kind selection.
//
// Boards are event-driven and single-owner: deliver pointer events from
// one goroutine only. Handlers run to completion before the next event.
type Board struct {
	width, height int

	scene     *Scene
	newCanvas CanvasFactory
	newInput  TextInputFactory
	callbacks Callbacks

	mode      Mode
	figure    FigureKind
	transform TransformKind

	// down gates move/up handling so a stray move after focus loss can
	// never orphan a preview.
	down bool
}

// New creates a board with one initial layer of the given size.
// By default layers render onto in-memory image canvases and text capture
// uses a buffered widget; override both with options.
func New(width, height int, opts ...Option) *Board {
	options := defaultBoardOptions()
	for _, opt := range opts {
		opt(&options)
	}
	options.callbacks.fillDefaults()

	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	b := &Board{
		width:     width,
		height:    height,
		scene:     newScene(),
		newCanvas: options.canvasFactory,
		newInput:  options.inputFactory,
		callbacks: options.callbacks,
	}
	b.AddLayer()
	return b
}

// Width returns the board width in pixels.
func (b *Board) Width() int { return b.width }

// Height returns the board height in pixels.
func (b *Board) Height() int { return b.height }

// Scene returns the layer stack.
func (b *Board) Scene() *Scene { return b.scene }

// ActiveLayer returns the active layer surface, or nil when the scene is
// empty.
func (b *Board) ActiveLayer() *LayerSurface { return b.scene.Active() }

// --- mode selection -------------------------------------------------------

// SetMode switches the interaction mode by name. Invalid names are
// silently ignored and the previous mode is retained; the changemode
// callback fires only for accepted names.
//
// Entering text mode has a side effect: a brand-new layer is allocated so
// committed text never mixes mid-gesture with other shapes on the same
// surface, and any pending capture is redrawn.
func (b *Board) SetMode(name string) *Board {
	m, ok := parseMode(name)
	if !ok {
		logger().Debug("mode rejected", "name", name)
		return b
	}
	b.mode = m
	if m == ModeText {
		if l := b.scene.Active(); l != nil {
			l.refreshTextCapture()
		}
		b.AddLayer()
	}
	b.callbacks.ChangeMode(name)
	return b
}

// Mode returns the current mode name.
func (b *Board) Mode() string { return b.mode.String() }

// SetFigure selects which primitive FIGURE mode drags out. Invalid names
// are silently ignored.
func (b *Board) SetFigure(name string) *Board {
	k, ok := parseFigureKind(name)
	if !ok {
		logger().Debug("figure kind rejected", "name", name)
		return b
	}
	b.figure = k
	return b
}

// Figure returns the current figure kind name.
func (b *Board) Figure() string { return b.figure.String() }

// SetTransform selects which transform component TRANSFORM mode drags.
// Invalid names are silently ignored.
func (b *Board) SetTransform(name string) *Board {
	k, ok := parseTransformKind(name)
	if !ok {
		logger().Debug("transform kind rejected", "name", name)
		return b
	}
	b.transform = k
	return b
}

// Transform returns the current transform kind name.
func (b *Board) Transform() string { return b.transform.String() }

// --- pointer events ---------------------------------------------------------

// PointerDown begins a gesture at (x, y) on the active layer.
func (b *Board) PointerDown(x, y float64) {
	l := b.scene.Active()
	if l == nil {
		return
	}
	p := Pt(x, y)
	b.down = true
	b.callbacks.DrawStart(l, p.X, p.Y)

	switch b.mode {
	case ModeHand:
		l.beginStroke(p)
	case ModeFigure:
		l.beginPreview(p)
	case ModeText:
		// Text placement records no stroke entry; the capture widget
		// takes over until commit.
		l.OpenTextCapture(p)
	case ModeTransform:
		l.beginTransform(p)
	}
}

// PointerMove continues a live gesture. Moves without a preceding down are
// ignored entirely.
func (b *Board) PointerMove(x, y float64) {
	if !b.down {
		return
	}
	l := b.scene.Active()
	if l == nil {
		return
	}
	p := Pt(x, y)
	b.callbacks.DrawMove(l, p.X, p.Y)

	switch b.mode {
	case ModeHand:
		l.extendStroke(p)
	case ModeFigure:
		l.previewShape(b.figure, p)
	case ModeTransform:
		l.ApplyTransform(b.transform, dragAmounts(b.transform, l.anchor, p)...)
	}
}

// PointerUp ends a live gesture. Hosts should deliver pointer-up even when
// it happens outside the drawing surface so gestures always terminate.
// Ups without a live gesture are ignored.
func (b *Board) PointerUp(x, y float64) {
	if !b.down {
		return
	}
	b.down = false
	l := b.scene.Active()
	if l == nil {
		return
	}
	p := Pt(x, y)
	b.callbacks.DrawEnd(l, p.X, p.Y)

	switch b.mode {
	case ModeFigure:
		l.commitPreview(b.figure, p)
	case ModeTransform:
		l.endTransform()
	}
}

// dragAmounts converts the anchor-to-pointer offset into the amounts fed
// to TransformState.Apply for each transform kind:
//
//	translate: the raw pixel offsets
//	scale:     1 + offset/100 per axis (drag right/down to enlarge)
//	rotate:    horizontal offset in degrees (1px per degree)
func dragAmounts(kind TransformKind, anchor, p Point) []float64 {
	off := Offset(anchor, p)
	switch kind {
	case TransformScale:
		return []float64{1 + off.X/100, 1 + off.Y/100}
	case TransformRotate:
		return []float64{off.X}
	default:
		return []float64{off.X, off.Y}
	}
}

// --- layer operations ---------------------------------------------------------

// AddLayer allocates a new layer surface, appends it to the scene, and
// makes it active.
func (b *Board) AddLayer() *Board {
	var input TextInput
	if b.newInput != nil {
		input = b.newInput()
	}
	l := newLayerSurface(b.newCanvas(b.width, b.height), input)
	idx := b.scene.add(l)
	logger().Info("layer added", "index", idx)
	b.callbacks.AddLayer(l, idx)
	return b
}

// RemoveLayer deletes the layer at index. Out-of-range indices leave the
// scene unchanged and report false.
func (b *Board) RemoveLayer(index int) bool {
	l, ok := b.scene.remove(index)
	if !ok {
		return false
	}
	logger().Info("layer removed", "index", index)
	b.callbacks.RemoveLayer(l, index)
	return true
}

// SelectLayer makes the layer at index active. Out-of-range indices are a
// no-op reporting false.
func (b *Board) SelectLayer(index int) bool {
	if !b.scene.sel(index) {
		return false
	}
	b.callbacks.SelectLayer(index)
	return true
}

// ShowLayer makes the layer at index visible.
func (b *Board) ShowLayer(index int) bool {
	l, ok := b.scene.show(index)
	if !ok {
		return false
	}
	b.callbacks.ShowLayer(l, index)
	return true
}

// HideLayer makes the layer at index invisible.
func (b *Board) HideLayer(index int) bool {
	l, ok := b.scene.hide(index)
	if !ok {
		return false
	}
	b.callbacks.HideLayer(l, index)
	return true
}

// --- style delegation ---------------------------------------------------------

// SetFillStyle sets the active layer's fill color and replays it.
func (b *Board) SetFillStyle(c RGBA) *Board {
	if l := b.scene.Active(); l != nil {
		l.SetFillStyle(c)
	}
	return b
}

// FillStyle returns the active layer's fill color.
func (b *Board) FillStyle() RGBA {
	if l := b.scene.Active(); l != nil {
		return l.FillStyle()
	}
	return Transparent
}

// SetStrokeStyle sets the active layer's stroke color and replays it.
func (b *Board) SetStrokeStyle(c RGBA) *Board {
	if l := b.scene.Active(); l != nil {
		l.SetStrokeStyle(c)
	}
	return b
}

// StrokeStyle returns the active layer's stroke color.
func (b *Board) StrokeStyle() RGBA {
	if l := b.scene.Active(); l != nil {
		return l.StrokeStyle()
	}
	return Black
}

// SetLineWidth sets the active layer's stroke width and replays it.
func (b *Board) SetLineWidth(w float64) *Board {
	if l := b.scene.Active(); l != nil {
		l.SetLineWidth(w)
	}
	return b
}

// LineWidth returns the active layer's stroke width.
func (b *Board) LineWidth() float64 {
	if l := b.scene.Active(); l != nil {
		return l.LineWidth()
	}
	return 1
}

// SetTextStyle sets the active layer's default text style.
func (b *Board) SetTextStyle(ts TextStyle) *Board {
	if l := b.scene.Active(); l != nil {
		l.SetTextStyle(ts)
	}
	return b
}

// --- direct transforms ---------------------------------------------------------

// Translate sets the active layer's translation and replays it.
func (b *Board) Translate(x, y float64) *Board {
	if l := b.scene.Active(); l != nil {
		l.ApplyTransform(TransformTranslate, x, y)
	}
	return b
}

// Scale sets the active layer's scale factors and replays it.
func (b *Board) Scale(x, y float64) *Board {
	if l := b.scene.Active(); l != nil {
		l.ApplyTransform(TransformScale, x, y)
	}
	return b
}

// Rotate sets the active layer's rotation in degrees and replays it.
func (b *Board) Rotate(degrees float64) *Board {
	if l := b.scene.Active(); l != nil {
		l.ApplyTransform(TransformRotate, degrees)
	}
	return b
}

// CommitText reads the active layer's pending text capture and commits it
// as a Text shape styled with the layer's current default. Returns the
// committed string and false when no capture is open.
func (b *Board) CommitText() (string, bool) {
	if l := b.scene.Active(); l != nil {
		return l.CommitText()
	}
	return "", false
}
