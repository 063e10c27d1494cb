package sketch

// TextInput is the text-capture widget capability consumed per layer.
// The widget itself (an HTML input, a toolkit entry field, a terminal
// prompt) is owned by the host; the engine only opens it at a point,
// repositions it, and reads it back on commit.
//
// At most one capture is open per layer at any time; Open reports false
// when one is already showing.
type TextInput interface {
	// Open shows the capture widget positioned at p.
	// Returns false if a capture is already open.
	Open(p Point) bool

	// IsOpen reports whether a capture is currently showing.
	IsOpen() bool

	// Refresh redraws an open capture at its anchor point.
	// No-op when closed.
	Refresh()

	// ReadAndClose returns the entered text and the capture position,
	// then removes the widget. Returns ("", zero point, false) when no
	// capture is open.
	ReadAndClose() (string, Point, bool)
}

// TextInputFactory creates one capture widget per layer.
type TextInputFactory func() TextInput

// BufferedInput is an in-memory TextInput for tests, examples, and
// headless hosts. The host stores the typed text with SetValue before the
// engine commits it.
type BufferedInput struct {
	open  bool
	at    Point
	value string
}

// NewBufferedInput creates an empty buffered capture widget.
func NewBufferedInput() *BufferedInput {
	return &BufferedInput{}
}

// Open implements TextInput.
func (b *BufferedInput) Open(p Point) bool {
	if b.open {
		return false
	}
	b.open = true
	b.at = p
	b.value = ""
	return true
}

// IsOpen implements TextInput.
func (b *BufferedInput) IsOpen() bool { return b.open }

// Refresh implements TextInput. A buffered capture has no pixels to
// redraw, so this is a no-op.
func (b *BufferedInput) Refresh() {}

// Position returns the point the capture was opened at.
func (b *BufferedInput) Position() Point { return b.at }

// SetValue stores the text the user "typed" into the open capture.
func (b *BufferedInput) SetValue(s string) {
	if b.open {
		b.value = s
	}
}

// ReadAndClose implements TextInput.
func (b *BufferedInput) ReadAndClose() (string, Point, bool) {
	if !b.open {
		return "", Point{}, false
	}
	s, p := b.value, b.at
	b.open = false
	b.value = ""
	b.at = Point{}
	return s, p, true
}
