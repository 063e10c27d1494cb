package sketch

import "math"

// Shape is a committed drawing object. Every variant retains enough
// parametric data to be redrawn exactly, so transforms are recomputed from
// the layer mapping on each replay instead of being baked into pixels.
//
// Shapes are immutable values once committed: edits replace the list entry
// wholesale rather than mutating in place. The variant set is closed
// (Stroke, Rect, Circle, Line, Text) and replay dispatches through the
// draw method so the switch stays exhaustive by construction.
type Shape interface {
	// draw renders the shape onto the canvas using the canvas's current
	// layer-global style and matrix.
	draw(c Canvas)

	// center returns the reference point used as a transform pivot.
	// Text needs the canvas to measure itself.
	center(c Canvas) Point
}

// Stroke is a freehand stroke: an ordered point sequence replayed as
// connected segments. Insertion order is drawing order.
type Stroke struct {
	points []Point
}

// NewStroke creates a stroke from the given points.
func NewStroke(points ...Point) Stroke {
	ps := make([]Point, len(points))
	copy(ps, points)
	return Stroke{points: ps}
}

// withPoint returns a new stroke extended by one point.
// The receiver is not modified.
func (s Stroke) withPoint(p Point) Stroke {
	ps := make([]Point, len(s.points)+1)
	copy(ps, s.points)
	ps[len(s.points)] = p
	return Stroke{points: ps}
}

// withoutLast returns a new stroke with the trailing point removed,
// plus the removed point. An empty stroke returns itself.
func (s Stroke) withoutLast() (Stroke, Point) {
	if len(s.points) == 0 {
		return s, Point{}
	}
	last := s.points[len(s.points)-1]
	return Stroke{points: s.points[:len(s.points)-1]}, last
}

// Len returns the number of recorded points.
func (s Stroke) Len() int { return len(s.points) }

// At returns the i-th recorded point.
func (s Stroke) At(i int) Point { return s.points[i] }

func (s Stroke) draw(c Canvas) {
	if len(s.points) == 0 {
		return
	}
	c.BeginPath()
	c.MoveTo(s.points[0].X, s.points[0].Y)
	for _, p := range s.points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.StrokePath()
}

func (s Stroke) center(Canvas) Point {
	return pointsCenter(s.points)
}

// Rect is an axis-aligned rectangle. Width and height are clamped to be
// non-negative at construction.
type Rect struct {
	Top, Left     float64
	Width, Height float64
}

// NewRect creates a rectangle, coercing non-finite coordinates to 0 and
// clamping negative sizes to 0.
func NewRect(top, left, width, height float64) Rect {
	return Rect{
		Top:    finiteOr(top, 0),
		Left:   finiteOr(left, 0),
		Width:  sizeOr(width, 0),
		Height: sizeOr(height, 0),
	}
}

func (r Rect) draw(c Canvas) {
	c.BeginPath()
	c.Rect(r.Left, r.Top, r.Width, r.Height)
	// Stroke first so the fill does not cover the outline.
	c.StrokePath()
	c.FillPath()
}

func (r Rect) center(Canvas) Point {
	return Pt(r.Left+r.Width/2, r.Top+r.Height/2)
}

// Circle is a circle with a non-negative radius.
type Circle struct {
	X, Y   float64
	Radius float64
}

// NewCircle creates a circle, coercing non-finite center coordinates to 0
// and clamping a negative radius to 0.
func NewCircle(x, y, radius float64) Circle {
	return Circle{
		X:      finiteOr(x, 0),
		Y:      finiteOr(y, 0),
		Radius: sizeOr(radius, 0),
	}
}

func (ci Circle) draw(c Canvas) {
	c.BeginPath()
	c.Arc(ci.X, ci.Y, ci.Radius, 0, 2*math.Pi)
	c.StrokePath()
	c.FillPath()
}

func (ci Circle) center(Canvas) Point {
	return Pt(ci.X, ci.Y)
}

// Line is a straight segment between two points.
type Line struct {
	From, To Point
}

// NewLine creates a line segment.
func NewLine(from, to Point) Line {
	return Line{From: from, To: to}
}

func (l Line) draw(c Canvas) {
	c.BeginPath()
	c.MoveTo(l.From.X, l.From.Y)
	c.LineTo(l.To.X, l.To.Y)
	c.StrokePath()
}

func (l Line) center(Canvas) Point {
	return pointsCenter([]Point{l.From, l.To})
}

// Text is a string anchored at a point with the style captured when the
// text was committed.
type Text struct {
	Content string
	At      Point
	Style   TextStyle
}

// NewText creates a text shape.
func NewText(content string, at Point, style TextStyle) Text {
	style.Font = style.Font.normalized()
	return Text{Content: content, At: at, Style: style}
}

func (t Text) draw(c Canvas) {
	// Text carries its own fill color; restore the layer fill afterward
	// so replay never leaks a style change.
	prev := c.FillColor()
	c.SetFillColor(t.Style.Color)
	c.SetFont(t.Style.Font)
	c.DrawText(t.Content, t.At.X, t.At.Y)
	c.SetFillColor(prev)
}

func (t Text) center(c Canvas) Point {
	c.SetFont(t.Style.Font)
	w, h := c.MeasureText(t.Content)
	return Pt(t.At.X+w/2, t.At.Y+h/2)
}

// pointsCenter returns the bounding-box midpoint of a point set.
func pointsCenter(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Pt((minX+maxX)/2, (minY+maxY)/2)
}
