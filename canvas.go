package sketch

// Canvas is the rendering-surface capability consumed by each layer.
//
// A Canvas represents one addressable pixel surface. Implementations may
// rasterize in software, draw through a windowing toolkit, or proxy to a
// remote surface; the engine only ever touches pixels through this
// interface.
//
// Path construction follows the usual immediate-mode shape: BeginPath
// starts a fresh path, MoveTo/LineTo/Rect/Arc extend it, and StrokePath/
// FillPath render it. StrokePath and FillPath do NOT clear the path, so a
// closed shape can be stroked and then filled from the same outline.
// All path coordinates are mapped through the matrix set by SetMatrix.
//
// Canvases are not safe for concurrent use. The engine confines all
// mutation of a layer's canvas to the single logical owner of that layer.
type Canvas interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear resets every pixel of the surface to transparent.
	Clear()

	// BeginPath discards the current path and starts a new one.
	BeginPath()

	// MoveTo starts a new subpath at the given point.
	MoveTo(x, y float64)

	// LineTo adds a line segment to the current subpath.
	LineTo(x, y float64)

	// Rect adds a closed rectangular subpath.
	Rect(x, y, w, h float64)

	// Arc adds a circular arc subpath around (x, y) with radius r,
	// from angle1 to angle2 in radians.
	Arc(x, y, r, angle1, angle2 float64)

	// ClosePath closes the current subpath.
	ClosePath()

	// StrokePath strokes the current path with the stroke color and
	// line width. The path is preserved.
	StrokePath()

	// FillPath fills the current path with the fill color.
	// The path is preserved.
	FillPath()

	// DrawText renders s with the current font and fill color, with its
	// baseline origin at (x, y), mapped through the current matrix.
	DrawText(s string, x, y float64)

	// MeasureText returns the advance width and line height of s under
	// the current font.
	MeasureText(s string) (w, h float64)

	// SetStrokeColor sets the color used by StrokePath.
	SetStrokeColor(c RGBA)

	// StrokeColor returns the current stroke color.
	StrokeColor() RGBA

	// SetFillColor sets the color used by FillPath and DrawText.
	SetFillColor(c RGBA)

	// FillColor returns the current fill color.
	FillColor() RGBA

	// SetLineWidth sets the stroke width in pixels.
	SetLineWidth(w float64)

	// LineWidth returns the current stroke width.
	LineWidth() float64

	// SetFont selects the face used by DrawText and MeasureText.
	SetFont(f Font)

	// SetMatrix replaces the affine mapping applied to subsequent
	// path and text coordinates.
	SetMatrix(m Matrix)

	// Snapshot returns a copy of the raw pixel buffer.
	Snapshot() []byte

	// Restore overwrites the pixel buffer with a prior Snapshot.
	// Snapshots from a different canvas or size are ignored.
	Restore(snapshot []byte)
}

// VisibilityCanvas is an optional interface for canvases that control
// their own on-screen visibility. The scene toggles it when present;
// otherwise visibility is tracked by the layer alone and compositing is
// the host's concern.
type VisibilityCanvas interface {
	Canvas

	// SetVisible shows or hides the surface.
	SetVisible(visible bool)
}

// CanvasFactory creates one canvas per layer.
// The factory is called each time a layer is added to the scene.
type CanvasFactory func(width, height int) Canvas
