package sketch

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"sort"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sketch/text"
)

// ImageCanvas is the built-in software Canvas backed by an image.RGBA.
// It is the default backend used when a Board is constructed without a
// canvas factory, and doubles as the reference implementation for hosts
// writing their own backends.
//
// Paths are flattened to device-space polylines as they are built: every
// vertex passes through the current matrix at entry, matching how replay
// re-maps committed shapes. Strokes are rasterized by stamping round
// brush tips along each segment; fills use even-odd scanline coverage.
type ImageCanvas struct {
	width, height int
	img           *image.RGBA

	matrix    Matrix
	stroke    RGBA
	fill      RGBA
	lineWidth float64
	font      Font
	visible   bool

	// subpaths holds the current path as device-space polylines.
	subpaths [][]Point
	hasStart bool

	fonts map[string]*text.Source
}

// compile-time interface checks
var (
	_ Canvas           = (*ImageCanvas)(nil)
	_ VisibilityCanvas = (*ImageCanvas)(nil)
)

// NewImageCanvas creates a transparent software canvas of the given size.
// Negative dimensions coerce to zero.
func NewImageCanvas(width, height int) *ImageCanvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &ImageCanvas{
		width:     width,
		height:    height,
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		matrix:    Identity(),
		stroke:    Black,
		fill:      Transparent,
		lineWidth: 1,
		font:      DefaultFont(),
		visible:   true,
		fonts:     make(map[string]*text.Source),
	}
}

// Width implements Canvas.
func (c *ImageCanvas) Width() int { return c.width }

// Height implements Canvas.
func (c *ImageCanvas) Height() int { return c.height }

// Image returns the backing image. The engine draws into it in place, so
// hosts can composite it directly each frame.
func (c *ImageCanvas) Image() *image.RGBA { return c.img }

// SetVisible implements VisibilityCanvas. The flag is advisory for the
// compositing host; drawing into a hidden canvas still mutates pixels.
func (c *ImageCanvas) SetVisible(visible bool) { c.visible = visible }

// Visible reports the advisory visibility flag.
func (c *ImageCanvas) Visible() bool { return c.visible }

// RegisterFont makes a font source available to DrawText and MeasureText
// under the given family name. Without a registered source the canvas
// falls back to the built-in bitmap face.
func (c *ImageCanvas) RegisterFont(family string, src *text.Source) {
	if src == nil {
		delete(c.fonts, family)
		return
	}
	c.fonts[family] = src
}

// Clear implements Canvas.
func (c *ImageCanvas) Clear() {
	pix := c.img.Pix
	for i := range pix {
		pix[i] = 0
	}
}

// --- path construction ----------------------------------------------------

// BeginPath implements Canvas.
func (c *ImageCanvas) BeginPath() {
	c.subpaths = nil
	c.hasStart = false
}

// MoveTo implements Canvas.
func (c *ImageCanvas) MoveTo(x, y float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	c.subpaths = append(c.subpaths, []Point{p})
	c.hasStart = true
}

// LineTo implements Canvas.
func (c *ImageCanvas) LineTo(x, y float64) {
	if !c.hasStart {
		c.MoveTo(x, y)
		return
	}
	p := c.matrix.TransformPoint(Pt(x, y))
	n := len(c.subpaths)
	c.subpaths[n-1] = append(c.subpaths[n-1], p)
}

// Rect implements Canvas.
func (c *ImageCanvas) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// Arc implements Canvas. The arc is flattened into short line segments in
// user space so the current matrix shapes it like any other geometry.
func (c *ImageCanvas) Arc(x, y, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	const maxStep = math.Pi / 32
	segments := int(math.Ceil((angle2 - angle1) / maxStep))
	if segments < 1 {
		segments = 1
	}
	step := (angle2 - angle1) / float64(segments)

	sx := x + r*math.Cos(angle1)
	sy := y + r*math.Sin(angle1)
	if c.hasStart {
		c.LineTo(sx, sy)
	} else {
		c.MoveTo(sx, sy)
	}
	for i := 1; i <= segments; i++ {
		a := angle1 + float64(i)*step
		c.LineTo(x+r*math.Cos(a), y+r*math.Sin(a))
	}
}

// ClosePath implements Canvas.
func (c *ImageCanvas) ClosePath() {
	n := len(c.subpaths)
	if n == 0 || len(c.subpaths[n-1]) == 0 {
		return
	}
	sp := c.subpaths[n-1]
	c.subpaths[n-1] = append(sp, sp[0])
	c.hasStart = false
}

// --- rasterization ---------------------------------------------------------

// StrokePath implements Canvas. Each segment is rendered by stepping a
// round brush tip of lineWidth diameter along it; a one-point subpath
// stamps a single dot.
func (c *ImageCanvas) StrokePath() {
	if c.stroke.A <= 0 {
		return
	}
	radius := c.lineWidth / 2
	for _, sp := range c.subpaths {
		if len(sp) == 1 {
			c.stampDot(sp[0], radius)
			continue
		}
		for i := 1; i < len(sp); i++ {
			c.stampSegment(sp[i-1], sp[i], radius)
		}
	}
}

// stampSegment stamps brush tips from a to b at half-pixel spacing.
func (c *ImageCanvas) stampSegment(a, b Point, radius float64) {
	length := Dist(a, b)
	steps := int(math.Ceil(length * 2))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.stampDot(a.Lerp(b, t), radius)
	}
}

// stampDot fills pixels whose centers fall within radius of p.
// The radius floor is the half-pixel diagonal so hairlines never skip
// pixels the path passes through.
func (c *ImageCanvas) stampDot(p Point, radius float64) {
	if radius < math.Sqrt2/2 {
		radius = math.Sqrt2 / 2
	}
	minX := int(math.Floor(p.X - radius))
	maxX := int(math.Ceil(p.X + radius))
	minY := int(math.Floor(p.Y - radius))
	maxY := int(math.Ceil(p.Y + radius))

	rr := radius * radius
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - p.X
			dy := float64(y) + 0.5 - p.Y
			if dx*dx+dy*dy <= rr {
				c.blend(x, y, c.stroke)
			}
		}
	}
}

// FillPath implements Canvas. Coverage uses the even-odd rule over all
// subpaths; open subpaths are treated as implicitly closed.
func (c *ImageCanvas) FillPath() {
	if c.fill.A <= 0 {
		return
	}

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, sp := range c.subpaths {
		for _, p := range sp {
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if minY > maxY {
		return
	}

	y0 := int(math.Floor(minY))
	y1 := int(math.Ceil(maxY))
	if y0 < 0 {
		y0 = 0
	}
	if y1 >= c.height {
		y1 = c.height - 1
	}

	var xs []float64
	for y := y0; y <= y1; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for _, sp := range c.subpaths {
			xs = appendCrossings(xs, sp, yc)
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			c.fillSpan(y, xs[i], xs[i+1])
		}
	}
}

// appendCrossings collects x coordinates where the implicitly closed
// polygon sp crosses the horizontal line at yc.
func appendCrossings(xs []float64, sp []Point, yc float64) []float64 {
	if len(sp) < 2 {
		return xs
	}
	for i := 0; i < len(sp); i++ {
		a := sp[i]
		b := sp[(i+1)%len(sp)]
		if (a.Y <= yc) == (b.Y <= yc) {
			continue
		}
		x := a.X + (yc-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		xs = append(xs, x)
	}
	return xs
}

// fillSpan fills pixels on row y whose centers lie in [x0, x1].
func (c *ImageCanvas) fillSpan(y int, x0, x1 float64) {
	start := int(math.Ceil(x0 - 0.5))
	end := int(math.Floor(x1 - 0.5))
	if start < 0 {
		start = 0
	}
	if end >= c.width {
		end = c.width - 1
	}
	for x := start; x <= end; x++ {
		c.blend(x, y, c.fill)
	}
}

// blend writes col at (x, y) with source-over compositing.
func (c *ImageCanvas) blend(x, y int, col RGBA) {
	if !(image.Pt(x, y).In(c.img.Rect)) || col.A <= 0 {
		return
	}
	if col.A >= 1 {
		c.img.SetRGBA(x, y, color.RGBA{
			R: uint8(clamp255(col.R * 255)),
			G: uint8(clamp255(col.G * 255)),
			B: uint8(clamp255(col.B * 255)),
			A: 255,
		})
		return
	}
	d := c.img.RGBAAt(x, y)
	a := col.A
	c.img.SetRGBA(x, y, color.RGBA{
		R: uint8(clamp255(col.R*a*255 + float64(d.R)*(1-a))),
		G: uint8(clamp255(col.G*a*255 + float64(d.G)*(1-a))),
		B: uint8(clamp255(col.B*a*255 + float64(d.B)*(1-a))),
		A: uint8(clamp255(a*255 + float64(d.A)*(1-a))),
	})
}

// --- text -------------------------------------------------------------------

// DrawText implements Canvas. Text renders in the fill color with its
// baseline origin mapped through the current matrix. Glyphs themselves are
// not sheared or rotated; only the origin moves.
func (c *ImageCanvas) DrawText(s string, x, y float64) {
	if s == "" || c.fill.A <= 0 {
		return
	}
	p := c.matrix.TransformPoint(Pt(x, y))

	if src, ok := c.fonts[c.font.Family]; ok {
		src.Face(c.font.Size).Draw(c.img, s, p.X, p.Y, c.fill.Color())
		return
	}

	d := &xfont.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.fill.Color()),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)},
	}
	d.DrawString(s)
}

// MeasureText implements Canvas.
func (c *ImageCanvas) MeasureText(s string) (w, h float64) {
	if s == "" {
		return 0, 0
	}
	if src, ok := c.fonts[c.font.Family]; ok {
		return src.Face(c.font.Size).Measure(s)
	}
	adv := xfont.MeasureString(basicfont.Face7x13, s)
	return float64(adv) / 64, float64(basicfont.Face7x13.Metrics().Height) / 64
}

// --- style state -------------------------------------------------------------

// SetStrokeColor implements Canvas.
func (c *ImageCanvas) SetStrokeColor(col RGBA) { c.stroke = col }

// StrokeColor implements Canvas.
func (c *ImageCanvas) StrokeColor() RGBA { return c.stroke }

// SetFillColor implements Canvas.
func (c *ImageCanvas) SetFillColor(col RGBA) { c.fill = col }

// FillColor implements Canvas.
func (c *ImageCanvas) FillColor() RGBA { return c.fill }

// SetLineWidth implements Canvas.
func (c *ImageCanvas) SetLineWidth(w float64) { c.lineWidth = sizeOr(w, 1) }

// LineWidth implements Canvas.
func (c *ImageCanvas) LineWidth() float64 { return c.lineWidth }

// SetFont implements Canvas.
func (c *ImageCanvas) SetFont(f Font) { c.font = f.normalized() }

// SetMatrix implements Canvas.
func (c *ImageCanvas) SetMatrix(m Matrix) { c.matrix = m }

// Matrix returns the current coordinate mapping.
func (c *ImageCanvas) Matrix() Matrix { return c.matrix }

// --- pixel buffer -------------------------------------------------------------

// Snapshot implements Canvas.
func (c *ImageCanvas) Snapshot() []byte {
	buf := make([]byte, len(c.img.Pix))
	copy(buf, c.img.Pix)
	return buf
}

// Restore implements Canvas. Snapshots of the wrong length are ignored.
func (c *ImageCanvas) Restore(snapshot []byte) {
	if len(snapshot) != len(c.img.Pix) {
		return
	}
	copy(c.img.Pix, snapshot)
}

// --- output -------------------------------------------------------------------

// EncodePNG writes the canvas pixels as PNG to the given writer.
func (c *ImageCanvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("sketch: failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the canvas pixels to a PNG file.
func (c *ImageCanvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sketch: failed to create file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return c.EncodePNG(f)
}
