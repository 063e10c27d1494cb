package text

import (
	"image"
	"image/color"
	"image/draw"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Metrics describes the vertical metrics of a face, in pixels.
type Metrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// LineHeight returns the recommended baseline-to-baseline distance.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Face is a Source bound to a size. Faces are cheap values sharing the
// parsed font of their Source.
type Face struct {
	source *Source
	size   float64
}

// Size returns the face size in pixels.
func (f *Face) Size() float64 { return f.size }

// Source returns the font source this face was created from.
func (f *Face) Source() *Source { return f.source }

// Metrics returns the vertical metrics at the face size.
func (f *Face) Metrics() Metrics {
	var buf sfnt.Buffer
	m, err := f.source.font.Metrics(&buf, fixed.Int26_6(f.size*64), xfont.HintingFull)
	if err != nil {
		return Metrics{}
	}
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	gap := fixedToFloat(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return Metrics{Ascent: ascent, Descent: descent, LineGap: gap}
}

// Advance returns the horizontal advance of s in pixels.
// The string is split into bidirectional runs and each run is shaped with
// HarfBuzz, so kerning and right-to-left scripts are accounted for. When
// shaping fails the per-glyph advances are summed instead.
func (f *Face) Advance(s string) float64 {
	if s == "" {
		return 0
	}
	var total float64
	for _, seg := range SegmentText(s) {
		adv, ok := defaultShaper.advance(seg.Text, f, seg.Direction)
		if !ok {
			adv = f.rawAdvance(seg.Text)
		}
		total += adv
	}
	return total
}

// Measure returns the dimensions of s: the shaped advance and the face's
// line height.
func (f *Face) Measure(s string) (width, height float64) {
	if s == "" {
		return 0, 0
	}
	return f.Advance(s), f.Metrics().LineHeight()
}

// rawAdvance sums per-glyph advances without shaping.
func (f *Face) rawAdvance(s string) float64 {
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(f.size * 64)
	var total float64
	for _, r := range s {
		gi, err := f.source.font.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		adv, err := f.source.font.GlyphAdvance(&buf, gi, ppem, xfont.HintingFull)
		if err != nil {
			continue
		}
		total += fixedToFloat(adv)
	}
	return total
}

// Draw renders s onto dst with the baseline origin at (x, y).
func (f *Face) Draw(dst draw.Image, s string, x, y float64, col color.Color) {
	if s == "" {
		return
	}

	otFace, err := opentype.NewFace(f.source.font, &opentype.FaceOptions{
		Size:    f.size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return
	}
	defer func() {
		_ = otFace.Close()
	}()

	d := &xfont.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: otFace,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(s)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
