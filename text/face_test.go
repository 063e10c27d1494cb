package text

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testSource(t *testing.T) *Source {
	t.Helper()
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	return src
}

func TestFaceMetrics(t *testing.T) {
	face := testSource(t).Face(16)
	m := face.Metrics()

	if m.Ascent <= 0 {
		t.Errorf("Ascent = %v", m.Ascent)
	}
	if m.Descent <= 0 {
		t.Errorf("Descent = %v", m.Descent)
	}
	if lh := m.LineHeight(); lh < m.Ascent+m.Descent {
		t.Errorf("LineHeight = %v < Ascent+Descent", lh)
	}
}

func TestFaceAdvance(t *testing.T) {
	face := testSource(t).Face(16)

	if got := face.Advance(""); got != 0 {
		t.Errorf("Advance(\"\") = %v", got)
	}

	short := face.Advance("Hi")
	long := face.Advance("Hi there")
	if short <= 0 {
		t.Errorf("Advance(\"Hi\") = %v", short)
	}
	if long <= short {
		t.Errorf("Advance(long) = %v, Advance(short) = %v", long, short)
	}
}

func TestFaceAdvanceScalesWithSize(t *testing.T) {
	src := testSource(t)
	small := src.Face(10).Advance("Hello")
	big := src.Face(20).Advance("Hello")
	if big <= small {
		t.Errorf("advance at 20px (%v) not larger than at 10px (%v)", big, small)
	}
}

// Shaped advance applies kerning, so "AV" must not measure wider than the
// two glyphs summed independently.
func TestFaceAdvanceKerning(t *testing.T) {
	face := testSource(t).Face(32)
	pair := face.Advance("AV")
	summed := face.Advance("A") + face.Advance("V")
	if pair > summed {
		t.Errorf("Advance(\"AV\") = %v > %v (no kerning applied)", pair, summed)
	}
}

func TestFaceMeasure(t *testing.T) {
	face := testSource(t).Face(16)
	w, h := face.Measure("Hello")
	if w <= 0 || h <= 0 {
		t.Errorf("Measure = %v, %v", w, h)
	}
	if w0, h0 := face.Measure(""); w0 != 0 || h0 != 0 {
		t.Errorf("Measure(\"\") = %v, %v", w0, h0)
	}
}

func TestFaceDraw(t *testing.T) {
	face := testSource(t).Face(16)
	dst := image.NewRGBA(image.Rect(0, 0, 80, 30))

	face.Draw(dst, "Hi", 4, 20, color.Black)

	painted := false
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			painted = true
			break
		}
	}
	if !painted {
		t.Error("Draw painted no pixels")
	}
}

func TestFaceDrawEmptyString(t *testing.T) {
	face := testSource(t).Face(16)
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	face.Draw(dst, "", 0, 0, color.Black)
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			t.Fatal("Draw(\"\") painted pixels")
		}
	}
}
