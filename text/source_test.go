package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewSource(t *testing.T) {
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	if src.Name() == "" || src.Name() == "Unknown Font" {
		t.Errorf("Name = %q", src.Name())
	}
}

func TestNewSourceEmptyData(t *testing.T) {
	_, err := NewSource(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("err = %v, want ErrEmptyFontData", err)
	}
}

func TestNewSourceGarbageData(t *testing.T) {
	if _, err := NewSource([]byte("not a font")); err == nil {
		t.Error("NewSource accepted garbage data")
	}
}

func TestNewSourceFromFileMissing(t *testing.T) {
	if _, err := NewSourceFromFile("/nonexistent/font.ttf"); err == nil {
		t.Error("NewSourceFromFile succeeded on a missing file")
	}
}

func TestNewSourceCopiesData(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)

	src, err := NewSource(data)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}

	// Scribbling on the caller's slice must not affect the source.
	for i := range data {
		data[i] = 0
	}
	face := src.Face(16)
	if adv := face.Advance("test"); adv <= 0 {
		t.Errorf("Advance = %v after caller mutated its slice", adv)
	}
}

func TestFaceCoercesSize(t *testing.T) {
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	for _, bad := range []float64{0, -5} {
		if got := src.Face(bad).Size(); got != 12 {
			t.Errorf("Face(%v).Size() = %v, want 12", bad, got)
		}
	}
}
