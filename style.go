package sketch

// Font describes the typeface requested for text shapes.
// Family names are resolved by the Canvas implementation; an unknown
// family falls back to the canvas default face.
type Font struct {
	Family string
	Style  string
	Size   float64
}

// DefaultFont returns the font used for text shapes until changed.
func DefaultFont() Font {
	return Font{Family: "sans-serif", Style: "normal", Size: 16}
}

// normalized returns the font with a safe, positive size.
func (f Font) normalized() Font {
	f.Size = sizeOr(f.Size, 16)
	if f.Size == 0 {
		f.Size = 16
	}
	return f
}

// TextStyle bundles the font and fill color applied to a text shape.
// The style is captured at commit time, not at capture-open time.
type TextStyle struct {
	Font  Font
	Color RGBA
}

// DefaultTextStyle returns the initial per-layer text style.
func DefaultTextStyle() TextStyle {
	return TextStyle{Font: DefaultFont(), Color: Black}
}
