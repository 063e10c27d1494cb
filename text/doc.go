// Package text loads fonts and measures and renders strings for the
// sketch canvas backends.
//
// A Source is a parsed font file; Face values derived from it carry a
// size. Measurement goes through HarfBuzz shaping (go-text/typesetting)
// per bidirectional run, so kerning pairs and right-to-left scripts
// measure correctly. Rendering uses golang.org/x/image/font rasterization.
package text
