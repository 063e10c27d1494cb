// Package sketch provides a layered 2D drawing engine for Go.
//
// # Overview
//
// sketch turns pointer gestures into a persistent, replayable drawing. A
// Board owns a stack of layers; each layer records the shapes committed to
// it as parametric data, not pixels, so the whole layer can be restyled or
// transformed after the fact and redrawn from its model.
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	// Create a board with one layer
//	b := sketch.New(512, 512)
//
//	// Drag out a red rectangle
//	b.SetMode("figure").SetFigure("rectangle").SetFillStyle(sketch.Red)
//	b.PointerDown(100, 100)
//	b.PointerMove(200, 180)
//	b.PointerUp(200, 180)
//
//	// Rotate the whole layer around its first shape
//	b.Rotate(45)
//
//	// Save the active layer to PNG
//	b.ActiveLayer().Canvas().(*sketch.ImageCanvas).SavePNG("output.png")
//
// # Modes
//
// The board is a mode machine. Pointer events mean different things
// depending on the current mode:
//   - "hand": freehand strokes, drawn incrementally
//   - "figure": rectangle/circle/line with live preview while dragging
//   - "text": place a text capture widget, committed later
//   - "transform": drag translate/scale/rotate deltas for the layer
//   - "tool": recognized but currently inert
//
// # Backends
//
// Layers render through the Canvas interface. The built-in ImageCanvas
// rasterizes in software onto an image.RGBA; hosts targeting a GUI
// toolkit or a browser surface provide their own Canvas via
// WithCanvasFactory.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians at the Canvas layer; the public Rotate API
//     takes degrees
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
