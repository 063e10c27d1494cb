package sketch

// Option configures a Board during creation.
// Use functional options to customize Board behavior.
//
// Example:
//
//	// Default in-memory rendering
//	b := sketch.New(800, 600)
//
//	// Custom canvas backend (dependency injection)
//	b := sketch.New(800, 600, sketch.WithCanvasFactory(myFactory))
type Option func(*boardOptions)

// boardOptions holds optional configuration for Board creation.
type boardOptions struct {
	canvasFactory CanvasFactory
	inputFactory  TextInputFactory
	callbacks     Callbacks
}

// defaultBoardOptions returns the default board options: in-memory image
// canvases and buffered text capture.
func defaultBoardOptions() boardOptions {
	return boardOptions{
		canvasFactory: func(width, height int) Canvas {
			return NewImageCanvas(width, height)
		},
		inputFactory: func() TextInput {
			return NewBufferedInput()
		},
	}
}

// WithCanvasFactory sets the factory used to allocate one canvas per layer.
// Use this to render onto a host-provided surface instead of the built-in
// in-memory image backend.
//
// Example:
//
//	b := sketch.New(800, 600, sketch.WithCanvasFactory(func(w, h int) sketch.Canvas {
//	    return myapp.NewGLCanvas(w, h)
//	}))
func WithCanvasFactory(f CanvasFactory) Option {
	return func(o *boardOptions) {
		if f != nil {
			o.canvasFactory = f
		}
	}
}

// WithTextInput sets the factory used to allocate one text-capture widget
// per layer. Pass a factory returning nil to disable text capture entirely;
// text-mode pointer events then become no-ops.
func WithTextInput(f TextInputFactory) Option {
	return func(o *boardOptions) {
		o.inputFactory = f
	}
}

// WithCallbacks installs lifecycle handlers at construction. Nil fields are
// filled with no-ops; handlers can also be swapped later with Board.On.
func WithCallbacks(c Callbacks) Option {
	return func(o *boardOptions) {
		o.callbacks = c
	}
}
