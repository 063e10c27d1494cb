package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shaper measures directional runs with go-text/typesetting's HarfBuzz
// implementation, which applies kerning pairs, ligatures, and complex
// script shaping.
//
// shaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates lightweight font.Face instances per
// call (font.Face is NOT safe for concurrent use). The HarfbuzzShaper
// instances are pooled since they are not concurrent-safe either.
type shaper struct {
	pool sync.Pool

	mu sync.RWMutex
	// fonts maps Source pointers to parsed go-text Font objects so font
	// data is not re-parsed on every measurement.
	fonts map[*Source]*font.Font
}

var defaultShaper = newShaper()

func newShaper() *shaper {
	return &shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fonts: make(map[*Source]*font.Font),
	}
}

// advance shapes one directional run and returns its pixel advance.
// Reports false when the font could not be parsed by the shaping backend;
// callers then fall back to unshaped per-glyph advances.
func (s *shaper) advance(run string, face *Face, dir Direction) (float64, bool) {
	if run == "" {
		return 0, true
	}

	goTextFont, err := s.fontFor(face.source)
	if err != nil {
		return 0, false
	}

	runes := []rune(run)
	d := di.DirectionLTR
	if dir == DirectionRTL {
		d = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: d,
		Face:      font.NewFace(goTextFont),
		Size:      fixed.Int26_6(face.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	var total fixed.Int26_6
	for _, g := range output.Glyphs {
		total += g.Advance
	}
	return fixedToFloat(total), true
}

// fontFor returns a cached go-text font.Font for the given source, parsing
// and caching it on first use. font.Font is read-only and safe to share.
func (s *shaper) fontFor(source *Source) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fonts[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fonts[source]; ok {
		return f, nil
	}

	// ParseTTF returns a *Face embedding the thread-safe *Font; cache
	// the Font, not the Face.
	goTextFace, err := font.ParseTTF(bytes.NewReader(source.data))
	if err != nil {
		return nil, err
	}

	s.fonts[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// detectScript returns the script of the first non-space rune. A single
// heuristic per run is enough because runs arrive pre-split by direction.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
