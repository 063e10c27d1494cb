package text

import "golang.org/x/text/unicode/bidi"

// Direction is the resolved direction of a text run.
type Direction int

const (
	// DirectionLTR is left-to-right text.
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text.
	DirectionRTL
)

// Segment is a contiguous run of text with a single resolved direction.
// Start and End are byte offsets into the original string.
type Segment struct {
	Text      string
	Start     int
	End       int
	Direction Direction
}

// SegmentText splits s into directional runs using the Unicode
// bidirectional algorithm. Segments come back in logical order.
// Returns nil for empty input.
func SegmentText(s string) []Segment {
	if s == "" {
		return nil
	}
	runes := []rune(s)
	levels := computeBidiLevels(s, len(runes))
	return buildSegments(s, runes, levels)
}

// computeBidiLevels resolves an embedding level per rune. Runs the bidi
// algorithm and flattens its visual runs back onto logical positions.
func computeBidiLevels(s string, runeCount int) []int {
	levels := make([]int, runeCount)

	p := bidi.Paragraph{}
	_, _ = p.SetString(s, bidi.DefaultDirection(bidi.Neutral))

	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// run.Pos() returns rune indices, start and end inclusive.
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := startRune; j <= endRune && j < len(levels); j++ {
			levels[j] = level
		}
	}

	return levels
}

// buildSegments groups consecutive runes with equal levels in logical order.
func buildSegments(s string, runes []rune, levels []int) []Segment {
	if len(runes) == 0 {
		return nil
	}

	offsets := computeByteOffsets(s, runes)
	segments := make([]Segment, 0, 2)

	level := levels[0]
	start := 0
	for i := 1; i < len(runes); i++ {
		if levels[i] == level {
			continue
		}
		segments = append(segments, makeSegment(s, offsets, start, i, level))
		start = i
		level = levels[i]
	}
	segments = append(segments, makeSegment(s, offsets, start, len(runes), level))

	return segments
}

func computeByteOffsets(s string, runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	offset := 0
	for i, r := range runes {
		offsets[i] = offset
		offset += len(string(r))
	}
	offsets[len(runes)] = len(s)
	return offsets
}

func makeSegment(s string, offsets []int, startRune, endRune, level int) Segment {
	startByte := offsets[startRune]
	endByte := offsets[endRune]

	dir := DirectionLTR
	if level%2 == 1 {
		dir = DirectionRTL
	}

	return Segment{
		Text:      s[startByte:endByte],
		Start:     startByte,
		End:       endByte,
		Direction: dir,
	}
}
