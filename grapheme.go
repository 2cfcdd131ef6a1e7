package demicode

import (
	"fmt"

	"github.com/apparebit/demicode/property"
)

// Span is one extended grapheme cluster within a segmented code point
// sequence: the rune offsets of its half-open range plus the code points
// themselves, which alias the segmenter's input.
type Span struct {
	Start int
	End   int
	Runes []rune
}

// Segmenter produces the grapheme clusters of one code point sequence, in
// order, as a lazy sequence of spans. Concatenating the spans reproduces the
// input exactly. A Segmenter is restartable via [Segmenter.Reset] and
// repeated iteration yields identical spans; independent Segmenters may be
// used concurrently.
type Segmenter struct {
	input    []rune
	props    []property.Properties
	conjunct bool
	pos      int
	span     Span
}

// Segment validates the code point sequence against the database and returns
// a segmenter over it. The whole input is checked up front: if any element
// is a surrogate or out of range, Segment fails with
// [property.ErrInvalidCodePoint] and no partial result is produced. An empty
// input is valid and yields zero spans.
//
// The database's declared Unicode version selects the rule set: databases
// for 15.1.0 and later apply the Indic conjunct rule GB9c.
func Segment(db *property.Database, cps []rune) (*Segmenter, error) {
	props := make([]property.Properties, len(cps))
	for i, cp := range cps {
		p, err := db.Properties(cp)
		if err != nil {
			return nil, fmt.Errorf("segmenting offset %d: %w", i, err)
		}
		props[i] = p
	}
	return &Segmenter{input: cps, props: props, conjunct: db.HasConjunctBreaks()}, nil
}

// SegmentString segments a string. Invalid UTF-8 bytes decode to U+FFFD
// before segmentation, per the usual Go string conversion.
func SegmentString(db *property.Database, s string) (*Segmenter, error) {
	return Segment(db, []rune(s))
}

// Next advances to the next grapheme cluster. It returns false once the
// input is exhausted.
func (s *Segmenter) Next() bool {
	if s.pos >= len(s.input) {
		s.span = Span{}
		return false
	}
	start := s.pos

	// The first code point of a cluster seeds the parser state; the
	// boundary before it is already decided.
	state, _ := transition(gsAny, s.props[start], s.conjunct)
	end := start + 1
	for ; end < len(s.input); end++ {
		next, breakBefore := transition(state, s.props[end], s.conjunct)
		if breakBefore {
			break
		}
		state = next
	}

	s.span = Span{Start: start, End: end, Runes: s.input[start:end]}
	s.pos = end
	return true
}

// Span returns the cluster found by the last successful call to Next.
func (s *Segmenter) Span() Span {
	return s.span
}

// Reset rewinds the segmenter so iteration starts over from the first
// cluster. No revalidation happens; the spans come out identical.
func (s *Segmenter) Reset() {
	s.pos = 0
	s.span = Span{}
}
