package demicode

import (
	"errors"
	"fmt"

	"github.com/apparebit/demicode/property"
)

// ErrEmptyCluster marks a width request for a zero-length cluster. That is a
// contract violation by the caller, not a property of some input text, so it
// is never silently mapped to width zero.
var ErrEmptyCluster = errors.New("empty grapheme cluster")

// AmbiguousWidth is the policy for East_Asian_Width=Ambiguous code points.
// The Unicode standard leaves their rendered width to context: most modern
// terminals draw them narrow, while CJK-legacy environments draw them wide.
type AmbiguousWidth int

const (
	AmbiguousNarrow AmbiguousWidth = iota
	AmbiguousWide
)

// An Option configures a Calculator.
type Option func(*Calculator)

// WithAmbiguousWidth selects the policy for ambiguous-width code points.
// The default is AmbiguousNarrow.
func WithAmbiguousWidth(w AmbiguousWidth) Option {
	return func(c *Calculator) { c.ambiguous = w }
}

// Calculator assigns fixed-width terminal cell counts to grapheme clusters.
// It is stateless apart from its configuration and safe for concurrent use.
type Calculator struct {
	db        *property.Database
	ambiguous AmbiguousWidth
}

// NewCalculator returns a width calculator over the given property database.
func NewCalculator(db *property.Database, opts ...Option) *Calculator {
	c := &Calculator{db: db}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

const (
	softHyphen    rune = 0x00AD
	textSelector  rune = 0xFE0E // variation selector-15
	emojiSelector rune = 0xFE0F // variation selector-16
)

// ClusterWidth returns the number of terminal cells the given grapheme
// cluster occupies, always 0, 1, or 2. The cluster must be non-empty and
// consist of valid code points.
//
// The base (first) code point decides the width through its General_Category
// and East_Asian_Width, except that emoji presentation, determined by
// scanning the whole cluster, forces two cells.
func (c *Calculator) ClusterWidth(cluster []rune) (int, error) {
	if len(cluster) == 0 {
		return 0, ErrEmptyCluster
	}
	props := make([]property.Properties, len(cluster))
	for i, cp := range cluster {
		p, err := c.db.Properties(cp)
		if err != nil {
			return 0, fmt.Errorf("cluster offset %d: %w", i, err)
		}
		props[i] = p
	}

	if emojiPresentation(cluster, props) {
		return 2, nil
	}
	if zeroWidth(cluster[0], props[0].Category) {
		return 0, nil
	}
	switch props[0].Width {
	case property.WidthWide, property.WidthFullwidth:
		return 2, nil
	case property.WidthAmbiguous:
		if c.ambiguous == AmbiguousWide {
			return 2, nil
		}
		return 1, nil
	default:
		return 1, nil
	}
}

// emojiPresentation reports whether the cluster renders as a square emoji
// glyph, which always occupies two cells regardless of the base code
// point's East Asian width. A variation selector following the base settles
// the question outright; otherwise an emoji-capable base plus any code
// point defaulting to emoji presentation decides.
func emojiPresentation(cluster []rune, props []property.Properties) bool {
	base := props[0]
	capable := base.ExtendedPictographic || base.EmojiPresentation
	wide := capable && base.EmojiPresentation
	for i := 1; i < len(cluster); i++ {
		switch cluster[i] {
		case emojiSelector:
			return true
		case textSelector:
			return false
		}
		if capable && props[i].EmojiPresentation {
			wide = true
		}
	}
	return wide
}

// zeroWidth reports whether a cluster led by this code point occupies no
// cell of its own: controls, format characters other than the soft hyphen,
// nonspacing and enclosing marks, NUL, and the conjoining Hangul jamo
// vowels and trailers, which render inside the preceding syllable's cells.
func zeroWidth(cp rune, cat property.Category) bool {
	if cp == 0 {
		return true
	}
	if cp >= 0x1160 && cp <= 0x11FF {
		return true
	}
	switch cat {
	case property.CategoryControl, property.CategoryNonspacing, property.CategoryEnclosing:
		return true
	case property.CategoryFormat:
		return cp != softHyphen
	}
	return false
}

// DisplayWidth segments the code point sequence and sums the cell widths of
// its clusters. This is the typical entry point for rendering layers that
// need the total column count of a line of text.
func (c *Calculator) DisplayWidth(cps []rune) (int, error) {
	seg, err := Segment(c.db, cps)
	if err != nil {
		return 0, err
	}
	total := 0
	for seg.Next() {
		w, err := c.ClusterWidth(seg.Span().Runes)
		if err != nil {
			return 0, err
		}
		total += w
	}
	return total, nil
}

// StringWidth is DisplayWidth for strings.
func (c *Calculator) StringWidth(s string) (int, error) {
	return c.DisplayWidth([]rune(s))
}
