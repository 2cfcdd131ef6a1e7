// Package property models the Unicode Character Database as an explicit,
// versioned, read-only handle. The grapheme segmenter and width calculator
// in the root package consume property values exclusively through a
// [Database], so several Unicode versions can coexist in one process and
// tests can substitute minimal fixture tables.
package property

import (
	"errors"
	"fmt"
	"sort"

	"github.com/blang/semver/v4"
)

// Error kinds surfaced by property lookups and database construction.
var (
	// ErrInvalidCodePoint marks lookups for surrogates or values outside
	// [0, 0x10FFFF].
	ErrInvalidCodePoint = errors.New("invalid code point")

	// ErrUnsupportedVersion marks Unicode versions this package cannot
	// honor, either malformed or predating UCD 4.1.0.
	ErrUnsupportedVersion = errors.New("unsupported Unicode version")
)

// MaxCodePoint is the largest valid Unicode code point.
const MaxCodePoint rune = 0x10FFFF

const (
	surrogateMin rune = 0xD800
	surrogateMax rune = 0xDFFF
)

// IsValid reports whether cp is a Unicode scalar value, i.e. lies in
// [0, 0x10FFFF] and is not a surrogate.
func IsValid(cp rune) bool {
	return 0 <= cp && cp <= MaxCodePoint && (cp < surrogateMin || cp > surrogateMax)
}

// firstSupported is the oldest UCD release with stable file formats for all
// properties this package reads.
var firstSupported = semver.Version{Major: 4, Minor: 1, Patch: 0}

// conjunctVersion is the release that introduced Indic_Conjunct_Break and
// grapheme rule GB9c.
var conjunctVersion = semver.Version{Major: 15, Minor: 1, Patch: 0}

// parseVersion parses a Unicode version string such as "15.1.0" or "15.1".
func parseVersion(version string) (semver.Version, error) {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return semver.Version{}, fmt.Errorf("%w: %q: %v", ErrUnsupportedVersion, version, err)
	}
	if v.LT(firstSupported) {
		return semver.Version{}, fmt.Errorf("%w: %s predates %s", ErrUnsupportedVersion, v, firstSupported)
	}
	return v, nil
}

// span assigns one property value to an inclusive code point range.
type span[T any] struct {
	lo, hi rune
	value  T
}

// search runs a binary search over a sorted span table. It returns the zero
// value if no span covers cp, which doubles as the property default.
func search[T any](table []span[T], cp rune) (value T) {
	from, to := 0, len(table)
	for to > from {
		middle := (from + to) / 2
		entry := table[middle]
		if cp < entry.lo {
			to = middle
			continue
		}
		if cp > entry.hi {
			from = middle + 1
			continue
		}
		return entry.value
	}
	return
}

// Database is a read-only mapping from code points to the Unicode properties
// required for grapheme segmentation and width computation, for one declared
// Unicode version. A Database is immutable after construction and therefore
// safe for concurrent readers.
type Database struct {
	version  semver.Version
	breaks   []span[GraphemeBreak]
	widths   []span[EastAsianWidth]
	cats     []span[Category]
	conjunct []span[ConjunctBreak]
	pict     []span[bool]
	emoji    []span[bool]
}

// Version returns the Unicode version the database declares.
func (d *Database) Version() semver.Version {
	return d.version
}

// HasConjunctBreaks reports whether the database's version carries the
// Indic_Conjunct_Break property, i.e. whether grapheme rule GB9c applies.
func (d *Database) HasConjunctBreaks() bool {
	return d.version.GE(conjunctVersion)
}

// Properties returns all property values for the given code point. Lookups
// are total for valid code points; unassigned code points resolve to the
// documented defaults (Grapheme_Cluster_Break Other, East_Asian_Width
// Neutral, General_Category Cn, no emoji properties). Surrogates and values
// outside [0, 0x10FFFF] fail with [ErrInvalidCodePoint].
func (d *Database) Properties(cp rune) (Properties, error) {
	if !IsValid(cp) {
		return Properties{}, fmt.Errorf("%w: 0x%X", ErrInvalidCodePoint, cp)
	}
	p := Properties{
		Break:                d.graphemeBreak(cp),
		Width:                search(d.widths, cp),
		Category:             search(d.cats, cp),
		ExtendedPictographic: search(d.pict, cp),
		EmojiPresentation:    search(d.emoji, cp),
	}
	if d.HasConjunctBreaks() {
		p.Conjunct = search(d.conjunct, cp)
	}
	return p, nil
}

// Hangul syllable composition per the Unicode core spec, chapter 3.12.
const (
	hangulBase   rune = 0xAC00
	hangulLast   rune = 0xD7A3
	hangulTCount      = 28
)

func (d *Database) graphemeBreak(cp rune) GraphemeBreak {
	// Precomposed Hangul syllables decompose arithmetically, so LV versus
	// LVT is computed rather than stored.
	if cp >= hangulBase && cp <= hangulLast {
		if (cp-hangulBase)%hangulTCount == 0 {
			return BreakLV
		}
		return BreakLVT
	}
	return search(d.breaks, cp)
}

// Builder assembles a Database. It exists so tests and the UCD file loader
// can populate tables incrementally; the resulting Database is immutable.
type Builder struct {
	db Database
}

// NewBuilder returns a builder for the given Unicode version. The version
// decides which grapheme rule set segmentation applies.
func NewBuilder(version string) (*Builder, error) {
	v, err := parseVersion(version)
	if err != nil {
		return nil, err
	}
	return &Builder{db: Database{version: v}}, nil
}

// Break assigns a Grapheme_Cluster_Break value to the inclusive range
// [lo, hi]. Ranges inside the precomposed Hangul block are ignored because
// LV/LVT is always computed.
func (b *Builder) Break(lo, hi rune, v GraphemeBreak) *Builder {
	if lo >= hangulBase && hi <= hangulLast {
		return b
	}
	b.db.breaks = append(b.db.breaks, span[GraphemeBreak]{lo, hi, v})
	return b
}

// Width assigns an East_Asian_Width value to the inclusive range [lo, hi].
func (b *Builder) Width(lo, hi rune, v EastAsianWidth) *Builder {
	b.db.widths = append(b.db.widths, span[EastAsianWidth]{lo, hi, v})
	return b
}

// Category assigns a General_Category value to the inclusive range [lo, hi].
func (b *Builder) Category(lo, hi rune, v Category) *Builder {
	b.db.cats = append(b.db.cats, span[Category]{lo, hi, v})
	return b
}

// Conjunct assigns an Indic_Conjunct_Break value to the inclusive range
// [lo, hi]. The value is only consulted for Unicode 15.1 and later.
func (b *Builder) Conjunct(lo, hi rune, v ConjunctBreak) *Builder {
	b.db.conjunct = append(b.db.conjunct, span[ConjunctBreak]{lo, hi, v})
	return b
}

// Pictographic marks the inclusive range [lo, hi] as Extended_Pictographic.
func (b *Builder) Pictographic(lo, hi rune) *Builder {
	b.db.pict = append(b.db.pict, span[bool]{lo, hi, true})
	return b
}

// EmojiPresentation marks the inclusive range [lo, hi] as defaulting to
// emoji presentation.
func (b *Builder) EmojiPresentation(lo, hi rune) *Builder {
	b.db.emoji = append(b.db.emoji, span[bool]{lo, hi, true})
	return b
}

// Build validates and freezes the accumulated tables. It fails if any range
// is inverted, covers invalid code points, or overlaps another range in the
// same table.
func (b *Builder) Build() (*Database, error) {
	if err := normalize(b.db.breaks); err != nil {
		return nil, fmt.Errorf("Grapheme_Cluster_Break: %w", err)
	}
	if err := normalize(b.db.widths); err != nil {
		return nil, fmt.Errorf("East_Asian_Width: %w", err)
	}
	if err := normalize(b.db.cats); err != nil {
		return nil, fmt.Errorf("General_Category: %w", err)
	}
	if err := normalize(b.db.conjunct); err != nil {
		return nil, fmt.Errorf("Indic_Conjunct_Break: %w", err)
	}
	if err := normalize(b.db.pict); err != nil {
		return nil, fmt.Errorf("Extended_Pictographic: %w", err)
	}
	if err := normalize(b.db.emoji); err != nil {
		return nil, fmt.Errorf("Emoji_Presentation: %w", err)
	}
	db := b.db
	return &db, nil
}

// normalize sorts a span table by lower bound and rejects malformed or
// overlapping ranges.
func normalize[T any](table []span[T]) error {
	for _, s := range table {
		if s.lo > s.hi {
			return fmt.Errorf("inverted range 0x%X..0x%X", s.lo, s.hi)
		}
		if !IsValid(s.lo) || !IsValid(s.hi) {
			return fmt.Errorf("%w: range 0x%X..0x%X", ErrInvalidCodePoint, s.lo, s.hi)
		}
	}
	sort.Slice(table, func(i, j int) bool { return table[i].lo < table[j].lo })
	for i := 1; i < len(table); i++ {
		if table[i].lo <= table[i-1].hi {
			return fmt.Errorf("overlapping ranges at 0x%X", table[i].lo)
		}
	}
	return nil
}
