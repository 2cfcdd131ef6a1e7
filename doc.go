/*
Package demicode measures how many fixed-width terminal columns text
occupies. It segments code point sequences into extended grapheme clusters
per Unicode Standard Annex #29 and assigns every cluster a cell width of 0,
1, or 2, with emoji presentation, East Asian width, and combining marks all
accounted for.

All property lookups go through an explicit [property.Database], keyed by a
Unicode version. The version selects the segmentation rule set: databases
declaring 15.1.0 or later apply the Indic conjunct rule GB9c. A compact
built-in database ships with the package; a full UCD mirror can be loaded
from disk.

# Segmentation

[Segment] partitions a code point sequence into clusters, exposed as a lazy,
restartable sequence of [Span] values:

	seg, err := demicode.SegmentString(property.Builtin(), "🇺🇸né")
	if err != nil {
		log.Fatal(err)
	}
	for seg.Next() {
		fmt.Println(seg.Span().Runes)
	}

The spans are non-empty, contiguous, and cover the input exactly once.

# Width

[Calculator.ClusterWidth] measures one cluster; [Calculator.DisplayWidth]
and [Calculator.StringWidth] segment and sum:

	calc := demicode.NewCalculator(property.Builtin())
	w, err := calc.StringWidth("中文 text")

Most characters are one cell wide. East Asian wide and fullwidth characters
take two cells, as do clusters rendered as emoji, including variation
selector and zero-width-joiner sequences. Controls, format characters, and
combining marks take none. East_Asian_Width=Ambiguous characters default to
one cell; configure [WithAmbiguousWidth] for CJK-legacy environments that
render them wide.

Segmentation and width computation are pure functions of the input and the
database version. Malformed input, i.e. surrogates or values beyond
U+10FFFF, fails the whole operation with [property.ErrInvalidCodePoint]
rather than producing partial results.
*/
package demicode
