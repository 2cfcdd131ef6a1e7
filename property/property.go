package property

// GraphemeBreak is a code point's Grapheme_Cluster_Break value as defined by
// UAX #29. The zero value is Other, which also covers unassigned code points.
type GraphemeBreak uint8

const (
	BreakOther GraphemeBreak = iota
	BreakPrepend
	BreakCR
	BreakLF
	BreakControl
	BreakExtend
	BreakRegionalIndicator
	BreakSpacingMark
	BreakL   // Hangul leading consonant
	BreakV   // Hangul vowel
	BreakT   // Hangul trailing consonant
	BreakLV  // Hangul LV syllable
	BreakLVT // Hangul LVT syllable
	BreakZWJ
)

var graphemeBreakNames = [...]string{
	"Other", "Prepend", "CR", "LF", "Control", "Extend", "Regional_Indicator",
	"SpacingMark", "L", "V", "T", "LV", "LVT", "ZWJ",
}

func (b GraphemeBreak) String() string {
	if int(b) < len(graphemeBreakNames) {
		return graphemeBreakNames[b]
	}
	return "Other"
}

// EastAsianWidth is a code point's East_Asian_Width value as defined by
// UAX #11. The zero value is Neutral.
type EastAsianWidth uint8

const (
	WidthNeutral EastAsianWidth = iota
	WidthNarrow
	WidthAmbiguous
	WidthWide
	WidthHalfwidth
	WidthFullwidth
)

var eastAsianWidthNames = [...]string{"N", "Na", "A", "W", "H", "F"}

func (w EastAsianWidth) String() string {
	if int(w) < len(eastAsianWidthNames) {
		return eastAsianWidthNames[w]
	}
	return "N"
}

// Category is the subset of General_Category values that width computation
// distinguishes. All remaining categories collapse into CategoryOther; the
// zero value is CategoryUnassigned (Cn).
type Category uint8

const (
	CategoryUnassigned Category = iota // Cn
	CategoryControl                    // Cc
	CategoryFormat                     // Cf
	CategoryNonspacing                 // Mn
	CategoryEnclosing                  // Me
	CategorySpacing                    // Mc
	CategorySurrogate                  // Cs
	CategoryPrivateUse                 // Co
	CategoryOther                      // everything else
)

var categoryNames = [...]string{"Cn", "Cc", "Cf", "Mn", "Me", "Mc", "Cs", "Co", "??"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "??"
}

// ConjunctBreak is a code point's Indic_Conjunct_Break value, used by
// grapheme rule GB9c for Unicode 15.1 and later. The zero value is None.
type ConjunctBreak uint8

const (
	ConjunctNone ConjunctBreak = iota
	ConjunctLinker
	ConjunctConsonant
	ConjunctExtend
)

var conjunctBreakNames = [...]string{"None", "Linker", "Consonant", "Extend"}

func (c ConjunctBreak) String() string {
	if int(c) < len(conjunctBreakNames) {
		return conjunctBreakNames[c]
	}
	return "None"
}

// Properties bundles the per-code-point property values the segmenter and
// width calculator consume. A zero Properties value describes an unassigned,
// non-pictographic code point, which is the correct default.
type Properties struct {
	Break                GraphemeBreak
	Width                EastAsianWidth
	Category             Category
	Conjunct             ConjunctBreak
	ExtendedPictographic bool
	EmojiPresentation    bool
}
