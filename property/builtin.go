package property

import "sync"

// Builtin returns the built-in property database. It declares Unicode 15.1.0
// and carries a compact subset of the UCD: ASCII and Latin-1, the major
// combining blocks, Devanagari and Bengali (including Indic_Conjunct_Break),
// Hangul, the CJK and halfwidth/fullwidth blocks, regional indicators, and
// the main emoji blocks. Load a full UCD mirror with [Load] when exact
// coverage of rarer scripts matters.
func Builtin() *Database {
	return builtinOnce()
}

var builtinOnce = sync.OnceValue(func() *Database {
	return &Database{
		version:  conjunctVersion,
		breaks:   builtinBreaks,
		widths:   builtinWidths,
		cats:     builtinCategories,
		conjunct: builtinConjuncts,
		pict:     builtinPictographic,
		emoji:    builtinEmojiPresentation,
	}
})

// Range tables below follow the UCD data files for Unicode 15.1.0. Each
// table is sorted by lower bound and free of overlaps; ranges are inclusive.

var builtinBreaks = []span[GraphemeBreak]{
	{0x0000, 0x0009, BreakControl},
	{0x000A, 0x000A, BreakLF},
	{0x000B, 0x000C, BreakControl},
	{0x000D, 0x000D, BreakCR},
	{0x000E, 0x001F, BreakControl},
	{0x007F, 0x009F, BreakControl},
	{0x00AD, 0x00AD, BreakControl}, // SOFT HYPHEN
	{0x0300, 0x036F, BreakExtend},  // combining diacritical marks
	{0x0483, 0x0489, BreakExtend},
	{0x0591, 0x05BD, BreakExtend}, // Hebrew points
	{0x05BF, 0x05BF, BreakExtend},
	{0x05C1, 0x05C2, BreakExtend},
	{0x05C4, 0x05C5, BreakExtend},
	{0x05C7, 0x05C7, BreakExtend},
	{0x0600, 0x0605, BreakPrepend}, // Arabic number signs
	{0x0610, 0x061A, BreakExtend},
	{0x061C, 0x061C, BreakControl}, // ARABIC LETTER MARK
	{0x064B, 0x065F, BreakExtend},
	{0x0670, 0x0670, BreakExtend},
	{0x06D6, 0x06DC, BreakExtend},
	{0x06DD, 0x06DD, BreakPrepend},
	{0x06DF, 0x06E4, BreakExtend},
	{0x06E7, 0x06E8, BreakExtend},
	{0x06EA, 0x06ED, BreakExtend},
	{0x070F, 0x070F, BreakPrepend}, // SYRIAC ABBREVIATION MARK
	{0x0711, 0x0711, BreakExtend},
	{0x0730, 0x074A, BreakExtend},
	{0x07A6, 0x07B0, BreakExtend},
	{0x07EB, 0x07F3, BreakExtend},
	{0x0900, 0x0902, BreakExtend}, // Devanagari
	{0x0903, 0x0903, BreakSpacingMark},
	{0x093A, 0x093A, BreakExtend},
	{0x093B, 0x093B, BreakSpacingMark},
	{0x093C, 0x093C, BreakExtend},
	{0x093E, 0x0940, BreakSpacingMark},
	{0x0941, 0x0948, BreakExtend},
	{0x0949, 0x094C, BreakSpacingMark},
	{0x094D, 0x094D, BreakExtend}, // DEVANAGARI SIGN VIRAMA
	{0x094E, 0x094F, BreakSpacingMark},
	{0x0951, 0x0957, BreakExtend},
	{0x0962, 0x0963, BreakExtend},
	{0x0981, 0x0981, BreakExtend}, // Bengali
	{0x0982, 0x0983, BreakSpacingMark},
	{0x09BC, 0x09BC, BreakExtend},
	{0x09BE, 0x09BE, BreakExtend},
	{0x09BF, 0x09C0, BreakSpacingMark},
	{0x09C1, 0x09C4, BreakExtend},
	{0x09C7, 0x09C8, BreakSpacingMark},
	{0x09CB, 0x09CC, BreakSpacingMark},
	{0x09CD, 0x09CD, BreakExtend}, // BENGALI SIGN VIRAMA
	{0x09D7, 0x09D7, BreakExtend},
	{0x0D4E, 0x0D4E, BreakPrepend}, // MALAYALAM LETTER DOT REPH
	{0x0E31, 0x0E31, BreakExtend},  // Thai
	{0x0E33, 0x0E33, BreakSpacingMark},
	{0x0E34, 0x0E3A, BreakExtend},
	{0x0E47, 0x0E4E, BreakExtend},
	{0x1100, 0x115F, BreakL}, // Hangul jamo
	{0x1160, 0x11A7, BreakV},
	{0x11A8, 0x11FF, BreakT},
	{0x135D, 0x135F, BreakExtend},
	{0x1AB0, 0x1ACE, BreakExtend},
	{0x1DC0, 0x1DFF, BreakExtend},
	{0x200B, 0x200B, BreakControl}, // ZERO WIDTH SPACE
	{0x200C, 0x200C, BreakExtend},  // ZERO WIDTH NON-JOINER
	{0x200D, 0x200D, BreakZWJ},
	{0x200E, 0x200F, BreakControl},
	{0x2028, 0x202E, BreakControl},
	{0x2060, 0x206F, BreakControl},
	{0x20D0, 0x20F0, BreakExtend}, // combining marks for symbols
	{0xA960, 0xA97C, BreakL},
	{0xD7B0, 0xD7C6, BreakV},
	{0xD7CB, 0xD7FB, BreakT},
	{0xFE00, 0xFE0F, BreakExtend}, // variation selectors
	{0xFE20, 0xFE2F, BreakExtend},
	{0xFEFF, 0xFEFF, BreakControl}, // ZERO WIDTH NO-BREAK SPACE
	{0xFFF9, 0xFFFB, BreakControl},
	{0x110BD, 0x110BD, BreakPrepend},
	{0x1D165, 0x1D169, BreakExtend},
	{0x1D16D, 0x1D172, BreakExtend},
	{0x1D173, 0x1D17A, BreakControl},
	{0x1D17B, 0x1D182, BreakExtend},
	{0x1F1E6, 0x1F1FF, BreakRegionalIndicator},
	{0x1F3FB, 0x1F3FF, BreakExtend}, // emoji modifiers (skin tones)
	{0xE0000, 0xE001F, BreakControl},
	{0xE0020, 0xE007F, BreakExtend}, // tag characters
	{0xE0100, 0xE01EF, BreakExtend}, // variation selectors supplement
}

var builtinWidths = []span[EastAsianWidth]{
	{0x0020, 0x007E, WidthNarrow},
	{0x00A1, 0x00A1, WidthAmbiguous},
	{0x00A4, 0x00A4, WidthAmbiguous},
	{0x00A7, 0x00A8, WidthAmbiguous},
	{0x00AA, 0x00AA, WidthAmbiguous},
	{0x00AD, 0x00AE, WidthAmbiguous},
	{0x00B0, 0x00B4, WidthAmbiguous},
	{0x00B6, 0x00BA, WidthAmbiguous},
	{0x00BC, 0x00BF, WidthAmbiguous},
	{0x0401, 0x0401, WidthAmbiguous},
	{0x0410, 0x044F, WidthAmbiguous}, // Cyrillic
	{0x0451, 0x0451, WidthAmbiguous},
	{0x1100, 0x115F, WidthWide}, // Hangul jamo L
	{0x2010, 0x2010, WidthAmbiguous},
	{0x231A, 0x231B, WidthWide},
	{0x2329, 0x232A, WidthWide},
	{0x2460, 0x24E9, WidthAmbiguous}, // enclosed alphanumerics
	{0x2614, 0x2615, WidthWide},
	{0x2648, 0x2653, WidthWide},
	{0x26A1, 0x26A1, WidthWide},
	{0x2E80, 0x303E, WidthWide}, // CJK radicals .. CJK punctuation
	{0x3041, 0x33FF, WidthWide}, // kana, hangul compat, CJK compat
	{0x3400, 0x4DBF, WidthWide},
	{0x4E00, 0x9FFF, WidthWide}, // CJK unified ideographs
	{0xA000, 0xA4CF, WidthWide}, // Yi
	{0xA960, 0xA97F, WidthWide},
	{0xAC00, 0xD7A3, WidthWide}, // Hangul syllables
	{0xF900, 0xFAFF, WidthWide},
	{0xFE10, 0xFE19, WidthWide},
	{0xFE30, 0xFE52, WidthWide},
	{0xFE54, 0xFE66, WidthWide},
	{0xFF01, 0xFF60, WidthFullwidth},
	{0xFF61, 0xFFDC, WidthHalfwidth}, // halfwidth katakana, jamo
	{0xFFE0, 0xFFE6, WidthFullwidth},
	{0xFFE8, 0xFFEE, WidthHalfwidth},
	{0x1F300, 0x1F64F, WidthWide}, // emoji blocks
	{0x1F680, 0x1F6FC, WidthWide},
	{0x1F900, 0x1F9FF, WidthWide},
	{0x1FA70, 0x1FAFF, WidthWide},
	{0x20000, 0x2FFFD, WidthWide},
	{0x30000, 0x3FFFD, WidthWide},
}

var builtinCategories = []span[Category]{
	{0x0000, 0x001F, CategoryControl},
	{0x007F, 0x009F, CategoryControl},
	{0x00AD, 0x00AD, CategoryFormat}, // SOFT HYPHEN
	{0x0300, 0x036F, CategoryNonspacing},
	{0x0483, 0x0487, CategoryNonspacing},
	{0x0488, 0x0489, CategoryEnclosing},
	{0x0591, 0x05BD, CategoryNonspacing},
	{0x05BF, 0x05BF, CategoryNonspacing},
	{0x05C1, 0x05C2, CategoryNonspacing},
	{0x05C4, 0x05C5, CategoryNonspacing},
	{0x05C7, 0x05C7, CategoryNonspacing},
	{0x0600, 0x0605, CategoryFormat},
	{0x0610, 0x061A, CategoryNonspacing},
	{0x061C, 0x061C, CategoryFormat},
	{0x064B, 0x065F, CategoryNonspacing},
	{0x0670, 0x0670, CategoryNonspacing},
	{0x06D6, 0x06DC, CategoryNonspacing},
	{0x06DD, 0x06DD, CategoryFormat},
	{0x06DF, 0x06E4, CategoryNonspacing},
	{0x06E7, 0x06E8, CategoryNonspacing},
	{0x06EA, 0x06ED, CategoryNonspacing},
	{0x070F, 0x070F, CategoryFormat},
	{0x0711, 0x0711, CategoryNonspacing},
	{0x0730, 0x074A, CategoryNonspacing},
	{0x07A6, 0x07B0, CategoryNonspacing},
	{0x07EB, 0x07F3, CategoryNonspacing},
	{0x0900, 0x0902, CategoryNonspacing},
	{0x0903, 0x0903, CategorySpacing},
	{0x093A, 0x093A, CategoryNonspacing},
	{0x093B, 0x093B, CategorySpacing},
	{0x093C, 0x093C, CategoryNonspacing},
	{0x093E, 0x0940, CategorySpacing},
	{0x0941, 0x0948, CategoryNonspacing},
	{0x0949, 0x094C, CategorySpacing},
	{0x094D, 0x094D, CategoryNonspacing},
	{0x094E, 0x094F, CategorySpacing},
	{0x0951, 0x0957, CategoryNonspacing},
	{0x0962, 0x0963, CategoryNonspacing},
	{0x0981, 0x0981, CategoryNonspacing},
	{0x0982, 0x0983, CategorySpacing},
	{0x09BC, 0x09BC, CategoryNonspacing},
	{0x09BE, 0x09C0, CategorySpacing},
	{0x09C1, 0x09C4, CategoryNonspacing},
	{0x09C7, 0x09C8, CategorySpacing},
	{0x09CB, 0x09CC, CategorySpacing},
	{0x09CD, 0x09CD, CategoryNonspacing},
	{0x09D7, 0x09D7, CategorySpacing},
	{0x0E31, 0x0E31, CategoryNonspacing},
	{0x0E34, 0x0E3A, CategoryNonspacing},
	{0x0E47, 0x0E4E, CategoryNonspacing},
	{0x135D, 0x135F, CategoryNonspacing},
	{0x1AB0, 0x1ABD, CategoryNonspacing},
	{0x1ABE, 0x1ABE, CategoryEnclosing},
	{0x1ABF, 0x1ACE, CategoryNonspacing},
	{0x1DC0, 0x1DFF, CategoryNonspacing},
	{0x200B, 0x200F, CategoryFormat}, // ZWSP, ZWNJ, ZWJ, LRM, RLM
	{0x202A, 0x202E, CategoryFormat},
	{0x2060, 0x2064, CategoryFormat},
	{0x2066, 0x206F, CategoryFormat},
	{0x20D0, 0x20DC, CategoryNonspacing},
	{0x20DD, 0x20E0, CategoryEnclosing},
	{0x20E1, 0x20E1, CategoryNonspacing},
	{0x20E2, 0x20E4, CategoryEnclosing}, // incl. COMBINING ENCLOSING KEYCAP
	{0x20E5, 0x20F0, CategoryNonspacing},
	{0xE000, 0xF8FF, CategoryPrivateUse},
	{0xFE00, 0xFE0F, CategoryNonspacing},
	{0xFE20, 0xFE2F, CategoryNonspacing},
	{0xFEFF, 0xFEFF, CategoryFormat},
	{0xFFF9, 0xFFFB, CategoryFormat},
	{0x110BD, 0x110BD, CategoryFormat},
	{0x1D165, 0x1D169, CategoryNonspacing},
	{0x1D16D, 0x1D172, CategorySpacing},
	{0x1D173, 0x1D17A, CategoryFormat},
	{0x1D17B, 0x1D182, CategoryNonspacing},
	{0xE0001, 0xE0001, CategoryFormat},
	{0xE0020, 0xE007F, CategoryFormat},
	{0xE0100, 0xE01EF, CategoryNonspacing},
	{0xF0000, 0xFFFFD, CategoryPrivateUse},
	{0x100000, 0x10FFFD, CategoryPrivateUse},
}

var builtinConjuncts = []span[ConjunctBreak]{
	{0x0300, 0x036F, ConjunctExtend},
	{0x0915, 0x0939, ConjunctConsonant}, // Devanagari consonants
	{0x093C, 0x093C, ConjunctExtend},
	{0x094D, 0x094D, ConjunctLinker}, // DEVANAGARI SIGN VIRAMA
	{0x0951, 0x0957, ConjunctExtend},
	{0x0958, 0x095F, ConjunctConsonant},
	{0x0995, 0x09A8, ConjunctConsonant}, // Bengali consonants
	{0x09AA, 0x09B0, ConjunctConsonant},
	{0x09B2, 0x09B2, ConjunctConsonant},
	{0x09B6, 0x09B9, ConjunctConsonant},
	{0x09BC, 0x09BC, ConjunctExtend},
	{0x09CD, 0x09CD, ConjunctLinker}, // BENGALI SIGN VIRAMA
	{0x200D, 0x200D, ConjunctExtend}, // ZWJ
	{0xFE00, 0xFE0F, ConjunctExtend},
}

var builtinPictographic = []span[bool]{
	{0x00A9, 0x00A9, true}, // COPYRIGHT SIGN
	{0x00AE, 0x00AE, true},
	{0x203C, 0x203C, true},
	{0x2049, 0x2049, true},
	{0x2122, 0x2122, true},
	{0x2139, 0x2139, true},
	{0x2194, 0x2199, true},
	{0x21A9, 0x21AA, true},
	{0x231A, 0x231B, true},
	{0x2328, 0x2328, true},
	{0x23CF, 0x23CF, true},
	{0x23E9, 0x23F3, true},
	{0x23F8, 0x23FA, true},
	{0x24C2, 0x24C2, true},
	{0x25AA, 0x25AB, true},
	{0x25B6, 0x25B6, true},
	{0x25C0, 0x25C0, true},
	{0x25FB, 0x25FE, true},
	{0x2600, 0x27BF, true}, // misc symbols, dingbats
	{0x2934, 0x2935, true},
	{0x2B05, 0x2B07, true},
	{0x2B1B, 0x2B1C, true},
	{0x2B50, 0x2B50, true},
	{0x2B55, 0x2B55, true},
	{0x3030, 0x3030, true},
	{0x303D, 0x303D, true},
	{0x3297, 0x3297, true},
	{0x3299, 0x3299, true},
	{0x1F000, 0x1F0FF, true}, // mahjong, dominoes, cards
	{0x1F17E, 0x1F17F, true},
	{0x1F18E, 0x1F18E, true},
	{0x1F191, 0x1F19A, true},
	{0x1F201, 0x1F20F, true},
	{0x1F21A, 0x1F21A, true},
	{0x1F22F, 0x1F22F, true},
	{0x1F232, 0x1F23A, true},
	{0x1F249, 0x1F3FA, true}, // excludes the skin tone modifiers
	{0x1F400, 0x1F53D, true},
	{0x1F546, 0x1F64F, true},
	{0x1F680, 0x1F6FF, true},
	{0x1F90C, 0x1F93A, true},
	{0x1F93C, 0x1F945, true},
	{0x1F947, 0x1FAFF, true},
}

var builtinEmojiPresentation = []span[bool]{
	{0x231A, 0x231B, true},
	{0x23E9, 0x23EC, true},
	{0x23F0, 0x23F0, true},
	{0x23F3, 0x23F3, true},
	{0x25FD, 0x25FE, true},
	{0x2614, 0x2615, true},
	{0x2648, 0x2653, true},
	{0x267F, 0x267F, true},
	{0x2693, 0x2693, true},
	{0x26A1, 0x26A1, true},
	{0x26AA, 0x26AB, true},
	{0x26BD, 0x26BE, true},
	{0x26C4, 0x26C5, true},
	{0x26CE, 0x26CE, true},
	{0x26D4, 0x26D4, true},
	{0x26EA, 0x26EA, true},
	{0x26F2, 0x26F3, true},
	{0x26F5, 0x26F5, true},
	{0x26FA, 0x26FA, true},
	{0x26FD, 0x26FD, true},
	{0x2705, 0x2705, true},
	{0x270A, 0x270B, true},
	{0x2728, 0x2728, true},
	{0x274C, 0x274C, true},
	{0x274E, 0x274E, true},
	{0x2753, 0x2755, true},
	{0x2757, 0x2757, true},
	{0x2795, 0x2797, true},
	{0x27B0, 0x27B0, true},
	{0x27BF, 0x27BF, true},
	{0x2B1B, 0x2B1C, true},
	{0x2B50, 0x2B50, true},
	{0x2B55, 0x2B55, true},
	{0x1F004, 0x1F004, true},
	{0x1F0CF, 0x1F0CF, true},
	{0x1F18E, 0x1F18E, true},
	{0x1F191, 0x1F19A, true},
	{0x1F1E6, 0x1F1FF, true}, // regional indicators
	{0x1F201, 0x1F201, true},
	{0x1F21A, 0x1F21A, true},
	{0x1F22F, 0x1F22F, true},
	{0x1F232, 0x1F236, true},
	{0x1F238, 0x1F23A, true},
	{0x1F250, 0x1F251, true},
	{0x1F300, 0x1F320, true},
	{0x1F32D, 0x1F335, true},
	{0x1F337, 0x1F37C, true},
	{0x1F37E, 0x1F393, true},
	{0x1F3A0, 0x1F3CA, true},
	{0x1F3CF, 0x1F3D3, true},
	{0x1F3E0, 0x1F3F0, true},
	{0x1F3F4, 0x1F3F4, true},
	{0x1F3F8, 0x1F43E, true},
	{0x1F440, 0x1F440, true},
	{0x1F442, 0x1F4FC, true},
	{0x1F4FF, 0x1F53D, true},
	{0x1F54B, 0x1F54E, true},
	{0x1F550, 0x1F567, true},
	{0x1F57A, 0x1F57A, true},
	{0x1F595, 0x1F596, true},
	{0x1F5A4, 0x1F5A4, true},
	{0x1F5FB, 0x1F64F, true},
	{0x1F680, 0x1F6C5, true},
	{0x1F6CC, 0x1F6CC, true},
	{0x1F6D0, 0x1F6D2, true},
	{0x1F6D5, 0x1F6D7, true},
	{0x1F6EB, 0x1F6EC, true},
	{0x1F6F4, 0x1F6FC, true},
	{0x1F7E0, 0x1F7EB, true},
	{0x1F90C, 0x1F93A, true},
	{0x1F93C, 0x1F945, true},
	{0x1F947, 0x1F9FF, true},
	{0x1FA70, 0x1FA74, true},
	{0x1FA78, 0x1FAC2, true},
	{0x1FAD0, 0x1FAD6, true},
}
