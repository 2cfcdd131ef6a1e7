package property

import (
	"bufio"
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// Data file names inside a mirror directory. The mirror flattens the UCD's
// auxiliary/, extracted/, and emoji/ subdirectories into one directory per
// version, e.g. <dir>/15.1.0/GraphemeBreakProperty.txt.
const (
	fileGraphemeBreak   = "GraphemeBreakProperty.txt"
	fileEastAsianWidth  = "EastAsianWidth.txt"
	fileGeneralCategory = "DerivedGeneralCategory.txt"
	fileCoreProperties  = "DerivedCoreProperties.txt"
	fileEmojiData       = "emoji-data.txt"
)

// linePattern matches one UCD data line: a code point or range, a property
// or value name, and for multi-valued properties a second value field.
var linePattern = regexp.MustCompile(
	`^([0-9A-F]{4,6})(?:\.\.([0-9A-F]{4,6}))?\s*;\s*([\w.]+)\s*(?:;\s*(\w+))?\s*(?:#.*)?$`)

// Load parses a local UCD mirror into a property database. The mirror holds
// one directory per Unicode version containing GraphemeBreakProperty.txt,
// EastAsianWidth.txt, DerivedGeneralCategory.txt, DerivedCoreProperties.txt,
// and emoji-data.txt. Acquiring the files is the caller's concern; this
// function never touches the network.
func Load(fsys afero.Fs, dir, version string) (*Database, error) {
	b, err := NewBuilder(version)
	if err != nil {
		return nil, err
	}
	base := path.Join(dir, version)

	err = parseFile(fsys, path.Join(base, fileGraphemeBreak), func(lo, hi rune, value, _ string) {
		if v, ok := graphemeBreakValues[value]; ok {
			b.Break(lo, hi, v)
		}
	})
	if err != nil {
		return nil, err
	}

	err = parseFile(fsys, path.Join(base, fileEastAsianWidth), func(lo, hi rune, value, _ string) {
		if v, ok := eastAsianWidthValues[value]; ok && v != WidthNeutral {
			b.Width(lo, hi, v)
		}
	})
	if err != nil {
		return nil, err
	}

	err = parseFile(fsys, path.Join(base, fileGeneralCategory), func(lo, hi rune, value, _ string) {
		if v, ok := categoryValues[value]; ok {
			b.Category(lo, hi, v)
		}
	})
	if err != nil {
		return nil, err
	}

	err = parseFile(fsys, path.Join(base, fileEmojiData), func(lo, hi rune, value, _ string) {
		switch value {
		case "Extended_Pictographic":
			b.Pictographic(lo, hi)
		case "Emoji_Presentation":
			b.EmojiPresentation(lo, hi)
		}
	})
	if err != nil {
		return nil, err
	}

	// DerivedCoreProperties.txt gained the InCB property in Unicode 15.1;
	// older mirrors simply contribute no conjunct data.
	err = parseFile(fsys, path.Join(base, fileCoreProperties), func(lo, hi rune, value, subvalue string) {
		if value != "InCB" {
			return
		}
		if v, ok := conjunctBreakValues[subvalue]; ok {
			b.Conjunct(lo, hi, v)
		}
	})
	if err != nil {
		return nil, err
	}

	return b.Build()
}

// parseFile scans one UCD data file and invokes fn for every data line.
// Comment and blank lines are skipped; anything else that fails to parse is
// an error, since the file formats have been stable for two decades.
func parseFile(fsys afero.Fs, name string, fn func(lo, hi rune, value, subvalue string)) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("opening UCD file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	num := 0
	for scanner.Scan() {
		num++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := linePattern.FindStringSubmatch(line)
		if fields == nil {
			return fmt.Errorf("%s:%d: malformed UCD line %q", name, num, line)
		}
		lo, err := strconv.ParseUint(fields[1], 16, 32)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, num, err)
		}
		hi := lo
		if fields[2] != "" {
			if hi, err = strconv.ParseUint(fields[2], 16, 32); err != nil {
				return fmt.Errorf("%s:%d: %w", name, num, err)
			}
		}
		fn(rune(lo), rune(hi), fields[3], fields[4])
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

var graphemeBreakValues = map[string]GraphemeBreak{
	"Prepend":            BreakPrepend,
	"CR":                 BreakCR,
	"LF":                 BreakLF,
	"Control":            BreakControl,
	"Extend":             BreakExtend,
	"Regional_Indicator": BreakRegionalIndicator,
	"SpacingMark":        BreakSpacingMark,
	"L":                  BreakL,
	"V":                  BreakV,
	"T":                  BreakT,
	"LV":                 BreakLV,
	"LVT":                BreakLVT,
	"ZWJ":                BreakZWJ,
}

var eastAsianWidthValues = map[string]EastAsianWidth{
	"N":  WidthNeutral,
	"Na": WidthNarrow,
	"A":  WidthAmbiguous,
	"W":  WidthWide,
	"H":  WidthHalfwidth,
	"F":  WidthFullwidth,
}

// categoryValues maps only the categories width computation distinguishes;
// all other assigned categories keep the zero-table default.
var categoryValues = map[string]Category{
	"Cc": CategoryControl,
	"Cf": CategoryFormat,
	"Mn": CategoryNonspacing,
	"Me": CategoryEnclosing,
	"Mc": CategorySpacing,
	"Co": CategoryPrivateUse,
}

var conjunctBreakValues = map[string]ConjunctBreak{
	"Linker":    ConjunctLinker,
	"Consonant": ConjunctConsonant,
	"Extend":    ConjunctExtend,
}
