package demicode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apparebit/demicode/property"
)

func TestClusterWidth(t *testing.T) {
	tests := []struct {
		name    string
		cluster []rune
		want    int
	}{
		{"ascii", []rune{'A'}, 1},
		{"cjk ideograph", []rune{0x4E2D}, 2},
		{"fullwidth exclamation", []rune{0xFF01}, 2},
		{"halfwidth katakana", []rune{0xFF76}, 1},
		{"flag pair", []rune{0x1F1FA, 0x1F1F8}, 2},
		{"family zwj sequence", []rune{0x1F468, 0x200D, 0x1F469, 0x200D, 0x1F467}, 2},
		{"keycap", []rune{0x0023, 0xFE0F, 0x20E3}, 2},
		{"heart with emoji selector", []rune{0x2764, 0xFE0F}, 2},
		{"question mark with text selector", []rune{0x2757, 0xFE0E}, 1},
		{"watch defaults to emoji", []rune{0x231A}, 2},
		{"umbrella defaults to text", []rune{0x2602}, 1},
		{"zero width space", []rune{0x200B}, 0},
		{"zero width joiner alone", []rune{0x200D}, 0},
		{"variation selector alone", []rune{0xFE0F}, 0},
		{"lone combining mark", []rune{0x0301}, 0},
		{"carriage return", []rune{'\r'}, 0},
		{"nul", []rune{0}, 0},
		{"soft hyphen", []rune{0x00AD}, 1},
		{"jamo filler", []rune{0x1160}, 0},
		{"trailing jamo alone", []rune{0x11A8}, 0},
		{"unassigned", []rune{0x0378}, 1},
		{"latin with combining mark", []rune{0x0065, 0x0301}, 1},
		{"ambiguous defaults narrow", []rune{0x00A7}, 1},
	}

	calc := NewCalculator(property.Builtin())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.ClusterWidth(tt.cluster)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 2)
		})
	}
}

func TestClusterWidthAmbiguousPolicy(t *testing.T) {
	wide := NewCalculator(property.Builtin(), WithAmbiguousWidth(AmbiguousWide))
	narrow := NewCalculator(property.Builtin())

	for _, cp := range []rune{0x00A7, 0x2460, 0x0410} {
		w, err := wide.ClusterWidth([]rune{cp})
		require.NoError(t, err)
		assert.Equal(t, 2, w, "U+%04X wide", cp)

		w, err = narrow.ClusterWidth([]rune{cp})
		require.NoError(t, err)
		assert.Equal(t, 1, w, "U+%04X narrow", cp)
	}

	// The policy only covers ambiguous code points.
	w, err := wide.ClusterWidth([]rune{'A'})
	require.NoError(t, err)
	assert.Equal(t, 1, w)
}

func TestClusterWidthContractViolations(t *testing.T) {
	calc := NewCalculator(property.Builtin())

	_, err := calc.ClusterWidth(nil)
	assert.ErrorIs(t, err, ErrEmptyCluster)

	_, err = calc.ClusterWidth([]rune{})
	assert.ErrorIs(t, err, ErrEmptyCluster)

	_, err = calc.ClusterWidth([]rune{0xD800})
	assert.ErrorIs(t, err, property.ErrInvalidCodePoint)
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"mixed", "abc中", 5},
		{"cjk", "中文", 4},
		{"flag in text", "go \U0001F1FA\U0001F1F8!", 6},
		{"family", "\U0001F468\u200D\U0001F469\u200D\U0001F467", 2},
		{"combining marks add nothing", "e\u0301e\u0301", 2},
		{"zero width space", "a\u200Bb", 2},
	}

	calc := NewCalculator(property.Builtin())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.StringWidth(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayWidthInvalidInput(t *testing.T) {
	calc := NewCalculator(property.Builtin())
	_, err := calc.DisplayWidth([]rune{'a', 0xDFFF, 'b'})
	assert.ErrorIs(t, err, property.ErrInvalidCodePoint)
}

// DisplayWidth must equal the sum of per-cluster widths, whatever the input.
func TestDisplayWidthMatchesClusterSum(t *testing.T) {
	inputs := []string{
		"plain text",
		"中文 with latin",
		"\U0001F468\u200D\U0001F469\u200D\U0001F467 family",
		"e\u0301 combining",
		"\r\nline two\t",
	}
	db := property.Builtin()
	calc := NewCalculator(db)
	for _, input := range inputs {
		seg, err := SegmentString(db, input)
		require.NoError(t, err)
		sum := 0
		for seg.Next() {
			w, err := calc.ClusterWidth(seg.Span().Runes)
			require.NoError(t, err)
			sum += w
		}
		total, err := calc.StringWidth(input)
		require.NoError(t, err)
		assert.Equal(t, sum, total, "%q", input)
	}
}
