package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(0))
	assert.True(t, IsValid('A'))
	assert.True(t, IsValid(0xD7FF))
	assert.True(t, IsValid(0xE000))
	assert.True(t, IsValid(MaxCodePoint))
	assert.False(t, IsValid(-1))
	assert.False(t, IsValid(0xD800))
	assert.False(t, IsValid(0xDFFF))
	assert.False(t, IsValid(MaxCodePoint+1))
}

func TestNewBuilderVersions(t *testing.T) {
	for _, version := range []string{"15.1.0", "15.1", "4.1.0", "16.0.0"} {
		_, err := NewBuilder(version)
		assert.NoError(t, err, version)
	}
	for _, version := range []string{"", "latest", "3.2.0", "4.0.1"} {
		_, err := NewBuilder(version)
		assert.ErrorIs(t, err, ErrUnsupportedVersion, version)
	}
}

func TestBuilderValidation(t *testing.T) {
	b, err := NewBuilder("15.1.0")
	require.NoError(t, err)
	_, err = b.Width(0x60, 0x40, WidthWide).Build()
	assert.ErrorContains(t, err, "inverted")

	b, err = NewBuilder("15.1.0")
	require.NoError(t, err)
	_, err = b.Break(0x40, 0x60, BreakExtend).Break(0x50, 0x70, BreakControl).Build()
	assert.ErrorContains(t, err, "overlapping")

	b, err = NewBuilder("15.1.0")
	require.NoError(t, err)
	_, err = b.Category(0xD800, 0xD900, CategoryOther).Build()
	assert.ErrorIs(t, err, ErrInvalidCodePoint)
}

func TestDatabaseLookup(t *testing.T) {
	b, err := NewBuilder("15.1.0")
	require.NoError(t, err)
	db, err := b.
		Break(0x0300, 0x036F, BreakExtend).
		Width(0x4E00, 0x9FFF, WidthWide).
		Category(0x0300, 0x036F, CategoryNonspacing).
		Pictographic(0x1F600, 0x1F64F).
		EmojiPresentation(0x1F600, 0x1F64F).
		Conjunct(0x094D, 0x094D, ConjunctLinker).
		Build()
	require.NoError(t, err)

	p, err := db.Properties(0x0301)
	require.NoError(t, err)
	assert.Equal(t, BreakExtend, p.Break)
	assert.Equal(t, CategoryNonspacing, p.Category)

	p, err = db.Properties(0x4E2D)
	require.NoError(t, err)
	assert.Equal(t, WidthWide, p.Width)
	assert.Equal(t, BreakOther, p.Break)

	p, err = db.Properties(0x1F600)
	require.NoError(t, err)
	assert.True(t, p.ExtendedPictographic)
	assert.True(t, p.EmojiPresentation)

	p, err = db.Properties(0x094D)
	require.NoError(t, err)
	assert.Equal(t, ConjunctLinker, p.Conjunct)

	// Unassigned code points resolve to defaults.
	p, err = db.Properties(0x0378)
	require.NoError(t, err)
	assert.Equal(t, Properties{}, p)
}

func TestDatabaseLookupInvalid(t *testing.T) {
	db := Builtin()
	for _, cp := range []rune{-1, 0xD800, 0xDC00, MaxCodePoint + 1} {
		_, err := db.Properties(cp)
		assert.ErrorIs(t, err, ErrInvalidCodePoint, "0x%X", cp)
	}
}

func TestConjunctVersionGate(t *testing.T) {
	old, err := NewBuilder("15.0.0")
	require.NoError(t, err)
	db, err := old.Conjunct(0x094D, 0x094D, ConjunctLinker).Build()
	require.NoError(t, err)
	assert.False(t, db.HasConjunctBreaks())

	// Conjunct data is inert below 15.1.
	p, err := db.Properties(0x094D)
	require.NoError(t, err)
	assert.Equal(t, ConjunctNone, p.Conjunct)

	assert.True(t, Builtin().HasConjunctBreaks())
}

func TestHangulSyllablesAreComputed(t *testing.T) {
	db := Builtin()

	p, err := db.Properties(0xAC00)
	require.NoError(t, err)
	assert.Equal(t, BreakLV, p.Break)

	p, err = db.Properties(0xAC01)
	require.NoError(t, err)
	assert.Equal(t, BreakLVT, p.Break)

	p, err = db.Properties(0xD7A3)
	require.NoError(t, err)
	assert.Equal(t, BreakLVT, p.Break)

	// The builder drops explicit entries for the block.
	b, err := NewBuilder("15.1.0")
	require.NoError(t, err)
	db, err = b.Break(0xAC00, 0xAC00, BreakOther).Build()
	require.NoError(t, err)
	p, err = db.Properties(0xAC00)
	require.NoError(t, err)
	assert.Equal(t, BreakLV, p.Break)
}

func TestBuiltinTables(t *testing.T) {
	db := Builtin()
	assert.Equal(t, "15.1.0", db.Version().String())

	// Every builtin table must pass the same validation Build applies.
	require.NoError(t, normalize(db.breaks))
	require.NoError(t, normalize(db.widths))
	require.NoError(t, normalize(db.cats))
	require.NoError(t, normalize(db.conjunct))
	require.NoError(t, normalize(db.pict))
	require.NoError(t, normalize(db.emoji))

	spot := []struct {
		cp   rune
		want Properties
	}{
		{'A', Properties{Width: WidthNarrow, Category: CategoryOther}},
		{0x4E2D, Properties{Width: WidthWide, Category: CategoryOther}},
		{0x200D, Properties{Break: BreakZWJ, Category: CategoryFormat, Conjunct: ConjunctExtend}},
		{0x200B, Properties{Break: BreakControl, Category: CategoryFormat}},
	}
	for _, tt := range spot {
		p, err := db.Properties(tt.cp)
		require.NoError(t, err)
		if tt.want.Category == CategoryOther {
			// Builtin stores no explicit entries for ordinary categories.
			tt.want.Category = p.Category
		}
		assert.Equal(t, tt.want, p, "U+%04X", tt.cp)
	}

	p, err := db.Properties(0x1F1FA)
	require.NoError(t, err)
	assert.Equal(t, BreakRegionalIndicator, p.Break)
	assert.True(t, p.EmojiPresentation)

	p, err = db.Properties(0xFE0F)
	require.NoError(t, err)
	assert.Equal(t, BreakExtend, p.Break)
	assert.Equal(t, CategoryNonspacing, p.Category)
}

func TestPropertyValueStrings(t *testing.T) {
	assert.Equal(t, "Regional_Indicator", BreakRegionalIndicator.String())
	assert.Equal(t, "W", WidthWide.String())
	assert.Equal(t, "Mn", CategoryNonspacing.String())
	assert.Equal(t, "Linker", ConjunctLinker.String())
}
