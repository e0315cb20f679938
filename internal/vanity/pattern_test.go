package vanity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPatternValidate(t *testing.T) {
	require.NoError(t, Pattern{Prefix: "AB"}.Validate())
	require.NoError(t, Pattern{Suffix: "99"}.Validate())
	require.NoError(t, Pattern{Prefix: "So1", Suffix: "xyz"}.Validate())

	// empty on both sides
	require.ErrorIs(t, Pattern{}.Validate(), ErrInvalidPattern)

	// characters outside the address alphabet
	require.ErrorIs(t, Pattern{Prefix: "0x"}.Validate(), ErrInvalidPattern)
	require.ErrorIs(t, Pattern{Suffix: "Ol"}.Validate(), ErrInvalidPattern)
	require.ErrorIs(t, Pattern{Prefix: "a b"}.Validate(), ErrInvalidPattern)
}

func TestPatternTestPrefix(t *testing.T) {
	p := Pattern{Prefix: "AB", CaseSensitive: true}

	m, ok := p.Test("ABxyzxyzxyz")
	require.True(t, ok)
	require.True(t, m.Prefix)
	require.False(t, m.Suffix)

	_, ok = p.Test("abxyzxyzxyz")
	require.False(t, ok)
}

func TestPatternTestCaseInsensitive(t *testing.T) {
	p := Pattern{Prefix: "ab", CaseSensitive: false}

	m, ok := p.Test("ABxyzxyzxyz")
	require.True(t, ok)
	require.True(t, m.Prefix)

	// upper-cased pattern against lower-cased address
	p = Pattern{Prefix: "AB", CaseSensitive: false}
	_, ok = p.Test("abxyzxyzxyz")
	require.True(t, ok)
}

func TestPatternTestBothSides(t *testing.T) {
	p := Pattern{Prefix: "AB", Suffix: "99", CaseSensitive: true}

	_, ok := p.Test("ABmiddle88")
	require.False(t, ok)

	m, ok := p.Test("ABmiddle99")
	require.True(t, ok)
	require.True(t, m.Prefix)
	require.True(t, m.Suffix)
	require.Equal(t, "prefix+suffix", m.String())
}

func TestPatternTestSuffixOnly(t *testing.T) {
	p := Pattern{Suffix: "moon", CaseSensitive: true}

	m, ok := p.Test("xyzmoon")
	require.True(t, ok)
	require.False(t, m.Prefix)
	require.True(t, m.Suffix)
	require.Equal(t, "suffix", m.String())

	_, ok = p.Test("xyzMoon")
	require.False(t, ok)
}

func TestMatchString(t *testing.T) {
	require.Equal(t, "prefix", Match{Prefix: true}.String())
	require.Equal(t, "none", Match{}.String())
}
