package address

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		pub, _, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		addr := Encode(pub)
		require.GreaterOrEqual(t, len(addr), MinEncodedLen)
		require.LessOrEqual(t, len(addr), MaxEncodedLen)
		require.True(t, IsAlphabet(addr))

		raw, err := Decode(addr)
		require.NoError(t, err)
		require.Equal(t, []byte(pub), raw)
		require.True(t, IsValid(addr))
	}
}

func TestDecodeRejectsForeignCharacters(t *testing.T) {
	for _, addr := range []string{
		"0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl",  // excluded glyphs
		"4vJ9JU1bJJE96FWSJKvHsmmFADCg4gp!22", // punctuation
	} {
		_, err := Decode(addr)
		require.ErrorIs(t, err, ErrInvalidFormat, addr)
		require.False(t, IsValid(addr))
	}
}

func TestDecodeRejectsWrongPayloadLength(t *testing.T) {
	// 31 and 33 bytes of 0xff encode inside the visible-length window
	// but must fail the exact-length check.
	for _, n := range []int{31, 33} {
		addr := Encode(bytes.Repeat([]byte{0xff}, n))
		if len(addr) >= MinEncodedLen && len(addr) <= MaxEncodedLen {
			_, err := Decode(addr)
			require.ErrorIs(t, err, ErrInvalidFormat)
		}
		require.False(t, IsValid(addr))
	}
}

func TestDecodeLengthPrecheck(t *testing.T) {
	require.False(t, IsValid("abc"))
	long := make([]byte, MaxEncodedLen+1)
	for i := range long {
		long[i] = '1'
	}
	require.False(t, IsValid(string(long)))
}

func TestInvalidChars(t *testing.T) {
	require.Empty(t, InvalidChars("So1123"))
	require.Equal(t, []rune{'0', 'l'}, InvalidChars("S0l"))
}
