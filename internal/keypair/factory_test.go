package keypair

import (
	"crypto/ed25519"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"SolTools/internal/address"
)

// seqReader yields a deterministic, non-repeating byte stream.
type seqReader struct{ next byte }

func (r *seqReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		r.next++
	}
	return len(p), nil
}

// brokenReader simulates a missing CSPRNG.
type brokenReader struct{}

func (brokenReader) Read(p []byte) (int, error) {
	return 0, errors.New("entropy pool closed")
}

func TestGenerateRandomDistinct(t *testing.T) {
	f := NewFactory(&seqReader{})

	a, err := f.GenerateRandom()
	require.NoError(t, err)
	b, err := f.GenerateRandom()
	require.NoError(t, err)

	require.NotEqual(t, a.Address(), b.Address())
	require.True(t, address.IsValid(a.Address()))
	require.True(t, address.IsValid(b.Address()))
}

func TestGenerateRandomFailsLoudly(t *testing.T) {
	f := NewFactory(brokenReader{})
	_, err := f.GenerateRandom()
	require.ErrorIs(t, err, ErrInsecureRandomSource)
}

func TestFromSeedBytesDeterministic(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i * 7)
	}

	a, err := FromSeedBytes(seed)
	require.NoError(t, err)
	b, err := FromSeedBytes(seed)
	require.NoError(t, err)

	require.Equal(t, a.Public, b.Public)
	require.Equal(t, a.Secret, b.Secret)

	_, err = FromSeedBytes(seed[:31])
	require.ErrorIs(t, err, ErrInvalidKeyMaterial)
}

func TestFromSecretKeyRoundTrip(t *testing.T) {
	f := NewFactory(&seqReader{next: 42})
	kp, err := f.GenerateRandom()
	require.NoError(t, err)

	// full 64-byte export
	got, err := FromSecretKey(kp.Secret)
	require.NoError(t, err)
	require.Equal(t, kp.Public, got.Public)

	// 32-byte seed export
	got, err = FromSecretKey(kp.Secret.Seed())
	require.NoError(t, err)
	require.Equal(t, kp.Public, got.Public)

	// base58 string export
	got, err = FromSecretString(kp.SecretBase58())
	require.NoError(t, err)
	require.Equal(t, kp.Address(), got.Address())
}

func TestFromSecretKeyRejectsCorruptMaterial(t *testing.T) {
	f := NewFactory(&seqReader{next: 9})
	kp, err := f.GenerateRandom()
	require.NoError(t, err)

	// corrupt the embedded public half
	bad := make([]byte, len(kp.Secret))
	copy(bad, kp.Secret)
	bad[ed25519.SeedSize] ^= 0x01
	_, err = FromSecretKey(bad)
	require.ErrorIs(t, err, ErrInvalidKeyMaterial)

	// wrong length
	_, err = FromSecretKey(bad[:40])
	require.ErrorIs(t, err, ErrInvalidKeyMaterial)

	// not base58
	_, err = FromSecretString("not-base58-0OIl")
	require.ErrorIs(t, err, ErrInvalidKeyMaterial)
}
