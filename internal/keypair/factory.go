package keypair

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"

	"github.com/mr-tron/base58"

	"SolTools/internal/address"
)

var (
	// ErrInsecureRandomSource means the entropy reader failed; generation
	// must abort rather than fall back to a weak generator.
	ErrInsecureRandomSource = errors.New("secure random source unavailable")

	// ErrInvalidKeyMaterial means imported secret bytes have the wrong
	// length or an inconsistent internal structure.
	ErrInvalidKeyMaterial = errors.New("invalid key material")
)

// KeyPair is one ed25519 identity. Path and Index carry derivation
// provenance for HD-generated keys and stay zero for random ones.
type KeyPair struct {
	Public ed25519.PublicKey
	Secret ed25519.PrivateKey
	Path   string
	Index  int
}

// Address returns the base58 form of the public key.
func (kp KeyPair) Address() string {
	return address.Encode(kp.Public)
}

// SecretBase58 exports the full 64-byte secret key as base58.
func (kp KeyPair) SecretBase58() string {
	return base58.Encode(kp.Secret)
}

// Factory produces keypairs from an injected entropy source, so tests can
// substitute a deterministic reader without touching global state.
type Factory struct {
	entropy io.Reader
}

// NewFactory builds a factory over the given entropy reader.
// A nil reader selects the platform CSPRNG.
func NewFactory(entropy io.Reader) *Factory {
	if entropy == nil {
		entropy = rand.Reader
	}
	return &Factory{entropy: entropy}
}

// GenerateRandom draws fresh secret material from the entropy source.
func (f *Factory) GenerateRandom() (KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(f.entropy)
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: %v", ErrInsecureRandomSource, err)
	}
	return KeyPair{Public: pub, Secret: priv}, nil
}

// FromSeedBytes deterministically expands a 32-byte seed into a keypair.
// Same seed, same keypair.
func FromSeedBytes(seed []byte) (KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return KeyPair{}, fmt.Errorf("%w: seed must be %d bytes, got %d",
			ErrInvalidKeyMaterial, ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return KeyPair{Public: priv.Public().(ed25519.PublicKey), Secret: priv}, nil
}

// FromSecretKey reconstructs a keypair from exported secret bytes:
// either a 32-byte seed or a 64-byte expanded key. For the expanded form
// the embedded public half must match the one recomputed from the seed.
func FromSecretKey(b []byte) (KeyPair, error) {
	switch len(b) {
	case ed25519.SeedSize:
		return FromSeedBytes(b)
	case ed25519.PrivateKeySize:
		priv := ed25519.NewKeyFromSeed(b[:ed25519.SeedSize])
		if subtle.ConstantTimeCompare(priv[ed25519.SeedSize:], b[ed25519.SeedSize:]) != 1 {
			return KeyPair{}, fmt.Errorf("%w: public half does not match secret", ErrInvalidKeyMaterial)
		}
		return KeyPair{Public: priv.Public().(ed25519.PublicKey), Secret: priv}, nil
	default:
		return KeyPair{}, fmt.Errorf("%w: secret must be %d or %d bytes, got %d",
			ErrInvalidKeyMaterial, ed25519.SeedSize, ed25519.PrivateKeySize, len(b))
	}
}

// FromSecretString accepts a base58-encoded secret (seed or expanded key).
func FromSecretString(s string) (KeyPair, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: not base58: %v", ErrInvalidKeyMaterial, err)
	}
	return FromSecretKey(raw)
}
