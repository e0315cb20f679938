package accounts

import (
	"fmt"
	"io"

	"SolTools/internal/address"
	"SolTools/internal/hd"
	"SolTools/internal/keypair"
	"SolTools/internal/mnemonic"
)

// Batch is the output of one generation request. HD batches carry the
// originating mnemonic; standard batches share no material at all.
type Batch struct {
	Keys     []keypair.KeyPair
	Mnemonic string
}

// Service is the facade the UI layer talks to.
type Service struct {
	factory *keypair.Factory
}

// NewService builds a service over the given entropy reader (nil selects
// the platform CSPRNG).
func NewService(entropy io.Reader) *Service {
	return &Service{factory: keypair.NewFactory(entropy)}
}

// GenerateStandardBatch produces count independent random keypairs.
func (s *Service) GenerateStandardBatch(count int) (*Batch, error) {
	if count < hd.MinBatch || count > hd.MaxBatch {
		return nil, fmt.Errorf("%w: %d", hd.ErrInvalidBatchSize, count)
	}
	keys := make([]keypair.KeyPair, 0, count)
	for i := 0; i < count; i++ {
		kp, err := s.factory.GenerateRandom()
		if err != nil {
			return nil, err
		}
		keys = append(keys, kp)
	}
	return &Batch{Keys: keys}, nil
}

// GenerateHDBatch creates a fresh mnemonic of wordCount words (12 or 24),
// stretches it into a seed and derives count accounts along the
// conventional hardened path. The batch is atomic.
func (s *Service) GenerateHDBatch(count, wordCount int) (*Batch, error) {
	if count < hd.MinBatch || count > hd.MaxBatch {
		return nil, fmt.Errorf("%w: %d", hd.ErrInvalidBatchSize, count)
	}
	strength, err := mnemonic.StrengthForWords(wordCount)
	if err != nil {
		return nil, err
	}
	mn, err := mnemonic.Generate(strength)
	if err != nil {
		return nil, err
	}
	seed, err := mnemonic.ToSeed(mn, "")
	if err != nil {
		return nil, err
	}
	keys, err := hd.DeriveAccounts(seed, count)
	if err != nil {
		return nil, err
	}
	return &Batch{Keys: keys, Mnemonic: mn}, nil
}

// RecoverHDBatch re-derives count accounts from an existing mnemonic and
// optional passphrase. Deterministic: same inputs, same keys.
func (s *Service) RecoverHDBatch(mn, passphrase string, count int) (*Batch, error) {
	if count < hd.MinBatch || count > hd.MaxBatch {
		return nil, fmt.Errorf("%w: %d", hd.ErrInvalidBatchSize, count)
	}
	seed, err := mnemonic.ToSeed(mn, passphrase)
	if err != nil {
		return nil, err
	}
	keys, err := hd.DeriveAccounts(seed, count)
	if err != nil {
		return nil, err
	}
	return &Batch{Keys: keys, Mnemonic: mn}, nil
}

// ImportSecret reconstructs a keypair from a base58-encoded secret
// (32-byte seed or 64-byte expanded key).
func ImportSecret(encoded string) (keypair.KeyPair, error) {
	return keypair.FromSecretString(encoded)
}

// ImportSecretBytes is the raw-bytes variant of ImportSecret.
func ImportSecretBytes(raw []byte) (keypair.KeyPair, error) {
	return keypair.FromSecretKey(raw)
}

// IsValidAddress is re-exported for form validation elsewhere in the UI.
func IsValidAddress(s string) bool {
	return address.IsValid(s)
}
