package mnemonic

import (
	"errors"
	"fmt"

	bip39 "github.com/tyler-smith/go-bip39"
)

// Supported entropy strengths. 128 bits yields 12 words, 256 bits 24.
const (
	Strength12 = 128
	Strength24 = 256
)

// SeedLen is the byte length of a stretched BIP-39 seed.
const SeedLen = 64

var (
	ErrInvalidStrength = errors.New("strength must be 128 or 256 bits")
	ErrInvalidMnemonic = errors.New("mnemonic failed checksum validation")
)

// StrengthForWords maps a word count (12 or 24) to entropy bits.
func StrengthForWords(words int) (int, error) {
	switch words {
	case 12:
		return Strength12, nil
	case 24:
		return Strength24, nil
	default:
		return 0, fmt.Errorf("%w: %d words", ErrInvalidStrength, words)
	}
}

// Generate produces a fresh mnemonic of the given strength.
// Entropy comes from the platform CSPRNG inside bip39.NewEntropy.
func Generate(strength int) (string, error) {
	if strength != Strength12 && strength != Strength24 {
		return "", fmt.Errorf("%w: %d", ErrInvalidStrength, strength)
	}
	entropy, err := bip39.NewEntropy(strength)
	if err != nil {
		return "", fmt.Errorf("mnemonic entropy: %w", err)
	}
	return bip39.NewMnemonic(entropy)
}

// Validate checks wordlist membership and the checksum.
func Validate(m string) bool {
	return bip39.IsMnemonicValid(m)
}

// ToSeed stretches a validated mnemonic (plus optional passphrase) into a
// 64-byte binary seed. Deterministic for identical inputs.
func ToSeed(m, passphrase string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(m, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return seed, nil
}
