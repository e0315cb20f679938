package address

import (
	"errors"
	"strings"

	"github.com/mr-tron/base58"
)

// Base58 alphabet (Bitcoin/Solana style - excludes 0, O, I, l).
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// AlphabetSize is the number of distinct symbols an address may contain.
const AlphabetSize = len(Alphabet)

// PublicKeyLen is the raw public key size an address encodes.
const PublicKeyLen = 32

// Encoded length bounds for a 32-byte key. Used as a cheap pre-check
// before a full decode.
const (
	MinEncodedLen = 32
	MaxEncodedLen = 44
)

var ErrInvalidFormat = errors.New("invalid address format")

// Encode renders a 32-byte public key as its textual address.
func Encode(publicKey []byte) string {
	return base58.Encode(publicKey)
}

// Decode parses a textual address back into public key bytes.
// Fails with ErrInvalidFormat on foreign characters, out-of-range
// length, or a payload that is not exactly PublicKeyLen bytes.
func Decode(addr string) ([]byte, error) {
	if len(addr) < MinEncodedLen || len(addr) > MaxEncodedLen {
		return nil, ErrInvalidFormat
	}
	if !IsAlphabet(addr) {
		return nil, ErrInvalidFormat
	}
	raw, err := base58.Decode(addr)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	if len(raw) != PublicKeyLen {
		return nil, ErrInvalidFormat
	}
	return raw, nil
}

// IsValid reports whether addr decodes to exactly PublicKeyLen bytes.
func IsValid(addr string) bool {
	_, err := Decode(addr)
	return err == nil
}

// IsAlphabet checks that a string contains only valid address characters.
// The alphabet excludes: 0 (zero), O (uppercase o), I (uppercase i),
// l (lowercase L).
func IsAlphabet(s string) bool {
	for _, c := range s {
		if !strings.ContainsRune(Alphabet, c) {
			return false
		}
	}
	return true
}

// InvalidChars returns any characters of s outside the address alphabet.
// Useful for helpful error messages to users.
func InvalidChars(s string) []rune {
	var invalid []rune
	for _, c := range s {
		if !strings.ContainsRune(Alphabet, c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}
