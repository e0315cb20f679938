package hd

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"

	"SolTools/internal/keypair"
)

// Fixed path components for m/44'/501'/account'/0'. Only the account
// index varies across a batch; every level is hardened (ed25519 has no
// non-hardened child derivation).
const (
	Purpose  uint32 = 44
	CoinType uint32 = 501
	Change   uint32 = 0

	hardened uint32 = 0x80000000
)

// Batch size bounds shared with the standard generator.
const (
	MinBatch = 1
	MaxBatch = 100
)

var ErrInvalidBatchSize = errors.New("batch size must be between 1 and 100")

// Path locates one account in the derivation tree.
type Path struct {
	Purpose  uint32
	CoinType uint32
	Account  uint32
	Change   uint32
}

// PathForAccount returns the conventional path for account index i.
func PathForAccount(i uint32) Path {
	return Path{Purpose: Purpose, CoinType: CoinType, Account: i, Change: Change}
}

// String renders the path in the usual notation, e.g. m/44'/501'/3'/0'.
func (p Path) String() string {
	return fmt.Sprintf("m/%d'/%d'/%d'/%d'", p.Purpose, p.CoinType, p.Account, p.Change)
}

// components returns the hardened index sequence, root first.
func (p Path) components() []uint32 {
	return []uint32{
		p.Purpose + hardened,
		p.CoinType + hardened,
		p.Account + hardened,
		p.Change + hardened,
	}
}

// masterKey derives the SLIP-0010 ed25519 master key and chain code.
func masterKey(seed []byte) (key, chain []byte) {
	mac := hmac.New(sha512.New, []byte("ed25519 seed"))
	mac.Write(seed)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// childKey derives one hardened child from (key, chain).
func childKey(key, chain []byte, index uint32) (ck, cc []byte) {
	data := make([]byte, 37)
	data[0] = 0x00
	copy(data[1:33], key)
	binary.BigEndian.PutUint32(data[33:], index)

	mac := hmac.New(sha512.New, chain)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// DeriveSeed walks the path from a BIP-39 seed down to a 32-byte child
// seed suitable for keypair.FromSeedBytes.
func DeriveSeed(seed []byte, p Path) ([]byte, error) {
	if len(seed) == 0 {
		return nil, errors.New("empty seed")
	}
	key, chain := masterKey(seed)
	for _, index := range p.components() {
		key, chain = childKey(key, chain, index)
	}
	return key, nil
}

// DeriveAccounts produces count keypairs for account indices 0..count-1.
// The batch is atomic: any derivation failure discards all of it.
// Re-running with the same seed yields byte-identical keys at every index.
func DeriveAccounts(seed []byte, count int) ([]keypair.KeyPair, error) {
	if count < MinBatch || count > MaxBatch {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBatchSize, count)
	}
	out := make([]keypair.KeyPair, 0, count)
	for i := 0; i < count; i++ {
		path := PathForAccount(uint32(i))
		child, err := DeriveSeed(seed, path)
		if err != nil {
			return nil, fmt.Errorf("derive %s: %w", path, err)
		}
		kp, err := keypair.FromSeedBytes(child)
		if err != nil {
			return nil, fmt.Errorf("expand %s: %w", path, err)
		}
		kp.Path = path.String()
		kp.Index = i
		out = append(out, kp)
	}
	return out, nil
}
