package keyvault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"

	"SolTools/internal/keypair"
)

// Scrypt cost parameters. Interactive profile: ~100ms on commodity
// hardware, far above brute-force feasibility for a real passphrase.
const (
	scryptN     = 1 << 15
	scryptR     = 8
	scryptP     = 1
	scryptDKLen = 48
)

const vaultVersion = 1

var (
	ErrWrongPassword = errors.New("wrong password or corrupted vault")
	ErrMalformedJSON = errors.New("malformed vault json")
)

type vaultJSON struct {
	Address string     `json:"address"`
	Crypto  cryptoJSON `json:"crypto"`
	MAC     string     `json:"mac"`
	Version int        `json:"version"`
}

type cryptoJSON struct {
	Cipher       string       `json:"cipher"`
	CipherText   string       `json:"ciphertext"`
	CipherParams cipherParams `json:"cipherparams"`
	KDF          string       `json:"kdf"`
	KDFParams    kdfParams    `json:"kdfparams"`
}

type cipherParams struct {
	IV string `json:"iv"`
}

type kdfParams struct {
	N     int    `json:"n"`
	R     int    `json:"r"`
	P     int    `json:"p"`
	DKLen int    `json:"dklen"`
	Salt  string `json:"salt"`
}

// EncryptKey seals a keypair's 64-byte secret under a password:
// scrypt KDF, AES-256-CTR, SHA-256 MAC over macKey||ciphertext.
func EncryptKey(kp keypair.KeyPair, password string) ([]byte, error) {
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("vault salt: %w", err)
	}
	dk, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptDKLen)
	if err != nil {
		return nil, fmt.Errorf("vault kdf: %w", err)
	}
	aesKey := dk[:32]
	macKey := dk[32:48]

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("vault iv: %w", err)
	}

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, err
	}
	ct := make([]byte, len(kp.Secret))
	cipher.NewCTR(block, iv).XORKeyStream(ct, kp.Secret)

	v := vaultJSON{
		Address: kp.Address(),
		Crypto: cryptoJSON{
			Cipher:       "aes-256-ctr",
			CipherText:   hex.EncodeToString(ct),
			CipherParams: cipherParams{IV: hex.EncodeToString(iv)},
			KDF:          "scrypt",
			KDFParams: kdfParams{
				N: scryptN, R: scryptR, P: scryptP,
				DKLen: scryptDKLen,
				Salt:  hex.EncodeToString(salt),
			},
		},
		MAC:     hex.EncodeToString(mac(macKey, ct)),
		Version: vaultVersion,
	}
	return json.Marshal(v)
}

// DecryptKey opens a vault blob and reconstructs the keypair, verifying
// the MAC before touching the ciphertext and the key structure after.
func DecryptKey(blob []byte, password string) (keypair.KeyPair, error) {
	var v vaultJSON
	if err := json.Unmarshal(blob, &v); err != nil {
		return keypair.KeyPair{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if v.Crypto.Cipher != "aes-256-ctr" || v.Crypto.KDF != "scrypt" {
		return keypair.KeyPair{}, fmt.Errorf("%w: unsupported cipher/kdf", ErrMalformedJSON)
	}

	salt, err := hex.DecodeString(v.Crypto.KDFParams.Salt)
	if err != nil {
		return keypair.KeyPair{}, fmt.Errorf("%w: salt: %v", ErrMalformedJSON, err)
	}
	iv, err := hex.DecodeString(v.Crypto.CipherParams.IV)
	if err != nil || len(iv) != aes.BlockSize {
		return keypair.KeyPair{}, fmt.Errorf("%w: iv", ErrMalformedJSON)
	}
	ct, err := hex.DecodeString(v.Crypto.CipherText)
	if err != nil {
		return keypair.KeyPair{}, fmt.Errorf("%w: ciphertext: %v", ErrMalformedJSON, err)
	}
	wantMAC, err := hex.DecodeString(v.MAC)
	if err != nil {
		return keypair.KeyPair{}, fmt.Errorf("%w: mac: %v", ErrMalformedJSON, err)
	}

	p := v.Crypto.KDFParams
	dk, err := scrypt.Key([]byte(password), salt, p.N, p.R, p.P, p.DKLen)
	if err != nil {
		return keypair.KeyPair{}, fmt.Errorf("vault kdf: %w", err)
	}
	if !hmac.Equal(mac(dk[32:48], ct), wantMAC) {
		return keypair.KeyPair{}, ErrWrongPassword
	}

	block, err := aes.NewCipher(dk[:32])
	if err != nil {
		return keypair.KeyPair{}, err
	}
	secret := make([]byte, len(ct))
	cipher.NewCTR(block, iv).XORKeyStream(secret, ct)

	kp, err := keypair.FromSecretKey(secret)
	if err != nil {
		return keypair.KeyPair{}, err
	}
	if v.Address != "" && kp.Address() != v.Address {
		return keypair.KeyPair{}, fmt.Errorf("%w: address mismatch", ErrMalformedJSON)
	}
	return kp, nil
}

func mac(key, ciphertext []byte) []byte {
	h := sha256.New()
	h.Write(key)
	h.Write(ciphertext)
	return h.Sum(nil)
}
