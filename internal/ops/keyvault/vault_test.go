package keyvault

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"SolTools/internal/keypair"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	kp, err := keypair.NewFactory(nil).GenerateRandom()
	require.NoError(t, err)

	blob, err := EncryptKey(kp, "correct horse battery staple")
	require.NoError(t, err)

	// the blob names the address but never the secret
	var v map[string]any
	require.NoError(t, json.Unmarshal(blob, &v))
	require.Equal(t, kp.Address(), v["address"])
	require.NotContains(t, string(blob), kp.SecretBase58())

	got, err := DecryptKey(blob, "correct horse battery staple")
	require.NoError(t, err)
	require.Equal(t, kp.Address(), got.Address())
	require.Equal(t, kp.Secret, got.Secret)
}

func TestDecryptWrongPassword(t *testing.T) {
	kp, err := keypair.NewFactory(nil).GenerateRandom()
	require.NoError(t, err)

	blob, err := EncryptKey(kp, "right")
	require.NoError(t, err)

	_, err = DecryptKey(blob, "wrong")
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestDecryptMalformedBlob(t *testing.T) {
	_, err := DecryptKey([]byte("not json at all"), "pw")
	require.ErrorIs(t, err, ErrMalformedJSON)

	_, err = DecryptKey([]byte(`{"version":1,"crypto":{"cipher":"rot13","kdf":"scrypt"}}`), "pw")
	require.ErrorIs(t, err, ErrMalformedJSON)
}

func TestEncryptUniqueSaltAndIV(t *testing.T) {
	kp, err := keypair.NewFactory(nil).GenerateRandom()
	require.NoError(t, err)

	a, err := EncryptKey(kp, "pw")
	require.NoError(t, err)
	b, err := EncryptKey(kp, "pw")
	require.NoError(t, err)
	// fresh salt and IV per call
	require.NotEqual(t, a, b)
}
