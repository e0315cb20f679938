package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vanity.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadVanity(t *testing.T) {
	path := writeTemp(t, `
case_sensitive: true
max_attempts: 1000
workers: 2
checkpoint_every: 500
sample_interval_ms: 250
presets:
  - name: ace
    prefix: ACE
  - name: tail
    suffix: moon
`)
	cfg, err := LoadVanity(path)
	require.NoError(t, err)
	require.True(t, cfg.CaseSensitive)
	require.Equal(t, uint64(1000), cfg.MaxAttempts)
	require.Equal(t, 2, cfg.Workers)
	require.Equal(t, 500, cfg.CheckpointEvery)
	require.Len(t, cfg.Presets, 2)
}

func TestLoadVanityRejectsBadPreset(t *testing.T) {
	// 0 is not in the address alphabet
	path := writeTemp(t, `
presets:
  - name: bad
    prefix: "0x"
`)
	_, err := LoadVanity(path)
	require.Error(t, err)

	path = writeTemp(t, `
presets:
  - name: empty
`)
	_, err = LoadVanity(path)
	require.Error(t, err)

	path = writeTemp(t, `
presets:
  - prefix: ACE
`)
	_, err = LoadVanity(path)
	require.Error(t, err)
}

func TestLoadVanityMissingFile(t *testing.T) {
	_, err := LoadVanity(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
