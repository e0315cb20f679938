package logx

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// maskingCore wraps a core and redacts sensitive structured fields and
// masks secret-looking patterns in Entry.Message. Intended for console
// output only.
type maskingCore struct {
	zapcore.Core
	sensitive    map[string]struct{} // lowercased keys to redact
	maskPattern  *regexp.Regexp      // pattern to mask in messages
	replaceValue string
}

func (m *maskingCore) cloneFieldsWithRedaction(fields []zapcore.Field) []zapcore.Field {
	if len(fields) == 0 {
		return fields
	}
	out := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		key := strings.ToLower(f.Key)
		if _, ok := m.sensitive[key]; ok {
			out = append(out, zap.String(f.Key, m.replaceValue))
			continue
		}
		out = append(out, f)
	}
	return out
}

func (m *maskingCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	// mask message text
	if m.maskPattern != nil && entry.Message != "" {
		entry.Message = m.maskPattern.ReplaceAllString(entry.Message, m.replaceValue)
	}
	// redact fields
	fields = m.cloneFieldsWithRedaction(fields)
	return m.Core.Write(entry, fields)
}

func defaultSensitiveKeys() map[string]struct{} {
	keys := []string{
		"secret", "secret_key", "secretkey",
		"priv", "private", "private_key",
		"mnemonic", "seed", "passphrase", "password",
		"raw", "raw_key", "raw_secret", "key",
	}
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[strings.ToLower(k)] = struct{}{}
	}
	return m
}

func defaultMaskPattern() *regexp.Regexp {
	// match a base58 run of exported-secret length (64 raw bytes encode
	// to 86-88 characters); addresses (43-44 chars) stay visible
	pattern := `[1-9A-HJ-NP-Za-km-z]{80,90}`
	return regexp.MustCompile(pattern)
}
