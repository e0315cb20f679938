package vanity

import (
	"errors"
	"fmt"
	"strings"

	"SolTools/internal/address"
)

var ErrInvalidPattern = errors.New("invalid vanity pattern")

// Pattern is the user's matching criterion. At least one of Prefix and
// Suffix must be set; every literal character must belong to the address
// alphabet (checked against the original input, before any case folding).
type Pattern struct {
	Prefix        string
	Suffix        string
	CaseSensitive bool
}

// Match records which sides of a pattern were satisfied.
type Match struct {
	Prefix bool
	Suffix bool
}

// Validate rejects empty patterns and foreign characters before any
// search work is done.
func (p Pattern) Validate() error {
	if p.Prefix == "" && p.Suffix == "" {
		return fmt.Errorf("%w: prefix and suffix are both empty", ErrInvalidPattern)
	}
	if bad := address.InvalidChars(p.Prefix); len(bad) > 0 {
		return fmt.Errorf("%w: prefix contains %q (not in address alphabet)", ErrInvalidPattern, string(bad))
	}
	if bad := address.InvalidChars(p.Suffix); len(bad) > 0 {
		return fmt.Errorf("%w: suffix contains %q (not in address alphabet)", ErrInvalidPattern, string(bad))
	}
	return nil
}

// Len is the total literal length (prefix + suffix).
func (p Pattern) Len() int {
	return len(p.Prefix) + len(p.Suffix)
}

// BothSides reports whether the pattern requires prefix and suffix
// simultaneously.
func (p Pattern) BothSides() bool {
	return p.Prefix != "" && p.Suffix != ""
}

// Test checks an address against the pattern. When CaseSensitive is
// false both the address and the pattern are lower-cased first. The
// returned Match is meaningful only when ok is true.
func (p Pattern) Test(addr string) (m Match, ok bool) {
	check := addr
	pre := p.Prefix
	suf := p.Suffix
	if !p.CaseSensitive {
		check = strings.ToLower(check)
		pre = strings.ToLower(pre)
		suf = strings.ToLower(suf)
	}

	if pre != "" {
		if !strings.HasPrefix(check, pre) {
			return Match{}, false
		}
		m.Prefix = true
	}
	if suf != "" {
		if !strings.HasSuffix(check, suf) {
			return Match{}, false
		}
		m.Suffix = true
	}
	return m, true
}

func (m Match) String() string {
	switch {
	case m.Prefix && m.Suffix:
		return "prefix+suffix"
	case m.Prefix:
		return "prefix"
	case m.Suffix:
		return "suffix"
	default:
		return "none"
	}
}
