// Package normal provides string normalization used across the mappers,
// plus the authority code correction table.
package normal

import (
	"strings"
	"unicode"
)

type Pipeline struct {
	Normalizer []Normalizer
}

func (p *Pipeline) Normalize(s string) string {
	for _, n := range p.Normalizer {
		s = n.Normalize(s)
	}
	return s
}

type Normalizer interface {
	Normalize(string) string
}

// NormalizerFunc adapts a plain function to the Normalizer interface.
type NormalizerFunc func(string) string

func (f NormalizerFunc) Normalize(s string) string {
	return f(s)
}

type LowercaseNormalizer struct{}

func (s *LowercaseNormalizer) Normalize(v string) string {
	return strings.ToLower(v)
}

type CollapseWSNormalizer struct{}

func (s *CollapseWSNormalizer) Normalize(v string) string {
	return NormalizeSpace(v)
}

// NormalizeSpace trims the string and collapses internal whitespace runs to
// a single space.
func NormalizeSpace(s string) string {
	var (
		b    strings.Builder
		inWS bool
	)
	for _, c := range strings.TrimSpace(s) {
		if unicode.IsSpace(c) {
			inWS = true
			continue
		}
		if inWS {
			b.WriteRune(' ')
			inWS = false
		}
		b.WriteRune(c)
	}
	return b.String()
}

// authorityCorrections maps known-bad authority codes seen in legacy data to
// their intended codes. The table is deliberately small: only codes with a
// single deterministic correction belong here.
var authorityCorrections = map[string]string{
	"marcountry": "marccountry",
	"lcnaf":      "naf",
	"lcshac":     "lcsh",
	"marcgt.":    "marcgt",
	"iso6392b":   "iso639-2b",
}

// CorrectAuthority returns the corrected authority code and whether a
// correction was applied. Running it on already-correct input is a no-op.
func CorrectAuthority(code string) (string, bool) {
	fixed, ok := authorityCorrections[code]
	if !ok || fixed == code {
		return code, false
	}
	return fixed, true
}

// KnownAuthority reports whether the code is one of the authority codes the
// mappers treat as valid without correction.
func KnownAuthority(code string) bool {
	switch code {
	case "lcsh", "naf", "fast", "local", "marccountry", "marcgt",
		"marcrelator", "iso639-2b", "rdacontent", "rdamedia", "rdacarrier",
		"aat", "tgm", "gmgpc":
		return true
	}
	return false
}

// StripTrailingPunct removes ISBD-style trailing punctuation ( ./:;, ) and
// surrounding whitespace from a subfield value. A trailing ellipsis is kept.
func StripTrailingPunct(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "...") {
		return s
	}
	s = strings.TrimRight(s, " /:;,.")
	return strings.TrimSpace(s)
}
