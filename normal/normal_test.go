package normal

import "testing"

func TestNormalizeSpace(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  a  b ", "a b"},
		{"a\tb\nc", "a b c"},
		{"already fine", "already fine"},
	}
	for _, tc := range testCases {
		if got := NormalizeSpace(tc.in); got != tc.want {
			t.Errorf("NormalizeSpace(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCorrectAuthorityIdempotent(t *testing.T) {
	testCases := []struct {
		in        string
		want      string
		corrected bool
	}{
		{"marcountry", "marccountry", true},
		{"marccountry", "marccountry", false}, // re-run is a no-op
		{"lcnaf", "naf", true},
		{"naf", "naf", false},
		{"lcsh", "lcsh", false},
		{"unknown-thing", "unknown-thing", false},
	}
	for _, tc := range testCases {
		got, corrected := CorrectAuthority(tc.in)
		if got != tc.want || corrected != tc.corrected {
			t.Errorf("CorrectAuthority(%q) = %q, %v; want %q, %v",
				tc.in, got, corrected, tc.want, tc.corrected)
		}
		// the corrected output must itself be stable
		again, changed := CorrectAuthority(got)
		if changed || again != got {
			t.Errorf("CorrectAuthority not idempotent for %q: %q -> %q", tc.in, got, again)
		}
	}
}

func TestStripTrailingPunct(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"A title /", "A title"},
		{"A title :", "A title"},
		{"No change", "No change"},
		{"Ends with period.", "Ends with period"},
		{"To be continued...", "To be continued..."},
	}
	for _, tc := range testCases {
		if got := StripTrailingPunct(tc.in); got != tc.want {
			t.Errorf("StripTrailingPunct(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPipeline(t *testing.T) {
	p := Pipeline{Normalizer: []Normalizer{
		&CollapseWSNormalizer{},
		&LowercaseNormalizer{},
		NormalizerFunc(StripTrailingPunct),
	}}
	if got := p.Normalize("  Mixed   CASE. "); got != "mixed case" {
		t.Errorf("pipeline: got %q", got)
	}
}
