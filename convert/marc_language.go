package convert

import (
	"strings"

	"github.com/dlss-labs/cocinakit/marc"
	"github.com/dlss-labs/cocinakit/schema/cocina"
)

var iso6392bSource = cocina.Source{Code: "iso639-2b"}

// mapMarcLanguages maps the 041 language codes, falling back to 008 bytes
// 35-37 when no 041 is present.
func mapMarcLanguages(rec *marc.Record) []cocina.DescriptiveValue {
	var out []cocina.DescriptiveValue
	seen := make(map[string]bool)
	add := func(code string) {
		code = strings.TrimSpace(code)
		if code == "" || code == "und" || code == "zxx" || seen[code] {
			return
		}
		seen[code] = true
		src := iso6392bSource
		out = append(out, cocina.DescriptiveValue{Code: code, Source: &src})
	}
	for _, f := range rec.DataField("041") {
		for _, code := range f.Values("a") {
			// legacy records pack several three-letter codes into one $a
			for len(code) >= 3 {
				add(code[:3])
				code = code[3:]
			}
		}
	}
	if len(out) == 0 {
		if v, ok := rec.ControlValue("008"); ok && len(v) >= 38 {
			add(v[35:38])
		}
	}
	return out
}
