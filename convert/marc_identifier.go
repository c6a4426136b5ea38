package convert

import (
	"strings"

	"github.com/dlss-labs/cocinakit/marc"
	"github.com/dlss-labs/cocinakit/schema/cocina"
)

// marc024Types decodes the 024 first indicator. ind1="7" defers to $2.
var marc024Types = map[string]string{
	"0": "isrc",
	"1": "upc",
	"2": "ismn",
	"3": "ean",
	"4": "sici",
}

// mapMarcIdentifiers maps the standard number fields. Cancelled or invalid
// numbers carry status "invalid" rather than being dropped.
func mapMarcIdentifiers(rec *marc.Record) []cocina.DescriptiveValue {
	var out []cocina.DescriptiveValue
	add := func(value, typeCode, status string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		v := cocina.DescriptiveValue{Value: value, Status: status}
		if display, ok := identifierTypes[typeCode]; ok {
			v.Type = display
			v.Source = &cocina.Source{Code: typeCode}
		} else if typeCode != "" {
			v.Type = typeCode
		}
		out = append(out, v)
	}
	for _, f := range rec.DataField("010") {
		add(f.Value("a"), "lccn", "")
		for _, z := range f.Values("z") {
			add(z, "lccn", "invalid")
		}
	}
	for _, f := range rec.DataField("020") {
		add(f.Value("a"), "isbn", "")
		for _, z := range f.Values("z") {
			add(z, "isbn", "invalid")
		}
	}
	for _, f := range rec.DataField("022") {
		add(f.Value("a"), "issn", "")
		for _, y := range f.Values("y") {
			add(y, "issn", "invalid")
		}
		for _, z := range f.Values("z") {
			add(z, "issn", "invalid")
		}
	}
	for _, f := range rec.DataField("024") {
		typeCode := marc024Types[f.Indicator1]
		if f.Indicator1 == "7" {
			typeCode = f.Value("2")
		}
		add(f.Value("a"), typeCode, "")
		for _, z := range f.Values("z") {
			add(z, typeCode, "invalid")
		}
	}
	for _, f := range rec.DataField("035") {
		a := f.Value("a")
		if rest, ok := strings.CutPrefix(a, "(OCoLC)"); ok {
			add(rest, "oclc", "")
			continue
		}
		add(a, "", "")
	}
	return out
}
