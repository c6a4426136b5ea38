package convert

import (
	"strconv"
	"strings"

	"github.com/dlss-labs/cocinakit/marc"
	"github.com/dlss-labs/cocinakit/normal"
	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
)

// marcTitleTags maps title field tags to canonical title types. 245 is the
// primary title and stays untyped.
var marcTitleTags = map[string]string{
	"130": "uniform",
	"210": "abbreviated",
	"240": "uniform",
	"242": "translated",
	"246": "alternative",
	"740": "alternative",
}

// mapMarcTitles maps 245 plus the variant title fields. Uniform titles from
// 130/240 join name-title group "1", pairing them with the 1XX name.
func mapMarcTitles(rec *marc.Record, n notify.Notifier) ([]cocina.DescriptiveValue, map[int]string) {
	var entries []grouped
	for _, lf := range linkedFields(rec, "245") {
		value, ok := buildMarcTitle(lf.field, nonfilingCount(lf.field.Indicator2))
		if !ok {
			continue
		}
		if vl := linkedScript(lf.field); vl != nil {
			value.ValueLanguage = vl
		}
		entries = append(entries, grouped{group: lf.group, primary: true, value: value})
	}
	for _, tag := range []string{"130", "240", "210", "242", "246", "740"} {
		for _, lf := range linkedFields(rec, tag) {
			if tag == "740" && lf.field.Indicator2 == "2" {
				// a part of the record, mapped as a related resource
				continue
			}
			nonfiling := ""
			switch tag {
			case "130", "740":
				nonfiling = lf.field.Indicator1
			case "240", "242":
				nonfiling = lf.field.Indicator2
			}
			value, ok := buildMarcTitle(lf.field, nonfilingCount(nonfiling))
			if !ok {
				continue
			}
			value.Type = marcTitleTags[tag]
			if vl := linkedScript(lf.field); vl != nil {
				value.ValueLanguage = vl
			}
			g := grouped{group: lf.group, value: value}
			if tag == "130" || tag == "240" {
				g.ntg = "1"
			}
			entries = append(entries, g)
		}
	}
	titles, ntgs := collapseAltRep(entries, "title", n)
	titles = dedupePrimaries(titles, "title", n)
	return titles, ntgs
}

// buildMarcTitle assembles one title from $a/$b/$n/$p, splitting nonfiling
// characters off the front of $a per the indicator count.
func buildMarcTitle(f marc.DataField, nonfiling int) (cocina.DescriptiveValue, bool) {
	main := normal.StripTrailingPunct(f.Value("a"))
	sub := normal.StripTrailingPunct(f.Value("b"))
	var partNumber, partName []string
	for _, v := range f.Values("n") {
		if v = normal.StripTrailingPunct(v); v != "" {
			partNumber = append(partNumber, v)
		}
	}
	for _, v := range f.Values("p") {
		if v = normal.StripTrailingPunct(v); v != "" {
			partName = append(partName, v)
		}
	}

	var nonsort string
	if nonfiling > 0 {
		raw := f.Value("a")
		runes := []rune(raw)
		if nonfiling < len(runes) {
			nonsort = strings.TrimRight(string(runes[:nonfiling]), " ")
			main = normal.StripTrailingPunct(string(runes[nonfiling:]))
		}
	}

	var value cocina.DescriptiveValue
	structured := nonsort != "" || sub != "" || len(partNumber) > 0 || len(partName) > 0
	if !structured {
		if main == "" {
			return value, false
		}
		value.Value = main
		return value, true
	}
	if nonsort != "" {
		value.StructuredValue = append(value.StructuredValue, cocina.DescriptiveValue{
			Value: nonsort,
			Type:  "nonsorting characters",
		})
		value.Note = append(value.Note, cocina.DescriptiveValue{
			Value: strconv.Itoa(nonfiling),
			Type:  "nonsorting character count",
		})
	}
	if main != "" {
		value.StructuredValue = append(value.StructuredValue, cocina.DescriptiveValue{
			Value: main,
			Type:  "main title",
		})
	}
	if sub != "" {
		value.StructuredValue = append(value.StructuredValue, cocina.DescriptiveValue{
			Value: sub,
			Type:  "subtitle",
		})
	}
	if len(partNumber) > 0 {
		value.StructuredValue = append(value.StructuredValue, cocina.DescriptiveValue{
			Value: strings.Join(partNumber, ", "),
			Type:  "part number",
		})
	}
	if len(partName) > 0 {
		value.StructuredValue = append(value.StructuredValue, cocina.DescriptiveValue{
			Value: strings.Join(partName, ", "),
			Type:  "part name",
		})
	}
	return value, len(value.StructuredValue) > 0
}

// nonfilingCount parses a nonfiling-characters indicator. An 880 field reuses
// the indicator of its linked tag, which it carries verbatim.
func nonfilingCount(indicator string) int {
	n, err := strconv.Atoi(strings.TrimSpace(indicator))
	if err != nil || n < 0 || n > 9 {
		return 0
	}
	return n
}
