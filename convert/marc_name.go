package convert

import (
	"strings"

	"github.com/dlss-labs/cocinakit/marc"
	"github.com/dlss-labs/cocinakit/normal"
	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
)

// mapMarcNames maps 1XX main entries plus 7XX added entries. The 1XX name
// carries status "primary" and joins name-title group "1" so a 130/240
// uniform title can link to it. 700/710/711 fields with ind2="2" or a title
// portion ($t) describe other works and map as related resources instead.
func mapMarcNames(rec *marc.Record, n notify.Notifier) []groupedContributor {
	var entries []groupedContributor
	for _, tag := range []string{"100", "110", "111"} {
		for _, lf := range linkedFields(rec, tag) {
			c, ok := buildMarcContributor(lf.field, tag)
			if !ok {
				continue
			}
			c.Status = "primary"
			entries = append(entries, groupedContributor{
				altRepGroup:    lf.group,
				nameTitleGroup: "1",
				contributor:    c,
			})
		}
	}
	for _, tag := range []string{"700", "710", "711", "720"} {
		for _, lf := range linkedFields(rec, tag) {
			if lf.field.Indicator2 == "2" {
				continue
			}
			if tag != "720" && lf.field.Value("t") != "" {
				continue
			}
			c, ok := buildMarcContributor(lf.field, tag)
			if !ok {
				continue
			}
			entries = append(entries, groupedContributor{
				altRepGroup: lf.group,
				contributor: c,
			})
		}
	}
	entries = mergeDuplicateNames(entries, n)
	entries = collapseContributorAltRep(entries, n)
	entries = dedupePrimaryContributors(entries, n)
	return entries
}

// buildMarcContributor maps one name field. tag is the logical tag, so an
// 880 field is built under the tag of its linked counterpart.
func buildMarcContributor(f marc.DataField, tag string) (cocina.Contributor, bool) {
	var c cocina.Contributor
	switch {
	case strings.HasSuffix(tag, "00"):
		c.Type = "person"
	case strings.HasSuffix(tag, "10"):
		c.Type = "organization"
	case strings.HasSuffix(tag, "11"):
		c.Type = "conference"
	case tag == "720" && f.Indicator1 == "1":
		c.Type = "person"
	}

	name, ok := buildMarcNameValue(f)
	if !ok {
		return c, false
	}
	if vl := linkedScript(f); vl != nil {
		name.ValueLanguage = vl
	}
	c.Name = []cocina.DescriptiveValue{name}

	for _, e := range f.Values("e") {
		if e = normal.StripTrailingPunct(e); e != "" {
			c.Role = append(c.Role, cocina.DescriptiveValue{Value: e})
		}
	}
	for _, code := range f.Values("4") {
		display, ok := marcRelator[code]
		if !ok {
			continue
		}
		c.Role = append(c.Role, cocina.DescriptiveValue{
			Value:  display,
			Code:   code,
			URI:    marcRelatorURI + code,
			Source: &cocina.Source{Code: marcRelatorCode, URI: marcRelatorURI},
		})
	}
	for _, u := range f.Values("u") {
		if u = normal.StripTrailingPunct(u); u != "" {
			c.Affiliation = append(c.Affiliation, cocina.DescriptiveValue{Value: u})
		}
	}
	for _, id := range f.Values("0") {
		if id != "" {
			c.Identifier = append(c.Identifier, cocina.DescriptiveValue{Value: id})
		}
	}
	return c, true
}

func buildMarcNameValue(f marc.DataField) (cocina.DescriptiveValue, bool) {
	var value cocina.DescriptiveValue
	var head []string
	for _, code := range []string{"a", "b", "c"} {
		for _, v := range f.Values(code) {
			if v = normal.StripTrailingPunct(v); v != "" {
				head = append(head, v)
			}
		}
	}
	name := strings.Join(head, ", ")
	dates := normal.StripTrailingPunct(f.Value("d"))
	switch {
	case name == "" && dates == "":
		return value, false
	case dates == "":
		value.Value = name
	default:
		value.StructuredValue = []cocina.DescriptiveValue{
			{Value: name, Type: "name"},
			{Value: dates, Type: "life dates"},
		}
	}
	return value, true
}
