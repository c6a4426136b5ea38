package convert

import (
	"strings"

	"github.com/dlss-labs/cocinakit/marc"
	"github.com/dlss-labs/cocinakit/normal"
	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
)

// marcLinkingTypes maps linking entry tags to the controlled relation
// vocabulary. Tags without a vocabulary equivalent map to "related to".
var marcLinkingTypes = map[string]string{
	"760": "in series",
	"762": "has part",
	"765": "has original version",
	"767": "has other version",
	"770": "has part",
	"772": "part of",
	"773": "part of",
	"774": "has part",
	"775": "has other version",
	"776": "has other format",
	"777": "related to",
	"780": "preceded by",
	"785": "succeeded by",
	"786": "related to",
	"787": "related to",
}

var marcLinkingTags = []string{
	"760", "762", "765", "767", "770", "772", "773", "774", "775", "776",
	"777", "780", "785", "786", "787",
}

// mapMarcRelatedResources maps the 76X-78X linking entries plus the
// name-title added entries: a 7XX with ind2="2" describes a part of the
// record, any other 7XX carrying a title portion ($t) describes a related
// work.
func mapMarcRelatedResources(rec *marc.Record, opts Options, n notify.Notifier) []cocina.RelatedResource {
	var out []cocina.RelatedResource
	for _, tag := range marcLinkingTags {
		for _, f := range rec.DataField(tag) {
			rr, ok := buildLinkingEntry(f, marcLinkingTypes[tag])
			if !ok {
				continue
			}
			out = append(out, rr)
		}
	}
	for _, tag := range []string{"700", "710", "711"} {
		for _, f := range rec.DataField(tag) {
			relType := "has part"
			if f.Indicator2 != "2" {
				if strings.TrimSpace(f.Value("t")) == "" {
					continue
				}
				relType = "related to"
			}
			var rr cocina.RelatedResource
			rr.Type = relType
			if c, ok := buildMarcContributor(f, tag); ok {
				rr.Contributor = append(rr.Contributor, c)
			}
			if t := normal.StripTrailingPunct(f.Value("t")); t != "" {
				rr.Title = append(rr.Title, cocina.DescriptiveValue{Value: t})
			}
			if len(rr.Contributor) == 0 && len(rr.Title) == 0 {
				continue
			}
			out = append(out, rr)
		}
	}
	for _, f := range rec.DataField("740") {
		if f.Indicator2 != "2" {
			continue
		}
		if value, ok := buildMarcTitle(f, nonfilingCount(f.Indicator1)); ok {
			out = append(out, cocina.RelatedResource{
				Type:  "has part",
				Title: []cocina.DescriptiveValue{value},
			})
		}
	}
	return out
}

// buildLinkingEntry maps one 76X-78X field: $t title, $a name, $d imprint,
// $x/$z identifiers, $i relationship wording as display label.
func buildLinkingEntry(f marc.DataField, relType string) (cocina.RelatedResource, bool) {
	var rr cocina.RelatedResource
	rr.Type = relType
	rr.DisplayLabel = normal.StripTrailingPunct(f.Value("i"))
	if t := normal.StripTrailingPunct(f.Value("t")); t != "" {
		rr.Title = append(rr.Title, cocina.DescriptiveValue{Value: t})
	}
	if a := normal.StripTrailingPunct(f.Value("a")); a != "" {
		rr.Contributor = append(rr.Contributor, cocina.Contributor{
			Name: []cocina.DescriptiveValue{{Value: a}},
		})
	}
	if d := normal.StripTrailingPunct(f.Value("d")); d != "" {
		rr.Event = append(rr.Event, cocina.Event{
			Type: "publication",
			Note: []cocina.DescriptiveValue{{Value: d, Type: "imprint"}},
		})
	}
	for _, x := range f.Values("x") {
		if x = strings.TrimSpace(x); x != "" {
			rr.Identifier = append(rr.Identifier, cocina.DescriptiveValue{
				Value:  x,
				Type:   "ISSN",
				Source: &cocina.Source{Code: "issn"},
			})
		}
	}
	for _, z := range f.Values("z") {
		if z = strings.TrimSpace(z); z != "" {
			rr.Identifier = append(rr.Identifier, cocina.DescriptiveValue{
				Value:  z,
				Type:   "ISBN",
				Source: &cocina.Source{Code: "isbn"},
			})
		}
	}
	if g := normal.StripTrailingPunct(f.Value("g")); g != "" {
		rr.Note = append(rr.Note, cocina.DescriptiveValue{Value: g, Type: "part"})
	}
	empty := len(rr.Title) == 0 && len(rr.Contributor) == 0 && len(rr.Event) == 0 &&
		len(rr.Identifier) == 0 && len(rr.Note) == 0 && rr.DisplayLabel == ""
	return rr, !empty
}
