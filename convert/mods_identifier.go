package convert

import (
	"github.com/dlss-labs/cocinakit/schema/cocina"
	"github.com/dlss-labs/cocinakit/schema/mods"
)

// identifierTypes maps lowercased MODS identifier type attributes to their
// canonical display form. Types not listed pass through unchanged.
var identifierTypes = map[string]string{
	"doi":       "DOI",
	"isbn":      "ISBN",
	"issn":      "ISSN",
	"issn-l":    "ISSN-L",
	"lccn":      "LCCN",
	"oclc":      "OCLC",
	"orcid":     "ORCID",
	"arxiv":     "arXiv",
	"pmid":      "PMID",
	"handle":    "Handle",
	"uri":       "URI",
	"local":     "local",
	"stock no.": "stock number",
}

// mapModsIdentifiers maps identifier elements. invalid="yes" carries through
// as status "invalid" rather than dropping the value.
func mapModsIdentifiers(ids []mods.Identifier) []cocina.DescriptiveValue {
	var out []cocina.DescriptiveValue
	for _, id := range ids {
		if id.Value == "" {
			continue
		}
		v := cocina.DescriptiveValue{
			Value:        id.Value,
			DisplayLabel: id.DisplayLabel,
		}
		if id.Type != "" {
			if display, ok := identifierTypes[id.Type]; ok {
				v.Type = display
				v.Source = &cocina.Source{Code: id.Type}
			} else {
				v.Type = id.Type
			}
		}
		if id.TypeURI != "" {
			if v.Source == nil {
				v.Source = &cocina.Source{}
			}
			v.Source.URI = id.TypeURI
		}
		if id.Invalid == "yes" {
			v.Status = "invalid"
		}
		out = append(out, v)
	}
	return out
}
