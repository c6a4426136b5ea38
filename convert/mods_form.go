package convert

import (
	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
	"github.com/dlss-labs/cocinakit/schema/mods"
)

// modsResourceTypeSource labels values drawn from the closed MODS
// typeOfResource list.
var modsResourceTypeSource = cocina.Source{Value: "MODS resource types"}

// mapModsForms maps typeOfResource, genre and physicalDescription. A
// physicalDescription with several facets becomes one grouped value, so the
// co-occurrence of form, extent and digital origin survives the round trip.
func mapModsForms(doc *mods.Mods, n notify.Notifier) []cocina.DescriptiveValue {
	var out []cocina.DescriptiveValue
	for _, tor := range doc.TypeOfResource {
		if tor.Value == "" {
			continue
		}
		v := cocina.DescriptiveValue{
			Value:  tor.Value,
			Type:   "resource type",
			Source: &modsResourceTypeSource,
		}
		if tor.Usage == "primary" {
			v.Status = "primary"
		}
		out = append(out, v)
	}
	for _, g := range doc.Genre {
		if g.Value == "" {
			continue
		}
		v := cocina.DescriptiveValue{Value: g.Value, Type: "genre"}
		if g.Type != "" {
			v.Type = "genre"
			v.Note = []cocina.DescriptiveValue{{Value: g.Type, Type: "genre type"}}
		}
		if g.Usage == "primary" {
			v.Status = "primary"
		}
		if g.DisplayLabel != "" {
			v.DisplayLabel = g.DisplayLabel
		}
		if g.Authority != "" {
			v.Source = &cocina.Source{Code: g.Authority, URI: g.AuthorityURI}
		}
		if g.ValueURI != "" {
			v.URI = g.ValueURI
		}
		out = append(out, v)
	}
	for _, pd := range doc.PhysicalDescription {
		out = append(out, buildPhysicalDescription(pd)...)
	}
	return dedupePrimaries(out, "form", n)
}

func buildPhysicalDescription(pd mods.PhysicalDescription) []cocina.DescriptiveValue {
	var facets []cocina.DescriptiveValue
	for _, f := range pd.Form {
		if f.Value == "" {
			continue
		}
		v := cocina.DescriptiveValue{Value: f.Value, Type: "form"}
		if f.Authority != "" {
			v.Source = &cocina.Source{Code: f.Authority, URI: f.AuthorityURI}
		}
		if f.ValueURI != "" {
			v.URI = f.ValueURI
		}
		facets = append(facets, v)
	}
	for _, e := range pd.Extent {
		if e.Value != "" {
			facets = append(facets, cocina.DescriptiveValue{Value: e.Value, Type: "extent"})
		}
	}
	for _, rq := range pd.ReformattingQuality {
		if rq != "" {
			facets = append(facets, cocina.DescriptiveValue{Value: rq, Type: "reformatting quality"})
		}
	}
	for _, mt := range pd.InternetMediaType {
		if mt != "" {
			facets = append(facets, cocina.DescriptiveValue{Value: mt, Type: "media type"})
		}
	}
	if pd.DigitalOrigin != "" {
		facets = append(facets, cocina.DescriptiveValue{Value: pd.DigitalOrigin, Type: "digital origin"})
	}
	for _, note := range pd.Note {
		if note.Value == "" {
			continue
		}
		nv := cocina.DescriptiveValue{Value: note.Value, Type: "note"}
		if note.DisplayLabel != "" {
			nv.DisplayLabel = note.DisplayLabel
		}
		facets = append(facets, nv)
	}
	switch len(facets) {
	case 0:
		return nil
	case 1:
		if pd.DisplayLabel != "" {
			facets[0].DisplayLabel = pd.DisplayLabel
		}
		return facets
	default:
		return []cocina.DescriptiveValue{{
			GroupedValue: facets,
			DisplayLabel: pd.DisplayLabel,
		}}
	}
}
