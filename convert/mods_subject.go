package convert

import (
	"github.com/dlss-labs/cocinakit/normal"
	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
	"github.com/dlss-labs/cocinakit/schema/mods"
)

// subjectChildTypes maps subdivision element names to canonical subject
// subtypes.
var subjectChildTypes = map[string]string{
	"topic":          "topic",
	"geographic":     "place",
	"temporal":       "time",
	"genre":          "genre",
	"occupation":     "occupation",
	"geographicCode": "place",
	"titleInfo":      "title",
	"name":           "name",
}

// hierarchicalPartTypes orders and types the parts of a hierarchical
// geographic subdivision, broad to narrow.
var hierarchicalParts = []struct {
	get  func(mods.HierarchicalGeographic) string
	name string
}{
	{func(h mods.HierarchicalGeographic) string { return h.Continent }, "continent"},
	{func(h mods.HierarchicalGeographic) string { return h.Country }, "country"},
	{func(h mods.HierarchicalGeographic) string { return h.Region }, "region"},
	{func(h mods.HierarchicalGeographic) string { return h.State }, "state"},
	{func(h mods.HierarchicalGeographic) string { return h.County }, "county"},
	{func(h mods.HierarchicalGeographic) string { return h.City }, "city"},
	{func(h mods.HierarchicalGeographic) string { return h.Area }, "area"},
}

// mapModsSubjects maps subject elements. A subject with one subdivision
// stays flat; multiple subdivisions become a structured value in document
// order. Subdivision-level authority is hoisted to the subject when uniform.
func mapModsSubjects(subjects []mods.Subject, n notify.Notifier) []cocina.DescriptiveValue {
	var entries []grouped
	for _, s := range subjects {
		value, ok := buildSubjectValue(s, n)
		if !ok {
			continue
		}
		entries = append(entries, grouped{
			group:   s.AltRepGroup,
			primary: s.Usage == "primary",
			value:   value,
		})
	}
	values, _ := collapseAltRep(entries, "subject", n)
	return dedupePrimaries(values, "subject", n)
}

func buildSubjectValue(s mods.Subject, n notify.Notifier) (cocina.DescriptiveValue, bool) {
	var parts []cocina.DescriptiveValue
	for _, child := range s.Children {
		switch {
		case child.Term != nil:
			if child.Term.Value == "" {
				continue
			}
			part := cocina.DescriptiveValue{Type: subjectChildTypes[child.Kind]}
			if child.Kind == "geographicCode" {
				part.Code = child.Term.Value
			} else {
				part.Value = normal.NormalizeSpace(child.Term.Value)
			}
			if child.Term.ValueURI != "" {
				part.URI = child.Term.ValueURI
			}
			if child.Term.Authority != "" {
				part.Source = subjectSource(child.Term.Authority, child.Term.AuthorityURI, n)
			}
			parts = append(parts, part)
		case child.TitleInfo != nil:
			title := buildTitleValue(*child.TitleInfo)
			if emptyValue(title) {
				continue
			}
			title.Type = "title"
			parts = append(parts, title)
		case child.Name != nil:
			nv, ok := buildNameValue(*child.Name)
			if !ok {
				continue
			}
			if t := nameTypes[child.Name.Type]; t != "" {
				nv.Type = t
			} else {
				nv.Type = "name"
			}
			parts = append(parts, nv)
		case child.Hierarchical != nil:
			var geo []cocina.DescriptiveValue
			for _, hp := range hierarchicalParts {
				if v := hp.get(*child.Hierarchical); v != "" {
					geo = append(geo, cocina.DescriptiveValue{Value: v, Type: hp.name})
				}
			}
			if len(geo) == 0 {
				continue
			}
			parts = append(parts, cocina.DescriptiveValue{
				StructuredValue: geo,
				Type:            "place",
			})
		case child.Cartographics != nil:
			var carto []cocina.DescriptiveValue
			if child.Cartographics.Scale != "" {
				carto = append(carto, cocina.DescriptiveValue{Value: child.Cartographics.Scale, Type: "scale"})
			}
			if child.Cartographics.Projection != "" {
				carto = append(carto, cocina.DescriptiveValue{Value: child.Cartographics.Projection, Type: "projection"})
			}
			if child.Cartographics.Coordinates != "" {
				carto = append(carto, cocina.DescriptiveValue{Value: child.Cartographics.Coordinates, Type: "coordinates"})
			}
			if len(carto) == 0 {
				continue
			}
			parts = append(parts, cocina.DescriptiveValue{
				GroupedValue: carto,
				Type:         "map coordinates",
			})
		}
	}
	if len(parts) == 0 {
		return cocina.DescriptiveValue{}, false
	}

	var value cocina.DescriptiveValue
	if len(parts) == 1 {
		value = parts[0]
	} else {
		value.StructuredValue = parts
	}
	value.DisplayLabel = s.DisplayLabel
	if s.ValueURI != "" && len(parts) == 1 {
		value.URI = s.ValueURI
	}
	switch {
	case s.Authority != "":
		value.Source = subjectSource(s.Authority, s.AuthorityURI, n)
	default:
		if src := uniformPartSource(parts); src != nil {
			value.Source = src
			if len(parts) > 1 {
				// hoisted: clear the now-redundant part sources
				for i := range value.StructuredValue {
					value.StructuredValue[i].Source = nil
				}
			}
		}
	}
	if vl := valueLanguage(s.Lang, s.Script); vl != nil {
		value.ValueLanguage = vl
	}
	return value, true
}

// subjectSource builds the source for an authority code, applying the typo
// correction table for known-bad codes.
// authorityPipeline levels legacy casing and stray whitespace in authority
// codes before they are checked against the known set.
var authorityPipeline = &normal.Pipeline{Normalizer: []normal.Normalizer{
	&normal.CollapseWSNormalizer{},
	&normal.LowercaseNormalizer{},
}}

func subjectSource(authority, authorityURI string, n notify.Notifier) *cocina.Source {
	code := authorityPipeline.Normalize(authority)
	if !normal.KnownAuthority(code) {
		fixed, corrected := normal.CorrectAuthority(code)
		if corrected {
			n.Warn("Subject authority correction", notify.Context{
				"from": authority,
				"to":   fixed,
			})
		}
		code = fixed
	}
	return &cocina.Source{Code: code, URI: authorityURI}
}

// uniformPartSource returns the shared source of all parts when every part
// has one and they agree on the code, for hoisting to the subject level.
func uniformPartSource(parts []cocina.DescriptiveValue) *cocina.Source {
	var src *cocina.Source
	for _, p := range parts {
		if p.Source == nil {
			return nil
		}
		if src == nil {
			src = p.Source
			continue
		}
		if p.Source.Code != src.Code {
			return nil
		}
	}
	return src
}
