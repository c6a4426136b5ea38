package convert

import (
	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
	"github.com/dlss-labs/cocinakit/schema/mods"
)

// relatedItemTypes maps relatedItem type attributes to the controlled
// relation vocabulary.
var relatedItemTypes = map[string]string{
	"host":           "part of",
	"constituent":    "has part",
	"series":         "in series",
	"isReferencedBy": "referenced by",
	"references":     "references",
	"original":       "has original version",
	"otherVersion":   "has other version",
	"otherFormat":    "has other format",
	"preceding":      "preceded by",
	"succeeding":     "succeeded by",
	"reviewOf":       "review of",
}

// mapModsRelatedItems maps relatedItem elements, recursing into nested
// relatedItems. An item with both type and otherType keeps the type and the
// otherType moves to a note.
func mapModsRelatedItems(items []mods.RelatedItem, opts Options, n notify.Notifier) []cocina.RelatedResource {
	var out []cocina.RelatedResource
	for _, item := range items {
		rr, ok := buildRelatedResource(item, opts, n)
		if !ok {
			continue
		}
		out = append(out, rr)
	}
	return out
}

func buildRelatedResource(item mods.RelatedItem, opts Options, n notify.Notifier) (cocina.RelatedResource, bool) {
	var rr cocina.RelatedResource
	rr.DisplayLabel = item.DisplayLabel
	if item.Type != "" {
		rr.Type = relatedItemTypes[item.Type]
		if rr.Type == "" {
			n.Warn("Unrecognized related item type", notify.Context{"type": item.Type})
		}
	}
	if item.OtherType != "" {
		if item.Type != "" {
			n.Warn("Related item has type and otherType", notify.Context{
				"type":      item.Type,
				"otherType": item.OtherType,
			})
		} else {
			note := cocina.DescriptiveValue{
				Value: item.OtherType,
				Type:  "other relationship type",
			}
			if item.OtherTypeAuth != "" {
				note.Source = &cocina.Source{Code: item.OtherTypeAuth}
			}
			rr.Note = append(rr.Note, note)
		}
	}

	// nested items map through the full record mappers
	inner := mods.Mods{
		TitleInfo:           item.TitleInfo,
		Name:                item.Name,
		TypeOfResource:      item.TypeOfResource,
		Genre:               item.Genre,
		OriginInfo:          item.OriginInfo,
		Language:            item.Language,
		PhysicalDescription: item.PhysicalDescription,
		Abstract:            item.Abstract,
		Note:                item.Note,
		Subject:             item.Subject,
		Identifier:          item.Identifier,
		Location:            item.Location,
	}
	titles, titleGroups := mapModsTitles(inner.TitleInfo, n)
	contributors := mapModsNames(inner.Name, n)
	rr.Title = linkNameTitles(titles, titleGroups, contributors, n)
	for _, c := range contributors {
		rr.Contributor = append(rr.Contributor, c.contributor)
	}
	rr.Event = mapModsEvents(inner.OriginInfo, n)
	rr.Subject = mapModsSubjects(inner.Subject, n)
	rr.Form = mapModsForms(&inner, n)
	rr.Language = mapModsLanguages(inner.Language)
	rr.Note = append(rr.Note, mapModsNotes(&inner, n)...)
	rr.Identifier = mapModsIdentifiers(inner.Identifier)
	access, purl := mapModsLocations(inner.Location, opts, n)
	rr.Access = access
	rr.Purl = purl

	for _, part := range item.Part {
		if pv, ok := buildPartNote(part); ok {
			rr.Note = append(rr.Note, pv)
		}
	}
	for _, nested := range item.RelatedItem {
		if nested == nil {
			continue
		}
		if child, ok := buildRelatedResource(*nested, opts, n); ok {
			rr.RelatedResource = append(rr.RelatedResource, child)
		}
	}

	empty := rr.Type == "" && rr.DisplayLabel == "" && len(rr.Title) == 0 &&
		len(rr.Contributor) == 0 && len(rr.Event) == 0 && len(rr.Form) == 0 &&
		len(rr.Language) == 0 && len(rr.Note) == 0 && len(rr.Identifier) == 0 &&
		len(rr.Subject) == 0 && rr.Access == nil && rr.Purl == "" &&
		len(rr.RelatedResource) == 0
	return rr, !empty
}

// buildPartNote flattens a part element into one structured note.
func buildPartNote(part mods.Part) (cocina.DescriptiveValue, bool) {
	var parts []cocina.DescriptiveValue
	for _, d := range part.Detail {
		var detail []cocina.DescriptiveValue
		if d.Caption != "" {
			detail = append(detail, cocina.DescriptiveValue{Value: d.Caption, Type: "caption"})
		}
		if d.Number != "" {
			detail = append(detail, cocina.DescriptiveValue{Value: d.Number, Type: "number"})
		}
		if d.Title != "" {
			detail = append(detail, cocina.DescriptiveValue{Value: d.Title, Type: "title"})
		}
		if len(detail) == 0 {
			continue
		}
		dv := cocina.DescriptiveValue{StructuredValue: detail, Type: "detail"}
		if d.Type != "" {
			dv.Note = []cocina.DescriptiveValue{{Value: d.Type, Type: "detail type"}}
		}
		parts = append(parts, dv)
	}
	for _, e := range part.Extent {
		var rng []cocina.DescriptiveValue
		if e.Start != "" {
			rng = append(rng, cocina.DescriptiveValue{Value: e.Start, Type: "start"})
		}
		if e.End != "" {
			rng = append(rng, cocina.DescriptiveValue{Value: e.End, Type: "end"})
		}
		if e.List != "" {
			rng = append(rng, cocina.DescriptiveValue{Value: e.List, Type: "list"})
		}
		if e.Total != "" {
			rng = append(rng, cocina.DescriptiveValue{Value: e.Total, Type: "total"})
		}
		if len(rng) == 0 {
			continue
		}
		ev := cocina.DescriptiveValue{StructuredValue: rng, Type: "extent"}
		if e.Unit != "" {
			ev.Note = []cocina.DescriptiveValue{{Value: e.Unit, Type: "unit"}}
		}
		parts = append(parts, ev)
	}
	for _, d := range part.Date {
		if d.Value != "" {
			parts = append(parts, cocina.DescriptiveValue{Value: d.Value, Type: "date"})
		}
	}
	for _, t := range part.Text {
		if t.Value != "" {
			parts = append(parts, cocina.DescriptiveValue{Value: t.Value, Type: "text"})
		}
	}
	if len(parts) == 0 {
		return cocina.DescriptiveValue{}, false
	}
	if len(parts) == 1 {
		return parts[0], true
	}
	return cocina.DescriptiveValue{StructuredValue: parts, Type: "part"}, true
}
