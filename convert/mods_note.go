package convert

import (
	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
	"github.com/dlss-labs/cocinakit/schema/mods"
)

// mapModsNotes maps abstract, tableOfContents, targetAudience and note
// elements, in that order.
func mapModsNotes(doc *mods.Mods, n notify.Notifier) []cocina.DescriptiveValue {
	var (
		entries []grouped
		out     []cocina.DescriptiveValue
	)
	for _, a := range doc.Abstract {
		v := cocina.DescriptiveValue{Type: "abstract"}
		if a.Type != "" {
			v.Type = a.Type
		}
		switch {
		case a.ValueAt != "" && a.Value != "":
			// an external reference and inline text cannot both hold; the
			// inline text wins
			n.Warn("Abstract has both valueAt and text", notify.Context{
				"valueAt": a.ValueAt,
			})
			v.Value = a.Value
		case a.ValueAt != "":
			v.ValueAt = a.ValueAt
		case a.Value != "":
			v.Value = a.Value
		default:
			continue
		}
		v.DisplayLabel = a.DisplayLabel
		if vl := valueLanguage(a.Lang, a.Script); vl != nil {
			v.ValueLanguage = vl
		}
		entries = append(entries, grouped{group: a.AltRepGroup, value: v})
	}
	abstracts, _ := collapseAltRep(entries, "abstract", n)
	out = append(out, abstracts...)

	for _, toc := range doc.TableOfContents {
		if toc.Value == "" {
			continue
		}
		out = append(out, cocina.DescriptiveValue{
			Value:        toc.Value,
			Type:         "table of contents",
			DisplayLabel: toc.DisplayLabel,
		})
	}
	for _, ta := range doc.TargetAudience {
		if ta.Value == "" {
			continue
		}
		v := cocina.DescriptiveValue{Value: ta.Value, Type: "target audience"}
		if ta.Authority != "" {
			v.Source = &cocina.Source{Code: ta.Authority}
		}
		out = append(out, v)
	}

	entries = entries[:0]
	for _, note := range doc.Note {
		if note.Value == "" {
			continue
		}
		v := cocina.DescriptiveValue{
			Value:        note.Value,
			Type:         note.Type,
			DisplayLabel: note.DisplayLabel,
		}
		if vl := valueLanguage(note.Lang, note.Script); vl != nil {
			v.ValueLanguage = vl
		}
		entries = append(entries, grouped{group: note.AltRepGroup, value: v})
	}
	notes, _ := collapseAltRep(entries, "note", n)
	return append(out, notes...)
}
