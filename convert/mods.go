package convert

import (
	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
	"github.com/dlss-labs/cocinakit/schema/mods"
)

// ModsToCocina maps a MODS record to a cocina description. Data-quality
// problems never fail the pass: they are corrected or degraded and reported
// through opts.Notifier. A nil record yields a nil description.
func ModsToCocina(doc *mods.Mods, opts Options) (*cocina.Description, error) {
	if doc == nil {
		return nil, nil
	}
	n := opts.notifier()
	var desc cocina.Description

	titles, titleGroups := mapModsTitles(doc.TitleInfo, n)
	contributors := mapModsNames(doc.Name, n)
	titles = linkNameTitles(titles, titleGroups, contributors, n)
	if len(titles) == 0 {
		n.Error("Missing title", notify.Context{"fallback": opts.fallbackTitle()})
		titles = []cocina.DescriptiveValue{{Value: opts.fallbackTitle()}}
	}
	desc.Title = titles
	for _, c := range contributors {
		desc.Contributor = append(desc.Contributor, c.contributor)
	}
	desc.Event = mapModsEvents(doc.OriginInfo, n)
	desc.Subject = mapModsSubjects(doc.Subject, n)
	desc.Form = mapModsForms(doc, n)
	desc.Language = mapModsLanguages(doc.Language)
	desc.Note = mapModsNotes(doc, n)
	desc.Identifier = mapModsIdentifiers(doc.Identifier)
	desc.RelatedResource = mapModsRelatedItems(doc.RelatedItem, opts, n)
	access, purl := mapModsLocations(doc.Location, opts, n)
	desc.Access = access
	if purl != "" {
		desc.Purl = purl
	} else if opts.Purl != "" {
		desc.Purl = opts.Purl
	}
	return &desc, nil
}
