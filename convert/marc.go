package convert

import (
	"github.com/dlss-labs/cocinakit/marc"
	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
)

// MarcToCocina maps a MARC record to a cocina description. Alternate-script
// 880 fields collapse into parallel values with their primary-script
// counterparts, keyed by the $6 occurrence number for the duration of the
// pass. A nil record yields a nil description.
func MarcToCocina(rec *marc.Record, opts Options) (*cocina.Description, error) {
	if rec == nil {
		return nil, nil
	}
	if rec.Leader.Status == 'd' {
		return nil, ErrSkipDeleted
	}
	n := opts.notifier()
	var desc cocina.Description

	titles, titleGroups := mapMarcTitles(rec, n)
	contributors := mapMarcNames(rec, n)
	titles = linkNameTitles(titles, titleGroups, contributors, n)
	if len(titles) == 0 {
		n.Error("Missing title", notify.Context{"fallback": opts.fallbackTitle()})
		titles = []cocina.DescriptiveValue{{Value: opts.fallbackTitle()}}
	}
	desc.Title = titles
	for _, c := range contributors {
		desc.Contributor = append(desc.Contributor, c.contributor)
	}
	desc.Event = mapMarcEvents(rec, n)
	desc.Subject = mapMarcSubjects(rec, n)
	desc.Form = mapMarcForms(rec)
	desc.Language = mapMarcLanguages(rec)
	desc.Note = mapMarcNotes(rec, n)
	desc.Identifier = mapMarcIdentifiers(rec)
	desc.RelatedResource = mapMarcRelatedResources(rec, opts, n)
	access, purl := mapMarcAccess(rec, opts, n)
	desc.Access = access
	if purl != "" {
		desc.Purl = purl
	} else if opts.Purl != "" {
		desc.Purl = opts.Purl
	}
	return &desc, nil
}

// linkedField pairs a data field with the transient group id shared between a
// primary-script field and its 880 counterpart.
type linkedField struct {
	field marc.DataField
	group string // "tag-occurrence", "" when unlinked
}

// linkedFields returns, in document order, the data fields with the given
// tags plus the 880 fields linked to them. An 880 with occurrence "00" or a
// malformed $6 stays ungrouped but is still returned.
func linkedFields(rec *marc.Record, tags ...string) []linkedField {
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	var out []linkedField
	for _, f := range rec.Fields {
		switch {
		case want[f.Tag]:
			lf := linkedField{field: f}
			if lk, ok := f.Linkage(); ok && lk.Linked() {
				lf.group = f.Tag + "-" + lk.Occurrence
			}
			out = append(out, lf)
		case f.Tag == "880":
			lk, ok := f.Linkage()
			if !ok || !want[lk.Tag] {
				continue
			}
			lf := linkedField{field: f}
			if lk.Linked() {
				lf.group = lk.Tag + "-" + lk.Occurrence
			}
			out = append(out, lf)
		}
	}
	return out
}

// linkedScript returns the value script of an alternate-script field when the
// $6 script identification code names one.
func linkedScript(f marc.DataField) *cocina.ValueLanguage {
	lk, ok := f.Linkage()
	if !ok || lk.Script == "" {
		return nil
	}
	code, ok := marcScriptCodes[lk.Script]
	if !ok {
		return nil
	}
	return &cocina.ValueLanguage{
		ValueScript: &cocina.ValueScript{
			Code:   code,
			Source: &cocina.Source{Code: "iso15924"},
		},
	}
}

// marcScriptCodes maps $6 script identification codes to iso15924 codes.
var marcScriptCodes = map[string]string{
	"(3": "Arab",
	"(4": "Arab",
	"(B": "Latn",
	"$1": "Hani",
	"(N": "Cyrl",
	"(S": "Grek",
	"(2": "Hebr",
}
