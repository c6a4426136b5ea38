package convert

import (
	"strings"

	"github.com/dlss-labs/cocinakit/marc"
	"github.com/dlss-labs/cocinakit/normal"
	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
)

// marcNoteTypes maps note field tags to note types. 500 stays untyped. Tags
// outside the table are not notes and are ignored.
var marcNoteTypes = map[string]string{
	"500": "",
	"501": "with",
	"502": "thesis",
	"504": "bibliography",
	"506": "access restriction",
	"508": "creation/production credits",
	"510": "citation",
	"511": "performers",
	"518": "venue",
	"530": "additional physical form",
	"540": "use and reproduction",
	"541": "acquisition",
	"545": "biographical/historical",
	"546": "language",
	"550": "issuing body",
	"561": "ownership",
	"583": "action",
	"585": "exhibitions",
	"586": "awards",
}

// marcNoteTags fixes the mapping order of the general note fields.
var marcNoteTags = []string{
	"500", "501", "502", "504", "506", "508", "510", "511", "518", "530",
	"540", "541", "545", "546", "550", "561", "583", "585", "586",
}

// privateNoteTags lists the note fields suppressed entirely when ind1="0"
// signals a non-public note. The suppression hides data, it does not retype
// it.
var privateNoteTags = map[string]bool{
	"541": true,
	"561": true,
	"583": true,
}

// mapMarcNotes maps the 520 summary, 505 contents and the general 5XX note
// fields.
func mapMarcNotes(rec *marc.Record, n notify.Notifier) []cocina.DescriptiveValue {
	var entries []grouped
	for _, lf := range linkedFields(rec, "520") {
		text := noteText(lf.field, "a", "b")
		if text == "" {
			continue
		}
		noteType := "abstract"
		if lf.field.Indicator1 == "1" {
			noteType = "review"
		}
		v := cocina.DescriptiveValue{Value: text, Type: noteType}
		if vl := linkedScript(lf.field); vl != nil {
			v.ValueLanguage = vl
		}
		entries = append(entries, grouped{group: lf.group, value: v})
	}
	for _, lf := range linkedFields(rec, "505") {
		text := noteText(lf.field, "a", "t", "r", "g")
		if text == "" {
			continue
		}
		v := cocina.DescriptiveValue{Value: text, Type: "table of contents"}
		if vl := linkedScript(lf.field); vl != nil {
			v.ValueLanguage = vl
		}
		entries = append(entries, grouped{group: lf.group, value: v})
	}
	for _, tag := range marcNoteTags {
		for _, lf := range linkedFields(rec, tag) {
			if privateNoteTags[tag] && lf.field.Indicator1 == "0" {
				continue
			}
			text := noteText(lf.field, "a", "b", "c", "d", "3")
			if text == "" {
				continue
			}
			v := cocina.DescriptiveValue{Value: text, Type: marcNoteTypes[tag]}
			if vl := linkedScript(lf.field); vl != nil {
				v.ValueLanguage = vl
			}
			entries = append(entries, grouped{group: lf.group, value: v})
		}
	}
	notes, _ := collapseAltRep(entries, "note", n)
	return notes
}

// noteText joins the given subfield values in field order.
func noteText(f marc.DataField, codes ...string) string {
	want := make(map[string]bool, len(codes))
	for _, c := range codes {
		want[c] = true
	}
	var parts []string
	for _, sf := range f.SubFields {
		if !want[sf.Code] {
			continue
		}
		if v := strings.TrimSpace(sf.Value); v != "" {
			parts = append(parts, v)
		}
	}
	return normal.NormalizeSpace(strings.Join(parts, " "))
}
