package convert

import (
	"strings"

	"github.com/dlss-labs/cocinakit/marc"
	"github.com/dlss-labs/cocinakit/normal"
	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
)

// marcSubjectHeadTypes maps subject field tags to the type of the heading
// portion of the field.
var marcSubjectHeadTypes = map[string]string{
	"600": "person",
	"610": "organization",
	"611": "conference",
	"630": "title",
	"648": "time",
	"650": "topic",
	"651": "place",
	"655": "genre",
}

// marcSubdivisionTypes maps subdivision subfield codes to subtypes.
var marcSubdivisionTypes = map[string]string{
	"v": "genre",
	"x": "topic",
	"y": "time",
	"z": "place",
}

// marcSubjectThesauri decodes ind2 into an authority code. ind2="7" defers
// to $2 instead.
var marcSubjectThesauri = map[string]string{
	"0": "lcsh",
	"1": "lcshac",
	"2": "mesh",
	"3": "nal",
	"5": "cash",
	"6": "rvm",
}

// subjectTermPipeline cleans one heading or subdivision value: whitespace
// runs collapse, ISBD trailing punctuation goes.
var subjectTermPipeline = &normal.Pipeline{Normalizer: []normal.Normalizer{
	&normal.CollapseWSNormalizer{},
	normal.NormalizerFunc(normal.StripTrailingPunct),
}}

// mapMarcSubjects maps the 6XX fields. The heading plus its $v/$x/$y/$z
// subdivisions keep document order, a single-part heading stays flat.
func mapMarcSubjects(rec *marc.Record, n notify.Notifier) []cocina.DescriptiveValue {
	var entries []grouped
	for _, tag := range []string{"600", "610", "611", "630", "648", "650", "651", "655"} {
		for _, lf := range linkedFields(rec, tag) {
			value, ok := buildMarcSubject(lf.field, tag, n)
			if !ok {
				continue
			}
			if vl := linkedScript(lf.field); vl != nil {
				value.ValueLanguage = vl
			}
			entries = append(entries, grouped{group: lf.group, value: value})
		}
	}
	values, _ := collapseAltRep(entries, "subject", n)
	return dedupePrimaries(values, "subject", n)
}

func buildMarcSubject(f marc.DataField, tag string, n notify.Notifier) (cocina.DescriptiveValue, bool) {
	var parts []cocina.DescriptiveValue

	// heading portion: $a plus the tag-family extras, joined in field order
	var head []string
	for _, sf := range f.SubFields {
		switch sf.Code {
		case "a", "b", "c", "d", "t":
			if v := subjectTermPipeline.Normalize(sf.Value); v != "" {
				head = append(head, v)
			}
		}
	}
	if len(head) > 0 {
		parts = append(parts, cocina.DescriptiveValue{
			Value: strings.Join(head, ", "),
			Type:  marcSubjectHeadTypes[tag],
		})
	}
	for _, sf := range f.SubFields {
		subType, ok := marcSubdivisionTypes[sf.Code]
		if !ok {
			continue
		}
		if v := subjectTermPipeline.Normalize(sf.Value); v != "" {
			parts = append(parts, cocina.DescriptiveValue{Value: v, Type: subType})
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
	if code := subjectThesaurus(f); code != "" {
		value.Source = subjectSource(code, "", n)
	}
	return value, true
}

func subjectThesaurus(f marc.DataField) string {
	if f.Indicator2 == "7" {
		return f.Value("2")
	}
	return marcSubjectThesauri[f.Indicator2]
}
