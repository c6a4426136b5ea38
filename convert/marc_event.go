package convert

import (
	"strings"

	"github.com/dlss-labs/cocinakit/marc"
	"github.com/dlss-labs/cocinakit/normal"
	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
)

// marc264EventTypes decodes the 264 second indicator.
var marc264EventTypes = map[string]string{
	"0": "production",
	"1": "publication",
	"2": "distribution",
	"3": "manufacture",
	"4": "copyright notice",
}

// marc264Roles is the contributor role per 264 event type.
var marc264Roles = map[string]string{
	"production":   "pro",
	"publication":  "pbl",
	"distribution": "dst",
	"manufacture":  "mfr",
}

var marcEncoding = cocina.Source{Code: "marc"}

// mapMarcEvents decodes the 008 fixed-field dates plus the 260/264
// publication statements.
func mapMarcEvents(rec *marc.Record, n notify.Notifier) []cocina.Event {
	var events []cocina.Event
	if v, ok := rec.ControlValue("008"); ok {
		if ev, ok := decode008Event(v); ok {
			events = append(events, ev)
		}
	}
	for _, f := range rec.DataField("260") {
		if ev, ok := buildImprintEvent(f, "publication"); ok {
			events = append(events, ev)
		}
	}
	for _, f := range rec.DataField("264") {
		eventType := marc264EventTypes[f.Indicator2]
		if eventType == "" {
			eventType = "publication"
		}
		if ev, ok := buildImprintEvent(f, eventType); ok {
			events = append(events, ev)
		}
	}
	return events
}

// decode008Event maps 008 bytes 06-14: the date-type byte at 06 selects how
// date1 (07-10) and date2 (11-14) combine. Byte 15-17 is the place code.
func decode008Event(v string) (cocina.Event, bool) {
	if len(v) < 15 {
		return cocina.Event{}, false
	}
	var (
		dtype = v[6]
		date1 = clean008Date(v[7:11])
		date2 = clean008Date(v[11:15])
		event cocina.Event
	)
	marcDate := func(value, dateType string) cocina.DescriptiveValue {
		dv := cocina.DescriptiveValue{Value: value, Type: dateType}
		enc := marcEncoding
		dv.Encoding = &enc
		return dv
	}
	switch dtype {
	case 's', 'e', 'r', 'p':
		// single date; reprint and distribution types keep date1 only
		event.Type = "publication"
		if date1 != "" {
			event.Date = append(event.Date, marcDate(date1, "publication"))
		}
	case 't':
		event.Type = "publication"
		if date1 != "" {
			event.Date = append(event.Date, marcDate(date1, "publication"))
		}
		if date2 != "" {
			event.Date = append(event.Date, marcDate(date2, "copyright"))
		}
	case 'c', 'd', 'm', 'u', 'q', 'i', 'k':
		event.Type = "publication"
		if dtype == 'i' || dtype == 'k' {
			event.Type = "creation"
		}
		var parts []cocina.DescriptiveValue
		if date1 != "" {
			start := marcDate(date1, "start")
			parts = append(parts, start)
		}
		if date2 != "" && date2 != "9999" {
			end := marcDate(date2, "end")
			parts = append(parts, end)
		}
		switch len(parts) {
		case 0:
		case 1:
			single := parts[0]
			single.Type = event.Type
			event.Date = append(event.Date, single)
		default:
			rangeValue := cocina.DescriptiveValue{
				StructuredValue: parts,
				Type:            event.Type,
			}
			if dtype == 'q' {
				rangeValue.Qualifier = "questionable"
			}
			event.Date = append(event.Date, rangeValue)
		}
	default:
		return cocina.Event{}, false
	}
	if len(v) >= 18 {
		if place := strings.TrimSpace(v[15:18]); place != "" && place != "xx" {
			event.Location = append(event.Location, cocina.DescriptiveValue{
				Code:   place,
				Type:   "place",
				Source: &cocina.Source{Code: "marccountry"},
			})
		}
	}
	return event, len(event.Date) > 0 || len(event.Location) > 0
}

// clean008Date drops fill characters and fully-unknown dates. A partially
// unknown date like "19uu" passes through unchanged.
func clean008Date(s string) string {
	s = strings.TrimSpace(s)
	switch s {
	case "", "uuuu", "||||", "####":
		return ""
	}
	if strings.Trim(s, "|") == "" {
		return ""
	}
	return s
}

// buildImprintEvent maps one 260/264 field: $a places, $b publisher-like
// contributors with the role the event type implies, $c dates.
func buildImprintEvent(f marc.DataField, eventType string) (cocina.Event, bool) {
	event := cocina.Event{Type: eventType}
	for _, a := range f.Values("a") {
		if a = normal.StripTrailingPunct(a); a != "" {
			event.Location = append(event.Location, cocina.DescriptiveValue{
				Value: a,
				Type:  "place",
			})
		}
	}
	for _, b := range f.Values("b") {
		if b = normal.StripTrailingPunct(b); b == "" {
			continue
		}
		contributor := cocina.Contributor{
			Name: []cocina.DescriptiveValue{{Value: b}},
			Type: "organization",
		}
		if code, ok := marc264Roles[eventType]; ok {
			contributor.Role = []cocina.DescriptiveValue{{
				Value:  marcRelator[code],
				Code:   code,
				URI:    marcRelatorURI + code,
				Source: &cocina.Source{Code: marcRelatorCode, URI: marcRelatorURI},
			}}
		}
		event.Contributor = append(event.Contributor, contributor)
	}
	for _, c := range f.Values("c") {
		if c = normal.StripTrailingPunct(c); c == "" {
			continue
		}
		dateType := eventType
		if eventType == "copyright notice" {
			dateType = "copyright"
		}
		event.Date = append(event.Date, cocina.DescriptiveValue{
			Value: c,
			Type:  dateType,
		})
	}
	if len(event.Date) == 0 && len(event.Location) == 0 && len(event.Contributor) == 0 {
		return event, false
	}
	return event, true
}
