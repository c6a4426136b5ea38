package convert

import (
	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
	"github.com/dlss-labs/cocinakit/schema/mods"
)

// legacyEventTypes corrects eventType and displayLabel values written by
// older MARC-derived conversions.
var legacyEventTypes = map[string]string{
	"producer":     "production",
	"publisher":    "publication",
	"distributor":  "distribution",
	"manufacturer": "manufacture",
}

// knownEventTypes are the eventType attribute values passed through as-is.
var knownEventTypes = map[string]bool{
	"capture":          true,
	"copyright":        true,
	"copyright notice": true,
	"creation":         true,
	"development":      true,
	"distribution":     true,
	"manufacture":      true,
	"modification":     true,
	"production":       true,
	"publication":      true,
	"acquisition":      true,
	"validity":         true,
}

// dateElementKind carries a date subelement with the event and date types it
// implies.
type dateElementKind struct {
	dates     []mods.DateValue
	dateType  string
	eventType string
}

// mapModsEvents maps each originInfo to one event. Event type precedence:
// explicit eventType attribute, legacy correction of eventType or
// displayLabel, then inference from which date subelement is present.
func mapModsEvents(origins []mods.OriginInfo, n notify.Notifier) []cocina.Event {
	var events []cocina.Event
	for _, oi := range origins {
		event, ok := buildEvent(oi, n)
		if !ok {
			continue
		}
		events = append(events, event)
	}
	return events
}

func buildEvent(oi mods.OriginInfo, n notify.Notifier) (cocina.Event, bool) {
	var event cocina.Event
	event.DisplayLabel = oi.DisplayLabel

	kinds := []dateElementKind{
		{oi.DateIssued, "publication", "publication"},
		{oi.DateCreated, "creation", "creation"},
		{oi.DateCaptured, "capture", "capture"},
		{oi.DateValid, "validity", "validity"},
		{oi.DateModified, "modification", "modification"},
		{oi.CopyrightDate, "copyright", "copyright notice"},
	}

	// type resolution: attribute, legacy tables, then inference
	switch {
	case knownEventTypes[oi.EventType]:
		event.Type = oi.EventType
	case oi.EventType != "":
		if fixed, ok := legacyEventTypes[oi.EventType]; ok {
			event.Type = fixed
		} else {
			n.Warn("Unrecognized event type", notify.Context{"eventType": oi.EventType})
		}
	case oi.DisplayLabel != "":
		if fixed, ok := legacyEventTypes[oi.DisplayLabel]; ok {
			event.Type = fixed
		}
	}
	if event.Type == "" {
		for _, k := range kinds {
			if len(k.dates) > 0 {
				event.Type = k.eventType
				break
			}
		}
	}

	for _, k := range kinds {
		event.Date = append(event.Date, buildDates(k.dates, k.dateType)...)
	}
	event.Date = append(event.Date, buildOtherDates(oi, &event, n)...)
	event.Date = dedupePrimaries(event.Date, "date", n)

	for _, place := range oi.Place {
		for _, pt := range place.PlaceTerm {
			if pt.Value == "" {
				continue
			}
			loc := cocina.DescriptiveValue{Type: "place"}
			if pt.Type == "code" {
				loc.Code = pt.Value
			} else {
				loc.Value = pt.Value
			}
			if pt.Authority != "" {
				loc.Source = &cocina.Source{Code: pt.Authority, URI: pt.AuthorityURI}
			}
			if pt.ValueURI != "" {
				loc.URI = pt.ValueURI
			}
			event.Location = append(event.Location, loc)
		}
	}

	for _, pub := range oi.Publisher {
		if pub.Value == "" {
			continue
		}
		event.Contributor = append(event.Contributor, cocina.Contributor{
			Name: []cocina.DescriptiveValue{{Value: pub.Value}},
			Type: "organization",
			Role: []cocina.DescriptiveValue{{
				Value:  "publisher",
				Code:   "pbl",
				URI:    marcRelatorURI + "pbl",
				Source: &cocina.Source{Code: marcRelatorCode, URI: marcRelatorURI},
			}},
		})
	}

	for _, ed := range oi.Edition {
		if ed != "" {
			event.Note = append(event.Note, cocina.DescriptiveValue{Value: ed, Type: "edition"})
		}
	}
	for _, is := range oi.Issuance {
		if is != "" {
			event.Note = append(event.Note, cocina.DescriptiveValue{
				Value:  is,
				Type:   "issuance",
				Source: &cocina.Source{Value: "MODS issuance terms"},
			})
		}
	}
	for _, fq := range oi.Frequency {
		if fq.Value != "" {
			note := cocina.DescriptiveValue{Value: fq.Value, Type: "frequency"}
			if fq.Authority != "" {
				note.Source = &cocina.Source{Code: fq.Authority}
			}
			event.Note = append(event.Note, note)
		}
	}

	empty := event.Type == "" && len(event.Date) == 0 && len(event.Location) == 0 &&
		len(event.Contributor) == 0 && len(event.Note) == 0 && event.DisplayLabel == ""
	return event, !empty
}

// buildDates maps one date subelement family, pairing point="start"/"end"
// occurrences into a single structured range.
func buildDates(dates []mods.DateValue, dateType string) []cocina.DescriptiveValue {
	var (
		out   []cocina.DescriptiveValue
		start *cocina.DescriptiveValue
	)
	for _, d := range dates {
		if d.Value == "" {
			continue
		}
		dv := cocina.DescriptiveValue{Value: d.Value, Type: dateType}
		if d.Encoding != "" {
			dv.Encoding = &cocina.Source{Code: d.Encoding}
		}
		if d.KeyDate == "yes" {
			dv.Status = "primary"
		}
		if d.Qualifier != "" {
			dv.Qualifier = d.Qualifier
		}
		switch d.Point {
		case "start":
			dv.Type = "start"
			start = &dv
		case "end":
			dv.Type = "end"
			rangeValue := cocina.DescriptiveValue{Type: dateType}
			if start != nil {
				rangeValue.StructuredValue = []cocina.DescriptiveValue{*start, dv}
				start = nil
			} else {
				rangeValue.StructuredValue = []cocina.DescriptiveValue{dv}
			}
			out = append(out, rangeValue)
		default:
			out = append(out, dv)
		}
	}
	if start != nil {
		// open-ended range: keep the start point as a structured value
		out = append(out, cocina.DescriptiveValue{
			Type:            dateType,
			StructuredValue: []cocina.DescriptiveValue{*start},
		})
	}
	return out
}

// buildOtherDates maps dateOther subelements: the element's own type
// attribute wins, otherwise the date stays untyped with a warning.
func buildOtherDates(oi mods.OriginInfo, event *cocina.Event, n notify.Notifier) []cocina.DescriptiveValue {
	var (
		out    []cocina.DescriptiveValue
		warned bool
	)
	for _, d := range oi.DateOther {
		if d.Value == "" {
			continue
		}
		dv := cocina.DescriptiveValue{Value: d.Value}
		switch {
		case d.Type != "":
			dv.Type = d.Type
			if event.Type == "" && knownEventTypes[d.Type] {
				event.Type = d.Type
			}
		case event.Type != "":
			dv.Type = event.Type
		default:
			if !warned {
				n.Warn("Undetermined date type", nil)
				warned = true
			}
		}
		if d.Encoding != "" {
			dv.Encoding = &cocina.Source{Code: d.Encoding}
		}
		if d.KeyDate == "yes" {
			dv.Status = "primary"
		}
		if d.Qualifier != "" {
			dv.Qualifier = d.Qualifier
		}
		out = append(out, dv)
	}
	return out
}
