// Package convert implements the mapping engine between MODS, MARC, DataCite
// and the canonical cocina description model. One file per semantic category
// per direction; lookup tables live next to the mapper that owns them.
package convert

import (
	"errors"
	"strings"

	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
)

// Skip wraps errors that mean a record should be skipped rather than fail a
// batch.
type Skip struct {
	err error
}

func (s Skip) Error() string {
	return s.err.Error()
}

var (
	ErrSkipDeleted = Skip{err: errors.New("deleted record")}
	ErrSkipNoDOI   = Skip{err: errors.New("no doi")}
)

// DefaultFallbackTitle is substituted when a record carries no title at all.
// The substitution is reported through the Notifier's error channel; the
// mapping pass still returns a usable record.
const DefaultFallbackTitle = "[Untitled]"

// Options carries per-pass collaborators and record context. The zero value
// is usable: anomalies are discarded and defaults apply.
type Options struct {
	// Notifier receives warnings and errors found during mapping.
	Notifier notify.Notifier
	// FallbackTitle replaces a missing title; DefaultFallbackTitle when "".
	FallbackTitle string
	// Purl is the persistent URL of the described resource, used to tell
	// location URLs of the record itself apart from related-resource links.
	Purl string
	// DOI of the record, used by the DataCite assembler.
	DOI string
	// EmbargoReleaseDate, when set, drives the DataCite publication year.
	EmbargoReleaseDate string
}

func (o Options) notifier() notify.Notifier {
	if o.Notifier == nil {
		return notify.Nop{}
	}
	return o.Notifier
}

func (o Options) fallbackTitle() string {
	if o.FallbackTitle == "" {
		return DefaultFallbackTitle
	}
	return o.FallbackTitle
}

// nonsortCount computes the value of a "nonsorting character count" note for
// a nonsorting-characters string. Trailing whitespace does not count, and a
// following space is implied (hence +1) unless the string already ends in an
// apostrophe or hyphen.
func nonsortCount(nonsort string) int {
	trimmed := strings.TrimRight(nonsort, " \t")
	if trimmed == "" {
		return 0
	}
	n := len([]rune(trimmed))
	if strings.HasSuffix(trimmed, "'") || strings.HasSuffix(trimmed, "-") {
		return n
	}
	return n + 1
}

// dedupePrimaries enforces that at most one value keeps status "primary".
// Later claims are cleared and a single warning is emitted per list.
func dedupePrimaries(values []cocina.DescriptiveValue, kind string, n notify.Notifier) []cocina.DescriptiveValue {
	seen := false
	warned := false
	for i := range values {
		if values[i].Status != "primary" {
			continue
		}
		if !seen {
			seen = true
			continue
		}
		values[i].Status = ""
		if !warned {
			n.Warn("Multiple marked as primary", notify.Context{"type": kind})
			warned = true
		}
	}
	return values
}

// compactValues drops empty members: values with no shape at all contribute
// nothing to output.
func compactValues(values []cocina.DescriptiveValue) []cocina.DescriptiveValue {
	var out []cocina.DescriptiveValue
	for _, v := range values {
		if emptyValue(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func emptyValue(v cocina.DescriptiveValue) bool {
	return v.Value == "" && len(v.StructuredValue) == 0 &&
		len(v.GroupedValue) == 0 && len(v.ParallelValue) == 0 &&
		v.ValueAt == "" && v.Code == "" && v.URI == ""
}
