// Package marc reads binary MARC records and provides tag, indicator and
// subfield access. Field order follows document order; a tag may repeat.
package marc

import (
	"strings"
)

// Leader holds the varying bytes of the record leader. Length bytes and
// constants are omitted.
type Leader struct {
	Status        byte // 05
	Type          byte // 06
	BibLevel      byte // 07
	Control       byte // 08
	EncodingLevel byte // 17
	Form          byte // 18
	Multipart     byte // 19
}

// ControlField is a 00X field: a tag and a value, no indicators.
type ControlField struct {
	Tag   string
	Value string
}

// SubField is a single coded value within a data field.
type SubField struct {
	Code  string
	Value string
}

// DataField is a variable field with indicators and subfields.
type DataField struct {
	Tag        string
	Indicator1 string
	Indicator2 string
	SubFields  []SubField
}

// Record is one MARC record with fields in document order.
type Record struct {
	Leader  Leader
	Control []ControlField
	Fields  []DataField
}

// ControlValue returns the value of the first control field with the given
// tag, and whether one was present.
func (r *Record) ControlValue(tag string) (string, bool) {
	for _, cf := range r.Control {
		if cf.Tag == tag {
			return cf.Value, true
		}
	}
	return "", false
}

// DataField returns all data fields matching any of the given tags, in
// document order.
func (r *Record) DataField(tags ...string) []DataField {
	var out []DataField
	for _, f := range r.Fields {
		for _, t := range tags {
			if f.Tag == t {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// SubField returns all subfields matching any of the given codes, in field
// order.
func (f DataField) SubField(codes ...string) []SubField {
	var out []SubField
	for _, sf := range f.SubFields {
		for _, c := range codes {
			if sf.Code == c {
				out = append(out, sf)
				break
			}
		}
	}
	return out
}

// Value returns the first subfield value for the given code, or "".
func (f DataField) Value(code string) string {
	for _, sf := range f.SubFields {
		if sf.Code == code {
			return sf.Value
		}
	}
	return ""
}

// Values returns all subfield values for the given code.
func (f DataField) Values(code string) []string {
	var out []string
	for _, sf := range f.SubFields {
		if sf.Code == code {
			out = append(out, sf.Value)
		}
	}
	return out
}

// Linkage is a parsed $6 subfield, e.g. "880-01" or "880-02/$1". It points
// between a primary-script field and its alternate-script counterpart in
// field 880.
type Linkage struct {
	Tag         string // linked tag, e.g. "880" or "245"
	Occurrence  string // two digit occurrence number, "00" means unlinked
	Script      string // script identification code, optional
	Orientation string // field orientation, optional ("r" = right-to-left)
}

// Linkage parses the field's $6 subfield. The second return value is false
// when the field carries no linkage.
func (f DataField) Linkage() (Linkage, bool) {
	raw := f.Value("6")
	if raw == "" {
		return Linkage{}, false
	}
	var lk Linkage
	// occurrence part: TAG-NN, optionally /script/orientation
	head, rest, _ := strings.Cut(raw, "/")
	tag, occ, ok := strings.Cut(head, "-")
	if !ok {
		return Linkage{}, false
	}
	lk.Tag = tag
	lk.Occurrence = occ
	if rest != "" {
		script, orient, _ := strings.Cut(rest, "/")
		lk.Script = script
		lk.Orientation = orient
	}
	return lk, true
}

// Key returns the correlation key for matching a primary field with its 880
// counterpart: the occurrence number is shared between the pair.
func (lk Linkage) Key() string {
	return lk.Occurrence
}

// Linked reports whether the linkage points at an actual counterpart field.
// Occurrence "00" marks an 880 without a corresponding primary field.
func (lk Linkage) Linked() bool {
	return lk.Occurrence != "" && lk.Occurrence != "00"
}
