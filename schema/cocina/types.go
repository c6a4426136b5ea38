// Package cocina contains the canonical descriptive metadata model. Values
// are plain data, constructed once per mapping pass and not mutated after.
package cocina

// Source identifies the vocabulary or scheme a value or code comes from.
type Source struct {
	Code    string             `json:"code,omitempty"`
	URI     string             `json:"uri,omitempty"`
	Value   string             `json:"value,omitempty"`
	Version string             `json:"version,omitempty"`
	Note    []DescriptiveValue `json:"note,omitempty"`
}

// Standard describes a transliteration or description standard.
type Standard struct {
	Code  string  `json:"code,omitempty"`
	URI   string  `json:"uri,omitempty"`
	Value string  `json:"value,omitempty"`
	Source *Source `json:"source,omitempty"`
}

// ValueScript is the script a value is written in.
type ValueScript struct {
	Code   string  `json:"code,omitempty"`
	URI    string  `json:"uri,omitempty"`
	Value  string  `json:"value,omitempty"`
	Source *Source `json:"source,omitempty"`
}

// ValueLanguage is the language (and optionally script) of a single value.
type ValueLanguage struct {
	Code        string       `json:"code,omitempty"`
	URI         string       `json:"uri,omitempty"`
	Value       string       `json:"value,omitempty"`
	Source      *Source      `json:"source,omitempty"`
	ValueScript *ValueScript `json:"valueScript,omitempty"`
}

// DescriptiveValue is the universal value container. At most one of Value,
// StructuredValue, GroupedValue, ParallelValue and ValueAt is populated: a
// value has exactly one shape. Within a ParallelValue at most one member
// carries Status "primary".
type DescriptiveValue struct {
	Value           string             `json:"value,omitempty"`
	StructuredValue []DescriptiveValue `json:"structuredValue,omitempty"`
	GroupedValue    []DescriptiveValue `json:"groupedValue,omitempty"`
	ParallelValue   []DescriptiveValue `json:"parallelValue,omitempty"`
	Type            string             `json:"type,omitempty"`
	Status          string             `json:"status,omitempty"`
	Code            string             `json:"code,omitempty"`
	URI             string             `json:"uri,omitempty"`
	Standard        *Standard          `json:"standard,omitempty"`
	Encoding        *Source            `json:"encoding,omitempty"`
	Source          *Source            `json:"source,omitempty"`
	DisplayLabel    string             `json:"displayLabel,omitempty"`
	Qualifier       string             `json:"qualifier,omitempty"`
	Note            []DescriptiveValue `json:"note,omitempty"`
	ValueLanguage   *ValueLanguage     `json:"valueLanguage,omitempty"`
	Script          *ValueScript       `json:"script,omitempty"`
	Identifier      []DescriptiveValue `json:"identifier,omitempty"`
	AppliesTo       []DescriptiveValue `json:"appliesTo,omitempty"`
	ValueAt         string             `json:"valueAt,omitempty"`
}

// Contributor is a person, organization, family, event or conference related
// to the resource.
type Contributor struct {
	Name        []DescriptiveValue `json:"name,omitempty"`
	Type        string             `json:"type,omitempty"`
	Status      string             `json:"status,omitempty"`
	Role        []DescriptiveValue `json:"role,omitempty"`
	Identifier  []DescriptiveValue `json:"identifier,omitempty"`
	Affiliation []DescriptiveValue `json:"affiliation,omitempty"`
	Note        []DescriptiveValue `json:"note,omitempty"`
}

// Event is something that happened to the resource: publication, creation,
// distribution, manufacture, copyright notice, production, acquisition.
type Event struct {
	Type         string             `json:"type,omitempty"`
	DisplayLabel string             `json:"displayLabel,omitempty"`
	Date         []DescriptiveValue `json:"date,omitempty"`
	Location     []DescriptiveValue `json:"location,omitempty"`
	Contributor  []Contributor      `json:"contributor,omitempty"`
	Note         []DescriptiveValue `json:"note,omitempty"`
}

// Access holds location and access information for the resource.
type Access struct {
	URL              []DescriptiveValue `json:"url,omitempty"`
	PhysicalLocation []DescriptiveValue `json:"physicalLocation,omitempty"`
	DigitalLocation  []DescriptiveValue `json:"digitalLocation,omitempty"`
	AccessContact    []DescriptiveValue `json:"accessContact,omitempty"`
	Note             []DescriptiveValue `json:"note,omitempty"`
}

// RelatedResource is a full nested description of a related resource plus a
// controlled relation type ("has part", "part of", "in series", ...).
type RelatedResource struct {
	Type            string             `json:"type,omitempty"`
	Status          string             `json:"status,omitempty"`
	DisplayLabel    string             `json:"displayLabel,omitempty"`
	Title           []DescriptiveValue `json:"title,omitempty"`
	Contributor     []Contributor      `json:"contributor,omitempty"`
	Event           []Event            `json:"event,omitempty"`
	Form            []DescriptiveValue `json:"form,omitempty"`
	Language        []DescriptiveValue `json:"language,omitempty"`
	Note            []DescriptiveValue `json:"note,omitempty"`
	Identifier      []DescriptiveValue `json:"identifier,omitempty"`
	Subject         []DescriptiveValue `json:"subject,omitempty"`
	Access          *Access            `json:"access,omitempty"`
	RelatedResource []RelatedResource  `json:"relatedResource,omitempty"`
	Purl            string             `json:"purl,omitempty"`
}

// Description is the complete descriptive record. Field order matches the
// canonical key order of the serialized record; empty fields are omitted.
type Description struct {
	Title           []DescriptiveValue `json:"title,omitempty"`
	Contributor     []Contributor      `json:"contributor,omitempty"`
	Event           []Event            `json:"event,omitempty"`
	Subject         []DescriptiveValue `json:"subject,omitempty"`
	Form            []DescriptiveValue `json:"form,omitempty"`
	Language        []DescriptiveValue `json:"language,omitempty"`
	Note            []DescriptiveValue `json:"note,omitempty"`
	Identifier      []DescriptiveValue `json:"identifier,omitempty"`
	RelatedResource []RelatedResource  `json:"relatedResource,omitempty"`
	Access          *Access            `json:"access,omitempty"`
	Purl            string             `json:"purl,omitempty"`
}

// MainTitle returns the plain text of the first title, digging into
// structured and parallel shapes.
func (d *Description) MainTitle() string {
	if d == nil || len(d.Title) == 0 {
		return ""
	}
	return FlatTitle(d.Title[0])
}

// FlatTitle extracts display text from a title value of any shape.
func FlatTitle(t DescriptiveValue) string {
	switch {
	case t.Value != "":
		return t.Value
	case len(t.StructuredValue) > 0:
		for _, part := range t.StructuredValue {
			if part.Type == "main title" && part.Value != "" {
				return part.Value
			}
		}
		for _, part := range t.StructuredValue {
			if part.Value != "" {
				return part.Value
			}
		}
	case len(t.ParallelValue) > 0:
		for _, v := range t.ParallelValue {
			if v.Status == "primary" {
				return FlatTitle(v)
			}
		}
		return FlatTitle(t.ParallelValue[0])
	}
	return ""
}

// DOI returns the first DOI-typed identifier value, if any.
func (d *Description) DOI() string {
	if d == nil {
		return ""
	}
	for _, id := range d.Identifier {
		if id.Type == "DOI" || id.Type == "doi" {
			return id.Value
		}
	}
	return ""
}
