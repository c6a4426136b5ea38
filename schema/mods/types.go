// Package mods holds element structs for MODS 3.x documents. The structs
// carry the linkage attributes (altRepGroup, nameTitleGroup, usage) that the
// conversion layer needs for cross-field correlation.
package mods

import "encoding/xml"

// Namespace constants for serialized documents.
const (
	Namespace      = "http://www.loc.gov/mods/v3"
	XSINamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	SchemaLocation = "http://www.loc.gov/mods/v3 http://www.loc.gov/standards/mods/v3/mods-3-7.xsd"
	Version        = "3.7"
)

// Mods is a single MODS record.
type Mods struct {
	XMLName             xml.Name              `xml:"mods"`
	Xmlns               string                `xml:"xmlns,attr,omitempty"`
	XmlnsXsi            string                `xml:"xmlns:xsi,attr,omitempty"`
	XsiSchemaLocation   string                `xml:"xsi:schemaLocation,attr,omitempty"`
	ModsVersion         string                `xml:"version,attr,omitempty"`
	TitleInfo           []TitleInfo           `xml:"titleInfo"`
	Name                []Name                `xml:"name"`
	TypeOfResource      []TypeOfResource      `xml:"typeOfResource"`
	Genre               []Genre               `xml:"genre"`
	OriginInfo          []OriginInfo          `xml:"originInfo"`
	Language            []Language            `xml:"language"`
	PhysicalDescription []PhysicalDescription `xml:"physicalDescription"`
	Abstract            []Abstract            `xml:"abstract"`
	TableOfContents     []TableOfContents     `xml:"tableOfContents"`
	TargetAudience      []TargetAudience      `xml:"targetAudience"`
	Note                []Note                `xml:"note"`
	Subject             []Subject             `xml:"subject"`
	Identifier          []Identifier          `xml:"identifier"`
	Location            []Location            `xml:"location"`
	RelatedItem         []RelatedItem         `xml:"relatedItem"`
}

// Collection wraps multiple records, as in harvested modsCollection files.
type Collection struct {
	XMLName xml.Name `xml:"modsCollection"`
	Mods    []Mods   `xml:"mods"`
}

// TitleInfo groups the parts of one title.
type TitleInfo struct {
	Type           string `xml:"type,attr,omitempty"`
	OtherType      string `xml:"otherType,attr,omitempty"`
	Usage          string `xml:"usage,attr,omitempty"`
	Supplied       string `xml:"supplied,attr,omitempty"`
	AltRepGroup    string `xml:"altRepGroup,attr,omitempty"`
	NameTitleGroup string `xml:"nameTitleGroup,attr,omitempty"`
	DisplayLabel   string `xml:"displayLabel,attr,omitempty"`
	Lang           string `xml:"lang,attr,omitempty"`
	Script         string `xml:"script,attr,omitempty"`
	Transliteration string `xml:"transliteration,attr,omitempty"`
	Authority      string `xml:"authority,attr,omitempty"`
	AuthorityURI   string `xml:"authorityURI,attr,omitempty"`
	ValueURI       string `xml:"valueURI,attr,omitempty"`
	Title          string `xml:"title,omitempty"`
	SubTitle       string `xml:"subTitle,omitempty"`
	PartNumber     string `xml:"partNumber,omitempty"`
	PartName       string `xml:"partName,omitempty"`
	NonSort        string `xml:"nonSort,omitempty"`
}

// Empty reports whether the titleInfo carries neither text nor attributes.
func (t TitleInfo) Empty() bool {
	return t.Title == "" && t.SubTitle == "" && t.PartNumber == "" &&
		t.PartName == "" && t.NonSort == "" && t.Type == "" &&
		t.Usage == "" && t.AltRepGroup == "" && t.NameTitleGroup == "" &&
		t.ValueURI == ""
}

// Name describes a contributor.
type Name struct {
	Type           string      `xml:"type,attr,omitempty"`
	Usage          string      `xml:"usage,attr,omitempty"`
	AltRepGroup    string      `xml:"altRepGroup,attr,omitempty"`
	NameTitleGroup string      `xml:"nameTitleGroup,attr,omitempty"`
	DisplayLabel   string      `xml:"displayLabel,attr,omitempty"`
	Lang           string      `xml:"lang,attr,omitempty"`
	Script         string      `xml:"script,attr,omitempty"`
	Authority      string      `xml:"authority,attr,omitempty"`
	AuthorityURI   string      `xml:"authorityURI,attr,omitempty"`
	ValueURI       string      `xml:"valueURI,attr,omitempty"`
	NamePart       []NamePart  `xml:"namePart"`
	DisplayForm    string      `xml:"displayForm,omitempty"`
	Affiliation    []string    `xml:"affiliation"`
	Role           []Role      `xml:"role"`
	NameIdentifier []Identifier `xml:"nameIdentifier"`
	Description    string      `xml:"description,omitempty"`
}

// NamePart is one piece of a name, optionally typed (given, family, date,
// termsOfAddress).
type NamePart struct {
	Type  string `xml:"type,attr,omitempty"`
	Value string `xml:",chardata"`
}

// Role holds one or more role terms for a name.
type Role struct {
	RoleTerm []RoleTerm `xml:"roleTerm"`
}

// RoleTerm is a role as text or code.
type RoleTerm struct {
	Type         string `xml:"type,attr,omitempty"` // text | code
	Authority    string `xml:"authority,attr,omitempty"`
	AuthorityURI string `xml:"authorityURI,attr,omitempty"`
	ValueURI     string `xml:"valueURI,attr,omitempty"`
	Value        string `xml:",chardata"`
}

// TypeOfResource is the MODS resource type.
type TypeOfResource struct {
	Usage      string `xml:"usage,attr,omitempty"`
	Collection string `xml:"collection,attr,omitempty"`
	Value      string `xml:",chardata"`
}

// Genre is a genre term.
type Genre struct {
	Type         string `xml:"type,attr,omitempty"`
	Usage        string `xml:"usage,attr,omitempty"`
	DisplayLabel string `xml:"displayLabel,attr,omitempty"`
	Authority    string `xml:"authority,attr,omitempty"`
	AuthorityURI string `xml:"authorityURI,attr,omitempty"`
	ValueURI     string `xml:"valueURI,attr,omitempty"`
	Value        string `xml:",chardata"`
}

// OriginInfo groups publication and related event data.
type OriginInfo struct {
	EventType     string      `xml:"eventType,attr,omitempty"`
	DisplayLabel  string      `xml:"displayLabel,attr,omitempty"`
	AltRepGroup   string      `xml:"altRepGroup,attr,omitempty"`
	Lang          string      `xml:"lang,attr,omitempty"`
	Script        string      `xml:"script,attr,omitempty"`
	Place         []Place     `xml:"place"`
	Publisher     []Publisher `xml:"publisher"`
	DateIssued    []DateValue `xml:"dateIssued"`
	DateCreated   []DateValue `xml:"dateCreated"`
	DateCaptured  []DateValue `xml:"dateCaptured"`
	DateValid     []DateValue `xml:"dateValid"`
	DateModified  []DateValue `xml:"dateModified"`
	CopyrightDate []DateValue `xml:"copyrightDate"`
	DateOther     []DateValue `xml:"dateOther"`
	Edition       []string    `xml:"edition"`
	Issuance      []string    `xml:"issuance"`
	Frequency     []Genre     `xml:"frequency"`
}

// Place is where an event took place, as text or code.
type Place struct {
	Supplied  string      `xml:"supplied,attr,omitempty"`
	PlaceTerm []PlaceTerm `xml:"placeTerm"`
}

// PlaceTerm is a place as text or code.
type PlaceTerm struct {
	Type         string `xml:"type,attr,omitempty"` // text | code
	Authority    string `xml:"authority,attr,omitempty"`
	AuthorityURI string `xml:"authorityURI,attr,omitempty"`
	ValueURI     string `xml:"valueURI,attr,omitempty"`
	Value        string `xml:",chardata"`
}

// Publisher is the publisher name within originInfo.
type Publisher struct {
	Supplied string `xml:"supplied,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// DateValue is any of the MODS date subelements.
type DateValue struct {
	Encoding  string `xml:"encoding,attr,omitempty"`
	KeyDate   string `xml:"keyDate,attr,omitempty"`
	Point     string `xml:"point,attr,omitempty"` // start | end
	Qualifier string `xml:"qualifier,attr,omitempty"`
	Type      string `xml:"type,attr,omitempty"` // dateOther only
	Value     string `xml:",chardata"`
}

// Language groups language and script terms.
type Language struct {
	ObjectPart   string         `xml:"objectPart,attr,omitempty"`
	Usage        string         `xml:"usage,attr,omitempty"`
	DisplayLabel string         `xml:"displayLabel,attr,omitempty"`
	AltRepGroup  string         `xml:"altRepGroup,attr,omitempty"`
	LanguageTerm []LanguageTerm `xml:"languageTerm"`
	ScriptTerm   []LanguageTerm `xml:"scriptTerm"`
}

// LanguageTerm is a language or script as text or code.
type LanguageTerm struct {
	Type         string `xml:"type,attr,omitempty"` // text | code
	Authority    string `xml:"authority,attr,omitempty"`
	AuthorityURI string `xml:"authorityURI,attr,omitempty"`
	ValueURI     string `xml:"valueURI,attr,omitempty"`
	Value        string `xml:",chardata"`
}

// PhysicalDescription groups form, extent and related notes.
type PhysicalDescription struct {
	DisplayLabel        string   `xml:"displayLabel,attr,omitempty"`
	Form                []Genre  `xml:"form"`
	Extent              []Extent `xml:"extent"`
	ReformattingQuality []string `xml:"reformattingQuality"`
	InternetMediaType   []string `xml:"internetMediaType"`
	DigitalOrigin       string   `xml:"digitalOrigin,omitempty"`
	Note                []Note   `xml:"note"`
}

// Extent is a statement of physical extent.
type Extent struct {
	Unit  string `xml:"unit,attr,omitempty"`
	Value string `xml:",chardata"`
}

// Abstract is a summary of the resource content.
type Abstract struct {
	Type         string `xml:"type,attr,omitempty"`
	DisplayLabel string `xml:"displayLabel,attr,omitempty"`
	Lang         string `xml:"lang,attr,omitempty"`
	Script       string `xml:"script,attr,omitempty"`
	AltRepGroup  string `xml:"altRepGroup,attr,omitempty"`
	ValueAt      string `xml:"xlink:href,attr,omitempty"`
	Value        string `xml:",chardata"`
}

// TableOfContents lists the contents of the resource.
type TableOfContents struct {
	DisplayLabel string `xml:"displayLabel,attr,omitempty"`
	Value        string `xml:",chardata"`
}

// TargetAudience states the intended audience.
type TargetAudience struct {
	Authority string `xml:"authority,attr,omitempty"`
	Value     string `xml:",chardata"`
}

// Note is a general note.
type Note struct {
	Type         string `xml:"type,attr,omitempty"`
	DisplayLabel string `xml:"displayLabel,attr,omitempty"`
	Lang         string `xml:"lang,attr,omitempty"`
	Script       string `xml:"script,attr,omitempty"`
	AltRepGroup  string `xml:"altRepGroup,attr,omitempty"`
	Value        string `xml:",chardata"`
}

// SubjectTerm is one subdivision of a subject heading.
type SubjectTerm struct {
	Authority    string `xml:"authority,attr,omitempty"`
	AuthorityURI string `xml:"authorityURI,attr,omitempty"`
	ValueURI     string `xml:"valueURI,attr,omitempty"`
	Encoding     string `xml:"encoding,attr,omitempty"`
	Point        string `xml:"point,attr,omitempty"`
	Value        string `xml:",chardata"`
}

// HierarchicalGeographic nests geographic subdivisions from broad to narrow.
type HierarchicalGeographic struct {
	Continent string `xml:"continent,omitempty"`
	Country   string `xml:"country,omitempty"`
	Region    string `xml:"region,omitempty"`
	State     string `xml:"state,omitempty"`
	County    string `xml:"county,omitempty"`
	City      string `xml:"city,omitempty"`
	Area      string `xml:"area,omitempty"`
}

// Cartographics holds map data.
type Cartographics struct {
	Scale       string `xml:"scale,omitempty"`
	Projection  string `xml:"projection,omitempty"`
	Coordinates string `xml:"coordinates,omitempty"`
}

// Identifier is an identifier with an optional type.
type Identifier struct {
	Type         string `xml:"type,attr,omitempty"`
	TypeURI      string `xml:"typeURI,attr,omitempty"`
	DisplayLabel string `xml:"displayLabel,attr,omitempty"`
	Invalid      string `xml:"invalid,attr,omitempty"`
	AltRepGroup  string `xml:"altRepGroup,attr,omitempty"`
	Value        string `xml:",chardata"`
}

// Location groups physical and electronic locations.
type Location struct {
	PhysicalLocation []PhysicalLocation `xml:"physicalLocation"`
	ShelfLocator     []string           `xml:"shelfLocator"`
	URL              []URL              `xml:"url"`
	HoldingSimple    string             `xml:"holdingSimple,omitempty"`
}

// PhysicalLocation is a repository or holding institution.
type PhysicalLocation struct {
	Type         string `xml:"type,attr,omitempty"`
	Authority    string `xml:"authority,attr,omitempty"`
	AuthorityURI string `xml:"authorityURI,attr,omitempty"`
	ValueURI     string `xml:"valueURI,attr,omitempty"`
	DisplayLabel string `xml:"displayLabel,attr,omitempty"`
	Value        string `xml:",chardata"`
}

// URL is an electronic location.
type URL struct {
	Usage        string `xml:"usage,attr,omitempty"` // primary display
	DisplayLabel string `xml:"displayLabel,attr,omitempty"`
	Note         string `xml:"note,attr,omitempty"`
	Value        string `xml:",chardata"`
}

// RelatedItem is a nested description of a related resource.
type RelatedItem struct {
	Type                string                `xml:"type,attr,omitempty"`
	OtherType           string                `xml:"otherType,attr,omitempty"`
	OtherTypeAuth       string                `xml:"otherTypeAuth,attr,omitempty"`
	DisplayLabel        string                `xml:"displayLabel,attr,omitempty"`
	TitleInfo           []TitleInfo           `xml:"titleInfo"`
	Name                []Name                `xml:"name"`
	TypeOfResource      []TypeOfResource      `xml:"typeOfResource"`
	Genre               []Genre               `xml:"genre"`
	OriginInfo          []OriginInfo          `xml:"originInfo"`
	Language            []Language            `xml:"language"`
	PhysicalDescription []PhysicalDescription `xml:"physicalDescription"`
	Abstract            []Abstract            `xml:"abstract"`
	Note                []Note                `xml:"note"`
	Subject             []Subject             `xml:"subject"`
	Identifier          []Identifier          `xml:"identifier"`
	Location            []Location            `xml:"location"`
	Part                []Part                `xml:"part"`
	RelatedItem         []*RelatedItem        `xml:"relatedItem"`
}

// Part holds structured part designations of a related item.
type Part struct {
	Type   string       `xml:"type,attr,omitempty"`
	Detail []PartDetail `xml:"detail"`
	Extent []PartExtent `xml:"extent"`
	Date   []DateValue  `xml:"date"`
	Text   []Note       `xml:"text"`
}

// PartDetail is a typed caption/number/title group within a part.
type PartDetail struct {
	Type    string `xml:"type,attr,omitempty"`
	Number  string `xml:"number,omitempty"`
	Caption string `xml:"caption,omitempty"`
	Title   string `xml:"title,omitempty"`
}

// PartExtent is a page or unit range within a part.
type PartExtent struct {
	Unit  string `xml:"unit,attr,omitempty"`
	Start string `xml:"start,omitempty"`
	End   string `xml:"end,omitempty"`
	Total string `xml:"total,omitempty"`
	List  string `xml:"list,omitempty"`
}
