// Package datacite holds the request payload structs for the DataCite REST
// API (PUT /dois/{id}). Only the attributes the conversion layer produces
// are modeled; see https://support.datacite.org/docs/api-create-dois
package datacite

// Payload is the top-level request body.
type Payload struct {
	Data Data `json:"data"`
}

// Data wraps the attributes with the JSON:API type tag.
type Data struct {
	Type       string     `json:"type"` // always "dois"
	Attributes Attributes `json:"attributes"`
}

// Attributes is the metadata submitted for one DOI.
type Attributes struct {
	Event                string                `json:"event,omitempty"` // publish | register | hide
	DOI                  string                `json:"doi,omitempty"`
	URL                  string                `json:"url,omitempty"`
	Prefix               string                `json:"prefix,omitempty"`
	Identifiers          []Identifier          `json:"identifiers,omitempty"`
	AlternateIdentifiers []AlternateIdentifier `json:"alternateIdentifiers,omitempty"`
	Creators             []Contributor         `json:"creators"`
	Contributors         []Contributor         `json:"contributors"`
	Titles               []Title               `json:"titles,omitempty"`
	Publisher            string                `json:"publisher,omitempty"`
	PublicationYear      int                   `json:"publicationYear,omitempty"`
	Subjects             []Subject             `json:"subjects,omitempty"`
	Dates                []Date                `json:"dates,omitempty"`
	Language             string                `json:"language,omitempty"`
	Types                *Types                `json:"types,omitempty"`
	RelatedIdentifiers   []RelatedIdentifier   `json:"relatedIdentifiers,omitempty"`
	RelatedItems         []RelatedItem         `json:"relatedItems,omitempty"`
	RightsList           []Rights              `json:"rightsList,omitempty"`
	Descriptions         []Description         `json:"descriptions,omitempty"`
	FundingReferences    []FundingReference    `json:"fundingReferences"`
}

// Identifier is an identifier of the resource itself.
type Identifier struct {
	Identifier     string `json:"identifier"`
	IdentifierType string `json:"identifierType"`
}

// AlternateIdentifier is a non-DOI identifier of the resource.
type AlternateIdentifier struct {
	AlternateIdentifier     string `json:"alternateIdentifier"`
	AlternateIdentifierType string `json:"alternateIdentifierType"`
}

// Affiliation of a creator or contributor.
type Affiliation struct {
	Name string `json:"name"`
}

// NameIdentifier identifies a creator or contributor (e.g. ORCID).
type NameIdentifier struct {
	NameIdentifier       string `json:"nameIdentifier"`
	NameIdentifierScheme string `json:"nameIdentifierScheme"`
	SchemeURI            string `json:"schemeUri,omitempty"`
}

// Contributor is a creator or contributor entry.
type Contributor struct {
	Name            string           `json:"name"`
	NameType        string           `json:"nameType,omitempty"` // Personal | Organizational
	GivenName       string           `json:"givenName,omitempty"`
	FamilyName      string           `json:"familyName,omitempty"`
	ContributorType string           `json:"contributorType,omitempty"` // contributors only
	Affiliation     []Affiliation    `json:"affiliation,omitempty"`
	NameIdentifiers []NameIdentifier `json:"nameIdentifiers,omitempty"`
}

// Title with an optional type (Subtitle, AlternativeTitle, TranslatedTitle).
type Title struct {
	Title     string `json:"title"`
	TitleType string `json:"titleType,omitempty"`
	Lang      string `json:"lang,omitempty"`
}

// Subject term.
type Subject struct {
	Subject       string `json:"subject"`
	SubjectScheme string `json:"subjectScheme,omitempty"`
	ValueURI      string `json:"valueUri,omitempty"`
}

// Date with a DataCite date type.
type Date struct {
	Date            string `json:"date"`
	DateType        string `json:"dateType"` // Issued | Created | Copyrighted | ...
	DateInformation string `json:"dateInformation,omitempty"`
}

// Types carries the resource type in several vocabularies.
type Types struct {
	ResourceTypeGeneral string `json:"resourceTypeGeneral,omitempty"`
	ResourceType        string `json:"resourceType,omitempty"`
}

// RelatedIdentifier links to a related resource by identifier.
type RelatedIdentifier struct {
	RelatedIdentifier     string `json:"relatedIdentifier"`
	RelatedIdentifierType string `json:"relatedIdentifierType"` // DOI | URL | ...
	RelationType          string `json:"relationType"`
}

// RelatedItemIdentifier identifies a related item.
type RelatedItemIdentifier struct {
	RelatedItemIdentifier     string `json:"relatedItemIdentifier"`
	RelatedItemIdentifierType string `json:"relatedItemIdentifierType"`
}

// RelatedItemTitle is a title of a related item.
type RelatedItemTitle struct {
	Title string `json:"title"`
}

// RelatedItem describes a related resource without a resolvable identifier.
type RelatedItem struct {
	RelatedItemType       string                 `json:"relatedItemType,omitempty"`
	RelationType          string                 `json:"relationType"`
	RelatedItemIdentifier *RelatedItemIdentifier `json:"relatedItemIdentifier,omitempty"`
	Titles                []RelatedItemTitle     `json:"titles,omitempty"`
	PublicationYear       int                    `json:"publicationYear,omitempty"`
	Publisher             string                 `json:"publisher,omitempty"`
}

// Rights statement.
type Rights struct {
	Rights    string `json:"rights,omitempty"`
	RightsURI string `json:"rightsUri,omitempty"`
}

// Description with a DataCite description type.
type Description struct {
	Description     string `json:"description"`
	DescriptionType string `json:"descriptionType"` // Abstract | TableOfContents | Other
}

// FundingReference names a funder, degraded to funderName only when no
// funder identifier is known.
type FundingReference struct {
	FunderName           string `json:"funderName"`
	FunderIdentifier     string `json:"funderIdentifier,omitempty"`
	FunderIdentifierType string `json:"funderIdentifierType,omitempty"`
	AwardNumber          string `json:"awardNumber,omitempty"`
}
