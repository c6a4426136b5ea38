package convert

import (
	"strings"
	"time"

	"github.com/dlss-labs/cocinakit/dateutil"
	"github.com/dlss-labs/cocinakit/schema/cocina"
	"github.com/dlss-labs/cocinakit/schema/datacite"
)

// dataciteTitleTypes maps canonical title types to DataCite title types.
var dataciteTitleTypes = map[string]string{
	"abbreviated": "AlternativeTitle",
	"alternative": "AlternativeTitle",
	"translated":  "TranslatedTitle",
}

// dataciteDateTypes maps canonical date types to DataCite date types.
var dataciteDateTypes = map[string]string{
	"publication":  "Issued",
	"creation":     "Created",
	"capture":      "Collected",
	"copyright":    "Copyrighted",
	"modification": "Updated",
	"validity":     "Valid",
}

// dataciteRelationTypes maps the controlled relation vocabulary to DataCite
// relation types. Relations outside the table default to "References".
var dataciteRelationTypes = map[string]string{
	"part of":              "IsPartOf",
	"has part":             "HasPart",
	"in series":            "IsPartOf",
	"references":           "References",
	"referenced by":        "IsReferencedBy",
	"has original version": "IsVersionOf",
	"has other version":    "IsVersionOf",
	"has other format":     "IsVariantFormOf",
	"preceded by":          "Continues",
	"succeeded by":         "IsContinuedBy",
	"review of":            "Reviews",
}

// dataciteResourceTypes maps resource type values to resourceTypeGeneral.
var dataciteResourceTypes = map[string]string{
	"text":                     "Text",
	"cartographic":             "Image",
	"notated music":            "Text",
	"sound recording":          "Sound",
	"moving image":             "Audiovisual",
	"still image":              "Image",
	"three dimensional object": "PhysicalObject",
	"software, multimedia":     "Software",
	"mixed material":           "Collection",
}

// CocinaToDataCite assembles the attributes for a DataCite DOI request from
// the canonical description. Contributors partition on their marcrelator
// role: funders degrade to a funding reference, publishers become DataCite
// contributors, everyone else is a creator. A description without a DOI (in
// itself or in opts) is skipped.
func CocinaToDataCite(desc *cocina.Description, opts Options) (*datacite.Payload, error) {
	if desc == nil {
		return nil, nil
	}
	doi := opts.DOI
	if doi == "" {
		doi = desc.DOI()
	}
	if doi == "" {
		return nil, ErrSkipNoDOI
	}

	attrs := datacite.Attributes{
		Event:           "publish",
		DOI:             doi,
		URL:             desc.Purl,
		PublicationYear: publicationYear(opts, time.Now()),
		Identifiers: []datacite.Identifier{
			{Identifier: doi, IdentifierType: "DOI"},
		},
		Creators:          []datacite.Contributor{},
		Contributors:      []datacite.Contributor{},
		FundingReferences: []datacite.FundingReference{},
	}

	for _, t := range desc.Title {
		title := datacite.Title{Title: cocina.FlatTitle(t)}
		if title.Title == "" {
			continue
		}
		title.TitleType = dataciteTitleTypes[t.Type]
		attrs.Titles = append(attrs.Titles, title)
	}

	for _, c := range desc.Contributor {
		switch contributorRole(c) {
		case "funder":
			attrs.FundingReferences = append(attrs.FundingReferences, datacite.FundingReference{
				FunderName: flatName(c),
			})
		case "publisher":
			dc := dataciteContributor(c)
			dc.ContributorType = "Other"
			attrs.Contributors = append(attrs.Contributors, dc)
			if attrs.Publisher == "" {
				attrs.Publisher = flatName(c)
			}
		default:
			attrs.Creators = append(attrs.Creators, dataciteContributor(c))
		}
	}

	for _, ev := range desc.Event {
		for _, c := range ev.Contributor {
			if attrs.Publisher == "" && contributorRole(c) == "publisher" {
				attrs.Publisher = flatName(c)
			}
		}
		for _, d := range ev.Date {
			value := d.Value
			if value == "" && len(d.StructuredValue) > 0 {
				value = d.StructuredValue[0].Value
			}
			if value == "" {
				continue
			}
			dateType, ok := dataciteDateTypes[d.Type]
			if !ok {
				dateType, ok = dataciteDateTypes[ev.Type]
			}
			if !ok {
				continue
			}
			attrs.Dates = append(attrs.Dates, datacite.Date{Date: value, DateType: dateType})
		}
	}
	if opts.EmbargoReleaseDate != "" {
		if t, err := dateutil.Parse(opts.EmbargoReleaseDate); err == nil {
			attrs.Dates = append(attrs.Dates, datacite.Date{
				Date:     dateutil.ISODate(t),
				DateType: "Available",
			})
		}
	}

	for _, s := range desc.Subject {
		subject := datacite.Subject{Subject: flatValue(s), ValueURI: s.URI}
		if subject.Subject == "" {
			continue
		}
		if s.Source != nil {
			subject.SubjectScheme = s.Source.Code
		}
		attrs.Subjects = append(attrs.Subjects, subject)
	}

	for _, l := range desc.Language {
		if l.Code != "" {
			attrs.Language = l.Code
			break
		}
	}

	for _, f := range desc.Form {
		if f.Type != "resource type" {
			continue
		}
		if general, ok := dataciteResourceTypes[f.Value]; ok {
			attrs.Types = &datacite.Types{
				ResourceTypeGeneral: general,
				ResourceType:        f.Value,
			}
			break
		}
	}

	for _, n := range desc.Note {
		switch n.Type {
		case "abstract":
			attrs.Descriptions = append(attrs.Descriptions, datacite.Description{
				Description:     n.Value,
				DescriptionType: "Abstract",
			})
		case "table of contents":
			attrs.Descriptions = append(attrs.Descriptions, datacite.Description{
				Description:     n.Value,
				DescriptionType: "TableOfContents",
			})
		}
	}

	for _, id := range desc.Identifier {
		if id.Value == "" || id.Value == doi || id.Status == "invalid" {
			continue
		}
		idType := id.Type
		if idType == "" {
			idType = "Other"
		}
		attrs.AlternateIdentifiers = append(attrs.AlternateIdentifiers, datacite.AlternateIdentifier{
			AlternateIdentifier:     id.Value,
			AlternateIdentifierType: idType,
		})
	}

	for _, rr := range desc.RelatedResource {
		relation := dataciteRelationTypes[rr.Type]
		if relation == "" {
			relation = "References"
		}
		if ri, ok := relatedIdentifier(rr, relation); ok {
			attrs.RelatedIdentifiers = append(attrs.RelatedIdentifiers, ri)
			continue
		}
		if item, ok := relatedItem(rr, relation); ok {
			attrs.RelatedItems = append(attrs.RelatedItems, item)
		}
	}

	return &datacite.Payload{
		Data: datacite.Data{Type: "dois", Attributes: attrs},
	}, nil
}

// publicationYear is the embargo release year when an embargo is set, else
// the year of the reference time.
func publicationYear(opts Options, ref time.Time) int {
	if opts.EmbargoReleaseDate != "" {
		if t, err := dateutil.Parse(opts.EmbargoReleaseDate); err == nil {
			return t.Year()
		}
	}
	return ref.Year()
}

// flatValue joins a value of any shape into display text, subdivisions
// separated by commas.
func flatValue(v cocina.DescriptiveValue) string {
	if v.Value != "" {
		return v.Value
	}
	var parts []string
	for _, p := range v.StructuredValue {
		if p.Value != "" {
			parts = append(parts, p.Value)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	if len(v.ParallelValue) > 0 {
		return flatValue(v.ParallelValue[0])
	}
	return ""
}

// contributorRole returns the marcrelator role of a contributor, or "".
func contributorRole(c cocina.Contributor) string {
	for _, role := range c.Role {
		if role.Source != nil && role.Source.Code != marcRelatorCode {
			continue
		}
		switch {
		case role.Code == "fnd" || strings.EqualFold(role.Value, "funder"):
			return "funder"
		case role.Code == "pbl" || strings.EqualFold(role.Value, "publisher"):
			return "publisher"
		}
	}
	return ""
}

func dataciteContributor(c cocina.Contributor) datacite.Contributor {
	dc := datacite.Contributor{Name: flatName(c)}
	switch c.Type {
	case "person":
		dc.NameType = "Personal"
	case "organization", "conference", "family":
		dc.NameType = "Organizational"
	}
	if len(c.Name) > 0 {
		for _, part := range c.Name[0].StructuredValue {
			switch part.Type {
			case "forename":
				dc.GivenName = part.Value
			case "surname":
				dc.FamilyName = part.Value
			}
		}
	}
	for _, aff := range c.Affiliation {
		if aff.Value != "" {
			dc.Affiliation = append(dc.Affiliation, datacite.Affiliation{Name: aff.Value})
		}
	}
	for _, id := range c.Identifier {
		if id.Value == "" {
			continue
		}
		scheme := id.Type
		if scheme == "" && id.Source != nil {
			scheme = id.Source.Code
		}
		dc.NameIdentifiers = append(dc.NameIdentifiers, datacite.NameIdentifier{
			NameIdentifier:       id.Value,
			NameIdentifierScheme: scheme,
		})
	}
	return dc
}

// relatedIdentifier resolves a related resource to an identifier link: DOI
// first, then any url.
func relatedIdentifier(rr cocina.RelatedResource, relation string) (datacite.RelatedIdentifier, bool) {
	for _, id := range rr.Identifier {
		if id.Type == "DOI" || id.Type == "doi" {
			return datacite.RelatedIdentifier{
				RelatedIdentifier:     id.Value,
				RelatedIdentifierType: "DOI",
				RelationType:          relation,
			}, true
		}
	}
	var url string
	switch {
	case rr.Purl != "":
		url = rr.Purl
	case rr.Access != nil && len(rr.Access.URL) > 0:
		url = rr.Access.URL[0].Value
	}
	if url == "" {
		return datacite.RelatedIdentifier{}, false
	}
	return datacite.RelatedIdentifier{
		RelatedIdentifier:     url,
		RelatedIdentifierType: "URL",
		RelationType:          relation,
	}, true
}

// relatedItem degrades a related resource without a resolvable identifier to
// a title-only related item.
func relatedItem(rr cocina.RelatedResource, relation string) (datacite.RelatedItem, bool) {
	var item datacite.RelatedItem
	item.RelationType = relation
	for _, t := range rr.Title {
		if flat := cocina.FlatTitle(t); flat != "" {
			item.Titles = append(item.Titles, datacite.RelatedItemTitle{Title: flat})
		}
	}
	if len(item.Titles) == 0 {
		return item, false
	}
	return item, true
}
