package convert

import (
	"reflect"
	"strings"

	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
	"github.com/dlss-labs/cocinakit/schema/mods"
)

// nameTypes maps MODS name type attribute values to canonical contributor
// types.
var nameTypes = map[string]string{
	"personal":   "person",
	"corporate":  "organization",
	"family":     "family",
	"conference": "conference",
}

// namePartTypes maps MODS namePart type attributes to structured name part
// types.
var namePartTypes = map[string]string{
	"given":          "forename",
	"family":         "surname",
	"date":           "life dates",
	"termsOfAddress": "term of address",
}

// mapModsNames maps name elements to contributors, with altRepGroup collapse
// and exact-duplicate merging.
func mapModsNames(names []mods.Name, n notify.Notifier) []groupedContributor {
	var entries []groupedContributor
	for _, name := range names {
		contributor, ok := buildContributor(name, n)
		if !ok {
			continue
		}
		entries = append(entries, groupedContributor{
			altRepGroup:    name.AltRepGroup,
			nameTitleGroup: name.NameTitleGroup,
			contributor:    contributor,
		})
	}
	entries = mergeDuplicateNames(entries, n)
	entries = collapseContributorAltRep(entries, n)
	entries = dedupePrimaryContributors(entries, n)
	return entries
}

func buildContributor(name mods.Name, n notify.Notifier) (cocina.Contributor, bool) {
	var c cocina.Contributor
	c.Type = contributorType(name.Type, n)
	if name.Usage == "primary" {
		c.Status = "primary"
	}
	nameValue, ok := buildNameValue(name)
	if !ok {
		return c, false
	}
	c.Name = []cocina.DescriptiveValue{nameValue}
	if name.DisplayForm != "" {
		c.Name = append(c.Name, cocina.DescriptiveValue{
			Value: name.DisplayForm,
			Type:  "display",
		})
	}
	for _, role := range name.Role {
		if rv, ok := buildRole(role); ok {
			c.Role = append(c.Role, rv)
		}
	}
	for _, aff := range name.Affiliation {
		if aff != "" {
			c.Affiliation = append(c.Affiliation, cocina.DescriptiveValue{Value: aff})
		}
	}
	for _, id := range name.NameIdentifier {
		if id.Value == "" {
			continue
		}
		ident := cocina.DescriptiveValue{Value: id.Value}
		if id.Type != "" {
			ident.Type = id.Type
			ident.Source = &cocina.Source{Code: id.Type}
		}
		c.Identifier = append(c.Identifier, ident)
	}
	if name.Description != "" {
		c.Note = append(c.Note, cocina.DescriptiveValue{
			Value: name.Description,
			Type:  "description",
		})
	}
	return c, true
}

// contributorType resolves the name type attribute. Capitalized legacy
// values are downcased with a warning; unrecognized values are dropped with
// a warning and the contributor stays untyped.
func contributorType(attr string, n notify.Notifier) string {
	if attr == "" {
		return ""
	}
	if t, ok := nameTypes[attr]; ok {
		return t
	}
	lower := strings.ToLower(attr)
	if t, ok := nameTypes[lower]; ok {
		n.Warn("Name type incorrectly capitalized", notify.Context{"type": attr})
		return t
	}
	n.Warn("Name type unrecognized", notify.Context{"type": attr})
	return ""
}

// buildNameValue assembles the name value: a single untyped namePart stays
// flat, typed parts become a structured value.
func buildNameValue(name mods.Name) (cocina.DescriptiveValue, bool) {
	var (
		value cocina.DescriptiveValue
		parts []cocina.DescriptiveValue
		flat  []string
	)
	for _, np := range name.NamePart {
		if np.Value == "" {
			continue
		}
		if t, ok := namePartTypes[np.Type]; ok {
			parts = append(parts, cocina.DescriptiveValue{Value: np.Value, Type: t})
		} else {
			flat = append(flat, np.Value)
		}
	}
	switch {
	case len(parts) > 0:
		// untyped parts join ahead of typed ones
		if len(flat) > 0 {
			parts = append([]cocina.DescriptiveValue{{Value: strings.Join(flat, ", ")}}, parts...)
		}
		value.StructuredValue = parts
	case len(flat) == 1:
		value.Value = flat[0]
	case len(flat) > 1:
		value.Value = strings.Join(flat, ", ")
	default:
		return value, false
	}
	if name.ValueURI != "" {
		value.URI = name.ValueURI
	}
	if name.Authority != "" {
		value.Source = &cocina.Source{Code: name.Authority, URI: name.AuthorityURI}
	}
	if vl := valueLanguage(name.Lang, name.Script); vl != nil {
		value.ValueLanguage = vl
	}
	return value, true
}

// buildRole maps one role element. Text terms pass through; code terms go
// through the marcrelator table. Unknown relator codes are ignored without
// notification.
func buildRole(role mods.Role) (cocina.DescriptiveValue, bool) {
	var rv cocina.DescriptiveValue
	for _, term := range role.RoleTerm {
		v := strings.TrimSpace(term.Value)
		if v == "" {
			continue
		}
		switch term.Type {
		case "code":
			if term.Authority == marcRelatorCode || term.Authority == "" {
				display, ok := marcRelator[v]
				if !ok {
					continue
				}
				rv.Code = v
				if rv.Value == "" {
					rv.Value = display
				}
				rv.Source = &cocina.Source{Code: marcRelatorCode, URI: marcRelatorURI}
			}
		default: // text or untyped
			rv.Value = v
			if term.Authority != "" {
				rv.Source = &cocina.Source{Code: term.Authority, URI: term.AuthorityURI}
			}
			if term.ValueURI != "" {
				rv.URI = term.ValueURI
			}
		}
	}
	return rv, rv.Value != "" || rv.Code != ""
}

// mergeDuplicateNames merges contributors that are exact structural
// duplicates apart from role and usage, keeping the first and folding the
// roles of later copies into it.
func mergeDuplicateNames(entries []groupedContributor, n notify.Notifier) []groupedContributor {
	var out []groupedContributor
	for _, e := range entries {
		merged := false
		for i := range out {
			if out[i].altRepGroup != e.altRepGroup || out[i].nameTitleGroup != e.nameTitleGroup {
				continue
			}
			if !sameContributorName(out[i].contributor, e.contributor) {
				continue
			}
			for _, role := range e.contributor.Role {
				if !containsRole(out[i].contributor.Role, role) {
					out[i].contributor.Role = append(out[i].contributor.Role, role)
				}
			}
			if e.contributor.Status == "primary" && out[i].contributor.Status == "" {
				out[i].contributor.Status = "primary"
			}
			n.Warn("Duplicate name entry", notify.Context{
				"name": flatName(e.contributor),
			})
			merged = true
			break
		}
		if !merged {
			out = append(out, e)
		}
	}
	return out
}

func sameContributorName(a, b cocina.Contributor) bool {
	if a.Type != b.Type || len(a.Name) == 0 || len(b.Name) == 0 {
		return false
	}
	return sameNameValue(a.Name[0], b.Name[0])
}

func containsRole(roles []cocina.DescriptiveValue, role cocina.DescriptiveValue) bool {
	for _, r := range roles {
		if reflect.DeepEqual(r, role) {
			return true
		}
	}
	return false
}

func flatName(c cocina.Contributor) string {
	if len(c.Name) == 0 {
		return ""
	}
	return flatValue(c.Name[0])
}

// dedupePrimaryContributors keeps status "primary" on the first claiming
// contributor only, the same rule applied to titles and subjects.
func dedupePrimaryContributors(entries []groupedContributor, n notify.Notifier) []groupedContributor {
	seen := false
	warned := false
	for i := range entries {
		if entries[i].contributor.Status != "primary" {
			continue
		}
		if !seen {
			seen = true
			continue
		}
		entries[i].contributor.Status = ""
		if !warned {
			n.Warn("Multiple marked as primary", notify.Context{"type": "name"})
			warned = true
		}
	}
	return entries
}
