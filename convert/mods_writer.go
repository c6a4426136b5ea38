package convert

import (
	"strconv"

	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
	"github.com/dlss-labs/cocinakit/schema/mods"
)

// Reverse lookup tables, derived from the forward tables at init time so the
// two directions cannot drift apart.
var (
	reverseNameTypes       = reverseTable(nameTypes)
	reverseNamePartTypes   = reverseTable(namePartTypes)
	reverseRelatedTypes    = reverseTable(relatedItemTypes)
	reverseIdentifierTypes = reverseTable(identifierTypes)
)

func reverseTable(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if _, ok := out[v]; !ok {
			out[v] = k
		}
	}
	return out
}

// modsWriter synthesizes the transient group ids while assembling one
// document: sequential integers in order of first appearance, never persisted
// in the canonical model.
type modsWriter struct {
	altRepSeq int
	n         notify.Notifier
}

func (w *modsWriter) nextAltRep() string {
	w.altRepSeq++
	return strconv.Itoa(w.altRepSeq)
}

// nameTitleGroups assigns name-title group ids within one element body. The
// attribute only pairs elements under the same parent, so ids and index
// bookkeeping restart for every relatedItem.
type nameTitleGroups struct {
	seq     int
	byIndex map[int]string // contributor index -> assigned group id
}

func (g *nameTitleGroups) assign(idx int) string {
	if id, ok := g.byIndex[idx]; ok {
		return id
	}
	g.seq++
	id := strconv.Itoa(g.seq)
	g.byIndex[idx] = id
	return id
}

// CocinaToMods assembles a MODS document from a description. Group ids are
// re-derived structurally: a title's "associated name" note is matched
// against the contributor names, and parallel values fan out into elements
// sharing a fresh altRepGroup id. A nil description yields a nil document.
func CocinaToMods(desc *cocina.Description, opts Options) (*mods.Mods, error) {
	if desc == nil {
		return nil, nil
	}
	w := &modsWriter{n: opts.notifier()}
	doc := &mods.Mods{
		Xmlns:             mods.Namespace,
		XmlnsXsi:          mods.XSINamespace,
		XsiSchemaLocation: mods.SchemaLocation,
		ModsVersion:       mods.Version,
	}
	w.writeBody(doc, desc.Title, desc.Contributor, desc.Event, desc.Subject,
		desc.Form, desc.Language, desc.Note, desc.Identifier, desc.Access, desc.Purl)
	for _, rr := range desc.RelatedResource {
		doc.RelatedItem = append(doc.RelatedItem, w.relatedItem(rr))
	}
	return doc, nil
}

// writeBody fills the shared element groups of a document or a relatedItem.
func (w *modsWriter) writeBody(doc *mods.Mods,
	titles []cocina.DescriptiveValue, contributors []cocina.Contributor,
	events []cocina.Event, subjects, forms, languages, notes, identifiers []cocina.DescriptiveValue,
	access *cocina.Access, purl string) {

	groups := &nameTitleGroups{byIndex: make(map[int]string)}
	for _, t := range titles {
		doc.TitleInfo = append(doc.TitleInfo, w.titleInfos(t, contributors, groups)...)
	}
	for i, c := range contributors {
		doc.Name = append(doc.Name, w.names(c, groups.byIndex[i])...)
	}
	for _, ev := range events {
		doc.OriginInfo = append(doc.OriginInfo, w.originInfo(ev))
	}
	for _, s := range subjects {
		doc.Subject = append(doc.Subject, w.subjects(s)...)
	}
	w.writeForms(doc, forms)
	for _, l := range languages {
		doc.Language = append(doc.Language, languageElement(l))
	}
	w.writeNotes(doc, notes)
	for _, id := range identifiers {
		doc.Identifier = append(doc.Identifier, identifierElement(id))
	}
	if loc, ok := locationElement(access, purl); ok {
		doc.Location = append(doc.Location, loc)
	}
}

// titleInfos emits one titleInfo per parallel variant, all sharing a fresh
// altRepGroup id. The "associated name" note resolves to a nameTitleGroup id
// by structural match against the contributors.
func (w *modsWriter) titleInfos(t cocina.DescriptiveValue, contributors []cocina.Contributor, groups *nameTitleGroups) []mods.TitleInfo {
	var group string
	for _, note := range t.Note {
		if note.Type != "associated name" {
			continue
		}
		if idx := matchNameTitle(note, contributors); idx >= 0 {
			group = groups.assign(idx)
		}
		break
	}
	if len(t.ParallelValue) == 0 {
		ti := titleInfoElement(t)
		ti.NameTitleGroup = group
		return []mods.TitleInfo{ti}
	}
	altRep := w.nextAltRep()
	var out []mods.TitleInfo
	for i, variant := range t.ParallelValue {
		ti := titleInfoElement(variant)
		ti.AltRepGroup = altRep
		if i == 0 {
			ti.NameTitleGroup = group
			if t.Status == "primary" {
				ti.Usage = "primary"
			}
		}
		out = append(out, ti)
	}
	return out
}

func titleInfoElement(v cocina.DescriptiveValue) mods.TitleInfo {
	var ti mods.TitleInfo
	switch v.Type {
	case "supplied":
		ti.Supplied = "yes"
	case "abbreviated", "alternative", "translated", "uniform":
		ti.Type = v.Type
	}
	if v.Status == "primary" {
		ti.Usage = "primary"
	}
	ti.DisplayLabel = v.DisplayLabel
	if v.URI != "" {
		ti.ValueURI = v.URI
	}
	if v.Source != nil {
		ti.Authority = v.Source.Code
		ti.AuthorityURI = v.Source.URI
	}
	if v.Standard != nil {
		ti.Transliteration = v.Standard.Value
	}
	fillLangScript(&ti.Lang, &ti.Script, v.ValueLanguage)
	if v.Value != "" {
		ti.Title = v.Value
		return ti
	}
	for _, part := range v.StructuredValue {
		switch part.Type {
		case "nonsorting characters":
			ti.NonSort = part.Value
		case "main title":
			ti.Title = part.Value
		case "subtitle":
			ti.SubTitle = part.Value
		case "part number":
			ti.PartNumber = part.Value
		case "part name":
			ti.PartName = part.Value
		}
	}
	return ti
}

// names emits one name per parallel variant sharing a fresh altRepGroup id.
func (w *modsWriter) names(c cocina.Contributor, nameTitleGroup string) []mods.Name {
	if len(c.Name) == 0 {
		return nil
	}
	variants := c.Name[0].ParallelValue
	if len(variants) == 0 {
		name := nameElement(c, c.Name[0])
		name.NameTitleGroup = nameTitleGroup
		return []mods.Name{name}
	}
	altRep := w.nextAltRep()
	var out []mods.Name
	for i, variant := range variants {
		name := nameElement(c, variant)
		name.AltRepGroup = altRep
		if i > 0 {
			name.Usage = ""
		} else {
			name.NameTitleGroup = nameTitleGroup
		}
		out = append(out, name)
	}
	return out
}

func nameElement(c cocina.Contributor, value cocina.DescriptiveValue) mods.Name {
	var name mods.Name
	name.Type = reverseNameTypes[c.Type]
	if c.Status == "primary" {
		name.Usage = "primary"
	}
	if value.URI != "" {
		name.ValueURI = value.URI
	}
	if value.Source != nil {
		name.Authority = value.Source.Code
		name.AuthorityURI = value.Source.URI
	}
	fillLangScript(&name.Lang, &name.Script, value.ValueLanguage)
	if value.Value != "" {
		name.NamePart = append(name.NamePart, mods.NamePart{Value: value.Value})
	}
	for _, part := range value.StructuredValue {
		name.NamePart = append(name.NamePart, mods.NamePart{
			Type:  reverseNamePartTypes[part.Type],
			Value: part.Value,
		})
	}
	for _, n := range c.Name[1:] {
		if n.Type == "display" {
			name.DisplayForm = n.Value
		}
	}
	for _, role := range c.Role {
		name.Role = append(name.Role, roleElement(role))
	}
	for _, aff := range c.Affiliation {
		if aff.Value != "" {
			name.Affiliation = append(name.Affiliation, aff.Value)
		}
	}
	for _, id := range c.Identifier {
		ident := mods.Identifier{Value: id.Value}
		if id.Source != nil {
			ident.Type = id.Source.Code
		} else {
			ident.Type = id.Type
		}
		name.NameIdentifier = append(name.NameIdentifier, ident)
	}
	for _, note := range c.Note {
		if note.Type == "description" {
			name.Description = note.Value
		}
	}
	return name
}

func roleElement(role cocina.DescriptiveValue) mods.Role {
	// a parallel role keeps its first rendering; the variants have no
	// element-level home in a single name
	if len(role.ParallelValue) > 0 {
		role = role.ParallelValue[0]
	}
	var r mods.Role
	if role.Value != "" {
		term := mods.RoleTerm{Type: "text", Value: role.Value}
		if role.Code == "" {
			if role.Source != nil {
				term.Authority = role.Source.Code
				term.AuthorityURI = role.Source.URI
			}
			if role.URI != "" {
				term.ValueURI = role.URI
			}
		}
		r.RoleTerm = append(r.RoleTerm, term)
	}
	if role.Code != "" {
		term := mods.RoleTerm{Type: "code", Value: role.Code}
		if role.Source != nil {
			term.Authority = role.Source.Code
			term.AuthorityURI = role.Source.URI
		}
		if role.URI != "" {
			term.ValueURI = role.URI
		}
		r.RoleTerm = append(r.RoleTerm, term)
	}
	return r
}

// originInfo reverses one event. Typed dates return to their dedicated
// subelement; anything else lands in dateOther with a type attribute.
func (w *modsWriter) originInfo(ev cocina.Event) mods.OriginInfo {
	oi := mods.OriginInfo{DisplayLabel: ev.DisplayLabel}
	if knownEventTypes[ev.Type] {
		oi.EventType = ev.Type
	}
	for _, d := range ev.Date {
		values, kind := dateValues(d, ev.Type)
		switch kind {
		case "publication":
			oi.DateIssued = append(oi.DateIssued, values...)
		case "creation":
			oi.DateCreated = append(oi.DateCreated, values...)
		case "capture":
			oi.DateCaptured = append(oi.DateCaptured, values...)
		case "validity":
			oi.DateValid = append(oi.DateValid, values...)
		case "modification":
			oi.DateModified = append(oi.DateModified, values...)
		case "copyright":
			oi.CopyrightDate = append(oi.CopyrightDate, values...)
		default:
			for i := range values {
				if kind != ev.Type {
					values[i].Type = kind
				}
			}
			oi.DateOther = append(oi.DateOther, values...)
		}
	}
	for _, loc := range ev.Location {
		pt := mods.PlaceTerm{Value: loc.Value, Type: "text"}
		if loc.Code != "" {
			pt.Value = loc.Code
			pt.Type = "code"
		}
		if loc.Source != nil {
			pt.Authority = loc.Source.Code
			pt.AuthorityURI = loc.Source.URI
		}
		if loc.URI != "" {
			pt.ValueURI = loc.URI
		}
		oi.Place = append(oi.Place, mods.Place{PlaceTerm: []mods.PlaceTerm{pt}})
	}
	for _, c := range ev.Contributor {
		if len(c.Name) > 0 && c.Name[0].Value != "" {
			oi.Publisher = append(oi.Publisher, mods.Publisher{Value: c.Name[0].Value})
		}
	}
	for _, note := range ev.Note {
		switch note.Type {
		case "edition":
			oi.Edition = append(oi.Edition, note.Value)
		case "issuance":
			oi.Issuance = append(oi.Issuance, note.Value)
		case "frequency":
			fq := mods.Genre{Value: note.Value}
			if note.Source != nil {
				fq.Authority = note.Source.Code
			}
			oi.Frequency = append(oi.Frequency, fq)
		}
	}
	return oi
}

// dateValues flattens one canonical date into MODS date values plus the
// subelement kind it belongs to.
func dateValues(d cocina.DescriptiveValue, eventType string) ([]mods.DateValue, string) {
	kind := d.Type
	if kind == "" {
		kind = eventType
	}
	base := func(v cocina.DescriptiveValue) mods.DateValue {
		dv := mods.DateValue{Value: v.Value, Qualifier: v.Qualifier}
		if v.Encoding != nil {
			dv.Encoding = v.Encoding.Code
		}
		if v.Status == "primary" {
			dv.KeyDate = "yes"
		}
		return dv
	}
	if len(d.StructuredValue) == 0 {
		return []mods.DateValue{base(d)}, kind
	}
	var out []mods.DateValue
	for _, part := range d.StructuredValue {
		dv := base(part)
		switch part.Type {
		case "start":
			dv.Point = "start"
		case "end":
			dv.Point = "end"
		}
		if d.Qualifier != "" && dv.Qualifier == "" {
			dv.Qualifier = d.Qualifier
		}
		out = append(out, dv)
	}
	return out, kind
}

// subjects emits one subject per parallel variant sharing an altRepGroup id.
func (w *modsWriter) subjects(s cocina.DescriptiveValue) []mods.Subject {
	if len(s.ParallelValue) == 0 {
		return []mods.Subject{subjectElement(s)}
	}
	altRep := w.nextAltRep()
	var out []mods.Subject
	for i, variant := range s.ParallelValue {
		el := subjectElement(variant)
		el.AltRepGroup = altRep
		if i == 0 && s.Status == "primary" {
			el.Usage = "primary"
		}
		out = append(out, el)
	}
	return out
}

func subjectElement(s cocina.DescriptiveValue) mods.Subject {
	var el mods.Subject
	el.DisplayLabel = s.DisplayLabel
	if s.Status == "primary" {
		el.Usage = "primary"
	}
	if s.Source != nil {
		el.Authority = s.Source.Code
		el.AuthorityURI = s.Source.URI
	}
	fillLangScript(&el.Lang, &el.Script, s.ValueLanguage)
	parts := s.StructuredValue
	if len(parts) == 0 {
		parts = []cocina.DescriptiveValue{s}
		el.ValueURI = s.URI
	}
	for _, part := range parts {
		el.Children = append(el.Children, subjectChild(part))
	}
	return el
}

func subjectChild(part cocina.DescriptiveValue) mods.SubjectChild {
	term := func(kind string) mods.SubjectChild {
		return mods.SubjectChild{
			Kind: kind,
			Term: &mods.SubjectTerm{
				Value:    part.Value,
				ValueURI: part.URI,
			},
		}
	}
	switch part.Type {
	case "time":
		return term("temporal")
	case "genre":
		return term("genre")
	case "occupation":
		return term("occupation")
	case "title":
		ti := titleInfoElement(part)
		ti.DisplayLabel = ""
		return mods.SubjectChild{Kind: "titleInfo", TitleInfo: &ti}
	case "person", "organization", "family", "conference", "name":
		name := nameElement(cocina.Contributor{
			Type: part.Type,
			Name: []cocina.DescriptiveValue{part},
		}, part)
		return mods.SubjectChild{Kind: "name", Name: &name}
	case "place":
		switch {
		case part.Code != "":
			child := term("geographicCode")
			child.Term.Value = part.Code
			return child
		case len(part.StructuredValue) > 0:
			var h mods.HierarchicalGeographic
			for _, p := range part.StructuredValue {
				switch p.Type {
				case "continent":
					h.Continent = p.Value
				case "country":
					h.Country = p.Value
				case "region":
					h.Region = p.Value
				case "state":
					h.State = p.Value
				case "county":
					h.County = p.Value
				case "city":
					h.City = p.Value
				case "area":
					h.Area = p.Value
				}
			}
			return mods.SubjectChild{Kind: "hierarchicalGeographic", Hierarchical: &h}
		default:
			return term("geographic")
		}
	case "map coordinates":
		var c mods.Cartographics
		for _, p := range part.GroupedValue {
			switch p.Type {
			case "scale":
				c.Scale = p.Value
			case "projection":
				c.Projection = p.Value
			case "coordinates":
				c.Coordinates = p.Value
			}
		}
		return mods.SubjectChild{Kind: "cartographics", Cartographics: &c}
	default:
		return term("topic")
	}
}

func (w *modsWriter) writeForms(doc *mods.Mods, forms []cocina.DescriptiveValue) {
	for _, f := range forms {
		switch {
		case f.Type == "resource type":
			tor := mods.TypeOfResource{Value: f.Value}
			if f.Status == "primary" {
				tor.Usage = "primary"
			}
			doc.TypeOfResource = append(doc.TypeOfResource, tor)
		case f.Type == "genre":
			g := mods.Genre{Value: f.Value, DisplayLabel: f.DisplayLabel}
			if f.Status == "primary" {
				g.Usage = "primary"
			}
			if f.Source != nil {
				g.Authority = f.Source.Code
				g.AuthorityURI = f.Source.URI
			}
			if f.URI != "" {
				g.ValueURI = f.URI
			}
			for _, note := range f.Note {
				if note.Type == "genre type" {
					g.Type = note.Value
				}
			}
			doc.Genre = append(doc.Genre, g)
		case len(f.GroupedValue) > 0:
			pd := mods.PhysicalDescription{DisplayLabel: f.DisplayLabel}
			for _, facet := range f.GroupedValue {
				addPhysicalFacet(&pd, facet)
			}
			doc.PhysicalDescription = append(doc.PhysicalDescription, pd)
		default:
			pd := mods.PhysicalDescription{DisplayLabel: f.DisplayLabel}
			addPhysicalFacet(&pd, f)
			doc.PhysicalDescription = append(doc.PhysicalDescription, pd)
		}
	}
}

func addPhysicalFacet(pd *mods.PhysicalDescription, facet cocina.DescriptiveValue) {
	switch facet.Type {
	case "extent":
		pd.Extent = append(pd.Extent, mods.Extent{Value: facet.Value})
	case "reformatting quality":
		pd.ReformattingQuality = append(pd.ReformattingQuality, facet.Value)
	case "media type":
		pd.InternetMediaType = append(pd.InternetMediaType, facet.Value)
	case "digital origin":
		pd.DigitalOrigin = facet.Value
	case "note":
		pd.Note = append(pd.Note, mods.Note{
			Value:        facet.Value,
			DisplayLabel: facet.DisplayLabel,
		})
	default:
		form := mods.Genre{Value: facet.Value}
		if facet.Source != nil {
			form.Authority = facet.Source.Code
			form.AuthorityURI = facet.Source.URI
		}
		if facet.URI != "" {
			form.ValueURI = facet.URI
		}
		pd.Form = append(pd.Form, form)
	}
}

func languageElement(l cocina.DescriptiveValue) mods.Language {
	var el mods.Language
	if l.Status == "primary" {
		el.Usage = "primary"
	}
	el.DisplayLabel = l.DisplayLabel
	if len(l.AppliesTo) > 0 {
		el.ObjectPart = l.AppliesTo[0].Value
	}
	if l.Value != "" {
		term := mods.LanguageTerm{Type: "text", Value: l.Value}
		el.LanguageTerm = append(el.LanguageTerm, term)
	}
	if l.Code != "" {
		term := mods.LanguageTerm{Type: "code", Value: l.Code}
		if l.Source != nil {
			term.Authority = l.Source.Code
			term.AuthorityURI = l.Source.URI
		}
		if l.URI != "" {
			term.ValueURI = l.URI
		}
		el.LanguageTerm = append(el.LanguageTerm, term)
	}
	if l.Script != nil {
		if l.Script.Value != "" {
			el.ScriptTerm = append(el.ScriptTerm, mods.LanguageTerm{Type: "text", Value: l.Script.Value})
		}
		if l.Script.Code != "" {
			term := mods.LanguageTerm{Type: "code", Value: l.Script.Code}
			if l.Script.Source != nil {
				term.Authority = l.Script.Source.Code
			}
			el.ScriptTerm = append(el.ScriptTerm, term)
		}
	}
	return el
}

func (w *modsWriter) writeNotes(doc *mods.Mods, notes []cocina.DescriptiveValue) {
	for _, n := range notes {
		switch n.Type {
		case "abstract", "summary", "review", "scope and content":
			a := mods.Abstract{
				Value:        n.Value,
				DisplayLabel: n.DisplayLabel,
				ValueAt:      n.ValueAt,
			}
			if n.Type != "abstract" {
				a.Type = n.Type
			}
			fillLangScript(&a.Lang, &a.Script, n.ValueLanguage)
			doc.Abstract = append(doc.Abstract, a)
		case "table of contents":
			doc.TableOfContents = append(doc.TableOfContents, mods.TableOfContents{
				Value:        n.Value,
				DisplayLabel: n.DisplayLabel,
			})
		case "target audience":
			ta := mods.TargetAudience{Value: n.Value}
			if n.Source != nil {
				ta.Authority = n.Source.Code
			}
			doc.TargetAudience = append(doc.TargetAudience, ta)
		default:
			note := mods.Note{
				Value:        n.Value,
				Type:         n.Type,
				DisplayLabel: n.DisplayLabel,
			}
			fillLangScript(&note.Lang, &note.Script, n.ValueLanguage)
			doc.Note = append(doc.Note, note)
		}
	}
}

func identifierElement(id cocina.DescriptiveValue) mods.Identifier {
	el := mods.Identifier{
		Value:        id.Value,
		DisplayLabel: id.DisplayLabel,
	}
	switch {
	case id.Source != nil && id.Source.Code != "":
		el.Type = id.Source.Code
		el.TypeURI = id.Source.URI
	case id.Type != "":
		if code, ok := reverseIdentifierTypes[id.Type]; ok {
			el.Type = code
		} else {
			el.Type = id.Type
		}
	}
	if id.Status == "invalid" {
		el.Invalid = "yes"
	}
	return el
}

// locationElement reverses access data. The purl claims usage
// "primary display" only when no access url already does.
func locationElement(access *cocina.Access, purl string) (mods.Location, bool) {
	var loc mods.Location
	primaryTaken := false
	if access != nil {
		for _, pl := range access.PhysicalLocation {
			if pl.Type == "shelf locator" {
				loc.ShelfLocator = append(loc.ShelfLocator, pl.Value)
				continue
			}
			loc.PhysicalLocation = append(loc.PhysicalLocation, physicalLocationElement(pl))
		}
		for _, ac := range access.AccessContact {
			el := physicalLocationElement(ac)
			if el.Type == "" {
				el.Type = "repository"
			}
			loc.PhysicalLocation = append(loc.PhysicalLocation, el)
		}
		for _, u := range access.URL {
			el := mods.URL{Value: u.Value, DisplayLabel: u.DisplayLabel}
			if u.Status == "primary" {
				el.Usage = "primary display"
				primaryTaken = true
			}
			if len(u.Note) > 0 {
				el.Note = u.Note[0].Value
			}
			loc.URL = append(loc.URL, el)
		}
	}
	if purl != "" {
		el := mods.URL{Value: purl}
		if !primaryTaken {
			el.Usage = "primary display"
		}
		loc.URL = append([]mods.URL{el}, loc.URL...)
	}
	empty := len(loc.PhysicalLocation) == 0 && len(loc.ShelfLocator) == 0 && len(loc.URL) == 0
	return loc, !empty
}

func physicalLocationElement(v cocina.DescriptiveValue) mods.PhysicalLocation {
	el := mods.PhysicalLocation{
		Value:        v.Value,
		Type:         v.Type,
		DisplayLabel: v.DisplayLabel,
	}
	if v.Source != nil {
		el.Authority = v.Source.Code
		el.AuthorityURI = v.Source.URI
	}
	if v.URI != "" {
		el.ValueURI = v.URI
	}
	return el
}

func (w *modsWriter) relatedItem(rr cocina.RelatedResource) mods.RelatedItem {
	var item mods.RelatedItem
	item.Type = reverseRelatedTypes[rr.Type]
	item.DisplayLabel = rr.DisplayLabel
	var inner mods.Mods
	var notes []cocina.DescriptiveValue
	for _, n := range rr.Note {
		if n.Type == "other relationship type" && item.Type == "" {
			item.OtherType = n.Value
			if n.Source != nil {
				item.OtherTypeAuth = n.Source.Code
			}
			continue
		}
		notes = append(notes, n)
	}
	w.writeBody(&inner, rr.Title, rr.Contributor, rr.Event, rr.Subject,
		rr.Form, rr.Language, notes, rr.Identifier, rr.Access, rr.Purl)
	item.TitleInfo = inner.TitleInfo
	item.Name = inner.Name
	item.TypeOfResource = inner.TypeOfResource
	item.Genre = inner.Genre
	item.OriginInfo = inner.OriginInfo
	item.Language = inner.Language
	item.PhysicalDescription = inner.PhysicalDescription
	item.Abstract = inner.Abstract
	item.Note = inner.Note
	item.Subject = inner.Subject
	item.Identifier = inner.Identifier
	item.Location = inner.Location
	for _, nested := range rr.RelatedResource {
		child := w.relatedItem(nested)
		item.RelatedItem = append(item.RelatedItem, &child)
	}
	return item
}

// fillLangScript writes a valueLanguage back to lang/script attributes.
func fillLangScript(lang, script *string, vl *cocina.ValueLanguage) {
	if vl == nil {
		return
	}
	*lang = vl.Code
	if vl.ValueScript != nil {
		*script = vl.ValueScript.Code
	}
}
