package mods

import (
	"encoding/xml"
	"io"
)

// Subject groups the subdivisions of one subject heading. Subdivision order
// is semantic (it becomes the order of the structured value downstream), so
// children are kept as an ordered list rather than per-element slices.
type Subject struct {
	Authority    string
	AuthorityURI string
	ValueURI     string
	Usage        string
	DisplayLabel string
	AltRepGroup  string
	Lang         string
	Script       string
	Children     []SubjectChild
}

// SubjectChild is one subdivision in document order. Exactly one of the
// pointer fields is set, according to Kind.
type SubjectChild struct {
	Kind          string // topic | geographic | temporal | genre | occupation | geographicCode | titleInfo | name | hierarchicalGeographic | cartographics
	Term          *SubjectTerm
	TitleInfo     *TitleInfo
	Name          *Name
	Hierarchical  *HierarchicalGeographic
	Cartographics *Cartographics
}

func (s *Subject) setAttr(attrs []xml.Attr) {
	for _, a := range attrs {
		switch a.Name.Local {
		case "authority":
			s.Authority = a.Value
		case "authorityURI":
			s.AuthorityURI = a.Value
		case "valueURI":
			s.ValueURI = a.Value
		case "usage":
			s.Usage = a.Value
		case "displayLabel":
			s.DisplayLabel = a.Value
		case "altRepGroup":
			s.AltRepGroup = a.Value
		case "lang":
			s.Lang = a.Value
		case "script":
			s.Script = a.Value
		}
	}
}

// UnmarshalXML decodes a subject element preserving subdivision order.
func (s *Subject) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	s.setAttr(start.Attr)
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := SubjectChild{Kind: t.Name.Local}
			switch t.Name.Local {
			case "topic", "geographic", "temporal", "genre", "occupation", "geographicCode":
				var term SubjectTerm
				if err := d.DecodeElement(&term, &t); err != nil {
					return err
				}
				child.Term = &term
			case "titleInfo":
				var ti TitleInfo
				if err := d.DecodeElement(&ti, &t); err != nil {
					return err
				}
				child.TitleInfo = &ti
			case "name":
				var n Name
				if err := d.DecodeElement(&n, &t); err != nil {
					return err
				}
				child.Name = &n
			case "hierarchicalGeographic":
				var h HierarchicalGeographic
				if err := d.DecodeElement(&h, &t); err != nil {
					return err
				}
				child.Hierarchical = &h
			case "cartographics":
				var c Cartographics
				if err := d.DecodeElement(&c, &t); err != nil {
					return err
				}
				child.Cartographics = &c
			default:
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}
			s.Children = append(s.Children, child)
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

// MarshalXML writes the subject with subdivisions in their recorded order.
func (s Subject) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name.Local = "subject"
	start.Attr = start.Attr[:0]
	addAttr := func(name, value string) {
		if value != "" {
			start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: name}, Value: value})
		}
	}
	addAttr("authority", s.Authority)
	addAttr("authorityURI", s.AuthorityURI)
	addAttr("valueURI", s.ValueURI)
	addAttr("usage", s.Usage)
	addAttr("displayLabel", s.DisplayLabel)
	addAttr("altRepGroup", s.AltRepGroup)
	addAttr("lang", s.Lang)
	addAttr("script", s.Script)
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range s.Children {
		name := xml.StartElement{Name: xml.Name{Local: c.Kind}}
		var err error
		switch {
		case c.Term != nil:
			err = e.EncodeElement(*c.Term, name)
		case c.TitleInfo != nil:
			err = e.EncodeElement(*c.TitleInfo, name)
		case c.Name != nil:
			err = e.EncodeElement(*c.Name, name)
		case c.Hierarchical != nil:
			err = e.EncodeElement(*c.Hierarchical, name)
		case c.Cartographics != nil:
			err = e.EncodeElement(*c.Cartographics, name)
		}
		if err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}
