package convert

import (
	"github.com/dlss-labs/cocinakit/marc"
	"github.com/dlss-labs/cocinakit/normal"
	"github.com/dlss-labs/cocinakit/schema/cocina"
)

// marcResourceTypes maps the leader type-of-record byte to a resource type.
var marcResourceTypes = map[byte]string{
	'a': "text",
	't': "text",
	'c': "notated music",
	'd': "notated music",
	'e': "cartographic",
	'f': "cartographic",
	'g': "moving image",
	'i': "sound recording",
	'j': "sound recording",
	'k': "still image",
	'm': "software, multimedia",
	'o': "kit",
	'p': "mixed material",
	'r': "three dimensional object",
}

// marcRDASources fixes the vocabulary per 33X tag when $2 is absent.
var marcRDASources = map[string]string{
	"336": "rdacontent",
	"337": "rdamedia",
	"338": "rdacarrier",
}

// marcRDATypes maps 33X tags to form types.
var marcRDATypes = map[string]string{
	"336": "content type",
	"337": "media type",
	"338": "carrier type",
}

// mapMarcForms maps the leader resource type, the 300 physical description
// and the 336-338 RDA type fields.
func mapMarcForms(rec *marc.Record) []cocina.DescriptiveValue {
	var out []cocina.DescriptiveValue
	if rt, ok := marcResourceTypes[rec.Leader.Type]; ok {
		out = append(out, cocina.DescriptiveValue{
			Value:  rt,
			Type:   "resource type",
			Source: &modsResourceTypeSource,
		})
	}
	for _, f := range rec.DataField("300") {
		var facets []cocina.DescriptiveValue
		for _, sf := range f.SubFields {
			v := normal.StripTrailingPunct(sf.Value)
			if v == "" {
				continue
			}
			switch sf.Code {
			case "a":
				facets = append(facets, cocina.DescriptiveValue{Value: v, Type: "extent"})
			case "b":
				facets = append(facets, cocina.DescriptiveValue{Value: v, Type: "form"})
			case "c":
				facets = append(facets, cocina.DescriptiveValue{Value: v, Type: "dimensions"})
			}
		}
		switch len(facets) {
		case 0:
		case 1:
			out = append(out, facets[0])
		default:
			out = append(out, cocina.DescriptiveValue{GroupedValue: facets})
		}
	}
	for _, tag := range []string{"336", "337", "338"} {
		for _, f := range rec.DataField(tag) {
			source := f.Value("2")
			if source == "" {
				source = marcRDASources[tag]
			}
			for _, a := range f.Values("a") {
				if a == "" {
					continue
				}
				v := cocina.DescriptiveValue{
					Value:  a,
					Type:   marcRDATypes[tag],
					Source: &cocina.Source{Code: source},
				}
				if b := f.Value("b"); b != "" {
					v.Code = b
				}
				out = append(out, v)
			}
		}
	}
	return out
}
