package convert

import (
	"strconv"
	"strings"

	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
	"github.com/dlss-labs/cocinakit/schema/mods"
)

// titleTypes are the titleInfo type attribute values carried through to the
// canonical title type.
var titleTypes = map[string]string{
	"abbreviated": "abbreviated",
	"alternative": "alternative",
	"translated":  "translated",
	"uniform":     "uniform",
}

// mapModsTitles maps titleInfo elements. The returned map carries the
// nameTitleGroup id per output title index, consumed by the correlator.
func mapModsTitles(infos []mods.TitleInfo, n notify.Notifier) ([]cocina.DescriptiveValue, map[int]string) {
	var entries []grouped
	for _, ti := range infos {
		if ti.Empty() {
			if ti.NameTitleGroup != "" {
				n.Warn("Empty title node", notify.Context{
					"nameTitleGroup": ti.NameTitleGroup,
				})
			}
			continue
		}
		value := buildTitleValue(ti)
		if emptyValue(value) {
			continue
		}
		entries = append(entries, grouped{
			group:   ti.AltRepGroup,
			ntg:     ti.NameTitleGroup,
			primary: ti.Usage == "primary",
			value:   value,
		})
	}
	titles, ntgs := collapseAltRep(entries, "title", n)
	titles = dedupePrimaries(titles, "title", n)
	return titles, ntgs
}

// buildTitleValue assembles one title value from a titleInfo. A title with
// only a plain title subelement stays flat; any additional part makes it a
// structured value with parts in fixed order: nonsorting characters, main
// title, subtitle, part number, part name.
func buildTitleValue(ti mods.TitleInfo) cocina.DescriptiveValue {
	var value cocina.DescriptiveValue
	nonsort := strings.TrimRight(ti.NonSort, " \t")
	structured := nonsort != "" || ti.SubTitle != "" || ti.PartNumber != "" || ti.PartName != ""
	if !structured {
		value.Value = ti.Title
	} else {
		if nonsort != "" {
			value.StructuredValue = append(value.StructuredValue, cocina.DescriptiveValue{
				Value: nonsort,
				Type:  "nonsorting characters",
			})
			value.Note = append(value.Note, cocina.DescriptiveValue{
				Value: strconv.Itoa(nonsortCount(ti.NonSort)),
				Type:  "nonsorting character count",
			})
		}
		if ti.Title != "" {
			value.StructuredValue = append(value.StructuredValue, cocina.DescriptiveValue{
				Value: ti.Title,
				Type:  "main title",
			})
		}
		if ti.SubTitle != "" {
			value.StructuredValue = append(value.StructuredValue, cocina.DescriptiveValue{
				Value: ti.SubTitle,
				Type:  "subtitle",
			})
		}
		if ti.PartNumber != "" {
			value.StructuredValue = append(value.StructuredValue, cocina.DescriptiveValue{
				Value: ti.PartNumber,
				Type:  "part number",
			})
		}
		if ti.PartName != "" {
			value.StructuredValue = append(value.StructuredValue, cocina.DescriptiveValue{
				Value: ti.PartName,
				Type:  "part name",
			})
		}
	}
	value.Type = titleTypes[ti.Type]
	value.DisplayLabel = ti.DisplayLabel
	if ti.Supplied == "yes" {
		value.Type = "supplied"
	}
	if ti.ValueURI != "" {
		value.URI = ti.ValueURI
	}
	if ti.Authority != "" {
		value.Source = &cocina.Source{Code: ti.Authority, URI: ti.AuthorityURI}
	}
	if vl := valueLanguage(ti.Lang, ti.Script); vl != nil {
		value.ValueLanguage = vl
	}
	if ti.Transliteration != "" {
		value.Standard = &cocina.Standard{Value: ti.Transliteration}
	}
	return value
}

// valueLanguage builds the valueLanguage of a single value from lang/script
// attributes, or nil when both are empty.
func valueLanguage(lang, script string) *cocina.ValueLanguage {
	if lang == "" && script == "" {
		return nil
	}
	vl := &cocina.ValueLanguage{}
	if lang != "" {
		vl.Code = lang
		vl.Source = &cocina.Source{Code: "iso639-2b"}
	}
	if script != "" {
		vl.ValueScript = &cocina.ValueScript{
			Code:   script,
			Source: &cocina.Source{Code: "iso15924"},
		}
	}
	return vl
}
