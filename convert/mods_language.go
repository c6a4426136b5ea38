package convert

import (
	"github.com/dlss-labs/cocinakit/schema/cocina"
	"github.com/dlss-labs/cocinakit/schema/mods"
)

// mapModsLanguages maps language elements. Text and code terms within one
// element describe the same language and merge into a single value; a script
// term attaches to that value.
func mapModsLanguages(languages []mods.Language) []cocina.DescriptiveValue {
	var out []cocina.DescriptiveValue
	for _, lang := range languages {
		var v cocina.DescriptiveValue
		for _, term := range lang.LanguageTerm {
			if term.Value == "" {
				continue
			}
			if term.Type == "code" {
				v.Code = term.Value
			} else {
				v.Value = term.Value
			}
			if term.Authority != "" && v.Source == nil {
				v.Source = &cocina.Source{Code: term.Authority, URI: term.AuthorityURI}
			}
			if term.ValueURI != "" && v.URI == "" {
				v.URI = term.ValueURI
			}
		}
		for _, term := range lang.ScriptTerm {
			if term.Value == "" {
				continue
			}
			if v.Script == nil {
				v.Script = &cocina.ValueScript{}
			}
			if term.Type == "code" {
				v.Script.Code = term.Value
			} else {
				v.Script.Value = term.Value
			}
			if term.Authority != "" && v.Script.Source == nil {
				v.Script.Source = &cocina.Source{Code: term.Authority}
			}
		}
		if v.Value == "" && v.Code == "" && v.Script == nil {
			continue
		}
		if lang.Usage == "primary" {
			v.Status = "primary"
		}
		if lang.ObjectPart != "" {
			v.AppliesTo = []cocina.DescriptiveValue{{Value: lang.ObjectPart}}
		}
		v.DisplayLabel = lang.DisplayLabel
		out = append(out, v)
	}
	return out
}
