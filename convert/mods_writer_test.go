package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dlss-labs/cocinakit/schema/cocina"
	"github.com/dlss-labs/cocinakit/schema/mods"
)

func TestCocinaToModsNil(t *testing.T) {
	doc, err := CocinaToMods(nil, Options{})
	if err != nil {
		t.Fatalf("got %v, want nil error", err)
	}
	if doc != nil {
		t.Fatalf("got %+v, want nil document", doc)
	}
}

// Group ids are not part of the canonical model, so a round trip rewrites
// them as sequential integers. Legacy event types come back normalized.
func TestModsRoundTrip(t *testing.T) {
	in := &mods.Mods{
		TitleInfo: []mods.TitleInfo{
			{Title: "Chinese history", AltRepGroup: "03", Usage: "primary"},
			{Title: "中國歷史", AltRepGroup: "03", Lang: "chi", Script: "Hant"},
		},
		OriginInfo: []mods.OriginInfo{{
			EventType:  "producer",
			DateIssued: []mods.DateValue{{Value: "1999", KeyDate: "yes", Encoding: "w3cdtf"}},
		}},
	}
	desc, err := ModsToCocina(in, Options{})
	if err != nil {
		t.Fatal(err)
	}
	out, err := CocinaToMods(desc, Options{})
	if err != nil {
		t.Fatal(err)
	}
	wantTitles := []mods.TitleInfo{
		{Usage: "primary", AltRepGroup: "1", Title: "Chinese history"},
		{AltRepGroup: "1", Lang: "chi", Script: "Hant", Title: "中國歷史"},
	}
	if diff := cmp.Diff(wantTitles, out.TitleInfo); diff != "" {
		t.Errorf("titleInfo mismatch (-want +got):\n%s", diff)
	}
	wantOrigins := []mods.OriginInfo{{
		EventType:  "production",
		DateIssued: []mods.DateValue{{Value: "1999", KeyDate: "yes", Encoding: "w3cdtf"}},
	}}
	if diff := cmp.Diff(wantOrigins, out.OriginInfo); diff != "" {
		t.Errorf("originInfo mismatch (-want +got):\n%s", diff)
	}
}

func TestCocinaToModsNameTitleGroup(t *testing.T) {
	desc := &cocina.Description{
		Title: []cocina.DescriptiveValue{{
			Value: "Mass in B minor",
			Type:  "uniform",
			Note: []cocina.DescriptiveValue{{
				Value: "Bach, Johann Sebastian",
				Type:  "associated name",
			}},
		}},
		Contributor: []cocina.Contributor{{
			Name: []cocina.DescriptiveValue{{Value: "Bach, Johann Sebastian"}},
			Type: "person",
		}},
	}
	doc, err := CocinaToMods(desc, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.TitleInfo[0].NameTitleGroup; got != "1" {
		t.Errorf("titleInfo: got nameTitleGroup %q, want %q", got, "1")
	}
	if got := doc.Name[0].NameTitleGroup; got != "1" {
		t.Errorf("name: got nameTitleGroup %q, want %q", got, "1")
	}
	if got := doc.TitleInfo[0].Type; got != "uniform" {
		t.Errorf("got title type %q, want %q", got, "uniform")
	}
}

func TestCocinaToModsNameTitleGroupScope(t *testing.T) {
	desc := &cocina.Description{
		Title: []cocina.DescriptiveValue{{
			Value: "Mass in B minor",
			Type:  "uniform",
			Note: []cocina.DescriptiveValue{{
				Value: "Bach, Johann Sebastian",
				Type:  "associated name",
			}},
		}},
		Contributor: []cocina.Contributor{{
			Name: []cocina.DescriptiveValue{{Value: "Bach, Johann Sebastian"}},
			Type: "person",
		}},
		RelatedResource: []cocina.RelatedResource{{
			Type:  "related to",
			Title: []cocina.DescriptiveValue{{Value: "A related work"}},
			Contributor: []cocina.Contributor{{
				Name: []cocina.DescriptiveValue{{Value: "Doe, John"}},
				Type: "person",
			}},
		}},
	}
	doc, err := CocinaToMods(desc, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.TitleInfo[0].NameTitleGroup; got != "1" {
		t.Errorf("titleInfo: got nameTitleGroup %q, want %q", got, "1")
	}
	if got := doc.Name[0].NameTitleGroup; got != "1" {
		t.Errorf("name: got nameTitleGroup %q, want %q", got, "1")
	}
	// the relatedItem contributor shares the index of the linked top-level
	// name but must not inherit its group id
	item := doc.RelatedItem[0]
	if got := item.Name[0].NameTitleGroup; got != "" {
		t.Errorf("relatedItem name: got nameTitleGroup %q, want none", got)
	}
	if got := item.TitleInfo[0].NameTitleGroup; got != "" {
		t.Errorf("relatedItem titleInfo: got nameTitleGroup %q, want none", got)
	}
}

func TestCocinaToModsOrphanAssociatedName(t *testing.T) {
	desc := &cocina.Description{
		Title: []cocina.DescriptiveValue{{
			Value: "Mass in B minor",
			Type:  "uniform",
			Note: []cocina.DescriptiveValue{{
				Value: "Nobody, Home",
				Type:  "associated name",
			}},
		}},
		Contributor: []cocina.Contributor{{
			Name: []cocina.DescriptiveValue{{Value: "Bach, Johann Sebastian"}},
			Type: "person",
		}},
	}
	doc, err := CocinaToMods(desc, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.TitleInfo[0].NameTitleGroup; got != "" {
		t.Errorf("got nameTitleGroup %q, want none for an unmatched name", got)
	}
	if got := doc.Name[0].NameTitleGroup; got != "" {
		t.Errorf("name: got nameTitleGroup %q, want none", got)
	}
}

func TestCocinaToModsStructuredTitle(t *testing.T) {
	desc := &cocina.Description{
		Title: []cocina.DescriptiveValue{{
			StructuredValue: []cocina.DescriptiveValue{
				{Value: "The", Type: "nonsorting characters"},
				{Value: "Mysterious Island", Type: "main title"},
				{Value: "a novel", Type: "subtitle"},
			},
			Note: []cocina.DescriptiveValue{{
				Value: "4",
				Type:  "nonsorting character count",
			}},
		}},
	}
	doc, err := CocinaToMods(desc, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []mods.TitleInfo{{
		NonSort:  "The",
		Title:    "Mysterious Island",
		SubTitle: "a novel",
	}}
	if diff := cmp.Diff(want, doc.TitleInfo); diff != "" {
		t.Errorf("titleInfo mismatch (-want +got):\n%s", diff)
	}
}

func TestCocinaToModsDateRange(t *testing.T) {
	desc := &cocina.Description{
		Title: []cocina.DescriptiveValue{{Value: "A"}},
		Event: []cocina.Event{{
			Type: "creation",
			Date: []cocina.DescriptiveValue{{
				Type:      "creation",
				Qualifier: "approximate",
				StructuredValue: []cocina.DescriptiveValue{
					{Value: "1920", Type: "start", Status: "primary"},
					{Value: "1935", Type: "end"},
				},
			}},
		}},
	}
	doc, err := CocinaToMods(desc, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []mods.DateValue{
		{Value: "1920", Point: "start", KeyDate: "yes", Qualifier: "approximate"},
		{Value: "1935", Point: "end", Qualifier: "approximate"},
	}
	if diff := cmp.Diff(want, doc.OriginInfo[0].DateCreated); diff != "" {
		t.Errorf("dateCreated mismatch (-want +got):\n%s", diff)
	}
}

func TestCocinaToModsIdentifiers(t *testing.T) {
	desc := &cocina.Description{
		Title: []cocina.DescriptiveValue{{Value: "A"}},
		Identifier: []cocina.DescriptiveValue{
			{Value: "10.25740/zx123vc8976", Type: "DOI"},
			{Value: "9783161484101", Type: "ISBN", Status: "invalid", Source: &cocina.Source{Code: "isbn"}},
		},
	}
	doc, err := CocinaToMods(desc, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []mods.Identifier{
		{Type: "doi", Value: "10.25740/zx123vc8976"},
		{Type: "isbn", Invalid: "yes", Value: "9783161484101"},
	}
	if diff := cmp.Diff(want, doc.Identifier); diff != "" {
		t.Errorf("identifier mismatch (-want +got):\n%s", diff)
	}
}

func TestCocinaToModsPurlPrimary(t *testing.T) {
	purl := "https://purl.example.org/zx123vc8976"

	// no other url claims primary display, so the purl does
	desc := &cocina.Description{
		Title: []cocina.DescriptiveValue{{Value: "A"}},
		Purl:  purl,
	}
	doc, err := CocinaToMods(desc, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []mods.URL{{Usage: "primary display", Value: purl}}
	if diff := cmp.Diff(want, doc.Location[0].URL); diff != "" {
		t.Errorf("url mismatch (-want +got):\n%s", diff)
	}

	// an access url already primary keeps the usage to itself
	desc.Access = &cocina.Access{URL: []cocina.DescriptiveValue{
		{Value: "https://example.org/viewer", Status: "primary"},
	}}
	doc, err = CocinaToMods(desc, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want = []mods.URL{
		{Value: purl},
		{Usage: "primary display", Value: "https://example.org/viewer"},
	}
	if diff := cmp.Diff(want, doc.Location[0].URL); diff != "" {
		t.Errorf("url mismatch (-want +got):\n%s", diff)
	}
}

func TestCocinaToModsRelatedItem(t *testing.T) {
	desc := &cocina.Description{
		Title: []cocina.DescriptiveValue{{Value: "A"}},
		RelatedResource: []cocina.RelatedResource{
			{
				Type:  "part of",
				Title: []cocina.DescriptiveValue{{Value: "Journal of Examples"}},
			},
			{
				Note: []cocina.DescriptiveValue{{
					Value:  "remixed from",
					Type:   "other relationship type",
					Source: &cocina.Source{Code: "local"},
				}},
				Title: []cocina.DescriptiveValue{{Value: "Source material"}},
			},
		},
	}
	doc, err := CocinaToMods(desc, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.RelatedItem[0].Type; got != "host" {
		t.Errorf("got related item type %q, want %q", got, "host")
	}
	second := doc.RelatedItem[1]
	if second.OtherType != "remixed from" || second.OtherTypeAuth != "local" {
		t.Errorf("got otherType %q auth %q", second.OtherType, second.OtherTypeAuth)
	}
	if len(second.Note) != 0 {
		t.Errorf("other relationship note should not also appear as a note, got %+v", second.Note)
	}
}
