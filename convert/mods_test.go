package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
	"github.com/dlss-labs/cocinakit/schema/mods"
)

func TestModsToCocinaNil(t *testing.T) {
	desc, err := ModsToCocina(nil, Options{})
	if err != nil {
		t.Fatalf("got %v, want nil error", err)
	}
	if desc != nil {
		t.Fatalf("got %+v, want nil description", desc)
	}
}

func TestModsToCocinaAbstract(t *testing.T) {
	doc := &mods.Mods{
		TitleInfo: []mods.TitleInfo{{Title: "A Book"}},
		Abstract:  []mods.Abstract{{Value: "This is an abstract."}},
	}
	desc, err := ModsToCocina(doc, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []cocina.DescriptiveValue{
		{Value: "This is an abstract.", Type: "abstract"},
	}
	if diff := cmp.Diff(want, desc.Note); diff != "" {
		t.Errorf("note mismatch (-want +got):\n%s", diff)
	}
}

func TestModsToCocinaIdentifier(t *testing.T) {
	doc := &mods.Mods{
		TitleInfo:  []mods.TitleInfo{{Title: "A Book"}},
		Identifier: []mods.Identifier{{Type: "isbn", Value: "1234 5678 9203"}},
	}
	desc, err := ModsToCocina(doc, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []cocina.DescriptiveValue{
		{
			Value:  "1234 5678 9203",
			Type:   "ISBN",
			Source: &cocina.Source{Code: "isbn"},
		},
	}
	if diff := cmp.Diff(want, desc.Identifier); diff != "" {
		t.Errorf("identifier mismatch (-want +got):\n%s", diff)
	}
}

func TestModsToCocinaTitles(t *testing.T) {
	tests := []struct {
		name         string
		in           []mods.TitleInfo
		want         []cocina.DescriptiveValue
		wantWarnings []string
	}{
		{
			name: "plain",
			in:   []mods.TitleInfo{{Title: "Gawain and the Green Knight"}},
			want: []cocina.DescriptiveValue{{Value: "Gawain and the Green Knight"}},
		},
		{
			name: "structured with nonsorting count",
			in: []mods.TitleInfo{{
				NonSort:  "The ",
				Title:    "Journal of stuff",
				SubTitle: "subtitle",
			}},
			want: []cocina.DescriptiveValue{{
				StructuredValue: []cocina.DescriptiveValue{
					{Value: "The", Type: "nonsorting characters"},
					{Value: "Journal of stuff", Type: "main title"},
					{Value: "subtitle", Type: "subtitle"},
				},
				Note: []cocina.DescriptiveValue{
					{Value: "4", Type: "nonsorting character count"},
				},
			}},
		},
		{
			name: "nonsorting ending in apostrophe",
			in:   []mods.TitleInfo{{NonSort: "L'", Title: "affaire"}},
			want: []cocina.DescriptiveValue{{
				StructuredValue: []cocina.DescriptiveValue{
					{Value: "L'", Type: "nonsorting characters"},
					{Value: "affaire", Type: "main title"},
				},
				Note: []cocina.DescriptiveValue{
					{Value: "2", Type: "nonsorting character count"},
				},
			}},
		},
		{
			name: "multiple primary keeps first",
			in: []mods.TitleInfo{
				{Title: "First", Usage: "primary"},
				{Title: "Second", Usage: "primary"},
			},
			want: []cocina.DescriptiveValue{
				{Value: "First", Status: "primary"},
				{Value: "Second"},
			},
			wantWarnings: []string{"Multiple marked as primary"},
		},
		{
			name: "altRepGroup collapse",
			in: []mods.TitleInfo{
				{Title: "Latin title", AltRepGroup: "1", Usage: "primary"},
				{Title: "Cyrillic title", AltRepGroup: "1"},
			},
			want: []cocina.DescriptiveValue{{
				ParallelValue: []cocina.DescriptiveValue{
					{Value: "Latin title"},
					{Value: "Cyrillic title"},
				},
				Status: "primary",
			}},
		},
		{
			name: "orphan altRepGroup degrades",
			in:   []mods.TitleInfo{{Title: "Alone", AltRepGroup: "9"}},
			want: []cocina.DescriptiveValue{{Value: "Alone"}},
			wantWarnings: []string{
				"No matching altRepGroup",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cap notify.Capture
			desc, err := ModsToCocina(&mods.Mods{TitleInfo: tt.in}, Options{Notifier: &cap})
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, desc.Title); diff != "" {
				t.Errorf("title mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantWarnings, cap.Warnings()); diff != "" {
				t.Errorf("warnings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestModsToCocinaMissingTitle(t *testing.T) {
	var cap notify.Capture
	desc, err := ModsToCocina(&mods.Mods{}, Options{Notifier: &cap})
	if err != nil {
		t.Fatal(err)
	}
	want := []cocina.DescriptiveValue{{Value: DefaultFallbackTitle}}
	if diff := cmp.Diff(want, desc.Title); diff != "" {
		t.Errorf("title mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Missing title"}, cap.Errors()); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestModsToCocinaNameTitleGroup(t *testing.T) {
	doc := &mods.Mods{
		TitleInfo: []mods.TitleInfo{
			{Title: "Main title"},
			{Title: "Uniform title", Type: "uniform", NameTitleGroup: "1"},
		},
		Name: []mods.Name{{
			Type:           "personal",
			NameTitleGroup: "1",
			NamePart:       []mods.NamePart{{Value: "Smith, Jane"}},
		}},
	}
	desc, err := ModsToCocina(doc, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(desc.Title) != 2 {
		t.Fatalf("got %d titles, want 2", len(desc.Title))
	}
	wantNote := []cocina.DescriptiveValue{
		{Value: "Smith, Jane", Type: "associated name"},
	}
	if diff := cmp.Diff(wantNote, desc.Title[1].Note); diff != "" {
		t.Errorf("associated name mismatch (-want +got):\n%s", diff)
	}
	// the linked contributor stays in the contributor list
	if len(desc.Contributor) != 1 {
		t.Fatalf("got %d contributors, want 1", len(desc.Contributor))
	}
}

func TestModsToCocinaOrphanNameTitleGroup(t *testing.T) {
	var cap notify.Capture
	doc := &mods.Mods{
		TitleInfo: []mods.TitleInfo{
			{Title: "Uniform title", Type: "uniform", NameTitleGroup: "2"},
		},
	}
	desc, err := ModsToCocina(doc, Options{Notifier: &cap})
	if err != nil {
		t.Fatal(err)
	}
	if len(desc.Title[0].Note) != 0 {
		t.Errorf("got note %+v, want none", desc.Title[0].Note)
	}
	if diff := cmp.Diff([]string{"Name not found for title group"}, cap.Warnings()); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestModsToCocinaEmptyTitleNode(t *testing.T) {
	var cap notify.Capture
	doc := &mods.Mods{
		TitleInfo: []mods.TitleInfo{
			{Title: "Kept"},
			{},
		},
	}
	desc, err := ModsToCocina(doc, Options{Notifier: &cap})
	if err != nil {
		t.Fatal(err)
	}
	if len(desc.Title) != 1 {
		t.Fatalf("got %d titles, want 1", len(desc.Title))
	}
	if len(cap.Events) != 0 {
		t.Errorf("empty node without linkage should drop silently, got %v", cap.Events)
	}
}

func TestModsToCocinaDuplicateNames(t *testing.T) {
	var cap notify.Capture
	doc := &mods.Mods{
		TitleInfo: []mods.TitleInfo{{Title: "A Book"}},
		Name: []mods.Name{
			{
				Type:     "personal",
				NamePart: []mods.NamePart{{Value: "Smith, Jane"}},
				Role: []mods.Role{{RoleTerm: []mods.RoleTerm{
					{Type: "text", Value: "author"},
				}}},
			},
			{
				Type:     "personal",
				NamePart: []mods.NamePart{{Value: "Smith, Jane"}},
				Role: []mods.Role{{RoleTerm: []mods.RoleTerm{
					{Type: "text", Value: "editor"},
				}}},
			},
		},
	}
	desc, err := ModsToCocina(doc, Options{Notifier: &cap})
	if err != nil {
		t.Fatal(err)
	}
	if len(desc.Contributor) != 1 {
		t.Fatalf("got %d contributors, want 1", len(desc.Contributor))
	}
	wantRoles := []cocina.DescriptiveValue{{Value: "author"}, {Value: "editor"}}
	if diff := cmp.Diff(wantRoles, desc.Contributor[0].Role); diff != "" {
		t.Errorf("roles mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Duplicate name entry"}, cap.Warnings()); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestModsToCocinaLegacyEventType(t *testing.T) {
	doc := &mods.Mods{
		TitleInfo: []mods.TitleInfo{{Title: "A Book"}},
		OriginInfo: []mods.OriginInfo{{
			EventType:  "producer",
			DateIssued: []mods.DateValue{{Value: "1999"}},
		}},
	}
	desc, err := ModsToCocina(doc, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := desc.Event[0].Type; got != "production" {
		t.Errorf("got event type %q, want %q", got, "production")
	}
}

func TestModsToCocinaUndeterminedDateType(t *testing.T) {
	var cap notify.Capture
	doc := &mods.Mods{
		TitleInfo: []mods.TitleInfo{{Title: "A Book"}},
		OriginInfo: []mods.OriginInfo{{
			DateOther: []mods.DateValue{{Value: "1999"}},
		}},
	}
	desc, err := ModsToCocina(doc, Options{Notifier: &cap})
	if err != nil {
		t.Fatal(err)
	}
	if got := desc.Event[0].Date[0].Type; got != "" {
		t.Errorf("got date type %q, want untyped", got)
	}
	if diff := cmp.Diff([]string{"Undetermined date type"}, cap.Warnings()); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestModsToCocinaDateRange(t *testing.T) {
	doc := &mods.Mods{
		TitleInfo: []mods.TitleInfo{{Title: "A Book"}},
		OriginInfo: []mods.OriginInfo{{
			DateCreated: []mods.DateValue{
				{Value: "1920", Point: "start", KeyDate: "yes", Encoding: "w3cdtf"},
				{Value: "1935", Point: "end", Encoding: "w3cdtf"},
			},
		}},
	}
	desc, err := ModsToCocina(doc, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []cocina.DescriptiveValue{{
		Type: "creation",
		StructuredValue: []cocina.DescriptiveValue{
			{Value: "1920", Type: "start", Status: "primary", Encoding: &cocina.Source{Code: "w3cdtf"}},
			{Value: "1935", Type: "end", Encoding: &cocina.Source{Code: "w3cdtf"}},
		},
	}}
	if diff := cmp.Diff(want, desc.Event[0].Date); diff != "" {
		t.Errorf("date mismatch (-want +got):\n%s", diff)
	}
}

func TestModsToCocinaSubjects(t *testing.T) {
	var cap notify.Capture
	doc := &mods.Mods{
		TitleInfo: []mods.TitleInfo{{Title: "A Book"}},
		Subject: []mods.Subject{
			{
				Authority: "lcsh",
				Children: []mods.SubjectChild{
					{Kind: "topic", Term: &mods.SubjectTerm{Value: "Cats"}},
					{Kind: "geographic", Term: &mods.SubjectTerm{Value: "Europe"}},
					{Kind: "temporal", Term: &mods.SubjectTerm{Value: "20th century"}},
				},
			},
			{
				Authority: "marcountry",
				Children: []mods.SubjectChild{
					{Kind: "geographic", Term: &mods.SubjectTerm{Value: "France"}},
				},
			},
			{
				// legacy casing levels out without a correction warning
				Authority: "LCSH",
				Children: []mods.SubjectChild{
					{Kind: "topic", Term: &mods.SubjectTerm{Value: "Dogs"}},
				},
			},
		},
	}
	desc, err := ModsToCocina(doc, Options{Notifier: &cap})
	if err != nil {
		t.Fatal(err)
	}
	want := []cocina.DescriptiveValue{
		{
			StructuredValue: []cocina.DescriptiveValue{
				{Value: "Cats", Type: "topic"},
				{Value: "Europe", Type: "place"},
				{Value: "20th century", Type: "time"},
			},
			Source: &cocina.Source{Code: "lcsh"},
		},
		{
			Value:  "France",
			Type:   "place",
			Source: &cocina.Source{Code: "marccountry"},
		},
		{
			Value:  "Dogs",
			Type:   "topic",
			Source: &cocina.Source{Code: "lcsh"},
		},
	}
	if diff := cmp.Diff(want, desc.Subject); diff != "" {
		t.Errorf("subject mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Subject authority correction"}, cap.Warnings()); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestModsToCocinaAbstractValueAtConflict(t *testing.T) {
	var cap notify.Capture
	doc := &mods.Mods{
		TitleInfo: []mods.TitleInfo{{Title: "A Book"}},
		Abstract: []mods.Abstract{{
			Value:   "Inline text",
			ValueAt: "https://example.org/abstract.txt",
		}},
	}
	desc, err := ModsToCocina(doc, Options{Notifier: &cap})
	if err != nil {
		t.Fatal(err)
	}
	want := []cocina.DescriptiveValue{{Value: "Inline text", Type: "abstract"}}
	if diff := cmp.Diff(want, desc.Note); diff != "" {
		t.Errorf("note mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Abstract has both valueAt and text"}, cap.Warnings()); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestModsToCocinaPurl(t *testing.T) {
	doc := &mods.Mods{
		TitleInfo: []mods.TitleInfo{{Title: "A Book"}},
		Location: []mods.Location{{
			URL: []mods.URL{
				{Value: "https://purl.example.org/ab123cd4567", Usage: "primary display"},
				{Value: "https://library.example.org/record/1"},
			},
		}},
	}
	desc, err := ModsToCocina(doc, Options{Purl: "https://purl.example.org/ab123cd4567"})
	if err != nil {
		t.Fatal(err)
	}
	if desc.Purl != "https://purl.example.org/ab123cd4567" {
		t.Errorf("got purl %q", desc.Purl)
	}
	want := []cocina.DescriptiveValue{{Value: "https://library.example.org/record/1"}}
	if diff := cmp.Diff(want, desc.Access.URL); diff != "" {
		t.Errorf("access url mismatch (-want +got):\n%s", diff)
	}
}
