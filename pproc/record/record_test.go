package record

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestFindFirstCompleteTag(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		tagName   string
		wantStart int
		wantEnd   int
	}{
		{
			name:      "single element",
			input:     `<mods><titleInfo/></mods>`,
			tagName:   "mods",
			wantStart: 0,
			wantEnd:   25,
		},
		{
			name:      "multiple elements, finds first",
			input:     `<mods>a</mods><mods>b</mods>`,
			tagName:   "mods",
			wantStart: 0,
			wantEnd:   14,
		},
		{
			name:      "nested same-name elements, finds outermost",
			input:     `<relatedItem>host<relatedItem>series</relatedItem></relatedItem>`,
			tagName:   "relatedItem",
			wantStart: 0,
			wantEnd:   64,
		},
		{
			name:      "with attributes",
			input:     `<mods version="3.7">x</mods>`,
			tagName:   "mods",
			wantStart: 0,
			wantEnd:   28,
		},
		{
			name:      "self-closing tag",
			input:     `<mods/>`,
			tagName:   "mods",
			wantStart: 0,
			wantEnd:   7,
		},
		{
			name:      "no matching elements",
			input:     `<marc>not mods</marc>`,
			tagName:   "mods",
			wantStart: -1,
			wantEnd:   -1,
		},
		{
			name:      "unclosed element",
			input:     `<mods>unclosed`,
			tagName:   "mods",
			wantStart: 0,
			wantEnd:   -1,
		},
		{
			name:      "similar tag names skipped",
			input:     `<modsCollection><mods>x</mods></modsCollection>`,
			tagName:   "mods",
			wantStart: 16,
			wantEnd:   30,
		},
		{
			name:      "with newlines and indentation",
			input:     "<mods>\n  <titleInfo>\n  </titleInfo>\n</mods>",
			tagName:   "mods",
			wantStart: 0,
			wantEnd:   43,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStart, gotEnd := findFirstCompleteTag([]byte(tt.input), tt.tagName)
			if gotStart != tt.wantStart || gotEnd != tt.wantEnd {
				t.Errorf("findFirstCompleteTag() = (%v, %v), want (%v, %v)",
					gotStart, gotEnd, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestTagSplitter(t *testing.T) {
	input := `<modsCollection><mods>first</mods><mods>second</mods><mods>third</mods></modsCollection>`
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Split(TagSplitter("mods", 1000))
	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanner: %v", err)
	}
	want := []string{
		"<mods>first</mods>",
		"<mods>second</mods>",
		"<mods>third</mods>",
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens (%v), want %d", len(tokens), tokens, len(want))
	}
	for i, token := range tokens {
		if token != want[i] {
			t.Errorf("token %d: got %q, want %q", i, token, want[i])
		}
	}
}

func TestTagSplitterInvalid(t *testing.T) {
	scanner := bufio.NewScanner(strings.NewReader("<a></a>"))
	scanner.Split(TagSplitter("", 1000))
	for scanner.Scan() {
	}
	if err := scanner.Err(); err != ErrInvalidSplitter {
		t.Fatalf("got %v, want ErrInvalidSplitter", err)
	}
}

func TestTagSplitterTokenTooLarge(t *testing.T) {
	input := "<mods>" + strings.Repeat("x", 100)
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Split(TagSplitter("mods", 50))
	for scanner.Scan() {
	}
	if err := scanner.Err(); err != ErrTokenTooLarge {
		t.Fatalf("got %v, want ErrTokenTooLarge", err)
	}
}

func TestProcessor(t *testing.T) {
	var input bytes.Buffer
	for i := 0; i < 100; i++ {
		input.WriteString("x\n")
	}
	var output bytes.Buffer
	p := NewProcessor(func(b []byte) ([]byte, error) {
		return append(bytes.ToUpper(b), '\n'), nil
	}, WithWorkers(4))
	if err := p.Process(context.Background(), &input, &output); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	if len(lines) != 100 {
		t.Fatalf("got %d lines, want 100", len(lines))
	}
	for _, line := range lines {
		if line != "X" {
			t.Errorf("got line %q, want %q", line, "X")
		}
	}
}

func TestProcessorSkips(t *testing.T) {
	input := strings.NewReader("keep\ndrop\nkeep\n")
	var output bytes.Buffer
	p := NewProcessor(func(b []byte) ([]byte, error) {
		if string(b) == "drop" {
			return nil, nil
		}
		return append(b, '\n'), nil
	}, WithWorkers(2))
	if err := p.Process(context.Background(), input, &output); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(output.String(), "keep"); got != 2 {
		t.Errorf("got %d kept records, want 2", got)
	}
	if strings.Contains(output.String(), "drop") {
		t.Errorf("skipped record leaked into output: %q", output.String())
	}
}
