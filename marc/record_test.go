package marc

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// encode builds a minimal binary MARC record from raw field bodies.
func encode(leaderType byte, fields []struct{ Tag, Body string }) []byte {
	var dir, data bytes.Buffer
	for _, f := range fields {
		begin := data.Len()
		data.WriteString(f.Body)
		data.WriteByte(fieldTerminator)
		dir.WriteString(fmt.Sprintf("%s%04d%05d", f.Tag, len(f.Body)+1, begin))
	}
	dir.WriteByte(fieldTerminator)
	base := leaderLength + dir.Len()
	total := base + data.Len() + 1
	leader := []byte(fmt.Sprintf("%05dnam a22%05d a 4500", total, base))
	leader[6] = leaderType
	var rec bytes.Buffer
	rec.Write(leader)
	rec.Write(dir.Bytes())
	rec.Write(data.Bytes())
	rec.WriteByte(recordTerminator)
	return rec.Bytes()
}

func sf(code, value string) string {
	return string(rune(subfieldDelimiter)) + code + value
}

func TestParse(t *testing.T) {
	raw := encode('a', []struct{ Tag, Body string }{
		{"001", "ocm123456"},
		{"008", "190101s2019    ru            000 0 rus d"},
		{"245", "10" + sf("a", "关于Go的书 /") + sf("c", "作者")},
		{"500", "  " + sf("a", "A general note.")},
		{"500", "  " + sf("a", "Another note.")},
	})
	rec, err := Parse(raw[:len(raw)-1])
	if err != nil {
		t.Fatal(err)
	}
	if rec.Leader.Type != 'a' {
		t.Errorf("leader type: got %c, want a", rec.Leader.Type)
	}
	if v, ok := rec.ControlValue("001"); !ok || v != "ocm123456" {
		t.Errorf("001: got %q, %v", v, ok)
	}
	titles := rec.DataField("245")
	if len(titles) != 1 {
		t.Fatalf("245: got %d fields", len(titles))
	}
	if titles[0].Indicator1 != "1" || titles[0].Indicator2 != "0" {
		t.Errorf("245 indicators: got %q %q", titles[0].Indicator1, titles[0].Indicator2)
	}
	if got := titles[0].Value("a"); got != "关于Go的书 /" {
		t.Errorf("245$a: got %q", got)
	}
	notes := rec.DataField("500")
	if len(notes) != 2 {
		t.Fatalf("500: got %d fields, want 2 (repeats preserved)", len(notes))
	}
	want := []string{"A general note.", "Another note."}
	var got []string
	for _, n := range notes {
		got = append(got, n.Value("a"))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("500 order (-want +got):\n%s", diff)
	}
}

func TestReader(t *testing.T) {
	var stream bytes.Buffer
	for i := 0; i < 3; i++ {
		stream.Write(encode('a', []struct{ Tag, Body string }{
			{"001", fmt.Sprintf("rec-%d", i)},
			{"245", "00" + sf("a", fmt.Sprintf("Title %d", i))},
		}))
	}
	r := NewReader(&stream)
	var ids []string
	for r.Next() {
		rec, err := r.Record()
		if err != nil {
			t.Fatal(err)
		}
		id, _ := rec.ControlValue("001")
		ids = append(ids, id)
	}
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"rec-0", "rec-1", "rec-2"}, ids); diff != "" {
		t.Errorf("record ids (-want +got):\n%s", diff)
	}
}

func TestLinkage(t *testing.T) {
	testCases := []struct {
		raw  string
		want Linkage
		ok   bool
	}{
		{"880-01", Linkage{Tag: "880", Occurrence: "01"}, true},
		{"245-01/$1", Linkage{Tag: "245", Occurrence: "01", Script: "$1"}, true},
		{"880-02/(3/r", Linkage{Tag: "880", Occurrence: "02", Script: "(3", Orientation: "r"}, true},
		{"880-00", Linkage{Tag: "880", Occurrence: "00"}, true},
		{"", Linkage{}, false},
		{"garbage", Linkage{}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			f := DataField{Tag: "880"}
			if tc.raw != "" {
				f.SubFields = []SubField{{Code: "6", Value: tc.raw}}
			}
			got, ok := f.Linkage()
			if ok != tc.ok {
				t.Fatalf("ok: got %v, want %v", ok, tc.ok)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("linkage (-want +got):\n%s", diff)
			}
		})
	}
	if (Linkage{Occurrence: "00"}).Linked() {
		t.Error("occurrence 00 must not count as linked")
	}
	if !(Linkage{Occurrence: "01"}).Linked() {
		t.Error("occurrence 01 must count as linked")
	}
}

func TestParseTooShort(t *testing.T) {
	if _, err := Parse([]byte("short")); err == nil {
		t.Fatal("expected error for truncated record")
	}
	if _, err := Parse([]byte(strings.Repeat(" ", 24))); err == nil {
		t.Fatal("expected error for blank leader")
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{
			name: "base address inside the leader",
			raw:  []byte("00024nam a2200010 a 4500"),
		},
		{
			name: "zero length directory entry",
			raw:  []byte("00041nam a2200037 a 4500" + "245000000000" + "\x1e" + "data"),
		},
		{
			name: "negative field offset",
			raw:  []byte("00041nam a2200037 a 4500" + "2450004-0001" + "\x1e" + "data"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.raw); err == nil {
				t.Fatal("expected error for malformed record")
			}
		})
	}
}
