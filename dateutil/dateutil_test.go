package dateutil

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string // RFC3339, "" means parse error expected
	}{
		{"2027-06-01", "2027-06-01T00:00:00Z"},
		{"June 1, 2027", "2027-06-01T00:00:00Z"},
		{"2027", "2027-01-01T00:00:00Z"},
		{"not a date", ""},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.want == "" {
			if err == nil {
				t.Errorf("Parse(%q): want error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		want := MustParse(tt.want)
		if !got.Equal(want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, want)
		}
	}
}

func TestISODate(t *testing.T) {
	in := time.Date(2027, 6, 1, 17, 30, 12, 0, time.UTC)
	if got := ISODate(in); got != "2027-06-01" {
		t.Errorf("ISODate = %q, want %q", got, "2027-06-01")
	}
}
