package convert

import (
	"strings"

	"github.com/dlss-labs/cocinakit/marc"
	"github.com/dlss-labs/cocinakit/normal"
	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
)

// mapMarcAccess maps 852 holdings and 856 electronic locations. A url
// matching the record's persistent URL becomes the purl. 856 ind2="0" points
// at the resource itself and claims primary display.
func mapMarcAccess(rec *marc.Record, opts Options, n notify.Notifier) (*cocina.Access, string) {
	var (
		access cocina.Access
		purl   string
	)
	for _, f := range rec.DataField("852") {
		var parts []string
		for _, code := range []string{"a", "b", "c"} {
			for _, v := range f.Values(code) {
				if v = normal.StripTrailingPunct(v); v != "" {
					parts = append(parts, v)
				}
			}
		}
		if len(parts) > 0 {
			access.PhysicalLocation = append(access.PhysicalLocation, cocina.DescriptiveValue{
				Value: strings.Join(parts, ", "),
				Type:  "repository",
			})
		}
		for _, h := range f.Values("h") {
			if h = strings.TrimSpace(h); h != "" {
				access.PhysicalLocation = append(access.PhysicalLocation, cocina.DescriptiveValue{
					Value: h,
					Type:  "shelf locator",
				})
			}
		}
	}
	for _, f := range rec.DataField("856") {
		for _, u := range f.Values("u") {
			u = strings.TrimSpace(u)
			if u == "" {
				continue
			}
			if isPurl(u, opts) {
				purl = u
				continue
			}
			v := cocina.DescriptiveValue{
				Value:        u,
				DisplayLabel: strings.TrimSpace(f.Value("3")),
			}
			if f.Indicator2 == "0" {
				v.Status = "primary"
			}
			if z := strings.TrimSpace(f.Value("z")); z != "" {
				v.Note = []cocina.DescriptiveValue{{Value: z}}
			}
			access.URL = append(access.URL, v)
		}
	}
	access.URL = dedupePrimaries(access.URL, "url", n)
	if len(access.URL) == 0 && len(access.PhysicalLocation) == 0 &&
		len(access.AccessContact) == 0 && len(access.Note) == 0 {
		return nil, purl
	}
	return &access, purl
}
