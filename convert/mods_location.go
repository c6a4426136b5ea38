package convert

import (
	"strings"

	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
	"github.com/dlss-labs/cocinakit/schema/mods"
)

// mapModsLocations maps location elements to access data. A url matching the
// record's persistent URL becomes the purl instead of an access url.
func mapModsLocations(locations []mods.Location, opts Options, n notify.Notifier) (*cocina.Access, string) {
	var (
		access cocina.Access
		purl   string
	)
	for _, loc := range locations {
		for _, pl := range loc.PhysicalLocation {
			if pl.Value == "" {
				continue
			}
			v := cocina.DescriptiveValue{
				Value:        pl.Value,
				Type:         pl.Type,
				DisplayLabel: pl.DisplayLabel,
			}
			if pl.Authority != "" {
				v.Source = &cocina.Source{Code: pl.Authority, URI: pl.AuthorityURI}
			}
			if pl.ValueURI != "" {
				v.URI = pl.ValueURI
			}
			if pl.Type == "repository" {
				access.AccessContact = append(access.AccessContact, v)
			} else {
				access.PhysicalLocation = append(access.PhysicalLocation, v)
			}
		}
		for _, sl := range loc.ShelfLocator {
			if sl != "" {
				access.PhysicalLocation = append(access.PhysicalLocation, cocina.DescriptiveValue{
					Value: sl,
					Type:  "shelf locator",
				})
			}
		}
		for _, u := range loc.URL {
			if u.Value == "" {
				continue
			}
			if isPurl(u.Value, opts) {
				purl = u.Value
				continue
			}
			v := cocina.DescriptiveValue{
				Value:        u.Value,
				DisplayLabel: u.DisplayLabel,
			}
			if u.Usage == "primary display" {
				v.Status = "primary"
			}
			if u.Note != "" {
				v.Note = []cocina.DescriptiveValue{{Value: u.Note}}
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

// isPurl reports whether a url is the record's persistent URL: an exact match
// on the configured purl, or a purl-host url when none is configured.
func isPurl(u string, opts Options) bool {
	if opts.Purl != "" {
		return strings.TrimRight(u, "/") == strings.TrimRight(opts.Purl, "/")
	}
	return strings.HasPrefix(u, "https://purl.") || strings.HasPrefix(u, "http://purl.")
}
