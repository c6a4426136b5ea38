// Package deposit submits DOI metadata to the DataCite REST API.
package deposit

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/segmentio/encoding/json"
	"github.com/sethgrid/pester"
	"github.com/sirupsen/logrus"

	"github.com/dlss-labs/cocinakit/config"
	"github.com/dlss-labs/cocinakit/dateutil"
	"github.com/dlss-labs/cocinakit/schema/datacite"
)

// Doer abstracts https://pkg.go.dev/net/http#Client.Do.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to one DataCite account. Register is idempotent: DataCite
// treats PUT /dois/{id} as create-or-update.
type Client struct {
	Client    Doer
	Endpoint  string // e.g. https://api.datacite.org
	Username  string
	Password  string
	UserAgent string
}

// New returns a client with a retrying HTTP client configured from cfg.
func New(cfg *config.Config) *Client {
	httpClient := pester.New()
	httpClient.Backoff = pester.ExponentialBackoff
	httpClient.MaxRetries = cfg.MaxRetries
	httpClient.Timeout = cfg.Timeout
	httpClient.RetryOnHTTP429 = true
	return &Client{
		Client:    httpClient,
		Endpoint:  cfg.DataCiteEndpoint,
		Username:  cfg.DataCiteUser,
		Password:  cfg.DataCitePassword,
		UserAgent: config.AppName,
	}
}

// Register creates or updates the DOI named in the payload.
func (c *Client) Register(payload *datacite.Payload) error {
	doi := payload.Data.Attributes.DOI
	if doi == "" {
		return fmt.Errorf("deposit: payload has no doi")
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s/dois/%s", c.Endpoint, url.PathEscape(doi))
	req, err := http.NewRequest("PUT", link, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/vnd.api+json")
	req.Header.Set("User-Agent", c.UserAgent)
	req.SetBasicAuth(c.Username, c.Password)
	started := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("deposit: HTTP %d for %s: %s", resp.StatusCode, doi, string(body))
	}
	logrus.WithFields(logrus.Fields{
		"doi":    doi,
		"status": resp.StatusCode,
		"t":      time.Since(started),
	}).Debug("doi registered")
	return nil
}

// listResponse is the slice of a DOI listing we care about: ids and the
// pagination cursor link.
type listResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
}

// ListUpdated returns the DOIs under a prefix updated between the days of
// from and until, inclusive.
func (c *Client) ListUpdated(prefix string, from, until time.Time) ([]string, error) {
	vs := url.Values{}
	vs.Set("prefix", prefix)
	vs.Set("query", fmt.Sprintf("updated:[%s TO %s]",
		dateutil.Day(from).Format(time.RFC3339),
		dateutil.Day(until).AddDate(0, 0, 1).Add(-time.Second).Format(time.RFC3339)))
	vs.Set("page[size]", "1000")
	var (
		dois []string
		link = fmt.Sprintf("%s/dois?%s", c.Endpoint, vs.Encode())
	)
	for link != "" {
		req, err := http.NewRequest("GET", link, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", c.UserAgent)
		req.SetBasicAuth(c.Username, c.Password)
		resp, err := c.Client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("deposit: HTTP %d while listing %s", resp.StatusCode, link)
		}
		var lr listResponse
		err = json.NewDecoder(resp.Body).Decode(&lr)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		for _, d := range lr.Data {
			dois = append(dois, d.ID)
		}
		link = lr.Links.Next
	}
	return dois, nil
}
