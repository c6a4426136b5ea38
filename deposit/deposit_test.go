package deposit

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dlss-labs/cocinakit/schema/datacite"
)

func payload(doi string) *datacite.Payload {
	return &datacite.Payload{
		Data: datacite.Data{
			Type: "dois",
			Attributes: datacite.Attributes{
				Event: "publish",
				DOI:   doi,
			},
		},
	}
}

func TestRegister(t *testing.T) {
	var (
		gotPath string
		gotBody string
		gotAuth bool
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" {
			t.Errorf("got method %s, want PUT", r.Method)
		}
		gotPath = r.URL.EscapedPath()
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		user, pass, ok := r.BasicAuth()
		gotAuth = ok && user == "repo" && pass == "secret"
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := &Client{
		Client:   srv.Client(),
		Endpoint: srv.URL,
		Username: "repo",
		Password: "secret",
	}
	if err := c.Register(payload("10.25740/zx123vc8976")); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/dois/10.25740%2Fzx123vc8976" {
		t.Errorf("got path %q", gotPath)
	}
	if !strings.Contains(gotBody, `"doi":"10.25740/zx123vc8976"`) {
		t.Errorf("body missing doi: %s", gotBody)
	}
	if !gotAuth {
		t.Error("basic auth not sent or wrong")
	}
}

func TestRegisterErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"title":"nope"}]}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := &Client{Client: srv.Client(), Endpoint: srv.URL}
	err := c.Register(payload("10.25740/zx123vc8976"))
	if err == nil {
		t.Fatal("want error on HTTP 422")
	}
	if !strings.Contains(err.Error(), "422") {
		t.Errorf("error should carry the status code: %v", err)
	}
	if err := c.Register(payload("")); err == nil {
		t.Fatal("want error on missing doi")
	}
}

func TestListUpdated(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page[cursor]") == "2" {
			fmt.Fprint(w, `{"data":[{"id":"10.25740/cc222dd4444"}],"links":{}}`)
			return
		}
		q := r.URL.Query().Get("query")
		if !strings.HasPrefix(q, "updated:[2026-01-01T00:00:00") {
			t.Errorf("got query %q", q)
		}
		fmt.Fprintf(w, `{"data":[{"id":"10.25740/aa111bb3333"}],"links":{"next":"%s/dois?page[cursor]=2"}}`,
			srv.URL)
	}))
	defer srv.Close()

	c := &Client{Client: srv.Client(), Endpoint: srv.URL}
	from := time.Date(2026, 1, 1, 15, 4, 5, 0, time.UTC)
	until := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	dois, err := c.ListUpdated("10.25740", from, until)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"10.25740/aa111bb3333", "10.25740/cc222dd4444"}
	if diff := cmp.Diff(want, dois); diff != "" {
		t.Errorf("dois mismatch (-want +got):\n%s", diff)
	}
}
