// ck-datacite assembles DataCite DOI payloads from cocina descriptions and
// optionally submits them to the DataCite REST API.
//
//	$ ck-datacite < descriptions.jsonl > payloads.jsonl
//	$ DATACITE_USER=... DATACITE_PASSWORD=... ck-datacite -submit < descriptions.jsonl
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/segmentio/encoding/json"
	"github.com/sirupsen/logrus"

	"github.com/dlss-labs/cocinakit"
	"github.com/dlss-labs/cocinakit/config"
	"github.com/dlss-labs/cocinakit/convert"
	"github.com/dlss-labs/cocinakit/deposit"
	"github.com/dlss-labs/cocinakit/schema/cocina"
)

var (
	submit      = flag.Bool("submit", false, "register each payload with DataCite")
	embargo     = flag.String("embargo", "", "embargo release date, sets the publication year")
	doi         = flag.String("doi", "", "doi override, useful for single-record input")
	showVersion = flag.Bool("version", false, "show version")
)

type line struct {
	ID          string              `json:"id"`
	Description *cocina.Description `json:"description"`
}

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Println(cocinakit.Version)
		os.Exit(0)
	}
	cfg := config.Default()
	opts := convert.Options{
		DOI:                *doi,
		EmbargoReleaseDate: *embargo,
	}
	var client *deposit.Client
	if *submit {
		client = deposit.New(cfg)
	}
	bw := bufio.NewWriter(os.Stdout)
	defer bw.Flush()
	enc := json.NewEncoder(bw)
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<26)
	var skipped int
	for scanner.Scan() {
		var l line
		if err := json.Unmarshal(scanner.Bytes(), &l); err != nil {
			logrus.Fatal(err)
		}
		desc := l.Description
		if desc == nil {
			desc = &cocina.Description{}
			if err := json.Unmarshal(scanner.Bytes(), desc); err != nil {
				logrus.Fatal(err)
			}
		}
		payload, err := convert.CocinaToDataCite(desc, opts)
		if err != nil {
			if _, ok := err.(convert.Skip); ok {
				skipped++
				continue
			}
			logrus.Fatal(err)
		}
		if err := enc.Encode(payload); err != nil {
			logrus.Fatal(err)
		}
		if client != nil {
			if err := client.Register(payload); err != nil {
				logrus.Fatal(err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		logrus.Fatal(err)
	}
	if skipped > 0 {
		logrus.Infof("skipped %d records without a doi", skipped)
	}
}
