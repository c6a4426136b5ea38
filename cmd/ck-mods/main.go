// ck-mods renders cocina descriptions back to MODS XML.
//
//	$ ck-mods < descriptions.jsonl > collection.xml
package main

import (
	"bufio"
	"encoding/xml"
	"flag"
	"fmt"
	"os"

	"github.com/segmentio/encoding/json"
	"github.com/sirupsen/logrus"

	"github.com/dlss-labs/cocinakit"
	"github.com/dlss-labs/cocinakit/convert"
	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/schema/cocina"
)

var (
	collection  = flag.Bool("c", true, "wrap output in a modsCollection element")
	indent      = flag.String("indent", "  ", "indentation for the XML output")
	quiet       = flag.Bool("q", false, "suppress data anomaly logging")
	showVersion = flag.Bool("version", false, "show version")
)

// line is one input document: either a bare description or the envelope
// written by ck-convert.
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
	var opts convert.Options
	if !*quiet {
		opts.Notifier = notify.NewLog(nil)
	}
	bw := bufio.NewWriter(os.Stdout)
	defer bw.Flush()
	if *collection {
		fmt.Fprintln(bw, `<modsCollection xmlns="http://www.loc.gov/mods/v3">`)
	}
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<26)
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
		m, err := convert.CocinaToMods(desc, opts)
		if err != nil {
			logrus.Fatal(err)
		}
		b, err := xml.MarshalIndent(m, "", *indent)
		if err != nil {
			logrus.Fatal(err)
		}
		bw.Write(b)
		fmt.Fprintln(bw)
	}
	if err := scanner.Err(); err != nil {
		logrus.Fatal(err)
	}
	if *collection {
		fmt.Fprintln(bw, `</modsCollection>`)
	}
}
