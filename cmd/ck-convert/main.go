// ck-convert converts bibliographic metadata to cocina descriptions, one
// JSON document per line.
//
//	$ ck-convert -f mods < collection.xml > out.jsonl
//	$ ck-convert -f marc records.mrc.gz > out.jsonl
package main

import (
	"context"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	gzip "github.com/klauspost/pgzip"
	"github.com/segmentio/encoding/json"
	"github.com/sirupsen/logrus"

	"github.com/dlss-labs/cocinakit"
	"github.com/dlss-labs/cocinakit/config"
	"github.com/dlss-labs/cocinakit/convert"
	"github.com/dlss-labs/cocinakit/marc"
	"github.com/dlss-labs/cocinakit/notify"
	"github.com/dlss-labs/cocinakit/pproc/record"
	"github.com/dlss-labs/cocinakit/schema/cocina"
	"github.com/dlss-labs/cocinakit/schema/mods"
)

var (
	fromFormat     = flag.String("f", "mods", "source format (mods, marc)")
	modsTag        = flag.String("tag", "mods", "element name to split MODS XML streams on")
	purlBase       = flag.String("purl", "", "purl of the object, or the purl base url")
	fallbackTitle  = flag.String("fallback-title", convert.DefaultFallbackTitle, "title substituted when a record has none")
	numWorkers     = flag.Int("w", runtime.NumCPU(), "number of workers for XML processing")
	maxTokenSize   = flag.Int("x", 1<<26, "max bytes per XML element")
	outputFile     = flag.String("o", "", "output file, compressed when named *.gz or *.zst (default stdout)")
	quiet          = flag.Bool("q", false, "suppress data anomaly logging")
	showVersion    = flag.Bool("version", false, "show version")
)

var help = `ck-convert reshapes bibliographic metadata into cocina descriptions.

Reads MODS XML (single records, modsCollection streams) or binary MARC from
stdin or from files given as arguments (.gz and .zst are decompressed
transparently) and writes one JSON document per line to stdout.

Examples:

    $ ck-convert -f mods < collection.xml > out.jsonl
    $ ck-convert -f marc records.mrc.zst > out.jsonl

Usage:

`

// doc is one output line: the description plus a stable key for downstream
// processing, a fresh urn:uuid when the record carries no identifier.
type doc struct {
	ID          string              `json:"id"`
	Description *cocina.Description `json:"description"`
}

func docID(desc *cocina.Description) string {
	for _, id := range desc.Identifier {
		if id.Value != "" && id.Status != "invalid" {
			return id.Value
		}
	}
	return "urn:uuid:" + uuid.NewString()
}

// openInput returns a reader over the named file, decompressing by file
// extension. "-" and "" mean stdin.
func openInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(name) {
	case ".gz":
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return r, nil
	case ".zst":
		r, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return r.IOReadCloser(), nil
	}
	return f, nil
}

// openOutput returns a writer to the named file, compressing by file
// extension. "" and "-" mean stdout.
func openOutput(name string) (io.WriteCloser, error) {
	if name == "" || name == "-" {
		return os.Stdout, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(name) {
	case ".gz":
		return closeChain{gzip.NewWriter(f), f}, nil
	case ".zst":
		w, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return closeChain{w, f}, nil
	}
	return f, nil
}

// closeChain closes the compressor before the underlying file.
type closeChain struct {
	io.WriteCloser
	file *os.File
}

func (c closeChain) Close() error {
	if err := c.WriteCloser.Close(); err != nil {
		c.file.Close()
		return err
	}
	return c.file.Close()
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, help)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *showVersion {
		fmt.Println(cocinakit.Version)
		os.Exit(0)
	}
	opts := convert.Options{
		FallbackTitle: *fallbackTitle,
		Purl:          firstNonEmpty(*purlBase, config.Default().PurlBase),
	}
	if !*quiet {
		opts.Notifier = notify.NewLog(nil)
	}
	w, err := openOutput(*outputFile)
	if err != nil {
		logrus.Fatal(err)
	}
	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, name := range inputs {
		r, err := openInput(name)
		if err != nil {
			logrus.Fatal(err)
		}
		switch *fromFormat {
		case "mods":
			err = convertMods(r, w, opts)
		case "marc":
			err = convertMarc(r, w, opts)
		default:
			logrus.Fatalf("unknown format: %s", *fromFormat)
		}
		r.Close()
		if err != nil {
			logrus.Fatal(err)
		}
	}
	if *outputFile != "" && *outputFile != "-" {
		if err := w.Close(); err != nil {
			logrus.Fatal(err)
		}
	}
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}

// convertMods cuts mods elements out of the XML stream and converts them in
// parallel.
func convertMods(r io.Reader, w io.Writer, opts convert.Options) error {
	proc := record.NewProcessor(func(p []byte) ([]byte, error) {
		var m mods.Mods
		if err := xml.Unmarshal(p, &m); err != nil {
			return nil, fmt.Errorf("mods: %v", err)
		}
		desc, err := convert.ModsToCocina(&m, opts)
		if err != nil {
			if _, ok := err.(convert.Skip); ok {
				return nil, nil
			}
			return nil, err
		}
		b, err := json.Marshal(doc{ID: docID(desc), Description: desc})
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	},
		record.WithWorkers(*numWorkers),
		record.WithMaxTokenSize(*maxTokenSize),
		record.WithSplit(record.TagSplitter(*modsTag, *maxTokenSize)))
	return proc.Process(context.Background(), r, w)
}

// convertMarc iterates over binary MARC records sequentially.
func convertMarc(r io.Reader, w io.Writer, opts convert.Options) error {
	var skipped int
	reader := marc.NewReader(r)
	enc := json.NewEncoder(w)
	for reader.Next() {
		rec, err := reader.Record()
		if err != nil {
			logrus.Warnf("skipping unparseable record: %v", err)
			skipped++
			continue
		}
		desc, err := convert.MarcToCocina(rec, opts)
		if err != nil {
			if _, ok := err.(convert.Skip); ok {
				skipped++
				continue
			}
			return err
		}
		if err := enc.Encode(doc{ID: docID(desc), Description: desc}); err != nil {
			return err
		}
	}
	if skipped > 0 {
		logrus.Infof("skipped %d records", skipped)
	}
	if err := reader.Err(); err != nil {
		return fmt.Errorf("marc: %v", err)
	}
	return nil
}
