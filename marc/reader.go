package marc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	recordTerminator   = 0x1d
	fieldTerminator    = 0x1e
	subfieldDelimiter  = 0x1f
	leaderLength       = 24
	directoryEntrySize = 12
)

var (
	ErrBadRecordStart = errors.New("marc: could not determine record base address")
	ErrBadDirectory   = errors.New("marc: malformed directory entry")
)

// Reader iterates over binary MARC records from an underlying reader.
//
//	r := marc.NewReader(f)
//	for r.Next() {
//	    rec, err := r.Record()
//	    ...
//	}
//	if err := r.Err(); err != nil { ... }
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader returns a Reader over a stream of binary MARC records.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1<<16), 1<<24)
	scanner.Split(splitRecords)
	return &Reader{scanner: scanner}
}

// Next advances to the next record.
func (r *Reader) Next() bool {
	return r.scanner.Scan()
}

// Err returns the first error encountered while scanning.
func (r *Reader) Err() error {
	return r.scanner.Err()
}

// Record parses the current record.
func (r *Reader) Record() (*Record, error) {
	return Parse(r.scanner.Bytes())
}

func splitRecords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, recordTerminator); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Parse decodes one binary MARC record (without the trailing record
// terminator).
func Parse(b []byte) (*Record, error) {
	if len(b) < leaderLength {
		return nil, fmt.Errorf("marc: record too short: %d bytes", len(b))
	}
	rec := &Record{
		Leader: Leader{
			Status:        b[5],
			Type:          b[6],
			BibLevel:      b[7],
			Control:       b[8],
			EncodingLevel: b[17],
			Form:          b[18],
			Multipart:     b[19],
		},
	}
	base, err := strconv.Atoi(string(b[12:17]))
	if err != nil || base <= leaderLength || base > len(b) {
		return nil, ErrBadRecordStart
	}
	data := b[base:]
	dir := b[leaderLength : base-1] // directory ends with a field terminator
	for len(dir) >= directoryEntrySize {
		tag := string(dir[:3])
		length, err := strconv.Atoi(string(dir[3:7]))
		if err != nil || length < 1 {
			return nil, ErrBadDirectory
		}
		begin, err := strconv.Atoi(string(dir[7:12]))
		if err != nil || begin < 0 {
			return nil, ErrBadDirectory
		}
		if begin+length > len(data) {
			return nil, ErrBadDirectory
		}
		fdata := data[begin : begin+length-1] // strip field terminator
		if strings.HasPrefix(tag, "00") {
			rec.Control = append(rec.Control, ControlField{Tag: tag, Value: string(fdata)})
		} else {
			rec.Fields = append(rec.Fields, parseDataField(tag, fdata))
		}
		dir = dir[directoryEntrySize:]
	}
	return rec, nil
}

func parseDataField(tag string, b []byte) DataField {
	df := DataField{Tag: tag}
	if len(b) < 2 {
		return df
	}
	df.Indicator1 = string(b[0])
	df.Indicator2 = string(b[1])
	for _, sf := range bytes.Split(b[2:], []byte{subfieldDelimiter}) {
		if len(sf) == 0 {
			continue
		}
		df.SubFields = append(df.SubFields, SubField{
			Code:  string(sf[0]),
			Value: string(sf[1:]),
		})
	}
	return df
}
