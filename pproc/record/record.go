package record

import (
	"bytes"
	"errors"
)

var (
	ErrTokenTooLarge   = errors.New("record: token exceeds size limit")
	ErrInvalidSplitter = errors.New("record: invalid splitter")
)

// TagSplitter returns a bufio.SplitFunc cutting complete XML elements of the
// given name out of a stream, e.g. mods elements from a modsCollection. It
// does not parse the XML; it scans for matching start and end tags, honoring
// nesting of the same name (a relatedItem can contain a relatedItem). Bytes
// between elements are discarded. An element larger than maxTokenSize fails
// the scan with ErrTokenTooLarge.
func TagSplitter(tagName string, maxTokenSize int) func(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if tagName == "" || maxTokenSize <= 0 {
		return func(data []byte, atEOF bool) (int, []byte, error) {
			return 0, nil, ErrInvalidSplitter
		}
	}
	return func(data []byte, atEOF bool) (int, []byte, error) {
		start, end := findFirstCompleteTag(data, tagName)
		switch {
		case start < 0:
			// no start tag; at EOF the tail is junk, otherwise keep just
			// enough bytes for a start tag straddling the read boundary
			if atEOF {
				return len(data), nil, nil
			}
			if keep := len(tagName) + 1; len(data) > keep {
				return len(data) - keep, nil, nil
			}
			return 0, nil, nil
		case end < 0:
			// open element, need more data
			if atEOF {
				return len(data), nil, nil
			}
			if start > 0 {
				return start, nil, nil
			}
			if len(data) >= maxTokenSize {
				return 0, nil, ErrTokenTooLarge
			}
			return 0, nil, nil
		default:
			return end, data[start:end], nil
		}
	}
}

func isTagEnd(c byte) bool {
	switch c {
	case '>', ' ', '/', '\n', '\t', '\r':
		return true
	}
	return false
}

// findFirstCompleteTag locates the first complete element named tagName and
// returns its byte offsets. end is -1 when the element is still open, both
// are -1 when no start tag exists. Same-name nesting is tracked by depth.
func findFirstCompleteTag(data []byte, tagName string) (start, end int) {
	var (
		open    = []byte("<" + tagName)
		closing = []byte("</" + tagName + ">")
		from    = 0
	)
	for {
		i := bytes.Index(data[from:], open)
		if i < 0 {
			return -1, -1
		}
		start = from + i
		rest := start + len(open)
		// a longer tag name sharing the prefix, e.g. modsCollection vs mods
		if rest < len(data) && !isTagEnd(data[rest]) {
			from = start + 1
			continue
		}
		gt := bytes.IndexByte(data[rest:], '>')
		if gt < 0 {
			return start, -1
		}
		gt += rest
		if data[gt-1] == '/' {
			return start, gt + 1
		}
		depth := 1
		pos := gt + 1
		for depth > 0 {
			c := bytes.Index(data[pos:], closing)
			if c < 0 {
				return start, -1
			}
			c += pos
			// same-name elements opened before this closing tag deepen
			// the nesting
			scan := pos
			for {
				o := bytes.Index(data[scan:c], open)
				if o < 0 {
					break
				}
				abs := scan + o
				if t := abs + len(open); t < len(data) && isTagEnd(data[t]) {
					depth++
				}
				scan = abs + 1
			}
			depth--
			if depth == 0 {
				return start, c + len(closing)
			}
			pos = c + len(closing)
		}
	}
}
