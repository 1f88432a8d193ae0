/*
Package wordlist reads dictionary source files.

A word list has one entry per line. An entry is a word, optionally followed
by white space and a non-negative integer value:

	# Thai words
	แมว
	กิน
	ปลา

	日本	100
	日本語	250

Lines starting with '#' and blank lines are ignored, as is a leading byte
order mark. Entries without a value get value 0.
*/
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/dictbreak/dictionary"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dictbreak'
func tracer() tracing.Trace {
	return tracing.Select("dictbreak")
}

// Reader streams dictionary entries from a word list.
// It implements dictionary.WordReader.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	entries int
}

var _ dictionary.WordReader = (*Reader)(nil)

func NewReader(reader io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(reader)}
}

// Next returns the next entry as (word, value).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, int32, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if r.line == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, value, err := r.decodeLine(line)
		if err != nil {
			return "", 0, err
		}
		r.entries++
		return word, value, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", 0, err
	}
	tracer().Debugf("word list: %d entries in %d lines", r.entries, r.line)
	return "", 0, io.EOF
}

// Line returns the number of the line read last.
func (r *Reader) Line() int {
	return r.line
}

func (r *Reader) decodeLine(line string) (string, int32, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		return fields[0], 0, nil
	case 2:
		v, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil || v < 0 {
			return "", 0, fmt.Errorf("line %d: invalid value %q for word %q", r.line, fields[1], fields[0])
		}
		return fields[0], int32(v), nil
	}
	return "", 0, fmt.Errorf("line %d: malformed entry %q", r.line, line)
}

// LoadDictionary compiles a word list into a dictionary and returns a
// matcher for it.
//
// Example usage:
//
//	f, _ := os.Open("path/to/thaidict.txt")
//	defer f.Close()
//
//	dict, err := wordlist.LoadDictionary(f, dictionary.BytesTrie, dictionary.OffsetTransform(0x0E00))
//
// The word list is held in memory while compiling.
func LoadDictionary(reader io.Reader, kind dictionary.TrieKind, transform dictionary.Transform) (dictionary.Matcher, error) {
	b, err := dictionary.NewBuilder(kind, transform)
	if err != nil {
		return nil, err
	}
	if err = b.AddAll(NewReader(reader)); err != nil {
		return nil, err
	}
	return b.Build()
}
