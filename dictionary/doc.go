/*
Package dictionary loads compiled word dictionaries and matches them against text.

A dictionary is an immutable trie mapping words to integer values (for CJK,
the value is a word cost; for South-East Asian scripts it is unused). A
Matcher walks the trie from a cursor position and reports every dictionary
word which is a prefix of the remaining text.

Binary Format

A dictionary blob starts with the 4-byte magic "Dict" (0x44696374), followed
by 8 little endian int32 indexes, padding, and the raw trie bytes:

	indexes[0] offset of the trie, counted from the start of the indexes
	indexes[1] end of the trie (= start of reserved area 1)
	indexes[2] end of reserved area 1
	indexes[3] total size, counted from the start of the indexes
	indexes[4] trie type: 0 = bytes, 1 = chars; bit 3 = trie has values
	indexes[5] transform for bytes tries, e.g. 0x01000E00 (offset 0x0E00)
	indexes[6], indexes[7] reserved

Malformed blobs are rejected at load time with a *FormatError. Matching never
fails once a Matcher is constructed.

______________________________________________________________________

License

This project is provided under the terms of the 3-Clause BSD license.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package dictionary

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dictbreak'
func tracer() tracing.Trace {
	return tracing.Select("dictbreak")
}

// FormatError is returned for dictionary data which cannot be decoded.
type FormatError struct {
	Msg string
	Err error // underlying decoding error, may be nil
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dictionary format error: %s: %v", e.Msg, e.Err)
	}
	return "dictionary format error: " + e.Msg
}

func (e *FormatError) Unwrap() error { return e.Err }

func formatError(format string, args ...any) *FormatError {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}
