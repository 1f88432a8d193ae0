package dictionary

import (
	"fmt"
	"strconv"
	"strings"
)

// Transform constants as stored in the dictionary header.
const (
	TransformNone       uint32 = 0
	TransformTypeOffset uint32 = 0x01000000
	TransformTypeMask   uint32 = 0x7F000000
	TransformOffsetMask uint32 = 0x001FFFFF
)

const (
	zwj  = 0x200D
	zwnj = 0x200C
)

// Transform maps code-points onto the byte alphabet of a bytes trie.
type Transform interface {
	Apply(c rune) int // byte value, or -1 if c is not representable
	Header() uint32   // encoding for the dictionary header
}

// OffsetTransform maps the 0xFE code-points starting at the offset to
// bytes 0x00…0xFD. ZWNJ and ZWJ map to 0xFE and 0xFF.
type OffsetTransform rune

// Apply maps c to its byte value.
func (t OffsetTransform) Apply(c rune) int {
	switch c {
	case zwj:
		return 0xFF
	case zwnj:
		return 0xFE
	}
	delta := c - rune(t)
	if delta < 0 || delta > 0xFD {
		return -1
	}
	return int(delta)
}

// Header returns the header encoding of t.
func (t OffsetTransform) Header() uint32 {
	return TransformTypeOffset | uint32(t)&TransformOffsetMask
}

func (t OffsetTransform) String() string {
	return fmt.Sprintf("offset-0x%04x", rune(t))
}

// IdentityTransform uses code-points 0x00…0xFF as bytes. ZWNJ and ZWJ map
// to 0xFE and 0xFF.
type IdentityTransform struct{}

// Apply maps c to its byte value.
func (IdentityTransform) Apply(c rune) int {
	switch c {
	case zwj:
		return 0xFF
	case zwnj:
		return 0xFE
	}
	if c < 0 || c > 0xFF {
		return -1
	}
	return int(c)
}

// Header returns TransformNone.
func (IdentityTransform) Header() uint32 { return TransformNone }

func (IdentityTransform) String() string { return "none" }

// TransformFromHeader decodes the transform word of a dictionary header.
func TransformFromHeader(h uint32) (Transform, error) {
	switch h & TransformTypeMask {
	case TransformNone:
		return IdentityTransform{}, nil
	case TransformTypeOffset:
		return OffsetTransform(h & TransformOffsetMask), nil
	}
	return nil, formatError("unsupported transform type 0x%08x", h&TransformTypeMask)
}

// ParseTransform parses a transform specification of the form
// "offset-0x0E00", or "none" (or "") for the identity transform.
func ParseTransform(spec string) (Transform, error) {
	if spec == "" || spec == "none" {
		return IdentityTransform{}, nil
	}
	hex, ok := strings.CutPrefix(spec, "offset-")
	if !ok {
		return nil, fmt.Errorf("unknown transform %q", spec)
	}
	offset, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(hex), "0x"), 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad transform offset %q: %w", hex, err)
	}
	if uint32(offset)&^TransformOffsetMask != 0 {
		return nil, fmt.Errorf("transform offset %q out of range", hex)
	}
	return OffsetTransform(offset), nil
}
