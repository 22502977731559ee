package types

import (
	"strconv"
)

// ByteRange is one concrete, resource relative sub-range.
// A ByteRange produced by the normalizer always has a non-zero Length
// and Offset+Length never exceeds the size it was normalized against.
type ByteRange struct {
	Offset uint64
	Length uint64
}

// End returns the inclusive position of the last byte in the range.
func (r ByteRange) End() uint64 {
	return r.Offset + r.Length - 1
}

func (r ByteRange) String() string {
	return strconv.FormatUint(r.Offset, 10) + ":" + strconv.FormatUint(r.Length, 10)
}

type DropReason byte

const (
	// DropBeyondEnd means the first byte of the spec is at or past the end of the resource.
	DropBeyondEnd DropReason = iota + 1
	// DropInverted means the last byte precedes the first byte after clamping.
	DropInverted
	// DropEmptySuffix means a suffix spec asked for zero bytes.
	DropEmptySuffix
)

func (d DropReason) String() string {
	switch d {
	case DropBeyondEnd:
		return "first byte beyond end of resource"
	case DropInverted:
		return "last byte precedes first byte"
	case DropEmptySuffix:
		return "zero length suffix"
	default:
		return "unknown"
	}
}

// ContentRange formats the Content-Range value of a 206 response carrying r.
func (r ByteRange) ContentRange(total uint64) string {
	return "bytes " + strconv.FormatUint(r.Offset, 10) + "-" + strconv.FormatUint(r.End(), 10) +
		"/" + strconv.FormatUint(total, 10)
}
