// Package byterange turns the value of an HTTP Range request header into the
// byte ranges of a resource of known size.
//
// Only the bytes unit is understood. A header that does not match the grammar,
// a resource of size zero and specs that fall outside the resource all result
// in no ranges rather than an error, which tells the caller to ignore the
// header and serve the full representation.
package byterange

import (
	"github.com/samber/mo"

	"github.com/slatedb/byterange-go/internal/assert"
	"github.com/slatedb/byterange-go/internal/grammar"
	"github.com/slatedb/byterange-go/internal/normalize"
	"github.com/slatedb/byterange-go/internal/types"
)

type ByteRange = types.ByteRange
type DropReason = types.DropReason
type ErrDropped = types.ErrDropped

const (
	DropBeyondEnd   = types.DropBeyondEnd
	DropInverted    = types.DropInverted
	DropEmptySuffix = types.DropEmptySuffix
)

// Drop describes a range spec that did not produce a range.
type Drop = normalize.Drop

// Parse returns the ranges requested by header, in header order, bounded by
// totalSize. The result is empty when the header is invalid, totalSize is
// zero or no spec is satisfiable.
//
//	Parse("bytes=10-100", 200)  // [{10 91}]
//	Parse("bytes=-100", 200)    // [{100 100}]
func Parse(header string, totalSize uint64) []ByteRange {
	if totalSize == 0 {
		return []ByteRange{}
	}
	return Inspect(header, totalSize).Ranges
}

// Inspect returns the same ranges as Parse together with what happened to
// every spec in the header.
func Inspect(header string, totalSize uint64) Report {
	return inspect(header, grammar.Tokenize(header), totalSize)
}

// Clamp re-bounds r against totalSize. Ranges returned by Parse for the same
// totalSize are returned unchanged.
func Clamp(r ByteRange, totalSize uint64) mo.Option[ByteRange] {
	return normalize.Clamp(r, totalSize)
}

// Report is the detailed outcome of parsing a Range header.
type Report struct {
	Header    string
	TotalSize uint64
	// Ranges are identical to what Parse returns.
	Ranges []ByteRange
	// Matched is true when the header matched the bytes grammar.
	Matched bool
	// Specs is the number of non-empty range specs in the header.
	Specs   int
	Dropped []Drop
}

// Unsatisfiable reports whether the header was well formed and named at
// least one range, yet none of them overlaps the resource. RFC 7233
// answers such a request with 416.
func (r Report) Unsatisfiable() bool {
	return r.Matched && r.Specs > 0 && len(r.Ranges) == 0
}

// Err describes why the header or some of its specs were ignored, or
// returns nil when every spec produced a range.
func (r Report) Err() error {
	var e types.ErrDropped
	if !r.Matched {
		e.Add("header %q is not a bytes range specifier", r.Header)
		return e.If()
	}
	if r.TotalSize == 0 {
		if r.Specs > 0 {
			e.Add("header %q: resource is empty, no range is satisfiable", r.Header)
		}
		return e.If()
	}
	for _, d := range r.Dropped {
		e.Add("spec %d %q: %s (size %d)", d.Index, d.Spec.String(), d.Reason, r.TotalSize)
	}
	return e.If()
}

func inspect(header string, tokens mo.Option[[]grammar.Spec], totalSize uint64) Report {
	report := Report{
		Header:    header,
		TotalSize: totalSize,
		Ranges:    []ByteRange{},
	}
	specs, ok := tokens.Get()
	if !ok {
		return report
	}
	report.Matched = true
	report.Specs = len(specs)
	report.Ranges, report.Dropped = normalize.Normalize(specs, totalSize)
	assert.Bounded(report.Ranges, totalSize)
	return report
}
