package normalize

import (
	"github.com/samber/mo"

	"github.com/slatedb/byterange-go/internal/grammar"
	"github.com/slatedb/byterange-go/internal/types"
)

// Drop records a spec that did not produce a range.
type Drop struct {
	// Index is the position of the spec among the non-empty specs of the header.
	Index  int
	Spec   grammar.Spec
	Reason types.DropReason
}

// Resolve converts a single spec into a range bounded by total.
// Left holds the reason the spec was dropped.
func Resolve(spec grammar.Spec, total uint64) mo.Either[types.DropReason, types.ByteRange] {
	switch spec.Kind {
	case grammar.KindFromToAll:
		if spec.First >= total {
			return drop(types.DropBeyondEnd)
		}
		last := min(spec.Last, total-1)
		if spec.First > last {
			return drop(types.DropInverted)
		}
		return keep(spec.First, last-spec.First+1)

	case grammar.KindFromTo:
		if spec.First >= total {
			return drop(types.DropBeyondEnd)
		}
		return keep(spec.First, total-spec.First)

	case grammar.KindLast:
		length := min(spec.Suffix, total)
		if length == 0 {
			return drop(types.DropEmptySuffix)
		}
		return keep(total-length, length)
	}
	panic("normalize: unknown spec kind " + spec.Kind.String())
}

// Normalize resolves every spec against total in order. Surviving ranges keep
// the header order and are never merged or reordered.
func Normalize(specs []grammar.Spec, total uint64) ([]types.ByteRange, []Drop) {
	var dropped []Drop
	ranges := make([]types.ByteRange, 0, len(specs))
	for i, spec := range specs {
		res := Resolve(spec, total)
		if r, ok := res.Right(); ok {
			ranges = append(ranges, r)
			continue
		}
		dropped = append(dropped, Drop{Index: i, Spec: spec, Reason: res.MustLeft()})
	}
	return ranges, dropped
}

// Clamp normalizes an existing range against total as if it were the spec
// "offset-(offset+length-1)". Ranges produced by Normalize come back unchanged.
func Clamp(r types.ByteRange, total uint64) mo.Option[types.ByteRange] {
	if r.Length == 0 {
		return mo.None[types.ByteRange]()
	}
	// offset+length-1 can only overflow for ranges that were never normalized
	last := r.Offset + (r.Length - 1)
	if last < r.Offset {
		last = ^uint64(0)
	}
	res := Resolve(grammar.FromToAll(r.Offset, last), total)
	if v, ok := res.Right(); ok {
		return mo.Some(v)
	}
	return mo.None[types.ByteRange]()
}

func keep(offset, length uint64) mo.Either[types.DropReason, types.ByteRange] {
	return mo.Right[types.DropReason](types.ByteRange{Offset: offset, Length: length})
}

func drop(reason types.DropReason) mo.Either[types.DropReason, types.ByteRange] {
	return mo.Left[types.DropReason, types.ByteRange](reason)
}
