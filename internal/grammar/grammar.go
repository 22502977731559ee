// Package grammar recognizes the bytes form of the HTTP Range header.
//
//	byte-ranges-specifier = "bytes=" range-spec *( OWS "," OWS range-spec )
//	range-spec            = first-last / first- / -suffix / <empty>
//
// The whole header either matches or it does not; there is no recovery of
// individual specs at the syntax level. See https://tools.ietf.org/html/rfc7233
package grammar

import (
	"strconv"
	"strings"

	"github.com/samber/mo"
)

const Prefix = "bytes="

type Kind byte

const (
	// KindFromToAll is "first-last".
	KindFromToAll Kind = iota + 1
	// KindFromTo is "first-".
	KindFromTo
	// KindLast is "-suffix".
	KindLast
)

func (k Kind) String() string {
	switch k {
	case KindFromToAll:
		return "FromToAll"
	case KindFromTo:
		return "FromTo"
	case KindLast:
		return "Last"
	default:
		return "Unknown"
	}
}

// Spec is a single syntactically valid range-spec. Which fields are
// meaningful depends on Kind.
type Spec struct {
	Kind Kind
	// First is the first byte position for KindFromToAll and KindFromTo.
	First uint64
	// Last is the inclusive last byte position for KindFromToAll.
	Last uint64
	// Suffix is the number of trailing bytes for KindLast.
	Suffix uint64
}

func FromToAll(first, last uint64) Spec {
	return Spec{Kind: KindFromToAll, First: first, Last: last}
}

func FromTo(first uint64) Spec {
	return Spec{Kind: KindFromTo, First: first}
}

func Last(suffix uint64) Spec {
	return Spec{Kind: KindLast, Suffix: suffix}
}

// String renders the spec in its canonical header form.
func (s Spec) String() string {
	switch s.Kind {
	case KindFromToAll:
		return strconv.FormatUint(s.First, 10) + "-" + strconv.FormatUint(s.Last, 10)
	case KindFromTo:
		return strconv.FormatUint(s.First, 10) + "-"
	case KindLast:
		return "-" + strconv.FormatUint(s.Suffix, 10)
	default:
		return "?"
	}
}

// Tokenize matches header against the byte-ranges-specifier grammar and
// returns the specs in header order. Empty specs between commas are skipped.
// None is returned when any part of the header fails to match.
func Tokenize(header string) mo.Option[[]Spec] {
	if !strings.HasPrefix(header, Prefix) {
		return mo.None[[]Spec]()
	}

	s := &scanner{src: header[len(Prefix):]}
	specs := make([]Spec, 0, strings.Count(s.src, ",")+1)
	for {
		s.skipSpace()
		if !s.eof() && s.peek() != ',' {
			spec, ok := rangeSpec(s)
			if !ok {
				return mo.None[[]Spec]()
			}
			specs = append(specs, spec)
			s.skipSpace()
		}

		if s.eof() {
			return mo.Some(specs)
		}
		if !s.accept(',') {
			return mo.None[[]Spec]()
		}
	}
}

// rangeSpec parses one non-empty range-spec starting at the current position.
func rangeSpec(s *scanner) (Spec, bool) {
	if s.accept('-') {
		s.skipSpace()
		suffix, ok := s.digits()
		if !ok {
			return Spec{}, false
		}
		return Last(suffix), true
	}

	first, ok := s.digits()
	if !ok {
		return Spec{}, false
	}
	s.skipSpace()
	if !s.accept('-') {
		return Spec{}, false
	}
	s.skipSpace()

	if !isDigit(s.peek()) {
		return FromTo(first), true
	}
	last, ok := s.digits()
	if !ok {
		return Spec{}, false
	}
	return FromToAll(first, last), true
}
