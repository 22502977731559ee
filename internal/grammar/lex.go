package grammar

import "math"

// This file deals with the lexical side of a byte-ranges-specifier.
//
// DIGIT = %x30-39
// OWS   = *( SP / HTAB )

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) skipSpace() {
	for !s.eof() && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// accept consumes c if it is the next byte.
func (s *scanner) accept(c byte) bool {
	if !s.eof() && s.src[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

// digits consumes 1*DIGIT and returns its value. ok is false when no digit
// is present or the value does not fit in a uint64.
func (s *scanner) digits() (n uint64, ok bool) {
	start := s.pos
	for !s.eof() && isDigit(s.src[s.pos]) {
		d := uint64(s.src[s.pos] - '0')
		if n > (math.MaxUint64-d)/10 {
			return 0, false
		}
		n = n*10 + d
		s.pos++
	}
	return n, s.pos > start
}
