// Copyright 2024 The apkver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apk

// Version layout: {digit}{.digit}...{letter}{_suf{#}}...{-r#}

// tokenKind classifies the next component of a version string. Kinds are
// ordered: along a scan they may only grow, except for the transitions
// listed in backwardOK.
type tokenKind int

const (
	kindInvalid tokenKind = iota - 1
	kindDigitOrZero
	kindDigit
	kindLetter
	kindSuffix
	kindSuffixNo
	kindRevisionNo
	kindEnd
)

var kindNames = [...]string{
	"invalid",
	"digit-or-zero",
	"digit",
	"letter",
	"suffix",
	"suffix-no",
	"revision-no",
	"end",
}

func (k tokenKind) String() string {
	if k < kindInvalid || k > kindEnd {
		return "unknown"
	}
	return kindNames[k+1]
}

func (k tokenKind) terminal() bool {
	return k == kindEnd || k == kindInvalid
}

// backwardOK lists the only (next, current) pairs where the kind may decrease.
var backwardOK = map[[2]tokenKind]bool{
	{kindDigitOrZero, kindDigit}: true, // 1.2 -> next group
	{kindSuffix, kindSuffixNo}:   true, // _alpha1_p2
	{kindDigit, kindLetter}:      true, // 1a2
}

// scanner is a cursor over a version string. The remaining span is src[pos:].
type scanner struct {
	src  string
	pos  int
	kind tokenKind
}

func newScanner(s string) scanner {
	return scanner{src: s, kind: kindDigit}
}

// empty reports whether the span is exhausted. A NUL byte ends the span.
func (s *scanner) empty() bool {
	return s.pos >= len(s.src) || s.src[s.pos] == 0
}

func (s *scanner) peekByte(off int) (byte, bool) {
	if s.pos+off >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos+off], true
}

// nextKind determines the kind following cur and consumes separator bytes
// ('.', '_', "-r") that do not belong to the next value.
func (s *scanner) nextKind(cur tokenKind) tokenKind {
	if s.empty() {
		return kindEnd
	}
	c := s.src[s.pos]
	var n tokenKind
	switch {
	case (cur == kindDigit || cur == kindDigitOrZero) && isLower(c):
		n = kindLetter
	case cur == kindLetter && isDigit(c):
		n = kindDigit
	case cur == kindSuffix && isDigit(c):
		n = kindSuffixNo
	default:
		n = kindInvalid
		switch c {
		case '.':
			n = kindDigitOrZero
		case '_':
			n = kindSuffix
		case '-':
			if r, ok := s.peekByte(1); ok && r == 'r' {
				n = kindRevisionNo
				s.pos++
			}
		}
		s.pos++
	}
	return guard(n, cur)
}

// guard rejects a transition from cur to n that would decrease the kind,
// unless the pair is listed in backwardOK.
func guard(n, cur tokenKind) tokenKind {
	if n < cur && !backwardOK[[2]tokenKind{n, cur}] {
		return kindInvalid
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}
