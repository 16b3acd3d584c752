// Copyright 2024 The apkver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package apk compares and validates package versions in the scheme used by
// Alpine's package keeper:
//
//	{digit}{.digit}...{letter}{_suf{#}}...{-r#}
//
// Suffix words alpha, beta, pre and rc mark pre-releases and sort below the
// bare version; cvs, svn, git, hg and p sort above it.
package apk

import (
	"slices"
	"unsafe"
)

var (
	preSuffixes  = []string{"alpha", "beta", "pre", "rc"}
	postSuffixes = []string{"cvs", "svn", "git", "hg", "p"}
)

// next extracts the value of the current token, consumes it and moves the
// scanner to the kind of the following token. On failure the kind becomes
// kindInvalid and the value is 0.
func (s *scanner) next() int {
	if s.empty() {
		return s.fail()
	}

	start := s.pos
	v := 0
	switch s.kind {
	case kindDigitOrZero:
		if s.src[s.pos] != '0' {
			if v = s.digits(); s.pos == start {
				return s.fail()
			}
			break
		}
		// Leading zeros rank by count; the digits after them, if any, form
		// a group of their own.
		for s.pos < len(s.src) && s.src[s.pos] == '0' {
			s.pos++
		}
		v = -(s.pos - start)
		s.kind = kindDigit
		if c, ok := s.peekByte(0); ok && isDigit(c) {
			return v
		}
	case kindDigit, kindSuffixNo, kindRevisionNo:
		if v = s.digits(); s.pos == start {
			return s.fail()
		}
	case kindLetter:
		v = int(s.src[s.pos])
		s.pos++
	case kindSuffix:
		var ok bool
		if v, ok = s.suffix(); !ok {
			return s.fail()
		}
	default:
		return s.fail()
	}

	if s.empty() {
		s.kind = kindEnd
	} else {
		s.kind = s.nextKind(s.kind)
	}
	return v
}

func (s *scanner) fail() int {
	s.kind = kindInvalid
	return 0
}

// digits consumes the maximal run of decimal digits and returns its value.
func (s *scanner) digits() (v int) {
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		v = v*10 + int(s.src[s.pos]-'0')
		s.pos++
	}
	return v
}

// suffix matches a suffix word at the cursor. Pre-release words rank below
// zero, post-release words at zero or above.
func (s *scanner) suffix() (int, bool) {
	rest := s.src[s.pos:]
	if i, n := matchPrefix(preSuffixes, rest); n > 0 {
		s.pos += n
		return i - len(preSuffixes), true
	}
	if i, n := matchPrefix(postSuffixes, rest); n > 0 {
		s.pos += n
		return i, true
	}
	return 0, false
}

func matchPrefix(words []string, s string) (index, n int) {
	for i, w := range words {
		if len(w) <= len(s) && s[:len(w)] == w {
			return i, len(w)
		}
	}
	return -1, 0
}

// Validate reports whether ver is a well-formed version.
func Validate(ver string) bool {
	s := newScanner(ver)
	for !s.kind.terminal() {
		s.next()
	}
	return s.kind == kindEnd
}

// ValidateBytes is like Validate but takes a byte span. A NUL byte ends the
// span, so NUL-terminated buffers can be passed as is.
func ValidateBytes(ver []byte) bool {
	return Validate(bytesView(ver))
}

// Compare compares two version strings and returns:
//
//	-1 if a is older than b
//	 0 if a == b
//	 1 if a is newer than b
//
// Malformed input is not rejected; it yields a well-defined but otherwise
// meaningless ordering. Callers wanting to reject it should Validate first.
func Compare(a, b string) int {
	as, bs := newScanner(a), newScanner(b)
	av, bv := 0, 0
	for as.kind == bs.kind && !as.kind.terminal() && av == bv {
		av = as.next()
		bv = bs.next()
	}

	// value of this token differs?
	if av < bv {
		return -1
	}
	if av > bv {
		return 1
	}

	// Leading components are equal: the side with components left is newer
	// unless what is left starts with a pre-release suffix.
	if as.preRelease() {
		return -1
	}
	if bs.preRelease() {
		return 1
	}
	if as.kind > bs.kind {
		return -1
	}
	if bs.kind > as.kind {
		return 1
	}
	return 0
}

// preRelease reports whether the scanner sits on a pre-release suffix word.
// The scanner itself is not advanced.
func (s *scanner) preRelease() bool {
	if s.kind != kindSuffix {
		return false
	}
	peek := *s
	return peek.next() < 0
}

// CompareBytes is like Compare but takes byte spans. A NUL byte ends a span.
func CompareBytes(a, b []byte) int {
	return Compare(bytesView(a), bytesView(b))
}

// bytesView returns b as a string without copying. b must not be modified
// while the string is in use.
func bytesView(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Test compares a and b and returns the relation symbol "<", "=" or ">".
func Test(a, b string) string {
	switch Compare(a, b) {
	case -1:
		return "<"
	case 1:
		return ">"
	}
	return "="
}

// Sort sorts versions in ascending order. The sort is stable, so versions
// comparing equal keep their input order.
func Sort(versions []string) {
	slices.SortStableFunc(versions, Compare)
}

// Max returns the newest of versions, or "" if there are none.
func Max(versions ...string) string {
	if len(versions) == 0 {
		return ""
	}
	return slices.MaxFunc(versions, Compare)
}
