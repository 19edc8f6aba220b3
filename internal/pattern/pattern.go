// Package pattern compiles literal mask templates such as "[1 ](000) 000-0000"
// into an ordered list of segments. Characters outside brackets become one
// required segment each; a bracketed group becomes a single optional segment.
package pattern

import (
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrEmptyPattern is returned when the pattern has no characters.
	ErrEmptyPattern = errors.New("pattern: mask/pattern required and cannot be empty")
	// ErrUnbalancedGroup is returned by CompileStrict when brackets do not pair.
	ErrUnbalancedGroup = errors.New("pattern: unbalanced optional group")
)

// Slot tokens recognised inside segment values.
const (
	TokenDigit = "0"
	TokenAlpha = "a"
	TokenAny   = "*"
)

// SlotKind classifies what a segment consumes from the input.
type SlotKind int

const (
	SlotNone SlotKind = iota
	SlotDigit
	SlotAlpha
	SlotAny
)

// Segment is one compiled unit of a pattern.
type Segment struct {
	Literal  string `json:"literal"`
	Optional bool   `json:"optional,omitempty"`
}

// Normalized returns the comparison form of the literal: trimmed,
// lower-cased and stripped of separator characters.
func (s Segment) Normalized() string {
	return StripSeparators(strings.ToLower(strings.TrimSpace(s.Literal)))
}

// Slot reports which slot token the segment represents, if any.
func (s Segment) Slot() SlotKind {
	switch s.Normalized() {
	case TokenDigit:
		return SlotDigit
	case TokenAlpha:
		return SlotAlpha
	case TokenAny:
		return SlotAny
	default:
		return SlotNone
	}
}

// IsSeparator reports whether r belongs to the separator class
// [|()[]/\-+_.\s] stripped from patterns and literal input.
func IsSeparator(r rune) bool {
	switch r {
	case '|', '(', ')', '[', ']', '/', '\\', '-', '+', '_', '.':
		return true
	}
	return unicode.IsSpace(r)
}

// StripSeparators removes every separator character from s.
func StripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if IsSeparator(r) {
			return -1
		}
		return r
	}, s)
}

// Compile scans the pattern left to right. An unclosed "[" is tolerated: its
// buffered content is dropped and never becomes a segment. A "]" without an
// opening bracket flushes an empty optional segment.
func Compile(pattern string) ([]Segment, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	segments, _ := compile(pattern)
	return segments, nil
}

// CompileStrict behaves like Compile but rejects unclosed or stray brackets.
func CompileStrict(pattern string) ([]Segment, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	segments, balanced := compile(pattern)
	if !balanced {
		return nil, ErrUnbalancedGroup
	}
	return segments, nil
}

func compile(pattern string) ([]Segment, bool) {
	var (
		segments []Segment
		buffer   strings.Builder
		grouping bool
		balanced = true
	)
	for _, r := range pattern {
		switch {
		case r == '[':
			if grouping {
				balanced = false
			}
			grouping = true
		case r == ']':
			if !grouping {
				balanced = false
			}
			segments = append(segments, Segment{Literal: buffer.String(), Optional: true})
			buffer.Reset()
			grouping = false
		case grouping:
			buffer.WriteRune(r)
		default:
			segments = append(segments, Segment{Literal: string(r)})
		}
	}
	if grouping {
		balanced = false
	}
	return segments, balanced
}
