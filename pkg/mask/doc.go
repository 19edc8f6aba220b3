// Package mask implements the pattern-driven input masking engine. An Engine
// is built once per input field from a Config and re-derives the masked
// display string from the full current input on every call, so it can be
// driven from keystrokes, pastes or programmatic updates alike.
//
// Three modes are supported:
//
//   - ModeLiteral walks a compiled pattern such as "[1 ](000) 000-0000" where
//     "0" is a digit slot, "a" an alphabetic slot, "*" accepts any character
//     and bracketed groups are optional literals.
//   - ModeNumber groups the whole part of a number in thousands using a
//     configurable delimiter and decimal character.
//   - ModeDate reassembles digit runs into the components of a date pattern
//     such as "mm-dd-yyyy", clamping out-of-range values and normalising
//     overflowing days through calendar arithmetic.
//
// Unmask always returns the sanitized input: grouping characters and pattern
// literals are exactly what sanitization strips.
package mask
