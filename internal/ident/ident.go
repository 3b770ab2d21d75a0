// Package ident validates target-language identifiers and builds property
// names from arbitrary source-side strings.
package ident

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/sunholo/typebind/internal/errkind"
)

// Mode selects how strict identifier validation is.
type Mode int

const (
	// Lax checks syntax only.
	Lax Mode = iota
	// Strict additionally rejects the reserved keyword list, case-insensitively.
	Strict
)

var syntax = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// reserved is the fixed 36-word list of keywords a Strict identifier may not
// collide with, case-insensitively.
var reserved = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true, "return": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true,
}

// Ident is a validated target-language identifier.
type Ident string

// String implements fmt.Stringer.
func (id Ident) String() string { return string(id) }

// Validate checks s against the given Mode, normalizing to NFC first so that
// source identifiers using composed/decomposed Unicode forms compare
// consistently.
func Validate(s string, mode Mode) (Ident, error) {
	normalized := norm.NFC.String(s)
	if !syntax.MatchString(normalized) {
		return "", errkind.InvalidIdent{Value: s}
	}
	if mode == Strict && reserved[strings.ToLower(normalized)] {
		return "", errkind.ReservedKeyword{Value: s}
	}
	return Ident(normalized), nil
}

// IsLaxValid reports whether s would pass Lax validation, without allocating
// an error.
func IsLaxValid(s string) bool {
	_, err := Validate(s, Lax)
	return err == nil
}

// EscapeString produces a JSON-compatible double-quoted string literal body
// (including the surrounding quotes) for s: '"', '\\', and control
// characters are backslash-escaped.
func EscapeString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// ValidateNumericLiteral rejects non-finite f64-shaped values.
func ValidateNumericLiteral(f float64) error {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return errkind.WrongNumericLiteral{Value: f}
	}
	return nil
}
