// Package literal encodes strings as double-quoted source literals.
//
// Every byte outside printable ASCII is written as a \xhh escape, so the
// literal decodes to exactly the UTF-8 bytes of the input regardless of
// the source encoding of the file it is embedded in.
package literal

import (
	"strings"
)

// Dialect selects the target language of the literal.
type Dialect int

const (
	// C emits C/C++ literals. A hex escape followed by a hex digit is
	// split with "" because C hex escapes are unbounded in length.
	C Dialect = iota
	// Go emits Go interpreted string literals.
	Go
)

const hexDigits = "0123456789abcdef"

// Encode returns s as a quoted literal in dialect d.
func Encode(s string, d Dialect) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')

	afterHex := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if afterHex && d == C && isHexDigit(c) {
			b.WriteString(`""`)
		}
		afterHex = false

		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '"':
			b.WriteString(`\"`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c >= 0x20 && c < 0x7f:
			b.WriteByte(c)
		default:
			b.WriteString(`\x`)
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0x0f])
			afterHex = true
		}
	}

	b.WriteByte('"')
	return b.String()
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
