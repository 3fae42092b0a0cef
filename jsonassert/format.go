package jsonassert

import (
	"strings"
)

// String renders one mismatch. Root mismatches omit the entry clause.
func (m Mismatch) String() string {
	var b strings.Builder
	b.WriteString("Expecting json ")
	if m.Path != "" {
		b.WriteString(`entry "`)
		b.WriteString(m.Path)
		b.WriteString(`" `)
	}
	b.WriteString("to be equal to ")
	b.WriteString(m.Expected.String())
	b.WriteString(" but was ")
	b.WriteString(m.Actual.String())
	return b.String()
}

// Format joins mismatches with newlines in the order given, without a
// trailing newline. No mismatches format to "".
func Format(mismatches []Mismatch) string {
	lines := make([]string, len(mismatches))
	for i, m := range mismatches {
		lines[i] = m.String()
	}
	return strings.Join(lines, "\n")
}
