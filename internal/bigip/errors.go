package bigip

import (
	"fmt"
	"strings"
)

// MissingClosingBraceError reports a block whose closing brace was not
// found. Header is the line that opened the unbalanced block.
type MissingClosingBraceError struct {
	Header string
}

func (e *MissingClosingBraceError) Error() string {
	return fmt.Sprintf("missing or mis-indented '}' for line %q", strings.TrimSpace(e.Header))
}

// UnclosedQuoteError reports a multi-line quoted string that never finds
// its closing quote. Line is the line that opened the string.
type UnclosedQuoteError struct {
	Line string
}

func (e *UnclosedQuoteError) Error() string {
	return fmt.Sprintf("unclosed quote in multiline string starting at %q", strings.TrimSpace(e.Line))
}

// Warning is a non-fatal diagnostic for a body line that matches none of
// the recognized line shapes. The line is skipped and the parse continues.
type Warning struct {
	File string
	Line string
}

func (w Warning) String() string {
	if w.File != "" {
		return fmt.Sprintf("%v: unexpected line %q", w.File, w.Line)
	}

	return fmt.Sprintf("unexpected line %q", w.Line)
}
