package bigip

import (
	"regexp"
	"strings"
)

var (
	escapedQuote = regexp.MustCompile(`\\"`)
	quotedText   = regexp.MustCompile(`"[^"]*"`)
)

// stripQuoted removes escaped quote sequences and double-quoted substrings
// so that braces inside strings do not perturb the block balance.
func stripQuoted(line string) string {
	line = escapedQuote.ReplaceAllString(line, "")
	return quotedText.ReplaceAllString(line, "")
}

// groupObjects partitions preprocessed lines into one group per root
// object. A group runs from the object's opening line (at column 0)
// through the line closing its brace. Lines within a group reappear
// verbatim, so concatenating all groups of a well-formed file
// reconstructs it.
func groupObjects(lines []string) ([][]string, error) {
	var groups [][]string

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if strings.HasPrefix(line, " ") {
			continue
		}

		switch {
		case strings.Contains(line, "{") && strings.Contains(line, "}"):
			// empty object or pseudo-array, complete on one line
			groups = append(groups, lines[i:i+1])
		case strings.HasSuffix(strings.TrimSpace(line), "{"):
			n, err := scanGroup(lines, i)
			if err != nil {
				return nil, err
			}

			groups = append(groups, lines[i:i+n+1])
			i += n
		}
	}

	return groups, nil
}

// scanGroup returns how many lines after lines[start] are needed to close
// the block opened there.
//
// When the block is a script body, comment, set and STREAM lines are
// excluded from the balance: their braces belong to the script text, not
// the structure. Running into another script header before the balance
// reaches zero means the current block is unterminated, the group then
// ends one line early as a best-effort recovery.
func scanGroup(lines []string, start int) (int, error) {
	ruleBody := isRule(lines[start])
	balance := 1

	for n := 1; ; n++ {
		if start+n >= len(lines) {
			return 0, &MissingClosingBraceError{Header: lines[start]}
		}

		line := lines[start+n]
		trimmed := strings.TrimSpace(line)

		skip := ruleBody && (strings.HasPrefix(trimmed, "#") ||
			strings.HasPrefix(trimmed, "set") ||
			strings.HasPrefix(trimmed, "STREAM"))
		if !skip {
			stripped := stripQuoted(trimmed)
			balance += strings.Count(stripped, "{") - strings.Count(stripped, "}")
		}

		if isRule(line) {
			return n - 1, nil
		}

		if balance == 0 {
			return n, nil
		}
	}
}
