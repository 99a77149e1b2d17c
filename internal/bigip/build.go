package bigip

import (
	"fmt"
	"regexp"
	"strings"
)

// trailingBrace matches the opening brace (and an optional closing brace)
// at the end of a header line.
var trailingBrace = regexp.MustCompile(`\s?\{\s?\}?$`)

// quotedLine matches a line that is one double-quoted string.
var quotedLine = regexp.MustCompile(`(?s)^".*"$`)

// title returns the header text with its trailing brace stripped.
func title(line string) string {
	return strings.TrimSpace(trailingBrace.ReplaceAllString(line, ""))
}

// countIndent returns the number of leading whitespace characters.
func countIndent(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// lineKind classifies the shape of one body line. The kinds are tried in
// a fixed order, the first match wins.
type lineKind int

const (
	kindNested      lineKind = iota // opens a nested object
	kindEmptyObject                 // "name { }"
	kindPseudoArray                 // "name { tok1 tok2 }"
	kindFlag                        // valueless key
	kindProperty                    // "key value..." at property indentation
	kindUnknown
)

// classify determines the kind of a body line. bodyLen is the total number
// of lines in the enclosing body: a body consisting of a single line never
// opens a nested object.
func classify(line string, bodyLen int) lineKind {
	trimmed := strings.TrimSpace(line)

	switch {
	case strings.HasSuffix(line, "{") && bodyLen != 1:
		return kindNested
	case strings.HasSuffix(trimmed, "{ }"):
		return kindEmptyObject
	case strings.Contains(line, "{") && strings.Contains(line, "}") && !strings.Contains(line, `"`):
		return kindPseudoArray
	case (!strings.Contains(trimmed, " ") || quotedLine.MatchString(trimmed)) && !strings.Contains(line, "}"):
		return kindFlag
	case countIndent(line) == 4:
		return kindProperty
	default:
		return kindUnknown
	}
}

// removeIndent shifts the lines of a nested block one level to the left.
func removeIndent(lines []string) []string {
	out := make([]string, len(lines))

	for i, line := range lines {
		if countIndent(line) > 1 {
			if len(line) < 4 {
				line = ""
			} else {
				line = line[4:]
			}
		}

		out[i] = line
	}

	return out
}

// splitProperty splits a trimmed line into its first token and the rest,
// with internal whitespace collapsed.
func splitProperty(line string) (key, value string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}

	return fields[0], strings.Join(fields[1:], " ")
}

// joinMultiline merges the lines of a multi-line quoted property into one
// key/value pair. The first line is split into key and remainder, the
// following lines are kept verbatim.
func joinMultiline(chunk []string) (key, value string) {
	key, rest := splitProperty(strings.TrimSpace(chunk[0]))
	parts := append([]string{rest}, chunk[1:]...)
	return key, strings.Join(parts, "\n")
}

// pseudoArray extracts the tokens between the braces of a single-line
// "name { tok1 tok2 }" construct.
func pseudoArray(line string) List {
	inner := line[strings.Index(line, "{")+1:]
	if end := strings.Index(inner, "}"); end >= 0 {
		inner = inner[:end]
	}

	return List(strings.Fields(inner))
}

// findSubClose returns the index of the "    }" line closing the nested
// block opened at body[start], or -1. Children always sit exactly one
// level below their parent in normalized input.
func findSubClose(body []string, start int) int {
	for j := start; j < len(body); j++ {
		if body[j] == "    }" {
			return j
		}
	}

	return -1
}

// findQuoteClose returns the index of the next line with an odd number of
// double quotes, which closes the string opened at body[start], or -1.
func findQuoteClose(body []string, start int) int {
	for j := start + 1; j < len(body); j++ {
		if strings.Count(body[j], `"`)%2 == 1 {
			return j
		}
	}

	return -1
}

// mergeUserDefined folds a "user-defined <name> <value>" property of an
// external monitor into an accumulated user-defined sub-object. A later
// duplicate name overwrites the earlier one.
func mergeUserDefined(obj *Object, value string) {
	sub, _ := obj.Get("user-defined")
	m, ok := sub.(*Object)
	if !ok {
		m = NewObject()
		obj.Set("user-defined", m)
	}

	k, v := splitProperty(value)
	if k == "" {
		return
	}

	m.Set(k, Scalar(v))
}

// buildObject recursively converts one group into its name and value.
// Line 0 is the header ("<name> {"), the last line the closing brace.
// Unrecognized body lines are appended to warns and skipped.
func buildObject(group []string, warns *[]Warning) (string, Value, error) {
	key := title(group[0])

	// A group of one line is either a complete pseudo-array, a complete
	// empty object, or a header whose closing brace is missing or
	// mis-indented. The latter is recovered as an empty object instead
	// of failing.
	if len(group) <= 1 {
		line := group[0]
		if strings.Contains(line, "{") && strings.Contains(line, "}") && !strings.Contains(line, `"`) {
			if tokens := pseudoArray(line); len(tokens) > 0 {
				return strings.TrimSpace(line[:strings.Index(line, "{")]), tokens, nil
			}
		}

		return key, Empty{}, nil
	}

	body := group[1 : len(group)-1]

	switch {
	case isRule(key):
		// script bodies are opaque, keep them verbatim
		return key, Raw(strings.Join(body, "\n")), nil
	case strings.Contains(key, "monitor min"):
		// a wrapped token list, flatten it
		return key, List(strings.Fields(strings.Join(body, " "))), nil
	case strings.Contains(key, "cli script") || strings.Contains(key, "sys crypto cert-order-manager"):
		// these blocks quote braces in ways the grammar cannot track
		return key, Empty{}, nil
	}

	obj := NewObject()

	for i := 0; i < len(body); i++ {
		line := body[i]

		switch classify(line, len(body)) {
		case kindNested:
			end := findSubClose(body, i)
			if end < 0 {
				return "", nil, &MissingClosingBraceError{Header: line}
			}

			sub := removeIndent(body[i : end+1])

			// An anonymous list member opens with a bare brace. Name it
			// after its position so the recursive call sees a header.
			for j, l := range sub {
				if l == "    {" {
					sub[j] = fmt.Sprintf("%d %s", j, l)
				}
			}

			subKey, subValue, err := buildObject(sub, warns)
			if err != nil {
				return "", nil, err
			}

			obj.Set(subKey, subValue)
			i = end

		case kindEmptyObject:
			obj.Set(strings.TrimSpace(line[:strings.Index(line, "{")]), Empty{})

		case kindPseudoArray:
			obj.Set(strings.TrimSpace(line[:strings.Index(line, "{")]), pseudoArray(line))

		case kindFlag:
			obj.Set(strings.TrimSpace(line), Scalar(""))

		case kindProperty:
			if strings.Count(line, `"`)%2 == 1 {
				end := findQuoteClose(body, i)
				if end < 0 {
					return "", nil, &UnclosedQuoteError{Line: line}
				}

				k, v := joinMultiline(body[i : end+1])
				obj.Set(k, Scalar(v))
				i = end
				break
			}

			k, v := splitProperty(strings.TrimSpace(line))
			if k == "user-defined" && strings.HasPrefix(key, "gtm monitor external") {
				mergeUserDefined(obj, v)
			} else {
				obj.Set(k, Scalar(v))
			}

		default:
			*warns = append(*warns, Warning{Line: line})
		}
	}

	return key, obj, nil
}
