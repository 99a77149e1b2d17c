package bigip

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// commentMarker is prefixed to comment lines found outside of script
// bodies, so they can be filtered out later without being mistaken for
// configuration data.
const commentMarker = "#comment# "

// ruleHeaders mark blocks whose bodies are embedded scripts. Brace
// characters inside such a body follow the script's own rules, not the
// configuration grammar's.
var ruleHeaders = []string{"ltm rule", "gtm rule", "pem irule"}

// isRule reports whether the line opens an embedded script block.
func isRule(line string) bool {
	for _, h := range ruleHeaders {
		if strings.Contains(line, h) {
			return true
		}
	}

	return false
}

// topologyWrapper is the synthetic root object collecting all topology
// records of a file.
const topologyWrapper = "gtm topology /Common/Shared/topology {"

// topology accumulates "gtm topology ldns:" directives scattered through a
// file. The directives are rewritten into indexed records below one
// synthetic root object which is appended after the file's own lines. A
// fresh accumulator is created for every file.
type topology struct {
	lines        []string
	count        int
	longestMatch bool
}

// addRecord rewrites one directive line into an indexed record. The source
// is the text between "ldns:" and "server:", the destination the text
// between "server:" and the opening brace.
func (t *topology) addRecord(line string) error {
	ldns := strings.Index(line, "ldns:")
	server := strings.Index(line, "server:")
	brace := strings.Index(line, "{")

	if server < 0 || brace < server {
		return errors.Errorf("malformed topology directive %q", line)
	}

	if len(t.lines) == 0 {
		t.lines = append(t.lines, topologyWrapper, "    records {")
	}

	t.lines = append(t.lines,
		"        topology_"+strconv.Itoa(t.count)+" {",
		"            source "+strings.TrimSpace(line[ldns+5:server]),
		"            destination "+strings.TrimSpace(line[server+7:brace]))
	t.count++

	return nil
}

// close appends the longest-match flag and the closing braces. A file
// without topology directives contributes nothing.
func (t *topology) close() {
	if len(t.lines) == 0 {
		return
	}

	t.lines = append(t.lines,
		"        longest-match-enabled "+strconv.FormatBool(t.longestMatch),
		"    }",
		"}")
}

// preprocess normalizes the raw text of one file into lines ready for
// grouping: line endings are normalized, comments outside scripts are
// marked and dropped, topology directives are synthesized into one root
// object, and blank lines are removed.
func preprocess(text string) ([]string, error) {
	raw := strings.Split(strings.Replace(text, "\r\n", "\n", -1), "\n")

	var (
		kept        []string
		topo        topology
		inTopology  bool
		scriptDepth int
	)

	for _, line := range raw {
		trimmed := strings.TrimSpace(line)

		if scriptDepth == 0 {
			if strings.HasPrefix(trimmed, "# ") {
				line = strings.Replace(trimmed, "# ", commentMarker, -1)
			} else if isRule(line) {
				scriptDepth++
			}
		} else if !strings.HasPrefix(trimmed, "#") {
			// the script's own braces, comments within it do not count
			scriptDepth += strings.Count(line, "{") - strings.Count(line, "}")
		}

		switch {
		case strings.Contains(line, "topology-longest-match") && strings.Contains(line, "yes"):
			topo.longestMatch = true
		case strings.HasPrefix(line, "gtm topology ldns:"):
			if err := topo.addRecord(line); err != nil {
				return nil, err
			}

			// a directive with its brace pair on one line has no body
			if strings.Contains(line, "}") {
				topo.lines = append(topo.lines, "        }")
			} else {
				inTopology = true
			}
		case inTopology:
			if line == "}" {
				inTopology = false
				topo.lines = append(topo.lines, "        }")
			} else {
				topo.lines = append(topo.lines, "        "+line)
			}
		default:
			kept = append(kept, line)
		}
	}

	topo.close()
	kept = append(kept, topo.lines...)

	var lines []string
	for _, line := range kept {
		if line == "" || strings.HasPrefix(strings.TrimSpace(line), commentMarker) {
			continue
		}

		lines = append(lines, line)
	}

	return lines, nil
}
