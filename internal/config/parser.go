// Package config contains the low-level parser for the ucsconv
// configuration file.
package config

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"
)

// State holds all statements from a configuration file.
type State struct {
	Statements map[string]string
}

// Parse reads statements of the form "key = value" from data. Empty lines
// and lines starting with '#' are ignored. A later statement for the same
// key overwrites the earlier one.
func Parse(data string) (State, error) {
	state := State{
		Statements: make(map[string]string),
	}

	sc := bufio.NewScanner(strings.NewReader(data))
	currentLine := 0

	for sc.Scan() {
		currentLine++
		line := strings.TrimSpace(sc.Text())

		// filter out comments and empty lines
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		pos := strings.Index(line, "=")
		if pos < 0 {
			return State{}, errors.Errorf("line %d: statement %q has no '='", currentLine, line)
		}

		key := strings.TrimSpace(line[:pos])
		value := strings.TrimSpace(line[pos+1:])

		if key == "" {
			return State{}, errors.Errorf("line %d: statement %q has no key", currentLine, line)
		}

		state.Statements[key] = value
	}

	if err := sc.Err(); err != nil {
		return State{}, errors.Wrap(err, "scan")
	}

	return state, nil
}
