package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// unquoteString handles the different quotation kinds.
func unquoteString(s string) (string, error) {
	if s == "" {
		return s, nil
	}

	if len(s) == 1 {
		return "", errors.Errorf("invalid quoted string %q", s)
	}

	switch s[0] {
	case '"':
		return strconv.Unquote(s)
	case '\'':
		s = strings.Replace(s[1:len(s)-1], `\'`, `'`, -1)
		return s, nil
	case '`':
		if s[len(s)-1] != '`' {
			return "", errors.Errorf("invalid quoted string %q", s)
		}

		return s[1 : len(s)-1], nil
	}

	// raw strings
	return s, nil
}
