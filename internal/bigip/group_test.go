package bigip

import (
	"reflect"
	"testing"
)

var testGroups = []struct {
	lines  []string
	groups [][]string
}{
	{
		lines:  nil,
		groups: nil,
	},
	{
		lines: []string{
			"ltm pool /Common/p {",
			"    members {",
			"        node1 { }",
			"    }",
			"}",
			"sys db key { value one }",
			"net self-allow { }",
		},
		groups: [][]string{
			{
				"ltm pool /Common/p {",
				"    members {",
				"        node1 { }",
				"    }",
				"}",
			},
			{"sys db key { value one }"},
			{"net self-allow { }"},
		},
	},
	{
		// braces inside quoted strings do not count
		lines: []string{
			"ltm virtual /Common/v {",
			"    description \"open { but quoted\"",
			"}",
		},
		groups: [][]string{
			{
				"ltm virtual /Common/v {",
				"    description \"open { but quoted\"",
				"}",
			},
		},
	},
	{
		// comment, set and STREAM lines inside a rule body are not
		// structural
		lines: []string{
			"ltm rule /Common/redirect {",
			"when HTTP_REQUEST {",
			"    set pattern {^/app",
			"    STREAM::expression {replace {this}",
			"    # unbalanced { comment",
			"    HTTP::respond 301 Location \"https://x/{path}\"",
			"}",
			"}",
		},
		groups: [][]string{
			{
				"ltm rule /Common/redirect {",
				"when HTTP_REQUEST {",
				"    set pattern {^/app",
				"    STREAM::expression {replace {this}",
				"    # unbalanced { comment",
				"    HTTP::respond 301 Location \"https://x/{path}\"",
				"}",
				"}",
			},
		},
	},
	{
		// an unterminated rule is cut short when the next rule begins
		lines: []string{
			"ltm rule /Common/one {",
			"when A {",
			"ltm rule /Common/two {",
			"}",
		},
		groups: [][]string{
			{
				"ltm rule /Common/one {",
				"when A {",
			},
			{
				"ltm rule /Common/two {",
				"}",
			},
		},
	},
}

func TestGroupObjects(t *testing.T) {
	for i, test := range testGroups {
		groups, err := groupObjects(test.lines)
		if err != nil {
			t.Errorf("test %d: unexpected error %v", i, err)
			continue
		}

		if !reflect.DeepEqual(groups, test.groups) {
			t.Errorf("test %d: wrong groups:\n  want: %q\n  got:  %q", i, test.groups, groups)
		}
	}
}

func TestGroupReconstruction(t *testing.T) {
	lines := []string{
		"ltm node /Common/n1 {",
		"    address 10.0.0.1",
		"}",
		"ltm node /Common/n2 {",
		"    address 10.0.0.2",
		"}",
		"sys db failover { }",
	}

	groups, err := groupObjects(lines)
	if err != nil {
		t.Fatal(err)
	}

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	var joined []string
	for _, g := range groups {
		joined = append(joined, g...)
	}

	if !reflect.DeepEqual(joined, lines) {
		t.Errorf("concatenated groups do not reconstruct the input:\n  want: %q\n  got:  %q", lines, joined)
	}
}

func TestGroupMissingBrace(t *testing.T) {
	lines := []string{
		"ltm pool /Common/broken {",
		"    monitor http",
	}

	_, err := groupObjects(lines)
	if err == nil {
		t.Fatal("expected error for unbalanced group, got nil")
	}

	e, ok := err.(*MissingClosingBraceError)
	if !ok {
		t.Fatalf("expected *MissingClosingBraceError, got %T", err)
	}

	if e.Header != "ltm pool /Common/broken {" {
		t.Errorf("error names wrong header: %q", e.Header)
	}
}
