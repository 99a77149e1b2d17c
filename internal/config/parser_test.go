package config

import (
	"reflect"
	"testing"
)

var testConfigs = []struct {
	cfg   string
	state State
}{
	{
		cfg: ``,
		state: State{
			Statements: map[string]string{},
		},
	},
	{
		cfg: `output_dir = /tmp/out`,
		state: State{
			Statements: map[string]string{
				"output_dir": "/tmp/out",
			},
		},
	},
	{
		cfg: `output_dir="quoted dir"  `,
		state: State{
			Statements: map[string]string{
				"output_dir": `"quoted dir"`,
			},
		},
	},
	{
		cfg: `  indent =   2`,
		state: State{
			Statements: map[string]string{
				"indent": "2",
			},
		},
	},
	{
		cfg: `
			output_dir = 'a b'
			indent= 4
			`,
		state: State{
			Statements: map[string]string{
				"output_dir": "'a b'",
				"indent":     "4",
			},
		},
	},
	{
		cfg: ` output_dir = out
		# test comment
		indent = 8
			`,
		state: State{
			Statements: map[string]string{
				"output_dir": "out",
				"indent":     "8",
			},
		},
	},
	{
		// a later statement overwrites the earlier one
		cfg: "indent = 2\nindent = 4\n",
		state: State{
			Statements: map[string]string{
				"indent": "4",
			},
		},
	},
	{
		cfg: `a    = 'b='`,
		state: State{
			Statements: map[string]string{
				"a": "'b='",
			},
		},
	},
}

func TestParse(t *testing.T) {
	for i, test := range testConfigs {
		state, err := Parse(test.cfg)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}

		if !reflect.DeepEqual(state, test.state) {
			t.Errorf("test %d: wrong state:\n  want: %#v\n  got:  %#v", i, test.state, state)
		}
	}
}

var testInvalidConfigs = []string{
	"just a line without equals\n",
	"= value without key\n",
}

func TestParseInvalid(t *testing.T) {
	for i, cfg := range testInvalidConfigs {
		_, err := Parse(cfg)
		if err == nil {
			t.Errorf("test %d: expected error for %q, got nil", i, cfg)
		}
	}
}
