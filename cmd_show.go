package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/f5kit/ucsconv/internal/bigip"
	"github.com/f5kit/ucsconv/internal/ucs"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show [flags] archive.ucs [prefix ...]",
	Example: "$ ucsconv show backup.ucs ltm",
	Short:   "Parse an archive and list its configuration entries",
	Long: `
The show command extracts and parses a UCS archive and prints the names of
the root-level configuration entries, optionally filtered by prefix.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ShowDocument(args)
	},
}

// print the whole document instead of the entry names
var showJSON bool

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVarP(&showJSON, "json", "j", false, "print the whole document as JSON")
}

var (
	printName = color.New(color.FgWhite).PrintfFunc()
	printKind = color.New(color.FgHiBlue).PrintfFunc()
	printWarn = color.New(color.FgHiRed).FprintfFunc()
)

// kindName describes a value for display.
func kindName(v bigip.Value) string {
	switch v.(type) {
	case bigip.Empty:
		return "empty"
	case bigip.Raw:
		return "script"
	case bigip.List:
		return "list"
	case bigip.Scalar:
		return "string"
	case *bigip.Object:
		return "object"
	}

	return "unknown"
}

func matchesPrefix(name string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}

	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}

	return false
}

// ShowDocument visualises the configuration contained in an archive.
func ShowDocument(args []string) error {
	if len(args) == 0 {
		return errors.New("no archive specified, nothing to do")
	}

	archive := args[0]
	prefixes := args[1:]

	files, err := ucs.Extract(archive)
	if err != nil {
		return err
	}

	doc, warnings, err := bigip.Parse(files)
	if err != nil {
		return err
	}

	for _, w := range warnings {
		printWarn(os.Stderr, "%v\n", w)
	}

	if showJSON {
		buf, err := json.MarshalIndent(doc, "", "    ")
		if err != nil {
			return err
		}

		fmt.Println(string(buf))
		return nil
	}

	for _, name := range doc.Keys() {
		if !matchesPrefix(name, prefixes) {
			continue
		}

		value, _ := doc.Get(name)
		printName("%s", name)
		printKind(" [%s]\n", kindName(value))
	}

	return nil
}
