package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/f5kit/ucsconv/internal/bigip"
	"github.com/f5kit/ucsconv/internal/ucs"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:     "convert [flags] archive.ucs ...",
	Short:   "Convert UCS archives to JSON documents",
	Example: "$ ucsconv convert backup.ucs",
	Long: `
The convert command is the main operation of ucsconv. It extracts the
configuration files from each archive given on the command line, parses
them and writes one JSON document per archive into the output directory.
`,
	RunE: Convert,
}

var (
	outputDir string
	indent    int
)

func init() {
	RootCmd.AddCommand(convertCmd)
	flags := convertCmd.PersistentFlags()

	flags.StringVarP(&outputDir, "output", "o", "output", "write JSON documents to this directory")
	bindConfigValue("output_dir", flags.Lookup("output"))

	flags.IntVar(&indent, "indent", 4, "indent JSON output with this many spaces")
	bindConfigValue("indent", flags.Lookup("indent"))
}

// outputFilename derives the JSON file name from the archive name.
func outputFilename(archive string) string {
	base := filepath.Base(archive)
	return strings.TrimSuffix(base, ucs.Extension) + ".json"
}

// Convert is the main command.
func Convert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("no archives to convert")
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	for _, archive := range args {
		V("extracting %v\n", archive)

		files, err := ucs.Extract(archive)
		if err != nil {
			return err
		}

		D("found %d config files in %v\n", len(files), archive)

		doc, warnings, err := bigip.Parse(files)
		if err != nil {
			return err
		}

		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "%v: %v\n", archive, w)
		}

		buf, err := json.MarshalIndent(doc, "", strings.Repeat(" ", indent))
		if err != nil {
			return err
		}

		target := filepath.Join(outputDir, outputFilename(archive))
		if err := ioutil.WriteFile(target, append(buf, '\n'), 0644); err != nil {
			return err
		}

		V("wrote %v\n", target)
	}

	return nil
}
