package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command when no other command has been specified.
var RootCmd = &cobra.Command{
	Use:   "ucsconv",
	Short: "convert BIG-IP configuration archives to JSON",
	Long: `
ucsconv reads BIG-IP UCS archives, parses the configuration files they
contain and produces one JSON document per archive. The proprietary
brace-delimited configuration grammar is resolved into nested objects,
token lists and verbatim script bodies.
`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: parseConfig,
}

func main() {
	if cmd, err := RootCmd.ExecuteC(); err != nil {
		fmt.Printf("error: %v\n\n", err)
		cmd.Usage()
		os.Exit(1)
	}
}
