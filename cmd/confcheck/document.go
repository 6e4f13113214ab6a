package main

import (
	"github.com/spf13/cobra"

	"github.com/smykla-labs/confcheck/internal/generate"
	"github.com/smykla-labs/confcheck/pkg/schema"
)

var documentOutput outputFlags

var documentCmd = &cobra.Command{
	Use:   "document SCHEMA",
	Short: "Render a schema as Markdown documentation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sch, err := schema.Load(args[0])
		if err != nil {
			return err
		}

		return documentOutput.write(cmd, []byte(generate.Documentation(sch)))
	},
}

func init() {
	documentOutput.register(documentCmd)
	rootCmd.AddCommand(documentCmd)
}
