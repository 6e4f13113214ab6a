package main

import (
	"github.com/spf13/cobra"

	"github.com/smykla-labs/confcheck/internal/generate"
	"github.com/smykla-labs/confcheck/pkg/schema"
)

var (
	generateOutput    outputFlags
	includeDeprecated bool
)

var generateCmd = &cobra.Command{
	Use:   "generate SCHEMA",
	Short: "Generate an INI configuration template from a schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sch, err := schema.Load(args[0])
		if err != nil {
			return err
		}

		tmpl := generate.Template(sch, generate.TemplateOptions{
			IncludeDeprecated: includeDeprecated,
		})

		return generateOutput.write(cmd, []byte(tmpl))
	},
}

func init() {
	generateOutput.register(generateCmd)
	generateCmd.Flags().BoolVar(&includeDeprecated, "include-deprecated", false, "Keep deprecated sections and options")
	rootCmd.AddCommand(generateCmd)
}
