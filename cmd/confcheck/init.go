package main

import (
	"github.com/spf13/cobra"

	"github.com/smykla-labs/confcheck/pkg/configfile"
	"github.com/smykla-labs/confcheck/pkg/schema"
)

var (
	initOutput   outputFlags
	initRequired bool
)

var initCmd = &cobra.Command{
	Use:   "init CONFIG",
	Short: "Infer a schema from an existing configuration file",
	Long: `Infer a schema from an existing configuration file. Each option gets the
narrowest type its current value parses as: int, float, bool, then str.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configfile.Load(args[0])
		if err != nil {
			return err
		}

		out, err := schema.Marshal(schema.Infer(cfg, schema.InferOptions{Required: initRequired}))
		if err != nil {
			return err
		}

		return initOutput.write(cmd, out)
	},
}

func init() {
	initOutput.register(initCmd)
	initCmd.Flags().BoolVar(&initRequired, "required", false, "Mark every inferred option as required")
	rootCmd.AddCommand(initCmd)
}
