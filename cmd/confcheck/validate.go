package main

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-labs/confcheck/internal/dispatcher"
	"github.com/smykla-labs/confcheck/internal/reporter"
	"github.com/smykla-labs/confcheck/internal/validator"
)

var schemaPath string

var validateCmd = &cobra.Command{
	Use:   "validate --schema SCHEMA TARGET...",
	Short: "Validate configuration files against a schema",
	Long: `Validate one or more configuration files against a schema.

Targets are paths or glob patterns ("conf/**/*.ini"). The command exits with
status 1 when any file has errors, or warnings with --fail-on-warnings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	flags := validateCmd.Flags()
	flags.StringVarP(&schemaPath, "schema", "s", "", "Schema file (YAML or JSON)")
	flags.Bool("error-on-deprecated", false, "Report deprecated sections and options as errors")
	flags.Bool("fail-on-warnings", false, "Exit with status 1 when warnings are found")
	flags.Float64("threshold", 0, "Minimum similarity in (0, 1] for typo suggestions")
	flags.Int("concurrency", 0, "Files validated in parallel (0 means one per CPU)")
	flags.StringP("format", "f", "", "Output format: text, json or markdown")

	_ = validateCmd.MarkFlagRequired("schema")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	targets, err := dispatcher.ExpandTargets(args)
	if err != nil {
		return err
	}

	v := settings.GetValidation()

	concurrency := v.Concurrency
	if concurrency == 0 {
		concurrency = runtime.NumCPU()
	}

	d := dispatcher.NewDispatcher(
		dispatcher.FileLoader{},
		log,
		dispatcher.WithConcurrency(concurrency),
		dispatcher.WithOptions(validator.Options{
			ErrorOnDeprecated:   v.IsErrorOnDeprecated(),
			SimilarityThreshold: v.GetSimilarityThreshold(),
		}),
	)

	reports, err := d.Dispatch(cmd.Context(), schemaPath, targets)
	if err != nil {
		return err
	}

	rep, err := reporter.New(settings.GetOutput().GetFormat(), reporter.Options{
		Plain: !isTerminal(cmd.OutOrStdout()),
	})
	if err != nil {
		return err
	}

	if err := rep.Report(cmd.OutOrStdout(), reports); err != nil {
		return errors.Wrap(err, "writing report")
	}

	if dispatcher.HasErrors(reports) || (v.IsFailOnWarnings() && dispatcher.HasWarnings(reports)) {
		return errFindings
	}

	return nil
}
