package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	internalconfig "github.com/smykla-labs/confcheck/internal/config"
	"github.com/smykla-labs/confcheck/pkg/config"
	"github.com/smykla-labs/confcheck/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "confcheck",
	Short: "Validate configuration files against a schema",
	Long: `confcheck checks INI and TOML configuration files against a YAML or JSON
schema and reports missing, invalid, deprecated and misspelled settings.

Settings are read from ~/.config/confcheck/config.toml, then .confcheck.toml
in the current directory, then CONFCHECK_* environment variables, then flags.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runRoot,
}

var (
	// settings holds the merged tool settings once setup has run.
	settings = &config.Config{}

	// log is the logger built from settings.
	log = logger.NewNoOpLogger()
)

// flagKeys maps flag names to settings keys. Only flags the user set
// override lower layers.
var flagKeys = map[string]string{
	"error-on-deprecated": "validation.error_on_deprecated",
	"fail-on-warnings":    "validation.fail_on_warnings",
	"threshold":           "validation.similarity_threshold",
	"concurrency":         "validation.concurrency",
	"format":              "output.format",
	"log-level":           "log.level",
	"log-format":          "log.format",
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: console or json")
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if versionRequested {
		_, err := fmt.Fprint(cmd.OutOrStdout(), versionString())

		return err
	}

	return cmd.Help()
}

func setup(cmd *cobra.Command, _ []string) error {
	loader, err := internalconfig.NewKoanfLoader()
	if err != nil {
		return err
	}

	cfg, err := loader.Load(flagOverrides(cmd.Flags()))
	if err != nil {
		return errors.Wrap(err, "loading settings")
	}

	if err := internalconfig.NewValidator().Validate(cfg); err != nil {
		return err
	}

	settings = cfg
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.GetLog().GetLevel()
	logCfg.Format = logger.Format(cfg.GetLog().GetFormat())
	log = logger.New(logCfg)

	log.Debug("settings loaded",
		"global", loader.HasGlobalConfig(),
		"project", loader.HasProjectConfig(),
	)

	return nil
}

func flagOverrides(flags *pflag.FlagSet) map[string]any {
	overrides := make(map[string]any)

	flags.Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})

	return overrides
}
