package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	internalconfig "github.com/smykla-labs/confcheck/internal/config"
	"github.com/smykla-labs/confcheck/pkg/config"
)

// sourceCombination is a benchmark scenario for settings loading.
type sourceCombination struct {
	Name       string
	HasGlobal  bool
	HasProject bool
	HasEnvVars bool
	HasFlags   bool
}

const (
	benchGlobal = `[validation]
error_on_deprecated = true
similarity_threshold = 0.7

[log]
level = "info"
`

	benchProject = `[validation]
concurrency = 4

[output]
format = "json"
`
)

var (
	benchEnv = []string{
		"CONFCHECK_FAIL_ON_WARNINGS=true",
		"CONFCHECK_LOG_FORMAT=json",
		"PATH=/usr/bin",
	}

	benchFlags = map[string]any{
		"output.format": "markdown",
		"log.level":     "debug",
	}
)

// sourceCombinations returns every subset of the four optional sources.
func sourceCombinations() []sourceCombination {
	names := []string{"global", "project", "env", "flags"}

	combos := make([]sourceCombination, 0, 1<<len(names))

	for mask := range 1 << len(names) {
		var parts []string

		for i, name := range names {
			if mask&(1<<i) != 0 {
				parts = append(parts, name)
			}
		}

		name := strings.Join(parts, "+")
		if name == "" {
			name = "defaults_only"
		}

		combos = append(combos, sourceCombination{
			Name:       name,
			HasGlobal:  mask&1 != 0,
			HasProject: mask&2 != 0,
			HasEnvVars: mask&4 != 0,
			HasFlags:   mask&8 != 0,
		})
	}

	return combos
}

// BenchmarkLoaderCombinations benchmarks all settings source combinations.
func BenchmarkLoaderCombinations(b *testing.B) {
	for _, combo := range sourceCombinations() {
		b.Run(combo.Name, func(b *testing.B) {
			tmpDir := b.TempDir()
			globalPath := filepath.Join(tmpDir, "home", "config.toml")

			if combo.HasGlobal {
				writeSettings(b, globalPath, benchGlobal)
			}

			if combo.HasProject {
				writeSettings(b, filepath.Join(tmpDir, internalconfig.ProjectConfigFile), benchProject)
			}

			var env []string
			if combo.HasEnvVars {
				env = benchEnv
			}

			var flags map[string]any
			if combo.HasFlags {
				flags = benchFlags
			}

			loader, err := internalconfig.NewKoanfLoader(
				internalconfig.WithGlobalPath(globalPath),
				internalconfig.WithProjectDir(tmpDir),
				internalconfig.WithEnviron(func() []string { return env }),
			)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()

			for b.Loop() {
				if _, err := loader.Load(flags); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSettingsValidation benchmarks semantic validation of settings.
func BenchmarkSettingsValidation(b *testing.B) {
	enabled := true

	cfg := &config.Config{
		Validation: &config.ValidationConfig{
			ErrorOnDeprecated:   &enabled,
			SimilarityThreshold: 0.75,
			Concurrency:         8,
		},
		Output: &config.OutputConfig{Format: config.FormatJSON},
		Log:    &config.LogConfig{Level: "info", Format: "json"},
	}

	validator := internalconfig.NewValidator()

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		if err := validator.Validate(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func writeSettings(tb testing.TB, path, content string) {
	tb.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		tb.Fatal(err)
	}
}
