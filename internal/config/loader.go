// Package config loads and validates confcheck settings.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-labs/confcheck/pkg/config"
)

const (
	// ProjectConfigFile is the project settings file name.
	ProjectConfigFile = ".confcheck.toml"

	// EnvPrefix is the prefix of environment overrides.
	EnvPrefix = "CONFCHECK_"

	globalConfigDir  = ".config/confcheck"
	globalConfigFile = "config.toml"

	worldWritable = 0o002
)

var (
	// ErrInvalidTOML is returned when a settings file is not valid TOML.
	ErrInvalidTOML = errors.New("invalid TOML in settings file")

	// ErrInvalidPermissions is returned when a settings file is world-writable.
	ErrInvalidPermissions = errors.New("settings file is world-writable")
)

// envKeys maps environment variable suffixes to settings keys.
var envKeys = map[string]string{
	"ERROR_ON_DEPRECATED": "validation.error_on_deprecated",
	"FAIL_ON_WARNINGS":    "validation.fail_on_warnings",
	"THRESHOLD":           "validation.similarity_threshold",
	"CONCURRENCY":         "validation.concurrency",
	"FORMAT":              "output.format",
	"LOG_LEVEL":           "log.level",
	"LOG_FORMAT":          "log.format",
}

// KoanfLoader merges settings from defaults, the global file, the project
// file, the environment and flags, in increasing precedence.
type KoanfLoader struct {
	globalPath  string
	projectPath string
	environ     func() []string
}

// LoaderOption configures a KoanfLoader.
type LoaderOption func(*KoanfLoader)

// WithGlobalPath overrides the global settings file location.
func WithGlobalPath(path string) LoaderOption {
	return func(l *KoanfLoader) {
		l.globalPath = path
	}
}

// WithProjectDir looks for the project settings file in dir.
func WithProjectDir(dir string) LoaderOption {
	return func(l *KoanfLoader) {
		l.projectPath = filepath.Join(dir, ProjectConfigFile)
	}
}

// WithEnviron replaces the environment source.
func WithEnviron(environ func() []string) LoaderOption {
	return func(l *KoanfLoader) {
		l.environ = environ
	}
}

// NewKoanfLoader creates a loader rooted at the user's home directory and
// the current working directory.
func NewKoanfLoader(opts ...LoaderOption) (*KoanfLoader, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "resolving home directory")
	}

	l := &KoanfLoader{
		globalPath:  filepath.Join(home, globalConfigDir, globalConfigFile),
		projectPath: ProjectConfigFile,
		environ:     os.Environ,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// GlobalConfigPath returns the global settings file path.
func (l *KoanfLoader) GlobalConfigPath() string {
	return l.globalPath
}

// ProjectConfigPath returns the project settings file path.
func (l *KoanfLoader) ProjectConfigPath() string {
	return l.projectPath
}

// HasGlobalConfig returns true if the global settings file exists.
func (l *KoanfLoader) HasGlobalConfig() bool {
	return fileExists(l.globalPath)
}

// HasProjectConfig returns true if the project settings file exists.
func (l *KoanfLoader) HasProjectConfig() bool {
	return fileExists(l.projectPath)
}

// Load merges every source and decodes the result. Flags use the same
// dotted keys as the settings files, e.g. "validation.concurrency".
func (l *KoanfLoader) Load(flags map[string]any) (*config.Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "loading defaults")
	}

	for _, path := range []string{l.globalPath, l.projectPath} {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKey,
		EnvironFunc:   l.environ,
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "loading environment")
	}

	if len(flags) > 0 {
		if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, "loading flags")
		}
	}

	cfg := &config.Config{}

	err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
			WeaklyTypedInput: true,
			Result:           cfg,
			TagName:          "koanf",
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "decoding settings")
	}

	return cfg, nil
}

func defaults() map[string]any {
	return map[string]any{
		"validation.error_on_deprecated":  false,
		"validation.fail_on_warnings":     false,
		"validation.similarity_threshold": config.DefaultSimilarityThreshold,
		"validation.concurrency":          0,
		"output.format":                   string(config.FormatText),
		"log.level":                       "warn",
		"log.format":                      "console",
	}
}

func loadFile(k *koanf.Koanf, path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	if info.Mode().Perm()&worldWritable != 0 {
		return errors.Wrapf(ErrInvalidPermissions, "%s", path)
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(errors.Mark(err, ErrInvalidTOML), "%s", path)
	}

	return nil
}

// envKey turns CONFCHECK_LOG_LEVEL into log.level. Unknown or empty
// variables map to an empty key and are skipped.
func envKey(name, value string) (string, any) {
	key, ok := envKeys[strings.TrimPrefix(name, EnvPrefix)]
	if !ok || value == "" {
		return "", nil
	}

	return key, value
}

func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
