package configfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/ini.v1"
)

var (
	// ErrInvalidSyntax is returned when a file cannot be parsed.
	ErrInvalidSyntax = errors.New("invalid configuration syntax")

	// ErrNotSectioned is returned when a TOML document has top-level values
	// outside of any table.
	ErrNotSectioned = errors.New("value outside of a section")

	// ErrUnsupportedValue is returned for TOML arrays and nested tables.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// iniOptions keep '#' and ';' inside values, keep surrounding quotes and
// join indented continuation lines onto the previous value.
var iniOptions = ini.LoadOptions{
	IgnoreInlineComment:        true,
	AllowPythonMultilineValues: true,
	PreserveSurroundedQuote:    true,
}

// ParseINI parses an INI document with bracketed section headers and
// "key = value" lines.
func ParseINI(data []byte) (*File, error) {
	src, err := ini.LoadSources(iniOptions, data)
	if err != nil {
		return nil, errors.Wrap(errors.Mark(err, ErrInvalidSyntax), "parsing INI")
	}

	f := New()

	for _, sec := range src.Sections() {
		if sec.Name() == ini.DefaultSection && len(sec.Keys()) == 0 {
			continue
		}

		s := f.AddSection(sec.Name())
		for _, key := range sec.Keys() {
			s.Set(key.Name(), key.Value())
		}
	}

	return f, nil
}

// ParseTOML parses a TOML document whose top-level tables are sections.
// Section and option names are sorted since decoded tables are unordered.
func ParseTOML(data []byte) (*File, error) {
	var doc map[string]any

	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.Mark(err, ErrInvalidSyntax), "parsing TOML")
	}

	f := New()

	for _, name := range sortedKeys(doc) {
		table, ok := doc[name].(map[string]any)
		if !ok {
			return nil, errors.Wrapf(ErrNotSectioned, "key %q", name)
		}

		s := f.AddSection(name)

		for _, opt := range sortedKeys(table) {
			value, err := scalarString(table[opt])
			if err != nil {
				return nil, errors.Wrapf(err, "option %q in section %q", opt, name)
			}

			s.Set(opt, value)
		}
	}

	return f, nil
}

// scalarString renders a TOML scalar the way it would appear in an INI file.
func scalarString(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool, int64, float64:
		return fmt.Sprint(val), nil
	case fmt.Stringer:
		return val.String(), nil
	default:
		return "", errors.Wrapf(ErrUnsupportedValue, "%T", v)
	}
}

// Load reads and parses a configuration file. Files ending in .toml are
// parsed as TOML, everything else as INI.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}

	var f *File

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		f, err = ParseTOML(data)
	} else {
		f, err = ParseINI(data)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "loading config file %s", path)
	}

	return f, nil
}
