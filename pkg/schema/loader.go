package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// sectionDeprecatedKey holding a boolean marks the whole section as
// deprecated. Holding a mapping, it is an ordinary option named "deprecated".
const sectionDeprecatedKey = "deprecated"

// ErrInvalidDocument is returned when a schema document has the wrong shape.
var ErrInvalidDocument = errors.New("invalid schema document")

//go:embed meta.json
var metaSchemaJSON string

var (
	metaOnce   sync.Once
	metaSchema *jsonschema.Schema
	metaErr    error
)

// Load reads and parses a YAML or JSON schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user
	if err != nil {
		return nil, errors.Wrapf(err, "reading schema file %s", path)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading schema file %s", path)
	}

	return s, nil
}

// Parse decodes a YAML or JSON schema document, keeping section and option
// order as written.
func Parse(data []byte) (*Schema, error) {
	var doc yaml.Node

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.Mark(err, ErrInvalidDocument), "parsing schema")
	}

	// Empty document.
	if len(doc.Content) == 0 {
		return New(), nil
	}

	root := deref(doc.Content[0])

	instance, err := toInstance(root)
	if err != nil {
		return nil, err
	}

	if err := checkMeta(instance); err != nil {
		return nil, err
	}

	// checkMeta guarantees the shape from here on.
	sections, _ := instance.(map[string]any)

	s := New()

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		sec := s.AddSection(name)

		body := deref(root.Content[i+1])
		rules, _ := sections[name].(map[string]any)

		for j := 0; j+1 < len(body.Content); j += 2 {
			optName := body.Content[j].Value
			raw := rules[optName]

			if flag, ok := raw.(bool); ok && optName == sectionDeprecatedKey {
				sec.Deprecated = flag
				continue
			}

			rule, err := decodeRule(raw)
			if err != nil {
				return nil, errors.Wrapf(err, "option %q in section %q", optName, name)
			}

			sec.SetOption(optName, rule)
		}
	}

	return s, nil
}

// decodeRule turns a generic rule mapping into a Rule. Unknown keys are
// ignored and a null rule yields the defaults.
func decodeRule(raw any) (Rule, error) {
	var rule Rule

	if raw == nil {
		return rule, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &rule,
		TagName: "mapstructure",
	})
	if err != nil {
		return rule, errors.Wrap(err, "creating rule decoder")
	}

	if err := decoder.Decode(raw); err != nil {
		return rule, errors.Wrap(errors.Mark(err, ErrInvalidDocument), "decoding rule")
	}

	return rule, nil
}

// toInstance converts a YAML node tree into the JSON data model so it can
// be checked against the meta-schema. Numbers become json.Number.
func toInstance(root *yaml.Node) (any, error) {
	generic, err := nodeValue(root)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(generic)
	if err != nil {
		return nil, errors.Wrap(errors.Mark(err, ErrInvalidDocument), "converting schema document")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var instance any
	if err := dec.Decode(&instance); err != nil {
		return nil, errors.Wrap(errors.Mark(err, ErrInvalidDocument), "converting schema document")
	}

	return instance, nil
}

// nodeValue decodes a node with string mapping keys, whatever their YAML tag.
func nodeValue(n *yaml.Node) (any, error) {
	n = deref(n)

	switch n.Kind {
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)

		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}

			m[n.Content[i].Value] = v
		}

		return m, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))

		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}

			items = append(items, v)
		}

		return items, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, errors.Wrapf(
				errors.Mark(err, ErrInvalidDocument),
				"line %d", n.Line,
			)
		}

		return v, nil
	default:
		return nil, nil
	}
}

func deref(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}

func compiledMeta() (*jsonschema.Schema, error) {
	metaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource("meta.json", strings.NewReader(metaSchemaJSON)); err != nil {
			metaErr = errors.Wrap(err, "adding meta-schema")
			return
		}

		metaSchema, metaErr = compiler.Compile("meta.json")
	})

	return metaSchema, metaErr
}

// checkMeta validates the document shape against the embedded meta-schema.
func checkMeta(instance any) error {
	meta, err := compiledMeta()
	if err != nil {
		return errors.Wrap(err, "compiling meta-schema")
	}

	err = meta.Validate(instance)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return errors.Wrap(errors.Mark(err, ErrInvalidDocument), "validating schema document")
	}

	var problems []string

	collectProblems(verr, &problems)

	return errors.Wrapf(ErrInvalidDocument, "%s", strings.Join(problems, "; "))
}

// collectProblems gathers leaf validation messages with their location.
func collectProblems(verr *jsonschema.ValidationError, out *[]string) {
	if len(verr.Causes) == 0 {
		loc := verr.InstanceLocation
		if loc == "" {
			loc = "/"
		}

		*out = append(*out, fmt.Sprintf("%s: %s", loc, verr.Message))

		return
	}

	for _, cause := range verr.Causes {
		collectProblems(cause, out)
	}
}
