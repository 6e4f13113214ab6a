package schema

import (
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/smykla-labs/confcheck/pkg/configfile"
)

// InferOptions controls schema inference.
type InferOptions struct {
	// Required marks every option with a non-empty value as required.
	Required bool
}

// Infer builds a schema describing an existing configuration file. Each
// option gets the narrowest type its current value satisfies.
func Infer(cfg *configfile.File, opts InferOptions) *Schema {
	s := New()

	for _, cs := range cfg.Sections() {
		sec := s.AddSection(cs.Name)

		for _, opt := range cs.Options() {
			sec.SetOption(opt.Name, Rule{
				Required: opts.Required && strings.TrimSpace(opt.Value) != "",
				Type:     InferType(opt.Value),
			})
		}
	}

	return s
}

// InferType returns the narrowest type accepting value, trying int, float
// and bool before falling back to str. Float literals without digits such
// as "inf" are treated as strings.
func InferType(value string) Type {
	switch {
	case strings.TrimSpace(value) == "":
		return TypeStr
	case IsInt(value):
		return TypeInt
	case IsFloat(value) && strings.ContainsAny(value, "0123456789"):
		return TypeFloat
	case IsBool(value):
		return TypeBool
	default:
		return TypeStr
	}
}

// Marshal encodes a schema as a YAML document, keeping section and option
// order and omitting default rule fields.
func Marshal(s *Schema) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, sec := range s.Sections() {
		body := &yaml.Node{Kind: yaml.MappingNode}

		if sec.Deprecated {
			body.Content = append(body.Content,
				scalar(sectionDeprecatedKey, "!!str"),
				scalar("true", "!!bool"),
			)
		}

		for _, opt := range sec.Options() {
			ruleNode := &yaml.Node{}
			if err := ruleNode.Encode(opt.Rule); err != nil {
				return nil, errors.Wrapf(err, "encoding option %q in section %q", opt.Name, sec.Name)
			}

			body.Content = append(body.Content, scalar(opt.Name, "!!str"), ruleNode)
		}

		root.Content = append(root.Content, scalar(sec.Name, "!!str"), body)
	}

	out, err := yaml.Marshal(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}})
	if err != nil {
		return nil, errors.Wrap(err, "encoding schema")
	}

	return out, nil
}

func scalar(value, tag string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
