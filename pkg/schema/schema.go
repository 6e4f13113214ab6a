// Package schema provides the ordered schema model that describes which
// sections and options a configuration file may contain.
package schema

// Rule holds the validation metadata attached to a single option.
type Rule struct {
	// Required options must be present with a non-empty value.
	Required bool `mapstructure:"required" yaml:"required,omitempty"`

	// Type is the expected value type. Empty means no check.
	Type Type `mapstructure:"type" yaml:"type,omitempty"`

	// Deprecated options are reported when present.
	Deprecated bool `mapstructure:"deprecated" yaml:"deprecated,omitempty"`

	// Description is informational only.
	Description string `mapstructure:"description" yaml:"description,omitempty"`
}

// Option is a named rule within a section.
type Option struct {
	Name string
	Rule Rule
}

// Section is a named, ordered group of option rules.
type Section struct {
	Name string

	// Deprecated marks the whole section, independently of its options.
	Deprecated bool

	options []*Option
	index   map[string]int
}

// Schema is an ordered mapping of section name to section.
type Schema struct {
	sections []*Section
	index    map[string]int
}

// New creates an empty Schema.
func New() *Schema {
	return &Schema{index: make(map[string]int)}
}

// AddSection returns the named section, creating it at the end if needed.
func (s *Schema) AddSection(name string) *Section {
	if i, ok := s.index[name]; ok {
		return s.sections[i]
	}

	sec := &Section{Name: name, index: make(map[string]int)}
	s.index[name] = len(s.sections)
	s.sections = append(s.sections, sec)

	return sec
}

// Section looks up a section by name.
func (s *Schema) Section(name string) (*Section, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}

	return s.sections[i], true
}

// Sections returns the sections in schema order.
func (s *Schema) Sections() []*Section {
	out := make([]*Section, len(s.sections))
	copy(out, s.sections)

	return out
}

// SectionNames returns the section names in schema order.
func (s *Schema) SectionNames() []string {
	names := make([]string, len(s.sections))
	for i, sec := range s.sections {
		names[i] = sec.Name
	}

	return names
}

// SetOption adds or replaces an option rule.
func (s *Section) SetOption(name string, rule Rule) *Section {
	if i, ok := s.index[name]; ok {
		s.options[i].Rule = rule
		return s
	}

	s.index[name] = len(s.options)
	s.options = append(s.options, &Option{Name: name, Rule: rule})

	return s
}

// Option looks up an option by name.
func (s *Section) Option(name string) (*Option, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}

	return s.options[i], true
}

// Has reports whether the option is defined.
func (s *Section) Has(name string) bool {
	_, ok := s.index[name]

	return ok
}

// Options returns the options in schema order.
func (s *Section) Options() []*Option {
	out := make([]*Option, len(s.options))
	copy(out, s.options)

	return out
}

// OptionNames returns the option names in schema order.
func (s *Section) OptionNames() []string {
	names := make([]string, len(s.options))
	for i, opt := range s.options {
		names[i] = opt.Name
	}

	return names
}
