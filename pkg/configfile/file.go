// Package configfile provides the ordered section/option model of a
// configuration file and parsers that produce it.
package configfile

import "sort"

// Option is a single key/value pair within a section.
type Option struct {
	Name  string
	Value string
}

// Section is a named, ordered group of options.
type Section struct {
	Name string

	options []Option
	index   map[string]int
}

// File is an ordered mapping of section name to section.
// The zero value is not usable; create files with New.
type File struct {
	sections []*Section
	index    map[string]int
}

// New creates an empty File.
func New() *File {
	return &File{index: make(map[string]int)}
}

// FromMap builds a File from nested maps. Names are sorted so the
// resulting iteration order is deterministic.
func FromMap(m map[string]map[string]string) *File {
	f := New()

	for _, name := range sortedKeys(m) {
		s := f.AddSection(name)
		for _, opt := range sortedKeys(m[name]) {
			s.Set(opt, m[name][opt])
		}
	}

	return f
}

// AddSection returns the named section, creating it at the end if needed.
func (f *File) AddSection(name string) *Section {
	if i, ok := f.index[name]; ok {
		return f.sections[i]
	}

	s := &Section{Name: name, index: make(map[string]int)}
	f.index[name] = len(f.sections)
	f.sections = append(f.sections, s)

	return s
}

// Section looks up a section by name.
func (f *File) Section(name string) (*Section, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}

	return f.sections[i], true
}

// HasSection reports whether the named section exists.
func (f *File) HasSection(name string) bool {
	_, ok := f.index[name]

	return ok
}

// Sections returns the sections in file order.
func (f *File) Sections() []*Section {
	out := make([]*Section, len(f.sections))
	copy(out, f.sections)

	return out
}

// SectionNames returns the section names in file order.
func (f *File) SectionNames() []string {
	names := make([]string, len(f.sections))
	for i, s := range f.sections {
		names[i] = s.Name
	}

	return names
}

// Set assigns a value, replacing an existing option in place.
func (s *Section) Set(name, value string) {
	if i, ok := s.index[name]; ok {
		s.options[i].Value = value
		return
	}

	s.index[name] = len(s.options)
	s.options = append(s.options, Option{Name: name, Value: value})
}

// Get returns the raw value of an option and whether it exists.
func (s *Section) Get(name string) (string, bool) {
	i, ok := s.index[name]
	if !ok {
		return "", false
	}

	return s.options[i].Value, true
}

// Has reports whether the option exists, regardless of its value.
func (s *Section) Has(name string) bool {
	_, ok := s.index[name]

	return ok
}

// Options returns the options in file order.
func (s *Section) Options() []Option {
	out := make([]Option, len(s.options))
	copy(out, s.options)

	return out
}

// Len returns the number of options.
func (s *Section) Len() int {
	return len(s.options)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
