package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/confcheck/internal/validator"
	"github.com/smykla-labs/confcheck/pkg/configfile"
	"github.com/smykla-labs/confcheck/pkg/schema"
)

func TestSchema(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Schema Suite")
}

var _ = Describe("Parse", func() {
	It("should keep section and option order", func() {
		s, err := schema.Parse([]byte(`
"sectionb":
    "optionb":
        "required": true
"sectiona":
    "optiona":
        "type": "int"
    "other":
        "description": "This is a description."
`))
		Expect(err).NotTo(HaveOccurred())
		Expect(s.SectionNames()).To(Equal([]string{"sectionb", "sectiona"}))

		sec, ok := s.Section("sectiona")
		Expect(ok).To(BeTrue())
		Expect(sec.OptionNames()).To(Equal([]string{"optiona", "other"}))

		opt, ok := sec.Option("optiona")
		Expect(ok).To(BeTrue())
		Expect(opt.Rule).To(Equal(schema.Rule{Type: schema.TypeInt}))

		opt, _ = sec.Option("other")
		Expect(opt.Rule.Description).To(Equal("This is a description."))
	})

	It("should decode every rule field", func() {
		s, err := schema.Parse([]byte(`
section:
  option:
    required: true
    type: bool
    deprecated: true
    description: old flag
`))
		Expect(err).NotTo(HaveOccurred())

		sec, _ := s.Section("section")
		opt, _ := sec.Option("option")
		Expect(opt.Rule).To(Equal(schema.Rule{
			Required:    true,
			Type:        schema.TypeBool,
			Deprecated:  true,
			Description: "old flag",
		}))
	})

	It("should keep unknown type names for the validator to report", func() {
		s, err := schema.Parse([]byte("section:\n  option1:\n    type: invalid\n"))
		Expect(err).NotTo(HaveOccurred())

		sec, _ := s.Section("section")
		opt, _ := sec.Option("option1")
		Expect(opt.Rule.Type).To(Equal(schema.Type("invalid")))
		Expect(opt.Rule.Type.IsKnown()).To(BeFalse())
	})

	It("should read a boolean deprecated key as the section marker", func() {
		s, err := schema.Parse([]byte(`
legacy:
  deprecated: true
  option1:
    type: int
`))
		Expect(err).NotTo(HaveOccurred())

		sec, _ := s.Section("legacy")
		Expect(sec.Deprecated).To(BeTrue())
		Expect(sec.OptionNames()).To(Equal([]string{"option1"}))
	})

	It("should read a mapping deprecated key as an option", func() {
		s, err := schema.Parse([]byte(`
section:
  deprecated:
    type: bool
`))
		Expect(err).NotTo(HaveOccurred())

		sec, _ := s.Section("section")
		Expect(sec.Deprecated).To(BeFalse())
		Expect(sec.Has("deprecated")).To(BeTrue())
	})

	It("should accept null sections and rules", func() {
		s, err := schema.Parse([]byte("empty:\nsection:\n  option:\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(s.SectionNames()).To(Equal([]string{"empty", "section"}))

		sec, _ := s.Section("section")
		opt, ok := sec.Option("option")
		Expect(ok).To(BeTrue())
		Expect(opt.Rule).To(Equal(schema.Rule{}))
	})

	It("should ignore unknown rule keys", func() {
		s, err := schema.Parse([]byte("section:\n  option:\n    default: 5\n    required: true\n"))
		Expect(err).NotTo(HaveOccurred())

		sec, _ := s.Section("section")
		opt, _ := sec.Option("option")
		Expect(opt.Rule.Required).To(BeTrue())
	})

	It("should parse JSON documents", func() {
		s, err := schema.Parse([]byte(`{"b": {"x": {"type": "float"}}, "a": {}}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(s.SectionNames()).To(Equal([]string{"b", "a"}))
	})

	It("should treat an empty document as an empty schema", func() {
		s, err := schema.Parse([]byte("# nothing here\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Sections()).To(BeEmpty())
	})

	DescribeTable("should reject malformed documents",
		func(doc string) {
			_, err := schema.Parse([]byte(doc))
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, schema.ErrInvalidDocument)).To(BeTrue())
		},
		Entry("scalar root", "just a string\n"),
		Entry("list root", "- a\n- b\n"),
		Entry("scalar section", "section: 5\n"),
		Entry("scalar rule", "section:\n  option: yes\n"),
		Entry("non-boolean required", "section:\n  option:\n    required: maybe\n"),
		Entry("non-string type", "section:\n  option:\n    type: 5\n"),
		Entry("syntax error", "section: [unclosed\n"),
	)
})

var _ = Describe("Type", func() {
	DescribeTable("Accepts",
		func(t schema.Type, value string, expected bool) {
			Expect(t.Accepts(value)).To(Equal(expected))
		},
		Entry("int", schema.TypeInt, "14", true),
		Entry("negative int", schema.TypeInt, "-3", true),
		Entry("huge int", schema.TypeInt, "123456789012345678901234567890", true),
		Entry("int with text", schema.TypeInt, "not an int!", false),
		Entry("int with fraction", schema.TypeInt, "14.", false),
		Entry("quoted int", schema.TypeInt, `"8080"`, false),
		Entry("float", schema.TypeFloat, "14.", true),
		Entry("float exponent", schema.TypeFloat, "1e-3", true),
		Entry("float out of range", schema.TypeFloat, "1e400", true),
		Entry("float with text", schema.TypeFloat, "not a float!", false),
		Entry("hex float", schema.TypeFloat, "0x1p3", false),
		Entry("signed hex float", schema.TypeFloat, "-0X1.8p1", false),
		Entry("bool true", schema.TypeBool, "TRUE", true),
		Entry("bool off", schema.TypeBool, "off", true),
		Entry("bool zero", schema.TypeBool, "0", true),
		Entry("bool with text", schema.TypeBool, "not a bool!", false),
		Entry("str", schema.TypeStr, "anything", true),
		Entry("none", schema.TypeNone, "anything", true),
		Entry("unknown", schema.Type("invalid"), "anything", false),
	)

	It("should list the known types", func() {
		for _, t := range schema.KnownTypes() {
			Expect(t.IsKnown()).To(BeTrue())
		}
		Expect(schema.TypeNone.IsKnown()).To(BeTrue())
		Expect(schema.TypeNone.String()).To(Equal("str"))
	})

	It("should parse boolean literals", func() {
		v, ok := schema.ParseBool("Yes")
		Expect(ok).To(BeTrue())
		Expect(v).To(BeTrue())

		v, ok = schema.ParseBool("no")
		Expect(ok).To(BeTrue())
		Expect(v).To(BeFalse())
	})
})

var _ = Describe("Infer", func() {
	It("should infer the narrowest type per option", func() {
		cfg, err := configfile.ParseINI([]byte(`[server]
port = 8080
ratio = 0.75
debug = yes
name = api
empty =
infinite = inf
`))
		Expect(err).NotTo(HaveOccurred())

		s := schema.Infer(cfg, schema.InferOptions{Required: true})
		sec, ok := s.Section("server")
		Expect(ok).To(BeTrue())
		Expect(sec.OptionNames()).To(Equal([]string{"port", "ratio", "debug", "name", "empty", "infinite"}))

		types := map[string]schema.Type{}
		for _, opt := range sec.Options() {
			Expect(opt.Rule.Required).To(Equal(opt.Name != "empty"), opt.Name)
			types[opt.Name] = opt.Rule.Type
		}

		Expect(types).To(Equal(map[string]schema.Type{
			"port":     schema.TypeInt,
			"ratio":    schema.TypeFloat,
			"debug":    schema.TypeBool,
			"name":     schema.TypeStr,
			"empty":    schema.TypeStr,
			"infinite": schema.TypeStr,
		}))
	})
})

var _ = Describe("Infer and Validate", func() {
	It("should accept the configuration the schema was inferred from", func() {
		cfg, err := configfile.ParseINI([]byte("[server]\nport = 8080\nempty =\n"))
		Expect(err).NotTo(HaveOccurred())

		out, err := schema.Marshal(schema.Infer(cfg, schema.InferOptions{Required: true}))
		Expect(err).NotTo(HaveOccurred())

		sch, err := schema.Parse(out)
		Expect(err).NotTo(HaveOccurred())

		sec, _ := sch.Section("server")
		empty, ok := sec.Option("empty")
		Expect(ok).To(BeTrue())
		Expect(empty.Rule.Required).To(BeFalse())

		port, _ := sec.Option("port")
		Expect(port.Rule.Required).To(BeTrue())

		v, err := validator.New(cfg, sch, nil)
		Expect(err).NotTo(HaveOccurred())

		result := v.Validate(validator.Options{})
		Expect(result.Errors()).To(BeEmpty())
		Expect(result.IsValid()).To(BeTrue())
	})
})

var _ = Describe("Marshal", func() {
	It("should round-trip through Parse keeping order and rules", func() {
		original := schema.New()
		original.AddSection("zeta").
			SetOption("b", schema.Rule{Required: true, Type: schema.TypeInt}).
			SetOption("a", schema.Rule{Description: "123"})
		legacy := original.AddSection("alpha")
		legacy.Deprecated = true
		legacy.SetOption("old", schema.Rule{Deprecated: true, Type: schema.TypeBool})

		out, err := schema.Marshal(original)
		Expect(err).NotTo(HaveOccurred())

		parsed, err := schema.Parse(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed.SectionNames()).To(Equal([]string{"zeta", "alpha"}))

		zeta, _ := parsed.Section("zeta")
		Expect(zeta.OptionNames()).To(Equal([]string{"b", "a"}))

		a, _ := zeta.Option("a")
		Expect(a.Rule).To(Equal(schema.Rule{Description: "123"}))

		alpha, _ := parsed.Section("alpha")
		Expect(alpha.Deprecated).To(BeTrue())

		old, _ := alpha.Option("old")
		Expect(old.Rule).To(Equal(schema.Rule{Deprecated: true, Type: schema.TypeBool}))
	})
})

var _ = Describe("Load", func() {
	It("should read schema files", func() {
		path := filepath.Join(GinkgoT().TempDir(), "schema.yaml")
		Expect(os.WriteFile(path, []byte("section:\n  option:\n    required: true\n"), 0o600)).To(Succeed())

		s, err := schema.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.SectionNames()).To(Equal([]string{"section"}))
	})

	It("should name the file in errors", func() {
		path := filepath.Join(GinkgoT().TempDir(), "broken.yaml")
		Expect(os.WriteFile(path, []byte("section: 5\n"), 0o600)).To(Succeed())

		_, err := schema.Load(path)
		Expect(err).To(MatchError(ContainSubstring("broken.yaml")))
		Expect(errors.Is(err, schema.ErrInvalidDocument)).To(BeTrue())
	})
})

