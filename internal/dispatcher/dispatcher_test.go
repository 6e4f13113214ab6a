package dispatcher_test

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/smykla-labs/confcheck/internal/dispatcher"
	"github.com/smykla-labs/confcheck/internal/validator"
	"github.com/smykla-labs/confcheck/pkg/configfile"
	"github.com/smykla-labs/confcheck/pkg/logger"
	"github.com/smykla-labs/confcheck/pkg/schema"
)

var _ = Describe("Dispatcher", func() {
	var (
		ctrl   *gomock.Controller
		loader *dispatcher.MockLoader
		sch    *schema.Schema
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		loader = dispatcher.NewMockLoader(ctrl)

		sch = schema.New()
		sch.AddSection("server").
			SetOption("port", schema.Rule{Required: true, Type: schema.TypeInt}).
			SetOption("legacy", schema.Rule{Deprecated: true})
	})

	config := func(port string) *configfile.File {
		return configfile.FromMap(map[string]map[string]string{
			"server": {"port": port, "legacy": "on"},
		})
	}

	It("should validate every target and keep target order", func() {
		loader.EXPECT().LoadSchema("schema.yaml").Return(sch, nil).Times(1)
		loader.EXPECT().LoadConfig("a.ini").Return(config("80"), nil)
		loader.EXPECT().LoadConfig("b.ini").Return(config("http"), nil)
		loader.EXPECT().LoadConfig("c.ini").Return(config("443"), nil)

		d := dispatcher.NewDispatcher(loader, logger.NewNoOpLogger(), dispatcher.WithConcurrency(2))

		reports, err := d.Dispatch(context.Background(), "schema.yaml", []string{"a.ini", "b.ini", "c.ini"})
		Expect(err).NotTo(HaveOccurred())
		Expect(reports).To(HaveLen(3))

		paths := make([]string, 0, len(reports))
		for _, r := range reports {
			paths = append(paths, r.Path)
		}
		Expect(paths).To(Equal([]string{"a.ini", "b.ini", "c.ini"}))

		Expect(reports[0].Result.IsValid()).To(BeTrue())
		Expect(reports[1].Result.Errors()).To(Equal([]string{"Invalid value for type int : http."}))
		Expect(reports[2].Result.IsValid()).To(BeTrue())

		Expect(dispatcher.HasErrors(reports)).To(BeTrue())
		Expect(dispatcher.HasWarnings(reports)).To(BeTrue())
	})

	It("should pass validation options to every run", func() {
		loader.EXPECT().LoadSchema(gomock.Any()).Return(sch, nil)
		loader.EXPECT().LoadConfig("a.ini").Return(config("80"), nil)

		d := dispatcher.NewDispatcher(loader, nil, dispatcher.WithOptions(validator.Options{
			ErrorOnDeprecated: true,
		}))

		reports, err := d.Dispatch(context.Background(), "schema.yaml", []string{"a.ini"})
		Expect(err).NotTo(HaveOccurred())
		Expect(reports[0].Result.Errors()).To(Equal([]string{
			"Deprecated option legacy is present in section server!",
		}))
		Expect(dispatcher.HasWarnings(reports)).To(BeFalse())
	})

	It("should stop when the schema cannot be loaded", func() {
		loader.EXPECT().LoadSchema("missing.yaml").Return(nil, os.ErrNotExist)

		d := dispatcher.NewDispatcher(loader, nil)

		_, err := d.Dispatch(context.Background(), "missing.yaml", []string{"a.ini"})
		Expect(err).To(MatchError(ContainSubstring("missing.yaml")))
		Expect(errors.Is(err, dispatcher.ErrLoadFailed)).To(BeTrue())
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})

	It("should fail when a configuration cannot be loaded", func() {
		loader.EXPECT().LoadSchema(gomock.Any()).Return(sch, nil)
		loader.EXPECT().LoadConfig("broken.ini").Return(nil, configfile.ErrInvalidSyntax)

		d := dispatcher.NewDispatcher(loader, nil, dispatcher.WithConcurrency(1))

		reports, err := d.Dispatch(context.Background(), "schema.yaml", []string{"broken.ini"})
		Expect(reports).To(BeNil())
		Expect(err).To(MatchError(ContainSubstring("broken.ini")))
		Expect(errors.Is(err, dispatcher.ErrLoadFailed)).To(BeTrue())
	})

	It("should not start targets after cancellation", func() {
		loader.EXPECT().LoadSchema(gomock.Any()).Return(sch, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		d := dispatcher.NewDispatcher(loader, nil)

		_, err := d.Dispatch(ctx, "schema.yaml", []string{"a.ini", "b.ini"})
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})

	It("should return no reports for no targets", func() {
		loader.EXPECT().LoadSchema(gomock.Any()).Return(sch, nil)

		reports, err := dispatcher.NewDispatcher(loader, nil).Dispatch(context.Background(), "schema.yaml", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(reports).To(BeEmpty())
		Expect(dispatcher.HasErrors(reports)).To(BeFalse())
	})
})

var _ = Describe("FileLoader", func() {
	It("should load configurations and schemas from disk", func() {
		dir := GinkgoT().TempDir()
		cfgPath := filepath.Join(dir, "app.ini")
		schPath := filepath.Join(dir, "schema.yaml")

		Expect(os.WriteFile(cfgPath, []byte("[server]\nport = 80\n"), 0o600)).To(Succeed())
		Expect(os.WriteFile(schPath, []byte("server:\n  port:\n    type: int\n"), 0o600)).To(Succeed())

		reports, err := dispatcher.NewDispatcher(dispatcher.FileLoader{}, nil).
			Dispatch(context.Background(), schPath, []string{cfgPath})
		Expect(err).NotTo(HaveOccurred())
		Expect(reports).To(HaveLen(1))
		Expect(reports[0].Result.Findings()).To(BeEmpty())
	})
})

var _ = Describe("ExpandTargets", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()

		for _, name := range []string{"a.ini", "b.ini", "nested/c.ini", "nested/d.toml"} {
			path := filepath.Join(dir, name)
			Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
			Expect(os.WriteFile(path, []byte("[s]\n"), 0o600)).To(Succeed())
		}
	})

	It("should expand globs", func() {
		targets, err := dispatcher.ExpandTargets([]string{filepath.Join(dir, "**", "*.ini")})
		Expect(err).NotTo(HaveOccurred())
		Expect(targets).To(ConsistOf(
			filepath.Join(dir, "a.ini"),
			filepath.Join(dir, "b.ini"),
			filepath.Join(dir, "nested", "c.ini"),
		))
	})

	It("should drop duplicates keeping the first occurrence", func() {
		b := filepath.Join(dir, "b.ini")

		targets, err := dispatcher.ExpandTargets([]string{b, filepath.Join(dir, "*.ini"), b})
		Expect(err).NotTo(HaveOccurred())
		Expect(targets).To(HaveLen(2))
		Expect(targets[0]).To(Equal(b))
		Expect(targets[1]).To(Equal(filepath.Join(dir, "a.ini")))
	})

	It("should keep literal paths that do not exist", func() {
		missing := filepath.Join(dir, "missing.ini")

		targets, err := dispatcher.ExpandTargets([]string{missing})
		Expect(err).NotTo(HaveOccurred())
		Expect(targets).To(Equal([]string{missing}))
	})

	It("should reject a glob without matches", func() {
		_, err := dispatcher.ExpandTargets([]string{filepath.Join(dir, "*.yaml")})
		Expect(errors.Is(err, dispatcher.ErrNoTargets)).To(BeTrue())
	})

	It("should reject malformed patterns", func() {
		_, err := dispatcher.ExpandTargets([]string{filepath.Join(dir, "[a.ini")})
		Expect(err).To(HaveOccurred())
	})
})
