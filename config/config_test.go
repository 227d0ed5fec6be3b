package config_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/aoc2019/config"
	"github.com/sarchlab/aoc2019/core"
	"github.com/sarchlab/aoc2019/program"
)

var _ = Describe("Load", func() {
	writeAs := func(name, content string) string {
		path := filepath.Join(GinkgoT().TempDir(), name)
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
		return path
	}

	write := func(content string) string {
		return writeAs("run.toml", content)
	}

	It("should read every key", func() {
		c, err := config.Load(write(`
step_limit = 500
freq_ghz = 2.5
log_level = "debug"
log_format = "text"
`))

		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(config.Config{
			StepLimit: 500,
			FreqGHz:   2.5,
			LogLevel:  "debug",
			LogFormat: "text",
		}))
	})

	It("should keep defaults for missing keys", func() {
		c, err := config.Load(write(`step_limit = 10`))

		Expect(err).NotTo(HaveOccurred())
		Expect(c.StepLimit).To(Equal(10))
		Expect(c.FreqGHz).To(Equal(config.Default().FreqGHz))
		Expect(c.LogLevel).To(Equal(config.Default().LogLevel))
	})

	It("should reject malformed TOML", func() {
		_, err := config.Load(write(`step_limit = `))

		Expect(err).To(MatchError(ContainSubstring("parse error")))
	})

	It("should reject invalid values", func() {
		_, err := config.Load(write(`step_limit = -1`))
		Expect(err).To(MatchError(ContainSubstring("step_limit")))

		_, err = config.Load(write(`log_level = "loud"`))
		Expect(err).To(MatchError(ContainSubstring("unknown log level")))

		_, err = config.Load(write(`log_format = "xml"`))
		Expect(err).To(MatchError(ContainSubstring("log_format")))

		_, err = config.Load(write(`freq_ghz = 0.0`))
		Expect(err).To(MatchError(ContainSubstring("freq_ghz")))
	})

	It("should reject unknown keys", func() {
		_, err := config.Load(write(`steps = 10`))

		Expect(err).To(MatchError(ContainSubstring("unknown key steps")))
	})

	It("should read YAML files", func() {
		c, err := config.Load(writeAs("run.yaml", `
step_limit: 500
freq_ghz: 2.5
log_level: debug
log_format: text
`))

		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(config.Config{
			StepLimit: 500,
			FreqGHz:   2.5,
			LogLevel:  "debug",
			LogFormat: "text",
		}))
	})

	It("should keep defaults for an empty YAML file", func() {
		c, err := config.Load(writeAs("run.yml", ""))

		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(config.Default()))
	})

	It("should reject unknown YAML keys", func() {
		_, err := config.Load(writeAs("run.yml", "steps: 10\n"))

		Expect(err).To(MatchError(ContainSubstring("parse error")))
	})

	It("should fail on a missing file", func() {
		_, err := config.Load(filepath.Join(GinkgoT().TempDir(), "none.toml"))

		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})
})

var _ = Describe("NewLogger", func() {
	It("should emit trace records only at trace level", func() {
		var buf bytes.Buffer
		c := config.Default()

		logger := config.NewLogger(c, &buf)
		Expect(logger.Enabled(context.Background(), core.LevelTrace)).To(BeFalse())

		c.LogLevel = "trace"
		logger = config.NewLogger(c, &buf)
		Expect(logger.Enabled(context.Background(), core.LevelTrace)).To(BeTrue())
	})

	It("should write JSON by default", func() {
		var buf bytes.Buffer

		config.NewLogger(config.Default(), &buf).Info("hello")

		Expect(buf.String()).To(ContainSubstring(`"msg":"hello"`))
	})

	It("should write text when asked", func() {
		var buf bytes.Buffer
		c := config.Default()
		c.LogFormat = "text"

		config.NewLogger(c, &buf).Log(context.Background(), slog.LevelWarn, "hello")

		Expect(buf.String()).To(ContainSubstring("msg=hello"))
	})
})

var _ = Describe("PlatformBuilder", func() {
	It("should build a platform that runs programs", func() {
		platform := config.MakePlatformBuilder().Build("Platform")
		p := program.New([]int64{1, 0, 0, 0, 99})

		r, err := platform.Run(p)

		Expect(err).NotTo(HaveOccurred())
		Expect(r.Status).To(Equal(core.Success))
		Expect(p.Memory()).To(Equal([]int64{2, 0, 0, 0, 99}))
		Expect(platform.Core.Name()).To(Equal("Platform.Core"))
		Expect(platform.String()).To(Equal("Platform(Platform.Core)"))
	})

	It("should share the given engine", func() {
		engine := sim.NewSerialEngine()

		platform := config.MakePlatformBuilder().
			WithEngine(engine).
			Build("Platform")

		Expect(platform.Engine).To(BeIdenticalTo(engine))
	})

	It("should apply the step limit of a config", func() {
		c := config.Default()
		c.StepLimit = 1

		platform := config.MakePlatformBuilder().
			WithConfig(c).
			Build("Platform")
		r, err := platform.Run(program.New([]int64{1, 0, 0, 0, 1, 0, 0, 0, 99}))

		Expect(errors.Is(err, core.ErrStepLimitExceeded)).To(BeTrue())
		Expect(r.Status).To(Equal(core.Faulted))
	})

	It("should run several programs one after another", func() {
		platform := config.MakePlatformBuilder().Build("Platform")

		r, err := platform.Run(program.New([]int64{3}))
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Status).To(Equal(core.UnknownOpCode))

		r, err = platform.Run(program.New([]int64{99}))
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Status).To(Equal(core.Success))
	})
})
