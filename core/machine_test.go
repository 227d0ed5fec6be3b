package core_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/sarchlab/aoc2019/core"
	"github.com/sarchlab/aoc2019/program"
)

var _ = Describe("Machine", func() {
	DescribeTable("programs that halt",
		func(in []int64, status core.Status, out []int64) {
			p := program.New(in)

			got, err := core.Execute(p)

			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(status))
			Expect(p.Memory()).To(Equal(out))
		},
		Entry("add",
			[]int64{1, 0, 0, 0, 99}, core.Success,
			[]int64{2, 0, 0, 0, 99}),
		Entry("multiply",
			[]int64{2, 3, 0, 3, 99}, core.Success,
			[]int64{2, 3, 0, 6, 99}),
		Entry("multiply into the tail",
			[]int64{2, 4, 4, 5, 99, 0}, core.Success,
			[]int64{2, 4, 4, 5, 99, 9801}),
		Entry("self-modifying",
			[]int64{1, 1, 1, 4, 99, 5, 6, 0, 99}, core.Success,
			[]int64{30, 1, 1, 4, 2, 5, 6, 0, 99}),
		Entry("example from the puzzle",
			[]int64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}, core.Success,
			[]int64{3500, 9, 10, 70, 2, 3, 11, 0, 99, 30, 40, 50}),
		Entry("finish right away",
			[]int64{99}, core.Success,
			[]int64{99}),
		Entry("unknown opcode",
			[]int64{3}, core.UnknownOpCode,
			[]int64{3}),
		Entry("unknown opcode after an add",
			[]int64{1, 0, 0, 0, 7}, core.UnknownOpCode,
			[]int64{2, 0, 0, 0, 7}),
	)

	It("should fault on an out-of-range operand without panicking", func() {
		p := program.New([]int64{1, 5, 5, 5, 99})

		var (
			status core.Status
			err    error
		)
		Expect(func() { status, err = core.Execute(p) }).NotTo(Panic())

		Expect(status).To(Equal(core.Faulted))
		Expect(errors.Is(err, core.ErrAddressOutOfRange)).To(BeTrue())
		Expect(p.Memory()).To(Equal([]int64{1, 5, 5, 5, 99}))
	})

	It("should leave partial results in memory after a fault", func() {
		p := program.New([]int64{1, 0, 0, 0, 2, -1, 0, 0, 99})

		status, err := core.Execute(p)

		Expect(status).To(Equal(core.Faulted))
		Expect(errors.Is(err, core.ErrNegativeAddress)).To(BeTrue())
		Expect(p.Get(0)).To(Equal(int64(2)))
		Expect(p.IP()).To(Equal(4))
	})

	It("should wrap around on overflow", func() {
		p := program.New([]int64{1, 5, 6, 0, 99, math.MaxInt64, 1})

		_, err := core.Execute(p)

		Expect(err).NotTo(HaveOccurred())
		Expect(p.Get(0)).To(Equal(int64(math.MinInt64)))
	})

	It("should step one instruction at a time", func() {
		m := core.NewMachine(program.New([]int64{1, 0, 0, 0, 99}))

		status, err := m.Step()
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(core.Running))
		Expect(m.Program().IP()).To(Equal(4))

		status, err = m.Step()
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(core.Success))

		status, _ = m.Step()
		Expect(status).To(Equal(core.Success))
		Expect(m.Result().Steps).To(Equal(2))
	})

	It("should fault once the step limit is exceeded", func() {
		p := program.New([]int64{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 99})
		m := core.NewMachine(p).WithStepLimit(2)

		status, err := m.Run()

		Expect(status).To(Equal(core.Faulted))
		Expect(errors.Is(err, core.ErrStepLimitExceeded)).To(BeTrue())
		Expect(m.Result().Steps).To(Equal(2))
	})

	It("should report terminal statuses", func() {
		Expect(core.Running.Terminal()).To(BeFalse())
		Expect(core.Success.Terminal()).To(BeTrue())
		Expect(core.UnknownOpCode.Terminal()).To(BeTrue())
		Expect(core.Faulted.Terminal()).To(BeTrue())
	})
})
