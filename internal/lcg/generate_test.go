package lcg_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mpetriv/lcgviz/internal/lcg"
)

var _ = Describe("Generate", func() {
	It("rejects a non-positive modulus", func() {
		_, err := lcg.Generate(lcg.Params{Modulus: 0, Multiplier: 1, Increment: 1})
		Expect(err).To(MatchError(lcg.ErrInvalidModulus))

		_, err = lcg.Generate(lcg.Params{Modulus: -7, Multiplier: 1, Increment: 1})
		Expect(err).To(MatchError(lcg.ErrInvalidModulus))
	})

	It("repeats immediately for modulus 1", func() {
		traj, err := lcg.Generate(lcg.Params{Modulus: 1, Multiplier: 5, Increment: 3, Seed: 9})
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Values()).To(Equal([]int64{0}))
		Expect(traj.Cycle.TailLength).To(Equal(0))
		Expect(traj.Cycle.Start).To(Equal(int64(0)))
		Expect(traj.Cycle.Length).To(Equal(1))
	})

	It("walks the full period of a Hull-Dobell generator", func() {
		traj, err := lcg.Generate(lcg.Params{Modulus: 5, Multiplier: 1, Increment: 1, Seed: 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Values()).To(Equal([]int64{0, 1, 2, 3, 4}))
		Expect(traj.Cycle).To(Equal(lcg.Cycle{TailLength: 0, Start: 0, Length: 5}))
	})

	It("matches direct simulation for m=10 a=7 c=7", func() {
		p := lcg.Params{Modulus: 10, Multiplier: 7, Increment: 7, Seed: 0}
		traj, err := lcg.Generate(p)
		Expect(err).NotTo(HaveOccurred())

		// 0 -> 7 -> 56 mod 10 = 6 -> 49 mod 10 = 9 -> 70 mod 10 = 0 repeat
		Expect(traj.Values()).To(Equal([]int64{0, 7, 6, 9}))
		Expect(traj.Cycle).To(Equal(lcg.Cycle{TailLength: 0, Start: 0, Length: 4}))
	})

	It("normalizes a negative seed before the first step", func() {
		traj, err := lcg.Generate(lcg.Params{Modulus: 5, Multiplier: 1, Increment: 1, Seed: -3})
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Steps[0].Value).To(Equal(int64(2)))
	})

	It("keeps residues in range for negative multiplier and increment", func() {
		traj, err := lcg.Generate(lcg.Params{Modulus: 9, Multiplier: -4, Increment: -5, Seed: 1})
		Expect(err).NotTo(HaveOccurred())
		for _, s := range traj.Steps {
			Expect(s.Value).To(And(BeNumerically(">=", 0), BeNumerically("<", 9)))
		}
	})

	It("terminates within 2m steps for arbitrary parameters", func() {
		cases := []lcg.Params{
			{Modulus: 64, Multiplier: 13, Increment: 0, Seed: 5},
			{Modulus: 97, Multiplier: 23, Increment: 41, Seed: 96},
			{Modulus: 1000, Multiplier: 997, Increment: 1, Seed: 123},
			{Modulus: 3, Multiplier: 0, Increment: 0, Seed: 2},
		}
		for _, p := range cases {
			traj, err := lcg.Generate(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(int64(len(traj.Steps))).To(BeNumerically("<=", 2*p.Modulus))
			for _, s := range traj.Steps {
				Expect(s.Value).To(And(BeNumerically(">=", 0), BeNumerically("<", p.Modulus)))
			}
		}
	})

	It("upholds the tail/cycle split invariant", func() {
		p := lcg.Params{Modulus: 30, Multiplier: 17, Increment: 5, Seed: 11}
		traj, err := lcg.Generate(p)
		Expect(err).NotTo(HaveOccurred())

		c := traj.Cycle
		Expect(traj.Steps[c.TailLength].Value).To(Equal(c.Start))
		Expect(c.TailLength + c.Length).To(Equal(len(traj.Steps)))

		// The step after the last recorded one closes the cycle.
		last := traj.Steps[len(traj.Steps)-1].Value
		Expect(p.Next(last)).To(Equal(c.Start))
	})

	It("is deterministic across calls", func() {
		p := lcg.Params{Modulus: 60, Multiplier: 7, Increment: 3, Seed: 42}
		a, err := lcg.Generate(p)
		Expect(err).NotTo(HaveOccurred())
		b, err := lcg.Generate(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal(a))
	})
})

var _ = Describe("DetectCycle", func() {
	It("rejects a non-positive modulus", func() {
		_, err := lcg.DetectCycle(lcg.Params{Modulus: 0, Multiplier: 1, Increment: 1})
		Expect(err).To(MatchError(lcg.ErrInvalidModulus))
	})

	It("matches Generate on the cycle report", func() {
		for _, p := range []lcg.Params{
			{Modulus: 1, Multiplier: 5, Increment: 3, Seed: 9},
			{Modulus: 10, Multiplier: 7, Increment: 7, Seed: 0},
			{Modulus: 10, Multiplier: 0, Increment: 4, Seed: 7},
			{Modulus: 48, Multiplier: 6, Increment: 2, Seed: 11},
			{Modulus: 60, Multiplier: 7, Increment: 3, Seed: 42},
			{Modulus: 97, Multiplier: 23, Increment: 41, Seed: 96},
			{Modulus: 3, Multiplier: 0, Increment: 0, Seed: 2},
		} {
			traj, err := lcg.Generate(p)
			Expect(err).NotTo(HaveOccurred())
			c, err := lcg.DetectCycle(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(c).To(Equal(traj.Cycle), "params %+v", p)
		}
	})

	It("detects a full period at million-residue scale", func() {
		p := lcg.Params{Modulus: 1 << 20, Multiplier: 5, Increment: 3, Seed: 1}
		c, err := lcg.DetectCycle(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.TailLength).To(Equal(0))
		Expect(c.Length).To(Equal(1 << 20))
		Expect(c.Start).To(Equal(int64(1)))
	})
})

var _ = Describe("FullPeriod", func() {
	It("accepts Hull-Dobell parameters", func() {
		Expect(lcg.FullPeriod(lcg.Params{Modulus: 5, Multiplier: 1, Increment: 1})).To(BeTrue())
		Expect(lcg.FullPeriod(lcg.Params{Modulus: 16, Multiplier: 5, Increment: 3})).To(BeTrue())
		Expect(lcg.FullPeriod(lcg.Params{Modulus: 9, Multiplier: 4, Increment: 5})).To(BeTrue())
	})

	It("rejects parameters that cannot reach every residue", func() {
		Expect(lcg.FullPeriod(lcg.Params{Modulus: 10, Multiplier: 7, Increment: 7})).To(BeFalse())
		Expect(lcg.FullPeriod(lcg.Params{Modulus: 16, Multiplier: 6, Increment: 3})).To(BeFalse())
		Expect(lcg.FullPeriod(lcg.Params{Modulus: 0, Multiplier: 1, Increment: 1})).To(BeFalse())
	})

	It("agrees with Generate on cycle coverage", func() {
		for _, p := range []lcg.Params{
			{Modulus: 16, Multiplier: 5, Increment: 3, Seed: 0},
			{Modulus: 30, Multiplier: 17, Increment: 5, Seed: 0},
			{Modulus: 12, Multiplier: 5, Increment: 7, Seed: 4},
		} {
			traj, err := lcg.Generate(p)
			Expect(err).NotTo(HaveOccurred())
			full := traj.Cycle.TailLength == 0 && int64(traj.Cycle.Length) == p.Modulus
			Expect(lcg.FullPeriod(p)).To(Equal(full), "params %+v", p)
		}
	})
})
