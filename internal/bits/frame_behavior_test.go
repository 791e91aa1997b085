package bits_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bitviz/internal/bits"
)

var _ = Describe("Frame", func() {
	var f bits.Frame

	BeforeEach(func() {
		f = bits.NewFrame(bits.ClampSaturate)
	})

	It("starts zeroed with AND selected", func() {
		Expect(f.Current).To(BeZero())
		Expect(f.Opt).To(BeZero())
		Expect(f.Op).To(Equal(bits.OpAnd))
		Expect(f.Result()).To(BeZero())
	})

	Context("with NOT selected", func() {
		BeforeEach(func() {
			f.Current = 0x00F0
			f.Apply(bits.RuneKey('n'))
		})

		It("never changes the result when opt is edited", func() {
			want := f.Result()
			for _, r := range []rune{'i', 'i', 'j', 'j', 'k', 'l', 'i'} {
				f.Apply(bits.RuneKey(r))
				Expect(f.Result()).To(Equal(want))
			}
			Expect(f.Opt).NotTo(BeZero())
		})
	})

	DescribeTable("shift keys move current by one bit whatever opt holds",
		func(opt bits.Register) {
			f.Opt = opt
			f.Current = 0x0100
			f.Apply(bits.Key{Code: bits.KeyLeft})
			Expect(f.Current).To(Equal(bits.Register(0x0200)))
			f.Apply(bits.Key{Code: bits.KeyRight})
			f.Apply(bits.Key{Code: bits.KeyRight})
			Expect(f.Current).To(Equal(bits.Register(0x0080)))
		},
		Entry("opt zero", bits.Register(0)),
		Entry("opt four", bits.Register(4)),
		Entry("opt max", bits.Max),
	)

	It("treats repeated resets as one", func() {
		f.Current, f.Opt, f.Op = 0x1234, 0x4321, bits.OpOr
		f.Apply(bits.RuneKey('r'))
		once := f
		f.Apply(bits.RuneKey('r'))
		Expect(f).To(Equal(once))
		Expect(f.Op).To(Equal(bits.OpOr))
	})

	It("keeps current within 16 bits when incremented from the maximum", func() {
		f.Current = bits.Max
		f.Apply(bits.Key{Code: bits.KeyUp})
		Expect(f.Current.InRange()).To(BeTrue())
	})

	It("quits on q from any state without mutating", func() {
		f.Current, f.Opt, f.Op = 0xBEEF, 0x0F0F, bits.OpShiftRight
		before := f
		Expect(f.Apply(bits.RuneKey('q'))).To(BeTrue())
		Expect(f).To(Equal(before))
	})

	Context("with the one policy", func() {
		BeforeEach(func() {
			f = bits.NewFrame(bits.ClampOne)
		})

		It("resets an underflowed opt to 1", func() {
			f.Apply(bits.RuneKey('k'))
			Expect(f.Opt).To(Equal(bits.Register(1)))
		})
	})
})
