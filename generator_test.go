package saltid

import (
	. "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Generator", func() {
	var mockCtrl *gomock.Controller

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should mint the salt itself first", func() {
		g := NewGenerator(42)

		gomega.Expect(g.Next()).To(gomega.Equal(ID(42)))
	})

	It("should remember its salt", func() {
		g := NewGenerator(42)

		gomega.Expect(g.Salt()).To(gomega.Equal(Salt(42)))
	})

	It("should increase identifiers by MaxSalts on each call", func() {
		g := NewGenerator(7)

		prev := g.Next()
		for i := 0; i < 100; i++ {
			curr := g.Next()
			gomega.Expect(curr).To(gomega.Equal(prev + MaxSalts))
			prev = curr
		}
	})

	Context("with a shrunken identifier space", func() {
		It("should interleave the salt into every identifier", func() {
			g := &Generator{salt: 3, maxSalts: 10, capacity: 100}

			gomega.Expect(g.Next()).To(gomega.Equal(ID(3)))
			gomega.Expect(g.Next()).To(gomega.Equal(ID(13)))
			gomega.Expect(g.Next()).To(gomega.Equal(ID(23)))
		})

		It("should wrap around silently and reissue the first identifier", func() {
			g := &Generator{salt: 3, maxSalts: 10, capacity: 3}

			gomega.Expect(g.Next()).To(gomega.Equal(ID(3)))
			gomega.Expect(g.Next()).To(gomega.Equal(ID(13)))
			gomega.Expect(g.Next()).To(gomega.Equal(ID(23)))
			gomega.Expect(g.Next()).To(gomega.Equal(ID(3)))
		})

		It("should invoke the wraparound hook when the counter resets", func() {
			g := &Generator{salt: 3, maxSalts: 10, capacity: 2}
			hook := NewMockHook(mockCtrl)
			g.AcceptHook(hook)

			gomock.InOrder(
				hook.EXPECT().Func(HookCtx{
					Domain: g, Pos: HookPosAllocate, Item: ID(3)}),
				hook.EXPECT().Func(HookCtx{
					Domain: g, Pos: HookPosAllocate, Item: ID(13)}),
				hook.EXPECT().Func(HookCtx{
					Domain: g,
					Pos:    HookPosWraparound,
					Item:   Salt(3),
					Detail: uint64(2),
				}),
				hook.EXPECT().Func(HookCtx{
					Domain: g, Pos: HookPosAllocate, Item: ID(3)}),
			)

			g.Next()
			g.Next()
			g.Next()
		})
	})
})
