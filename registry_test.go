package saltid

import (
	. "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Registry", func() {
	var mockCtrl *gomock.Controller

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should issue salt 0 first", func() {
		r := NewRegistry()

		gomega.Expect(r.NextSalt()).To(gomega.Equal(Salt(0)))
	})

	It("should issue sequential salts", func() {
		r := NewRegistry()

		gomega.Expect(r.NextSalt()).To(gomega.Equal(Salt(0)))
		gomega.Expect(r.NextSalt()).To(gomega.Equal(Salt(1)))
		gomega.Expect(r.NextSalt()).To(gomega.Equal(Salt(2)))
	})

	It("should bind generators to issued salts", func() {
		r := NewRegistry()

		gomega.Expect(r.NextGenerator().Salt()).To(gomega.Equal(Salt(0)))
		gomega.Expect(r.NextGenerator().Salt()).To(gomega.Equal(Salt(1)))
	})

	Context("with a shrunken salt space", func() {
		It("should cycle back to 1, never to 0", func() {
			r := &Registry{maxSalts: 4}

			gomega.Expect(r.NextSalt()).To(gomega.Equal(Salt(0)))
			gomega.Expect(r.NextSalt()).To(gomega.Equal(Salt(1)))
			gomega.Expect(r.NextSalt()).To(gomega.Equal(Salt(2)))
			gomega.Expect(r.NextSalt()).To(gomega.Equal(Salt(3)))
			gomega.Expect(r.NextSalt()).To(gomega.Equal(Salt(1)))
			gomega.Expect(r.NextSalt()).To(gomega.Equal(Salt(2)))
		})

		It("should flag reused salts through the hook", func() {
			r := &Registry{maxSalts: 2}
			hook := NewMockHook(mockCtrl)
			r.AcceptHook(hook)

			gomock.InOrder(
				hook.EXPECT().Func(HookCtx{
					Domain: r,
					Pos:    HookPosSaltIssued,
					Item:   Salt(0),
					Detail: false,
				}),
				hook.EXPECT().Func(HookCtx{
					Domain: r,
					Pos:    HookPosSaltIssued,
					Item:   Salt(1),
					Detail: false,
				}),
				hook.EXPECT().Func(HookCtx{
					Domain: r,
					Pos:    HookPosSaltIssued,
					Item:   Salt(1),
					Detail: true,
				}),
			)

			r.NextSalt()
			r.NextSalt()
			r.NextSalt()
		})
	})
})
