package trail_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/san-kum/bitleak/internal/trail"
	"github.com/san-kum/bitleak/internal/trail/mocks"
)

// loopInput binds like a host would: events only reach a bound handler.
type loopInput struct {
	handler trail.InputHandler
	binds   int
}

func (in *loopInput) Bind(h trail.InputHandler) { in.handler = h; in.binds++ }
func (in *loopInput) Unbind()                   { in.handler = nil }

func (in *loopInput) move(x, y float64) {
	if in.handler != nil {
		in.handler.PointerMove(trail.Point{X: x, Y: y})
	}
}

type button struct {
	label    string
	activate func()
}

func (b *button) SetLabel(label string) { b.label = label }
func (b *button) OnActivate(fn func())  { b.activate = fn }

type countingSurface struct {
	attached, detached int
}

type countingHandle struct {
	s    *countingSurface
	live bool
}

func (s *countingSurface) NewHandle(string) trail.Handle { return &countingHandle{s: s} }
func (h *countingHandle) SetTransform(trail.Transform)   {}
func (h *countingHandle) Attach()                        { h.live = true; h.s.attached++ }
func (h *countingHandle) Detach() {
	Expect(h.live).To(BeTrue(), "detach of a handle that is not attached")
	h.live = false
	h.s.detached++
}

var _ = Describe("EffectController", func() {
	var (
		queue   *trail.FrameQueue
		input   *loopInput
		ctl     *button
		surface *countingSurface
		fx      *trail.EffectController
	)

	BeforeEach(func() {
		queue = trail.NewFrameQueue()
		input = &loopInput{}
		ctl = &button{}
		surface = &countingSurface{}
		fx = trail.New(trail.Options{
			Tuning:    trail.DefaultTuning(),
			Random:    trail.NewSource(11),
			Surface:   surface,
			Scheduler: queue,
			Input:     input,
			Control:   ctl,
			Viewport:  trail.Point{X: 800, Y: 600},
		})
	})

	It("falls back to the default tuning when given an empty glyph set", func() {
		fx = trail.New(trail.Options{
			Tuning:    trail.Tuning{MinLifespan: 2000, LifespanJitter: 1000},
			Random:    trail.NewSource(11),
			Surface:   surface,
			Scheduler: queue,
			Input:     input,
			Control:   ctl,
			Viewport:  trail.Point{X: 800, Y: 600},
		})
		fx.Mount()

		Expect(func() { input.move(1, 1) }).NotTo(Panic())
		Expect(fx.Particles().Len()).To(Equal(1))
		Expect(fx.Particles().Tuning().Glyphs).To(Equal(trail.DefaultTuning().Glyphs))
	})

	It("starts off and unbound", func() {
		Expect(fx.Status()).To(Equal(trail.StatusOff))
		Expect(input.handler).To(BeNil())
		Expect(fx.Driver().Running()).To(BeFalse())
	})

	Describe("Mount", func() {
		BeforeEach(func() { fx.Mount() })

		It("turns the effect on exactly once", func() {
			Expect(fx.Status()).To(Equal(trail.StatusOn))
			Expect(fx.Toggles()).To(Equal(1))
			Expect(input.binds).To(Equal(1))
			Expect(fx.Driver().Running()).To(BeTrue())
			Expect(queue.Pending()).To(Equal(1))
			Expect(ctl.label).To(Equal(trail.LabelStop))
		})

		It("toggles on control activation", func() {
			Expect(ctl.activate).NotTo(BeNil())
			ctl.activate()
			Expect(fx.Status()).To(Equal(trail.StatusOff))
			Expect(ctl.label).To(Equal(trail.LabelStart))
		})

		It("clears five live particles when turned off", func() {
			for i := 0; i < 5; i++ {
				input.move(float64(10*i), 40)
			}
			Expect(fx.Particles().Len()).To(Equal(5))

			fx.Toggle()
			Expect(fx.Particles().Len()).To(BeZero())
			Expect(surface.detached).To(Equal(5))
			Expect(queue.Pending()).To(BeZero())
		})

		It("restores the status after two toggles without leaking handles", func() {
			input.move(1, 1)
			input.move(2, 2)
			before := fx.Status()

			fx.Toggle()
			fx.Toggle()

			Expect(fx.Status()).To(Equal(before))
			Expect(surface.attached - surface.detached).To(Equal(fx.Particles().Len()))
			Expect(fx.Particles().Len()).To(BeZero())
			Expect(queue.Pending()).To(Equal(1))
		})

		It("drops input while off", func() {
			fx.Toggle()
			input.move(5, 5)
			Expect(fx.Particles().Len()).To(BeZero())
		})

		It("reaps every particle once its life runs out", func() {
			input.move(100, 100)
			input.move(120, 100)
			queue.Flush(0)
			queue.Flush(trail.DefaultTuning().MaxLifespan() + 1)

			Expect(fx.Particles().Len()).To(BeZero())
			Expect(surface.detached).To(Equal(2))
			Expect(fx.Status()).To(Equal(trail.StatusOn))
		})
	})
})

var _ = Describe("ParticleSet with mocked handles", func() {
	var (
		mockCtrl *gomock.Controller
		surface  *mocks.MockSurface
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		surface = mocks.NewMockSurface(mockCtrl)
	})

	It("transforms before attaching and detaches exactly once", func() {
		h := mocks.NewMockHandle(mockCtrl)
		gomock.InOrder(
			surface.EXPECT().NewHandle("1").Return(h),
			h.EXPECT().SetTransform(gomock.Any()),
			h.EXPECT().Attach(),
		)
		h.EXPECT().SetTransform(gomock.Any()).AnyTimes()
		h.EXPECT().Detach().Times(1)

		set := trail.NewParticleSet(trail.DefaultTuning(), trail.NewSource(5), surface)
		p := set.Add(100, 100, "1")
		p.Life = 50

		set.UpdateAll(60)
		Expect(p.Life).To(BeNumerically("==", -10))
		Expect(set.ReapExpired()).To(Equal(1))
		Expect(set.Clear()).To(BeZero())
	})

	It("detaches all five handles on clear", func() {
		for i := 0; i < 5; i++ {
			h := mocks.NewMockHandle(mockCtrl)
			surface.EXPECT().NewHandle(gomock.Any()).Return(h)
			h.EXPECT().SetTransform(gomock.Any()).AnyTimes()
			h.EXPECT().Attach()
			h.EXPECT().Detach().Times(1)
		}

		set := trail.NewParticleSet(trail.DefaultTuning(), trail.NewSource(9), surface)
		for i := 0; i < 5; i++ {
			set.Add(float64(i), float64(i), "0")
		}
		Expect(set.Clear()).To(Equal(5))
		Expect(set.Len()).To(BeZero())
	})
})

var _ = Describe("EffectController with mocked platform", func() {
	It("binds, labels and subscribes on mount", func() {
		mockCtrl := gomock.NewController(GinkgoT())
		input := mocks.NewMockInputSource(mockCtrl)
		control := mocks.NewMockControl(mockCtrl)

		var activate func()
		gomock.InOrder(
			input.EXPECT().Bind(gomock.Any()),
			control.EXPECT().SetLabel(trail.LabelStop),
			control.EXPECT().OnActivate(gomock.Any()).Do(func(fn func()) { activate = fn }),
		)

		fx := trail.New(trail.Options{
			Tuning:    trail.DefaultTuning(),
			Random:    trail.NewSource(1),
			Surface:   mocks.NewMockSurface(mockCtrl),
			Scheduler: trail.NewFrameQueue(),
			Input:     input,
			Control:   control,
		})
		fx.Mount()

		input.EXPECT().Unbind()
		control.EXPECT().SetLabel(trail.LabelStart)
		activate()
		Expect(fx.Status()).To(Equal(trail.StatusOff))
	})
})
