package script

import (
	"context"
	"log/slog"

	"github.com/san-kum/bitleak/internal/metrics"
	"github.com/san-kum/bitleak/internal/trail"
)

const DefaultFPS = 60

// Report summarises a headless replay.
type Report struct {
	Frames  int
	Spawned int
	Reaped  int
	Cleared int
	Dropped int
	Toggles int
	Peak    int
	Final   int
	Leaked  int
	Step    float64   // ms between frames
	Live    []float64 // live particles after each frame
	Metrics map[string]float64
}

// Play mounts a headless effect, feeds it the script at its own timestamps
// and keeps running frames until every particle spawned by the last event
// has had time to expire. A zero script seed replays as seed 1.
func Play(ctx context.Context, s *Script, tuning trail.Tuning, opts ...PlayOption) (*Report, error) {
	var pc playConfig
	for _, opt := range opts {
		opt(&pc)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := tuning.Validate(); err != nil {
		return nil, err
	}

	fps := s.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	seed := s.Seed
	if seed == 0 {
		seed = 1
	}

	queue := trail.NewFrameQueue()
	surface := &countingSurface{inner: pc.surface}
	input := &headlessInput{}
	control := &headlessControl{}
	fx := trail.New(trail.Options{
		Tuning:    tuning,
		Random:    trail.NewSource(seed),
		Surface:   surface,
		Scheduler: queue,
		Input:     input,
		Control:   control,
		Viewport:  s.Viewport,
	})
	fx.Mount()

	rep := &Report{Step: 1000 / float64(fps), Metrics: make(map[string]float64)}
	observers := metrics.Default()
	end := s.Duration() + tuning.MaxLifespan() + 2*rep.Step
	next := 0

	for frame := 0; ; frame++ {
		now := float64(frame) * rep.Step
		if now > end {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for next < len(s.Events) && s.Events[next].At <= now {
			ev := s.Events[next]
			next++
			if ev.Kind == KindToggle {
				if fx.Status() == trail.StatusOn {
					rep.Cleared += fx.Particles().Len()
				}
				control.activate()
				rep.Toggles++
				continue
			}
			if !input.deliver(ev) {
				rep.Dropped++
			}
		}

		queue.Flush(now)

		live := fx.Particles().Len()
		rep.Live = append(rep.Live, float64(live))
		if live > rep.Peak {
			rep.Peak = live
		}
		for _, m := range observers {
			m.Observe(now, live)
		}
		if pc.onFrame != nil {
			pc.onFrame(frame, now, live)
		}
	}

	rep.Frames = int(fx.Driver().Frames())
	rep.Spawned = surface.attached
	rep.Final = fx.Particles().Len()
	rep.Reaped = surface.detached - rep.Cleared
	rep.Leaked = surface.attached - surface.detached - rep.Final
	for _, m := range observers {
		rep.Metrics[m.Name()] = m.Value()
	}

	slog.Debug("replay finished",
		"name", s.Name,
		"events", len(s.Events),
		"frames", rep.Frames,
		"spawned", rep.Spawned,
		"peak", rep.Peak,
	)
	return rep, nil
}

type headlessInput struct {
	handler trail.InputHandler
}

func (in *headlessInput) Bind(h trail.InputHandler) { in.handler = h }
func (in *headlessInput) Unbind()                   { in.handler = nil }

func (in *headlessInput) deliver(ev Event) bool {
	if in.handler == nil {
		return false
	}
	ev.Dispatch(in.handler)
	return true
}

type headlessControl struct {
	label string
	fn    func()
}

func (c *headlessControl) SetLabel(label string) { c.label = label }
func (c *headlessControl) OnActivate(fn func())  { c.fn = fn }

func (c *headlessControl) activate() {
	if c.fn != nil {
		c.fn()
	}
}

// PlayOption customises a replay.
type PlayOption func(*playConfig)

type playConfig struct {
	surface trail.Surface
	onFrame func(frame int, now float64, live int)
}

// WithSurface also draws every glyph on surface.
func WithSurface(surface trail.Surface) PlayOption {
	return func(pc *playConfig) { pc.surface = surface }
}

// OnFrame calls fn after each frame with the live particle count.
func OnFrame(fn func(frame int, now float64, live int)) PlayOption {
	return func(pc *playConfig) { pc.onFrame = fn }
}

// countingSurface counts attach and detach calls, forwarding them to inner
// when set.
type countingSurface struct {
	inner              trail.Surface
	attached, detached int
}

func (s *countingSurface) NewHandle(glyph string) trail.Handle {
	h := &countingHandle{s: s}
	if s.inner != nil {
		h.inner = s.inner.NewHandle(glyph)
	}
	return h
}

type countingHandle struct {
	s     *countingSurface
	inner trail.Handle
}

func (h *countingHandle) SetTransform(tf trail.Transform) {
	if h.inner != nil {
		h.inner.SetTransform(tf)
	}
}

func (h *countingHandle) Attach() {
	h.s.attached++
	if h.inner != nil {
		h.inner.Attach()
	}
}

func (h *countingHandle) Detach() {
	h.s.detached++
	if h.inner != nil {
		h.inner.Detach()
	}
}
