package trail

import "log/slog"

// Status is the effect's on/off state.
type Status int

const (
	StatusOff Status = iota
	StatusOn
)

func (s Status) String() string {
	if s == StatusOn {
		return "on"
	}
	return "off"
}

// Control labels. Each prompts the action the next activation performs.
const (
	LabelStart = "Leak Some Bits?"
	LabelStop  = "Stop Leaking Bits"
)

// EffectController owns the on/off status and wires the tracker, driver and
// particle set together.
type EffectController struct {
	status  Status
	set     *ParticleSet
	driver  *Driver
	tracker *InputTracker
	input   InputSource
	control Control
	toggles int
}

// Options are the host-provided pieces of an effect.
type Options struct {
	Tuning    Tuning
	Random    Source
	Surface   Surface
	Scheduler Scheduler
	Input     InputSource
	Control   Control
	Viewport  Point
}

// New assembles a complete effect in the off state. Call Mount to start it.
// Invalid tuning is replaced by DefaultTuning.
func New(opts Options) *EffectController {
	if err := opts.Tuning.Validate(); err != nil {
		slog.Warn("invalid tuning, using defaults", "err", err)
		opts.Tuning = DefaultTuning()
	}
	set := NewParticleSet(opts.Tuning, opts.Random, opts.Surface)
	c := &EffectController{
		set:     set,
		driver:  NewDriver(set, opts.Scheduler),
		input:   opts.Input,
		control: opts.Control,
	}
	c.tracker = NewInputTracker(opts.Tuning.Glyphs, opts.Random, c, opts.Viewport)
	return c
}

// Mount turns the effect on once and subscribes Toggle to the control.
func (c *EffectController) Mount() {
	c.Toggle()
	c.control.OnActivate(c.Toggle)
}

// Toggle flips the status. Turning off unbinds input, stops the driver and
// destroys every particle before returning.
func (c *EffectController) Toggle() {
	if c.status == StatusOn {
		c.input.Unbind()
		c.driver.Stop()
		cleared := c.set.Clear()
		c.control.SetLabel(LabelStart)
		c.status = StatusOff
		slog.Debug("effect toggled", "status", c.status, "cleared", cleared)
	} else {
		c.input.Bind(c.tracker)
		c.driver.Start()
		c.control.SetLabel(LabelStop)
		c.status = StatusOn
		slog.Debug("effect toggled", "status", c.status)
	}
	c.toggles++
}

// Spawn implements Spawner for the tracker.
func (c *EffectController) Spawn(x, y float64, glyph string) {
	if c.status != StatusOn {
		misuse(ErrEffectOff, "x", x, "y", y)
		return
	}
	c.set.Add(x, y, glyph)
}

func (c *EffectController) Status() Status { return c.status }

// Toggles counts how many times the status has flipped.
func (c *EffectController) Toggles() int { return c.toggles }

func (c *EffectController) Particles() *ParticleSet { return c.set }

func (c *EffectController) Driver() *Driver { return c.driver }

func (c *EffectController) Tracker() *InputTracker { return c.tracker }
