package trail

import "log/slog"

// Driver is the animation loop. It is either stopped or running, and while
// running keeps exactly one frame requested.
type Driver struct {
	set   *ParticleSet
	sched Scheduler

	running bool
	hasPrev bool
	prev    float64
	pending FrameID
	frames  uint64
}

func NewDriver(set *ParticleSet, sched Scheduler) *Driver {
	return &Driver{set: set, sched: sched}
}

func (d *Driver) Start() {
	if d.running {
		misuse(ErrAlreadyRunning)
		return
	}
	d.running = true
	d.hasPrev = false
	d.pending = d.sched.RequestFrame(d.frame)
}

func (d *Driver) Stop() {
	if !d.running {
		misuse(ErrNotRunning)
		return
	}
	d.running = false
	d.sched.CancelFrame(d.pending)
	d.pending = 0
}

func (d *Driver) Running() bool { return d.running }

// Frames counts completed frame callbacks since construction.
func (d *Driver) Frames() uint64 { return d.frames }

func (d *Driver) frame(timestamp float64) {
	if !d.running {
		return
	}
	d.pending = 0
	if !d.hasPrev {
		d.prev = timestamp
		d.hasPrev = true
	}

	d.set.UpdateAll(timestamp - d.prev)
	if n := d.set.ReapExpired(); n > 0 {
		slog.Debug("reaped particles", "count", n, "live", d.set.Len())
	}
	d.prev = timestamp
	d.frames++

	d.pending = d.sched.RequestFrame(d.frame)
}
