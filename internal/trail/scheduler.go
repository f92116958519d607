package trail

// FrameID identifies a requested frame. Zero means none.
type FrameID uint64

// FrameFunc receives a monotonically increasing timestamp in milliseconds.
type FrameFunc func(timestamp float64)

// Scheduler requests and cancels one-shot frame callbacks.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

type pendingFrame struct {
	id FrameID
	fn FrameFunc
}

// FrameQueue is a cooperative Scheduler. The host calls Flush once per
// display refresh; callbacks requested during a flush run on the next one.
type FrameQueue struct {
	nextID  FrameID
	pending []pendingFrame
	last    float64
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.nextID++
	q.pending = append(q.pending, pendingFrame{id: q.nextID, fn: fn})
	return q.nextID
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Flush runs every callback pending at call time and returns how many ran.
// Timestamps that go backward are clamped to the previous flush.
func (q *FrameQueue) Flush(timestamp float64) int {
	if timestamp < q.last {
		timestamp = q.last
	}
	q.last = timestamp

	due := q.pending
	q.pending = nil
	for _, f := range due {
		f.fn(timestamp)
	}
	return len(due)
}

func (q *FrameQueue) Pending() int { return len(q.pending) }
