package progress

import "time"

// DefaultAdvanceDelay is how long a newly completed section stays on screen
// before the tracker moves on.
const DefaultAdvanceDelay = 500 * time.Millisecond

// Ticket identifies one armed deferred action.
type Ticket struct {
	Gen  uint64
	From int
}

// Pending is a single cancellable deferred action. Only the most recently
// armed ticket that has not been cancelled or fired is live.
type Pending struct {
	gen  uint64
	live bool
}

// Arm invalidates any earlier ticket and returns a new live one.
func (p *Pending) Arm(from int) Ticket {
	p.gen++
	p.live = true
	return Ticket{Gen: p.gen, From: from}
}

// Cancel invalidates the live ticket, if any.
func (p *Pending) Cancel() {
	p.live = false
}

// Armed reports whether a ticket is waiting to fire.
func (p *Pending) Armed() bool { return p.live }

// Fire consumes t and reports whether it was still live.
func (p *Pending) Fire(t Ticket) bool {
	if !p.live || t.Gen != p.gen {
		return false
	}
	p.live = false
	return true
}
