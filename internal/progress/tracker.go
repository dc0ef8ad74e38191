// Package progress tracks a reader's position and completed sections within
// one open chapter.
package progress

import (
	"math"
	"sort"
)

// Advance tells the caller how to move on after a section is marked complete.
type Advance int

const (
	// AdvanceImmediate means the section was already complete; move on now.
	AdvanceImmediate Advance = iota
	// AdvanceDeferred means the section was newly completed; move on after a
	// short delay so the reader sees the completion.
	AdvanceDeferred
)

// Tracker holds the active section index and the set of completed sections
// for a chapter of N sections. The zero value is not usable; call New.
type Tracker struct {
	n         int
	active    int
	completed map[int]bool
}

// New creates a tracker for n sections. n below 1 is treated as 1.
func New(n int) *Tracker {
	if n < 1 {
		n = 1
	}
	return &Tracker{n: n, completed: make(map[int]bool, n)}
}

// Len returns the number of sections.
func (t *Tracker) Len() int { return t.n }

// Active returns the active section index.
func (t *Tracker) Active() int { return t.active }

// GoTo makes section i active. Out-of-range indices are ignored.
func (t *Tracker) GoTo(i int) {
	if t.inRange(i) {
		t.active = i
	}
}

// Advance moves to the next section unless the last one is active.
func (t *Tracker) Advance() {
	if t.CanAdvance() {
		t.active++
	}
}

// Retreat moves to the previous section unless the first one is active.
func (t *Tracker) Retreat() {
	if t.CanRetreat() {
		t.active--
	}
}

// MarkComplete records section i as completed and reports how the caller
// should advance. Out-of-range indices are ignored.
func (t *Tracker) MarkComplete(i int) Advance {
	if !t.inRange(i) || t.completed[i] {
		return AdvanceImmediate
	}
	t.completed[i] = true
	return AdvanceDeferred
}

// IsCompleted reports whether section i is completed.
func (t *Tracker) IsCompleted(i int) bool { return t.completed[i] }

// CompletedCount returns the number of completed sections.
func (t *Tracker) CompletedCount() int { return len(t.completed) }

// Completed returns the completed section indices in ascending order.
func (t *Tracker) Completed() []int {
	out := make([]int, 0, len(t.completed))
	for i := range t.completed {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// CompletionPercent returns the share of completed sections, rounded to the
// nearest whole percent. It reports 100 only once every section is completed.
func (t *Tracker) CompletionPercent() int {
	pct := int(math.Round(100 * float64(len(t.completed)) / float64(t.n)))
	if pct >= 100 && !t.IsChapterComplete() {
		return 99
	}
	return min(max(pct, 0), 100)
}

// IsChapterComplete reports whether every section is completed.
func (t *Tracker) IsChapterComplete() bool { return len(t.completed) == t.n }

// CanAdvance reports whether Advance would move.
func (t *Tracker) CanAdvance() bool { return t.active < t.n-1 }

// CanRetreat reports whether Retreat would move.
func (t *Tracker) CanRetreat() bool { return t.active > 0 }

// IsLast reports whether the last section is active.
func (t *Tracker) IsLast() bool { return t.active == t.n-1 }

func (t *Tracker) inRange(i int) bool { return i >= 0 && i < t.n }
