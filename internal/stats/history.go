// Package stats keeps rolling per-tick population figures for the HUD and
// headless drivers.
package stats

import "github.com/gammazero/deque"

// History is a bounded window of the most recent samples, oldest first.
type History struct {
	limit   int
	samples deque.Deque[int]
}

// NewHistory returns a window holding at most limit samples.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 1
	}
	return &History{limit: limit}
}

// Push appends a sample, evicting the oldest one when the window is full.
func (h *History) Push(v int) {
	if h.samples.Len() == h.limit {
		h.samples.PopFront()
	}
	h.samples.PushBack(v)
}

// Len reports the number of samples held.
func (h *History) Len() int { return h.samples.Len() }

// Limit is the window capacity.
func (h *History) Limit() int { return h.limit }

// Reset drops all samples.
func (h *History) Reset() { h.samples.Clear() }

// Last returns the newest sample.
func (h *History) Last() (int, bool) {
	if h.samples.Len() == 0 {
		return 0, false
	}
	return h.samples.Back(), true
}

// Values copies the window into dst, oldest first.
func (h *History) Values(dst []int) []int {
	dst = dst[:0]
	for i := 0; i < h.samples.Len(); i++ {
		dst = append(dst, h.samples.At(i))
	}
	return dst
}

// Range returns the smallest and largest sample in the window.
func (h *History) Range() (lo, hi int) {
	n := h.samples.Len()
	if n == 0 {
		return 0, 0
	}
	lo, hi = h.samples.At(0), h.samples.At(0)
	for i := 1; i < n; i++ {
		v := h.samples.At(i)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Delta is the change between the oldest and newest samples.
func (h *History) Delta() int {
	if h.samples.Len() < 2 {
		return 0
	}
	return h.samples.Back() - h.samples.Front()
}
