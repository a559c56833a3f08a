package scene

import (
	"log"
	"time"
)

// Reveal lights cubes one at a time in a fixed order. The first cube lights
// as soon as the reveal starts and another one every step after that; once
// the last cube has been lit for a full step everything goes dark again.
type Reveal struct {
	order   []int
	size    int
	step    time.Duration
	start   time.Time
	running bool
}

// NewReveal returns a stopped reveal over size cubes lit in order.
func NewReveal(order []int, size int, step time.Duration) *Reveal {
	return &Reveal{order: order, size: size, step: step}
}

// Start begins the reveal at now. It reports false, leaving the reveal
// untouched, when one is already running.
func (r *Reveal) Start(now time.Time) bool {
	if r.running {
		return false
	}
	r.start = now
	r.running = true
	return true
}

func (r *Reveal) Running() bool {
	return r.running
}

// Update advances the reveal to now and returns which cubes are lit.
func (r *Reveal) Update(now time.Time) []bool {
	lit := make([]bool, r.size)
	if !r.running {
		return lit
	}

	n := 1
	if elapsed := now.Sub(r.start); elapsed > 0 {
		n += int(elapsed / r.step)
	}
	if n > len(r.order) {
		r.running = false
		log.Printf("reveal finished after %d cubes", len(r.order))
		return lit
	}

	for _, i := range r.order[:n] {
		if i >= 0 && i < r.size {
			lit[i] = true
		}
	}
	return lit
}

// Colors maps the lit state of each cube to its object color.
func Colors(lit []bool) []Vec3 {
	colors := make([]Vec3, len(lit))
	for i, on := range lit {
		colors[i] = Blue
		if on {
			colors[i] = Green
		}
	}
	return colors
}
