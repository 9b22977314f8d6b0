package t2048

import "github.com/vovakirdan/tui-2048/internal/engine"

// Animation lengths in ticks.
const (
	slideTicks = 8 // ~133ms at 60fps
	popTicks   = 6 // ~100ms at 60fps
)

type animPhase int

const (
	phaseNone animPhase = iota
	phaseSlide
	phasePop
)

// animator plays back the last move: every tile glides from its old cell to
// its new one, then merged and spawned tiles pop.
type animator struct {
	phase   animPhase
	ticks   int
	slides  []engine.Slide
	merged  []engine.Coord
	spawned *engine.Spawned
}

func (a *animator) active() bool {
	return a.phase != phaseNone
}

func (a *animator) start(report engine.MoveReport) {
	*a = animator{}
	if !report.Changed() {
		return
	}
	a.slides = report.Slides
	a.spawned = report.Spawned
	for _, sl := range report.Slides {
		if sl.Merged {
			a.merged = append(a.merged, sl.To)
		}
	}
	a.phase = phaseSlide
}

func (a *animator) advance() {
	a.ticks++
	switch a.phase {
	case phaseSlide:
		if a.ticks >= slideTicks {
			a.phase = phasePop
			a.ticks = 0
		}
	case phasePop:
		if a.ticks >= popTicks {
			*a = animator{}
		}
	}
}

// progress returns how far the current phase is, in [0, 1].
func (a *animator) progress() float64 {
	switch a.phase {
	case phaseSlide:
		return min(1, float64(a.ticks)/slideTicks)
	case phasePop:
		return min(1, float64(a.ticks)/popTicks)
	}
	return 1
}

// popping reports whether the tile at c is highlighted in the pop phase.
func (a *animator) popping(c engine.Coord) bool {
	if a.phase != phasePop {
		return false
	}
	if a.spawned != nil && a.spawned.Pos == c {
		return true
	}
	for _, m := range a.merged {
		if m == c {
			return true
		}
	}
	return false
}

// easeOutQuad decelerates towards the end of the slide.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
