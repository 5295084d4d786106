package game

import (
	"time"

	"github.com/lixenwraith/limbo/constants"
)

// Step is one timed segment of an animation
type Step struct {
	Duration  time.Duration
	Highlight HighlightKind
	Cell      Cell
	OffsetX   int
	OffsetY   int
	Cue       Cue
}

// Timeline plays steps in order, advanced by elapsed time once per frame tick
type Timeline struct {
	steps   []Step
	index   int
	elapsed time.Duration
	started bool
}

// NewTimeline creates a timeline over the given steps
func NewTimeline(steps ...Step) *Timeline {
	return &Timeline{steps: steps}
}

// Advance moves the timeline forward by dt, calling enter for every step that becomes current
// The first step is entered on the first call, even with dt == 0
// Returns true once every step has elapsed
func (t *Timeline) Advance(dt time.Duration, enter func(Step)) bool {
	if !t.started {
		t.started = true
		if len(t.steps) > 0 && enter != nil {
			enter(t.steps[0])
		}
	}
	if dt > 0 {
		t.elapsed += dt
	}

	for t.index < len(t.steps) && t.elapsed >= t.steps[t.index].Duration {
		t.elapsed -= t.steps[t.index].Duration
		t.index++
		if t.index < len(t.steps) && enter != nil {
			enter(t.steps[t.index])
		}
	}

	if t.index >= len(t.steps) {
		t.elapsed = 0
		return true
	}
	return false
}

// Current returns the active step
func (t *Timeline) Current() (Step, bool) {
	if t == nil || t.index >= len(t.steps) {
		return Step{}, false
	}
	return t.steps[t.index], true
}

// Done reports whether every step has elapsed
func (t *Timeline) Done() bool {
	return t == nil || t.index >= len(t.steps)
}

// Total returns the summed duration of all steps
func (t *Timeline) Total() time.Duration {
	var total time.Duration
	for _, s := range t.steps {
		total += s.Duration
	}
	return total
}

// Remaining returns the time left until the timeline completes
func (t *Timeline) Remaining() time.Duration {
	if t.Done() {
		return 0
	}
	remaining := t.steps[t.index].Duration - t.elapsed
	for _, s := range t.steps[t.index+1:] {
		remaining += s.Duration
	}
	return remaining
}

// PlaybackSteps builds the flash playback of a sequence: a baseline lead-in, then
// for each cell a highlighted hold followed by a baseline gap
func PlaybackSteps(seq []Cell) []Step {
	steps := make([]Step, 0, 1+2*len(seq))
	steps = append(steps, Step{Duration: constants.LeadInDuration})
	for _, c := range seq {
		steps = append(steps,
			Step{
				Duration:  constants.FlashOnDuration,
				Highlight: HighlightFlash,
				Cell:      c,
				Cue:       Cue{Kind: CueFlash, Cell: c},
			},
			Step{Duration: constants.FlashOffDuration},
		)
	}
	return steps
}

// ShakeSteps builds the mistake feedback: iterations of random jitter in [-jitter, jitter],
// each held for hold, followed by a zero-length restore to the canonical position
func ShakeSteps(rng Random, iterations, jitter int, hold time.Duration) []Step {
	if iterations < 0 {
		iterations = 0
	}
	if jitter < 0 {
		jitter = 0
	}
	steps := make([]Step, 0, iterations+1)
	for i := 0; i < iterations; i++ {
		steps = append(steps, Step{
			Duration: hold,
			OffsetX:  rng.IntN(2*jitter+1) - jitter,
			OffsetY:  rng.IntN(2*jitter+1) - jitter,
		})
	}
	steps = append(steps, Step{})
	return steps
}

// InputHighlightStep is the transient dark highlight of a clicked cell
func InputHighlightStep(c Cell, cue Cue) Step {
	return Step{
		Duration:  constants.InputHighlightDuration,
		Highlight: HighlightInput,
		Cell:      c,
		Cue:       cue,
	}
}
