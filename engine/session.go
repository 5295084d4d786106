package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/limbo/constants"
	"github.com/lixenwraith/limbo/game"
)

// CueSink receives sound cues as animation steps are entered
type CueSink interface {
	Play(cue game.Cue)
}

type nopCueSink struct{}

func (nopCueSink) Play(game.Cue) {}

// SessionOptions configures a Session
type SessionOptions struct {
	// Random drives sequence generation and shake jitter
	Random game.Random

	// Layout maps pointer coordinates to cells
	Layout game.Layout

	// Jitter is the shake range in layout units
	Jitter int

	// Cues is optional; nil plays nothing
	Cues CueSink

	Logger zerolog.Logger
}

// Session drives one game: it owns the state record and the active animation,
// and is only touched from the game loop goroutine
type Session struct {
	state  game.State
	layout game.Layout
	rng    game.Random
	jitter int
	cues   CueSink
	log    zerolog.Logger

	// Playback, shake and post-click highlight while presenting
	timeline *game.Timeline

	// Transient highlight of a correct click while awaiting input
	highlight     game.Cell
	highlightLeft time.Duration

	done bool
}

// NewSession starts a game in the presenting phase with a one-cell sequence
func NewSession(opts SessionOptions) *Session {
	cues := opts.Cues
	if cues == nil {
		cues = nopCueSink{}
	}
	s := &Session{
		state:  game.NewState(opts.Random),
		layout: opts.Layout,
		rng:    opts.Random,
		jitter: opts.Jitter,
		cues:   cues,
		log:    opts.Logger,
	}
	s.timeline = game.NewTimeline(game.PlaybackSteps(s.state.Sequence())...)
	s.log.Debug().Int("length", s.state.Len()).Msg("game started")
	return s
}

// State returns the current state record
func (s *Session) State() game.State {
	return s.state
}

// Layout returns the layout used for click mapping
func (s *Session) Layout() game.Layout {
	return s.layout
}

// SetLayout replaces the click mapping after a resize
func (s *Session) SetLayout(l game.Layout) {
	s.layout = l
}

// Done reports whether the session has been quit
func (s *Session) Done() bool {
	return s.done
}

// Quit ends the session; in-progress state is abandoned and later calls have no effect
func (s *Session) Quit() {
	if s.done {
		return
	}
	s.done = true
	s.timeline = nil
	s.log.Info().
		Int("score", s.state.Score).
		Str("phase", s.state.Phase.String()).
		Msg("quit")
}

// Update advances animations by dt; when playback completes the player may start clicking
func (s *Session) Update(dt time.Duration) {
	if s.done {
		return
	}

	switch s.state.Phase {
	case game.PhasePresenting:
		if s.timeline == nil {
			s.timeline = game.NewTimeline(game.PlaybackSteps(s.state.Sequence())...)
		}
		if s.timeline.Advance(dt, s.enter) {
			s.timeline = nil
			s.state = s.state.BeginInput()
			s.log.Debug().
				Int("score", s.state.Score).
				Int("length", s.state.Len()).
				Msg("awaiting input")
		}

	case game.PhaseAwaitingInput:
		if s.highlightLeft > 0 {
			s.highlightLeft -= dt
			if s.highlightLeft < 0 {
				s.highlightLeft = 0
			}
		}
	}
}

// Click handles a pointer press at surface coordinates
func (s *Session) Click(x, y int) game.Outcome {
	if s.done || s.state.Phase != game.PhaseAwaitingInput {
		return game.OutcomeIgnored
	}
	cell, ok := s.layout.CellAt(x, y)
	if !ok {
		return game.OutcomeIgnored
	}

	prev := s.state
	next, outcome := s.state.Click(s.rng, cell)
	s.state = next

	switch outcome {
	case game.OutcomeProgress:
		s.highlight = cell
		s.highlightLeft = constants.InputHighlightDuration
		s.cues.Play(game.Cue{Kind: game.CueClick, Cell: cell})

	case game.OutcomeRoundComplete:
		s.highlightLeft = 0
		steps := []game.Step{game.InputHighlightStep(cell, game.Cue{Kind: game.CueRoundComplete})}
		steps = append(steps, game.PlaybackSteps(next.Sequence())...)
		s.timeline = game.NewTimeline(steps...)
		s.log.Debug().
			Int("score", next.Score).
			Int("length", next.Len()).
			Msg("round complete")

	case game.OutcomeMistake:
		s.highlightLeft = 0
		steps := []game.Step{game.InputHighlightStep(cell, game.Cue{Kind: game.CueMistake})}
		steps = append(steps, game.ShakeSteps(s.rng, constants.ShakeIterations, s.jitter, constants.ShakeHold)...)
		steps = append(steps, game.PlaybackSteps(next.Sequence())...)
		s.timeline = game.NewTimeline(steps...)
		expected, _ := prev.Expected()
		s.log.Debug().
			Int("lost_score", prev.Score).
			Int("progress", prev.Progress).
			Stringer("clicked", cell).
			Stringer("expected", expected).
			Msg("mistake")
	}

	return outcome
}

// Frame returns the render snapshot for the current instant
func (s *Session) Frame() game.Frame {
	f := game.Frame{
		Score: s.state.Score,
		Phase: s.state.Phase,
	}

	if step, ok := s.timeline.Current(); ok {
		f.Highlight = step.Highlight
		f.Cell = step.Cell
		f.OffsetX = step.OffsetX
		f.OffsetY = step.OffsetY
		return f
	}

	if s.state.Phase == game.PhaseAwaitingInput && s.highlightLeft > 0 {
		f.Highlight = game.HighlightInput
		f.Cell = s.highlight
	}
	return f
}

func (s *Session) enter(step game.Step) {
	if step.Cue.Kind != game.CueNone {
		s.cues.Play(step.Cue)
	}
}
