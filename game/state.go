package game

// Phase is the state machine's state
type Phase uint8

const (
	PhasePresenting Phase = iota
	PhaseAwaitingInput
)

func (p Phase) String() string {
	switch p {
	case PhasePresenting:
		return "Presenting"
	case PhaseAwaitingInput:
		return "AwaitingInput"
	default:
		return "Unknown"
	}
}

// Outcome classifies the effect of a click
type Outcome uint8

const (
	OutcomeIgnored       Outcome = iota // Out of grid or not accepting input
	OutcomeProgress                     // Matched, round continues
	OutcomeRoundComplete                // Matched the last entry
	OutcomeMistake                      // In-grid cell that does not match
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeProgress:
		return "Progress"
	case OutcomeRoundComplete:
		return "RoundComplete"
	case OutcomeMistake:
		return "Mistake"
	default:
		return "Unknown"
	}
}

// State is the complete game state record
// Transitions return a new value; the sequence backing array is never written after generation
type State struct {
	Score    int
	Progress int
	Phase    Phase
	sequence []Cell
}

// NewState returns the initial state: presenting a fresh one-cell sequence with score 0
func NewState(rng Random) State {
	return State{
		Phase:    PhasePresenting,
		sequence: GenerateSequence(rng, 1),
	}
}

// RestoreState builds a presenting state around a known sequence, used for replays and tests
// The sequence is copied; callers keep ownership of their slice
func RestoreState(score int, sequence []Cell) State {
	if score < 0 {
		score = 0
	}
	return State{
		Score:    score,
		Phase:    PhasePresenting,
		sequence: append([]Cell(nil), sequence...),
	}
}

// Sequence returns a copy of the target sequence
func (s State) Sequence() []Cell {
	return append([]Cell(nil), s.sequence...)
}

// Len returns the target sequence length
func (s State) Len() int {
	return len(s.sequence)
}

// Expected returns the next cell the player must click
func (s State) Expected() (Cell, bool) {
	if s.Progress < 0 || s.Progress >= len(s.sequence) {
		return Cell{}, false
	}
	return s.sequence[s.Progress], true
}

// BeginInput moves a presenting state to awaiting input once playback has finished
func (s State) BeginInput() State {
	if s.Phase != PhasePresenting {
		return s
	}
	s.Phase = PhaseAwaitingInput
	s.Progress = 0
	return s
}

// Click validates an already mapped cell against the expected sequence entry
func (s State) Click(rng Random, c Cell) (State, Outcome) {
	if s.Phase != PhaseAwaitingInput || !c.InGrid() {
		return s, OutcomeIgnored
	}
	expected, ok := s.Expected()
	if !ok {
		return s, OutcomeIgnored
	}

	if c != expected {
		return State{
			Phase:    PhasePresenting,
			sequence: GenerateSequence(rng, 1),
		}, OutcomeMistake
	}

	s.Progress++
	if s.Progress < len(s.sequence) {
		return s, OutcomeProgress
	}

	score := s.Score + 1
	return State{
		Score:    score,
		Phase:    PhasePresenting,
		sequence: GenerateSequence(rng, score+1),
	}, OutcomeRoundComplete
}
