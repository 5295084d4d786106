package game

import (
	"testing"
)

func TestGenerateSequenceLengthAndRange(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		rng := NewRandom(seed)
		for length := 0; length <= 32; length++ {
			seq := GenerateSequence(rng, length)
			if len(seq) != length {
				t.Fatalf("seed %d: expected length %d, got %d", seed, length, len(seq))
			}
			for i, c := range seq {
				if !c.InGrid() {
					t.Fatalf("seed %d: cell %d out of grid: %v", seed, i, c)
				}
			}
		}
	}
}

func TestGenerateSequenceNegativeLength(t *testing.T) {
	seq := GenerateSequence(NewRandom(1), -3)
	if len(seq) != 0 {
		t.Errorf("Expected empty sequence for negative length, got %d cells", len(seq))
	}
}

func TestGenerateSequenceCoversGrid(t *testing.T) {
	// Uniform draws over enough samples should reach every cell
	seen := make(map[Cell]bool)
	seq := GenerateSequence(NewRandom(7), 2000)
	for _, c := range seq {
		seen[c] = true
	}
	if len(seen) != Rows*Cols {
		t.Errorf("Expected all %d cells to appear, saw %d", Rows*Cols, len(seen))
	}
}

func TestGenerateSequenceDeterministicForSeed(t *testing.T) {
	a := GenerateSequence(NewRandom(42), 12)
	b := GenerateSequence(NewRandom(42), 12)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Sequences diverge at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestNewStateInitial(t *testing.T) {
	s := NewState(NewRandom(1))
	if s.Phase != PhasePresenting {
		t.Errorf("Expected initial phase Presenting, got %v", s.Phase)
	}
	if s.Score != 0 {
		t.Errorf("Expected initial score 0, got %d", s.Score)
	}
	if s.Len() != 1 {
		t.Errorf("Expected initial sequence length 1, got %d", s.Len())
	}
	if s.Progress != 0 {
		t.Errorf("Expected initial progress 0, got %d", s.Progress)
	}
}

func TestRestoreStateCopiesSequence(t *testing.T) {
	seq := []Cell{{1, 1}, {2, 2}}
	s := RestoreState(1, seq)
	seq[0] = Cell{3, 3}

	got := s.Sequence()
	if got[0] != (Cell{1, 1}) {
		t.Errorf("State sequence changed through caller slice: %v", got)
	}

	got[1] = Cell{0, 0}
	if again := s.Sequence(); again[1] != (Cell{2, 2}) {
		t.Errorf("State sequence changed through returned copy: %v", again)
	}
}

func TestBeginInputResetsProgress(t *testing.T) {
	s := RestoreState(0, []Cell{{0, 0}})
	s.Progress = 1
	s = s.BeginInput()
	if s.Phase != PhaseAwaitingInput {
		t.Errorf("Expected AwaitingInput, got %v", s.Phase)
	}
	if s.Progress != 0 {
		t.Errorf("Expected progress reset to 0, got %d", s.Progress)
	}

	// Already awaiting input: no change
	s.Progress = 0
	if again := s.BeginInput(); again.Phase != PhaseAwaitingInput || again.Progress != 0 {
		t.Errorf("BeginInput on AwaitingInput should be a no-op, got %+v", again)
	}
}

func TestScenarioSingleCellRoundComplete(t *testing.T) {
	rng := NewRandom(3)
	s := RestoreState(0, []Cell{{2, 1}}).BeginInput()

	next, outcome := s.Click(rng, Cell{2, 1})
	if outcome != OutcomeRoundComplete {
		t.Fatalf("Expected RoundComplete, got %v", outcome)
	}
	if next.Score != 1 {
		t.Errorf("Expected score 1, got %d", next.Score)
	}
	if next.Len() != 2 {
		t.Errorf("Expected new sequence length 2, got %d", next.Len())
	}
	if next.Phase != PhasePresenting {
		t.Errorf("Expected phase Presenting, got %v", next.Phase)
	}
	if next.Progress != 0 {
		t.Errorf("Expected progress 0, got %d", next.Progress)
	}
}

func TestScenarioMistakeAfterPartialProgress(t *testing.T) {
	rng := NewRandom(5)
	seq := []Cell{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	s := RestoreState(3, seq).BeginInput()

	var outcome Outcome
	s, outcome = s.Click(rng, Cell{0, 0})
	if outcome != OutcomeProgress || s.Progress != 1 {
		t.Fatalf("First click: expected Progress at 1, got %v at %d", outcome, s.Progress)
	}
	s, outcome = s.Click(rng, Cell{1, 1})
	if outcome != OutcomeProgress || s.Progress != 2 {
		t.Fatalf("Second click: expected Progress at 2, got %v at %d", outcome, s.Progress)
	}

	s, outcome = s.Click(rng, Cell{0, 3})
	if outcome != OutcomeMistake {
		t.Fatalf("Expected Mistake, got %v", outcome)
	}
	if s.Score != 0 {
		t.Errorf("Expected score reset to 0, got %d", s.Score)
	}
	if s.Len() != 1 {
		t.Errorf("Expected new sequence length 1, got %d", s.Len())
	}
	if s.Phase != PhasePresenting {
		t.Errorf("Expected phase Presenting, got %v", s.Phase)
	}
}

func TestMistakeAtAnyPosition(t *testing.T) {
	seq := []Cell{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 1}}
	wrong := Cell{3, 3}

	for pos := 0; pos < len(seq); pos++ {
		rng := NewRandom(uint64(pos))
		s := RestoreState(len(seq)-1, seq).BeginInput()
		for i := 0; i < pos; i++ {
			s, _ = s.Click(rng, seq[i])
		}
		next, outcome := s.Click(rng, wrong)
		if outcome != OutcomeMistake {
			t.Errorf("pos %d: expected Mistake, got %v", pos, outcome)
			continue
		}
		if next.Score != 0 || next.Len() != 1 || next.Progress != 0 {
			t.Errorf("pos %d: expected reset state, got score=%d len=%d progress=%d",
				pos, next.Score, next.Len(), next.Progress)
		}
	}
}

func TestClickOutOfGridIgnored(t *testing.T) {
	rng := NewRandom(9)
	s := RestoreState(1, []Cell{{1, 1}, {2, 2}}).BeginInput()
	s, _ = s.Click(rng, Cell{1, 1})

	cases := []Cell{{-1, 0}, {0, -1}, {Rows, 0}, {0, Cols}, {Rows, Cols}, {-5, 17}}
	for _, c := range cases {
		next, outcome := s.Click(rng, c)
		if outcome != OutcomeIgnored {
			t.Errorf("Cell %v: expected Ignored, got %v", c, outcome)
		}
		if next.Score != s.Score || next.Progress != s.Progress || next.Phase != s.Phase {
			t.Errorf("Cell %v: state changed: %+v -> %+v", c, s, next)
		}
		if got, want := next.Sequence(), s.Sequence(); len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
			t.Errorf("Cell %v: sequence changed: %v -> %v", c, want, got)
		}
	}
}

func TestClickIgnoredWhilePresenting(t *testing.T) {
	s := RestoreState(0, []Cell{{2, 1}})
	next, outcome := s.Click(NewRandom(1), Cell{2, 1})
	if outcome != OutcomeIgnored {
		t.Errorf("Expected Ignored while presenting, got %v", outcome)
	}
	if next.Score != 0 || next.Phase != PhasePresenting {
		t.Errorf("State changed while presenting: %+v", next)
	}
}

func TestCorrectPlayGrowsSequence(t *testing.T) {
	rng := NewRandom(11)
	s := NewState(rng)

	for round := 0; round < 12; round++ {
		s = s.BeginInput()
		if s.Len() != s.Score+1 {
			t.Fatalf("Round %d: expected length %d, got %d", round, s.Score+1, s.Len())
		}

		seq := s.Sequence()
		score := s.Score
		var outcome Outcome
		for i, c := range seq {
			s, outcome = s.Click(rng, c)
			if i < len(seq)-1 && outcome != OutcomeProgress {
				t.Fatalf("Round %d click %d: expected Progress, got %v", round, i, outcome)
			}
		}
		if outcome != OutcomeRoundComplete {
			t.Fatalf("Round %d: expected RoundComplete, got %v", round, outcome)
		}
		if s.Score != score+1 {
			t.Fatalf("Round %d: expected score %d, got %d", round, score+1, s.Score)
		}
		if s.Len() != s.Score+1 {
			t.Fatalf("Round %d: expected new length %d, got %d", round, s.Score+1, s.Len())
		}
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	rng := NewRandom(13)
	player := NewRandom(14)
	s := NewState(rng)

	for i := 0; i < 5000; i++ {
		if s.Phase == PhasePresenting {
			if s.Len() != s.Score+1 {
				t.Fatalf("Step %d: round begins with length %d, score %d", i, s.Len(), s.Score)
			}
			s = s.BeginInput()
			continue
		}

		// Mostly correct clicks, sometimes wrong, sometimes off-grid
		var c Cell
		switch roll := player.IntN(10); {
		case roll < 7:
			c, _ = s.Expected()
		case roll < 9:
			c = Cell{player.IntN(Rows), player.IntN(Cols)}
		default:
			c = Cell{Rows + player.IntN(3), -1 - player.IntN(3)}
		}
		s, _ = s.Click(rng, c)

		if s.Progress < 0 || s.Progress > s.Len() {
			t.Fatalf("Step %d: progress %d outside [0,%d]", i, s.Progress, s.Len())
		}
		if s.Score < 0 {
			t.Fatalf("Step %d: negative score %d", i, s.Score)
		}
		for _, cell := range s.Sequence() {
			if !cell.InGrid() {
				t.Fatalf("Step %d: sequence cell out of grid: %v", i, cell)
			}
		}
	}
}

func TestPhaseAndOutcomeStrings(t *testing.T) {
	if PhasePresenting.String() != "Presenting" || PhaseAwaitingInput.String() != "AwaitingInput" {
		t.Error("Unexpected phase names")
	}
	if OutcomeMistake.String() != "Mistake" || OutcomeIgnored.String() != "Ignored" {
		t.Error("Unexpected outcome names")
	}
}
