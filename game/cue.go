package game

// CueKind identifies a sound cue
type CueKind uint8

const (
	CueNone CueKind = iota
	CueFlash
	CueClick
	CueRoundComplete
	CueMistake
)

func (k CueKind) String() string {
	switch k {
	case CueFlash:
		return "Flash"
	case CueClick:
		return "Click"
	case CueRoundComplete:
		return "RoundComplete"
	case CueMistake:
		return "Mistake"
	default:
		return "None"
	}
}

// Cue is emitted when a timeline step with sound is entered
// Cell is meaningful for CueFlash and CueClick
type Cue struct {
	Kind CueKind
	Cell Cell
}
