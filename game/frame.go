package game

// HighlightKind selects how a highlighted cell is drawn
type HighlightKind uint8

const (
	HighlightNone  HighlightKind = iota
	HighlightFlash               // Sequence playback
	HighlightInput               // Player click
)

// Frame is everything a renderer needs to draw one frame
type Frame struct {
	Score     int
	Phase     Phase
	Highlight HighlightKind
	Cell      Cell

	// Jitter applied to the whole surface during mistake feedback
	OffsetX, OffsetY int
}
