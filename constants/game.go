package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the elapsed time fed to animations after a stalled frame
	MaxFrameDelta = 250 * time.Millisecond

	// EventQueueSize is the buffer size of the input event channel
	EventQueueSize = 256
)

// Playback Timing
const (
	// LeadInDuration is the baseline pause before a sequence starts flashing
	LeadInDuration = 500 * time.Millisecond

	// FlashOnDuration is how long each sequence cell stays highlighted
	FlashOnDuration = 500 * time.Millisecond

	// FlashOffDuration is the gap between two flashed cells
	FlashOffDuration = 300 * time.Millisecond

	// InputHighlightDuration is how long a clicked cell stays highlighted
	InputHighlightDuration = 500 * time.Millisecond
)

// Mistake Shake
const (
	ShakeIterations = 10
	ShakeHold       = 20 * time.Millisecond

	// ShakeJitterPixels is the jitter range on the 800x600 pixel surface
	ShakeJitterPixels = 5

	// ShakeJitterCells is the jitter range in terminal cells
	ShakeJitterCells = 2
)

// Pixel Surface Geometry
const (
	SurfaceWidth  = 800
	SurfaceHeight = 600
	SquareSize    = 500
)
