package constants

import "time"

// Audio Defaults
const (
	DefaultSampleRate   = 44100
	DefaultMasterVolume = 0.6

	// SpeakerBuffer is the speaker buffer length passed to speaker.Init
	SpeakerBuffer = 100 * time.Millisecond
)

// Flash Tone Timing
const (
	FlashToneDuration = 450 * time.Millisecond
	FlashToneAttack   = 10 * time.Millisecond
	FlashToneRelease  = 200 * time.Millisecond
)

// Click Sound Timing
const (
	ClickSoundDuration = 40 * time.Millisecond
	ClickSoundAttack   = 2 * time.Millisecond
	ClickSoundRelease  = 25 * time.Millisecond
)

// Mistake Buzz Timing
const (
	MistakeSoundDuration = 250 * time.Millisecond
	MistakeSoundAttack   = 5 * time.Millisecond
	MistakeSoundRelease  = 80 * time.Millisecond
)

// Round Complete Chime Timing
const (
	ChimeNote1Duration = 90 * time.Millisecond
	ChimeNote2Duration = 300 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 40 * time.Millisecond
	ChimeNote2Release  = 220 * time.Millisecond
)
