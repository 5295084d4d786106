package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/limbo/constants"
	"github.com/lixenwraith/limbo/game"
)

// SoundManager plays game cues through the speaker
// Without a successful Initialize every call is a no-op, so the game runs muted
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	log         zerolog.Logger
	initialized bool
	played      uint64
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig, logger zerolog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg: cfg,
		log: logger,
	}
}

// Initialize opens the audio device; disabled config leaves the manager muted
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("init speaker at %d Hz: %w", sm.cfg.SampleRate, err)
	}

	sm.initialized = true
	sm.log.Debug().Int("sample_rate", sm.cfg.SampleRate).Msg("audio initialized")
	return nil
}

// Play starts the cue's sound without blocking
func (sm *SoundManager) Play(cue game.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := CueStreamer(cue, sm.cfg)
	if streamer == nil {
		return
	}
	speaker.Play(streamer)
	sm.played++
}

// Played returns how many cues reached the speaker
func (sm *SoundManager) Played() uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// Close stops all sounds and releases the device
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
