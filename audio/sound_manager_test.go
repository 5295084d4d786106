package audio

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/limbo/game"
)

// TestSoundManagerGracefulDegradation verifies playback is a no-op without initialization
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil, zerolog.Nop())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(game.Cue{Kind: game.CueFlash, Cell: game.Cell{Row: 1, Col: 1}})
	sm.Play(game.Cue{Kind: game.CueMistake})
	sm.Close()

	if sm.Played() != 0 {
		t.Errorf("Expected nothing played, got %d", sm.Played())
	}
}

// TestSoundManagerDisabled verifies a disabled config never touches the device
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg, zerolog.Nop())

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Expected nil error for disabled audio, got %v", err)
	}
	sm.Play(game.Cue{Kind: game.CueRoundComplete})
	if sm.Played() != 0 {
		t.Errorf("Expected muted manager, got %d played", sm.Played())
	}
}

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	if !cfg.Enabled {
		t.Error("Expected audio enabled by default")
	}
	if cfg.MasterVolume <= 0 || cfg.MasterVolume > 1 {
		t.Errorf("Default volume out of range: %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected 44100 Hz, got %d", cfg.SampleRate)
	}
}
