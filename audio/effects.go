package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/limbo/constants"
	"github.com/lixenwraith/limbo/game"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with the given attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateFlashTone generates the cell's pitch for sequence playback
func CreateFlashTone(cfg *AudioConfig, c game.Cell) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq := CellFreq(c)

	fund := NewOscillator(freq, constants.FlashToneDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.FlashToneDuration, constants.FlashToneAttack, constants.FlashToneRelease, rate)

	// Soft octave overtone
	over := NewOscillator(freq*2, constants.FlashToneDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.FlashToneDuration, constants.FlashToneAttack, constants.FlashToneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.8),
		newVolume(overShaped, 0.2),
	)
	return newVolume(mixed, cfg.MasterVolume)
}

// CreateClickSound generates a short tick for a correct click, pitched to the cell
func CreateClickSound(cfg *AudioConfig, c game.Cell) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(CellFreq(c)*2, constants.ClickSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.ClickSoundDuration, constants.ClickSoundAttack, constants.ClickSoundRelease, rate)
	return newVolume(shaped, 0.3*cfg.MasterVolume)
}

// CreateMistakeSound generates a harsh low buzz
func CreateMistakeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(110.0, constants.MistakeSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.MistakeSoundDuration, constants.MistakeSoundAttack, constants.MistakeSoundRelease, rate)
	return newVolume(shaped, 0.5*cfg.MasterVolume)
}

// CreateChimeSound generates a rising two-note chime for a completed round
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// G5 then C6
	n1 := NewOscillator(NoteFreq(79), constants.ChimeNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.ChimeNote1Duration, constants.ChimeAttack, constants.ChimeNote1Release, rate)

	n2 := NewOscillator(NoteFreq(84), constants.ChimeNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.ChimeNote2Duration, constants.ChimeAttack, constants.ChimeNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.4*cfg.MasterVolume)
}

// CueStreamer returns the streamer for a cue, or nil for CueNone
func CueStreamer(cue game.Cue, cfg *AudioConfig) beep.Streamer {
	switch cue.Kind {
	case game.CueFlash:
		return CreateFlashTone(cfg, cue.Cell)
	case game.CueClick:
		return CreateClickSound(cfg, cue.Cell)
	case game.CueMistake:
		return CreateMistakeSound(cfg)
	case game.CueRoundComplete:
		return CreateChimeSound(cfg)
	default:
		return nil
	}
}
