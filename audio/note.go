package audio

import (
	"math"

	"github.com/lixenwraith/limbo/game"
)

// pentatonic holds major pentatonic semitone steps within an octave
var pentatonic = [...]int{0, 2, 4, 7, 9}

// baseNote is C4 in MIDI numbering
const baseNote = 60

// NoteFreq returns frequency in Hz for a MIDI note number, A4 (69) = 440Hz
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= 128 {
		return 0
	}
	return 440.0 * math.Pow(2, float64(midi-69)/12.0)
}

// CellNote maps a grid cell to a MIDI note, walking the pentatonic scale upward from C4
// in row-major order so every cell has its own pitch
func CellNote(c game.Cell) int {
	i := c.Index()
	return baseNote + 12*(i/len(pentatonic)) + pentatonic[i%len(pentatonic)]
}

// CellFreq returns the flash tone frequency of a cell
func CellFreq(c game.Cell) float64 {
	return NoteFreq(CellNote(c))
}
