package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(255, 255, 255) // White surface
	RgbGridLine   = tcell.NewRGBColor(0, 0, 0)       // Black border and lines
	RgbFlash      = tcell.NewRGBColor(255, 0, 0)     // Red sequence flash
	RgbInput      = tcell.NewRGBColor(0, 0, 139)     // Dark blue player click
	RgbScoreText  = tcell.NewRGBColor(0, 0, 0)       // Black score readout
)

var (
	styleBackground = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbGridLine)
	styleLine       = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbGridLine)
	styleBorder     = styleLine.Bold(true)
	styleScore      = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbScoreText).Bold(true)
	styleFlash      = tcell.StyleDefault.Background(RgbFlash).Foreground(RgbFlash)
	styleInput      = tcell.StyleDefault.Background(RgbInput).Foreground(RgbInput)
)
