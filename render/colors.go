package render

import "github.com/gdamore/tcell/v2"

// Style is the cell style type used throughout rendering
type Style = tcell.Style

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbCourtLine  = tcell.NewRGBColor(90, 95, 130)   // Court boundary
	RgbCourtFloor = tcell.NewRGBColor(40, 42, 58)    // Court grid dots
	RgbBenign     = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbHarmful    = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbCollided   = tcell.NewRGBColor(100, 100, 100) // Spent obstacle
	RgbDroid      = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbContact    = tcell.NewRGBColor(120, 80, 20)   // Dark orange contact ring
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbEnergyBg   = tcell.NewRGBColor(255, 255, 255) // Bright white
	RgbEnergyLow  = tcell.NewRGBColor(200, 50, 50)   // Red for low energy
	RgbScoreBg    = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbPausedBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbEndedBg    = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbHelpText   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// Styles derived from the palette
var (
	StyleBackground = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHelpText)
	StyleCourtLine  = StyleBackground.Foreground(RgbCourtLine)
	StyleCourtFloor = StyleBackground.Foreground(RgbCourtFloor)
	StyleBenign     = StyleBackground.Foreground(RgbBenign).Bold(true)
	StyleHarmful    = StyleBackground.Foreground(RgbHarmful).Bold(true)
	StyleCollided   = StyleBackground.Foreground(RgbCollided).Dim(true)
	StyleDroid      = StyleBackground.Foreground(RgbDroid).Bold(true)
	StyleContact    = StyleBackground.Foreground(RgbContact)
	StyleHelp       = StyleBackground.Foreground(RgbHelpText)
	StyleEnergy     = tcell.StyleDefault.Background(RgbEnergyBg).Foreground(RgbStatusText)
	StyleEnergyLow  = tcell.StyleDefault.Background(RgbEnergyLow).Foreground(RgbEnergyBg)
	StyleScore      = tcell.StyleDefault.Background(RgbScoreBg).Foreground(RgbStatusText)
	StylePaused     = tcell.StyleDefault.Background(RgbPausedBg).Foreground(RgbStatusText).Bold(true)
	StyleEnded      = tcell.StyleDefault.Background(RgbEndedBg).Foreground(RgbEnergyBg).Bold(true)
)
