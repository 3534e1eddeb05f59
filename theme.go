package main

import "github.com/gdamore/tcell/v2"

// Border rune sets for the three button states. The hover and pressed sets
// mix single and double strokes on opposite corners, which reads as a subtle
// tilt without needing color support.
var (
	edgesIdle    = [8]string{"┌", "─", "┐", "│", "│", "└", "─", "┘"}
	edgesHover   = [8]string{"┌", "─", "╖", "│", "║", "╘", "═", "╝"}
	edgesPressed = [8]string{"╔", "═", "╕", "║", "│", "╙", "─", "┘"}
)

// buildStyles maps the game's named styles onto concrete tcell styles. Kept
// in one place so the whole palette is visible at a glance.
func buildStyles() map[StyleID]tcell.Style {
	base := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	return map[StyleID]tcell.Style{
		StyleDefault: base,
		StyleRedCard: base.Foreground(tcell.ColorRed),
		StyleTitle:   base.Foreground(tcell.ColorYellow).Bold(true),
		StyleSummary: base.Foreground(tcell.ColorLightCyan),
	}
}
