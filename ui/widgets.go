package ui

import "github.com/gdamore/tcell/v2"

// Sparkline glyphs, lowest to highest.
var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

// drawText writes a string at (x, y), clipping at the screen edge.
func (a *App) drawText(x, y int, style tcell.Style, text string) {
	width, height := a.screen.Size()
	if y < 0 || y >= height {
		return
	}
	for _, r := range text {
		if x >= width {
			return
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawBar fills width cells proportionally to frac in [0,1].
func (a *App) drawBar(x, y, width int, frac float64, style tcell.Style) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	for i := 0; i < width; i++ {
		ch := ' '
		if i < filled {
			ch = '█'
		}
		a.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// drawSparkline renders the tail of values scaled against max. Values
// beyond the width are dropped from the left, so the line scrolls.
func (a *App) drawSparkline(x, y, width int, values []float64, max float64, style tcell.Style) {
	if max <= 0 || width < 1 {
		return
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	for i, v := range values {
		frac := v / max
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		glyph := sparkGlyphs[int(frac*float64(len(sparkGlyphs)-1)+0.5)]
		a.screen.SetContent(x+i, y, glyph, nil, style)
	}
}

// drawRule draws a horizontal separator across the screen.
func (a *App) drawRule(y int, style tcell.Style) {
	width, _ := a.screen.Size()
	for x := 0; x < width; x++ {
		a.screen.SetContent(x, y, '─', nil, style)
	}
}
