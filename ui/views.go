package ui

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/evolvewords/drift"
	"github.com/pthm-cable/evolvewords/evolve"
	"github.com/pthm-cable/evolvewords/telemetry"
)

var (
	styleDefault = tcell.StyleDefault
	styleHeader  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBest    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleMatch   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleMiss    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleSpark   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
)

// drawTarget renders a target-mode snapshot: header, best banner with a
// fitness bar, the population grid, and the best-fitness sparkline.
func (a *App) drawTarget(snap evolve.Snapshot, collector *telemetry.Collector) {
	a.screen.Clear()
	width, height := a.screen.Size()

	status := snap.Status.String()
	if a.paused {
		status = "paused"
	}
	a.drawText(0, 0, styleHeader, fmt.Sprintf(
		"evolve words | generation %d | best %d/%d (%.1f%%) since gen %d | %s",
		snap.Generation, snap.Best.Fitness, snap.MaxFitness,
		snap.BestNormalized*100, snap.BestGeneration, status))
	a.drawRule(1, styleDim)

	// Best banner: matched positions in green, the rest in red.
	a.drawText(0, 2, styleDefault, "best: ")
	a.drawCandidate(6, 2, snap.Best.Text, snap)
	barX := 8 + len([]rune(snap.Best.Text))
	barWidth := width - barX - 1
	if barWidth > 10 {
		a.drawBar(barX, 2, barWidth, snap.BestNormalized, styleBest)
	}

	// Population grid, one candidate per row.
	row := 4
	sparkRow := height - 3
	for i, c := range snap.Candidates {
		if row >= sparkRow-1 {
			a.drawText(0, row, styleDim, fmt.Sprintf("… %d more", len(snap.Candidates)-i))
			row++
			break
		}
		a.drawText(0, row, styleDim, fmt.Sprintf("%3d %3d ", i, c.Fitness))
		a.drawCandidate(8, row, c.Text, snap)
		row++
	}

	a.drawRule(sparkRow-1, styleDim)
	a.drawSparkline(0, sparkRow, width, collector.BestSeries(), float64(snap.MaxFitness), styleSpark)
	a.drawText(0, height-1, styleDim, helpText)

	a.screen.Show()
}

// drawCandidate colors each rune by whether it matches the target there.
func (a *App) drawCandidate(x, y int, text string, snap evolve.Snapshot) {
	target := []rune(snap.Target)
	for i, r := range []rune(text) {
		style := styleMiss
		if i < len(target) && target[i] == r {
			style = styleMatch
		}
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

// drawDrift renders a drift-mode snapshot: header, the unique words found
// so far, length counts, and the survival-rate sparkline.
func (a *App) drawDrift(snap drift.Snapshot, collector *telemetry.DriftCollector) {
	a.screen.Clear()
	width, height := a.screen.Size()

	status := snap.Status.String()
	if a.paused {
		status = "paused"
	}
	a.drawText(0, 0, styleHeader, fmt.Sprintf(
		"evolve words (drift) | progenitor %q | generation %d | population %d | culled %d | %s",
		snap.Progenitor, snap.Generation, snap.PopulationSize, snap.LastCull, status))
	a.drawRule(1, styleDim)

	// Unique words, flowed across the panel.
	row, col := 2, 0
	countsRow := height - 5
	for _, w := range snap.UniqueWords {
		if col+len(w)+1 > width {
			col = 0
			row++
		}
		if row >= countsRow-1 {
			break
		}
		a.drawText(col, row, styleDefault, w)
		col += len(w) + 1
	}

	a.drawRule(countsRow-1, styleDim)
	a.drawText(0, countsRow, styleDim, lengthCountsLine(snap.LengthCounts))

	a.drawSparkline(0, height-3, width, collector.SurvivalSeries(), 100, styleSpark)
	a.drawText(0, height-2, styleDim, "survival rate")
	a.drawText(0, height-1, styleDim, helpText)

	a.screen.Show()
}

// lengthCountsLine formats the word-length histogram as "len:count" pairs.
func lengthCountsLine(counts map[int]int) string {
	lengths := make([]int, 0, len(counts))
	for l := range counts {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	line := "sizes:"
	for _, l := range lengths {
		line += fmt.Sprintf(" %d:%d", l, counts[l])
	}
	return line
}
