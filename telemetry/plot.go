package telemetry

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteFitnessPlot renders best and mean fitness over generations to
// fitness.png in the output directory.
func (om *OutputManager) WriteFitnessPlot(best, mean []float64) error {
	if om == nil || len(best) == 0 {
		return nil
	}

	p := plot.New()
	p.Title.Text = "Fitness over generations"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Fitness"

	bestLine, err := plotter.NewLine(series(best))
	if err != nil {
		return fmt.Errorf("building best-fitness line: %w", err)
	}
	bestLine.Color = color.RGBA{G: 180, A: 255}

	meanLine, err := plotter.NewLine(series(mean))
	if err != nil {
		return fmt.Errorf("building mean-fitness line: %w", err)
	}
	meanLine.Color = color.RGBA{B: 180, A: 255}

	p.Add(bestLine, meanLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("mean", meanLine)
	p.Legend.Top = false

	path := filepath.Join(om.dir, "fitness.png")
	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving fitness plot: %w", err)
	}
	return nil
}

// WriteSurvivalPlot renders the drift-mode survival rate to survival.png.
func (om *OutputManager) WriteSurvivalPlot(survival []float64) error {
	if om == nil || len(survival) == 0 {
		return nil
	}

	p := plot.New()
	p.Title.Text = "Survival rate"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "%"
	p.Y.Min = 0
	p.Y.Max = 100

	line, err := plotter.NewLine(series(survival))
	if err != nil {
		return fmt.Errorf("building survival line: %w", err)
	}
	line.Color = color.RGBA{G: 180, A: 255}
	p.Add(line)

	path := filepath.Join(om.dir, "survival.png")
	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving survival plot: %w", err)
	}
	return nil
}

func series(values []float64) plotter.XYs {
	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i].X = float64(i)
		xys[i].Y = v
	}
	return xys
}
