package chart

import (
	"errors"
	"fmt"
	"image/color"

	"RiskSentinel/internal/model"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const bins = 50

// Render draws a frequency histogram of the return series with vertical
// markers at the Historical and Parametric VaR thresholds, and saves it to
// path. The output format follows the file extension (.png, .svg, .pdf).
// Both VaR methods must be present in results.
func Render(returns []float64, results model.RiskResults, path string) error {
	hist, err := results.Get(model.MethodHistorical)
	if err != nil {
		return err
	}
	param, err := results.Get(model.MethodParametric)
	if err != nil {
		return err
	}
	if len(returns) == 0 {
		return errors.New("chart: empty return series")
	}

	p := plot.New()
	p.Title.Text = "Portfolio Return Distribution & VaR Thresholds"
	p.X.Label.Text = "Daily Log Returns"
	p.Y.Label.Text = "Frequency"

	h, err := plotter.NewHist(plotter.Values(returns), bins)
	if err != nil {
		return fmt.Errorf("build histogram: %w", err)
	}
	h.FillColor = color.RGBA{R: 135, G: 206, B: 235, A: 200} // sky blue
	p.Add(h, plotter.NewGrid())

	_, _, _, ymax := h.DataRange()

	histLine, err := verticalLine(hist, ymax)
	if err != nil {
		return err
	}
	histLine.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	histLine.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	histLine.Width = vg.Points(2)
	p.Add(histLine)
	p.Legend.Add(fmt.Sprintf("Historical VaR (%.2f%%)", hist*100), histLine)

	paramLine, err := verticalLine(param, ymax)
	if err != nil {
		return err
	}
	paramLine.Color = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	paramLine.Width = vg.Points(2)
	p.Add(paramLine)
	p.Legend.Add(fmt.Sprintf("Parametric VaR (%.2f%%)", param*100), paramLine)

	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

func verticalLine(x, ymax float64) (*plotter.Line, error) {
	ln, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: ymax}})
	if err != nil {
		return nil, fmt.Errorf("build VaR marker: %w", err)
	}
	return ln, nil
}
