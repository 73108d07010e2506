// Package plot keeps the order-parameter history of a run and draws it.
//
// Points arrive already mapped to (log10(1000·X+1), log10(1000·V+1)), so both
// renderings use linear axes.
package plot

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/simulation"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrTooFewPoints is returned when there is nothing worth drawing yet.
var ErrTooFewPoints = errors.New("plot: need at least 2 points")

const (
	DefaultXLabel = "log10(1000X+1)"
	DefaultYLabel = "log10(1000V+1)"
)

// LogPlot is the X/V scatter of one run. It is not safe for concurrent use.
type LogPlot struct {
	XLabel string
	YLabel string
	points []simulation.PlotPoint
}

func NewLogPlot() *LogPlot {
	return &LogPlot{XLabel: DefaultXLabel, YLabel: DefaultYLabel}
}

// Add appends p. Non-finite points are dropped and Add returns false.
func (lp *LogPlot) Add(p simulation.PlotPoint) bool {
	if !finite(p.X) || !finite(p.Y) {
		return false
	}
	lp.points = append(lp.points, p)
	return true
}

// AddSample maps s and appends it.
func (lp *LogPlot) AddSample(s simulation.OrderSample) bool {
	return lp.Add(s.Plot())
}

// Clear drops every point, as after a swarm reset.
func (lp *LogPlot) Clear() {
	lp.points = lp.points[:0]
}

func (lp *LogPlot) Len() int { return len(lp.points) }

// Points returns a copy of the points in insertion order.
func (lp *LogPlot) Points() []simulation.PlotPoint {
	return append([]simulation.PlotPoint(nil), lp.points...)
}

func (lp *LogPlot) series() (xs, ys []float64) {
	xs = make([]float64, len(lp.points))
	ys = make([]float64, len(lp.points))
	for i, p := range lp.points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

// RenderPNG writes the scatter as a width x height PNG.
func (lp *LogPlot) RenderPNG(w io.Writer, width, height int) error {
	if len(lp.points) < 2 {
		return ErrTooFewPoints
	}
	xs, ys := lp.series()
	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:  lp.XLabel,
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: upperBound(xs)},
		},
		YAxis: chart.YAxis{
			Name:  lp.YLabel,
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: upperBound(ys)},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    2,
					DotColor:    drawing.Color{R: 0, G: 0, B: 255, A: 255},
				},
			},
		},
	}
	return graph.Render(chart.PNG, w)
}

// SavePNG renders the scatter and writes it to path. Nothing is written when the
// rendering fails; a failed write or close is reported.
func (lp *LogPlot) SavePNG(path string, width, height int) error {
	var buf bytes.Buffer
	if err := lp.RenderPNG(&buf, width, height); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Sparkline returns a terminal chart of the V axis over time.
func (lp *LogPlot) Sparkline(width, height int) string {
	if len(lp.points) < 2 {
		return ""
	}
	_, ys := lp.series()
	return asciigraph.Plot(ys,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(lp.YLabel))
}

// upperBound keeps the axis range non-empty when every value is 0.
func upperBound(values []float64) float64 {
	hi := 0.0
	for _, v := range values {
		hi = math.Max(hi, v)
	}
	if hi == 0 {
		return 1
	}
	return hi * 1.05
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
