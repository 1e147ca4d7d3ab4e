package chart

import (
	"bytes"
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type Point struct {
	Time   time.Time
	Amount float64
}

// RenderLine draws an amount-over-time line chart and returns the PNG bytes.
// An empty point set still renders, with a placeholder note in the title.
func RenderLine(points []Point, title string) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Amount"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}

	if len(points) == 0 {
		p.Title.Text = title + " (no transactions found)"
	} else {
		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i].X = float64(pt.Time.Unix())
			xys[i].Y = pt.Amount
		}

		line, scatter, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("failed to build line plot: %w", err)
		}
		p.Add(line, scatter)
		p.Add(plotter.NewGrid())
	}

	writer, err := p.WriterTo(10*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	return buf.Bytes(), nil
}
