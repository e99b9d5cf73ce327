package render

import (
	"bytes"
	"fmt"

	"github.com/poojithagummadi/Model-Context-Protocol/pkg/records"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	barColor  = drawing.ColorFromHex("87ceeb")
	gridColor = drawing.ColorFromHex("b0b0b0")
)

// Chart draws a PNG bar chart of leave balances.
type Chart struct {
	Title  string
	Width  int
	Height int
	Cap    int
}

// NewChart creates a Chart with the given size and y-axis cap.
func NewChart(width, height, limit int) *Chart {
	if limit <= 0 {
		limit = DefaultCap
	}

	return &Chart{
		Title:  "Employee Leave Balances",
		Width:  width,
		Height: height,
		Cap:    limit,
	}
}

// Encode implements ImageRenderer. The y axis runs from zero to Cap, or to
// the largest balance when one exceeds it.
func (c *Chart) Encode(snapshot records.Snapshot) ([]byte, string, error) {
	if len(snapshot) == 0 {
		return nil, "", ErrEmptySnapshot
	}

	bars := make([]chart.Value, 0, len(snapshot))
	for _, entry := range snapshot {
		bars = append(bars, chart.Value{
			Label: entry.EmployeeID,
			Value: float64(entry.Balance),
			Style: chart.Style{
				FillColor:   barColor,
				StrokeColor: barColor,
			},
		})
	}

	limit := c.Cap
	if limit <= 0 {
		limit = DefaultCap
	}
	top := max(limit, snapshot.MaxBalance())

	graph := chart.BarChart{
		Title:  c.Title,
		Width:  c.Width,
		Height: c.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth: 60,
		YAxis: chart.YAxis{
			Name: "Leave Days Remaining",
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: float64(top),
			},
			GridMajorStyle: chart.Style{
				StrokeColor:     gridColor,
				StrokeWidth:     1,
				StrokeDashArray: []float64{5, 5},
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, "", fmt.Errorf("render leave chart: %w", err)
	}

	return buf.Bytes(), "image/png", nil
}

// Render implements Renderer, returning the chart as a data URI.
func (c *Chart) Render(snapshot records.Snapshot) (string, error) {
	data, mimeType, err := c.Encode(snapshot)
	if err != nil {
		return "", err
	}

	return DataURI(mimeType, data), nil
}
