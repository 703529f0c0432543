// Package report renders Metrics as a plain text summary and as a bar
// chart image.
package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/kpuputti/spamham/metrics"
	"github.com/kpuputti/spamham/pkg/errors"
)

// Chart dimensions used by SavePlot and WritePlot.
const (
	Width  = 4 * vg.Inch
	Height = 4 * vg.Inch
)

func pct(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return fmt.Sprintf("%.2f%%", v)
}

// Write prints the metrics of a run, one aligned row per value.
func Write(w io.Writer, title string, m metrics.Metrics) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "%s\n", title)
	fmt.Fprintf(tw, "samples:\t%d\n", m.Counts.Total())
	fmt.Fprintf(tw, "accuracy:\t%s\n", pct(m.Accuracy))
	fmt.Fprintf(tw, "precision:\t%s\n", pct(m.Precision))
	fmt.Fprintf(tw, "recall:\t%s\n", pct(m.Recall))
	return errors.Wrap(tw.Flush(), "write report")
}

// WriteValidation prints a validation run including its false positives.
func WriteValidation(w io.Writer, title string, v metrics.Validation) error {
	if err := Write(w, title, v.Metrics); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "false positives:\t%d\n", v.FalsePositives)
	fmt.Fprintf(tw, "false positive rate:\t%s\n", pct(v.FalsePositiveRate))
	return errors.Wrap(tw.Flush(), "write report")
}

// NewPlot builds a bar chart of accuracy, precision and recall on a 0-100
// axis. Undefined values are drawn as zero.
func NewPlot(title string, m metrics.Metrics) (*plot.Plot, error) {
	values := plotter.Values{m.Accuracy, m.Precision, m.Recall}
	for i, v := range values {
		if math.IsNaN(v) {
			values[i] = 0
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "%"
	p.Y.Min = 0
	p.Y.Max = 100

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return nil, errors.Wrap(err, "build bar chart")
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX("accuracy", "precision", "recall")
	return p, nil
}

// SavePlot writes the chart to path; the format follows the extension
// (png, svg, pdf, ...).
func SavePlot(path, title string, m metrics.Metrics) error {
	p, err := NewPlot(title, m)
	if err != nil {
		return err
	}
	if err := p.Save(Width, Height, path); err != nil {
		return errors.Wrapf(err, "save plot %s", path)
	}
	return nil
}

// WritePlot encodes the chart in format to w.
func WritePlot(w io.Writer, format, title string, m metrics.Metrics) error {
	p, err := NewPlot(title, m)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return errors.Wrapf(err, "encode plot as %s", format)
	}
	_, err = wt.WriteTo(w)
	return errors.Wrap(err, "write plot")
}
