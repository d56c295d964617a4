// Package render draws the analysis plot datasets to image files.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/edp1096/ce-amp/pkg/plotdata"
)

var (
	dcColor     = color.RGBA{B: 255, A: 255}
	acColor     = color.RGBA{R: 255, A: 255}
	inputColor  = color.RGBA{B: 255, A: 255}
	outputColor = color.RGBA{R: 165, G: 42, B: 42, A: 255}
)

// SaveLoadLine writes the load-line diagram to path. The format follows the
// file extension (.png, .svg, .pdf, ...).
func SaveLoadLine(ds plotdata.LoadLinePlot, path string) error {
	p := plot.New()
	p.X.Label.Text = "VCE (volts)"
	p.Y.Label.Text = "IC (amps)"
	p.X.Min, p.X.Max = 0, ds.XMax
	p.Y.Min, p.Y.Max = 0, ds.YMax

	dcLine, err := plotter.NewLine(points(ds.DC))
	if err != nil {
		return fmt.Errorf("building DC load line: %v", err)
	}
	dcLine.Color = dcColor

	acLine, err := plotter.NewLine(points(ds.AC))
	if err != nil {
		return fmt.Errorf("building AC load line: %v", err)
	}
	acLine.Color = acColor

	p.Add(dcLine, acLine)
	p.Legend.Add("DC Loadline", dcLine)
	p.Legend.Add("AC Loadline", acLine)
	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving load-line plot: %v", err)
	}
	return nil
}

// SaveWaveform writes the input/output waveform plot to path.
func SaveWaveform(ds plotdata.WaveformPlot, path string) error {
	p := plot.New()
	p.X.Label.Text = "Duration (seconds)"
	p.Y.Label.Text = "Magnitude (volts)"

	in, err := plotter.NewLine(series(ds.Time, ds.Input))
	if err != nil {
		return fmt.Errorf("building input waveform: %v", err)
	}
	in.Color = inputColor

	out, err := plotter.NewLine(series(ds.Time, ds.Output))
	if err != nil {
		return fmt.Errorf("building output waveform: %v", err)
	}
	out.Color = outputColor

	p.Add(in, out)
	p.Legend.Add("Input", in)
	p.Legend.Add("Output", out)
	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving waveform plot: %v", err)
	}
	return nil
}

func points(pts []plotdata.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	return xys
}

func series(ts, vs []float64) plotter.XYs {
	xys := make(plotter.XYs, len(ts))
	for i := range ts {
		xys[i].X = ts[i]
		xys[i].Y = vs[i]
	}
	return xys
}
