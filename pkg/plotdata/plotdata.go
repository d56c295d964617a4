// Package plotdata shapes analysis output into renderable datasets. It does
// no analysis of its own; rendering is the caller's business.
package plotdata

import "math"

const (
	// LineSamples is the number of points per load-line segment.
	LineSamples = 50
	// SamplesPerCycle is the waveform sampling rate relative to the signal
	// frequency.
	SamplesPerCycle = 50
)

// Point is one (x, y) sample.
type Point struct {
	X, Y float64
}

// LoadLinePlot holds the sampled DC and AC load lines plus axis bounds
// x in [0, XMax], y in [0, YMax].
type LoadLinePlot struct {
	DC   []Point
	AC   []Point
	XMax float64
	YMax float64
}

// WaveformPlot holds the input and output sinusoids over a shared time grid.
type WaveformPlot struct {
	Time   []float64
	Input  []float64
	Output []float64
}

// BuildLoadLine samples the two intercept-defined segments. The DC segment
// runs from (0, dcSaturation) to (dcCutoff, 0), the AC segment from
// (acCutoff, 0) to (0, acSaturation).
func BuildLoadLine(dcCutoff, dcSaturation, acCutoff, acSaturation, vcc, rc float64) LoadLinePlot {
	xDC := linspace(0, dcCutoff, LineSamples)
	yDC := linspace(dcSaturation, 0, LineSamples)
	xAC := linspace(acCutoff, 0, LineSamples)
	yAC := linspace(0, acSaturation, LineSamples)

	dc := make([]Point, LineSamples)
	ac := make([]Point, LineSamples)
	for i := range dc {
		dc[i] = Point{X: xDC[i], Y: yDC[i]}
		ac[i] = Point{X: xAC[i], Y: yAC[i]}
	}

	return LoadLinePlot{DC: dc, AC: ac, XMax: vcc, YMax: vcc / rc}
}

// BuildWaveform samples the input sinusoid and the phase-inverted output over
// [0, duration] at SamplesPerCycle times the signal frequency. The grid keeps
// the endpoint: when duration does not land on a sample, one extra step past
// the end is included.
func BuildWaveform(duration, frequency, vs, vout float64) WaveformPlot {
	ts := 1 / (SamplesPerCycle * frequency)

	n := int(duration/ts) + 1
	if n < 1 {
		n = 1
	}
	if float64(n-1)*ts < duration*(1-1e-12) {
		n++
	}

	w := WaveformPlot{
		Time:   make([]float64, n),
		Input:  make([]float64, n),
		Output: make([]float64, n),
	}
	for i := range w.Time {
		t := float64(i) * ts
		s := math.Sin(2 * math.Pi * frequency * t)
		w.Time[i] = t
		w.Input[i] = vs * s
		w.Output[i] = -vout * s
	}
	return w
}

// linspace returns n evenly spaced samples over [start, stop] with both
// endpoints exact.
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
