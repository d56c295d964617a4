package analysis

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/edp1096/ce-amp/pkg/circuit"
	"github.com/edp1096/ce-amp/pkg/plotdata"
)

var (
	// ErrInvalidInput marks a parameter set with no well-defined operating
	// point under this model (a required denominator is exactly zero).
	ErrInvalidInput = errors.New("invalid input")
	// ErrNonFinite marks an analysis whose results include values that are
	// not finite real numbers.
	ErrNonFinite = errors.New("non-finite result")
)

func invalidInput(stage, denominator string) error {
	return fmt.Errorf("%s analysis: %w: %s is zero", stage, ErrInvalidInput, denominator)
}

// Result aggregates everything one analysis run produces.
type Result struct {
	Stiff        bool
	Bias         OperatingPoint
	SmallSignal  SmallSignal
	Metrics      Metrics
	LoadLines    LoadLines
	LoadLinePlot plotdata.LoadLinePlot
	Waveform     plotdata.WaveformPlot
	NonFinite    []string // names of quantities that evaluated non-finite
}

// Analyze runs the full pipeline for one parameter set. On an invalid-input
// condition it aborts and returns no result. Non-finite values do not abort:
// the populated result is returned together with an ErrNonFinite error
// naming the affected quantities, so the caller can report instead of
// silently clamping.
func Analyze(p circuit.Params) (*Result, error) {
	op, err := BiasPoint(p)
	if err != nil {
		return nil, err
	}

	ss, err := SmallSignalOf(p, op.ICEQ)
	if err != nil {
		return nil, err
	}

	m, err := MetricsOf(p, op, ss)
	if err != nil {
		return nil, err
	}

	ll := LoadLinesOf(p, op, ss)

	res := &Result{
		Stiff:       StiffDivider(p),
		Bias:        op,
		SmallSignal: ss,
		Metrics:     m,
		LoadLines:   ll,
		LoadLinePlot: plotdata.BuildLoadLine(
			ll.VCECutoff, ll.ICSaturation, ll.ACCutoff, ll.ACSaturation,
			p.VCC, ss.Rc),
		Waveform: plotdata.BuildWaveform(p.Duration, p.Frequency, p.Vs, ss.Vout),
	}

	res.scanNonFinite()
	if len(res.NonFinite) > 0 {
		return res, fmt.Errorf("%w: %s", ErrNonFinite, strings.Join(res.NonFinite, ", "))
	}
	return res, nil
}

func (r *Result) scanNonFinite() {
	check := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			r.NonFinite = append(r.NonFinite, name)
		}
	}

	check("VB", r.Bias.VB)
	check("VE", r.Bias.VE)
	check("ICEQ", r.Bias.ICEQ)
	check("VC", r.Bias.VC)
	check("VCEQ", r.Bias.VCEQ)

	check("ro", r.SmallSignal.Ro)
	check("re", r.SmallSignal.Re)
	check("rc", r.SmallSignal.Rc)
	check("Zbase", r.SmallSignal.Zbase)
	check("Zin", r.SmallSignal.Zin)
	check("Zout", r.SmallSignal.Zout)
	check("Vin", r.SmallSignal.Vin)
	check("Av", r.SmallSignal.Av)
	check("Vout", r.SmallSignal.Vout)

	check("REop", r.Metrics.REop)
	check("Mpp", r.Metrics.Mpp)
	check("Ibias", r.Metrics.Ibias)
	check("IS", r.Metrics.IS)
	check("PD", r.Metrics.PD)
	check("PL", r.Metrics.PL)
	check("PS", r.Metrics.PS)
	check("Efficiency", r.Metrics.Efficiency)

	check("VCEcutoff", r.LoadLines.VCECutoff)
	check("ICsaturation", r.LoadLines.ICSaturation)
	check("ACcutoff", r.LoadLines.ACCutoff)
	check("ACsaturation", r.LoadLines.ACSaturation)
}
