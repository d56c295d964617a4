package circuit

import "fmt"

// Params holds the element values of a single common-emitter stage.
// Resistances in ohm, voltages in volt, frequency in Hz, duration in s.
type Params struct {
	VCC       float64 // Supply voltage
	RS        float64 // Series resistance at the input
	R1        float64 // Divider resistance to VCC
	R2        float64 // Divider resistance to ground
	RE1       float64 // Swamped (unbypassed) emitter resistance
	RE2       float64 // Bypassed emitter resistance
	RC        float64 // Collector resistance
	RL        float64 // Load resistance
	Zg        float64 // Signal source impedance
	Vs        float64 // Signal source amplitude
	VA        float64 // Early voltage
	Beta      float64 // Forward current gain
	Frequency float64 // Signal frequency
	Duration  float64 // Waveform duration
}

// Defaults returns the reference parameter set.
func Defaults() Params {
	return Params{
		VCC:       20,
		RS:        8000,
		R1:        1e7,
		R2:        620000,
		RE1:       270,
		RE2:       430,
		RC:        24000,
		RL:        2700,
		Zg:        50,
		Vs:        0.01,
		VA:        100,
		Beta:      380,
		Frequency: 1000,
		Duration:  0.002,
	}
}

// Validate rejects parameter sets that no stage can evaluate. Out-of-range
// but nonzero values are not rejected here; they surface downstream as
// invalid-input or non-finite results.
func (p Params) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"R1", p.R1},
		{"R2", p.R2},
		{"RE1+RE2", p.RE1 + p.RE2},
		{"RC", p.RC},
		{"RL", p.RL},
		{"Beta", p.Beta},
		{"Frequency", p.Frequency},
		{"Duration", p.Duration},
	}
	for _, c := range checks {
		if c.value == 0 {
			return fmt.Errorf("parameter %s must be nonzero", c.name)
		}
	}
	return nil
}
