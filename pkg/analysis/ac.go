package analysis

import (
	"github.com/edp1096/ce-amp/internal/consts"
	"github.com/edp1096/ce-amp/pkg/circuit"
)

// SmallSignal holds the small-signal quantities around the bias point.
type SmallSignal struct {
	Ro    float64 // Output resistance from the Early effect
	Re    float64 // Base-emitter junction resistance
	Rc    float64 // Collector resistance in parallel with the load
	Zbase float64 // Input impedance at the base
	Zin   float64 // Total input impedance
	Zout  float64 // Output impedance
	Vin   float64 // Signal amplitude at the input
	Av    float64 // Voltage gain
	Vout  float64 // Signal amplitude at the output
}

// SmallSignalOf computes the small-signal model for the given bias current.
// A single zero among RC, RL and ro is tolerated (its reciprocal drops out of
// the parallel combinations); only a zero reciprocal sum is rejected.
func SmallSignalOf(p circuit.Params, iceq float64) (SmallSignal, error) {
	if iceq == 0 {
		return SmallSignal{}, invalidInput("ac", "ICEQ")
	}

	ro := p.VA / iceq
	re := consts.THERMAL / iceq

	grc := 1/p.RC + 1/p.RL
	if grc == 0 {
		return SmallSignal{}, invalidInput("ac", "1/RC+1/RL")
	}
	rc := 1 / grc

	zbase := p.Beta * (p.RE1 + re)
	gin := 1/p.R1 + 1/p.R2 + 1/zbase
	if gin == 0 {
		return SmallSignal{}, invalidInput("ac", "1/R1+1/R2+1/Zbase")
	}
	zin := p.RS + 1/gin

	gout := 1/p.RC + 1/p.RL + 1/ro
	if gout == 0 {
		return SmallSignal{}, invalidInput("ac", "1/RC+1/RL+1/ro")
	}
	zout := 1 / gout

	vin := p.Vs * zin / (zin + p.Zg + p.RS)
	av := rc / (p.RE1 + re)

	return SmallSignal{
		Ro:    ro,
		Re:    re,
		Rc:    rc,
		Zbase: zbase,
		Zin:   zin,
		Zout:  zout,
		Vin:   vin,
		Av:    av,
		Vout:  av * vin,
	}, nil
}
