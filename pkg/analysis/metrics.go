package analysis

import (
	"math"

	"github.com/edp1096/ce-amp/pkg/circuit"
)

// Metrics are the derived figures of merit of the stage.
type Metrics struct {
	REop       float64 // Optimum emitter resistance for a centered Q-point
	Mpp        float64 // Maximum symmetric peak-to-peak output swing
	Ibias      float64 // Divider bias current
	IS         float64 // Total supply current
	PD         float64 // DC dissipation at the transistor
	PL         float64 // AC power delivered to the load
	PS         float64 // Total power drawn from the supply
	Efficiency float64 // 100 * PL / PS
}

// MetricsOf derives the figures of merit from the bias point and the
// small-signal model. Mpp takes the tighter of the current-limited and
// voltage-limited swing bounds.
func MetricsOf(p circuit.Params, op OperatingPoint, ss SmallSignal) (Metrics, error) {
	if p.VCC-op.VE == 0 {
		return Metrics{}, invalidInput("metrics", "VCC-VE")
	}
	if p.R1+p.R2 == 0 {
		return Metrics{}, invalidInput("metrics", "R1+R2")
	}

	reop := op.VE * (p.RC + ss.Rc) / (p.VCC - op.VE)
	mpp := math.Min(2*op.ICEQ*ss.Rc, 2*op.VCEQ)

	ibias := p.VCC / (p.R1 + p.R2)
	is := ibias + op.ICEQ

	pd := op.VCEQ * op.ICEQ
	pl := mpp * mpp / (8 * p.RL)
	ps := p.VCC * is
	if ps == 0 {
		return Metrics{}, invalidInput("metrics", "PS")
	}

	return Metrics{
		REop:       reop,
		Mpp:        mpp,
		Ibias:      ibias,
		IS:         is,
		PD:         pd,
		PL:         pl,
		PS:         ps,
		Efficiency: 100 * pl / ps,
	}, nil
}
