package analysis

import "github.com/edp1096/ce-amp/pkg/circuit"

// LoadLines holds the axis intercepts of the DC and AC load lines in
// (VCE, IC) space. The DC line runs from (0, ICSaturation) to (VCECutoff, 0);
// the AC line passes through the Q-point with slope -1/rc.
type LoadLines struct {
	VCECutoff    float64
	ICSaturation float64
	ACCutoff     float64
	ACSaturation float64
}

// LoadLinesOf computes the load-line intercepts. Sampling the segments into
// polylines is the plot data builder's job.
func LoadLinesOf(p circuit.Params, op OperatingPoint, ss SmallSignal) LoadLines {
	return LoadLines{
		VCECutoff:    p.VCC - op.VE,
		ICSaturation: (p.VCC - op.VE) / p.RC,
		ACCutoff:     op.VCEQ + op.ICEQ*ss.Rc,
		ACSaturation: op.ICEQ + op.VCEQ/ss.Rc,
	}
}
