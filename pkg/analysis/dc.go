package analysis

import (
	"github.com/edp1096/ce-amp/internal/consts"
	"github.com/edp1096/ce-amp/pkg/circuit"
)

// OperatingPoint is the DC bias point of the stage.
type OperatingPoint struct {
	VB   float64 // Base voltage
	VE   float64 // Emitter voltage
	ICEQ float64 // Quiescent collector current (IC = IE assumed)
	VC   float64 // Collector voltage
	VCEQ float64 // Quiescent collector-emitter voltage
}

// BiasPoint computes the DC bias point from the divider voltage using the
// stiff-divider approximation and the fixed base-emitter drop.
func BiasPoint(p circuit.Params) (OperatingPoint, error) {
	if p.R1+p.R2 == 0 {
		return OperatingPoint{}, invalidInput("dc", "R1+R2")
	}
	if p.RE1+p.RE2 == 0 {
		return OperatingPoint{}, invalidInput("dc", "RE1+RE2")
	}

	vb := p.VCC * p.R2 / (p.R1 + p.R2)
	ve := vb - consts.VBE
	iceq := ve / (p.RE1 + p.RE2)
	vc := p.VCC - iceq*p.RC

	return OperatingPoint{
		VB:   vb,
		VE:   ve,
		ICEQ: iceq,
		VC:   vc,
		VCEQ: vc - ve,
	}, nil
}
