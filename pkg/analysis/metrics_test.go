package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/ce-amp/pkg/circuit"
)

func TestMetricsReference(t *testing.T) {
	p := circuit.Defaults()
	op, err := BiasPoint(p)
	require.NoError(t, err)
	ss, err := SmallSignalOf(p, op.ICEQ)
	require.NoError(t, err)

	m, err := MetricsOf(p, op, ss)
	require.NoError(t, err)

	assert.InEpsilon(t, 632.6654001115611, m.REop, 1e-12)
	assert.InEpsilon(t, 3.2424844247354243, m.Mpp, 1e-12)
	assert.InEpsilon(t, 1.8832391713747646e-06, m.Ibias, 1e-12)
	assert.InEpsilon(t, 0.0006698950766747377, m.IS, 1e-12)
	assert.InEpsilon(t, 0.0023381133184651615, m.PD, 1e-12)
	assert.InEpsilon(t, 0.00048674561317832475, m.PL, 1e-12)
	assert.InEpsilon(t, 0.013397901533494756, m.PS, 1e-12)
	assert.InEpsilon(t, 3.6329988839032787, m.Efficiency, 1e-12)
}

// Mpp is the tighter of the current-limited (2*ICEQ*rc) and voltage-limited
// (2*VCEQ) swing bounds, never an average of the two.
func TestMaxSwingBoundPolicy(t *testing.T) {
	p := circuit.Defaults()

	cases := []struct {
		name string
		op   OperatingPoint
		ss   SmallSignal
		want float64
	}{
		{"current_limited", OperatingPoint{VE: 1, ICEQ: 0.001, VCEQ: 5}, SmallSignal{Rc: 1000}, 2},
		{"voltage_limited", OperatingPoint{VE: 1, ICEQ: 0.01, VCEQ: 3}, SmallSignal{Rc: 1000}, 6},
		{"tie", OperatingPoint{VE: 1, ICEQ: 0.001, VCEQ: 1}, SmallSignal{Rc: 1000}, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := MetricsOf(p, tc.op, tc.ss)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.Mpp)
		})
	}
}

func TestOptimumEmitterResistanceUsesCollectorResistance(t *testing.T) {
	p := circuit.Defaults()
	op := OperatingPoint{VE: 2, ICEQ: 0.001, VCEQ: 5}
	ss := SmallSignal{Rc: 2000}

	m, err := MetricsOf(p, op, ss)
	require.NoError(t, err)

	want := op.VE * (p.RC + ss.Rc) / (p.VCC - op.VE)
	assert.InEpsilon(t, want, m.REop, 1e-12)
}

func TestMetricsZeroHeadroom(t *testing.T) {
	p := circuit.Defaults()
	op := OperatingPoint{VE: p.VCC, ICEQ: 0.001}

	_, err := MetricsOf(p, op, SmallSignal{Rc: 1000})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMetricsZeroSupplyPower(t *testing.T) {
	p := circuit.Defaults()
	p.VCC = 0
	op := OperatingPoint{VE: 1, ICEQ: 0.001, VCEQ: 2}

	_, err := MetricsOf(p, op, SmallSignal{Rc: 1000})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
