package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/ce-amp/pkg/circuit"
)

func TestSmallSignalReference(t *testing.T) {
	p := circuit.Defaults()
	op, err := BiasPoint(p)
	require.NoError(t, err)

	ss, err := SmallSignalOf(p, op.ICEQ)
	require.NoError(t, err)

	assert.InEpsilon(t, 149697.94603302458, ss.Ro, 1e-12)
	assert.InEpsilon(t, 37.424486508256145, ss.Re, 1e-12)
	assert.InEpsilon(t, 2426.9662921348313, ss.Rc, 1e-12)
	assert.InEpsilon(t, 116821.30487313734, ss.Zbase, 1e-12)
	assert.InEpsilon(t, 105342.68429029512, ss.Zin, 1e-12)
	assert.InEpsilon(t, 2388.247023258155, ss.Zout, 1e-12)
	assert.InEpsilon(t, 0.009290077657973834, ss.Vin, 1e-12)
	assert.InEpsilon(t, 7.8945119814639515, ss.Av, 1e-12)
	assert.InEpsilon(t, 0.073340629379605, ss.Vout, 1e-12)
}

func TestSmallSignalZeroBiasCurrent(t *testing.T) {
	_, err := SmallSignalOf(circuit.Defaults(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// A single zero resistance drops out of the parallel combinations instead of
// failing: its reciprocal is infinite, so the combination collapses to zero.
func TestSmallSignalToleratesSingleZero(t *testing.T) {
	p := circuit.Defaults()
	p.RC = 0

	ss, err := SmallSignalOf(p, 0.001)
	require.NoError(t, err)
	assert.Zero(t, ss.Rc)
	assert.Zero(t, ss.Zout)
}

func TestSmallSignalZeroReciprocalSum(t *testing.T) {
	p := circuit.Defaults()
	p.RC = 100
	p.RL = -100 // 1/RC + 1/RL cancels exactly

	_, err := SmallSignalOf(p, 0.001)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSmallSignalGainIsRatioOfRcToEmitterLeg(t *testing.T) {
	p := circuit.Defaults()
	op, err := BiasPoint(p)
	require.NoError(t, err)

	ss, err := SmallSignalOf(p, op.ICEQ)
	require.NoError(t, err)

	assert.InEpsilon(t, ss.Rc/(p.RE1+ss.Re), ss.Av, 1e-12)
	assert.InEpsilon(t, ss.Av*ss.Vin, ss.Vout, 1e-12)
}
