package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultsAreValid(t *testing.T) {
	assert.NoError(t, Defaults().Validate())
}

func TestValidateRejectsZeroParameters(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"R1", func(p *Params) { p.R1 = 0 }},
		{"R2", func(p *Params) { p.R2 = 0 }},
		{"emitter_leg", func(p *Params) { p.RE1, p.RE2 = 0, 0 }},
		{"RC", func(p *Params) { p.RC = 0 }},
		{"RL", func(p *Params) { p.RL = 0 }},
		{"Beta", func(p *Params) { p.Beta = 0 }},
		{"Frequency", func(p *Params) { p.Frequency = 0 }},
		{"Duration", func(p *Params) { p.Duration = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Defaults()
			tc.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestValidateAllowsSingleZeroEmitterResistor(t *testing.T) {
	p := Defaults()
	p.RE1 = 0
	assert.NoError(t, p.Validate())
}
