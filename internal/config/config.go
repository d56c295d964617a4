// Package config loads analyzer settings from defaults, an optional YAML
// file and environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/edp1096/ce-amp/pkg/circuit"
)

// Config holds runtime settings for the analyzer CLI.
type Config struct {
	Circuit circuit.Params
	Output  OutputConfig
}

// OutputConfig holds the plot image destinations.
type OutputConfig struct {
	LoadLinePath string
	WaveformPath string
}

// Load reads configuration. path may be empty, in which case the reference
// defaults apply. Environment variables use the CEAMP_ prefix, e.g.
// CEAMP_CIRCUIT_VCC overrides circuit.vcc.
func Load(path string) (*Config, error) {
	v := viper.New()

	d := circuit.Defaults()
	v.SetDefault("circuit.vcc", d.VCC)
	v.SetDefault("circuit.rs", d.RS)
	v.SetDefault("circuit.r1", d.R1)
	v.SetDefault("circuit.r2", d.R2)
	v.SetDefault("circuit.re1", d.RE1)
	v.SetDefault("circuit.re2", d.RE2)
	v.SetDefault("circuit.rc", d.RC)
	v.SetDefault("circuit.rl", d.RL)
	v.SetDefault("circuit.zg", d.Zg)
	v.SetDefault("circuit.vs", d.Vs)
	v.SetDefault("circuit.va", d.VA)
	v.SetDefault("circuit.beta", d.Beta)
	v.SetDefault("circuit.frequency", d.Frequency)
	v.SetDefault("circuit.duration", d.Duration)
	v.SetDefault("output.loadline", "loadline.png")
	v.SetDefault("output.waveform", "waveform.png")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("CEAMP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Circuit: circuit.Params{
			VCC:       v.GetFloat64("circuit.vcc"),
			RS:        v.GetFloat64("circuit.rs"),
			R1:        v.GetFloat64("circuit.r1"),
			R2:        v.GetFloat64("circuit.r2"),
			RE1:       v.GetFloat64("circuit.re1"),
			RE2:       v.GetFloat64("circuit.re2"),
			RC:        v.GetFloat64("circuit.rc"),
			RL:        v.GetFloat64("circuit.rl"),
			Zg:        v.GetFloat64("circuit.zg"),
			Vs:        v.GetFloat64("circuit.vs"),
			VA:        v.GetFloat64("circuit.va"),
			Beta:      v.GetFloat64("circuit.beta"),
			Frequency: v.GetFloat64("circuit.frequency"),
			Duration:  v.GetFloat64("circuit.duration"),
		},
		Output: OutputConfig{
			LoadLinePath: v.GetString("output.loadline"),
			WaveformPath: v.GetString("output.waveform"),
		},
	}

	if err := cfg.Circuit.Validate(); err != nil {
		return nil, fmt.Errorf("invalid circuit parameters: %w", err)
	}

	return cfg, nil
}
