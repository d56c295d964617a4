package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/edp1096/ce-amp/internal/config"
	"github.com/edp1096/ce-amp/pkg/analysis"
	"github.com/edp1096/ce-amp/pkg/circuit"
	"github.com/edp1096/ce-amp/pkg/render"
	"github.com/edp1096/ce-amp/pkg/util"
)

func printResults(res *analysis.Result) {
	fmt.Println("\nAnalysis Results:")
	fmt.Println("================")

	fmt.Printf("\nStiff voltage divider: %v\n", res.Stiff)

	fmt.Println("\nDC Operating Point:")
	fmt.Printf("VB   = %s\n", util.FormatValueFactor(res.Bias.VB, "V"))
	fmt.Printf("VE   = %s\n", util.FormatValueFactor(res.Bias.VE, "V"))
	fmt.Printf("ICEQ = %s\n", util.FormatValueFactor(res.Bias.ICEQ, "A"))
	fmt.Printf("VC   = %s\n", util.FormatValueFactor(res.Bias.VC, "V"))
	fmt.Printf("VCEQ = %s\n", util.FormatValueFactor(res.Bias.VCEQ, "V"))

	fmt.Println("\nSmall Signal:")
	fmt.Printf("ro    = %s\n", util.FormatValueFactor(res.SmallSignal.Ro, "ohm"))
	fmt.Printf("re    = %s\n", util.FormatValueFactor(res.SmallSignal.Re, "ohm"))
	fmt.Printf("rc    = %s\n", util.FormatValueFactor(res.SmallSignal.Rc, "ohm"))
	fmt.Printf("Zbase = %s\n", util.FormatValueFactor(res.SmallSignal.Zbase, "ohm"))
	fmt.Printf("Zin   = %s\n", util.FormatValueFactor(res.SmallSignal.Zin, "ohm"))
	fmt.Printf("Zout  = %s\n", util.FormatValueFactor(res.SmallSignal.Zout, "ohm"))
	fmt.Printf("Vin   = %s\n", util.FormatValueFactor(res.SmallSignal.Vin, "V"))
	fmt.Printf("Av    = %.3f\n", res.SmallSignal.Av)
	fmt.Printf("Vout  = %s\n", util.FormatValueFactor(res.SmallSignal.Vout, "V"))

	fmt.Println("\nDerived Metrics:")
	fmt.Printf("REop       = %s\n", util.FormatValueFactor(res.Metrics.REop, "ohm"))
	fmt.Printf("Mpp        = %s\n", util.FormatValueFactor(res.Metrics.Mpp, "V"))
	fmt.Printf("Ibias      = %s\n", util.FormatValueFactor(res.Metrics.Ibias, "A"))
	fmt.Printf("IS         = %s\n", util.FormatValueFactor(res.Metrics.IS, "A"))
	fmt.Printf("PD         = %s\n", util.FormatValueFactor(res.Metrics.PD, "W"))
	fmt.Printf("PL         = %s\n", util.FormatValueFactor(res.Metrics.PL, "W"))
	fmt.Printf("PS         = %s\n", util.FormatValueFactor(res.Metrics.PS, "W"))
	fmt.Printf("Efficiency = %.3f %%\n", res.Metrics.Efficiency)

	fmt.Println("\nLoad Lines:")
	fmt.Printf("VCEcutoff    = %s\n", util.FormatValueFactor(res.LoadLines.VCECutoff, "V"))
	fmt.Printf("ICsaturation = %s\n", util.FormatValueFactor(res.LoadLines.ICSaturation, "A"))
	fmt.Printf("ACcutoff     = %s\n", util.FormatValueFactor(res.LoadLines.ACCutoff, "V"))
	fmt.Printf("ACsaturation = %s\n", util.FormatValueFactor(res.LoadLines.ACSaturation, "A"))
}

// printBiasCheck compares the divider-approximation bias point against the
// exact nodal solution of the bias network.
func printBiasCheck(p circuit.Params, approx analysis.OperatingPoint) {
	exact, err := circuit.SolveBias(p)
	if err != nil {
		log.Warn().Err(err).Msg("bias network solve failed")
		return
	}

	fmt.Println("\nBias Network Check (nodal solution):")
	fmt.Printf("VB = %s  IC = %s  IB = %s\n",
		util.FormatValueFactor(exact.VB, "V"),
		util.FormatValueFactor(exact.IC, "A"),
		util.FormatValueFactor(exact.IB, "A"))
	if exact.VB != 0 {
		loading := 100 * math.Abs(approx.VB-exact.VB) / math.Abs(exact.VB)
		fmt.Printf("Divider loading error: %.2f %%\n", loading)
	}
}

func main() {
	configPath := flag.String("config", "", "parameter file (yaml)")
	noPlot := flag.Bool("noplot", false, "skip writing plot images")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	res, err := analysis.Analyze(cfg.Circuit)
	if err != nil {
		if errors.Is(err, analysis.ErrNonFinite) {
			log.Warn().Strs("quantities", res.NonFinite).Msg("analysis produced non-finite results")
		} else {
			log.Fatal().Err(err).Msg("analysis failed")
		}
	}

	printResults(res)
	printBiasCheck(cfg.Circuit, res.Bias)

	if *noPlot {
		return
	}

	if err := render.SaveLoadLine(res.LoadLinePlot, cfg.Output.LoadLinePath); err != nil {
		log.Fatal().Err(err).Msg("rendering load-line plot")
	}
	log.Info().Str("path", cfg.Output.LoadLinePath).Msg("load-line plot written")

	if err := render.SaveWaveform(res.Waveform, cfg.Output.WaveformPath); err != nil {
		log.Fatal().Err(err).Msg("rendering waveform plot")
	}
	log.Info().Str("path", cfg.Output.WaveformPath).Msg("waveform plot written")
}
