package analysis

import "github.com/edp1096/ce-amp/pkg/circuit"

// StiffDivider reports whether the bias divider is stiff against base
// loading: Beta*(RE1+RE2) >= 10*(R1 || R2). Diagnostic only; the bias point
// is computed with the divider approximation either way.
func StiffDivider(p circuit.Params) bool {
	parallel := 1 / (1/p.R1 + 1/p.R2)
	return p.Beta*(p.RE1+p.RE2) >= 10*parallel
}
