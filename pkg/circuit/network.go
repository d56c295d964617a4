package circuit

import (
	"fmt"

	"github.com/edp1096/ce-amp/internal/consts"
	"github.com/edp1096/ce-amp/pkg/matrix"
)

// BiasSolution is the nodal solution of the bias network.
type BiasSolution struct {
	VB float64 // Base voltage
	VE float64 // Emitter voltage
	VC float64 // Collector voltage
	IB float64 // Base current
	IC float64 // Collector current
}

// Node and branch indices of the bias network matrix.
const (
	nodeBase       = 1
	nodeEmitter    = 2
	nodeCollector  = 3
	branchVBE      = 4
	biasMatrixSize = 4
)

// SolveBias computes the operating point of the bias network by nodal
// analysis. With the fixed base-emitter drop the network is linear, so one
// LU solve gives the exact bias point including the loading of the divider
// by the base, which the stiff-divider approximation ignores. The model
// assumes the transistor is forward active; a solution with negative
// collector current means the divider cannot bias the stage.
func SolveBias(p Params) (*BiasSolution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	mat, err := matrix.NewNodalMatrix(biasMatrixSize)
	if err != nil {
		return nil, fmt.Errorf("creating bias matrix: %v", err)
	}
	defer mat.Destroy()

	stampBiasNetwork(mat, p)

	if err := mat.Solve(); err != nil {
		return nil, fmt.Errorf("solving bias network: %v", err)
	}

	x := mat.Solution()
	ib := x[branchVBE]

	return &BiasSolution{
		VB: x[nodeBase],
		VE: x[nodeEmitter],
		VC: x[nodeCollector],
		IB: ib,
		IC: p.Beta * ib,
	}, nil
}

// stampBiasNetwork loads the MNA system. VCC is folded into the right hand
// side as Norton equivalents through R1 and RC; the base-emitter junction is
// a fixed voltage branch carrying the base current, and the collector
// transfer current Beta*IB is stamped through the branch column.
func stampBiasNetwork(mat *matrix.NodalMatrix, p Params) {
	re := p.RE1 + p.RE2

	// Base node: divider conductances plus the junction branch current.
	mat.StampConductance(nodeBase, 0, 1/p.R1+1/p.R2)
	mat.AddElement(nodeBase, branchVBE, 1)
	mat.AddRHS(nodeBase, p.VCC/p.R1)

	// Emitter node: emitter resistance against (Beta+1)*IB flowing in.
	mat.StampConductance(nodeEmitter, 0, 1/re)
	mat.AddElement(nodeEmitter, branchVBE, -(p.Beta + 1))

	// Collector node: collector resistance against Beta*IB flowing out.
	mat.StampConductance(nodeCollector, 0, 1/p.RC)
	mat.AddElement(nodeCollector, branchVBE, p.Beta)
	mat.AddRHS(nodeCollector, p.VCC/p.RC)

	// Branch equation: VB - VE = VBE.
	mat.AddElement(branchVBE, nodeBase, 1)
	mat.AddElement(branchVBE, nodeEmitter, -1)
	mat.AddRHS(branchVBE, consts.VBE)
}
