package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// NodalMatrix is a real-valued MNA system A*x = b over a sparse LU solver.
// Row/column indices are 1-based; index 0 is ground and is dropped by the
// stamping helpers.
type NodalMatrix struct {
	Size     int
	matrix   *sparse.Matrix
	rhs      []float64
	solution []float64
}

func NewNodalMatrix(size int) (*NodalMatrix, error) {
	config := &sparse.Configuration{
		Real:           true,
		Expandable:     true,
		ModifiedNodal:  true,
		TiesMultiplier: 5,
		PrinterWidth:   140,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	return &NodalMatrix{
		Size:     size,
		matrix:   mat,
		rhs:      make([]float64, size+1), // 1-based indexing
		solution: make([]float64, size+1),
	}, nil
}

// AddElement accumulates into A[i][j]. Ground (index 0) is ignored.
func (m *NodalMatrix) AddElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		return
	}
	m.matrix.GetElement(int64(i), int64(j)).Real += value
}

// AddRHS accumulates into b[i]. Ground (index 0) is ignored.
func (m *NodalMatrix) AddRHS(i int, value float64) {
	if i <= 0 || i > m.Size {
		return
	}
	m.rhs[i] += value
}

// StampConductance stamps a conductance g between nodes n1 and n2.
func (m *NodalMatrix) StampConductance(n1, n2 int, g float64) {
	m.AddElement(n1, n1, g)
	m.AddElement(n2, n2, g)
	m.AddElement(n1, n2, -g)
	m.AddElement(n2, n1, -g)
}

func (m *NodalMatrix) Solve() error {
	err := m.matrix.Factor()
	if err != nil {
		return fmt.Errorf("matrix factorization failed: %v", err)
	}

	m.solution, err = m.matrix.Solve(m.rhs)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %v", err)
	}

	return nil
}

// Solution returns the 1-based solution vector from the last Solve.
func (m *NodalMatrix) Solution() []float64 {
	return m.solution
}

func (m *NodalMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
	}
}
