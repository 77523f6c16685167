package deck

import (
	"fmt"

	"github.com/qinterop/qinterop/unitary"
)

// WireCount implements unitary.Source.
func (c *Circuit) WireCount() int { return c.NumQubits }

// WireOrder implements unitary.Source. Wire 0 is the most significant bit.
func (c *Circuit) WireOrder() unitary.Order { return unitary.BigEndian }

// Phase implements unitary.Source; deck circuits carry no global phase.
func (c *Circuit) Phase() float64 { return 0 }

// MatrixInstructions implements unitary.Source. Per-gate matrices are
// extracted from the library's own statevector facility by driving each
// local basis column through ApplyGate.
func (c *Circuit) MatrixInstructions() ([]unitary.Instruction, error) {
	out := make([]unitary.Instruction, 0, len(c.Gates))
	for i, g := range c.Gates {
		if g.Type == "MEASURE" {
			out = append(out, unitary.Instruction{Qubits: []int{g.Target}, Measure: true})
			continue
		}
		if err := c.check(g); err != nil {
			return nil, fmt.Errorf("deck: gate %d: %w", i, err)
		}
		if twoQubit[g.Type] {
			// local wire 0 carries the control (or first swap wire)
			m := simMatrix(2, func(s *StateVector) {
				s.ApplyGate(g.Type, 1, 0, g.Params)
			})
			out = append(out, unitary.Instruction{Matrix: m, Qubits: []int{g.Control, g.Target}})
			continue
		}
		m := simMatrix(1, func(s *StateVector) {
			s.ApplyGate(g.Type, 0, -1, g.Params)
		})
		out = append(out, unitary.Instruction{Matrix: m, Qubits: []int{g.Target}})
	}
	return out, nil
}

func simMatrix(n int, apply func(*StateVector)) unitary.Matrix {
	dim := 1 << n
	m := unitary.Zeros(dim)
	s := NewStateVector(n)
	for col := 0; col < dim; col++ {
		s.SetBasis(col)
		apply(s)
		for row := 0; row < dim; row++ {
			m[row][col] = s.Amplitudes[row]
		}
	}
	return m
}
