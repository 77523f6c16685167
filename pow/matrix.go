package pow

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/qinterop/qinterop/unitary"
)

// WireCount implements unitary.Source; pow circuits declare no register.
func (c *Circuit) WireCount() int { return 0 }

// WireOrder implements unitary.Source.
func (c *Circuit) WireOrder() unitary.Order { return unitary.LittleEndian }

// Phase implements unitary.Source.
func (c *Circuit) Phase() float64 { return c.GlobalPhase }

// MatrixInstructions implements unitary.Source with closed-form matrices for
// each gate family.
func (c *Circuit) MatrixInstructions() ([]unitary.Instruction, error) {
	out := make([]unitary.Instruction, 0, len(c.Ops))
	for i, op := range c.Ops {
		if _, ok := op.Gate.(Measure); ok {
			out = append(out, unitary.Instruction{Qubits: op.Wires, Measure: true})
			continue
		}
		m, err := GateMatrix(op.Gate)
		if err != nil {
			return nil, fmt.Errorf("pow: op %d: %w", i, err)
		}
		out = append(out, unitary.Instruction{Matrix: m, Qubits: op.Wires})
	}
	return out, nil
}

// GateMatrix returns the matrix of a single gate in local little-endian
// ordering (first wire on bit 0; controls first).
func GateMatrix(g Gate) (unitary.Matrix, error) {
	switch g := g.(type) {
	case XPow:
		return involutionPow(pauliX(), g.Exponent, g.GlobalShift), nil
	case YPow:
		return involutionPow(pauliY(), g.Exponent, g.GlobalShift), nil
	case ZPow:
		return involutionPow(pauliZ(), g.Exponent, g.GlobalShift), nil
	case HPow:
		return involutionPow(hadamard(), g.Exponent, g.GlobalShift), nil
	case CXPow:
		return unitary.Controlled(involutionPow(pauliX(), g.Exponent, 0), 1), nil
	case CZPow:
		return unitary.Controlled(involutionPow(pauliZ(), g.Exponent, 0), 1), nil
	case SwapPow:
		return involutionPow(swap(), g.Exponent, 0), nil
	case ISwapPow:
		return iswapPow(g.Exponent), nil
	}
	return nil, fmt.Errorf("no matrix for gate %q", g.Token())
}

// involutionPow computes G^t·exp(iπ·t·shift) for G with G² = I, via
// G^t = exp(iπt/2)·(cos(πt/2)·I − i·sin(πt/2)·G).
func involutionPow(g unitary.Matrix, t, shift float64) unitary.Matrix {
	dim := g.Dim()
	c := complex(math.Cos(math.Pi*t/2), 0)
	s := complex(0, -math.Sin(math.Pi*t/2))
	scale := cmplx.Exp(complex(0, math.Pi*t/2+math.Pi*t*shift))
	out := unitary.Zeros(dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			v := s * g[i][j]
			if i == j {
				v += c
			}
			out[i][j] = scale * v
		}
	}
	return out
}

func iswapPow(t float64) unitary.Matrix {
	c := complex(math.Cos(math.Pi*t/2), 0)
	s := complex(0, math.Sin(math.Pi*t/2))
	return unitary.Matrix{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

func pauliX() unitary.Matrix {
	return unitary.Matrix{{0, 1}, {1, 0}}
}

func pauliY() unitary.Matrix {
	return unitary.Matrix{{0, -1i}, {1i, 0}}
}

func pauliZ() unitary.Matrix {
	return unitary.Matrix{{1, 0}, {0, -1}}
}

func hadamard() unitary.Matrix {
	h := complex(1/math.Sqrt2, 0)
	return unitary.Matrix{{h, h}, {h, -h}}
}

func swap() unitary.Matrix {
	return unitary.Matrix{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}
}
