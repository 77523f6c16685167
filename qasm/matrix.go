package qasm

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/qinterop/qinterop/unitary"
)

// WireCount implements unitary.Source.
func (c *Circuit) WireCount() int { return c.NumQubits }

// WireOrder implements unitary.Source. q[0] is the least significant bit.
func (c *Circuit) WireOrder() unitary.Order { return unitary.LittleEndian }

// Phase implements unitary.Source. OpenQASM 2.0 has no global-phase
// attribute.
func (c *Circuit) Phase() float64 { return 0 }

// MatrixInstructions implements unitary.Source using closed-form qelib
// matrices. Local bit j of each matrix acts on Qubits[j]; controls come
// first, matching statement order.
func (c *Circuit) MatrixInstructions() ([]unitary.Instruction, error) {
	out := make([]unitary.Instruction, 0, len(c.Statements))
	for i, st := range c.Statements {
		if st.Name == "measure" {
			out = append(out, unitary.Instruction{Qubits: st.Qubits, Measure: true})
			continue
		}
		m, err := gateMatrix(st)
		if err != nil {
			return nil, fmt.Errorf("qasm: statement %d: %w", i, err)
		}
		out = append(out, unitary.Instruction{Matrix: m, Qubits: st.Qubits})
	}
	return out, nil
}

func gateMatrix(st Statement) (unitary.Matrix, error) {
	p := st.Params
	switch st.Name {
	case "id":
		return unitary.Identity(2), nil
	case "h":
		return matH(), nil
	case "x":
		return matX(), nil
	case "y":
		return matY(), nil
	case "z":
		return phaseMat(math.Pi), nil
	case "s":
		return phaseMat(math.Pi / 2), nil
	case "sdg":
		return phaseMat(-math.Pi / 2), nil
	case "t":
		return phaseMat(math.Pi / 4), nil
	case "tdg":
		return phaseMat(-math.Pi / 4), nil
	case "sx":
		return matSX(), nil
	case "rx":
		return matRX(p[0]), nil
	case "ry":
		return matRY(p[0]), nil
	case "rz":
		return matRZ(p[0]), nil
	case "p", "u1":
		return phaseMat(p[0]), nil
	case "u2":
		return matU3(math.Pi/2, p[0], p[1]), nil
	case "u3":
		return matU3(p[0], p[1], p[2]), nil
	case "swap":
		return matSwap(), nil
	case "cx":
		return unitary.Controlled(matX(), 1), nil
	case "cy":
		return unitary.Controlled(matY(), 1), nil
	case "cz":
		return unitary.Controlled(phaseMat(math.Pi), 1), nil
	case "ch":
		return unitary.Controlled(matH(), 1), nil
	case "crx":
		return unitary.Controlled(matRX(p[0]), 1), nil
	case "cry":
		return unitary.Controlled(matRY(p[0]), 1), nil
	case "crz":
		return unitary.Controlled(matRZ(p[0]), 1), nil
	case "cp", "cu1":
		return unitary.Controlled(phaseMat(p[0]), 1), nil
	case "rzz":
		return matRZZ(p[0]), nil
	case "ccx":
		return unitary.Controlled(matX(), 2), nil
	case "cswap":
		return unitary.Controlled(matSwap(), 1), nil
	}
	return nil, fmt.Errorf("no matrix for gate %q", st.Name)
}

func matH() unitary.Matrix {
	h := complex(1/math.Sqrt2, 0)
	return unitary.Matrix{{h, h}, {h, -h}}
}

func matX() unitary.Matrix {
	return unitary.Matrix{{0, 1}, {1, 0}}
}

func matY() unitary.Matrix {
	return unitary.Matrix{{0, -1i}, {1i, 0}}
}

// phaseMat is diag(1, e^{iθ}); z, s, t and p are all members of this family.
func phaseMat(theta float64) unitary.Matrix {
	return unitary.Matrix{{1, 0}, {0, cmplx.Exp(complex(0, theta))}}
}

func matSX() unitary.Matrix {
	a := complex(0.5, 0.5)
	b := complex(0.5, -0.5)
	return unitary.Matrix{{a, b}, {b, a}}
}

func matRX(theta float64) unitary.Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return unitary.Matrix{{c, s}, {s, c}}
}

func matRY(theta float64) unitary.Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return unitary.Matrix{{c, -s}, {s, c}}
}

func matRZ(theta float64) unitary.Matrix {
	return unitary.Matrix{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	}
}

func matU3(theta, phi, lam float64) unitary.Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return unitary.Matrix{
		{c, -cmplx.Exp(complex(0, lam)) * s},
		{cmplx.Exp(complex(0, phi)) * s, cmplx.Exp(complex(0, phi+lam)) * c},
	}
}

func matSwap() unitary.Matrix {
	return unitary.Matrix{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}
}

func matRZZ(theta float64) unitary.Matrix {
	m := cmplx.Exp(complex(0, -theta/2))
	q := cmplx.Exp(complex(0, theta/2))
	return unitary.Matrix{
		{m, 0, 0, 0},
		{0, q, 0, 0},
		{0, 0, q, 0},
		{0, 0, 0, m},
	}
}
