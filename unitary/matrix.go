package unitary

import (
	"math/cmplx"
)

// Matrix is a dense square complex matrix in row-major order.
type Matrix [][]complex128

// Zeros returns a dim x dim zero matrix.
func Zeros(dim int) Matrix {
	m := make(Matrix, dim)
	for i := range m {
		m[i] = make([]complex128, dim)
	}
	return m
}

// Identity returns the dim x dim identity.
func Identity(dim int) Matrix {
	m := Zeros(dim)
	for i := 0; i < dim; i++ {
		m[i][i] = 1
	}
	return m
}

// Dim returns the matrix dimension.
func (m Matrix) Dim() int {
	return len(m)
}

// Mul returns m * b.
func (m Matrix) Mul(b Matrix) Matrix {
	dim := len(m)
	out := Zeros(dim)
	for i := 0; i < dim; i++ {
		for k := 0; k < dim; k++ {
			v := m[i][k]
			if v == 0 {
				continue
			}
			row := b[k]
			for j := 0; j < dim; j++ {
				out[i][j] += v * row[j]
			}
		}
	}
	return out
}

// Scale returns s * m.
func (m Matrix) Scale(s complex128) Matrix {
	dim := len(m)
	out := Zeros(dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			out[i][j] = s * m[i][j]
		}
	}
	return out
}

// Kron returns the tensor product m ⊗ b with m on the high-order bits.
func (m Matrix) Kron(b Matrix) Matrix {
	dm, db := len(m), len(b)
	out := Zeros(dm * db)
	for i := 0; i < dm; i++ {
		for j := 0; j < dm; j++ {
			v := m[i][j]
			if v == 0 {
				continue
			}
			for k := 0; k < db; k++ {
				for l := 0; l < db; l++ {
					out[i*db+k][j*db+l] = v * b[k][l]
				}
			}
		}
	}
	return out
}

// Embed lifts a k-qubit gate matrix onto an n-qubit space. targets[j] names
// the global wire carried by local bit j; local indexing is least-significant
// bit first, matching the canonical basis ordering. Wires outside targets are
// acted on by identity.
func Embed(g Matrix, targets []int, n int) Matrix {
	dim := 1 << n
	k := len(targets)
	gd := 1 << k
	if len(g) != gd {
		panic("gate matrix dimension does not match target count")
	}
	out := Zeros(dim)
	for c := 0; c < dim; c++ {
		lc := 0
		for j, t := range targets {
			lc |= ((c >> t) & 1) << j
		}
		for lr := 0; lr < gd; lr++ {
			v := g[lr][lc]
			if v == 0 {
				continue
			}
			r := c
			for j, t := range targets {
				bit := (lr >> j) & 1
				r = (r &^ (1 << t)) | (bit << t)
			}
			out[r][c] += v
		}
	}
	return out
}

// Controlled wraps base in nctrl controls occupying the low-order local bits.
// The base gate acts on the remaining high-order bits only when every control
// bit is set.
func Controlled(base Matrix, nctrl int) Matrix {
	nb := 0
	for 1<<nb < len(base) {
		nb++
	}
	dim := 1 << (nctrl + nb)
	mask := 1<<nctrl - 1
	out := Identity(dim)
	for r := 0; r < len(base); r++ {
		for c := 0; c < len(base); c++ {
			out[(r<<nctrl)|mask][(c<<nctrl)|mask] = base[r][c]
		}
	}
	return out
}

// allCloseUpToPhase reports whether a == e^{iθ} b elementwise within atol.
// The phase is fixed by the first entry of b whose magnitude is above atol,
// divided into the corresponding entry of a; no phase sweep is performed.
// With strict set, θ is pinned to zero.
func allCloseUpToPhase(a, b Matrix, atol float64, strict bool) bool {
	if len(a) != len(b) {
		return false
	}
	phase := complex(1, 0)
	if !strict {
		found := false
		for i := 0; i < len(b) && !found; i++ {
			for j := 0; j < len(b); j++ {
				if cmplx.Abs(b[i][j]) > atol {
					if cmplx.Abs(a[i][j]) <= atol {
						return false
					}
					phase = a[i][j] / b[i][j]
					phase /= complex(cmplx.Abs(phase), 0)
					found = true
					break
				}
			}
		}
	}
	for i := range a {
		for j := range a[i] {
			if cmplx.Abs(a[i][j]-phase*b[i][j]) > atol {
				return false
			}
		}
	}
	return true
}
