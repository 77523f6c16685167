// Package unitary computes the unitary matrix a circuit implements and
// decides equivalence of two circuits up to global phase and tolerance. It is
// an independent verification path: it consumes each library's own matrix
// representation and never touches the gate mapping tables.
package unitary

import (
	"fmt"
	"math/cmplx"

	"github.com/qinterop/qinterop/ir"
)

// Order names a library's wire-significance convention.
type Order int

const (
	// LittleEndian: the first-declared wire is the least significant bit of
	// the basis index. This is the canonical ordering unitaries are built in.
	LittleEndian Order = iota
	// BigEndian: the first-declared wire is the most significant bit.
	BigEndian
)

// Instruction is one native instruction resolved to its matrix form.
type Instruction struct {
	Matrix  Matrix // nil for measurements
	Qubits  []int  // wire labels, local bit j of Matrix on Qubits[j]
	Measure bool
}

// Source is a native circuit viewed through its library's matrix facility.
type Source interface {
	WireCount() int
	WireOrder() Order
	// MatrixInstructions resolves every instruction in execution order.
	MatrixInstructions() ([]Instruction, error)
	// Phase returns the circuit-level global phase, radians.
	Phase() float64
}

// Options bounds and tunes the oracle.
type Options struct {
	// MaxQubits caps the normalized qubit count; dense composition is
	// O(2^{3n}) and anything above this aborts with CalculationError.
	MaxQubits int
	// Atol is the elementwise comparison tolerance.
	Atol float64
	// StrictGlobalPhase pins the phase freedom to zero.
	StrictGlobalPhase bool
}

const (
	DefaultMaxQubits = 10
	DefaultAtol      = 1e-7
)

func (o Options) withDefaults() Options {
	if o.MaxQubits == 0 {
		o.MaxQubits = DefaultMaxQubits
	}
	if o.Atol == 0 {
		o.Atol = DefaultAtol
	}
	return o
}

// CalculationError reports that a unitary could not be computed: the circuit
// is non-unitary (contains measurement) or exceeds the size ceiling. It is an
// inconclusive verdict, distinct from "not equivalent".
type CalculationError struct {
	Reason string
}

func (e *CalculationError) Error() string {
	return "unitary calculation: " + e.Reason
}

// ToUnitary computes the 2^n x 2^n matrix src implements, with n the
// normalized qubit count. Little-endian wire labels are aligned to a dense
// zero-based range in first-seen order; big-endian wires are positional, so
// declared wire q resolves to basis bit n-1-q regardless of reference order.
// Instruction i+1 is applied after instruction i, so its matrix multiplies
// from the left.
func ToUnitary(src Source, opts Options) (Matrix, error) {
	opts = opts.withDefaults()
	insns, err := src.MatrixInstructions()
	if err != nil {
		return nil, err
	}
	if len(insns) == 0 && src.WireCount() == 0 {
		return nil, ir.ErrEmptyCircuit
	}
	return compose(insns, src.WireCount(), src.WireOrder(), src.Phase(), 0, opts)
}

func compose(insns []Instruction, declared int, order Order, phase float64, minQubits int, opts Options) (Matrix, error) {
	align := ir.NewRenumber()
	// big-endian wires are positional: declared wire q is basis bit
	// declared-1-q no matter which wire an instruction references first.
	// Seeding the declared wires pins those positions before compaction;
	// undeclared labels still append in first-seen order.
	if order == BigEndian {
		for q := 0; q < declared; q++ {
			align.Index(q)
		}
	}
	for _, insn := range insns {
		for _, q := range insn.Qubits {
			align.Index(q)
		}
	}
	for q := 0; q < declared; q++ {
		align.Index(q)
	}
	// span is the circuit's own wire count; mirroring happens within it, so
	// identity padding added below never shifts the acted-on wires.
	span := align.Len()
	n := span
	if n < minQubits {
		n = minQubits
	}
	if n > opts.MaxQubits {
		return nil, &CalculationError{
			Reason: fmt.Sprintf("circuit spans %d qubits, ceiling is %d", n, opts.MaxQubits),
		}
	}
	u := Identity(1 << n)
	for i, insn := range insns {
		if insn.Measure {
			return nil, &CalculationError{
				Reason: fmt.Sprintf("instruction %d is a measurement, circuit is non-unitary", i),
			}
		}
		targets := make([]int, len(insn.Qubits))
		for j, q := range insn.Qubits {
			idx := align.Index(q)
			if order == BigEndian {
				idx = span - 1 - idx
			}
			targets[j] = idx
		}
		u = Embed(insn.Matrix, targets, n).Mul(u)
	}
	if phase != 0 {
		u = u.Scale(cmplx.Exp(complex(0, phase)))
	}
	return u, nil
}

// AllClose decides whether a and b implement the same transformation up to
// global phase (unless pinned) and tolerance. Differing qubit counts due to
// idle wires are reconciled by padding the smaller circuit with identity
// wires. A CalculationError from either side surfaces as the error; the
// boolean is meaningful only when err is nil.
func AllClose(a, b Source, opts Options) (bool, error) {
	opts = opts.withDefaults()
	ia, err := a.MatrixInstructions()
	if err != nil {
		return false, err
	}
	ib, err := b.MatrixInstructions()
	if err != nil {
		return false, err
	}
	na := wireSpan(ia, a.WireCount())
	nb := wireSpan(ib, b.WireCount())
	n := na
	if nb > n {
		n = nb
	}
	ua, err := compose(ia, a.WireCount(), a.WireOrder(), a.Phase(), n, opts)
	if err != nil {
		return false, err
	}
	ub, err := compose(ib, b.WireCount(), b.WireOrder(), b.Phase(), n, opts)
	if err != nil {
		return false, err
	}
	return allCloseUpToPhase(ua, ub, opts.Atol, opts.StrictGlobalPhase), nil
}

func wireSpan(insns []Instruction, declared int) int {
	align := ir.NewRenumber()
	for _, insn := range insns {
		for _, q := range insn.Qubits {
			align.Index(q)
		}
	}
	for q := 0; q < declared; q++ {
		align.Index(q)
	}
	return align.Len()
}
