package ir

import "errors"

// ErrEmptyCircuit reports a circuit with nothing to normalize: no
// instructions and no declared qubits, so no unitary is well-defined.
var ErrEmptyCircuit = errors.New("empty circuit: no instructions and no declared qubits")

// Renumber assigns dense zero-based indices in first-seen order. It is the
// core of contiguity conversion and is reused by the unitary oracle for
// qubit alignment.
type Renumber struct {
	assigned map[int]int
	order    []int
}

func NewRenumber() *Renumber {
	return &Renumber{assigned: make(map[int]int)}
}

// Index returns the dense index for old, assigning the next unused one on
// first sight.
func (r *Renumber) Index(old int) int {
	if idx, ok := r.assigned[old]; ok {
		return idx
	}
	idx := len(r.order)
	r.assigned[old] = idx
	r.order = append(r.order, old)
	return idx
}

// Seen reports whether old has already been assigned.
func (r *Renumber) Seen(old int) bool {
	_, ok := r.assigned[old]
	return ok
}

// Len returns the number of indices assigned so far.
func (r *Renumber) Len() int {
	return len(r.order)
}

// Contiguous rewrites the circuit's qubit and clbit indices into dense,
// zero-based ranges, preserving the relative order of first appearance.
// Qubits declared but never referenced keep their declaration order after
// all referenced ones. When reverse is set, the final qubit assignment is
// mirrored (idx -> n-1-idx) to flip the significance convention; the mirror
// runs strictly after contiguity assignment so gaps in the original index
// space cannot perturb it. Clbits are renumbered independently and never
// mirrored. The input circuit is left untouched.
func Contiguous(c *Circuit, reverse bool) (*Circuit, error) {
	if len(c.Instructions) == 0 && c.NumQubits == 0 {
		return nil, ErrEmptyCircuit
	}
	qubits := NewRenumber()
	clbits := NewRenumber()
	for _, insn := range c.Instructions {
		for _, q := range insn.Qubits {
			qubits.Index(q)
		}
		for _, b := range insn.Clbits {
			clbits.Index(b)
		}
	}
	// idle wires come after referenced ones, in declaration order
	for q := 0; q < c.NumQubits; q++ {
		qubits.Index(q)
	}
	for b := 0; b < c.NumClbits; b++ {
		clbits.Index(b)
	}

	nq := qubits.Len()
	nb := clbits.Len()
	mapQubit := func(q int) int {
		idx := qubits.Index(q)
		if reverse {
			return nq - 1 - idx
		}
		return idx
	}

	out := &Circuit{
		Instructions: make([]Instruction, len(c.Instructions)),
		NumQubits:    nq,
		NumClbits:    nb,
		GlobalPhase:  c.GlobalPhase,
	}
	for i, insn := range c.Instructions {
		qs := make([]int, len(insn.Qubits))
		for j, q := range insn.Qubits {
			qs[j] = mapQubit(q)
		}
		var bs []int
		if len(insn.Clbits) > 0 {
			bs = make([]int, len(insn.Clbits))
			for j, b := range insn.Clbits {
				bs[j] = clbits.Index(b)
			}
		}
		out.Instructions[i] = Instruction{Gate: insn.Gate, Qubits: qs, Clbits: bs}
	}
	return out, nil
}
