// Package ir holds the library-neutral circuit representation built during a
// conversion and the contiguity normalizer that runs before emission.
package ir

import (
	"fmt"

	"github.com/qinterop/qinterop/gate"
)

// Instruction applies one gate to an ordered set of qubit wires, and for
// measurements records the classical wires written.
type Instruction struct {
	Gate   *gate.Spec
	Qubits []int
	Clbits []int
}

// Circuit is an ordered instruction list over declared qubit/clbit counts.
// It is built fresh per conversion and treated as immutable once constructed;
// Contiguous returns a new Circuit rather than rewriting in place.
type Circuit struct {
	Instructions []Instruction
	NumQubits    int
	NumClbits    int
	GlobalPhase  float64
}

// Validate checks every instruction against the gate taxonomy and wire
// structure. Indices may be sparse and exceed the declared counts before
// normalization (libraries with implicit wires declare zero); Contiguous
// densifies them and guarantees the post-normalization bound invariant by
// construction.
func Validate(c *Circuit) error {
	if c.NumQubits < 0 || c.NumClbits < 0 {
		return fmt.Errorf("negative wire count (%d qubits, %d clbits)", c.NumQubits, c.NumClbits)
	}
	for i, insn := range c.Instructions {
		if insn.Gate == nil {
			return fmt.Errorf("instruction %d has no gate", i)
		}
		if err := insn.Gate.Validate(); err != nil {
			return fmt.Errorf("instruction %d: %w", i, err)
		}
		if len(insn.Qubits) != insn.Gate.Qubits {
			return fmt.Errorf("instruction %d (%s) targets %d qubits, gate spans %d",
				i, insn.Gate, len(insn.Qubits), insn.Gate.Qubits)
		}
		seen := make(map[int]bool, len(insn.Qubits))
		for _, q := range insn.Qubits {
			if q < 0 {
				return fmt.Errorf("instruction %d (%s) qubit %d is negative", i, insn.Gate, q)
			}
			if seen[q] {
				return fmt.Errorf("instruction %d (%s) targets qubit %d twice", i, insn.Gate, q)
			}
			seen[q] = true
		}
		for _, b := range insn.Clbits {
			if b < 0 {
				return fmt.Errorf("instruction %d (%s) clbit %d is negative", i, insn.Gate, b)
			}
		}
		if insn.Gate.Kind != gate.Measure && len(insn.Clbits) != 0 {
			return fmt.Errorf("instruction %d (%s) writes clbits but is not a measurement", i, insn.Gate)
		}
	}
	return nil
}

// Clone returns a deep copy of c.
func (c *Circuit) Clone() *Circuit {
	out := &Circuit{
		Instructions: make([]Instruction, len(c.Instructions)),
		NumQubits:    c.NumQubits,
		NumClbits:    c.NumClbits,
		GlobalPhase:  c.GlobalPhase,
	}
	for i, insn := range c.Instructions {
		out.Instructions[i] = Instruction{
			Gate:   insn.Gate,
			Qubits: append([]int(nil), insn.Qubits...),
			Clbits: append([]int(nil), insn.Clbits...),
		}
	}
	return out
}
