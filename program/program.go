// Package program wraps a native circuit and transpiles it to other
// supported libraries through the canonical IR.
package program

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/qinterop/qinterop/convert"
	"github.com/qinterop/qinterop/ir"
	"github.com/qinterop/qinterop/unitary"
)

// UnsupportedSourceError reports an input circuit whose originating library
// could not be identified. Wrapping fails before any work is done.
type UnsupportedSourceError struct {
	Type string
}

func (e *UnsupportedSourceError) Error() string {
	return fmt.Sprintf("unsupported source package: cannot wrap circuit of type %s", e.Type)
}

// ConversionError carries the offending instruction's context so a failed
// conversion can be diagnosed without re-running.
type ConversionError struct {
	Library convert.Library
	Index   int
	Err     error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion failed at instruction %d (library %q): %v", e.Index, e.Library, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Program is a wrapped source circuit. One program serves one logical
// conversion session: the IR is built once, outputs are memoized per target,
// and the source is never mutated.
type Program struct {
	source  any
	lib     convert.Library
	table   *convert.Table
	circuit *ir.Circuit
	outputs map[convert.Library]any
}

// Wrap identifies the source library of a native circuit and wraps it.
// Unrecognized types fail closed.
func Wrap(native any) (*Program, error) {
	lib, err := convert.Detect(native)
	if err != nil {
		return nil, &UnsupportedSourceError{Type: fmt.Sprintf("%T", native)}
	}
	table, err := convert.NewTable(lib)
	if err != nil {
		return nil, err
	}
	return &Program{
		source:  native,
		lib:     lib,
		table:   table,
		outputs: make(map[convert.Library]any),
	}, nil
}

// Library returns the source library.
func (p *Program) Library() convert.Library { return p.lib }

// Source returns the wrapped native circuit.
func (p *Program) Source() any { return p.source }

// IR returns the canonical representation of the source circuit, building it
// on first use. The IR is little-endian: big-endian sources have their wire
// indices mirrored on entry so declared positions keep their basis bits.
func (p *Program) IR() (*ir.Circuit, error) {
	if p.circuit != nil {
		return p.circuit, nil
	}
	instrs, err := convert.Instructions(p.source)
	if err != nil {
		return nil, err
	}
	nq, nb, err := convert.Shape(p.source)
	if err != nil {
		return nil, err
	}
	mirror := p.lib.Order() == unitary.BigEndian
	c := &ir.Circuit{
		NumQubits:   nq,
		NumClbits:   nb,
		GlobalPhase: convert.NativePhase(p.source),
	}
	for i, instr := range instrs {
		spec, qubits, clbits, cerr := p.table.FromNative(instr)
		if cerr != nil {
			return nil, &ConversionError{Library: p.lib, Index: i, Err: cerr}
		}
		if mirror {
			qs := make([]int, len(qubits))
			for j, q := range qubits {
				qs[j] = nq - 1 - q
			}
			qubits = qs
		}
		c.Instructions = append(c.Instructions, ir.Instruction{Gate: spec, Qubits: qubits, Clbits: clbits})
	}
	if err := ir.Validate(c); err != nil {
		return nil, &ConversionError{Library: p.lib, Index: -1, Err: err}
	}
	p.circuit = c
	return c, nil
}

// Transpile emits the wrapped circuit in the target library's native
// representation. Repeated requests for the same target return the memoized
// output.
func (p *Program) Transpile(target convert.Library) (any, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("unknown target library %q", target)
	}
	if out, ok := p.outputs[target]; ok {
		return out, nil
	}
	start := time.Now()
	circuit, err := p.IR()
	if err != nil {
		return nil, err
	}
	// the IR is little-endian; big-endian targets mirror on the way out
	reverse := target.Order() == unitary.BigEndian
	norm, err := ir.Contiguous(circuit, reverse)
	if err != nil {
		return nil, err
	}
	table, err := convert.NewTable(target)
	if err != nil {
		return nil, err
	}
	native := table.NewNative(norm.NumQubits, norm.NumClbits)
	phase := norm.GlobalPhase
	for i, insn := range norm.Instructions {
		h, terr := table.ToNative(insn.Gate)
		if terr != nil {
			return nil, &ConversionError{Library: target, Index: i, Err: terr}
		}
		if aerr := h.Apply(native, insn.Qubits, insn.Clbits); aerr != nil {
			return nil, &ConversionError{Library: target, Index: i, Err: aerr}
		}
		phase += insn.Gate.GlobalPhase
	}
	if math.Mod(phase, 2*math.Pi) != 0 {
		if !table.SetPhase(native, phase) {
			log.Warn().
				Str("source", string(p.lib)).
				Str("target", string(target)).
				Float64("phase", phase).
				Msg("target library has no global-phase attribute, phase discarded")
		}
	}
	log.Info().
		Str("source", string(p.lib)).
		Str("target", string(target)).
		Int("nbInstructions", len(norm.Instructions)).
		Int("nbQubits", norm.NumQubits).
		Bool("reversed", reverse).
		Dur("took", time.Since(start)).
		Msg("transpiled")
	p.outputs[target] = native
	return native, nil
}

// Unitary computes the unitary the source circuit implements.
func (p *Program) Unitary(opts unitary.Options) (unitary.Matrix, error) {
	src, err := convert.Source(p.source)
	if err != nil {
		return nil, err
	}
	return unitary.ToUnitary(src, opts)
}
