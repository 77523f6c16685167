// Package convert holds the per-library gate mapping tables. Each direction
// is a registered lookup built once at table construction, so "unmapped
// gate" is a single well-defined lookup-miss path rather than a conditional
// chain over native types.
package convert

import (
	"fmt"

	"github.com/qinterop/qinterop/deck"
	"github.com/qinterop/qinterop/gate"
	"github.com/qinterop/qinterop/pow"
	"github.com/qinterop/qinterop/qasm"
	"github.com/qinterop/qinterop/unitary"
)

// Library names one supported circuit library. The set is closed.
type Library string

const (
	QASM Library = "qasm"
	Deck Library = "deck"
	Pow  Library = "pow"
)

// Libraries returns all supported libraries in stable order.
func Libraries() []Library {
	return []Library{QASM, Deck, Pow}
}

// Valid reports whether l names a supported library.
func (l Library) Valid() bool {
	switch l {
	case QASM, Deck, Pow:
		return true
	}
	return false
}

// Order returns the library's declared wire-significance convention.
func (l Library) Order() unitary.Order {
	if l == Deck {
		return unitary.BigEndian
	}
	return unitary.LittleEndian
}

// UnsupportedGateError reports a canonical kind the library legitimately
// cannot represent (or a native gate outside the taxonomy's reach). The
// conversion aborts; no best-effort circuit is produced.
type UnsupportedGateError struct {
	Kind     gate.Kind
	Controls int
	Library  Library
}

func (e *UnsupportedGateError) Error() string {
	if e.Controls > 0 {
		return fmt.Sprintf("gate kind %s with %d controls has no mapping for library %q", e.Kind, e.Controls, e.Library)
	}
	return fmt.Sprintf("gate kind %s has no mapping for library %q", e.Kind, e.Library)
}

// NativeGate is a handle emitted by ToNative and materialized into the
// target circuit during assembly.
type NativeGate interface {
	Apply(target any, qubits, clbits []int) error
}

// MeasureSentinel is returned by ToNative for libraries that cannot
// construct a measurement outside a full circuit; its materialization is
// deferred to circuit assembly.
var MeasureSentinel NativeGate = measureSentinel{}

type measureSentinel struct{}

func (measureSentinel) Apply(target any, qubits, clbits []int) error {
	c, ok := target.(*qasm.Circuit)
	if !ok {
		return fmt.Errorf("measure sentinel applied to %T", target)
	}
	if len(qubits) != 1 || len(clbits) != 1 {
		return fmt.Errorf("measure needs one qubit and one clbit, got %d/%d", len(qubits), len(clbits))
	}
	return c.AddMeasure(qubits[0], clbits[0])
}

type tableKey struct {
	kind     gate.Kind
	controls int
}

type emitter func(spec *gate.Spec) (NativeGate, error)

// Table is one library's bidirectional gate mapping.
type Table struct {
	lib  Library
	emit map[tableKey]emitter
}

// NewTable builds the mapping table for a library.
func NewTable(l Library) (*Table, error) {
	switch l {
	case QASM:
		return &Table{lib: QASM, emit: qasmEmitters()}, nil
	case Deck:
		return &Table{lib: Deck, emit: deckEmitters()}, nil
	case Pow:
		return &Table{lib: Pow, emit: powEmitters()}, nil
	}
	return nil, fmt.Errorf("unknown library %q", l)
}

// Library returns the library this table maps.
func (t *Table) Library() Library { return t.lib }

// ToNative maps a canonical spec to a native gate handle, failing with
// UnsupportedGateError for kinds outside the library's subset.
func (t *Table) ToNative(spec *gate.Spec) (NativeGate, error) {
	e, ok := t.emit[tableKey{kind: spec.BaseKind(), controls: spec.Controls}]
	if !ok {
		return nil, &UnsupportedGateError{Kind: spec.BaseKind(), Controls: spec.Controls, Library: t.lib}
	}
	return e(spec)
}

// FromNative classifies one native instruction, returning the canonical spec
// plus the qubit and clbit targets in canonical order (controls first).
func (t *Table) FromNative(instr any) (*gate.Spec, []int, []int, error) {
	switch t.lib {
	case QASM:
		st, ok := instr.(qasm.Statement)
		if !ok {
			return nil, nil, nil, fmt.Errorf("library %q cannot classify %T", t.lib, instr)
		}
		return classifyQASM(st)
	case Deck:
		g, ok := instr.(deck.Gate)
		if !ok {
			return nil, nil, nil, fmt.Errorf("library %q cannot classify %T", t.lib, instr)
		}
		return classifyDeck(g)
	case Pow:
		op, ok := instr.(pow.Op)
		if !ok {
			return nil, nil, nil, fmt.Errorf("library %q cannot classify %T", t.lib, instr)
		}
		return classifyPow(op)
	}
	return nil, nil, nil, fmt.Errorf("unknown library %q", t.lib)
}

// NewNative constructs an empty native circuit for assembly.
func (t *Table) NewNative(numQubits, numClbits int) any {
	switch t.lib {
	case QASM:
		return qasm.New(numQubits, numClbits)
	case Deck:
		return deck.New(numQubits, numClbits)
	default:
		return pow.New()
	}
}

// SetPhase threads a circuit-level global phase into the native circuit.
// It reports false when the library has no global-phase attribute; the
// caller records the loss.
func (t *Table) SetPhase(target any, phase float64) bool {
	if c, ok := target.(*pow.Circuit); ok {
		c.GlobalPhase = phase
		return true
	}
	return false
}

// Detect identifies the originating library of a native circuit object,
// failing closed for unrecognized types.
func Detect(native any) (Library, error) {
	switch native.(type) {
	case *qasm.Circuit:
		return QASM, nil
	case *deck.Circuit:
		return Deck, nil
	case *pow.Circuit:
		return Pow, nil
	}
	return "", fmt.Errorf("unrecognized native circuit type %T", native)
}

// Source views a native circuit through its library's matrix facility.
func Source(native any) (unitary.Source, error) {
	switch c := native.(type) {
	case *qasm.Circuit:
		return c, nil
	case *deck.Circuit:
		return c, nil
	case *pow.Circuit:
		return c, nil
	}
	return nil, fmt.Errorf("unrecognized native circuit type %T", native)
}

// Instructions lists a native circuit's instructions for classification.
func Instructions(native any) ([]any, error) {
	switch c := native.(type) {
	case *qasm.Circuit:
		out := make([]any, len(c.Statements))
		for i, st := range c.Statements {
			out[i] = st
		}
		return out, nil
	case *deck.Circuit:
		out := make([]any, len(c.Gates))
		for i, g := range c.Gates {
			out[i] = g
		}
		return out, nil
	case *pow.Circuit:
		out := make([]any, len(c.Ops))
		for i, op := range c.Ops {
			out[i] = op
		}
		return out, nil
	}
	return nil, fmt.Errorf("unrecognized native circuit type %T", native)
}

// Shape returns a native circuit's declared wire counts. Libraries with
// implicit wires report zero qubits; the normalizer derives the span.
func Shape(native any) (numQubits, numClbits int, err error) {
	switch c := native.(type) {
	case *qasm.Circuit:
		return c.NumQubits, c.NumClbits, nil
	case *deck.Circuit:
		return c.NumQubits, c.NumClbits, nil
	case *pow.Circuit:
		nb := 0
		for _, op := range c.Ops {
			if m, ok := op.Gate.(pow.Measure); ok && m.Bit+1 > nb {
				nb = m.Bit + 1
			}
		}
		return 0, nb, nil
	}
	return 0, 0, fmt.Errorf("unrecognized native circuit type %T", native)
}

// NativePhase returns the circuit-level global phase of a native circuit.
func NativePhase(native any) float64 {
	if c, ok := native.(*pow.Circuit); ok {
		return c.GlobalPhase
	}
	return 0
}
