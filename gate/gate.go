// Package gate defines the canonical, library-neutral description of a gate
// occurrence used as the interchange format between circuit libraries.
package gate

import (
	"fmt"
)

// Spec describes one gate occurrence. A controlled gate is a Spec with
// Controls > 0 wrapping a Base spec; Qubits then counts controls plus the
// base gate's qubits.
type Spec struct {
	Kind        Kind
	Qubits      int
	Params      []float64
	GlobalPhase float64
	Controls    int
	Base        *Spec
}

// New builds a validated Spec for a flat (non-controlled) kind.
func New(k Kind, params ...float64) (*Spec, error) {
	nq, np, err := Arity(k)
	if err != nil {
		return nil, err
	}
	if len(params) != np {
		return nil, fmt.Errorf("gate %s takes %d parameters, got %d", k, np, len(params))
	}
	return &Spec{Kind: k, Qubits: nq, Params: params}, nil
}

// MustNew is New for kinds and parameter counts known statically.
func MustNew(k Kind, params ...float64) *Spec {
	s, err := New(k, params...)
	if err != nil {
		panic(err)
	}
	return s
}

// Control wraps s in n additional controls. Composition is uniform: a
// controlled spec gains controls on its existing base rather than nesting.
func (s *Spec) Control(n int) *Spec {
	if n <= 0 {
		return s
	}
	base := s
	controls := n
	if s.Controls > 0 {
		base = s.Base
		controls += s.Controls
	}
	return &Spec{
		Kind:        base.Kind,
		Qubits:      controls + base.Qubits,
		Params:      base.Params,
		GlobalPhase: s.GlobalPhase,
		Controls:    controls,
		Base:        base,
	}
}

// BaseKind returns the innermost kind of s.
func (s *Spec) BaseKind() Kind {
	if s.Controls > 0 {
		return s.Base.Kind
	}
	return s.Kind
}

// Validate checks the structural invariants of s.
func (s *Spec) Validate() error {
	if s.Controls < 0 {
		return fmt.Errorf("gate %s has negative control count %d", s.Kind, s.Controls)
	}
	if s.Controls > 0 {
		if s.Base == nil {
			return fmt.Errorf("controlled gate %s has no base gate", s.Kind)
		}
		if err := s.Base.Validate(); err != nil {
			return fmt.Errorf("controlled gate %s base: %w", s.Kind, err)
		}
		if s.Base.Controls != 0 {
			return fmt.Errorf("controlled gate %s has a controlled base", s.Kind)
		}
		if s.Qubits != s.Controls+s.Base.Qubits {
			return fmt.Errorf("controlled gate %s spans %d qubits, want %d controls + %d base",
				s.Kind, s.Qubits, s.Controls, s.Base.Qubits)
		}
		return nil
	}
	if s.Base != nil {
		return fmt.Errorf("gate %s has a base gate but no controls", s.Kind)
	}
	nq, np, err := Arity(s.Kind)
	if err != nil {
		return err
	}
	if s.Qubits != nq {
		return fmt.Errorf("gate %s spans %d qubits, want %d", s.Kind, s.Qubits, nq)
	}
	if len(s.Params) != np {
		return fmt.Errorf("gate %s carries %d parameters, want %d", s.Kind, len(s.Params), np)
	}
	return nil
}

func (s *Spec) String() string {
	name := string(s.Kind)
	if s.Controls > 0 {
		name = fmt.Sprintf("C%d[%s]", s.Controls, s.Base.Kind)
	}
	if len(s.Params) == 0 {
		return name
	}
	return fmt.Sprintf("%s%v", name, s.Params)
}
