// Package pow implements exponent-form gate circuits: every gate is a power
// of a fixed involution (X^t, Z^t, ...) with an optional global shift that
// parameterizes the whole gate family at once. Wire labels are
// arbitrary non-negative integers and need not be contiguous; the circuit
// carries an explicit global phase. Wire convention is little-endian after
// alignment: the first-referenced wire is the least significant bit.
package pow

import "fmt"

// Gate is one native gate. Token identifies the gate family; Span is the
// number of wires it touches.
type Gate interface {
	Token() string
	Span() int
}

// XPow is X^Exponent scaled by exp(iπ·Exponent·GlobalShift). Exponent 1 with
// zero shift is the Pauli X; shift -1/2 makes the family the RX rotations.
type XPow struct {
	Exponent    float64
	GlobalShift float64
}

func (XPow) Token() string { return "xpow" }
func (XPow) Span() int     { return 1 }

// YPow is Y^Exponent scaled by exp(iπ·Exponent·GlobalShift).
type YPow struct {
	Exponent    float64
	GlobalShift float64
}

func (YPow) Token() string { return "ypow" }
func (YPow) Span() int     { return 1 }

// ZPow is Z^Exponent scaled by exp(iπ·Exponent·GlobalShift). Exponents 1,
// 1/2 and 1/4 at zero shift are Z, S and T.
type ZPow struct {
	Exponent    float64
	GlobalShift float64
}

func (ZPow) Token() string { return "zpow" }
func (ZPow) Span() int     { return 1 }

// HPow is H^Exponent scaled by exp(iπ·Exponent·GlobalShift).
type HPow struct {
	Exponent    float64
	GlobalShift float64
}

func (HPow) Token() string { return "hpow" }
func (HPow) Span() int     { return 1 }

// CXPow applies X^Exponent on the second wire conditioned on the first.
type CXPow struct {
	Exponent float64
}

func (CXPow) Token() string { return "cxpow" }
func (CXPow) Span() int     { return 2 }

// CZPow phases the |11> subspace by exp(iπ·Exponent).
type CZPow struct {
	Exponent float64
}

func (CZPow) Token() string { return "czpow" }
func (CZPow) Span() int     { return 2 }

// SwapPow is Swap^Exponent.
type SwapPow struct {
	Exponent float64
}

func (SwapPow) Token() string { return "swappow" }
func (SwapPow) Span() int     { return 2 }

// ISwapPow rotates within the {|01>,|10>} subspace; Exponent 1 is iSWAP.
type ISwapPow struct {
	Exponent float64
}

func (ISwapPow) Token() string { return "iswappow" }
func (ISwapPow) Span() int     { return 2 }

// Measure reads one wire into the classical slot Bit.
type Measure struct {
	Bit int
}

func (Measure) Token() string { return "measure" }
func (Measure) Span() int     { return 1 }

// Op binds a gate to its wire labels.
type Op struct {
	Gate  Gate
	Wires []int
}

// Circuit is an ordered op list plus a global phase, radians. There is no
// declared register; the wire set is whatever the ops reference.
type Circuit struct {
	Ops         []Op
	GlobalPhase float64
}

// New returns an empty circuit.
func New() *Circuit {
	return &Circuit{}
}

// Append adds an op after checking wire arity and distinctness.
func (c *Circuit) Append(g Gate, wires ...int) error {
	if len(wires) != g.Span() {
		return fmt.Errorf("pow: %s touches %d wires, got %d", g.Token(), g.Span(), len(wires))
	}
	seen := make(map[int]bool, len(wires))
	for _, w := range wires {
		if w < 0 {
			return fmt.Errorf("pow: negative wire label %d", w)
		}
		if seen[w] {
			return fmt.Errorf("pow: %s references wire %d twice", g.Token(), w)
		}
		seen[w] = true
	}
	c.Ops = append(c.Ops, Op{Gate: g, Wires: wires})
	return nil
}
