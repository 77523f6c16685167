// Package qinterop converts quantum circuits between supported libraries and
// verifies that two circuits implement the same unitary. The top-level
// functions are thin wrappers; the work lives in program, convert, ir and
// unitary.
package qinterop

import (
	"github.com/qinterop/qinterop/convert"
	"github.com/qinterop/qinterop/program"
	"github.com/qinterop/qinterop/unitary"
)

// Wrap wraps a native circuit for conversion. See program.Wrap.
func Wrap(native any) (*program.Program, error) {
	return program.Wrap(native)
}

// Transpile converts a native circuit to the target library in one call.
func Transpile(native any, target convert.Library) (any, error) {
	p, err := program.Wrap(native)
	if err != nil {
		return nil, err
	}
	return p.Transpile(target)
}

// ToUnitary computes the unitary a native circuit implements, resolved to
// little-endian wire order.
func ToUnitary(native any, opts unitary.Options) (unitary.Matrix, error) {
	src, err := convert.Source(native)
	if err != nil {
		return nil, err
	}
	return unitary.ToUnitary(src, opts)
}

// CircuitsAllClose reports whether two native circuits implement the same
// unitary, up to global phase unless opts says otherwise. The circuits may
// come from different libraries and differ in declared width; the narrower
// one is padded with identity wires.
func CircuitsAllClose(a, b any, opts unitary.Options) (bool, error) {
	sa, err := convert.Source(a)
	if err != nil {
		return false, err
	}
	sb, err := convert.Source(b)
	if err != nil {
		return false, err
	}
	return unitary.AllClose(sa, sb, opts)
}
