package qinterop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinterop/qinterop"
	"github.com/qinterop/qinterop/convert"
	"github.com/qinterop/qinterop/deck"
	"github.com/qinterop/qinterop/qasm"
	"github.com/qinterop/qinterop/unitary"
)

func TestTranspileAndVerify(t *testing.T) {
	src := qasm.New(2, 0)
	require.NoError(t, src.AddGate("h", nil, 0))
	require.NoError(t, src.AddGate("cx", nil, 0, 1))

	out, err := qinterop.Transpile(src, convert.Deck)
	require.NoError(t, err)
	_, ok := out.(*deck.Circuit)
	require.True(t, ok)

	same, err := qinterop.CircuitsAllClose(src, out, unitary.Options{})
	require.NoError(t, err)
	assert.True(t, same)
}

func TestToUnitaryDispatch(t *testing.T) {
	src := qasm.New(1, 0)
	require.NoError(t, src.AddGate("x", nil, 0))

	u, err := qinterop.ToUnitary(src, unitary.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, u.Dim())

	_, err = qinterop.ToUnitary("nope", unitary.Options{})
	assert.Error(t, err)
}

func TestCircuitsAllCloseDistinguishes(t *testing.T) {
	a := qasm.New(1, 0)
	require.NoError(t, a.AddGate("x", nil, 0))
	b := qasm.New(1, 0)
	require.NoError(t, b.AddGate("z", nil, 0))

	same, err := qinterop.CircuitsAllClose(a, b, unitary.Options{})
	require.NoError(t, err)
	assert.False(t, same)
}
