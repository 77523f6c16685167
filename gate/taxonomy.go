package gate

import (
	"fmt"
	"strings"
)

// Kind is a library-neutral gate tag. Controlled variants are not enumerated
// here; they are represented structurally on Spec via Controls/Base.
type Kind string

const (
	I       Kind = "I"
	H       Kind = "H"
	X       Kind = "X"
	Y       Kind = "Y"
	Z       Kind = "Z"
	S       Kind = "S"
	Sdg     Kind = "Sdg"
	T       Kind = "T"
	Tdg     Kind = "Tdg"
	SX      Kind = "SX"
	SXdg    Kind = "SXdg"
	RX      Kind = "RX"
	RY      Kind = "RY"
	RZ      Kind = "RZ"
	P       Kind = "P"
	U2      Kind = "U2"
	U3      Kind = "U3"
	Swap    Kind = "Swap"
	ISwap   Kind = "ISwap"
	DCX     Kind = "DCX"
	RZZ     Kind = "RZZ"
	Measure Kind = "MEASURE"
)

type arity struct {
	qubits int
	params int
}

var arities = map[Kind]arity{
	I:       {1, 0},
	H:       {1, 0},
	X:       {1, 0},
	Y:       {1, 0},
	Z:       {1, 0},
	S:       {1, 0},
	Sdg:     {1, 0},
	T:       {1, 0},
	Tdg:     {1, 0},
	SX:      {1, 0},
	SXdg:    {1, 0},
	RX:      {1, 1},
	RY:      {1, 1},
	RZ:      {1, 1},
	P:       {1, 1},
	U2:      {1, 2},
	U3:      {1, 3},
	Swap:    {2, 0},
	ISwap:   {2, 0},
	DCX:     {2, 0},
	RZZ:     {2, 1},
	Measure: {1, 0},
}

var byToken = func() map[string]Kind {
	m := make(map[string]Kind, len(arities))
	for k := range arities {
		m[strings.ToLower(string(k))] = k
	}
	// historical aliases seen across libraries
	m["u1"] = P
	m["phase"] = P
	m["cnot"] = X // classified as X with one control by callers
	return m
}()

// UnknownKindError reports a token with no taxonomy entry. Hitting this for a
// supported library means the library's table is wrong, not the input.
type UnknownKindError struct {
	Token string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("no taxonomy entry for gate kind %q", e.Token)
}

// Classify resolves a kind token (case-insensitive) to its taxonomy entry.
func Classify(token string) (Kind, error) {
	if k, ok := byToken[strings.ToLower(token)]; ok {
		return k, nil
	}
	return "", &UnknownKindError{Token: token}
}

// Arity returns the declared qubit and parameter counts for a kind.
func Arity(k Kind) (qubits, params int, err error) {
	a, ok := arities[k]
	if !ok {
		return 0, 0, &UnknownKindError{Token: string(k)}
	}
	return a.qubits, a.params, nil
}
