package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/qinterop/qinterop/convert"
	"github.com/qinterop/qinterop/deck"
	"github.com/qinterop/qinterop/pow"
	"github.com/qinterop/qinterop/qasm"
)

// libraryFor resolves a circuit file's library from the flag, falling back to
// the file extension.
func libraryFor(flag, path string) (convert.Library, error) {
	if flag != "" {
		l := convert.Library(flag)
		if !l.Valid() {
			return "", fmt.Errorf("unknown library %q, supported: %v", flag, convert.Libraries())
		}
		return l, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".qasm":
		return convert.QASM, nil
	case ".deck":
		return convert.Deck, nil
	case ".pow":
		return convert.Pow, nil
	}
	return "", fmt.Errorf("cannot infer library from %s, pass --from/--to", path)
}

// readCircuit loads a native circuit from disk in its library's own format:
// OpenQASM text for qasm, yaml documents for deck and pow.
func readCircuit(path string, lib convert.Library) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch lib {
	case convert.QASM:
		return qasm.Parse(string(data))
	case convert.Deck:
		return deck.Unmarshal(data)
	case convert.Pow:
		return pow.Unmarshal(data)
	}
	return nil, fmt.Errorf("unknown library %q", lib)
}

// writeCircuit serializes a native circuit in its library's own format.
func writeCircuit(native any) ([]byte, error) {
	switch c := native.(type) {
	case *qasm.Circuit:
		return []byte(c.Text()), nil
	case *deck.Circuit:
		return c.Marshal()
	case *pow.Circuit:
		return c.Marshal()
	}
	return nil, fmt.Errorf("unrecognized native circuit type %T", native)
}
