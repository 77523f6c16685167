package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qinterop/qinterop"
	"github.com/qinterop/qinterop/unitary"
)

func newVerifyCommand(opts *rootOptions) *cobra.Command {
	var fromA, fromB string
	var atol float64
	var strict bool

	cmd := &cobra.Command{
		Use:   "verify <circuit-a> <circuit-b>",
		Short: "Check that two circuits implement the same unitary",
		Long: `Verify compares the unitaries of two circuits, up to global phase unless
--strict-gphase is set. Exit code 0 means equivalent, 1 not equivalent,
2 means the comparison could not be carried out.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, opts, args[0], args[1], fromA, fromB, atol, strict)
		},
	}

	cmd.Flags().StringVar(&fromA, "from-a", "", "library of the first circuit")
	cmd.Flags().StringVar(&fromB, "from-b", "", "library of the second circuit")
	cmd.Flags().Float64Var(&atol, "atol", 0, "comparison tolerance (default 1e-7)")
	cmd.Flags().BoolVar(&strict, "strict-gphase", false, "require global phases to match exactly")

	return cmd
}

func runVerify(cmd *cobra.Command, opts *rootOptions, pathA, pathB, fromA, fromB string, atol float64, strict bool) error {
	a, err := loadFor(pathA, fromA)
	if err != nil {
		return &exitError{code: exitCommandError, msg: err.Error()}
	}
	b, err := loadFor(pathB, fromB)
	if err != nil {
		return &exitError{code: exitCommandError, msg: err.Error()}
	}

	uopts := opts.config.options()
	if atol != 0 {
		uopts.Atol = atol
	}
	uopts.StrictGlobalPhase = strict

	same, err := qinterop.CircuitsAllClose(a, b, uopts)
	if err != nil {
		var calc *unitary.CalculationError
		if errors.As(err, &calc) {
			return &exitError{code: exitCommandError, msg: "inconclusive: " + calc.Error()}
		}
		return &exitError{code: exitCommandError, msg: err.Error()}
	}
	if !same {
		fmt.Fprintln(cmd.OutOrStdout(), "✗ circuits are not equivalent")
		return &exitError{code: exitNotEquivalent}
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✓ circuits are equivalent")
	return nil
}

func loadFor(path, flag string) (any, error) {
	lib, err := libraryFor(flag, path)
	if err != nil {
		return nil, err
	}
	native, err := readCircuit(path, lib)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return native, nil
}
