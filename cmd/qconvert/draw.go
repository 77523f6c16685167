package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qinterop/qinterop/draw"
	"github.com/qinterop/qinterop/ir"
	"github.com/qinterop/qinterop/program"
)

func newDrawCommand(opts *rootOptions) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "draw <circuit-file>",
		Short: "Draw a circuit as a wire diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraw(cmd, args[0], from)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source library (inferred from extension if omitted)")

	return cmd
}

func runDraw(cmd *cobra.Command, path, from string) error {
	native, err := loadFor(path, from)
	if err != nil {
		return err
	}
	p, err := program.Wrap(native)
	if err != nil {
		return err
	}
	circuit, err := p.IR()
	if err != nil {
		return err
	}
	norm, err := ir.Contiguous(circuit, false)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), draw.Circuit(norm))
	return nil
}
