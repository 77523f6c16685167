package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qinterop/qinterop/program"
)

func newConvertCommand(opts *rootOptions) *cobra.Command {
	var from, to, out string

	cmd := &cobra.Command{
		Use:   "convert <circuit-file>",
		Short: "Convert a circuit to another library's format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], from, to, out)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source library (inferred from extension if omitted)")
	cmd.Flags().StringVar(&to, "to", "", "target library (required)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (stdout if omitted)")
	cmd.MarkFlagRequired("to")

	return cmd
}

func runConvert(cmd *cobra.Command, path, from, to, out string) error {
	srcLib, err := libraryFor(from, path)
	if err != nil {
		return err
	}
	dstLib, err := libraryFor(to, "")
	if err != nil {
		return err
	}
	native, err := readCircuit(path, srcLib)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	p, err := program.Wrap(native)
	if err != nil {
		return err
	}
	converted, err := p.Transpile(dstLib)
	if err != nil {
		return err
	}
	data, err := writeCircuit(converted)
	if err != nil {
		return err
	}
	if out == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(out, data, 0o644)
}
