package main

import (
	"github.com/joshuapare/bytekit/byteorder"
	"github.com/spf13/cobra"
)

var swapWidth int

func init() {
	cmd := newSwapCmd()
	cmd.Flags().IntVarP(&swapWidth, "width", "w", 8, "Operand width in bytes (1, 2, 4, or 8)")
	rootCmd.AddCommand(cmd)
}

func newSwapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap <value>",
		Short: "Reverse the byte order of an integer",
		Long: `The swap command reverses the byte order of an unsigned integer at a
chosen width. Values accept Go literal syntax: decimal, 0x hex, 0o octal,
and 0b binary.

Example:
  bytectl swap 0x1234 --width 2
  bytectl swap 0x0102030405060708
  bytectl swap 258 --width 4 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwap(args)
		},
	}
	return cmd
}

type swapResult struct {
	Width  int    `json:"width"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

func runSwap(args []string) error {
	value, err := parseValue(args[0], swapWidth)
	if err != nil {
		return err
	}

	printVerbose("Reversing %d byte(s)\n", swapWidth)

	var swapped uint64
	switch swapWidth {
	case 1:
		swapped = uint64(byteorder.ReverseBytes(uint8(value)))
	case 2:
		swapped = uint64(byteorder.ReverseBytes(uint16(value)))
	case 4:
		swapped = uint64(byteorder.ReverseBytes(uint32(value)))
	case 8:
		swapped = byteorder.ReverseBytes(value)
	}

	if jsonOut {
		return printJSON(swapResult{
			Width:  swapWidth,
			Input:  hexLiteral(value, swapWidth),
			Output: hexLiteral(swapped, swapWidth),
		})
	}

	printInfo("input:  %s (%d)\n", hexLiteral(value, swapWidth), value)
	printInfo("output: %s (%d)\n", hexLiteral(swapped, swapWidth), swapped)
	return nil
}
