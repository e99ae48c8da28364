package main

import (
	"github.com/joshuapare/bytekit/endian"
	"github.com/spf13/cobra"
)

var encodeWidth int

func init() {
	cmd := newEncodeCmd()
	cmd.Flags().IntVarP(&encodeWidth, "width", "w", 8, "Operand width in bytes (1, 2, 4, or 8)")
	rootCmd.AddCommand(cmd)
}

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <value>",
		Short: "Show the little-endian encoding of an integer",
		Long: `The encode command prints the little-endian byte encoding of an
unsigned integer at a chosen width. Byte 0 is the least-significant byte.

Example:
  bytectl encode 0x0102030405060708
  bytectl encode 0xaabbccdd --width 4
  bytectl encode 4660 --width 2 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args)
		},
	}
	return cmd
}

type encodeResult struct {
	Width int    `json:"width"`
	Value string `json:"value"`
	Bytes string `json:"bytes"`
}

func runEncode(args []string) error {
	value, err := parseValue(args[0], encodeWidth)
	if err != nil {
		return err
	}

	printVerbose("Encoding %d byte(s)\n", encodeWidth)

	var buf []byte
	switch encodeWidth {
	case 1:
		buf = endian.ToLittleEndian(uint8(value))
	case 2:
		buf = endian.ToLittleEndian(uint16(value))
	case 4:
		buf = endian.ToLittleEndian(uint32(value))
	case 8:
		buf = endian.ToLittleEndian(value)
	}

	if jsonOut {
		return printJSON(encodeResult{
			Width: encodeWidth,
			Value: hexLiteral(value, encodeWidth),
			Bytes: hexBytes(buf),
		})
	}

	printInfo("value: %s (%d)\n", hexLiteral(value, encodeWidth), value)
	printInfo("bytes: %s\n", hexBytes(buf))
	return nil
}
