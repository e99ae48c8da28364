package main

import (
	"fmt"

	"github.com/joshuapare/bytekit/endian"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDecodeCmd())
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <hex-bytes>",
		Short: "Decode little-endian bytes into an integer",
		Long: `The decode command interprets a hex byte sequence as the little-endian
encoding of an unsigned integer. The width follows from the byte count,
which must be 1, 2, 4, or 8. Prefixes, commas, and spaces between bytes
are tolerated.

Example:
  bytectl decode "08 07 06 05 04 03 02 01"
  bytectl decode ddccbbaa
  bytectl decode 0x34,0x12 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args)
		},
	}
	return cmd
}

type decodeResult struct {
	Width int    `json:"width"`
	Bytes string `json:"bytes"`
	Value string `json:"value"`
}

func runDecode(args []string) error {
	buf, err := parseHexBytes(args[0])
	if err != nil {
		return err
	}

	printVerbose("Decoding %d byte(s)\n", len(buf))

	var value uint64
	switch len(buf) {
	case 1:
		v, err := endian.FromLittleEndian[uint8](buf)
		if err != nil {
			return err
		}
		value = uint64(v)
	case 2:
		v, err := endian.FromLittleEndian[uint16](buf)
		if err != nil {
			return err
		}
		value = uint64(v)
	case 4:
		v, err := endian.FromLittleEndian[uint32](buf)
		if err != nil {
			return err
		}
		value = uint64(v)
	case 8:
		v, err := endian.FromLittleEndian[uint64](buf)
		if err != nil {
			return err
		}
		value = v
	default:
		return fmt.Errorf("need 1, 2, 4, or 8 bytes, have %d", len(buf))
	}

	if jsonOut {
		return printJSON(decodeResult{
			Width: len(buf),
			Bytes: hexBytes(buf),
			Value: hexLiteral(value, len(buf)),
		})
	}

	printInfo("bytes: %s\n", hexBytes(buf))
	printInfo("value: %s (%d)\n", hexLiteral(value, len(buf)), value)
	return nil
}
