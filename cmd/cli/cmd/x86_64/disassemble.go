package x86_64

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/keurnel/assembler/architecture/x86_64/decoder"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	disassembleHex     string
	disassembleFile    string
	disassembleOffset  string
	disassembleUseSIMD bool
	disassembleVerbose bool
)

var DisassembleCmd = &cobra.Command{
	Use:     "disassemble",
	GroupID: "file-operations",
	Short:   "Walk a byte stream and report instruction length and category per step.",
	Long: `Disassemble walks either a hex-encoded byte string or a binary file,
one instruction at a time, reporting each instruction's byte length and
coarse category until it hits a ret-family instruction or a byte sequence
it does not recognize.`,
	RunE: runDisassemble,
}

func init() {
	DisassembleCmd.Flags().StringVar(&disassembleHex, "hex", "", "hex-encoded bytes to disassemble, e.g. 4889e5c3")
	DisassembleCmd.Flags().StringVar(&disassembleFile, "file", "", "path to a binary file to disassemble")
	DisassembleCmd.Flags().StringVar(&disassembleOffset, "offset", "0", "starting address to report, decimal or 0x-prefixed hex")
	DisassembleCmd.Flags().BoolVar(&disassembleUseSIMD, "simd", false, "consult the SIMD table before the general table")
	DisassembleCmd.Flags().BoolVar(&disassembleVerbose, "verbose", false, "print prefix and REX/VEX details per instruction")
}

// runDisassemble resolves the input source (--hex or --file), walks it with
// decoder.Disassemble, and renders the resulting function as a table.
func runDisassemble(cmd *cobra.Command, args []string) error {
	bytes, err := resolveDisassembleInput()
	if err != nil {
		return err
	}

	address, err := parseOffset(disassembleOffset)
	if err != nil {
		return fmt.Errorf("invalid --offset: %w", err)
	}

	decoder.Begin(decoder.Context{UseSIMD: disassembleUseSIMD, Verbose: disassembleVerbose})

	fn := decoder.Disassemble(bytes, address)
	renderFunction(cmd, fn)
	return nil
}

// resolveDisassembleInput reads bytes from whichever of --hex or --file was
// supplied; supplying both or neither is an error.
func resolveDisassembleInput() ([]byte, error) {
	if disassembleHex != "" && disassembleFile != "" {
		return nil, fmt.Errorf("--hex and --file are mutually exclusive")
	}
	if disassembleHex != "" {
		cleaned := strings.ReplaceAll(strings.TrimSpace(disassembleHex), " ", "")
		bytes, err := hex.DecodeString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("failed to decode --hex: %w", err)
		}
		return bytes, nil
	}
	if disassembleFile != "" {
		bytes, err := os.ReadFile(disassembleFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read --file: %w", err)
		}
		return bytes, nil
	}
	return nil, fmt.Errorf("one of --hex or --file is required")
}

// parseOffset accepts both decimal and 0x-prefixed hex addresses.
func parseOffset(offset string) (uint64, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(offset, "0x"), "0X")
	base := 10
	if trimmed != offset {
		base = 16
	}
	return strconv.ParseUint(trimmed, base, 64)
}

// renderFunction prints a disassembled function as a color-coded table:
// offset, bytes, mnemonic, length, category. An invalid terminating
// instruction is highlighted in red.
func renderFunction(cmd *cobra.Command, fn *decoder.Function) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"offset", "bytes", "mnemonic", "length", "category"})

	offset := 0
	for i := 0; i < fn.InstructionCount(); i++ {
		inst, ok := decoder.InstructionAt(fn, i)
		if !ok {
			continue
		}

		row := []string{
			fmt.Sprintf("%#06x", int(fn.Address)+offset),
			hex.EncodeToString(inst.Bytes),
			inst.Record.Mnemonic,
			strconv.Itoa(inst.Length),
			inst.Record.Category.String(),
		}

		if !inst.Valid {
			row[2] = color.RedString("(unrecognized)")
		}
		if decoder.GetContext().Verbose {
			fmt.Fprintf(os.Stderr, "trace: %s prefixes=%d rex=%#02x vex=%d\n",
				row[0], inst.PrefixCount, inst.REXByte, inst.VEX)
		}
		table.Append(row)
		offset += inst.Length
	}

	table.Render()
}
