package decoder

// VEXEncoding marks whether an EncodingRecord's opcode bytes carry a VEX or
// EVEX escape, or neither (legacy).
type VEXEncoding int

const (
	VEXNone VEXEncoding = iota // legacy encoding, no VEX/EVEX escape.
	VEXTwoOrThreeByte          // VEX, 2-byte (0xC5) or 3-byte (0xC4) escape.
	VEXEVEX                    // EVEX, 4-byte (0x62) escape.
)

// SIMDOperandType distinguishes packed vs. scalar, single vs. double
// precision, or plain integer SIMD operands.
type SIMDOperandType int

const (
	SIMDPackedSingle SIMDOperandType = iota // ps
	SIMDPackedDouble                        // pd
	SIMDScalarSingle                        // ss
	SIMDScalarDouble                        // sd
	SIMDInteger                             // integer simd (p-prefixed mnemonics)
)

// EncodingRecord describes a single recognized instruction form. The general
// and SIMD tables are flat slices of these records, consulted in declaration
// order: the first record whose opcode bytes, ModR/M group, and length
// constraints all match wins.
type EncodingRecord struct {
	Mnemonic string // human-readable form, diagnostic only; never used for matching.

	Bytes []byte // fixed opcode byte pattern; the first OpcodeLength bytes are compared.

	OpcodeLength      int // number of significant bytes in Bytes.
	InstructionLength int // immediate size: 0 none, >0 exact bytes, -1 operand-size-dependent.
	OpcodeSize        int // effective operand width tag: 0, 8, 16, 32, 64, 128, 256, 512.

	ModRM    bool // true if a ModR/M byte follows the opcode.
	PlusReg  bool // true if the low 3 bits of the final opcode byte select a register ("+rd").
	ModRMReg int  // group extension: -1 means any reg, 0..7 restricts to that ModR/M reg value.

	Category Category // coarse semantic category.

	// SIMD-specific fields; zero values are inert for non-SIMD records.
	HasSIMDPrefix byte            // mandatory prefix byte: 0, 0x66, 0xF2, or 0xF3.
	VEX           VEXEncoding     // legacy, VEX, or EVEX.
	SIMDSize      int             // simd operand width in bits (128, 256, 512).
	SIMDType      SIMDOperandType // packed/scalar, single/double, or integer.
}
