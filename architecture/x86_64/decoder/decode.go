package decoder

import "strings"

// Instruction is the result of decoding a single instruction at some offset
// into a byte stream. See original_source/include/disas.h's rda_dec_int_t.
type Instruction struct {
	Record EncodingRecord // the matched encoding record; zero value if Valid is false.
	Bytes  []byte         // the exact bytes consumed, length == Length.
	Length int            // total instruction length in bytes.

	PrefixCount int         // number of prefix bytes consumed before the opcode, including REX (and a SIMD record's mandatory prefix).
	REXByte     byte        // the REX byte, or 0 if none was present.
	VEX         VEXEncoding // VEX/EVEX escape kind used to match, if any.

	Valid bool // false if no table entry matched; Length is still 1 in that case (0 for empty input).
}

// maxInstructionWindow is the largest number of bytes a single x86_64
// instruction can occupy (legal encodings top out at 15).
const maxInstructionWindow = 15

// matchAndMeasure checks whether record's opcode matches bytes at prefixLen
// (the number of legacy/REX prefix bytes already consumed), and if so
// returns the instruction's total length (prefixes + opcode + ModR/M/SIB/disp
// + immediate). It returns 0 when record does not match. bytes is the full
// window including the prefix bytes, mirroring rda64.c's
// match_and_calc_length, which indexes both the raw bytes (for the REX.W
// special case) and the post-prefix opcode bytes off the same pointer.
//
// available is the number of usable bytes in bytes (bytes may be longer, but
// only available of them come from the real input window).
func matchAndMeasure(bytes []byte, available int, record *EncodingRecord, prefixLen int) int {
	remaining := available - prefixLen
	opcodeEnd := record.OpcodeLength
	if remaining < opcodeEnd {
		return 0
	}
	opcode := bytes[prefixLen:]

	if record.PlusReg {
		// Per spec §4.3 step 1, a 64-bit "+rd" form only demands a REX.W
		// prefix (0x48) when exactly one prefix byte was consumed and the
		// record is flagged OpcodeSize 64 — the b8+rd MOV r64, imm64 form,
		// which shares its opcode with the REX-less MOV r32, imm32 form and
		// must be disambiguated by REX.W. Forms whose 64-bit width is the
		// long-mode default regardless of REX (push/pop/xchg r64) leave
		// OpcodeSize unset and are unaffected by this gate.
		if prefixLen == 1 && record.OpcodeSize == 64 {
			if bytes[0] != 0x48 {
				return 0
			}
		}
		// The final opcode byte only needs to match in its top 5 bits; the
		// low 3 bits select a register.
		for i := 0; i < opcodeEnd-1; i++ {
			if opcode[i] != record.Bytes[i] {
				return 0
			}
		}
		last := opcode[opcodeEnd-1]
		if last&0xf8 != record.Bytes[opcodeEnd-1]&0xf8 {
			return 0
		}
	} else {
		for i := 0; i < opcodeEnd; i++ {
			if opcode[i] != record.Bytes[i] {
				return 0
			}
		}
	}

	length := prefixLen + opcodeEnd

	if record.ModRM {
		if length >= available {
			return 0
		}
		modrm := bytes[length]
		if record.ModRMReg >= 0 {
			reg := (modrm >> 3) & 7
			if int(reg) != record.ModRMReg {
				return 0
			}
		}
		modrmLen := modRMLength(modrm)
		if length+modrmLen > available {
			return 0
		}
		length += modrmLen
	}

	switch {
	case record.InstructionLength > 0:
		length += record.InstructionLength
	case record.InstructionLength < 0:
		// Operand-size-dependent immediate: 16-bit operands take a 2-byte
		// immediate, everything else (32/64-bit) takes 4.
		if record.OpcodeSize == 16 {
			length += 2
		} else {
			length += 4
		}
	}

	if length > available {
		return 0
	}
	return length
}

// DecodeSingle decodes one instruction starting at the front of bytes.
// bytes should be a window of up to maxInstructionWindow bytes; a shorter
// slice is accepted but may cause a valid instruction to be misreported as
// invalid if its full encoding would have extended past the slice.
//
// When the current Context has SIMD enabled, SIMDTable is tried before
// GeneralTable, since a handful of legacy-looking prefix bytes (0x66, 0xf2,
// 0xf3) are reinterpreted as mandatory SIMD prefixes rather than true
// operand-size/rep prefixes. With SIMD disabled, only GeneralTable is
// consulted and those bytes parse as ordinary legacy prefixes (or fail to
// match at all).
func DecodeSingle(bytes []byte) *Instruction {
	if len(bytes) == 0 {
		return &Instruction{Valid: false, Length: 0}
	}

	available := len(bytes)
	if available > maxInstructionWindow {
		available = maxInstructionWindow
	}
	window := bytes[:available]

	useSIMD := GetContext().UseSIMD

	if useSIMD {
		if inst := tryTable(window, SIMDTable); inst != nil {
			return inst
		}
	}

	f3IsPrefix := isF3PrefixContext(window)
	prefixCount, rex := parsePrefixes(window)
	if window[0] == 0xf3 && !f3IsPrefix {
		prefixCount, rex = 0, 0
	}

	for i := range GeneralTable {
		record := &GeneralTable[i]

		length := matchAndMeasure(window, available, record, prefixCount)
		if length == 0 {
			continue
		}
		return &Instruction{
			Record:      *record,
			Bytes:       bytes[:length],
			Length:      length,
			PrefixCount: prefixCount,
			REXByte:     rex,
			Valid:       true,
		}
	}

	return &Instruction{Valid: false, Bytes: bytes[:1], Length: 1}
}

// tryTable attempts to match window against a SIMD-style table whose
// records may carry a mandatory prefix byte (HasSIMDPrefix) consumed as
// part of the opcode comparison rather than as a legacy prefix, or a
// VEX/EVEX escape.
func tryTable(window []byte, table []EncodingRecord) *Instruction {
	for i := range table {
		record := &table[i]

		prefixCount := 0
		if record.HasSIMDPrefix != 0 {
			if len(window) == 0 || window[0] != record.HasSIMDPrefix {
				continue
			}
			prefixCount = 1
		}

		length := matchAndMeasure(window, len(window), record, prefixCount)
		if length == 0 {
			continue
		}
		return &Instruction{
			Record:      *record,
			Bytes:       window[:length],
			Length:      length,
			PrefixCount: prefixCount,
			VEX:         record.VEX,
			Valid:       true,
		}
	}
	return nil
}

// isReturn reports whether a decoded instruction is a ret-family control
// instruction (ret, ret imm16, retf, retf imm16) — the terminator a function
// walk looks for.
func isReturn(inst *Instruction) bool {
	if inst == nil || !inst.Valid {
		return false
	}
	return inst.Record.Category == CategoryControl && strings.HasPrefix(inst.Record.Mnemonic, "ret")
}
