package decoder

// Function is the result of walking a byte stream instruction-by-instruction
// from a starting address until a ret-family instruction or a decode
// failure. See original_source/include/disas.h's rda_dec_fun_t.
type Function struct {
	instructions *Sequence[*Instruction]

	Bytes   []byte // all bytes consumed across the walk.
	Address uint64 // the address Disassemble was called with.
	Length  int    // total bytes consumed, i.e. sum of each instruction's Length.
}

// InstructionCount returns the number of decoded instructions in the walk,
// i.e. instructions.Len() — distinct from Length, which is total bytes.
func (fn *Function) InstructionCount() int {
	return fn.instructions.Len()
}

// Disassemble walks bytes from the front, decoding one instruction at a
// time, until either a ret-family instruction is decoded or a decode
// failure (Valid == false) is hit. The failing/terminating instruction is
// included in the result. Each decode step gets a window of up to
// maxInstructionWindow bytes, matching the 15-byte lookahead
// rda_disassemble64 uses.
func Disassemble(bytes []byte, address uint64) *Function {
	fn := &Function{
		instructions: NewSequence[*Instruction](),
		Address:      address,
	}

	offset := 0
	for offset < len(bytes) {
		end := offset + maxInstructionWindow
		if end > len(bytes) {
			end = len(bytes)
		}
		inst := DecodeSingle(bytes[offset:end])
		fn.instructions.Push(inst)

		consumed := inst.Length
		if offset+consumed > len(bytes) {
			consumed = len(bytes) - offset
		}
		offset += consumed

		if !inst.Valid || isReturn(inst) {
			break
		}
	}

	fn.Bytes = append([]byte(nil), bytes[:offset]...)
	fn.Length = offset
	return fn
}

// InstructionAt returns the instruction at index within a disassembled
// function, and whether index was in range. See
// original_source/include/disas.h's rda_get_instruction_at.
func InstructionAt(fn *Function, index int) (*Instruction, bool) {
	if fn == nil {
		return nil, false
	}
	return fn.instructions.Get(index)
}
