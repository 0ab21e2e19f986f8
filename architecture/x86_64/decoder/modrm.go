package decoder

// modRMLength returns the number of bytes a ModR/M byte contributes to an
// instruction's length, including the SIB byte and any displacement.
//
//	mod (bits 7-6): addressing mode — 3 means register-direct, no SIB/disp.
//	reg (bits 5-3): a register operand, or an opcode extension (group).
//	rm  (bits 2-0): combined with mod to select the base register/form.
//
// reg is not consumed here; callers needing group-extension matching read it
// directly off the ModR/M byte.
func modRMLength(modrm byte) int {
	mod := (modrm >> 6) & 3
	rm := modrm & 7

	if mod == 3 {
		return 1
	}

	length := 1
	if rm == 4 {
		length++ // SIB byte.
	}

	switch {
	case mod == 1:
		length++ // disp8.
	case mod == 2, mod == 0 && rm == 5:
		length += 4 // disp32, or RIP-relative disp32.
	}
	return length
}
