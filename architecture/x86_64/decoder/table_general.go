package decoder

// GeneralTable covers the non-SIMD AMD64 instruction set. Entries are
// ordered the way original_source/include/asmx64.h's internal_table is
// ordered: group-extension records (fixed ModRMReg) before the catch-all
// ModRMReg: -1 on the same opcode where both exist, since declaration order
// is match priority (see decode.go).
var GeneralTable = []EncodingRecord{
	// mov/load ops.
	{Mnemonic: "mov r/m8, r8", Bytes: []byte{0x88}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "mov r/m16-64, r16-64", Bytes: []byte{0x89}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "mov r8, r/m8", Bytes: []byte{0x8a}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "mov r16-64, r/m16-64", Bytes: []byte{0x8b}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "mov r64, imm64", Bytes: []byte{0xb8}, OpcodeLength: 1, InstructionLength: 8, OpcodeSize: 64, PlusReg: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "mov r32, imm32", Bytes: []byte{0xb8}, OpcodeLength: 1, InstructionLength: 4, OpcodeSize: 32, PlusReg: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "mov r/m16-64, imm16", Bytes: []byte{0xc7}, OpcodeLength: 1, InstructionLength: -1, ModRM: true, ModRMReg: 0, Category: CategoryData},
	{Mnemonic: "mov r/m8, imm8", Bytes: []byte{0xc6}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 0, Category: CategoryData},
	{Mnemonic: "lea r16-64, m", Bytes: []byte{0x8d}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "movzx r16-64, r/m8", Bytes: []byte{0x0f, 0xb6}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "movzx r32-64, r/m16", Bytes: []byte{0x0f, 0xb7}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "movsx r16-64, r/m8", Bytes: []byte{0x0f, 0xbe}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "movsx r32-64, r/m16", Bytes: []byte{0x0f, 0xbf}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "movsxd r64, r/m32", Bytes: []byte{0x63}, OpcodeLength: 1, OpcodeSize: 64, ModRM: true, ModRMReg: -1, Category: CategoryData},

	// push/pop ops. OpcodeSize is left unset: push/pop default to a 64-bit
	// operand in long mode with no REX.W needed to select it, unlike the
	// b8+rd mov immediate forms below.
	{Mnemonic: "push r64", Bytes: []byte{0x50}, OpcodeLength: 1, PlusReg: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "pop r64", Bytes: []byte{0x58}, OpcodeLength: 1, PlusReg: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "push imm8", Bytes: []byte{0x6a}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "push imm32", Bytes: []byte{0x68}, OpcodeLength: 1, InstructionLength: 4, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "push r/m16-64", Bytes: []byte{0xff}, OpcodeLength: 1, ModRM: true, ModRMReg: 6, Category: CategoryData},
	{Mnemonic: "pop r/m16-64", Bytes: []byte{0x8f}, OpcodeLength: 1, ModRM: true, ModRMReg: 0, Category: CategoryData},

	// arithmetic ops.
	{Mnemonic: "add r/m8, r8", Bytes: []byte{0x00}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "add r/m16-64, r16-64", Bytes: []byte{0x01}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "add r8, r/m8", Bytes: []byte{0x02}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "add r16-64, r/m16-64", Bytes: []byte{0x03}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "add al, imm8", Bytes: []byte{0x04}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "add rax, imm32", Bytes: []byte{0x05}, OpcodeLength: 1, InstructionLength: 4, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "adc r/m8, r8", Bytes: []byte{0x10}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "adc r/m16-64, r16-64", Bytes: []byte{0x11}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "adc r8, r/m8", Bytes: []byte{0x12}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "adc r16-64, r/m16-64", Bytes: []byte{0x13}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "sub r/m8, r8", Bytes: []byte{0x28}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "sub r/m16-64, r16-64", Bytes: []byte{0x29}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "sub r8, r/m8", Bytes: []byte{0x2a}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "sub r16-64, r/m16-64", Bytes: []byte{0x2b}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "sub al, imm8", Bytes: []byte{0x2c}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "sub rax, imm32", Bytes: []byte{0x2d}, OpcodeLength: 1, InstructionLength: 4, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "sub r/m32, imm32", Bytes: []byte{0x81}, OpcodeLength: 1, InstructionLength: 4, OpcodeSize: 32, ModRM: true, ModRMReg: 5, Category: CategoryArith},
	{Mnemonic: "cmp r/m8, r8", Bytes: []byte{0x38}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "cmp r/m16-64, r16-64", Bytes: []byte{0x39}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "cmp r8, r/m8", Bytes: []byte{0x3a}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "cmp r16-64, r/m16-64", Bytes: []byte{0x3b}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "cmp al, imm8", Bytes: []byte{0x3c}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "cmp rax, imm32", Bytes: []byte{0x3d}, OpcodeLength: 1, InstructionLength: 4, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "cmp r/m64, imm32", Bytes: []byte{0x81}, OpcodeLength: 1, InstructionLength: 4, OpcodeSize: 64, ModRM: true, ModRMReg: 7, Category: CategoryArith},
	{Mnemonic: "mul r/m8", Bytes: []byte{0xf6}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 4, Category: CategoryArith},
	{Mnemonic: "mul r/m16-64", Bytes: []byte{0xf7}, OpcodeLength: 1, ModRM: true, ModRMReg: 4, Category: CategoryArith},
	{Mnemonic: "idiv r/m8", Bytes: []byte{0xf6}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 7, Category: CategoryArith},
	{Mnemonic: "idiv r/m16-64", Bytes: []byte{0xf7}, OpcodeLength: 1, ModRM: true, ModRMReg: 7, Category: CategoryArith},
	{Mnemonic: "div r/m8", Bytes: []byte{0xf6}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 6, Category: CategoryArith},
	{Mnemonic: "div r/m16-64", Bytes: []byte{0xf7}, OpcodeLength: 1, ModRM: true, ModRMReg: 6, Category: CategoryArith},
	{Mnemonic: "inc r/m8", Bytes: []byte{0xfe}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 0, Category: CategoryArith},
	{Mnemonic: "inc r/m16-64", Bytes: []byte{0xff}, OpcodeLength: 1, ModRM: true, ModRMReg: 0, Category: CategoryArith},
	{Mnemonic: "dec r/m8", Bytes: []byte{0xfe}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 1, Category: CategoryArith},
	{Mnemonic: "dec r/m16-64", Bytes: []byte{0xff}, OpcodeLength: 1, ModRM: true, ModRMReg: 1, Category: CategoryArith},
	{Mnemonic: "imul r16-64, r/m16-64", Bytes: []byte{0x0f, 0xaf}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryArith},

	// logic ops.
	{Mnemonic: "and r/m8, r8", Bytes: []byte{0x20}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "and r/m16-64, r16-64", Bytes: []byte{0x21}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "and r8, r/m8", Bytes: []byte{0x22}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "and r16-64, r/m16-64", Bytes: []byte{0x23}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "and al, imm8", Bytes: []byte{0x24}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "and rax, imm32", Bytes: []byte{0x25}, OpcodeLength: 1, InstructionLength: 4, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "and r/m16-64, imm32", Bytes: []byte{0x81}, OpcodeLength: 1, InstructionLength: 4, ModRM: true, ModRMReg: 4, Category: CategoryLogic},
	{Mnemonic: "or r/m8, r8", Bytes: []byte{0x08}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "or r/m16-64, r16-64", Bytes: []byte{0x09}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "or r8, r/m8", Bytes: []byte{0x0a}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "or r16-64, r/m16-64", Bytes: []byte{0x0b}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "or al, imm8", Bytes: []byte{0x0c}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "or rax, imm32", Bytes: []byte{0x0d}, OpcodeLength: 1, InstructionLength: 4, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "or r/m8, imm8", Bytes: []byte{0x80}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 1, Category: CategoryLogic},
	{Mnemonic: "xor r/m8, r8", Bytes: []byte{0x30}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "xor r/m16-64, r16-64", Bytes: []byte{0x31}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "xor r8, r/m8", Bytes: []byte{0x32}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "xor r16-64, r/m16-64", Bytes: []byte{0x33}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "xor al, imm8", Bytes: []byte{0x34}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "xor rax, imm32", Bytes: []byte{0x35}, OpcodeLength: 1, InstructionLength: 4, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "test r/m8, r8", Bytes: []byte{0x84}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "test r/m16-64, r16-64", Bytes: []byte{0x85}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "test al, imm8", Bytes: []byte{0xa8}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "test rax, imm32", Bytes: []byte{0xa9}, OpcodeLength: 1, InstructionLength: 4, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "test r/m8, imm8", Bytes: []byte{0xf6}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 0, Category: CategoryLogic},
	{Mnemonic: "test r/m16-64, imm32", Bytes: []byte{0xf7}, OpcodeLength: 1, InstructionLength: 4, ModRM: true, ModRMReg: 0, Category: CategoryLogic},
	{Mnemonic: "not r/m8", Bytes: []byte{0xf6}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 2, Category: CategoryLogic},
	{Mnemonic: "not r/m16-64", Bytes: []byte{0xf7}, OpcodeLength: 1, ModRM: true, ModRMReg: 2, Category: CategoryLogic},
	{Mnemonic: "neg r/m8", Bytes: []byte{0xf6}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 3, Category: CategoryLogic},
	{Mnemonic: "neg r/m16-64", Bytes: []byte{0xf7}, OpcodeLength: 1, ModRM: true, ModRMReg: 3, Category: CategoryLogic},

	// shifts/rotates ops.
	{Mnemonic: "shl r/m8, 1", Bytes: []byte{0xd0}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 4, Category: CategoryLogic},
	{Mnemonic: "shl r/m16-64, 1", Bytes: []byte{0xd1}, OpcodeLength: 1, ModRM: true, ModRMReg: 4, Category: CategoryLogic},
	{Mnemonic: "shl r/m8, cl", Bytes: []byte{0xd2}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 4, Category: CategoryLogic},
	{Mnemonic: "shl r/m16-64, cl", Bytes: []byte{0xd3}, OpcodeLength: 1, ModRM: true, ModRMReg: 4, Category: CategoryLogic},
	{Mnemonic: "shl r/m8, imm8", Bytes: []byte{0xc0}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 4, Category: CategoryLogic},
	{Mnemonic: "shl r/m16-64, imm8", Bytes: []byte{0xc1}, OpcodeLength: 1, InstructionLength: 1, ModRM: true, ModRMReg: 4, Category: CategoryLogic},
	{Mnemonic: "shr r/m8, 1", Bytes: []byte{0xd0}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 5, Category: CategoryLogic},
	{Mnemonic: "shr r/m16-64, 1", Bytes: []byte{0xd1}, OpcodeLength: 1, ModRM: true, ModRMReg: 5, Category: CategoryLogic},
	{Mnemonic: "shr r/m8, cl", Bytes: []byte{0xd2}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 5, Category: CategoryLogic},
	{Mnemonic: "shr r/m16-64, cl", Bytes: []byte{0xd3}, OpcodeLength: 1, ModRM: true, ModRMReg: 5, Category: CategoryLogic},
	{Mnemonic: "shr r/m8, imm8", Bytes: []byte{0xc0}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 5, Category: CategoryLogic},
	{Mnemonic: "shr r/m16-64, imm8", Bytes: []byte{0xc1}, OpcodeLength: 1, InstructionLength: 1, ModRM: true, ModRMReg: 5, Category: CategoryLogic},
	{Mnemonic: "sar r/m8, 1", Bytes: []byte{0xd0}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 7, Category: CategoryLogic},
	{Mnemonic: "sar r/m16-64, 1", Bytes: []byte{0xd1}, OpcodeLength: 1, ModRM: true, ModRMReg: 7, Category: CategoryLogic},
	{Mnemonic: "sar r/m8, cl", Bytes: []byte{0xd2}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 7, Category: CategoryLogic},
	{Mnemonic: "sar r/m16-64, cl", Bytes: []byte{0xd3}, OpcodeLength: 1, ModRM: true, ModRMReg: 7, Category: CategoryLogic},
	{Mnemonic: "sar r/m8, imm8", Bytes: []byte{0xc0}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 7, Category: CategoryLogic},
	{Mnemonic: "sar r/m16-64, imm8", Bytes: []byte{0xc1}, OpcodeLength: 1, InstructionLength: 1, ModRM: true, ModRMReg: 7, Category: CategoryLogic},
	{Mnemonic: "rol r/m8, 1", Bytes: []byte{0xd0}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 0, Category: CategoryLogic},
	{Mnemonic: "rol r/m16-64, 1", Bytes: []byte{0xd1}, OpcodeLength: 1, ModRM: true, ModRMReg: 0, Category: CategoryLogic},
	{Mnemonic: "rol r/m8, cl", Bytes: []byte{0xd2}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 0, Category: CategoryLogic},
	{Mnemonic: "rol r/m16-64, cl", Bytes: []byte{0xd3}, OpcodeLength: 1, ModRM: true, ModRMReg: 0, Category: CategoryLogic},
	{Mnemonic: "ror r/m8, 1", Bytes: []byte{0xd0}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 1, Category: CategoryLogic},
	{Mnemonic: "ror r/m16-64, 1", Bytes: []byte{0xd1}, OpcodeLength: 1, ModRM: true, ModRMReg: 1, Category: CategoryLogic},
	{Mnemonic: "ror r/m8, cl", Bytes: []byte{0xd2}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 1, Category: CategoryLogic},
	{Mnemonic: "ror r/m16-64, cl", Bytes: []byte{0xd3}, OpcodeLength: 1, ModRM: true, ModRMReg: 1, Category: CategoryLogic},

	// control flow ops.
	{Mnemonic: "jmp rel8", Bytes: []byte{0xeb}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jmp rel32", Bytes: []byte{0xe9}, OpcodeLength: 1, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jmp ptr16:16", Bytes: []byte{0xea}, OpcodeLength: 1, InstructionLength: 6, OpcodeSize: 16, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jmp ptr16:32", Bytes: []byte{0xea}, OpcodeLength: 1, InstructionLength: 6, OpcodeSize: 32, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jmp r/m64", Bytes: []byte{0xff}, OpcodeLength: 1, OpcodeSize: 64, ModRM: true, ModRMReg: 4, Category: CategoryControl},
	{Mnemonic: "call rel32", Bytes: []byte{0xe8}, OpcodeLength: 1, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "call r/m64", Bytes: []byte{0xff}, OpcodeLength: 1, OpcodeSize: 64, ModRM: true, ModRMReg: 2, Category: CategoryControl},
	{Mnemonic: "ret", Bytes: []byte{0xc3}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "ret imm16", Bytes: []byte{0xc2}, OpcodeLength: 1, InstructionLength: 2, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "retf", Bytes: []byte{0xcb}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "retf imm16", Bytes: []byte{0xca}, OpcodeLength: 1, InstructionLength: 2, ModRMReg: -1, Category: CategoryControl},

	// conditional jumps (short rel8).
	{Mnemonic: "jo rel8", Bytes: []byte{0x70}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jno rel8", Bytes: []byte{0x71}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jb rel8", Bytes: []byte{0x72}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl}, // aka jc, jnae
	{Mnemonic: "jnb rel8", Bytes: []byte{0x73}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl}, // aka jnc, jae
	{Mnemonic: "je rel8", Bytes: []byte{0x74}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl}, // aka jz
	{Mnemonic: "jne rel8", Bytes: []byte{0x75}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl}, // aka jnz
	{Mnemonic: "jbe rel8", Bytes: []byte{0x76}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl}, // aka jna
	{Mnemonic: "ja rel8", Bytes: []byte{0x77}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl}, // aka jnbe
	{Mnemonic: "js rel8", Bytes: []byte{0x78}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jns rel8", Bytes: []byte{0x79}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jp rel8", Bytes: []byte{0x7a}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl}, // aka jpe
	{Mnemonic: "jnp rel8", Bytes: []byte{0x7b}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl}, // aka jpo
	{Mnemonic: "jl rel8", Bytes: []byte{0x7c}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl}, // aka jnge
	{Mnemonic: "jge rel8", Bytes: []byte{0x7d}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl}, // aka jnl
	{Mnemonic: "jle rel8", Bytes: []byte{0x7e}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl}, // aka jng
	{Mnemonic: "jg rel8", Bytes: []byte{0x7f}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl}, // aka jnle

	// conditional jumps (near rel32).
	{Mnemonic: "jo rel32", Bytes: []byte{0x0f, 0x80}, OpcodeLength: 2, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jno rel32", Bytes: []byte{0x0f, 0x81}, OpcodeLength: 2, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jb rel32", Bytes: []byte{0x0f, 0x82}, OpcodeLength: 2, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jnb rel32", Bytes: []byte{0x0f, 0x83}, OpcodeLength: 2, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "je rel32", Bytes: []byte{0x0f, 0x84}, OpcodeLength: 2, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jne rel32", Bytes: []byte{0x0f, 0x85}, OpcodeLength: 2, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jbe rel32", Bytes: []byte{0x0f, 0x86}, OpcodeLength: 2, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "ja rel32", Bytes: []byte{0x0f, 0x87}, OpcodeLength: 2, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "js rel32", Bytes: []byte{0x0f, 0x88}, OpcodeLength: 2, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jns rel32", Bytes: []byte{0x0f, 0x89}, OpcodeLength: 2, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jp rel32", Bytes: []byte{0x0f, 0x8a}, OpcodeLength: 2, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jnp rel32", Bytes: []byte{0x0f, 0x8b}, OpcodeLength: 2, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jl rel32", Bytes: []byte{0x0f, 0x8c}, OpcodeLength: 2, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jge rel32", Bytes: []byte{0x0f, 0x8d}, OpcodeLength: 2, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jle rel32", Bytes: []byte{0x0f, 0x8e}, OpcodeLength: 2, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jg rel32", Bytes: []byte{0x0f, 0x8f}, OpcodeLength: 2, InstructionLength: 4, ModRMReg: -1, Category: CategoryControl},

	// conditional moves.
	{Mnemonic: "cmovo r16-64, r/m16-64", Bytes: []byte{0x0f, 0x40}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmovno r16-64, r/m16-64", Bytes: []byte{0x0f, 0x41}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmovb r16-64, r/m16-64", Bytes: []byte{0x0f, 0x42}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmovnb r16-64, r/m16-64", Bytes: []byte{0x0f, 0x43}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmove r16-64, r/m16-64", Bytes: []byte{0x0f, 0x44}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmovne r16-64, r/m16-64", Bytes: []byte{0x0f, 0x45}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmovbe r16-64, r/m16-64", Bytes: []byte{0x0f, 0x46}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmova r16-64, r/m16-64", Bytes: []byte{0x0f, 0x47}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmovs r16-64, r/m16-64", Bytes: []byte{0x0f, 0x48}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmovns r16-64, r/m16-64", Bytes: []byte{0x0f, 0x49}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmovp r16-64, r/m16-64", Bytes: []byte{0x0f, 0x4a}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmovnp r16-64, r/m16-64", Bytes: []byte{0x0f, 0x4b}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmovl r16-64, r/m16-64", Bytes: []byte{0x0f, 0x4c}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmovge r16-64, r/m16-64", Bytes: []byte{0x0f, 0x4d}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmovle r16-64, r/m16-64", Bytes: []byte{0x0f, 0x4e}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmovg r16-64, r/m16-64", Bytes: []byte{0x0f, 0x4f}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},

	// string operations.
	{Mnemonic: "movs m8, m8", Bytes: []byte{0xa4}, OpcodeLength: 1, OpcodeSize: 8, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "movs m16-64, m16-64", Bytes: []byte{0xa5}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmps m8, m8", Bytes: []byte{0xa6}, OpcodeLength: 1, OpcodeSize: 8, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmps m16-64, m16-64", Bytes: []byte{0xa7}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "stos m8", Bytes: []byte{0xaa}, OpcodeLength: 1, OpcodeSize: 8, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "stos m16-64", Bytes: []byte{0xab}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "lods m8", Bytes: []byte{0xac}, OpcodeLength: 1, OpcodeSize: 8, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "lods m16-64", Bytes: []byte{0xad}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "scas m8", Bytes: []byte{0xae}, OpcodeLength: 1, OpcodeSize: 8, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "scas m16-64", Bytes: []byte{0xaf}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryData},

	// stack/flags ops.
	{Mnemonic: "pushad", Bytes: []byte{0x60}, OpcodeLength: 1, OpcodeSize: 32, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "popad", Bytes: []byte{0x61}, OpcodeLength: 1, OpcodeSize: 32, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "pushfq", Bytes: []byte{0x9c}, OpcodeLength: 1, OpcodeSize: 64, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "popfq", Bytes: []byte{0x9d}, OpcodeLength: 1, OpcodeSize: 64, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "pushf", Bytes: []byte{0x9c}, OpcodeLength: 1, OpcodeSize: 16, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "popf", Bytes: []byte{0x9d}, OpcodeLength: 1, OpcodeSize: 16, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "enter", Bytes: []byte{0xc8}, OpcodeLength: 1, InstructionLength: 3, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "leave", Bytes: []byte{0xc9}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "clc", Bytes: []byte{0xf8}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "stc", Bytes: []byte{0xf9}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "cli", Bytes: []byte{0xfa}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "sti", Bytes: []byte{0xfb}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "cld", Bytes: []byte{0xfc}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "std", Bytes: []byte{0xfd}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "cmc", Bytes: []byte{0xf5}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryFlag},

	// system/misc ops.
	{Mnemonic: "int imm8", Bytes: []byte{0xcd}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategorySystem},
	{Mnemonic: "int3", Bytes: []byte{0xcc}, OpcodeLength: 1, ModRMReg: -1, Category: CategorySystem},
	{Mnemonic: "int1", Bytes: []byte{0xf1}, OpcodeLength: 1, ModRMReg: -1, Category: CategorySystem}, // icebp
	{Mnemonic: "into", Bytes: []byte{0xce}, OpcodeLength: 1, ModRMReg: -1, Category: CategorySystem},
	{Mnemonic: "iret", Bytes: []byte{0xcf}, OpcodeLength: 1, OpcodeSize: 16, ModRMReg: -1, Category: CategorySystem},
	{Mnemonic: "iretd", Bytes: []byte{0xcf}, OpcodeLength: 1, OpcodeSize: 32, ModRMReg: -1, Category: CategorySystem},
	{Mnemonic: "iretq", Bytes: []byte{0xcf}, OpcodeLength: 1, OpcodeSize: 64, ModRMReg: -1, Category: CategorySystem},
	{Mnemonic: "syscall", Bytes: []byte{0x0f, 0x05}, OpcodeLength: 2, ModRMReg: -1, Category: CategorySystem},
	{Mnemonic: "sysret", Bytes: []byte{0x0f, 0x07}, OpcodeLength: 2, ModRMReg: -1, Category: CategorySystem},
	{Mnemonic: "sysenter", Bytes: []byte{0x0f, 0x34}, OpcodeLength: 2, ModRMReg: -1, Category: CategorySystem},
	{Mnemonic: "sysexit", Bytes: []byte{0x0f, 0x35}, OpcodeLength: 2, ModRMReg: -1, Category: CategorySystem},
	{Mnemonic: "hlt", Bytes: []byte{0xf4}, OpcodeLength: 1, ModRMReg: -1, Category: CategorySystem},
	{Mnemonic: "nop", Bytes: []byte{0x90}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryMisc},
	{Mnemonic: "nop r/m16", Bytes: []byte{0x0f, 0x1f}, OpcodeLength: 2, OpcodeSize: 16, ModRM: true, ModRMReg: 0, Category: CategoryMisc},
	{Mnemonic: "nop r/m32", Bytes: []byte{0x0f, 0x1f}, OpcodeLength: 2, OpcodeSize: 32, ModRM: true, ModRMReg: 0, Category: CategoryMisc},
	{Mnemonic: "pause", Bytes: []byte{0xf3, 0x90}, OpcodeLength: 2, ModRMReg: -1, Category: CategoryMisc},
	{Mnemonic: "ud2", Bytes: []byte{0x0f, 0x0b}, OpcodeLength: 2, ModRMReg: -1, Category: CategoryMisc},
	{Mnemonic: "rdtsc", Bytes: []byte{0x0f, 0x31}, OpcodeLength: 2, ModRMReg: -1, Category: CategoryMisc},
	{Mnemonic: "rdtscp", Bytes: []byte{0x0f, 0x01, 0xf9}, OpcodeLength: 3, ModRMReg: -1, Category: CategoryMisc},

	// loop family.
	{Mnemonic: "loop rel8", Bytes: []byte{0xe2}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "loope rel8", Bytes: []byte{0xe1}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl}, // aka loopz
	{Mnemonic: "loopne rel8", Bytes: []byte{0xe0}, OpcodeLength: 1, InstructionLength: 1, ModRMReg: -1, Category: CategoryControl}, // aka loopnz
	{Mnemonic: "jecxz rel8", Bytes: []byte{0xe3}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 32, ModRMReg: -1, Category: CategoryControl},
	{Mnemonic: "jrcxz rel8", Bytes: []byte{0xe3}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 64, ModRMReg: -1, Category: CategoryControl},

	// flag ops.
	{Mnemonic: "lahf", Bytes: []byte{0x9f}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "sahf", Bytes: []byte{0x9e}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "seto r/m8", Bytes: []byte{0x0f, 0x90}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "setno r/m8", Bytes: []byte{0x0f, 0x91}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "setb r/m8", Bytes: []byte{0x0f, 0x92}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "setnb r/m8", Bytes: []byte{0x0f, 0x93}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "sete r/m8", Bytes: []byte{0x0f, 0x94}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "setne r/m8", Bytes: []byte{0x0f, 0x95}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "setbe r/m8", Bytes: []byte{0x0f, 0x96}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "seta r/m8", Bytes: []byte{0x0f, 0x97}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "sets r/m8", Bytes: []byte{0x0f, 0x98}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "setns r/m8", Bytes: []byte{0x0f, 0x99}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "setp r/m8", Bytes: []byte{0x0f, 0x9a}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "setnp r/m8", Bytes: []byte{0x0f, 0x9b}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "setl r/m8", Bytes: []byte{0x0f, 0x9c}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "setge r/m8", Bytes: []byte{0x0f, 0x9d}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "setle r/m8", Bytes: []byte{0x0f, 0x9e}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryFlag},
	{Mnemonic: "setg r/m8", Bytes: []byte{0x0f, 0x9f}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryFlag},

	// bit manipulation.
	{Mnemonic: "bsf r16-64, r/m16-64", Bytes: []byte{0x0f, 0xbc}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "bsr r16-64, r/m16-64", Bytes: []byte{0x0f, 0xbd}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "bt r/m16, r16", Bytes: []byte{0x0f, 0xa3}, OpcodeLength: 2, OpcodeSize: 16, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "bt r/m32, r32", Bytes: []byte{0x0f, 0xa3}, OpcodeLength: 2, OpcodeSize: 32, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "bt r/m64, r64", Bytes: []byte{0x0f, 0xa3}, OpcodeLength: 2, OpcodeSize: 64, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "bt r/m16, imm8", Bytes: []byte{0x0f, 0xba}, OpcodeLength: 2, InstructionLength: 1, OpcodeSize: 16, ModRM: true, ModRMReg: 4, Category: CategoryLogic},
	{Mnemonic: "bt r/m32, imm8", Bytes: []byte{0x0f, 0xba}, OpcodeLength: 2, InstructionLength: 1, OpcodeSize: 32, ModRM: true, ModRMReg: 4, Category: CategoryLogic},
	{Mnemonic: "bt r/m64, imm8", Bytes: []byte{0x0f, 0xba}, OpcodeLength: 2, InstructionLength: 1, OpcodeSize: 64, ModRM: true, ModRMReg: 4, Category: CategoryLogic},
	{Mnemonic: "bts r/m16, r16", Bytes: []byte{0x0f, 0xab}, OpcodeLength: 2, OpcodeSize: 16, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "bts r/m32, r32", Bytes: []byte{0x0f, 0xab}, OpcodeLength: 2, OpcodeSize: 32, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "bts r/m64, r64", Bytes: []byte{0x0f, 0xab}, OpcodeLength: 2, OpcodeSize: 64, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "btr r/m16, r16", Bytes: []byte{0x0f, 0xb3}, OpcodeLength: 2, OpcodeSize: 16, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "btr r/m32, r32", Bytes: []byte{0x0f, 0xb3}, OpcodeLength: 2, OpcodeSize: 32, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "btr r/m64, r64", Bytes: []byte{0x0f, 0xb3}, OpcodeLength: 2, OpcodeSize: 64, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "btc r/m16, r16", Bytes: []byte{0x0f, 0xbb}, OpcodeLength: 2, OpcodeSize: 16, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "btc r/m32, r32", Bytes: []byte{0x0f, 0xbb}, OpcodeLength: 2, OpcodeSize: 32, ModRM: true, ModRMReg: -1, Category: CategoryLogic},
	{Mnemonic: "btc r/m64, r64", Bytes: []byte{0x0f, 0xbb}, OpcodeLength: 2, OpcodeSize: 64, ModRM: true, ModRMReg: -1, Category: CategoryLogic},

	// exchange operations.
	{Mnemonic: "xchg r/m8, r8", Bytes: []byte{0x86}, OpcodeLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "xchg r/m16-64, r16-64", Bytes: []byte{0x87}, OpcodeLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryData},
	// OpcodeSize unset for the same reason as push/pop r64 above: xchg's
	// 64-bit form is the long-mode default, not REX.W-gated.
	{Mnemonic: "xchg rax, r64", Bytes: []byte{0x90}, OpcodeLength: 1, PlusReg: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmpxchg r/m8, r8", Bytes: []byte{0x0f, 0xb0}, OpcodeLength: 2, OpcodeSize: 8, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "cmpxchg r/m16-64, r16-64", Bytes: []byte{0x0f, 0xb1}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},

	// system.
	{Mnemonic: "cpuid", Bytes: []byte{0x0f, 0xa2}, OpcodeLength: 2, ModRMReg: -1, Category: CategorySystem},
	{Mnemonic: "wbinvd", Bytes: []byte{0x0f, 0x09}, OpcodeLength: 2, ModRMReg: -1, Category: CategorySystem},
	{Mnemonic: "invd", Bytes: []byte{0x0f, 0x08}, OpcodeLength: 2, ModRMReg: -1, Category: CategorySystem},
	{Mnemonic: "wrmsr", Bytes: []byte{0x0f, 0x30}, OpcodeLength: 2, ModRMReg: -1, Category: CategorySystem},
	{Mnemonic: "rdmsr", Bytes: []byte{0x0f, 0x32}, OpcodeLength: 2, ModRMReg: -1, Category: CategorySystem},

	// cet / endbr (classified as misc; cet occasionally acts as a nop).
	{Mnemonic: "endbr64", Bytes: []byte{0xf3, 0x0f, 0x1e, 0xfa}, OpcodeLength: 4, OpcodeSize: 64, ModRMReg: -1, Category: CategoryMisc},
	{Mnemonic: "endbr32", Bytes: []byte{0xf3, 0x0f, 0x1e, 0xfb}, OpcodeLength: 4, OpcodeSize: 32, ModRMReg: -1, Category: CategoryMisc},

	// segment load/store ops (treated as data movement).
	{Mnemonic: "lds r16, m16:16", Bytes: []byte{0xc5}, OpcodeLength: 1, OpcodeSize: 16, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "les r16, m16:16", Bytes: []byte{0xc4}, OpcodeLength: 1, OpcodeSize: 16, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "lfs r16-64, m16:16-32", Bytes: []byte{0x0f, 0xb4}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "lgs r16-64, m16:16-32", Bytes: []byte{0x0f, 0xb5}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "lss r16-64, m16:16-32", Bytes: []byte{0x0f, 0xb2}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryData},

	// additional common instructions.
	{Mnemonic: "cwde", Bytes: []byte{0x98}, OpcodeLength: 1, OpcodeSize: 32, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "cdqe", Bytes: []byte{0x98}, OpcodeLength: 1, OpcodeSize: 64, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "cwd", Bytes: []byte{0x99}, OpcodeLength: 1, OpcodeSize: 16, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "cdq", Bytes: []byte{0x99}, OpcodeLength: 1, OpcodeSize: 32, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "cqo", Bytes: []byte{0x99}, OpcodeLength: 1, OpcodeSize: 64, ModRMReg: -1, Category: CategoryArith},
	{Mnemonic: "xlat", Bytes: []byte{0xd7}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryData},
	{Mnemonic: "wait", Bytes: []byte{0x9b}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryMisc},
	{Mnemonic: "fwait", Bytes: []byte{0x9b}, OpcodeLength: 1, ModRMReg: -1, Category: CategoryMisc},

	// arithmetic with 8-bit immediate (group /0-/7 on opcode 0x83).
	{Mnemonic: "add r/m16-64, imm8", Bytes: []byte{0x83}, OpcodeLength: 1, InstructionLength: 1, ModRM: true, ModRMReg: 0, Category: CategoryArith},
	{Mnemonic: "or r/m16-64, imm8", Bytes: []byte{0x83}, OpcodeLength: 1, InstructionLength: 1, ModRM: true, ModRMReg: 1, Category: CategoryLogic},
	{Mnemonic: "adc r/m16-64, imm8", Bytes: []byte{0x83}, OpcodeLength: 1, InstructionLength: 1, ModRM: true, ModRMReg: 2, Category: CategoryArith},
	{Mnemonic: "sbb r/m16-64, imm8", Bytes: []byte{0x83}, OpcodeLength: 1, InstructionLength: 1, ModRM: true, ModRMReg: 3, Category: CategoryArith},
	{Mnemonic: "and r/m16-64, imm8", Bytes: []byte{0x83}, OpcodeLength: 1, InstructionLength: 1, ModRM: true, ModRMReg: 4, Category: CategoryLogic},
	{Mnemonic: "sub r/m16-64, imm8", Bytes: []byte{0x83}, OpcodeLength: 1, InstructionLength: 1, ModRM: true, ModRMReg: 5, Category: CategoryArith},
	{Mnemonic: "xor r/m16-64, imm8", Bytes: []byte{0x83}, OpcodeLength: 1, InstructionLength: 1, ModRM: true, ModRMReg: 6, Category: CategoryLogic},
	{Mnemonic: "cmp r/m16-64, imm8", Bytes: []byte{0x83}, OpcodeLength: 1, InstructionLength: 1, ModRM: true, ModRMReg: 7, Category: CategoryArith},

	// arithmetic with 32-bit and 8-bit immediates (groups on opcodes 0x81/0x80).
	{Mnemonic: "add r/m16-64, imm32", Bytes: []byte{0x81}, OpcodeLength: 1, InstructionLength: 4, ModRM: true, ModRMReg: 0, Category: CategoryArith},
	{Mnemonic: "or r/m16-64, imm32", Bytes: []byte{0x81}, OpcodeLength: 1, InstructionLength: 4, ModRM: true, ModRMReg: 1, Category: CategoryLogic},
	{Mnemonic: "adc r/m16-64, imm32", Bytes: []byte{0x81}, OpcodeLength: 1, InstructionLength: 4, ModRM: true, ModRMReg: 2, Category: CategoryArith},
	{Mnemonic: "sbb r/m16-64, imm32", Bytes: []byte{0x81}, OpcodeLength: 1, InstructionLength: 4, ModRM: true, ModRMReg: 3, Category: CategoryArith},
	{Mnemonic: "xor r/m16-64, imm32", Bytes: []byte{0x81}, OpcodeLength: 1, InstructionLength: 4, ModRM: true, ModRMReg: 6, Category: CategoryLogic},
	{Mnemonic: "add r/m8, imm8", Bytes: []byte{0x80}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 0, Category: CategoryArith},
	{Mnemonic: "adc r/m8, imm8", Bytes: []byte{0x80}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 2, Category: CategoryArith},
	{Mnemonic: "sub r/m8, imm8", Bytes: []byte{0x80}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 5, Category: CategoryArith},
	{Mnemonic: "cmp r/m8, imm8", Bytes: []byte{0x80}, OpcodeLength: 1, InstructionLength: 1, OpcodeSize: 8, ModRM: true, ModRMReg: 7, Category: CategoryArith},
}
