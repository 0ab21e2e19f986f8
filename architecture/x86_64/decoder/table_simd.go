package decoder

// SIMDTable covers SSE through AVX512. Entries are consulted before
// GeneralTable whenever decoder.Context.UseSIMD is set, in the same
// declaration-order-as-priority scheme. Map-escape opcodes (0F 38 xx /
// 0F 3A xx, 3 significant bytes after the mandatory prefix) share no
// leading two bytes with any 2-byte entry, so no shorter pattern can match
// them first. The order follows original_source/include/simdx64.h's
// internal_simd_table.
var SIMDTable = []EncodingRecord{
	// SSE data movement.
	{Mnemonic: "movaps xmm, xmm/m128", Bytes: []byte{0x0f, 0x28}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "movaps xmm/m128, xmm", Bytes: []byte{0x0f, 0x29}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "movups xmm, xmm/m128", Bytes: []byte{0x0f, 0x10}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "movups xmm/m128, xmm", Bytes: []byte{0x0f, 0x11}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "movss xmm, xmm/m32", Bytes: []byte{0x0f, 0x10}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, HasSIMDPrefix: 0xf3, SIMDSize: 128, SIMDType: SIMDScalarSingle},
	{Mnemonic: "movss xmm/m32, xmm", Bytes: []byte{0x0f, 0x11}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, HasSIMDPrefix: 0xf3, SIMDSize: 128, SIMDType: SIMDScalarSingle},

	// SSE arithmetic.
	{Mnemonic: "addps xmm, xmm/m128", Bytes: []byte{0x0f, 0x58}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "addss xmm, xmm/m32", Bytes: []byte{0x0f, 0x58}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, HasSIMDPrefix: 0xf3, SIMDSize: 128, SIMDType: SIMDScalarSingle},
	{Mnemonic: "subps xmm, xmm/m128", Bytes: []byte{0x0f, 0x5c}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "subss xmm, xmm/m32", Bytes: []byte{0x0f, 0x5c}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, HasSIMDPrefix: 0xf3, SIMDSize: 128, SIMDType: SIMDScalarSingle},
	{Mnemonic: "mulps xmm, xmm/m128", Bytes: []byte{0x0f, 0x59}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "mulss xmm, xmm/m32", Bytes: []byte{0x0f, 0x59}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, HasSIMDPrefix: 0xf3, SIMDSize: 128, SIMDType: SIMDScalarSingle},
	{Mnemonic: "divps xmm, xmm/m128", Bytes: []byte{0x0f, 0x5e}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "divss xmm, xmm/m32", Bytes: []byte{0x0f, 0x5e}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, HasSIMDPrefix: 0xf3, SIMDSize: 128, SIMDType: SIMDScalarSingle},

	// SSE comparison.
	{Mnemonic: "cmpps xmm, xmm/m128, imm8", Bytes: []byte{0x0f, 0xc2}, OpcodeLength: 2, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "cmpss xmm, xmm/m32, imm8", Bytes: []byte{0x0f, 0xc2}, OpcodeLength: 2, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategorySSE, HasSIMDPrefix: 0xf3, SIMDSize: 128, SIMDType: SIMDScalarSingle},

	// SSE logical.
	{Mnemonic: "andps xmm, xmm/m128", Bytes: []byte{0x0f, 0x54}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "orps xmm, xmm/m128", Bytes: []byte{0x0f, 0x56}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "xorps xmm, xmm/m128", Bytes: []byte{0x0f, 0x57}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "andnps xmm, xmm/m128", Bytes: []byte{0x0f, 0x55}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},

	// SSE shuffle/unpack.
	{Mnemonic: "shufps xmm, xmm/m128, imm8", Bytes: []byte{0x0f, 0xc6}, OpcodeLength: 2, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "unpckhps xmm, xmm/m128", Bytes: []byte{0x0f, 0x15}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "unpcklps xmm, xmm/m128", Bytes: []byte{0x0f, 0x14}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},

	// SSE conversion.
	{Mnemonic: "cvtpi2ps xmm, mm/m64", Bytes: []byte{0x0f, 0x2a}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "cvtps2pi mm, xmm/m64", Bytes: []byte{0x0f, 0x2d}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "cvtsi2ss xmm, r/m32-64", Bytes: []byte{0x0f, 0x2a}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, HasSIMDPrefix: 0xf3, SIMDSize: 128, SIMDType: SIMDScalarSingle},
	{Mnemonic: "cvtss2si r32-64, xmm/m32", Bytes: []byte{0x0f, 0x2d}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE, HasSIMDPrefix: 0xf3, SIMDSize: 128, SIMDType: SIMDScalarSingle},

	// SSE2 double-precision data movement.
	{Mnemonic: "movapd xmm, xmm/m128", Bytes: []byte{0x0f, 0x28}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "movapd xmm/m128, xmm", Bytes: []byte{0x0f, 0x29}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "movupd xmm, xmm/m128", Bytes: []byte{0x0f, 0x10}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "movupd xmm/m128, xmm", Bytes: []byte{0x0f, 0x11}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "movsd xmm, xmm/m64", Bytes: []byte{0x0f, 0x10}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0xf2, SIMDSize: 128, SIMDType: SIMDScalarDouble},
	{Mnemonic: "movsd xmm/m64, xmm", Bytes: []byte{0x0f, 0x11}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0xf2, SIMDSize: 128, SIMDType: SIMDScalarDouble},

	// SSE2 arithmetic.
	{Mnemonic: "addpd xmm, xmm/m128", Bytes: []byte{0x0f, 0x58}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "addsd xmm, xmm/m64", Bytes: []byte{0x0f, 0x58}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0xf2, SIMDSize: 128, SIMDType: SIMDScalarDouble},
	{Mnemonic: "subpd xmm, xmm/m128", Bytes: []byte{0x0f, 0x5c}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "subsd xmm, xmm/m64", Bytes: []byte{0x0f, 0x5c}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0xf2, SIMDSize: 128, SIMDType: SIMDScalarDouble},
	{Mnemonic: "mulpd xmm, xmm/m128", Bytes: []byte{0x0f, 0x59}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "mulsd xmm, xmm/m64", Bytes: []byte{0x0f, 0x59}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0xf2, SIMDSize: 128, SIMDType: SIMDScalarDouble},
	{Mnemonic: "divpd xmm, xmm/m128", Bytes: []byte{0x0f, 0x5e}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "divsd xmm, xmm/m64", Bytes: []byte{0x0f, 0x5e}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0xf2, SIMDSize: 128, SIMDType: SIMDScalarDouble},

	// SSE2 integer SIMD data movement.
	{Mnemonic: "movdqa xmm, xmm/m128", Bytes: []byte{0x0f, 0x6f}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "movdqa xmm/m128, xmm", Bytes: []byte{0x0f, 0x7f}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "movdqu xmm, xmm/m128", Bytes: []byte{0x0f, 0x6f}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0xf3, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "movdqu xmm/m128, xmm", Bytes: []byte{0x0f, 0x7f}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0xf3, SIMDSize: 128, SIMDType: SIMDInteger},

	// SSE2 packed integer arithmetic.
	{Mnemonic: "paddb xmm, xmm/m128", Bytes: []byte{0x0f, 0xfc}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "paddw xmm, xmm/m128", Bytes: []byte{0x0f, 0xfd}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "paddd xmm, xmm/m128", Bytes: []byte{0x0f, 0xfe}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "paddq xmm, xmm/m128", Bytes: []byte{0x0f, 0xd4}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "psubb xmm, xmm/m128", Bytes: []byte{0x0f, 0xf8}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "psubw xmm, xmm/m128", Bytes: []byte{0x0f, 0xf9}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "psubd xmm, xmm/m128", Bytes: []byte{0x0f, 0xfa}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "psubq xmm, xmm/m128", Bytes: []byte{0x0f, 0xfb}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},

	// SSE2 comparison.
	{Mnemonic: "cmppd xmm, xmm/m128, imm8", Bytes: []byte{0x0f, 0xc2}, OpcodeLength: 2, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "cmpsd xmm, xmm/m64, imm8", Bytes: []byte{0x0f, 0xc2}, OpcodeLength: 2, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0xf2, SIMDSize: 128, SIMDType: SIMDScalarDouble},

	// SSE2 logical.
	{Mnemonic: "pand xmm, xmm/m128", Bytes: []byte{0x0f, 0xdb}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "por xmm, xmm/m128", Bytes: []byte{0x0f, 0xeb}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "pxor xmm, xmm/m128", Bytes: []byte{0x0f, 0xef}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "pandn xmm, xmm/m128", Bytes: []byte{0x0f, 0xdf}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},

	// SSE2 shuffle/unpack.
	{Mnemonic: "shufpd xmm, xmm/m128, imm8", Bytes: []byte{0x0f, 0xc6}, OpcodeLength: 2, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "unpckhpd xmm, xmm/m128", Bytes: []byte{0x0f, 0x15}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "unpcklpd xmm, xmm/m128", Bytes: []byte{0x0f, 0x14}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},

	// SSE2 conversion.
	{Mnemonic: "cvtsi2sd xmm, r/m32-64", Bytes: []byte{0x0f, 0x2a}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0xf2, SIMDSize: 128, SIMDType: SIMDScalarDouble},
	{Mnemonic: "cvtsd2si r32-64, xmm/m64", Bytes: []byte{0x0f, 0x2d}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0xf2, SIMDSize: 128, SIMDType: SIMDScalarDouble},
	{Mnemonic: "cvtps2pd xmm, xmm/m64", Bytes: []byte{0x0f, 0x5a}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "cvtpd2ps xmm, xmm/m128", Bytes: []byte{0x0f, 0x5a}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE2, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},

	// SSE3.
	{Mnemonic: "addsubps xmm, xmm/m128", Bytes: []byte{0x0f, 0xd0}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE3, HasSIMDPrefix: 0xf2, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "addsubpd xmm, xmm/m128", Bytes: []byte{0x0f, 0xd0}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE3, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "haddps xmm, xmm/m128", Bytes: []byte{0x0f, 0x7c}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE3, HasSIMDPrefix: 0xf2, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "haddpd xmm, xmm/m128", Bytes: []byte{0x0f, 0x7c}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE3, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "hsubps xmm, xmm/m128", Bytes: []byte{0x0f, 0x7d}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE3, HasSIMDPrefix: 0xf2, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "hsubpd xmm, xmm/m128", Bytes: []byte{0x0f, 0x7d}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE3, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "movshdup xmm, xmm/m128", Bytes: []byte{0x0f, 0x16}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE3, HasSIMDPrefix: 0xf3, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "movsldup xmm, xmm/m128", Bytes: []byte{0x0f, 0x12}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE3, HasSIMDPrefix: 0xf3, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "movddup xmm, xmm/m64", Bytes: []byte{0x0f, 0x12}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE3, HasSIMDPrefix: 0xf2, SIMDSize: 128, SIMDType: SIMDScalarDouble},
	{Mnemonic: "lddqu xmm, m128", Bytes: []byte{0x0f, 0xf0}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE3, HasSIMDPrefix: 0xf2, SIMDSize: 128, SIMDType: SIMDInteger},

	// SSSE3 (4-byte map-escape opcodes, mandatory 0x66 prefix). Bytes holds
	// only the post-prefix opcode (0F 38/3A xx) — HasSIMDPrefix's byte is
	// matched separately by tryTable and must not also appear in Bytes,
	// since matchAndMeasure compares Bytes against the window *after* the
	// prefix has already been stripped off.
	{Mnemonic: "pshufb xmm, xmm/m128", Bytes: []byte{0x0f, 0x38, 0x00}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategorySSSE3, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "phaddw xmm, xmm/m128", Bytes: []byte{0x0f, 0x38, 0x01}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategorySSSE3, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "phaddd xmm, xmm/m128", Bytes: []byte{0x0f, 0x38, 0x02}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategorySSSE3, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "phaddsw xmm, xmm/m128", Bytes: []byte{0x0f, 0x38, 0x03}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategorySSSE3, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "pmaddubsw xmm, xmm/m128", Bytes: []byte{0x0f, 0x38, 0x04}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategorySSSE3, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "pabsb xmm, xmm/m128", Bytes: []byte{0x0f, 0x38, 0x1c}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategorySSSE3, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "pabsw xmm, xmm/m128", Bytes: []byte{0x0f, 0x38, 0x1d}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategorySSSE3, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "pabsd xmm, xmm/m128", Bytes: []byte{0x0f, 0x38, 0x1e}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategorySSSE3, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "palignr xmm, xmm/m128, imm8", Bytes: []byte{0x0f, 0x3a, 0x0f}, OpcodeLength: 3, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategorySSSE3, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},

	// SSE4.1.
	{Mnemonic: "dpps xmm, xmm/m128, imm8", Bytes: []byte{0x0f, 0x3a, 0x40}, OpcodeLength: 3, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategorySSE41, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "dppd xmm, xmm/m128, imm8", Bytes: []byte{0x0f, 0x3a, 0x41}, OpcodeLength: 3, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategorySSE41, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "blendps xmm, xmm/m128, imm8", Bytes: []byte{0x0f, 0x3a, 0x0c}, OpcodeLength: 3, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategorySSE41, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "blendpd xmm, xmm/m128, imm8", Bytes: []byte{0x0f, 0x3a, 0x0d}, OpcodeLength: 3, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategorySSE41, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "pmulld xmm, xmm/m128", Bytes: []byte{0x0f, 0x38, 0x40}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategorySSE41, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "pminsd xmm, xmm/m128", Bytes: []byte{0x0f, 0x38, 0x39}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategorySSE41, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "pmaxsd xmm, xmm/m128", Bytes: []byte{0x0f, 0x38, 0x3d}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategorySSE41, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "roundps xmm, xmm/m128, imm8", Bytes: []byte{0x0f, 0x3a, 0x08}, OpcodeLength: 3, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategorySSE41, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "roundpd xmm, xmm/m128, imm8", Bytes: []byte{0x0f, 0x3a, 0x09}, OpcodeLength: 3, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategorySSE41, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "ptest xmm, xmm/m128", Bytes: []byte{0x0f, 0x38, 0x17}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategorySSE41, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},

	// SSE4.2.
	{Mnemonic: "pcmpgtq xmm, xmm/m128", Bytes: []byte{0x0f, 0x38, 0x37}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategorySSE42, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "pcmpestri xmm, xmm/m128, imm8", Bytes: []byte{0x0f, 0x3a, 0x61}, OpcodeLength: 3, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategorySSE42, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "pcmpestrm xmm, xmm/m128, imm8", Bytes: []byte{0x0f, 0x3a, 0x60}, OpcodeLength: 3, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategorySSE42, HasSIMDPrefix: 0x66, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "crc32 r32, r/m8", Bytes: []byte{0x0f, 0x38, 0xf0}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategorySSE42, HasSIMDPrefix: 0xf2, OpcodeSize: 8, SIMDType: SIMDInteger},
	{Mnemonic: "crc32 r32, r/m32", Bytes: []byte{0x0f, 0x38, 0xf1}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategorySSE42, HasSIMDPrefix: 0xf2, OpcodeSize: 32, SIMDType: SIMDInteger},
	// crc32 r64, r/m64 additionally requires a REX.W byte between the
	// mandatory 0xF2 prefix and the 0F 38 F1 opcode (F2 REX.W 0F 38 F1 /r).
	// tryTable's single-mandatory-prefix model has no slot for an
	// interior REX byte, so no record matches this form: the REX byte sits
	// where the 0F of every 0xF2 record is expected, and the general table
	// has no 0F 38 entries either, so it decodes as unrecognized.
	{Mnemonic: "popcnt r16-64, r/m16-64", Bytes: []byte{0x0f, 0xb8}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategorySSE42, HasSIMDPrefix: 0xf3, SIMDType: SIMDInteger},

	// AVX2 (VEX-encoded, 2-byte C5 or 3-byte C4 escape).
	{Mnemonic: "vpaddb ymm, ymm, ymm/m256", Bytes: []byte{0xc5, 0xfc}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryAVX2, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDInteger},
	{Mnemonic: "vpaddw ymm, ymm, ymm/m256", Bytes: []byte{0xc5, 0xfd}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryAVX2, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDInteger},
	{Mnemonic: "vpaddd ymm, ymm, ymm/m256", Bytes: []byte{0xc5, 0xfe}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryAVX2, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDInteger},
	{Mnemonic: "vpaddq ymm, ymm, ymm/m256", Bytes: []byte{0xc4, 0xe2}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryAVX2, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDInteger},
	{Mnemonic: "vpsubb ymm, ymm, ymm/m256", Bytes: []byte{0xc5, 0xf8}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryAVX2, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDInteger},
	{Mnemonic: "vpsubw ymm, ymm, ymm/m256", Bytes: []byte{0xc5, 0xf9}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryAVX2, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDInteger},
	{Mnemonic: "vpsubd ymm, ymm, ymm/m256", Bytes: []byte{0xc5, 0xfa}, OpcodeLength: 2, ModRM: true, ModRMReg: -1, Category: CategoryAVX2, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDInteger},
	{Mnemonic: "vpsubq ymm, ymm, ymm/m256", Bytes: []byte{0xc4, 0xe2, 0xfb}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX2, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDInteger},
	{Mnemonic: "vpmulld ymm, ymm, ymm/m256", Bytes: []byte{0xc4, 0xe2, 0x7d, 0x40}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX2, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDInteger},
	{Mnemonic: "vpshufb ymm, ymm, ymm/m256", Bytes: []byte{0xc4, 0xe2, 0x7d, 0x00}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX2, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDInteger},
	{Mnemonic: "vbroadcastss ymm, m32", Bytes: []byte{0xc4, 0xe2, 0x7d, 0x18}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX2, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vbroadcastsd ymm, m64", Bytes: []byte{0xc4, 0xe2, 0x7d, 0x19}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX2, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDPackedDouble},
	{Mnemonic: "vperm2i128 ymm, ymm, ymm/m256, imm8", Bytes: []byte{0xc4, 0xe3, 0x7d, 0x46}, OpcodeLength: 4, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryAVX2, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDInteger},
	{Mnemonic: "vgatherdps ymm, vm32y, ymm", Bytes: []byte{0xc4, 0xe2, 0x7d, 0x92}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX2, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDPackedSingle},

	// AVX512 (EVEX, 4-byte 0x62 escape).
	{Mnemonic: "vmovaps zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0x7c}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vmovups zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0x7c, 0x10}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vmovapd zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0xfd}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedDouble},
	{Mnemonic: "vmovdqa32 zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0x7d, 0x6f}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDInteger},
	{Mnemonic: "vmovdqu32 zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0x7e, 0x6f}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDInteger},
	{Mnemonic: "vaddps zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0x7c, 0x58}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vaddpd zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0xfd, 0x58}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedDouble},
	{Mnemonic: "vsubps zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0x7c, 0x5c}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vsubpd zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0xfd, 0x5c}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedDouble},
	{Mnemonic: "vmulps zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0x7c, 0x59}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vmulpd zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0xfd, 0x59}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedDouble},
	{Mnemonic: "vdivps zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0x7c, 0x5e}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vdivpd zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0xfd, 0x5e}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedDouble},
	{Mnemonic: "vpaddd zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0x7d, 0xfe}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDInteger},
	{Mnemonic: "vpaddq zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0xfd, 0xd4}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDInteger},
	{Mnemonic: "vpsubd zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0x7d, 0xfa}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDInteger},
	{Mnemonic: "vpsubq zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0xfd, 0xfb}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDInteger},
	{Mnemonic: "vpmulld zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf2, 0x7d, 0x40}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDInteger},
	{Mnemonic: "vcmpps k, zmm, zmm/m512, imm8", Bytes: []byte{0x62, 0xf1, 0x7c, 0xc2}, OpcodeLength: 4, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vcmppd k, zmm, zmm/m512, imm8", Bytes: []byte{0x62, 0xf1, 0xfd, 0xc2}, OpcodeLength: 4, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedDouble},
	{Mnemonic: "vpandd zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0x7d, 0xdb}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDInteger},
	{Mnemonic: "vpandq zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0xfd, 0xdb}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDInteger},
	{Mnemonic: "vpord zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0x7d, 0xeb}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDInteger},
	{Mnemonic: "vporq zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0xfd, 0xeb}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDInteger},
	{Mnemonic: "vpxord zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0x7d, 0xef}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDInteger},
	{Mnemonic: "vpxorq zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0xfd, 0xef}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDInteger},
	{Mnemonic: "kmovb k, k/m8", Bytes: []byte{0x62, 0xf1, 0x7d, 0x90}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "kmovw k, k/m16", Bytes: []byte{0x62, 0xf1, 0x7c, 0x90}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "kmovd k, k/m32", Bytes: []byte{0x62, 0xf1, 0x7d, 0x92}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "kmovq k, k/m64", Bytes: []byte{0x62, 0xf1, 0xfd, 0x90}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "kandb k, k, k", Bytes: []byte{0x62, 0xf1, 0x0c, 0x41}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "kandd k, k, k", Bytes: []byte{0x62, 0xf1, 0xcc, 0x41}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "vshufps zmm, zmm, zmm/m512, imm8", Bytes: []byte{0x62, 0xf1, 0x7c, 0xc6}, OpcodeLength: 4, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vshufpd zmm, zmm, zmm/m512, imm8", Bytes: []byte{0x62, 0xf1, 0xfd, 0xc6}, OpcodeLength: 4, InstructionLength: 1, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedDouble},
	{Mnemonic: "vunpckhps zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0x7c, 0x15}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vunpcklps zmm, zmm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0x7c, 0x14}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vcvtps2pd zmm, ymm/m256", Bytes: []byte{0x62, 0xf1, 0x7c, 0x5a}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vcvtpd2ps ymm, zmm/m512", Bytes: []byte{0x62, 0xf1, 0xfd, 0x5a}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 512, SIMDType: SIMDPackedDouble},
	{Mnemonic: "vcvtsi2ss xmm, xmm, r/m32-64", Bytes: []byte{0x62, 0xf1, 0x7e, 0x2a}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 128, SIMDType: SIMDScalarSingle},
	{Mnemonic: "vcvtsi2sd xmm, xmm, r/m32-64", Bytes: []byte{0x62, 0xf1, 0xff, 0x2a}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 128, SIMDType: SIMDScalarDouble},
	{Mnemonic: "vcvtss2si r32-64, xmm/m32", Bytes: []byte{0x62, 0xf1, 0x7e, 0x2d}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 128, SIMDType: SIMDScalarSingle},
	{Mnemonic: "vcvtsd2si r32-64, xmm/m64", Bytes: []byte{0x62, 0xf1, 0xff, 0x2d}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX512, VEX: VEXEVEX, SIMDSize: 128, SIMDType: SIMDScalarDouble},

	// AVX (VEX-encoded 128/256-bit forms).
	{Mnemonic: "vmovaps xmm, xmm/m128", Bytes: []byte{0xc5, 0xf8, 0x28}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vmovaps ymm, ymm/m256", Bytes: []byte{0xc5, 0xfc, 0x28}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vmovups xmm, xmm/m128", Bytes: []byte{0xc5, 0xf8, 0x10}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vmovups ymm, ymm/m256", Bytes: []byte{0xc5, 0xfc, 0x10}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vaddps xmm, xmm, xmm/m128", Bytes: []byte{0xc5, 0xf8, 0x58}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vaddps ymm, ymm, ymm/m256", Bytes: []byte{0xc5, 0xfc, 0x58}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDPackedSingle},
	{Mnemonic: "vaddpd xmm, xmm, xmm/m128", Bytes: []byte{0xc5, 0xf9, 0x58}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDPackedDouble},
	{Mnemonic: "vaddpd ymm, ymm, ymm/m256", Bytes: []byte{0xc5, 0xfd, 0x58}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDPackedDouble},
	{Mnemonic: "vmovdqu xmm, xmm/m128", Bytes: []byte{0xc5, 0xfa, 0x6f}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "vmovdqu ymm, ymm/m256", Bytes: []byte{0xc5, 0xfe, 0x6f}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDInteger},
	{Mnemonic: "vmovdqa xmm, xmm/m128", Bytes: []byte{0xc5, 0xf9, 0x6f}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "vmovdqa ymm, ymm/m256", Bytes: []byte{0xc5, 0xfd, 0x6f}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 256, SIMDType: SIMDInteger},
	{Mnemonic: "vpaddd xmm, xmm, xmm/m128", Bytes: []byte{0xc5, 0xf9, 0xfe}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "vpsubd xmm, xmm, xmm/m128", Bytes: []byte{0xc5, 0xf9, 0xfa}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "vpmulld xmm, xmm, xmm/m128", Bytes: []byte{0xc4, 0xe2, 0x71, 0x40}, OpcodeLength: 4, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDInteger},
	{Mnemonic: "vmovss xmm, xmm, xmm/m32", Bytes: []byte{0xc5, 0xfa, 0x10}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDScalarSingle},
	{Mnemonic: "vmovsd xmm, xmm, xmm/m64", Bytes: []byte{0xc5, 0xfb, 0x10}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDScalarDouble},
	{Mnemonic: "vmulss xmm, xmm, xmm/m32", Bytes: []byte{0xc5, 0xfa, 0x59}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDScalarSingle},
	{Mnemonic: "vmulsd xmm, xmm, xmm/m64", Bytes: []byte{0xc5, 0xfb, 0x59}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDScalarDouble},
	{Mnemonic: "vaddss xmm, xmm, xmm/m32", Bytes: []byte{0xc5, 0xfa, 0x58}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDScalarSingle},
	{Mnemonic: "vaddsd xmm, xmm, xmm/m64", Bytes: []byte{0xc5, 0xfb, 0x58}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDScalarDouble},
	{Mnemonic: "vdivsd xmm, xmm, xmm/m64", Bytes: []byte{0xc5, 0xfb, 0x5e}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDScalarDouble},
	{Mnemonic: "vcvtss2sd xmm, xmm, xmm/m32", Bytes: []byte{0xc5, 0xfa, 0x5a}, OpcodeLength: 3, ModRM: true, ModRMReg: -1, Category: CategoryAVX, VEX: VEXTwoOrThreeByte, SIMDSize: 128, SIMDType: SIMDScalarSingle},
}
