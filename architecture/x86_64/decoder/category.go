package decoder

// Category classifies a decoded instruction into a coarse semantic family.
type Category int

const (
	CategoryInvalid Category = iota // invalid instruction.
	CategoryData                    // data movement (mov, xchg, push, pop, lea, cmov, string ops).
	CategoryArith                   // arithmetic (add, sub, mul, div, imul, idiv, inc, dec, ...).
	CategoryLogic                   // logic (and, or, xor, test, not, neg, shifts, rotates, bit ops).
	CategoryControl                 // control flow (jmp, conditional jumps, calls, returns, loops).
	CategorySystem                  // system (int, syscall, hlt, cpuid, msr ops, ...).
	CategoryFlag                    // reads or writes e/rflags (stc, clc, cmc, std, cld, lahf, sahf, pushf, popf).
	CategoryMisc                    // miscellaneous (nop, pause, ud2, rdtsc, endbr32/64, etc).

	CategorySSE    // sse instructions (movaps, addps, mulps, etc).
	CategorySSE2   // sse2 instructions (movapd, addpd, mulpd, integer simd, etc).
	CategorySSE3   // sse3 instructions (haddps, addsubpd, etc).
	CategorySSSE3  // ssse3 instructions (pshufb, pabsb, etc).
	CategorySSE41  // sse4.1 instructions (dpps, ptest, pmulld, etc).
	CategorySSE42  // sse4.2 instructions (pcmpgtq, crc32, popcnt).
	CategoryAVX    // avx instructions (vmovaps, vaddps, etc).
	CategoryAVX2   // avx2 instructions (vpmovmskb, vpermq, etc).
	CategoryAVX512 // avx512 instructions (vmovaps, vaddps with evex encoding).
)

// String renders the category the way a diagnostic listing would print it.
func (c Category) String() string {
	switch c {
	case CategoryInvalid:
		return "invalid"
	case CategoryData:
		return "data"
	case CategoryArith:
		return "arith"
	case CategoryLogic:
		return "logic"
	case CategoryControl:
		return "control"
	case CategorySystem:
		return "system"
	case CategoryFlag:
		return "flag"
	case CategoryMisc:
		return "misc"
	case CategorySSE:
		return "sse"
	case CategorySSE2:
		return "sse2"
	case CategorySSE3:
		return "sse3"
	case CategorySSSE3:
		return "ssse3"
	case CategorySSE41:
		return "sse4.1"
	case CategorySSE42:
		return "sse4.2"
	case CategoryAVX:
		return "avx"
	case CategoryAVX2:
		return "avx2"
	case CategoryAVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// GetType returns the category of a decoded instruction. An invalid or nil
// instruction reports CategoryInvalid.
func GetType(inst *Instruction) Category {
	if inst == nil {
		return CategoryInvalid
	}
	return inst.Record.Category
}
