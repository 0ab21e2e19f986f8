package decoder

// Legacy prefix byte values recognized by the classifier, named the way
// architecture/x86_64/instruction_prefix.go names its encode-side prefixes.
const (
	prefixLock        byte = 0xF0 // LOCK
	prefixRepNE       byte = 0xF2 // REPNE/REPNZ
	prefixRep         byte = 0xF3 // REP/REPE/REPZ
	prefixCS          byte = 0x2E // CS segment override
	prefixSS          byte = 0x36 // SS segment override
	prefixDS          byte = 0x3E // DS segment override
	prefixES          byte = 0x26 // ES segment override
	prefixFS          byte = 0x64 // FS segment override
	prefixGS          byte = 0x65 // GS segment override
	prefixOperandSize byte = 0x66 // operand-size override
	prefixAddressSize byte = 0x67 // address-size override
)

// prefixTag values as returned by the 256-entry classification table.
const (
	prefixTagNone   byte = 0 // not a prefix.
	prefixTagLegacy byte = 1 // legacy (segment/operand-size/address-size/lock/rep/repne).
	prefixTagREX    byte = 2 // REX.? prefix, 0x40-0x4F.
)

// prefixTable is a 256-entry lookup from byte value to prefixTag, populated
// once at package init. See original_source/include/asmx64.h's
// internal_prefix_table for the ground truth this mirrors.
var prefixTable [256]byte

func init() {
	for _, b := range []byte{
		prefixES, prefixCS, prefixSS, prefixDS, prefixFS, prefixGS,
		prefixOperandSize, prefixAddressSize,
		prefixLock, prefixRepNE, prefixRep,
	} {
		prefixTable[b] = prefixTagLegacy
	}
	for b := 0x40; b <= 0x4F; b++ {
		prefixTable[b] = prefixTagREX
	}
}

// maxPrefixCount bounds parsePrefixes: at most five prefix bytes are ever
// consumed before opcode matching begins.
const maxPrefixCount = 5

// parsePrefixes walks bytes from the start, classifying each against
// prefixTable. Legacy prefixes are consumed and the scan continues; a REX
// prefix is consumed and the scan stops immediately, since REX must be the
// last prefix before the opcode. Returns the number of bytes consumed and
// the REX byte seen (0 if none).
func parsePrefixes(bytes []byte) (prefixCount int, rex byte) {
	for prefixCount < len(bytes) && prefixCount < maxPrefixCount {
		b := bytes[prefixCount]
		tag := prefixTable[b]

		if tag == prefixTagNone {
			break
		}
		if tag == prefixTagREX {
			rex = b
			prefixCount++
			break
		}
		prefixCount++
	}
	return prefixCount, rex
}

// isF3PrefixContext reports whether a leading 0xF3 byte is acting as a REP
// prefix (true) rather than as the first byte of ENDBR32/ENDBR64
// (F3 0F 1E FA / F3 0F 1E FB). With fewer than four bytes available the
// common case — a genuine prefix — is assumed.
func isF3PrefixContext(bytes []byte) bool {
	if len(bytes) < 4 {
		return true
	}
	if bytes[0] == 0xf3 && bytes[1] == 0x0f && bytes[2] == 0x1e &&
		(bytes[3] == 0xfa || bytes[3] == 0xfb) {
		return false
	}
	return true
}
