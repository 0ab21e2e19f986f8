package decoder_test

import (
	"testing"

	"github.com/keurnel/assembler/architecture/x86_64/decoder"
)

func TestDecodeSingleScenarios(t *testing.T) {
	scenarios := []struct {
		name         string
		bytes        []byte
		useSIMD      bool
		wantLength   int
		wantValid    bool
		wantCategory decoder.Category
		wantREX      byte
		wantPrefixes int
		wantMnemonic string
	}{
		{
			name:         "mov rbp, rsp",
			bytes:        []byte{0x48, 0x89, 0xe5},
			wantLength:   3,
			wantValid:    true,
			wantCategory: decoder.CategoryData,
			wantREX:      0x48,
			wantPrefixes: 1,
		},
		{
			name:         "mov eax, 42 (+rd, no REX)",
			bytes:        []byte{0xb8, 0x2a, 0x00, 0x00, 0x00},
			wantLength:   5,
			wantValid:    true,
			wantCategory: decoder.CategoryData,
			wantREX:      0,
			wantPrefixes: 0,
		},
		{
			name:         "je rel32",
			bytes:        []byte{0x0f, 0x84, 0x10, 0x00, 0x00, 0x00},
			wantLength:   6,
			wantValid:    true,
			wantCategory: decoder.CategoryControl,
		},
		{
			name:         "endbr64",
			bytes:        []byte{0xf3, 0x0f, 0x1e, 0xfa},
			wantLength:   4,
			wantValid:    true,
			wantCategory: decoder.CategoryMisc,
			wantPrefixes: 0,
		},
		{
			name:         "addpd xmm0, xmm1 with simd enabled",
			bytes:        []byte{0x66, 0x0f, 0x58, 0xc1},
			useSIMD:      true,
			wantLength:   4,
			wantValid:    true,
			wantCategory: decoder.CategorySSE2,
			wantPrefixes: 1, // the mandatory 0x66 byte is counted as a prefix.
		},
		{
			name:       "ret",
			bytes:      []byte{0xc3},
			wantLength: 1,
			wantValid:  true,
		},
		{
			name:         "call rax (group /2, not /4 jmp)",
			bytes:        []byte{0xff, 0xd0},
			wantLength:   2,
			wantValid:    true,
			wantCategory: decoder.CategoryControl,
			wantMnemonic: "call r/m64",
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			decoder.Begin(decoder.Context{UseSIMD: scenario.useSIMD})
			inst := decoder.DecodeSingle(scenario.bytes)

			if inst.Valid != scenario.wantValid {
				t.Fatalf("Valid = %v, want %v", inst.Valid, scenario.wantValid)
			}
			if inst.Length != scenario.wantLength {
				t.Errorf("Length = %d, want %d", inst.Length, scenario.wantLength)
			}
			if scenario.wantCategory != 0 && inst.Record.Category != scenario.wantCategory {
				t.Errorf("Category = %v, want %v", inst.Record.Category, scenario.wantCategory)
			}
			if inst.REXByte != scenario.wantREX {
				t.Errorf("REXByte = %#x, want %#x", inst.REXByte, scenario.wantREX)
			}
			if inst.PrefixCount != scenario.wantPrefixes {
				t.Errorf("PrefixCount = %d, want %d", inst.PrefixCount, scenario.wantPrefixes)
			}
			if scenario.wantMnemonic != "" && inst.Record.Mnemonic != scenario.wantMnemonic {
				t.Errorf("Mnemonic = %q, want %q", inst.Record.Mnemonic, scenario.wantMnemonic)
			}
		})
	}
}

func TestDecodeSingleSIMDDisabledFallsBackToUnrecognized(t *testing.T) {
	decoder.Begin(decoder.Context{UseSIMD: false})
	inst := decoder.DecodeSingle([]byte{0x66, 0x0f, 0x58, 0xc1})

	// With SIMD off, 0x66 parses as a legacy operand-size prefix and 0x0f 0x58
	// has no general-table entry, so the decode falls through to invalid.
	if inst.Valid {
		t.Fatalf("expected an unrecognized instruction with SIMD disabled, got %+v", inst.Record)
	}
	if inst.Length != 1 {
		t.Errorf("Length = %d, want 1 for an invalid instruction", inst.Length)
	}
}

func TestDecodeSingleEmptyInput(t *testing.T) {
	inst := decoder.DecodeSingle(nil)
	if inst.Valid {
		t.Fatal("expected empty input to be invalid")
	}
	if inst.Length != 0 {
		t.Errorf("Length = %d, want 0", inst.Length)
	}
}

func TestDisassembleStopsAtRet(t *testing.T) {
	decoder.Begin(decoder.Context{})
	fn := decoder.Disassemble([]byte{0xc3}, 0x1000)

	if fn.InstructionCount() != 1 {
		t.Fatalf("InstructionCount() = %d, want 1", fn.InstructionCount())
	}
	if fn.Length != 1 {
		t.Fatalf("Length = %d, want 1 consumed byte", fn.Length)
	}
	inst, ok := decoder.InstructionAt(fn, 0)
	if !ok || !inst.Valid {
		t.Fatalf("expected a single valid instruction, got %+v ok=%v", inst, ok)
	}
}

func TestDisassembleNopThenRet(t *testing.T) {
	decoder.Begin(decoder.Context{})
	fn := decoder.Disassemble([]byte{0x90, 0xc3}, 0x2000)

	if fn.InstructionCount() != 2 {
		t.Fatalf("InstructionCount() = %d, want 2", fn.InstructionCount())
	}
	if fn.Length != 2 {
		t.Fatalf("Length = %d, want 2 consumed bytes", fn.Length)
	}
	first, ok := decoder.InstructionAt(fn, 0)
	if !ok || first.Length != 1 {
		t.Fatalf("first instruction: got %+v ok=%v, want length 1", first, ok)
	}
	second, ok := decoder.InstructionAt(fn, 1)
	if !ok || second.Length != 1 {
		t.Fatalf("second instruction: got %+v ok=%v, want length 1", second, ok)
	}
}

func TestDisassembleLengthIsTotalBytesNotInstructionCount(t *testing.T) {
	decoder.Begin(decoder.Context{})
	// mov rbp, rsp (3 bytes); ret (1 byte) — two instructions, four bytes.
	fn := decoder.Disassemble([]byte{0x48, 0x89, 0xe5, 0xc3}, 0x4000)

	if fn.InstructionCount() != 2 {
		t.Fatalf("InstructionCount() = %d, want 2", fn.InstructionCount())
	}
	if fn.Length != 4 {
		t.Fatalf("Length = %d, want 4 consumed bytes", fn.Length)
	}
}

func TestDisassembleStopsOnDecodeFailure(t *testing.T) {
	decoder.Begin(decoder.Context{})
	// 0x0f 0xff matches no table entry, so the walk must end on that failed
	// decode rather than loop forever.
	fn := decoder.Disassemble([]byte{0x0f, 0xff, 0xff}, 0x3000)

	count := fn.InstructionCount()
	if count == 0 {
		t.Fatal("expected at least one (failing) instruction in the walk")
	}
	last, ok := decoder.InstructionAt(fn, count-1)
	if !ok {
		t.Fatal("expected the last instruction to be retrievable")
	}
	if last.Valid {
		t.Fatalf("last instruction = %+v, want the invalid decode that ended the walk", last.Record)
	}
}
