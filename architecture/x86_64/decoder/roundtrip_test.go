package decoder_test

import (
	"testing"

	"github.com/keurnel/assembler/architecture/x86_64/decoder"
	keystone "github.com/moloch--/go-keystone"
)

// assemble is a small helper around go-keystone: it assembles a single
// Intel-syntax line and returns the resulting machine code, skipping the
// calling test if the engine can't be initialized in this environment.
func assemble(t *testing.T, asmLine string) []byte {
	t.Helper()

	ks, err := keystone.New(keystone.ARCH_X86, keystone.MODE_64)
	if err != nil {
		t.Skipf("keystone engine unavailable: %v", err)
	}
	defer ks.Close()

	code, _, ok := ks.Assemble(asmLine, 0)
	if !ok {
		t.Fatalf("keystone failed to assemble %q", asmLine)
	}
	return code
}

// TestDecodeSingleRoundTrip assembles known mnemonics with go-keystone and
// feeds the resulting bytes back through DecodeSingle, checking that the
// decoder recovers the same category and a length matching the assembled
// byte count.
func TestDecodeSingleRoundTrip(t *testing.T) {
	decoder.Begin(decoder.Context{})

	scenarios := []struct {
		name         string
		asmLine      string
		wantCategory decoder.Category
	}{
		{"mov", "mov rax, rbx", decoder.CategoryData},
		{"add", "add eax, ebx", decoder.CategoryArith},
		{"xor", "xor ecx, ecx", decoder.CategoryLogic},
		{"jmp short", "jmp $+2", decoder.CategoryControl},
		{"ret", "ret", decoder.CategoryControl},
		{"nop", "nop", decoder.CategoryMisc},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			code := assemble(t, scenario.asmLine)
			if len(code) == 0 {
				t.Fatalf("keystone produced no bytes for %q", scenario.asmLine)
			}

			inst := decoder.DecodeSingle(code)
			if !inst.Valid {
				t.Fatalf("DecodeSingle(%x) (from %q) reported invalid", code, scenario.asmLine)
			}
			if inst.Length != len(code) {
				t.Errorf("Length = %d, want %d (assembled byte count for %q)", inst.Length, len(code), scenario.asmLine)
			}
			if inst.Record.Category != scenario.wantCategory {
				t.Errorf("Category = %v, want %v", inst.Record.Category, scenario.wantCategory)
			}
		})
	}
}
