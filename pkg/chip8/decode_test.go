package chip8

import (
	"errors"
	"testing"
)

func TestDecodeFields(t *testing.T) {
	in, err := Decode(0xD125)
	if err != nil {
		t.Fatalf("Decode(0xD125): unexpected error: %v", err)
	}
	if in.Op != OpDrw {
		t.Errorf("expected OpDrw, got %d", in.Op)
	}
	if in.X != 0x1 || in.Y != 0x2 || in.N != 0x5 {
		t.Errorf("expected X=1 Y=2 N=5, got X=%X Y=%X N=%X", in.X, in.Y, in.N)
	}
	if in.KK != 0x25 || in.NNN != 0x125 {
		t.Errorf("expected KK=25 NNN=125, got KK=%02X NNN=%03X", in.KK, in.NNN)
	}
	if in.Raw != 0xD125 {
		t.Errorf("expected Raw=D125, got %04X", in.Raw)
	}
}

func TestDecodeOpcodes(t *testing.T) {
	cases := []struct {
		word uint16
		op   Op
	}{
		{0x00E0, OpCls},
		{0x00EE, OpRet},
		{0x0123, OpSys},
		{0x1234, OpJp},
		{0x2345, OpCall},
		{0x3A42, OpSeB},
		{0x4A42, OpSneB},
		{0x5AB0, OpSeR},
		{0x6A42, OpLdB},
		{0x7A42, OpAddB},
		{0x8AB0, OpLdR},
		{0x8AB1, OpOr},
		{0x8AB2, OpAnd},
		{0x8AB3, OpXor},
		{0x8AB4, OpAddR},
		{0x8AB5, OpSub},
		{0x8AB6, OpShr},
		{0x8AB7, OpSubn},
		{0x8ABE, OpShl},
		{0x9AB0, OpSneR},
		{0xA123, OpLdI},
		{0xB123, OpJpV0},
		{0xCA42, OpRnd},
		{0xDAB5, OpDrw},
		{0xEA9E, OpSkp},
		{0xEAA1, OpSknp},
		{0xFA07, OpLdDT},
		{0xFA0A, OpLdKey},
		{0xFA15, OpStDT},
		{0xFA18, OpStST},
		{0xFA1E, OpAddI},
		{0xFA29, OpLdF},
		{0xFA33, OpBCD},
		{0xFA55, OpStRegs},
		{0xFA65, OpLdRegs},
	}
	for _, tc := range cases {
		in, err := Decode(tc.word)
		if err != nil {
			t.Errorf("Decode(0x%04X): unexpected error: %v", tc.word, err)
			continue
		}
		if in.Op != tc.op {
			t.Errorf("Decode(0x%04X): expected op %d, got %d", tc.word, tc.op, in.Op)
		}
	}
}

func TestDecodeUnknown(t *testing.T) {
	unknown := []uint16{0x5AB1, 0x8AB8, 0x8ABF, 0x9AB1, 0xEA00, 0xEAFF, 0xF000, 0xFAFF}
	for _, word := range unknown {
		_, err := Decode(word)
		var opErr *UnknownOpcodeError
		if !errors.As(err, &opErr) {
			t.Errorf("Decode(0x%04X): expected UnknownOpcodeError, got %v", word, err)
			continue
		}
		if opErr.Opcode != word {
			t.Errorf("Decode(0x%04X): error carries 0x%04X", word, opErr.Opcode)
		}
	}
}

func TestInstructionString(t *testing.T) {
	cases := []struct {
		word uint16
		want string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1234, "JP $234"},
		{0x2345, "CALL $345"},
		{0x6A42, "LD VA, $42"},
		{0x8AB4, "ADD VA, VB"},
		{0x8AB6, "SHR VA"},
		{0xA123, "LD I, $123"},
		{0xD125, "DRW V1, V2, $5"},
		{0xFA29, "LD F, VA"},
		{0xFA55, "LD [I], VA"},
	}
	for _, tc := range cases {
		in, err := Decode(tc.word)
		if err != nil {
			t.Errorf("Decode(0x%04X): unexpected error: %v", tc.word, err)
			continue
		}
		if got := in.String(); got != tc.want {
			t.Errorf("String(0x%04X): expected %q, got %q", tc.word, tc.want, got)
		}
	}
}
