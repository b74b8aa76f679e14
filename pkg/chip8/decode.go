package chip8

import "fmt"

// Op identifies a decoded instruction.
type Op uint8

const (
	OpCls  Op = iota // 00E0: clear display
	OpRet            // 00EE: return from subroutine
	OpSys            // 0nnn: legacy syscall, ignored
	OpJp             // 1nnn: jump
	OpCall           // 2nnn: call subroutine
	OpSeB            // 3xkk: skip if Vx == kk
	OpSneB           // 4xkk: skip if Vx != kk
	OpSeR            // 5xy0: skip if Vx == Vy
	OpLdB            // 6xkk: Vx = kk
	OpAddB           // 7xkk: Vx += kk, no carry flag
	OpLdR            // 8xy0: Vx = Vy
	OpOr             // 8xy1
	OpAnd            // 8xy2
	OpXor            // 8xy3
	OpAddR           // 8xy4: Vx += Vy, VF = carry
	OpSub            // 8xy5: Vx -= Vy, VF = no borrow
	OpShr            // 8xy6: Vx >>= 1, VF = old bit 0
	OpSubn           // 8xy7: Vx = Vy - Vx, VF = no borrow
	OpShl            // 8xyE: Vx <<= 1, VF = old bit 7
	OpSneR           // 9xy0: skip if Vx != Vy
	OpLdI            // Annn: I = nnn
	OpJpV0           // Bnnn: jump to V0 + nnn
	OpRnd            // Cxkk: Vx = random byte & kk
	OpDrw            // Dxyn: draw sprite
	OpSkp            // Ex9E: skip if key Vx down
	OpSknp           // ExA1: skip if key Vx up
	OpLdDT           // Fx07: Vx = delay timer
	OpLdKey          // Fx0A: wait for key press
	OpStDT           // Fx15: delay timer = Vx
	OpStST           // Fx18: sound timer = Vx
	OpAddI           // Fx1E: I += Vx
	OpLdF            // Fx29: I = font glyph address for Vx
	OpBCD            // Fx33: memory[I..I+2] = BCD of Vx
	OpStRegs         // Fx55: memory[I..I+x] = V0..Vx
	OpLdRegs         // Fx65: V0..Vx = memory[I..I+x]
)

// Instruction is a decoded instruction word. The slice fields are fixed bit
// slices of the word, valid regardless of which opcode uses them.
type Instruction struct {
	Op  Op
	Raw uint16

	X   uint8  // second nibble, register index
	Y   uint8  // third nibble, register index
	N   uint8  // low nibble
	KK  uint8  // low byte
	NNN uint16 // low 12 bits, address
}

// Decode splits word into its fields and identifies the opcode. Unknown
// encodings return an UnknownOpcodeError carrying the raw word.
func Decode(word uint16) (Instruction, error) {
	in := Instruction{
		Raw: word,
		X:   uint8(word >> 8 & 0x0F),
		Y:   uint8(word >> 4 & 0x0F),
		N:   uint8(word & 0x0F),
		KK:  uint8(word & 0xFF),
		NNN: word & 0x0FFF,
	}

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00E0:
			in.Op = OpCls
		case 0x00EE:
			in.Op = OpRet
		default:
			in.Op = OpSys
		}
	case 0x1:
		in.Op = OpJp
	case 0x2:
		in.Op = OpCall
	case 0x3:
		in.Op = OpSeB
	case 0x4:
		in.Op = OpSneB
	case 0x5:
		if in.N != 0 {
			return in, &UnknownOpcodeError{Opcode: word}
		}
		in.Op = OpSeR
	case 0x6:
		in.Op = OpLdB
	case 0x7:
		in.Op = OpAddB
	case 0x8:
		switch in.N {
		case 0x0:
			in.Op = OpLdR
		case 0x1:
			in.Op = OpOr
		case 0x2:
			in.Op = OpAnd
		case 0x3:
			in.Op = OpXor
		case 0x4:
			in.Op = OpAddR
		case 0x5:
			in.Op = OpSub
		case 0x6:
			in.Op = OpShr
		case 0x7:
			in.Op = OpSubn
		case 0xE:
			in.Op = OpShl
		default:
			return in, &UnknownOpcodeError{Opcode: word}
		}
	case 0x9:
		if in.N != 0 {
			return in, &UnknownOpcodeError{Opcode: word}
		}
		in.Op = OpSneR
	case 0xA:
		in.Op = OpLdI
	case 0xB:
		in.Op = OpJpV0
	case 0xC:
		in.Op = OpRnd
	case 0xD:
		in.Op = OpDrw
	case 0xE:
		switch in.KK {
		case 0x9E:
			in.Op = OpSkp
		case 0xA1:
			in.Op = OpSknp
		default:
			return in, &UnknownOpcodeError{Opcode: word}
		}
	case 0xF:
		switch in.KK {
		case 0x07:
			in.Op = OpLdDT
		case 0x0A:
			in.Op = OpLdKey
		case 0x15:
			in.Op = OpStDT
		case 0x18:
			in.Op = OpStST
		case 0x1E:
			in.Op = OpAddI
		case 0x29:
			in.Op = OpLdF
		case 0x33:
			in.Op = OpBCD
		case 0x55:
			in.Op = OpStRegs
		case 0x65:
			in.Op = OpLdRegs
		default:
			return in, &UnknownOpcodeError{Opcode: word}
		}
	}
	return in, nil
}

// String renders the instruction as a conventional assembly mnemonic.
func (in Instruction) String() string {
	switch in.Op {
	case OpCls:
		return "CLS"
	case OpRet:
		return "RET"
	case OpSys:
		return fmt.Sprintf("SYS $%03X", in.NNN)
	case OpJp:
		return fmt.Sprintf("JP $%03X", in.NNN)
	case OpCall:
		return fmt.Sprintf("CALL $%03X", in.NNN)
	case OpSeB:
		return fmt.Sprintf("SE V%X, $%02X", in.X, in.KK)
	case OpSneB:
		return fmt.Sprintf("SNE V%X, $%02X", in.X, in.KK)
	case OpSeR:
		return fmt.Sprintf("SE V%X, V%X", in.X, in.Y)
	case OpLdB:
		return fmt.Sprintf("LD V%X, $%02X", in.X, in.KK)
	case OpAddB:
		return fmt.Sprintf("ADD V%X, $%02X", in.X, in.KK)
	case OpLdR:
		return fmt.Sprintf("LD V%X, V%X", in.X, in.Y)
	case OpOr:
		return fmt.Sprintf("OR V%X, V%X", in.X, in.Y)
	case OpAnd:
		return fmt.Sprintf("AND V%X, V%X", in.X, in.Y)
	case OpXor:
		return fmt.Sprintf("XOR V%X, V%X", in.X, in.Y)
	case OpAddR:
		return fmt.Sprintf("ADD V%X, V%X", in.X, in.Y)
	case OpSub:
		return fmt.Sprintf("SUB V%X, V%X", in.X, in.Y)
	case OpShr:
		return fmt.Sprintf("SHR V%X", in.X)
	case OpSubn:
		return fmt.Sprintf("SUBN V%X, V%X", in.X, in.Y)
	case OpShl:
		return fmt.Sprintf("SHL V%X", in.X)
	case OpSneR:
		return fmt.Sprintf("SNE V%X, V%X", in.X, in.Y)
	case OpLdI:
		return fmt.Sprintf("LD I, $%03X", in.NNN)
	case OpJpV0:
		return fmt.Sprintf("JP V0, $%03X", in.NNN)
	case OpRnd:
		return fmt.Sprintf("RND V%X, $%02X", in.X, in.KK)
	case OpDrw:
		return fmt.Sprintf("DRW V%X, V%X, $%X", in.X, in.Y, in.N)
	case OpSkp:
		return fmt.Sprintf("SKP V%X", in.X)
	case OpSknp:
		return fmt.Sprintf("SKNP V%X", in.X)
	case OpLdDT:
		return fmt.Sprintf("LD V%X, DT", in.X)
	case OpLdKey:
		return fmt.Sprintf("LD V%X, K", in.X)
	case OpStDT:
		return fmt.Sprintf("LD DT, V%X", in.X)
	case OpStST:
		return fmt.Sprintf("LD ST, V%X", in.X)
	case OpAddI:
		return fmt.Sprintf("ADD I, V%X", in.X)
	case OpLdF:
		return fmt.Sprintf("LD F, V%X", in.X)
	case OpBCD:
		return fmt.Sprintf("LD B, V%X", in.X)
	case OpStRegs:
		return fmt.Sprintf("LD [I], V%X", in.X)
	case OpLdRegs:
		return fmt.Sprintf("LD V%X, [I]", in.X)
	}
	return fmt.Sprintf(".word $%04X", in.Raw)
}
