// Package chip8 implements the CHIP-8 virtual machine core: memory,
// registers, timers and the fetch-decode-execute loop. Presentation, input
// polling and audio live outside the core; the interpreter only talks to the
// narrow collaborator interfaces in peripheral.go.
package chip8

import (
	"math/rand"
	"time"
)

const (
	// StackDepth is the maximum number of nested calls, matching the
	// original hardware's 16-entry return stack.
	StackDepth = 16

	// NumKeys is the number of key lines on the hex keypad.
	NumKeys = 16

	// TimerInterval is the interval at which the delay and sound timers
	// count down (60 Hz).
	TimerInterval = time.Second / 60
)

// Interpreter executes one instruction per Step call, mutating its own
// state and requesting display effects through the Display collaborator.
// It is single threaded; the host loop decides the call cadence.
type Interpreter struct {
	// V[0x0]-V[0xF] are the general purpose 8-bit registers. V[0xF] is the
	// flags register used by the arithmetic, shift and draw instructions.
	V [16]uint8

	// I is the 16-bit index register. Memory accesses through it follow
	// the 12-bit address masking policy of Memory.
	I uint16

	// PC is the program counter.
	PC uint16

	// Stack holds return addresses; SP indexes the next free slot.
	Stack [StackDepth]uint16
	SP    int

	// DT and ST are the delay and sound timers. Both count down to zero at
	// 60 Hz, driven by Tick. The host beeps while ST is non-zero.
	DT uint8
	ST uint8

	Memory *Memory

	display Display
	keypad  Keypad
	rand    RandomSource

	lastTick time.Time
}

// noKeys is the keypad used when none is injected.
type noKeys struct{}

func (noKeys) KeyDown(uint8) bool { return false }

// mathRand draws bytes from the shared math/rand source.
type mathRand struct{}

func (mathRand) Byte() uint8 { return uint8(rand.Uint32()) }

// New creates an Interpreter with the font table seeded and PC at the
// program origin. The display collaborator is required; keypad and random
// source may be nil, defaulting to no keys pressed and math/rand.
func New(display Display, keypad Keypad) *Interpreter {
	if display == nil {
		panic("chip8: display collaborator is required")
	}
	if keypad == nil {
		keypad = noKeys{}
	}
	return &Interpreter{
		PC:      ProgramStart,
		Memory:  NewMemory(),
		display: display,
		keypad:  keypad,
		rand:    mathRand{},
	}
}

// SetRandomSource replaces the random byte source. Inject a deterministic
// source for testing.
func (c *Interpreter) SetRandomSource(r RandomSource) {
	if r != nil {
		c.rand = r
	}
}

// Load copies program verbatim into memory starting at the program origin
// and resets PC to it. No format validation is performed; malformed
// programs surface as opcode errors during execution.
func (c *Interpreter) Load(program []byte) error {
	if len(program) > MemorySize-ProgramStart {
		return &OutOfMemoryError{ProgramSize: len(program)}
	}
	c.Memory.BulkWrite(ProgramStart, program)
	c.PC = ProgramStart
	return nil
}

// Reset returns the machine to its power-on state: registers, stack and
// timers cleared, PC at the program origin, memory wiped and the font table
// re-seeded. A loaded program must be loaded again afterwards.
func (c *Interpreter) Reset() {
	c.V = [16]uint8{}
	c.I = 0
	c.PC = ProgramStart
	c.Stack = [StackDepth]uint16{}
	c.SP = 0
	c.DT = 0
	c.ST = 0
	c.lastTick = time.Time{}
	c.Memory = NewMemory()
	c.display.Clear()
}

// Tick advances the delay and sound timers toward zero at 60 Hz, based on
// the time elapsed since the previous call. The first call only latches the
// timestamp. Hosts call this once per frame with their frame time; the core
// never reads a live clock.
func (c *Interpreter) Tick(now time.Time) {
	if c.lastTick.IsZero() {
		c.lastTick = now
		return
	}
	for now.Sub(c.lastTick) >= TimerInterval {
		if c.DT > 0 {
			c.DT--
		}
		if c.ST > 0 {
			c.ST--
		}
		c.lastTick = c.lastTick.Add(TimerInterval)
	}
}

// Step fetches, decodes and executes one instruction. PC advances by two
// before the opcode runs, so skip instructions only add another two.
// Unknown opcodes and unbalanced call/return surface as errors; everything
// else wraps per the modular arithmetic rules instead of failing.
func (c *Interpreter) Step() error {
	word := c.Memory.Read16(c.PC)
	c.PC += 2

	in, err := Decode(word)
	if err != nil {
		return err
	}

	x, y := in.X, in.Y

	switch in.Op {
	case OpCls:
		c.display.Clear()

	case OpRet:
		if c.SP == 0 {
			return &StackUnderflowError{}
		}
		c.SP--
		c.PC = c.Stack[c.SP]

	case OpSys:
		// Legacy machine-code call, intentionally ignored.

	case OpJp:
		c.PC = in.NNN

	case OpCall:
		if c.SP >= StackDepth {
			return &StackOverflowError{Depth: StackDepth}
		}
		c.Stack[c.SP] = c.PC
		c.SP++
		c.PC = in.NNN

	case OpSeB:
		if c.V[x] == in.KK {
			c.PC += 2
		}

	case OpSneB:
		if c.V[x] != in.KK {
			c.PC += 2
		}

	case OpSeR:
		if c.V[x] == c.V[y] {
			c.PC += 2
		}

	case OpLdB:
		c.V[x] = in.KK

	case OpAddB:
		// Wraps at 8 bits. Only the register-register ADD sets VF.
		c.V[x] += in.KK

	case OpLdR:
		c.V[x] = c.V[y]

	case OpOr:
		c.V[x] |= c.V[y]

	case OpAnd:
		c.V[x] &= c.V[y]

	case OpXor:
		c.V[x] ^= c.V[y]

	case OpAddR:
		sum := uint16(c.V[x]) + uint16(c.V[y])
		c.V[x] = uint8(sum)
		if sum > 0xFF {
			c.V[0xF] = 1
		} else {
			c.V[0xF] = 0
		}

	case OpSub:
		// VF = 1 means no borrow occurred.
		vx, vy := c.V[x], c.V[y]
		if vx >= vy {
			c.V[0xF] = 1
		} else {
			c.V[0xF] = 0
		}
		c.V[x] = vx - vy

	case OpShr:
		// The Y nibble is ignored; VF captures the bit shifted out.
		c.V[0xF] = c.V[x] & 0x01
		c.V[x] >>= 1

	case OpSubn:
		vx, vy := c.V[x], c.V[y]
		if vy >= vx {
			c.V[0xF] = 1
		} else {
			c.V[0xF] = 0
		}
		c.V[x] = vy - vx

	case OpShl:
		c.V[0xF] = c.V[x] >> 7
		c.V[x] <<= 1

	case OpSneR:
		if c.V[x] != c.V[y] {
			c.PC += 2
		}

	case OpLdI:
		c.I = in.NNN

	case OpJpV0:
		c.PC = in.NNN + uint16(c.V[0])

	case OpRnd:
		c.V[x] = c.rand.Byte() & in.KK

	case OpDrw:
		c.draw(c.V[x], c.V[y], in.N)

	case OpSkp:
		if c.keypad.KeyDown(c.V[x] & 0x0F) {
			c.PC += 2
		}

	case OpSknp:
		if !c.keypad.KeyDown(c.V[x] & 0x0F) {
			c.PC += 2
		}

	case OpLdDT:
		c.V[x] = c.DT

	case OpLdKey:
		key, ok := c.firstKeyDown()
		if !ok {
			// No key down: retry this instruction on the next step.
			c.PC -= 2
			return nil
		}
		c.V[x] = key

	case OpStDT:
		c.DT = c.V[x]

	case OpStST:
		c.ST = c.V[x]

	case OpAddI:
		c.I += uint16(c.V[x])

	case OpLdF:
		c.I = GlyphAddr(c.V[x])

	case OpBCD:
		val := c.V[x]
		c.Memory.Write8(c.I, val/100)
		c.Memory.Write8(c.I+1, val/10%10)
		c.Memory.Write8(c.I+2, val%10)

	case OpStRegs:
		// I itself is left unchanged.
		for i := uint16(0); i <= uint16(x); i++ {
			c.Memory.Write8(c.I+i, c.V[i])
		}

	case OpLdRegs:
		for i := uint16(0); i <= uint16(x); i++ {
			c.V[i] = c.Memory.Read8(c.I + i)
		}
	}

	return nil
}

// draw XORs the n-byte sprite at memory[I..I+n) onto the display at (vx, vy)
// and sets VF when any lit pixel is erased. Start coordinates and sprite
// overflow wrap at the screen edges; sprite reads through I follow the
// memory masking policy.
func (c *Interpreter) draw(vx, vy, n uint8) {
	c.V[0xF] = 0
	for row := uint8(0); row < n; row++ {
		bits := c.Memory.Read8(c.I + uint16(row))
		for col := uint8(0); col < 8; col++ {
			on := bits&(0x80>>col) != 0
			if c.display.SetPixel(int(vx)+int(col), int(vy)+int(row), on) {
				c.V[0xF] = 1
			}
		}
	}
}

// firstKeyDown returns the lowest-numbered pressed key.
func (c *Interpreter) firstKeyDown() (uint8, bool) {
	for key := uint8(0); key < NumKeys; key++ {
		if c.keypad.KeyDown(key) {
			return key, true
		}
	}
	return 0, false
}
