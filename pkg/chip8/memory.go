package chip8

const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// AddrMask masks addresses to the 12 bits the machine can address.
	// Out-of-range accesses wrap around instead of faulting, matching the
	// hardware behaviour of a 12-bit address bus.
	AddrMask = 0x0FFF

	// ProgramStart is the address at which loaded programs begin execution.
	// The first 512 bytes belong to the interpreter and hold the font table.
	ProgramStart = 0x200

	// FontStart is the address of the built-in font table.
	FontStart = 0x000

	// FontGlyphSize is the number of bytes per font glyph (8x5 pixels).
	FontGlyphSize = 5
)

// fontTable holds the 16 built-in hexadecimal glyphs, 5 bytes each.
var fontTable = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the machine's 4KB byte-addressed memory. All accesses mask the
// address to 12 bits, so reads and writes past the end wrap back to the
// start. The font table is seeded at construction; programs are allowed to
// overwrite it.
type Memory struct {
	Data [MemorySize]byte
}

// NewMemory creates a Memory with the font table seeded at FontStart.
func NewMemory() *Memory {
	m := &Memory{}
	m.BulkWrite(FontStart, fontTable[:])
	return m
}

// Read8 returns the byte at addr.
func (m *Memory) Read8(addr uint16) byte {
	return m.Data[addr&AddrMask]
}

// Write8 stores val at addr.
func (m *Memory) Write8(addr uint16, val byte) {
	m.Data[addr&AddrMask] = val
}

// Read16 returns the big-endian 16-bit value at addr. This is the decoding
// primitive for instruction fetch.
func (m *Memory) Read16(addr uint16) uint16 {
	hi := uint16(m.Read8(addr))
	lo := uint16(m.Read8(addr + 1))
	return hi<<8 | lo
}

// Write16 stores the big-endian 16-bit value val at addr.
func (m *Memory) Write16(addr uint16, val uint16) {
	m.Write8(addr, byte(val>>8))
	m.Write8(addr+1, byte(val&0xFF))
}

// BulkWrite copies data into memory starting at addr. Each byte lands at the
// masked address, so writes past the end wrap like any other access.
func (m *Memory) BulkWrite(addr uint16, data []byte) {
	for i, b := range data {
		m.Write8(addr+uint16(i), b)
	}
}

// GlyphAddr returns the address of the font glyph for digit (0x0-0xF).
func GlyphAddr(digit uint8) uint16 {
	return FontStart + uint16(digit&0x0F)*FontGlyphSize
}
