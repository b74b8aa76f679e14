package chip8

// Display receives the interpreter's drawing effects. It owns the frame
// buffer; the interpreter only requests changes.
type Display interface {
	// Clear switches every pixel off.
	Clear()
	// SetPixel XORs on into the pixel at (x, y) and reports whether a lit
	// pixel was switched off (a sprite collision). Coordinates outside the
	// screen wrap around the edges.
	SetPixel(x, y int, on bool) bool
}

// Keypad reports the state of the 16 key lines.
type Keypad interface {
	KeyDown(key uint8) bool
}

// RandomSource supplies random bytes for the RND instruction.
type RandomSource interface {
	Byte() uint8
}
