// Package peripherals holds host-side collaborators for the interpreter:
// the hex keypad state and sound capture for the sound timer.
package peripherals

// Keypad tracks the state of the 16-key hex keypad as a bitfield. The host
// shell presses and releases keys; the interpreter queries them through the
// KeyDown method.
type Keypad struct {
	state uint16
}

// NewKeypad creates a keypad with no keys down.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Press marks key (0x0-0xF) as down.
func (k *Keypad) Press(key uint8) {
	k.state |= 1 << (key & 0x0F)
}

// Release marks key as up.
func (k *Keypad) Release(key uint8) {
	k.state &^= 1 << (key & 0x0F)
}

// KeyDown reports whether key is down.
func (k *Keypad) KeyDown(key uint8) bool {
	return k.state&(1<<(key&0x0F)) != 0
}

// ReleaseAll lifts every key.
func (k *Keypad) ReleaseAll() {
	k.state = 0
}
