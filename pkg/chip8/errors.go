package chip8

import "fmt"

// An UnknownOpcodeError is returned when a fetched instruction matches no
// known opcode. It carries the raw instruction word for diagnostics.
type UnknownOpcodeError struct {
	Opcode uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%04x", e.Opcode)
}

// A StackUnderflowError is returned when RET executes with an empty call
// stack, which means the program has an unbalanced call/return.
type StackUnderflowError struct{}

func (e *StackUnderflowError) Error() string {
	return "return with empty call stack"
}

// A StackOverflowError is returned when CALL exceeds the call stack depth.
type StackOverflowError struct {
	Depth int
}

func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("call stack overflow (depth %d)", e.Depth)
}

// An OutOfMemoryError is returned when a program does not fit into the
// memory area above ProgramStart.
type OutOfMemoryError struct {
	ProgramSize int
}

func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("program size %d exceeds free memory (%d bytes)",
		e.ProgramSize, MemorySize-ProgramStart)
}
