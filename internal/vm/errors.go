package vm

import "github.com/pkg/errors"

// Errors returned by Step, wrapped with the program counter and instruction context.
// Use errors.Is to check for them.
var (
	// ErrDecode is returned for opcode words that are not assigned to an instruction.
	ErrDecode = errors.New("undecodable opcode")
	// ErrOutOfBounds is returned when PC or an I relative memory range is past the end of memory.
	ErrOutOfBounds = errors.New("address out of bounds")
	// ErrStackOverflow is returned by CALL when all stack entries are in use.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned by RET on an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrInvalidKey is returned by SKP and SKNP when VX does not name a keypad key.
	ErrInvalidKey = errors.New("invalid key index")
)
