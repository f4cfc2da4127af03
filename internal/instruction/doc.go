// Package instruction contains the CHIP-8 instruction set and its opcode codec.
//
// # Opcode Layout
//
// All instructions are 2 bytes, stored big endian. A word is split into four nibbles
// a, x, y and z, the low byte yz and the low 12 bits xyz:
//
//	a    x    y    z
//	1111 0000 0000 0000
//
// Decoding dispatches on a and refines on z for the 5xy_, 8xy_ and 9xy_ groups and on
// yz for the Ex__ and Fx__ groups. Words in those groups that are not assigned to an
// instruction fail to decode.
//
// # Instruction Set
//
// Every one of the 35 opcode families is its own comparable struct type implementing
// Instruction, so an interpreter can switch over the concrete types:
//   - Flow control: Cls, Ret, Sys, Jp, Call, JpV0
//   - Conditional skips: Se, Sne, SeReg, SneReg, Skp, Sknp
//   - Arithmetic and logic: LdReg, Or, And, Xor, Add, Sub, Subn, Shr, Shl, AddByte, Rnd
//   - Loads: LdByte, LdI, LdRegDT, LdKey, LdDT, LdST, AddI, LdFont, LdBCD,
//     StoreRegs, LoadRegs
//   - Graphics: Drw
//
// # Round Trip
//
// Decode(i.Encode()) returns i for every instruction with in-range operands, and every
// word that decodes encodes back to itself.
//
// # Usage Example
//
//	ins, ok := instruction.Decode(word)
//	if !ok {
//		return fmt.Errorf("unknown opcode $%04X", word)
//	}
//	fmt.Println(ins) // add V1, V2 for word $8124
package instruction
