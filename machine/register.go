// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"iter"
)

const (
	REGISTER_COUNT = 8   // Number of general-purpose registers.
	REGISTER_MIN   = 0   // Lowest value a register can hold.
	REGISTER_MAX   = 255 // Highest value a register can hold.
)

// Register is a general-purpose register index.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_AX = Register(0) // AX
	REG_BX = Register(1) // BX
	REG_CX = Register(2) // CX
	REG_DX = Register(3) // DX
	REG_EX = Register(4) // EX
	REG_FX = Register(5) // FX
	REG_GX = Register(6) // GX
	REG_HX = Register(7) // HX
)

// ParseRegister returns the register for an exact, case-sensitive name.
func ParseRegister(name string) (reg Register, ok bool) {
	if len(name) != 2 || name[1] != 'X' || name[0] < 'A' || name[0] > 'H' {
		return
	}

	return Register(name[0] - 'A'), true
}

// Valid returns true if the register is one of AX through HX.
func (reg Register) Valid() bool {
	return reg >= REG_AX && reg <= REG_HX
}

// Registers iterates over all registers in name order.
func Registers() iter.Seq[Register] {
	return func(yield func(Register) bool) {
		for reg := REG_AX; reg <= REG_HX; reg++ {
			if !yield(reg) {
				return
			}
		}
	}
}
