// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"strconv"
)

// Op is an instruction mnemonic.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_UNKNOWN = Op(0)  // ?
	OP_MOV     = Op(1)  // MOV
	OP_ADD     = Op(2)  // ADD
	OP_SUB     = Op(3)  // SUB
	OP_COPY    = Op(4)  // COPY
	OP_AND     = Op(5)  // AND
	OP_OR      = Op(6)  // OR
	OP_CMP     = Op(7)  // CMP
	OP_JMP     = Op(8)  // JMP
	OP_JEQ     = Op(9)  // JEQ
	OP_JNEQ    = Op(10) // JNEQ
)

// Shape is the operand layout of an instruction.
type Shape int

const (
	SHAPE_NONE    = Shape(0) // No valid operands.
	SHAPE_IMM_REG = Shape(1) // <digits>, <REG>
	SHAPE_REG_REG = Shape(2) // <REG>, <REG>
	SHAPE_IMM     = Shape(3) // <digits>
)

// Shape returns the operand layout used by the mnemonic.
func (op Op) Shape() Shape {
	switch op {
	case OP_MOV:
		return SHAPE_IMM_REG
	case OP_ADD, OP_SUB, OP_COPY, OP_AND, OP_OR, OP_CMP:
		return SHAPE_REG_REG
	case OP_JMP, OP_JEQ, OP_JNEQ:
		return SHAPE_IMM
	}

	return SHAPE_NONE
}

// IsJump returns true for the control flow instructions.
func (op Op) IsJump() bool {
	return op.Shape() == SHAPE_IMM
}

// Instruction is a single decoded program line.
//
// Value holds the MOV immediate or the 1-based jump target line.
type Instruction struct {
	Op    Op
	Src   Register
	Dst   Register
	Value int
}

// String returns the canonical source text of the instruction.
func (ins Instruction) String() (out string) {
	switch ins.Op.Shape() {
	case SHAPE_IMM_REG:
		out = fmt.Sprintf("%v %v, %v", ins.Op, strconv.Itoa(ins.Value), ins.Dst)
	case SHAPE_REG_REG:
		out = fmt.Sprintf("%v %v, %v", ins.Op, ins.Src, ins.Dst)
	case SHAPE_IMM:
		out = fmt.Sprintf("%v %v", ins.Op, strconv.Itoa(ins.Value))
	default:
		out = ins.Op.String()
	}

	return
}
