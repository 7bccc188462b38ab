// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// opMap is a map of mnemonics to opcodes.
var opMap = map[string]Op{
	"MOV":  OP_MOV,
	"ADD":  OP_ADD,
	"SUB":  OP_SUB,
	"COPY": OP_COPY,
	"AND":  OP_AND,
	"OR":   OP_OR,
	"CMP":  OP_CMP,
	"JMP":  OP_JMP,
	"JEQ":  OP_JEQ,
	"JNEQ": OP_JNEQ,
}

// Operand grammars, matched against everything after "<mnemonic> ".
// Captures are digit runs and register names only.
var shapeMap = map[Shape]*regexp.Regexp{
	SHAPE_IMM_REG: regexp.MustCompile(`^([0-9]+), ([A-H]X)$`),
	SHAPE_REG_REG: regexp.MustCompile(`^([A-H]X), ([A-H]X)$`),
	SHAPE_IMM:     regexp.MustCompile(`^([0-9]+)$`),
}

// digitsOf converts a captured digit run, saturating at math.MaxInt.
func digitsOf(digits string) int {
	value, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}

	return value
}

// registerOf converts a captured register name.
func registerOf(name string) Register {
	return Register(name[0] - 'A')
}

// Decode classifies a whole line as exactly one instruction.
//
// On failure the returned instruction is OP_UNKNOWN, and the error is
// ErrCommandUnknown or ErrOperandInvalid.
func Decode(line string) (ins Instruction, err error) {
	mnemonic, operands, found := strings.Cut(line, " ")
	op, ok := opMap[mnemonic]
	if !found || !ok {
		err = ErrCommandUnknown
		return
	}

	match := shapeMap[op.Shape()].FindStringSubmatch(operands)
	if match == nil {
		err = ErrOperandInvalid
		return
	}

	ins.Op = op

	switch op.Shape() {
	case SHAPE_IMM_REG:
		ins.Value = digitsOf(match[1])
		ins.Dst = registerOf(match[2])
	case SHAPE_REG_REG:
		ins.Src = registerOf(match[1])
		ins.Dst = registerOf(match[2])
	case SHAPE_IMM:
		ins.Value = digitsOf(match[1])
	}

	return
}

// DecodeLine decodes the 1-based line lineno, reporting failures as
// ErrSyntax.
func DecodeLine(lineno int, line string) (ins Instruction, err error) {
	ins, err = Decode(line)
	if err != nil {
		err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
	}

	return
}

// lineBreaks are the line terminators of program text.
var lineBreaks = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\u0085", "\n",
	"\u2028", "\n",
	"\u2029", "\n",
)

// SplitLines trims the program text and splits it into source lines.
// "\r\n" is one line break; "\n", "\r", NEL (U+0085), LINE SEPARATOR
// (U+2028) and PARAGRAPH SEPARATOR (U+2029) each end a line.
func SplitLines(code string) (lines []string) {
	code = strings.TrimSpace(code)
	if len(code) == 0 {
		return
	}

	return strings.Split(lineBreaks.Replace(code), "\n")
}
