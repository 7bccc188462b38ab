// Package machine implements the TOM register machine interpreter.
//
// The machine has eight 8-bit general-purpose registers (AX-HX), a one-bit
// comparison flag (ZX), and a program counter indexing the lines of the
// program text. Each line holds exactly one of ten instructions:
//
//	MOV <value>, <dst>
//	ADD <src>, <dst>
//	SUB <src>, <dst>
//	COPY <src>, <dst>
//	AND <src>, <dst>
//	OR <src>, <dst>
//	CMP <src>, <dst>
//	JMP <line>
//	JEQ <line>
//	JNEQ <line>
//
// Every executed line appends an entry to the execution log. Register
// writes outside of 0..255 are clamped to the nearest bound, and a run is
// abandoned after COMMAND_LIMIT executed lines.
package machine
