// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"log"
	"strconv"
	"sync"
)

const (
	COMMAND_LIMIT = 10_000 // Maximum executed lines per run.
)

// Machine is the interpreter state: registers, comparison flag, program
// counter and execution log.
//
// Run and Reset hold an internal lock, so at most one run is active on a
// Machine at a time. Use Snapshot to observe the state, and SetVerbose to
// change logging, from other goroutines.
type Machine struct {
	Register [REGISTER_COUNT]int // Register bank.
	Zx       int                 // Comparison flag, 0 or 1.
	Pc       int                 // Zero-based index of the line being executed.
	Steps    int                 // Lines executed since the last reset.

	lock    sync.Mutex
	verbose bool
	entries []string
}

// NewMachine creates a machine in the reset state.
func NewMachine() (m *Machine) {
	m = &Machine{}
	m.reset()

	return
}

// SetVerbose enables or disables verbose logging.
func (m *Machine) SetVerbose(verbose bool) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.verbose = verbose
}

// Reset reinitializes all registers, the flag, the counter, and the log.
func (m *Machine) Reset() {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.reset()
}

func (m *Machine) reset() {
	if m.verbose {
		log.Printf("machine: reset")
	}

	clear(m.Register[:])
	m.Zx = 0
	m.Pc = 0
	m.Steps = 0
	m.entries = []string{f("Resetting all registers to their defaults...")}
}

// Run resets the machine, then executes the program text until it runs past
// its last line, or until COMMAND_LIMIT lines have been executed.
//
// Failures never escape Run; they are recorded in the log.
func (m *Machine) Run(code string) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.reset()

	lines := SplitLines(code)
	for m.Pc < len(lines) {
		m.Pc = m.step(lines[m.Pc])
		m.Steps++
		if m.Steps >= COMMAND_LIMIT {
			m.addLog(f("*** ERROR: Too many commands; exiting. ***"))
			if m.verbose {
				log.Printf("machine: command limit after %v lines", m.Steps)
			}
			return
		}
	}

	if m.verbose {
		log.Printf("machine: done after %v lines", m.Steps)
	}
}

// step executes the line at the program counter, returning the next
// program counter.
func (m *Machine) step(line string) (next int) {
	next = m.Pc + 1

	ins, err := DecodeLine(m.Pc+1, line)
	if m.verbose {
		if err != nil {
			log.Printf("machine: %v", err)
		} else {
			log.Printf("machine: line %v: %v", m.Pc+1, ins)
		}
	}
	if err != nil {
		m.addLog(f("*** ERROR: Unknown command; Remember, all commands and registers are case-sensitive. ***"))
		return
	}

	if ins.Op.IsJump() {
		return m.branch(ins, next)
	}

	m.alu(ins)

	return
}

// alu executes a register instruction.
func (m *Machine) alu(ins Instruction) {
	src := m.Register[ins.Src]
	dst := m.Register[ins.Dst]

	switch ins.Op {
	case OP_MOV:
		m.write(ins.Dst, ins.Value, f("Moving %v into %v", strconv.Itoa(ins.Value), ins.Dst))
	case OP_ADD:
		m.write(ins.Dst, dst+src, f("Adding %v to %v", ins.Src, ins.Dst))
	case OP_SUB:
		m.write(ins.Dst, dst-src, f("Subtracting %v from %v", ins.Src, ins.Dst))
	case OP_COPY:
		m.write(ins.Dst, src, f("Copying %v to %v", ins.Src, ins.Dst))
	case OP_AND:
		m.write(ins.Dst, dst&src, f("ANDing %v with %v", ins.Src, ins.Dst))
	case OP_OR:
		m.write(ins.Dst, dst|src, f("ORing %v with %v", ins.Src, ins.Dst))
	case OP_CMP:
		m.Zx = 0
		if dst == src {
			m.Zx = 1
		}
		m.write(ins.Dst, dst, f("Comparing %v with %v", ins.Src, ins.Dst))
	}
}

// branch executes a jump instruction, returning the next program counter.
// Untaken conditional jumps log nothing.
func (m *Machine) branch(ins Instruction, next int) int {
	target := strconv.Itoa(ins.Value)

	switch ins.Op {
	case OP_JMP:
		next = m.jump(ins.Value, f("Jumping to line %v", target))
	case OP_JEQ:
		if m.Zx == 1 {
			next = m.jump(ins.Value, f("ZX is 1. Jumping to line %v", target))
		}
	case OP_JNEQ:
		if m.Zx == 0 {
			next = m.jump(ins.Value, f("ZX is 0. Jumping to line %v", target))
		}
	}

	return next
}

// jump logs the jump and returns the program counter of the 1-based target
// line. Line 0 does not exist; execution continues after the jump.
func (m *Machine) jump(target int, message string) (next int) {
	if target < 1 {
		m.addLog(f("*** ERROR: Line %v does not exist. ***", strconv.Itoa(target)))
		return m.Pc + 1
	}

	m.addLog(message)

	return target - 1
}

// write stores a value into a register, clamping it to the register range.
// A clamp warning replaces the success message.
func (m *Machine) write(reg Register, value int, message string) {
	m.Register[reg] = value

	if m.clamp(reg) {
		return
	}

	m.addLog(message)
}

// clamp forces an out of range register to the nearest bound.
func (m *Machine) clamp(reg Register) bool {
	lineno := strconv.Itoa(m.Pc + 1)

	switch {
	case m.Register[reg] < REGISTER_MIN:
		m.addLog(f("*** WARNING: Line %v has set %v to a value below 0. It has been clamped to 0.***", lineno, reg))
		m.Register[reg] = REGISTER_MIN
		return true
	case m.Register[reg] > REGISTER_MAX:
		m.addLog(f("*** WARNING: Line %v has set %v to a value above 255. It has been clamped to 255.***", lineno, reg))
		m.Register[reg] = REGISTER_MAX
		return true
	}

	return false
}

// addLog appends an entry for the line at the program counter.
func (m *Machine) addLog(message string) {
	m.entries = append(m.entries, f("Line %v: %v", strconv.Itoa(m.Pc+1), message))
}
