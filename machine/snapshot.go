// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/tom/internal"
)

// Snapshot is a copy of the observable machine state.
type Snapshot struct {
	Register [REGISTER_COUNT]int // Register values, indexed by Register.
	Zx       int                 // Comparison flag.
	Steps    int                 // Lines executed since the last reset.
	Log      []string            // Execution log entries.
}

// Snapshot returns a copy of the current machine state.
func (m *Machine) Snapshot() (snap Snapshot) {
	m.lock.Lock()
	defer m.lock.Unlock()

	snap = Snapshot{
		Register: m.Register,
		Zx:       m.Zx,
		Steps:    m.Steps,
		Log:      slices.Clone(m.entries),
	}

	return
}

// Value returns the value of a register, or 0 for an invalid register.
func (snap Snapshot) Value(reg Register) int {
	if !reg.Valid() {
		return 0
	}

	return snap.Register[reg]
}

// Registers returns the register values keyed by register name.
func (snap Snapshot) Registers() map[string]int {
	regs := make(map[string]int, REGISTER_COUNT)
	for reg := range Registers() {
		regs[reg.String()] = snap.Register[reg]
	}

	return regs
}

// LogText returns the log entries, one per line.
func (snap Snapshot) LogText() string {
	return strings.Join(snap.Log, "\n")
}

// Rows iterates over the register panel: each register as 8 binary digits,
// followed by ZX in decimal.
func (snap Snapshot) Rows() iter.Seq2[string, string] {
	var registers iter.Seq2[string, string] = func(yield func(name, value string) bool) {
		for reg := range Registers() {
			if !yield(reg.String(), fmt.Sprintf("%08b", snap.Register[reg])) {
				return
			}
		}
	}

	var flag iter.Seq2[string, string] = func(yield func(name, value string) bool) {
		yield("ZX", strconv.Itoa(snap.Zx))
	}

	return internal.IterSeq2Concat(registers, flag)
}

// String returns the register panel as text.
func (snap Snapshot) String() (text string) {
	for name, value := range snap.Rows() {
		text += fmt.Sprintf("%v: %v\n", name, value)
	}

	return
}
