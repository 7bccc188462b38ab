// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator binds a TOM machine to the program document it runs.
package emulator

import (
	"io/fs"
	"iter"
	"log"
	"sync"

	"github.com/ezrec/tom/document"
	"github.com/ezrec/tom/machine"
)

// Emulator state. Machine + Document.
type Emulator struct {
	Verbose  bool               // If set, enables verbose logging.
	*machine.Machine            // Reference to the interpreter.
	Document *document.Document // Reference to the program source.

	lock sync.Mutex
	runs int
}

// NewEmulator creates a new emulator with an empty document.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine:  machine.NewMachine(),
		Document: document.New(""),
	}

	return
}

// Load replaces the document with one read from a file system.
func (emu *Emulator) Load(filesys fs.FS, name string) (err error) {
	doc, err := document.Load(filesys, name)
	if err != nil {
		return
	}

	emu.lock.Lock()
	emu.Document = doc
	emu.lock.Unlock()

	if emu.Verbose {
		log.Printf("emulator: loaded %v (%v bytes)", name, len(doc.Text))
	}

	return
}

// Save writes the document to a file system.
func (emu *Emulator) Save(filesys document.CreateFS, name string) (err error) {
	emu.lock.Lock()
	doc := emu.Document
	emu.lock.Unlock()

	err = doc.Save(filesys, name)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: saved %v", name)
	}

	return
}

// SetText replaces the document text.
func (emu *Emulator) SetText(text string) {
	emu.lock.Lock()
	defer emu.lock.Unlock()

	emu.Document = document.New(text)
}

// Text returns the document text.
func (emu *Emulator) Text() string {
	emu.lock.Lock()
	defer emu.lock.Unlock()

	return emu.Document.Text
}

// Play runs the document text on a freshly reset machine.
func (emu *Emulator) Play() (snap machine.Snapshot) {
	text := emu.Text()

	emu.lock.Lock()
	defer emu.lock.Unlock()

	emu.runs++
	emu.Machine.SetVerbose(emu.Verbose)
	emu.Machine.Run(text)

	snap = emu.Machine.Snapshot()
	if emu.Verbose {
		log.Printf("emulator: run %v: %v lines executed, %v log entries", emu.runs, snap.Steps, len(snap.Log))
	}

	return
}

// Reset the machine state.
func (emu *Emulator) Reset() {
	emu.lock.Lock()
	defer emu.lock.Unlock()

	emu.Machine.SetVerbose(emu.Verbose)
	emu.Machine.Reset()
}

// Runs returns the number of completed Play calls.
func (emu *Emulator) Runs() int {
	emu.lock.Lock()
	defer emu.lock.Unlock()

	return emu.runs
}

// Panel returns an iterator over the register panel rows of the current
// machine state.
func (emu *Emulator) Panel() iter.Seq2[string, string] {
	return emu.Machine.Snapshot().Rows()
}
