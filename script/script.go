// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script runs Starlark lesson scripts against an emulator.
//
// Scripts drive the machine and check its state with these builtins:
//
//	run(code)          replace the program text and run it
//	play()             run the current program text
//	reset()            reset the machine
//	register(name)     value of a register, such as "AX"
//	zx()               value of the comparison flag
//	log()              list of log entries
//	check(cond, msg)   record a failed check when cond is false
package script

import (
	"fmt"
	"io"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/tom/emulator"
	"github.com/ezrec/tom/machine"
)

// Script is the execution context of a single lesson script.
type Script struct {
	Verbose  bool               // If set, verbosely logs the script actions.
	Emulator *emulator.Emulator // Emulator the script drives.
	Output   io.Writer          // Destination of print() and check failures.

	checks int
	failed int
}

// Exec runs a script from source, which may be a string, []byte or
// io.Reader, on an emulator.
func Exec(emu *emulator.Emulator, filename string, src any, out io.Writer) (err error) {
	sc := &Script{
		Emulator: emu,
		Output:   out,
	}

	return sc.Exec(filename, src)
}

// Checks returns the number of checks evaluated, and how many failed.
func (sc *Script) Checks() (total, failed int) {
	return sc.checks, sc.failed
}

// Exec runs a script. Failed checks are reported as an *ErrCheck.
func (sc *Script) Exec(filename string, src any) (err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(sc.Output, msg)
		},
	}

	opts := syntax.FileOptions{}
	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, sc.predeclared())
	if err != nil {
		return
	}

	if sc.failed > 0 {
		err = &ErrCheck{Failed: sc.failed, Total: sc.checks}
	}

	return
}

func (sc *Script) predeclared() starlark.StringDict {
	return starlark.StringDict{
		"COMMAND_LIMIT": starlark.MakeInt(machine.COMMAND_LIMIT),
		"REGISTER_MAX":  starlark.MakeInt(machine.REGISTER_MAX),
		"run":           starlark.NewBuiltin("run", sc.run),
		"play":          starlark.NewBuiltin("play", sc.play),
		"reset":         starlark.NewBuiltin("reset", sc.reset),
		"register":      starlark.NewBuiltin("register", sc.register),
		"zx":            starlark.NewBuiltin("zx", sc.zx),
		"log":           starlark.NewBuiltin("log", sc.logEntries),
		"check":         starlark.NewBuiltin("check", sc.check),
	}
}

func (sc *Script) run(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var code string
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "code", &code)
	if err != nil {
		return
	}

	sc.Emulator.SetText(code)

	return sc.play(thread, b, nil, nil)
}

func (sc *Script) play(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackArgs(b.Name(), args, kwargs)
	if err != nil {
		return
	}

	snap := sc.Emulator.Play()
	if sc.Verbose {
		log.Printf("script: %v: run, %v log entries", thread.CallFrame(1).Pos, len(snap.Log))
	}

	return starlark.None, nil
}

func (sc *Script) reset(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackArgs(b.Name(), args, kwargs)
	if err != nil {
		return
	}

	sc.Emulator.Reset()

	return starlark.None, nil
}

func (sc *Script) register(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var name string
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name)
	if err != nil {
		return
	}

	reg, ok := machine.ParseRegister(name)
	if !ok {
		err = ErrRegisterUnknown(name)
		return
	}

	return starlark.MakeInt(sc.Emulator.Snapshot().Value(reg)), nil
}

func (sc *Script) zx(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackArgs(b.Name(), args, kwargs)
	if err != nil {
		return
	}

	return starlark.MakeInt(sc.Emulator.Snapshot().Zx), nil
}

func (sc *Script) logEntries(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackArgs(b.Name(), args, kwargs)
	if err != nil {
		return
	}

	entries := sc.Emulator.Snapshot().Log
	elems := make([]starlark.Value, len(entries))
	for n, entry := range entries {
		elems[n] = starlark.String(entry)
	}

	return starlark.NewList(elems), nil
}

func (sc *Script) check(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var cond starlark.Value
	var msg string
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "cond", &cond, "msg?", &msg)
	if err != nil {
		return
	}

	sc.checks++
	if !cond.Truth() {
		sc.failed++
		fmt.Fprintln(sc.Output, f("%v: check failed: %v", thread.CallFrame(1).Pos, msg))
	}

	return starlark.None, nil
}
