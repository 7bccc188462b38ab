// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ezrec/tom/document"
	"github.com/ezrec/tom/emulator"
	"github.com/ezrec/tom/script"
	"github.com/ezrec/tom/translate"
)

// Options are the command line settings.
type Options struct {
	Compile string // .tom file to run.
	Expr    string // Program text to run.
	Write   string // .tom file to save the program text to.
	Lesson  string // Starlark lesson script.
	Output  string // Log output, "-" for stdout.
	Locale  string // Message locale override.
	Verbose bool   // Verbose mode.
}

var errUsage = errors.New("one of -c, -e or -s is required")

// splitPath splits a file path into a DirFS and a name within it.
func splitPath(path string) (document.DirFS, string) {
	dir, name := filepath.Split(path)
	if len(dir) == 0 {
		dir = "."
	}

	return document.DirFS(dir), name
}

func run(opts Options) (err error) {
	if len(opts.Locale) != 0 {
		err = translate.SetLocale(opts.Locale)
		if err != nil {
			return fmt.Errorf("%v: %w", opts.Locale, err)
		}
	}

	emu := emulator.NewEmulator()
	emu.Verbose = opts.Verbose

	// Load the program text.
	if len(opts.Compile) != 0 {
		err = emu.Load(splitPath(opts.Compile))
		if err != nil {
			return
		}
	}
	if len(opts.Expr) != 0 {
		emu.SetText(opts.Expr)
	}

	if len(opts.Write) != 0 {
		filesys, name := splitPath(opts.Write)
		err = emu.Save(filesys, name)
		if err != nil {
			return
		}
	}

	if len(opts.Lesson) == 0 && len(opts.Compile) == 0 && len(opts.Expr) == 0 {
		if len(opts.Write) != 0 {
			return
		}
		return errUsage
	}

	var out io.Writer = os.Stdout
	if opts.Output != "-" {
		var ouf *os.File
		ouf, err = os.Create(opts.Output)
		if err != nil {
			return
		}
		defer func() {
			cerr := ouf.Close()
			if err == nil {
				err = cerr
			}
		}()
		out = ouf
	}

	if len(opts.Lesson) != 0 {
		var src []byte
		src, err = os.ReadFile(opts.Lesson)
		if err != nil {
			return
		}
		sc := &script.Script{
			Verbose:  opts.Verbose,
			Emulator: emu,
			Output:   out,
		}
		err = sc.Exec(opts.Lesson, src)
		if err != nil {
			return fmt.Errorf("%v: %w", opts.Lesson, err)
		}
		return
	}

	snap := emu.Play()
	_, err = fmt.Fprintf(out, "%v\n%v\n", snap.String(), snap.LogText())

	return
}

func main() {
	var opts Options

	flag.StringVar(&opts.Compile, "c", "", ".tom file to run")
	flag.StringVar(&opts.Expr, "e", "", "Program text to run, instead of a file")
	flag.StringVar(&opts.Write, "w", "", "Save the program text to a .tom file")
	flag.StringVar(&opts.Lesson, "s", "", "Starlark lesson script to execute")
	flag.StringVar(&opts.Output, "o", "-", "Log output")
	flag.StringVar(&opts.Locale, "l", "", "Message locale, such as en-US")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	err := run(opts)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
