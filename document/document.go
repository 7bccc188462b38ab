// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package document loads and saves TOM program source text.
package document

import (
	"errors"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"
)

const (
	EXTENSION = ".tom" // File extension of TOM program sources.
)

// Document is the UTF-8 source text of a TOM program.
type Document struct {
	Text string
}

// New creates a document with initial text.
func New(initial string) (doc *Document) {
	doc = &Document{Text: initial}

	return
}

// Load reads a document from a file system.
//
// Invalid UTF-8 sequences are replaced with U+FFFD. Names that are not
// regular files return ErrCorrupt.
func Load(filesys fs.FS, name string) (doc *Document, err error) {
	defer func() {
		if err != nil {
			doc = nil
			err = &ErrDocument{Name: name, Err: err}
		}
	}()

	info, err := fs.Stat(filesys, name)
	if err != nil {
		return
	}

	if !info.Mode().IsRegular() {
		err = ErrCorrupt
		return
	}

	data, err := fs.ReadFile(filesys, name)
	if err != nil {
		return
	}

	text := string(data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}

	doc = New(text)
	return
}

// Save writes the document as UTF-8 bytes, creating missing directories
// along the path.
func (doc *Document) Save(filesys CreateFS, name string) (err error) {
	defer func() {
		if err != nil {
			err = &ErrDocument{Name: name, Err: err}
		}
	}()

	if !fs.ValidPath(name) || name == "." {
		err = fs.ErrInvalid
		return
	}

	dirs, base := path.Split(name)
	for _, dir := range strings.Split(strings.TrimSuffix(dirs, "/"), "/") {
		if len(dir) == 0 {
			continue
		}
		var sub CreateFS
		sub, err = filesys.Sub(dir)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return
			}
			// Create the directory
			err = filesys.Mkdir(dir, 0755)
			if err != nil {
				return
			}
			sub, err = filesys.Sub(dir)
			if err != nil {
				return
			}
		}
		filesys = sub
	}

	file, err := filesys.Create(base)
	if err != nil {
		return
	}

	_, err = file.Write([]byte(doc.Text))
	if err != nil {
		file.Close()
		return
	}

	return file.Close()
}
