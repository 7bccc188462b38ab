package document

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CreateFS defines a file system interface that supports creating files and directories.
type CreateFS interface {
	// Sub returns a filesystem for an existing subdirectory.
	Sub(name string) (sub CreateFS, err error)
	// Create creates a new file for writing, truncating any existing file.
	Create(name string) (file io.WriteCloser, err error)
	// Mkdir creates a new directory with the specified permissions.
	Mkdir(name string, filemode fs.FileMode) (err error)
}

// DirFS is a CreateFS, and an fs.FS, rooted at an operating system directory.
type DirFS string

var _ CreateFS = DirFS("")
var _ fs.StatFS = DirFS("")

func (dir DirFS) join(op string, name string) (path string, err error) {
	if !fs.ValidPath(name) {
		err = &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
		return
	}

	path = filepath.Join(string(dir), filepath.FromSlash(name))
	return
}

// Open opens the named file for reading.
func (dir DirFS) Open(name string) (fs.File, error) {
	return os.DirFS(string(dir)).Open(name)
}

// Stat returns file information for the named file.
func (dir DirFS) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(os.DirFS(string(dir)), name)
}

// Sub returns the DirFS of an existing subdirectory.
func (dir DirFS) Sub(name string) (sub CreateFS, err error) {
	path, err := dir.join("sub", name)
	if err != nil {
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		return
	}

	if !info.IsDir() {
		err = &fs.PathError{Op: "sub", Path: name, Err: fs.ErrInvalid}
		return
	}

	sub = DirFS(path)
	return
}

// Create creates or truncates the named file.
func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	path, err := dir.join("create", name)
	if err != nil {
		return
	}

	return os.Create(path)
}

// Mkdir creates the named directory.
func (dir DirFS) Mkdir(name string, filemode fs.FileMode) (err error) {
	path, err := dir.join("mkdir", name)
	if err != nil {
		return
	}

	return os.Mkdir(path, filemode)
}
