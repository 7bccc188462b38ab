package document

import (
	"errors"

	"github.com/ezrec/tom/translate"
)

var f = translate.From

var (
	// Document errors
	ErrCorrupt = errors.New(f("file is not a readable document"))
)

// ErrDocument indicates which document failed to load or save.
type ErrDocument struct {
	Name string
	Err  error
}

func (err *ErrDocument) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrDocument) Unwrap() error {
	return err.Err
}
