package script

import (
	"errors"

	"github.com/ezrec/tom/translate"
)

var f = translate.From

var (
	// Script errors
	ErrCheckFailed = errors.New(f("check failed"))
)

// ErrCheck reports the failed checks of a script.
type ErrCheck struct {
	Failed int
	Total  int
}

func (err *ErrCheck) Error() string {
	return f("%v of %v checks failed", err.Failed, err.Total)
}

func (err *ErrCheck) Unwrap() error {
	return ErrCheckFailed
}

type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("'%v' is not a register", string(err))
}
