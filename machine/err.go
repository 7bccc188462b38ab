package machine

import (
	"errors"

	"github.com/ezrec/tom/translate"
)

var f = translate.From

var (
	// Instruction decode errors
	ErrCommandUnknown = errors.New(f("command unknown"))
	ErrOperandInvalid = errors.New(f("operand invalid"))
)

// ErrSyntax indicates the source line that failed to decode.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %v '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
