package catalog

import (
	"errors"

	"github.com/ezrec/ffa/translate"
)

var f = translate.From

var (
	ErrOpcodeSyntax    = errors.New(f("opcode table syntax"))
	ErrOpcodeBitcode   = errors.New(f("bitcode must be five binary digits"))
	ErrOpcodeDuplicate = errors.New(f("opcode duplicated"))
	ErrDirectiveSyntax = errors.New(f("directive list syntax"))
)

type ErrGroupUnknown string

func (err ErrGroupUnknown) Error() string {
	return f("'%v' is not an instruction group", string(err))
}

type ErrFunctionUnknown struct {
	Group    Category
	Function string
}

func (err ErrFunctionUnknown) Error() string {
	return f("'%v' is not a valid function for %v", err.Function, err.Group)
}

type ErrDirectiveUnknown string

func (err ErrDirectiveUnknown) Error() string {
	return f("'%v' is not a directive", string(err))
}

type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrLine) Unwrap() error {
	return err.Err
}
