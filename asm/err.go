package asm

import (
	"errors"

	"github.com/ezrec/ffa/diag"
	"github.com/ezrec/ffa/translate"
)

var f = translate.From

var (
	ErrNoProgram = errors.New(f("program did not assemble"))
	ErrEmitted   = errors.New(f("program already emitted"))
)

// ErrFatal is returned when a Fatal diagnostic ends the assembly.
type ErrFatal struct {
	LineNo int
	Line   string
	Err    diag.Error
}

func (err *ErrFatal) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err.Error())
}

func (err *ErrFatal) Unwrap() error {
	return err.Err
}
