package symbol

import (
	"github.com/ezrec/ffa/translate"
)

var f = translate.From

type ErrDuplicate string

func (err ErrDuplicate) Error() string {
	return f("symbol %v already defined", string(err))
}

type ErrMissing string

func (err ErrMissing) Error() string {
	return f("symbol %v not defined", string(err))
}
