package word

import (
	"github.com/ezrec/ffa/translate"
)

var f = translate.From

type ErrParseHex string

func (err ErrParseHex) Error() string {
	return f("'%v' is not a hex number", string(err))
}

type ErrParseBinary string

func (err ErrParseBinary) Error() string {
	return f("'%v' is not a binary number", string(err))
}
