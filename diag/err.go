package diag

import (
	"github.com/ezrec/ffa/translate"
)

var f = translate.From

type ErrUnknownError Key

func (err ErrUnknownError) Error() string {
	return f("no message for %v", Key(err).String())
}
