package script

import (
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

// ErrGlobal reports a script global of the wrong shape.
type ErrGlobal struct {
	Name string
	Want string
}

func (err ErrGlobal) Error() string {
	return f("'%v' must be %v", err.Name, err.Want)
}

// ErrAddress reports an address outside the image.
type ErrAddress int

func (err ErrAddress) Error() string {
	return f("address %v out of range", int(err))
}
