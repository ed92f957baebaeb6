package script

import (
	"github.com/afg984/archi-project-1/translate"
)

var f = translate.From

// ErrOffsetRange reports a scripted access outside the memory.
type ErrOffsetRange struct {
	Offset int64
	Width  int
	Size   int
}

func (err ErrOffsetRange) Error() string {
	return f("offset %d width %d outside %d byte memory", err.Offset, err.Width, err.Size)
}

// ErrScript wraps a script execution failure with the script name.
type ErrScript struct {
	Name string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("script %v %v", err.Name, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
