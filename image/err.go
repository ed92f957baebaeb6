package image

import (
	"errors"

	"github.com/afg984/archi-project-1/translate"
)

var f = translate.From

var (
	// Image decode errors
	ErrImageTruncated = errors.New(f("image truncated"))
)

// ErrImageCount reports a header word count beyond IMAGE_WORD_LIMIT.
type ErrImageCount uint32

func (err ErrImageCount) Error() string {
	return f("image word count %d beyond limit", uint32(err))
}

// ErrImageOverflow reports an image that does not fit the memory.
type ErrImageOverflow struct {
	Base  uint32
	Words int
	Size  int
}

func (err ErrImageOverflow) Error() string {
	return f("image of %d words at 0x%08x exceeds %d byte memory", err.Words, err.Base, err.Size)
}
