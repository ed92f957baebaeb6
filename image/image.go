// Package image reads and writes the simulator's boot images.
//
// An image file is a big-endian stream of 32-bit words with a two-word
// header: an initial register value, then the number of payload words.
// The text image (iimage.bin) carries the initial PC and is loaded at
// that address; the data image (dimage.bin) carries the initial $sp
// and is loaded at address zero.
package image

import (
	"encoding/binary"
	"io"

	"github.com/afg984/archi-project-1/memory"
)

const (
	IMAGE_WORD_LIMIT = 1 << 24 // Maximum payload words accepted from a header.
)

// Image is a decoded boot image.
type Image struct {
	Register uint32 // Initial register value (PC or $sp).
	Words    []uint32
}

// Unmarshal reads an image from its binary form, replacing any
// existing contents.
func (img *Image) Unmarshal(file io.Reader) (err error) {
	var header [2]uint32
	err = binary.Read(file, binary.BigEndian, header[:])
	if err != nil {
		err = ErrImageTruncated
		return
	}

	count := header[1]
	if count > IMAGE_WORD_LIMIT {
		err = ErrImageCount(count)
		return
	}

	words := make([]uint32, count)
	err = binary.Read(file, binary.BigEndian, words)
	if err != nil {
		err = ErrImageTruncated
		return
	}

	img.Register = header[0]
	img.Words = words

	return
}

// Marshal writes the image in its binary form.
func (img *Image) Marshal(file io.Writer) (err error) {
	header := [2]uint32{img.Register, uint32(len(img.Words))}
	err = binary.Write(file, binary.BigEndian, header[:])
	if err != nil {
		return
	}

	err = binary.Write(file, binary.BigEndian, img.Words)

	return
}

// LoadAt stores the image words into memory starting at base.
// The fit is checked up front; a failed load writes nothing.
func (img *Image) LoadAt(mem *memory.Memory, base uint32) (err error) {
	end := uint64(base) + uint64(len(img.Words))*4
	if end > uint64(mem.Size()) {
		err = ErrImageOverflow{Base: base, Words: len(img.Words), Size: mem.Size()}
		return
	}

	for n, word := range img.Words {
		mem.At(base + uint32(n)*4).SetU32(word)
	}

	return
}

// DumpFrom captures count words of memory starting at base into a new
// image with the given header register value. Inverse of LoadAt.
func DumpFrom(mem *memory.Memory, register uint32, base uint32, count int) (img *Image, err error) {
	end := uint64(base) + uint64(count)*4
	if count < 0 || end > uint64(mem.Size()) {
		err = ErrImageOverflow{Base: base, Words: count, Size: mem.Size()}
		return
	}

	img = &Image{
		Register: register,
		Words:    make([]uint32, count),
	}
	for n := range img.Words {
		img.Words[n] = mem.At(base + uint32(n)*4).U32()
	}

	return
}
