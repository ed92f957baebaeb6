package memory

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

// FuzzCell stores one value through a fuzzed width/signedness at a
// fuzzed offset and checks every view of the memory against a shadow
// byte-slice model kept with encoding/binary directly.
func FuzzCell(f *testing.F) {
	f.Add(uint16(0), uint32(0), uint8(0))
	f.Add(uint16(3), uint32(0xffffffff), uint8(1))
	f.Add(uint16(252), uint32(0xdeadbeef), uint8(4))
	f.Add(uint16(13), uint32(0x80000000), uint8(5))

	f.Fuzz(func(t *testing.T, offset uint16, value uint32, mode uint8) {
		assert := assert.New(t)

		const size = 64
		mem := New(size)

		// Pre-fill with a pattern so untouched bytes are observable.
		model := make([]byte, size)
		for n := range size {
			model[n] = uint8(n*7 + 3)
			mem.At(uint32(n)).SetU8(model[n])
		}

		width := []int{1, 1, 2, 2, 4, 4}[mode%6]
		signed := (mode%6)%2 == 1
		off := uint32(offset) % uint32(size-width+1)

		cell := mem.At(off)
		switch {
		case width == 1 && !signed:
			cell.SetU8(uint8(value))
			model[off] = uint8(value)
		case width == 1 && signed:
			cell.SetS8(int8(value))
			model[off] = uint8(int8(value))
		case width == 2 && !signed:
			cell.SetU16(uint16(value))
			binary.BigEndian.PutUint16(model[off:], uint16(value))
		case width == 2 && signed:
			cell.SetS16(int16(value))
			binary.BigEndian.PutUint16(model[off:], uint16(int16(value)))
		case width == 4 && !signed:
			cell.SetU32(value)
			binary.BigEndian.PutUint32(model[off:], value)
		case width == 4 && signed:
			cell.SetS32(int32(value))
			binary.BigEndian.PutUint32(model[off:], uint32(int32(value)))
		}

		for n := range size {
			assert.Equal(model[n], mem.At(uint32(n)).U8(), "byte %d", n)
			assert.Equal(int8(model[n]), mem.At(uint32(n)).S8(), "byte %d", n)
		}
		for n := 0; n+2 <= size; n++ {
			half := binary.BigEndian.Uint16(model[n:])
			assert.Equal(half, mem.At(uint32(n)).U16(), "half at %d", n)
			assert.Equal(int16(half), mem.At(uint32(n)).S16(), "half at %d", n)
		}
		for n := 0; n+4 <= size; n++ {
			word := binary.BigEndian.Uint32(model[n:])
			assert.Equal(word, mem.At(uint32(n)).U32(), "word at %d", n)
			assert.Equal(int32(word), mem.At(uint32(n)).S32(), "word at %d", n)
		}
	})
}
