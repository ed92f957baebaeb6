package memory

import (
	"encoding/binary"
	"iter"
)

// Memory is a flat, byte-addressable store of fixed size.
type Memory struct {
	bytes []byte
}

// New creates a zero-filled memory of the given size in bytes.
// A size the runtime cannot honor is fatal at construction.
func New(size int) (mem *Memory) {
	mem = &Memory{
		bytes: make([]byte, size),
	}

	return
}

// Size returns the size of the memory in bytes.
func (mem *Memory) Size() int {
	return len(mem.bytes)
}

// At returns a cell view bound to the given byte offset.
// The view must not outlive the memory.
//
// Offsets are not range-checked here: an access of width w requires
// offset+w <= Size(), and a violation of any width fails the runtime
// bounds check at the byte access. Callers that want recoverable
// bounds errors check before indexing.
func (mem *Memory) At(offset uint32) (cell Cell) {
	cell = Cell{bytes: mem.bytes[offset:]}

	return
}

// Words iterates the memory as word-aligned big-endian 32-bit values.
// Trailing bytes that do not fill a whole word are not yielded.
func (mem *Memory) Words() iter.Seq2[uint32, uint32] {
	return func(yield func(offset uint32, word uint32) bool) {
		for off := 0; off+4 <= len(mem.bytes); off += 4 {
			if !yield(uint32(off), binary.BigEndian.Uint32(mem.bytes[off:])) {
				return
			}
		}
	}
}

// Cell is a transient view of memory at one byte offset.
//
// Multi-byte accessors encode and decode big-endian. The signed and
// unsigned variants of a width reinterpret the same stored bytes; sign
// never changes what is stored. Setters write only the bytes their
// width covers, never the neighbors.
type Cell struct {
	bytes []byte
}

// U8 returns the byte at the cell offset.
func (cell Cell) U8() uint8 {
	return cell.bytes[0]
}

// S8 returns the byte at the cell offset as a two's complement value.
func (cell Cell) S8() int8 {
	return int8(cell.bytes[0])
}

// SetU8 stores the low 8 bits of value at the cell offset.
func (cell Cell) SetU8(value uint8) {
	cell.bytes[0] = value
}

// SetS8 stores the two's complement representation of value.
func (cell Cell) SetS8(value int8) {
	cell.bytes[0] = uint8(value)
}

// U16 returns the big-endian 16-bit value at the cell offset.
func (cell Cell) U16() uint16 {
	return binary.BigEndian.Uint16(cell.bytes)
}

// S16 returns the same two bytes as U16, reinterpreted as signed.
func (cell Cell) S16() int16 {
	return int16(binary.BigEndian.Uint16(cell.bytes))
}

// SetU16 stores the low 16 bits of value, big-endian.
func (cell Cell) SetU16(value uint16) {
	binary.BigEndian.PutUint16(cell.bytes, value)
}

// SetS16 stores the two's complement representation of value, big-endian.
func (cell Cell) SetS16(value int16) {
	binary.BigEndian.PutUint16(cell.bytes, uint16(value))
}

// U32 returns the big-endian 32-bit value at the cell offset.
func (cell Cell) U32() uint32 {
	return binary.BigEndian.Uint32(cell.bytes)
}

// S32 returns the same four bytes as U32, reinterpreted as signed.
func (cell Cell) S32() int32 {
	return int32(binary.BigEndian.Uint32(cell.bytes))
}

// SetU32 stores value, big-endian.
func (cell Cell) SetU32(value uint32) {
	binary.BigEndian.PutUint32(cell.bytes, value)
}

// SetS32 stores the two's complement representation of value, big-endian.
func (cell Cell) SetS32(value int32) {
	binary.BigEndian.PutUint32(cell.bytes, uint32(value))
}
