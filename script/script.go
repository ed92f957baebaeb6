// Package script drives a memory from Starlark scripts.
//
// A script sees one builtin per typed accessor (setu8..sets32,
// getu8..gets32) plus size(), all bound to a single memory. Offsets
// are validated here, before the memory is touched, so a bad script
// fails with an error instead of corrupting a partial write.
package script

import (
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/afg984/archi-project-1/memory"
)

// Runner executes Starlark scripts against a memory.
type Runner struct {
	Verbose bool // Set to log each store performed by a script.

	Mem *memory.Memory
}

// Run executes a script with the typed accessors predeclared.
// src may be a string, []byte, or io.Reader, per starlark.ExecFile.
// The script's global bindings are returned on success.
func (run *Runner) Run(name string, src any) (globals starlark.StringDict, err error) {
	thread := starlark.Thread{Name: name}
	opts := syntax.FileOptions{}

	globals, err = starlark.ExecFileOptions(&opts, &thread, name, src, run.predeclared())
	if err != nil {
		globals = nil
		err = &ErrScript{Name: name, Err: err}
	}

	return
}

// accessor adapts one width/signedness of the memory cell interface
// to the int64 values exchanged with Starlark.
type accessor struct {
	width int
	get   func(cell memory.Cell) int64
	set   func(cell memory.Cell, value int64)
}

var accessors = map[string]accessor{
	"u8": {1,
		func(cell memory.Cell) int64 { return int64(cell.U8()) },
		func(cell memory.Cell, value int64) { cell.SetU8(uint8(value)) }},
	"s8": {1,
		func(cell memory.Cell) int64 { return int64(cell.S8()) },
		func(cell memory.Cell, value int64) { cell.SetS8(int8(value)) }},
	"u16": {2,
		func(cell memory.Cell) int64 { return int64(cell.U16()) },
		func(cell memory.Cell, value int64) { cell.SetU16(uint16(value)) }},
	"s16": {2,
		func(cell memory.Cell) int64 { return int64(cell.S16()) },
		func(cell memory.Cell, value int64) { cell.SetS16(int16(value)) }},
	"u32": {4,
		func(cell memory.Cell) int64 { return int64(cell.U32()) },
		func(cell memory.Cell, value int64) { cell.SetU32(uint32(value)) }},
	"s32": {4,
		func(cell memory.Cell) int64 { return int64(cell.S32()) },
		func(cell memory.Cell, value int64) { cell.SetS32(int32(value)) }},
}

func (run *Runner) predeclared() (dict starlark.StringDict) {
	dict = starlark.StringDict{}
	for name, acc := range accessors {
		dict["set"+name] = starlark.NewBuiltin("set"+name, run.poke(acc))
		dict["get"+name] = starlark.NewBuiltin("get"+name, run.peek(acc))
	}
	dict["size"] = starlark.NewBuiltin("size", run.size)

	return
}

// check validates an access before any byte is read or written.
func (run *Runner) check(offset int64, width int) (err error) {
	if offset < 0 || offset+int64(width) > int64(run.Mem.Size()) {
		err = ErrOffsetRange{Offset: offset, Width: width, Size: run.Mem.Size()}
	}

	return
}

type builtinFunc func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func (run *Runner) poke(acc accessor) builtinFunc {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var offset, value int64
		err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &offset, &value)
		if err != nil {
			return nil, err
		}

		err = run.check(offset, acc.width)
		if err != nil {
			return nil, err
		}

		acc.set(run.Mem.At(uint32(offset)), value)

		if run.Verbose {
			log.Printf("%v: %v(%v, %v)", thread.Name, fn.Name(), offset, value)
		}

		return starlark.None, nil
	}
}

func (run *Runner) peek(acc accessor) builtinFunc {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var offset int64
		err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &offset)
		if err != nil {
			return nil, err
		}

		err = run.check(offset, acc.width)
		if err != nil {
			return nil, err
		}

		return starlark.MakeInt64(acc.get(run.Mem.At(uint32(offset)))), nil
	}
}

func (run *Runner) size(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(run.Mem.Size()), nil
}
