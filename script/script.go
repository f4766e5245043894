// Package script reads Starlark setup files for an Intcode run.
//
// A setup script may define these globals:
//
//	patch  = {1: 12, 2: 2}      # memory cells to overwrite before running
//	input  = [1] + ascii("A\n") # values queued ahead of any other input
//	phases = [5, 6, 7, 8, 9]    # amplifier phases
//
// Scripts see the opcode, mode and network constants (OP_ADD, MODE_RELATIVE,
// NAT_ADDRESS, ...), image_len, peek(addr) which reads the unpatched image,
// and ascii(text) which converts text to a list of character codes.
package script

import (
	"maps"
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/internal"
	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/network"
)

// Setup is the result of a setup script.
type Setup struct {
	Patch  map[int64]int64
	Input  []int64
	Phases []int64
}

// Exec runs the script in src (a string, []byte or io.Reader; if nil the
// named file is read) against the image.
func Exec(filename string, src any, image intcode.Image) (setup *Setup, err error) {
	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{}
	for key, value := range internal.IterSeq2Concat(intcode.Defines(), network.Defines()) {
		pred[key] = starlark.MakeInt64(value)
	}
	pred["image_len"] = starlark.MakeInt(len(image))
	pred["peek"] = starlark.NewBuiltin("peek", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var addr int
		err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &addr)
		if err != nil {
			return nil, err
		}
		if addr < 0 {
			return nil, ErrAddress(addr)
		}
		if addr >= len(image) {
			return starlark.MakeInt(0), nil
		}
		return starlark.MakeInt64(image[addr]), nil
	})
	pred["ascii"] = starlark.NewBuiltin("ascii", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var text string
		err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &text)
		if err != nil {
			return nil, err
		}
		codes := make([]starlark.Value, len(text))
		for n := range len(text) {
			codes[n] = starlark.MakeInt(int(text[n]))
		}
		return starlark.NewList(codes), nil
	})

	dict, err := starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		return
	}

	setup = &Setup{}

	if value, ok := dict["patch"]; ok {
		setup.Patch, err = toPatch("patch", value)
		if err != nil {
			setup = nil
			return
		}
	}

	if value, ok := dict["input"]; ok {
		setup.Input, err = toInts("input", value)
		if err != nil {
			setup = nil
			return
		}
	}

	if value, ok := dict["phases"]; ok {
		setup.Phases, err = toInts("phases", value)
		if err != nil {
			setup = nil
			return
		}
	}

	return
}

// Apply writes the patches into memory in address order.
func (setup *Setup) Apply(mem *intcode.Memory) (err error) {
	for _, addr := range slices.Sorted(maps.Keys(setup.Patch)) {
		err = mem.Write(addr, setup.Patch[addr])
		if err != nil {
			return
		}
	}

	return
}

// Patched returns a copy of the image with the patches applied.
func (setup *Setup) Patched(image intcode.Image) (patched intcode.Image, err error) {
	mem := intcode.NewMemory(image)
	err = setup.Apply(mem)
	if err != nil {
		return
	}

	patched = intcode.Image(mem.Data)
	return
}

func toInt64(name string, value starlark.Value) (out int64, err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = ErrGlobal{Name: name, Want: "an integer"}
		return
	}

	out, ok = st_int.Int64()
	if !ok {
		err = ErrGlobal{Name: name, Want: "a 64-bit integer"}
	}

	return
}

func toInts(name string, value starlark.Value) (out []int64, err error) {
	iterable, ok := value.(starlark.Iterable)
	if !ok {
		err = ErrGlobal{Name: name, Want: "a list of integers"}
		return
	}

	iter := iterable.Iterate()
	defer iter.Done()

	out = []int64{}
	var item starlark.Value
	for iter.Next(&item) {
		var n int64
		n, err = toInt64(name, item)
		if err != nil {
			out = nil
			return
		}
		out = append(out, n)
	}

	return
}

func toPatch(name string, value starlark.Value) (patch map[int64]int64, err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = ErrGlobal{Name: name, Want: "a dict of address to value"}
		return
	}

	patch = map[int64]int64{}
	for _, item := range dict.Items() {
		var addr, cell int64
		addr, err = toInt64(name, item[0])
		if err != nil {
			patch = nil
			return
		}
		cell, err = toInt64(name, item[1])
		if err != nil {
			patch = nil
			return
		}
		patch[addr] = cell
	}

	return
}
