package intcode

import (
	"errors"
	"fmt"
	"iter"
	"maps"
)

// Opcode is an Intcode operation.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(1)  // add
	OP_MUL  = Opcode(2)  // mul
	OP_IN   = Opcode(3)  // in
	OP_OUT  = Opcode(4)  // out
	OP_JT   = Opcode(5)  // jt
	OP_JF   = Opcode(6)  // jf
	OP_LT   = Opcode(7)  // lt
	OP_EQ   = Opcode(8)  // eq
	OP_RB   = Opcode(9)  // rb
	OP_HALT = Opcode(99) // halt
)

// Mode is a parameter addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // pos
	MODE_IMMEDIATE = Mode(1) // imm
	MODE_RELATIVE  = Mode(2) // rel
)

// MAX_PARAMS is the largest parameter count of any opcode.
const MAX_PARAMS = 3

var _intcode_defines = map[string]int64{
	"OP_ADD":         int64(OP_ADD),
	"OP_MUL":         int64(OP_MUL),
	"OP_IN":          int64(OP_IN),
	"OP_OUT":         int64(OP_OUT),
	"OP_JT":          int64(OP_JT),
	"OP_JF":          int64(OP_JF),
	"OP_LT":          int64(OP_LT),
	"OP_EQ":          int64(OP_EQ),
	"OP_RB":          int64(OP_RB),
	"OP_HALT":        int64(OP_HALT),
	"MODE_POSITION":  int64(MODE_POSITION),
	"MODE_IMMEDIATE": int64(MODE_IMMEDIATE),
	"MODE_RELATIVE":  int64(MODE_RELATIVE),
}

// Defines returns the symbolic opcode and mode numbers.
func Defines() iter.Seq2[string, int64] {
	return maps.All(_intcode_defines)
}

// Params returns the number of parameters taken by the opcode,
// or -1 if the opcode is not part of the instruction set.
func (op Opcode) Params() int {
	switch op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		return 3
	case OP_JT, OP_JF:
		return 2
	case OP_IN, OP_OUT, OP_RB:
		return 1
	case OP_HALT:
		return 0
	}

	return -1
}

// Writes returns the 1-indexed parameter the opcode writes to, or 0.
func (op Opcode) Writes() int {
	switch op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		return 3
	case OP_IN:
		return 1
	}

	return 0
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Word  int64
	Op    Opcode
	Modes [MAX_PARAMS]Mode
}

// Decode splits an instruction word into opcode and parameter modes.
//
// The opcode is word % 100, and the mode of parameter i (1-indexed) is
// (word / 10^(i+1)) % 10. Only the modes of parameters the opcode actually
// takes are validated.
func Decode(word int64) (ins Instruction, err error) {
	ins.Word = word
	ins.Op = Opcode(word % 100)

	params := ins.Op.Params()
	if params < 0 {
		err = ErrIllegalOpcode
		return
	}

	digits := word / 100
	for n := range params {
		mode := Mode(digits % 10)
		digits /= 10
		switch mode {
		case MODE_POSITION, MODE_RELATIVE:
		case MODE_IMMEDIATE:
			if ins.Op.Writes() == n+1 {
				err = errors.Join(ErrParameter(n+1), ErrIllegalWriteMode)
				return
			}
		default:
			err = errors.Join(ErrParameter(n+1), ErrIllegalMode)
			return
		}
		ins.Modes[n] = mode
	}

	return
}

// String returns the mnemonic form of the instruction, e.g. "add.pos.imm.rel".
func (ins Instruction) String() (out string) {
	out = ins.Op.String()
	for n := range max(ins.Op.Params(), 0) {
		out = fmt.Sprintf("%v.%v", out, ins.Modes[n])
	}

	return
}
