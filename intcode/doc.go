// Package intcode implements the Intcode virtual machine.
//
// A Machine owns a sparse, zero-initialized Memory and executes Intcode
// instructions from it: arithmetic, comparisons, conditional jumps, relative
// base adjustment, and input/output through the Receiver and Sender contracts
// of the io package.
//
// A Machine never blocks its host goroutine on input. When an input
// instruction finds no value available the machine enters the Paused state
// with its instruction pointer still on the input instruction; Resume supplies
// a value and Run continues from exactly that instruction. This lets a single
// goroutine interleave many machines cooperatively.
package intcode
