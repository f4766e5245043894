package intcode

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/intcode/io"
)

// State is the execution state of a Machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNABLE = State(0) // runnable
	STATE_PAUSED   = State(1) // paused
	STATE_HALTED   = State(2) // halted
	STATE_FAULTED  = State(3) // faulted
)

// Blocked returns true if a machine in this state will not make progress
// without outside help.
func (state State) Blocked() bool {
	return state != STATE_RUNNABLE
}

// Done returns true for the terminal states.
func (state State) Done() bool {
	return state == STATE_HALTED || state == STATE_FAULTED
}

// Machine is an Intcode execution engine.
//
// Exactly one input wiring should be used: either Resume with single pending
// values, or an Input receiver. A pending value supplied by Resume is
// consumed before Input is asked.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Memory       Memory // Program memory, exclusively owned.
	Ip           int64  // Instruction pointer.
	RelativeBase int64  // Relative base register.

	Input  io.Receiver // Input port; nil means only Resume supplies input.
	Output io.Sender   // Output port; nil discards output.

	Ticks int // Completed instructions.

	state      State
	fault      error
	pending    int64
	hasPending bool
	last       int64
	hasLast    bool
	outbuf     []int64
}

// NewMachine creates a runnable machine loaded with a copy of the image.
func NewMachine(image Image) (m *Machine) {
	m = &Machine{}
	m.Memory.Load(image)
	return
}

// State returns the current execution state.
func (m *Machine) State() State {
	return m.state
}

// Err returns the fault that stopped the machine, if any.
func (m *Machine) Err() error {
	return m.fault
}

// LastOutput returns the most recent output value, whether or not an Output
// port is attached.
func (m *Machine) LastOutput() (value int64, ok bool) {
	return m.last, m.hasLast
}

// Reset reloads the image and clears all registers, state and counters.
// The I/O ports are kept.
func (m *Machine) Reset(image Image) {
	if m.Verbose {
		log.Printf("intcode: reset")
	}

	m.Memory.Load(image)
	m.Ip = 0
	m.RelativeBase = 0
	m.Ticks = 0
	m.state = STATE_RUNNABLE
	m.fault = nil
	m.hasPending = false
	m.hasLast = false
	m.outbuf = m.outbuf[:0]
}

// Resume supplies the next input value and makes a paused machine runnable.
// The value replaces any pending value not yet consumed. Terminal machines
// are unaffected.
func (m *Machine) Resume(value int64) State {
	if m.state.Done() {
		return m.state
	}

	m.pending = value
	m.hasPending = true
	m.state = STATE_RUNNABLE

	return m.state
}

// Run executes instructions until the machine pauses, halts or faults.
// A paused machine first retries its input instruction; if input is still
// unavailable it stays paused with no other change.
func (m *Machine) Run() (state State, err error) {
	return m.RunSteps(-1)
}

// RunSteps is Run limited to at most n instruction attempts.
// A negative n means no limit.
func (m *Machine) RunSteps(n int) (state State, err error) {
	if n != 0 && m.state == STATE_PAUSED {
		m.state = STATE_RUNNABLE
	}

	for ; n != 0 && m.state == STATE_RUNNABLE; n-- {
		err = m.Step()
		if err != nil {
			break
		}
	}

	state = m.state
	if state == STATE_FAULTED {
		err = m.fault
	}

	return
}

// Step executes a single instruction.
//
// A paused machine is made runnable before the instruction is tried. An
// input instruction with no available value pauses the machine and leaves
// everything else untouched, so the instruction is retried by the next step.
// Any error faults the machine permanently.
func (m *Machine) Step() (err error) {
	switch m.state {
	case STATE_HALTED:
		return ErrHalted
	case STATE_FAULTED:
		return m.fault
	case STATE_PAUSED:
		m.state = STATE_RUNNABLE
	}

	var word int64
	defer func() {
		if err != nil {
			err = &ErrFault{Ip: m.Ip, Word: word, Err: err}
			m.fault = err
			m.state = STATE_FAULTED
			if m.Verbose {
				log.Printf("intcode: %v", err)
			}
		}
	}()

	word, err = m.Memory.Read(m.Ip)
	if err != nil {
		return
	}

	ins, err := Decode(word)
	if err != nil {
		return
	}

	if m.Verbose {
		log.Printf("intcode: %d: %v", m.Ip, ins)
	}

	next_ip := m.Ip + int64(ins.Op.Params()) + 1

	switch ins.Op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		var a, b int64
		a, err = m.load(ins, 1)
		if err != nil {
			return
		}
		b, err = m.load(ins, 2)
		if err != nil {
			return
		}
		var value int64
		switch ins.Op {
		case OP_ADD:
			value = a + b
		case OP_MUL:
			value = a * b
		case OP_LT:
			value = boolValue(a < b)
		case OP_EQ:
			value = boolValue(a == b)
		}
		err = m.store(ins, 3, value)
		if err != nil {
			return
		}
	case OP_IN:
		value, ok := m.receive()
		if !ok {
			m.state = STATE_PAUSED
			return
		}
		err = m.store(ins, 1, value)
		if err != nil {
			return
		}
	case OP_OUT:
		var value int64
		value, err = m.load(ins, 1)
		if err != nil {
			return
		}
		err = m.send(value)
		if err != nil {
			return
		}
	case OP_JT, OP_JF:
		var cond, target int64
		cond, err = m.load(ins, 1)
		if err != nil {
			return
		}
		target, err = m.load(ins, 2)
		if err != nil {
			return
		}
		if (cond != 0) == (ins.Op == OP_JT) {
			next_ip = target
		}
	case OP_RB:
		var offset int64
		offset, err = m.load(ins, 1)
		if err != nil {
			return
		}
		m.RelativeBase += offset
	case OP_HALT:
		m.state = STATE_HALTED
		m.Ticks++
		if m.Verbose {
			log.Printf("intcode: halt after %d ticks", m.Ticks)
		}
		return
	default:
		err = ErrIllegalOpcode
		return
	}

	m.Ip = next_ip
	m.Ticks++

	return
}

// receive takes the pending value, or asks the Input port.
func (m *Machine) receive() (value int64, ok bool) {
	if m.hasPending {
		m.hasPending = false
		return m.pending, true
	}

	if m.Input == nil {
		return
	}

	return m.Input.Receive()
}

// send records the output and hands it to the Output port once a full group
// of Output.Arity() values has accumulated.
func (m *Machine) send(value int64) (err error) {
	m.last = value
	m.hasLast = true

	if m.Output == nil {
		return
	}

	m.outbuf = append(m.outbuf, value)
	if len(m.outbuf) < max(m.Output.Arity(), 1) {
		return
	}

	err = m.Output.Send(m.outbuf)
	m.outbuf = m.outbuf[:0]
	if err != nil {
		err = errors.Join(ErrOutput, err)
	}

	return
}

// address resolves the target address of a parameter.
func (m *Machine) address(ins Instruction, n int) (addr int64, err error) {
	raw, err := m.Memory.Read(m.Ip + int64(n))
	if err != nil {
		return
	}

	switch ins.Modes[n-1] {
	case MODE_POSITION:
		addr = raw
	case MODE_RELATIVE:
		addr = m.RelativeBase + raw
	case MODE_IMMEDIATE:
		err = errors.Join(ErrParameter(n), ErrIllegalWriteMode)
	default:
		err = errors.Join(ErrParameter(n), ErrIllegalMode)
	}

	return
}

// load returns the value of a parameter.
func (m *Machine) load(ins Instruction, n int) (value int64, err error) {
	if ins.Modes[n-1] == MODE_IMMEDIATE {
		return m.Memory.Read(m.Ip + int64(n))
	}

	addr, err := m.address(ins, n)
	if err != nil {
		return
	}

	value, err = m.Memory.Read(addr)
	if err != nil {
		err = errors.Join(ErrParameter(n), err)
	}

	return
}

// store writes the value to the address named by a parameter.
func (m *Machine) store(ins Instruction, n int, value int64) (err error) {
	addr, err := m.address(ins, n)
	if err != nil {
		return
	}

	err = m.Memory.Write(addr, value)
	if err != nil {
		err = errors.Join(ErrParameter(n), err)
	}

	return
}

func boolValue(cond bool) int64 {
	if cond {
		return 1
	}
	return 0
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text += fmt.Sprintf("% 6s: %v\n", "state", m.state)
	text += fmt.Sprintf("% 6s: %d\n", "ip", m.Ip)
	text += fmt.Sprintf("% 6s: %d\n", "rb", m.RelativeBase)
	text += fmt.Sprintf("% 6s: %d\n", "mem", m.Memory.Len())
	text += fmt.Sprintf("% 6s: %d\n", "ticks", m.Ticks)
	if m.fault != nil {
		text += fmt.Sprintf("% 6s: %v\n", "fault", m.fault)
	}

	return
}
