package network

import (
	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/io"
)

// Message is the payload of one network packet.
type Message struct {
	X, Y int64
}

// Node is one addressed machine on the network with its inbound mailbox.
type Node struct {
	Address int
	Machine *intcode.Machine
	Mailbox []Message // Inbound messages, oldest first.
	Idle    int       // Consecutive input requests that found the mailbox empty.

	booted   bool
	hasY     bool
	pendingY int64
}

var _ io.Receiver = (*Node)(nil)

// Receive is the node machine's input port. The first read yields the node's
// address. After that each queued message is delivered as x then y, and an
// empty mailbox yields -1.
func (node *Node) Receive() (value int64, ok bool) {
	switch {
	case !node.booted:
		node.booted = true
		value = int64(node.Address)
	case node.hasY:
		node.hasY = false
		value = node.pendingY
	case len(node.Mailbox) > 0:
		msg := node.Mailbox[0]
		node.Mailbox = node.Mailbox[1:]
		node.Idle = 0
		node.hasY = true
		node.pendingY = msg.Y
		value = msg.X
	default:
		node.Idle++
		value = -1
	}

	return value, true
}

// Deliver appends a message to the mailbox.
func (node *Node) Deliver(msg Message) {
	node.Mailbox = append(node.Mailbox, msg)
}

// Starved returns true if the node has nothing queued and has polled
// more than threshold times in a row without input, or has stopped.
func (node *Node) Starved(threshold int) bool {
	if node.Machine.State().Done() {
		return true
	}

	return len(node.Mailbox) == 0 && !node.hasY && node.Idle > threshold
}
