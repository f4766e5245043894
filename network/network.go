// Package network connects many Intcode machines into an addressed,
// mailbox-based message network.
//
// Nodes 0..N-1 each run the same image. A node sends a packet as three
// outputs: destination, x, y. Packets to a live node are queued in its
// mailbox in order; packets to NAT_ADDRESS replace the network's last-resort
// message. When every node is starved for input the last-resort message is
// delivered to node 0, and the network finishes when two consecutive
// deliveries carry the same y.
package network

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/io"
)

const (
	NAT_ADDRESS            = 255  // Reserved last-resort receiver.
	DEFAULT_SIZE           = 50   // Default node count.
	DEFAULT_QUOTA          = 1000 // Default steps per node per turn.
	DEFAULT_IDLE_THRESHOLD = 50   // Default empty polls before a node counts as starved.
)

var _network_defines = map[string]int64{
	"NAT_ADDRESS": NAT_ADDRESS,
}

// Defines returns the network's symbolic constants.
func Defines() iter.Seq2[string, int64] {
	return maps.All(_network_defines)
}

// Network is a set of nodes scheduled round-robin on one goroutine.
type Network struct {
	Verbose       bool // If set, enables verbose logging.
	Quota         int  // Steps each node may run per turn.
	IdleThreshold int  // Empty polls after which a node counts as starved.

	Nodes []*Node

	nat        Message
	hasNat     bool
	first      Message
	hasFirst   bool
	deliveries []Message
	done       bool
}

// NewNetwork creates a network of size nodes, each running the image.
func NewNetwork(image intcode.Image, size int) (net *Network) {
	net = &Network{
		Quota:         DEFAULT_QUOTA,
		IdleThreshold: DEFAULT_IDLE_THRESHOLD,
		Nodes:         make([]*Node, size),
	}

	for address := range net.Nodes {
		node := &Node{
			Address: address,
			Machine: intcode.NewMachine(image),
		}
		node.Machine.Input = node
		node.Machine.Output = io.Batch{
			N: 3,
			Func: func(values []int64) error {
				return net.route(address, values[0], Message{X: values[1], Y: values[2]})
			},
		}
		net.Nodes[address] = node
	}

	return
}

// Nat returns the current last-resort message.
func (net *Network) Nat() (msg Message, ok bool) {
	return net.nat, net.hasNat
}

// FirstNat returns the first message ever sent to NAT_ADDRESS.
func (net *Network) FirstNat() (msg Message, ok bool) {
	return net.first, net.hasFirst
}

// Deliveries returns every last-resort message delivered to node 0.
func (net *Network) Deliveries() []Message {
	return net.deliveries
}

// Done returns true once two consecutive deliveries had the same y.
func (net *Network) Done() bool {
	return net.done
}

// route handles one packet sent by node from.
func (net *Network) route(from int, dest int64, msg Message) (err error) {
	if net.Verbose {
		log.Printf("network: %d -> %d %v", from, dest, msg)
	}

	switch {
	case dest == NAT_ADDRESS:
		if !net.hasFirst {
			net.first = msg
			net.hasFirst = true
		}
		net.nat = msg
		net.hasNat = true
	case dest >= 0 && dest < int64(len(net.Nodes)):
		net.Nodes[dest].Deliver(msg)
	default:
		err = errors.Join(ErrUnknownAddress, ErrDestination(dest))
	}

	return
}

// Idle returns true if every node is starved for input.
func (net *Network) Idle() bool {
	threshold := net.IdleThreshold
	if threshold <= 0 {
		threshold = DEFAULT_IDLE_THRESHOLD
	}

	for _, node := range net.Nodes {
		if !node.Starved(threshold) {
			return false
		}
	}

	return true
}

// Round gives every node one turn of at most Quota steps, in address order,
// then checks for an idle network.
func (net *Network) Round() (done bool, err error) {
	if len(net.Nodes) == 0 {
		err = ErrNoNodes
		return
	}

	if net.done {
		done = true
		return
	}

	quota := net.Quota
	if quota <= 0 {
		quota = DEFAULT_QUOTA
	}

	for _, node := range net.Nodes {
		_, err = node.Machine.RunSteps(quota)
		if err != nil {
			err = &ErrNode{Address: node.Address, Err: err}
			return
		}
	}

	if !net.Idle() {
		return
	}

	if !net.hasNat {
		err = ErrIdle
		return
	}

	if n := len(net.deliveries); n > 0 && net.deliveries[n-1].Y == net.nat.Y {
		net.done = true
	}

	if net.Verbose {
		log.Printf("network: idle, deliver %v to 0", net.nat)
	}

	net.Nodes[0].Deliver(net.nat)
	net.deliveries = append(net.deliveries, net.nat)

	done = net.done
	return
}

// Run schedules rounds until the same y is delivered twice in a row,
// returning that y.
func (net *Network) Run(ctx context.Context) (y int64, err error) {
	for {
		err = ctx.Err()
		if err != nil {
			return
		}

		var done bool
		done, err = net.Round()
		if err != nil {
			return
		}

		if done {
			y = net.nat.Y
			return
		}
	}
}

// String summarizes the network state.
func (net *Network) String() (text string) {
	for _, node := range net.Nodes {
		text += fmt.Sprintf("% 4d: %v ip=%d idle=%d queued=%d\n",
			node.Address, node.Machine.State(), node.Machine.Ip, node.Idle, len(node.Mailbox))
	}

	return
}
