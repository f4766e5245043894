// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/intcode/amplifier"
	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/io"
	"github.com/ezrec/intcode/network"
	"github.com/ezrec/intcode/script"
)

func main() {
	var program string
	var setupFile string
	var phases string
	var search bool
	var parallel bool
	var nodes int
	var quota int
	var idle int
	var input string
	var output string
	var peek int64
	var verbose bool

	flag.StringVar(&program, "p", "", "Intcode program to run")
	flag.StringVar(&setupFile, "s", "", "Starlark setup script")
	flag.StringVar(&phases, "a", "", "Run an amplifier ring with these comma-separated phases")
	flag.BoolVar(&search, "search", false, "Search all orderings of the amplifier phases")
	flag.BoolVar(&parallel, "parallel", false, "Run each amplifier on its own goroutine")
	flag.IntVar(&nodes, "n", 0, "Run a network of this many nodes")
	flag.IntVar(&quota, "quota", network.DEFAULT_QUOTA, "Network steps per node per turn")
	flag.IntVar(&idle, "idle", network.DEFAULT_IDLE_THRESHOLD, "Network empty polls before a node is idle")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.Int64Var(&peek, "m", -1, "Print this memory cell after halting")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(program) == 0 {
		log.Fatalf("%v: no program (-p) given", os.Args[0])
	}

	image, err := intcode.LoadImage(program)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	setup := &script.Setup{}
	if len(setupFile) != 0 {
		setup, err = script.Exec(setupFile, nil, image)
		if err != nil {
			log.Fatalf("%v: %v", setupFile, err)
		}
	}

	image, err = setup.Patched(image)
	if err != nil {
		log.Fatalf("%v: %v", setupFile, err)
	}

	if len(phases) != 0 {
		setup.Phases, err = intcode.ParseImage(phases)
		if err != nil {
			log.Fatalf("-a %v: %v", phases, err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case nodes > 0:
		err = runNetwork(ctx, image, nodes, quota, idle, verbose)
	case len(setup.Phases) != 0:
		err = runAmplifier(ctx, image, setup.Phases, search, parallel, verbose)
	default:
		err = runMachine(image, setup.Input, input, output, peek, verbose)
	}
	if err != nil {
		stop()
		log.Fatal(err)
	}
}

func runNetwork(ctx context.Context, image intcode.Image, nodes, quota, idle int, verbose bool) (err error) {
	net := network.NewNetwork(image, nodes)
	net.Verbose = verbose
	net.Quota = quota
	net.IdleThreshold = idle

	y, err := net.Run(ctx)
	if first, ok := net.FirstNat(); ok {
		fmt.Printf("first nat: %d\n", first.Y)
	}
	if err != nil {
		if verbose {
			log.Print(net.String())
		}
		return
	}

	fmt.Printf("repeated nat: %d\n", y)
	return
}

func runAmplifier(ctx context.Context, image intcode.Image, phases []int64, search, parallel, verbose bool) (err error) {
	p := amplifier.NewPipeline(image)
	p.Verbose = verbose
	p.Parallel = parallel

	if search {
		best, value, err := p.Search(ctx, phases, 0)
		if err != nil {
			return err
		}
		fmt.Printf("%v %d\n", intcode.Image(best), value)
		return nil
	}

	var value int64
	if parallel {
		value, err = p.RunParallel(ctx, phases, 0)
	} else {
		value, err = p.Run(phases, 0)
	}
	if err != nil {
		return
	}

	fmt.Println(value)
	return
}

// runMachine runs a single machine against the tape files. Files are closed
// on every return path; a close error on the output file is reported.
func runMachine(image intcode.Image, preload []int64, input, output string, peek int64, verbose bool) (err error) {
	tape := &io.Tape{}

	if input == "-" {
		tape.Input = os.Stdin
		if term.IsTerminal(int(os.Stdin.Fd())) {
			tape.Prompt = "> "
		}
	} else {
		var inf *os.File
		inf, err = os.Open(input)
		if err != nil {
			return
		}
		defer inf.Close()
		tape.Input = inf
	}

	if output == "-" {
		tape.Output = os.Stdout
	} else {
		var ouf *os.File
		ouf, err = os.Create(output)
		if err != nil {
			return
		}
		defer func() {
			err = errors.Join(err, ouf.Close())
		}()
		tape.Output = ouf
	}

	m := intcode.NewMachine(image)
	m.Verbose = verbose
	m.Input = io.Chain{io.NewQueue(preload...), tape}
	m.Output = tape

	state, err := m.Run()
	if err != nil {
		return
	}

	if state == intcode.STATE_PAUSED {
		log.Printf("%v: input exhausted\n%v", os.Args[0], strings.TrimRight(m.String(), "\n"))
	}

	if peek >= 0 {
		var value int64
		value, err = m.Memory.Read(peek)
		if err != nil {
			return
		}
		fmt.Println(value)
	}

	return
}
