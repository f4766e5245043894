package amplifier

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/intcode"
)

var _series = [](struct {
	name    string
	program string
	phases  []int64
	output  int64
}){
	{
		"series_43210",
		"3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0",
		[]int64{4, 3, 2, 1, 0},
		43210,
	},
	{
		"series_54321",
		"3,23,3,24,1002,24,10,24,1002,23,-1,23," +
			"101,5,23,23,1,24,23,23,4,23,99,0,0",
		[]int64{0, 1, 2, 3, 4},
		54321,
	},
	{
		"series_65210",
		"3,31,3,32,1002,32,10,32,1001,31,-2,31,1007,31,0,33," +
			"1002,33,7,33,1,33,31,31,1,32,31,31,4,31,99,0,0,0",
		[]int64{1, 0, 4, 3, 2},
		65210,
	},
}

var _feedback = [](struct {
	name    string
	program string
	phases  []int64
	output  int64
}){
	{
		"feedback_139629729",
		"3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26," +
			"27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5",
		[]int64{9, 8, 7, 6, 5},
		139629729,
	},
	{
		"feedback_18216",
		"3,52,1001,52,-5,52,3,53,1,52,56,54,1007,54,5,55,1005,55,26,1001,54," +
			"-5,54,1105,1,12,1,53,54,53,1008,54,0,55,1001,55,1,55,2,53,55,53,4," +
			"53,1001,56,-1,56,1005,56,6,99,0,0,0,0,10",
		[]int64{9, 7, 8, 5, 6},
		18216,
	},
}

func newPipeline(t *testing.T, program string) *Pipeline {
	image, err := intcode.ParseImage(program)
	assert.NoError(t, err)
	return NewPipeline(image)
}

func TestPipeline_Run(t *testing.T) {
	assert := assert.New(t)

	for _, entry := range append(_series, _feedback...) {
		p := newPipeline(t, entry.program)

		output, err := p.Run(entry.phases, 0)
		assert.NoError(err, entry.name)
		assert.Equal(entry.output, output, entry.name)
	}
}

func TestPipeline_RunParallel(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, entry := range append(_series, _feedback...) {
		p := newPipeline(t, entry.program)

		output, err := p.RunParallel(ctx, entry.phases, 0)
		assert.NoError(err, entry.name)
		assert.Equal(entry.output, output, entry.name)
	}
}

func TestPipeline_Search(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, parallel := range []bool{false, true} {
		for _, entry := range _series {
			p := newPipeline(t, entry.program)
			p.Parallel = parallel

			best, output, err := p.Search(ctx, []int64{0, 1, 2, 3, 4}, 0)
			assert.NoError(err, entry.name)
			assert.Equal(entry.phases, best, entry.name)
			assert.Equal(entry.output, output, entry.name)
		}

		for _, entry := range _feedback {
			p := newPipeline(t, entry.program)
			p.Parallel = parallel

			best, output, err := p.Search(ctx, []int64{5, 6, 7, 8, 9}, 0)
			assert.NoError(err, entry.name)
			assert.Equal(entry.phases, best, entry.name)
			assert.Equal(entry.output, output, entry.name)
		}
	}
}

func TestPipeline_Errors(t *testing.T) {
	assert := assert.New(t)

	p := newPipeline(t, "3,0,99")
	_, err := p.Run(nil, 0)
	assert.ErrorIs(err, ErrNoAmplifiers)
	_, err = p.RunParallel(context.Background(), nil, 0)
	assert.ErrorIs(err, ErrNoAmplifiers)

	// Halts without output.
	_, err = p.Run([]int64{0, 1}, 0)
	assert.ErrorIs(err, ErrNoOutput)
	var amp *ErrAmplifier
	if assert.ErrorAs(err, &amp) {
		assert.Equal(0, amp.Index)
	}

	_, err = p.RunParallel(context.Background(), []int64{0, 1}, 0)
	assert.ErrorIs(err, ErrNoOutput)
}

func TestPipeline_FaultDoesNotHang(t *testing.T) {
	assert := assert.New(t)

	// Phase 1 takes a path to an illegal opcode; other phases
	// wait for input forever.
	p := newPipeline(t, "3,20,1005,20,10,3,21,1105,1,5,42,99")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := p.RunParallel(ctx, []int64{0, 1, 0}, 0)
	assert.ErrorIs(err, intcode.ErrIllegalOpcode)
	assert.NoError(ctx.Err())

	var amp *ErrAmplifier
	if assert.ErrorAs(err, &amp) {
		assert.Equal(1, amp.Index)
	}

	_, err = p.Run([]int64{0, 1, 0}, 0)
	assert.ErrorIs(err, intcode.ErrIllegalOpcode)

	var fault *intcode.ErrFault
	if assert.ErrorAs(err, &fault) {
		assert.Equal(int64(10), fault.Ip)
	}
}
