package script

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/intcode"
)

func TestExec(t *testing.T) {
	assert := assert.New(t)

	image := intcode.Image{1, 0, 0, 0, 99}

	src := `
patch = {1: 12, 2: peek(4) - 97, image_len + 1: OP_HALT}
input = [NAT_ADDRESS, -1] + ascii("A,B\n")
phases = range(5, 10)
`
	setup, err := Exec("setup.star", src, image)
	assert.NoError(err)
	assert.Equal(map[int64]int64{1: 12, 2: 2, 6: 99}, setup.Patch)
	assert.Equal([]int64{255, -1, 'A', ',', 'B', '\n'}, setup.Input)
	assert.Equal([]int64{5, 6, 7, 8, 9}, setup.Phases)

	patched, err := setup.Patched(image)
	assert.NoError(err)
	assert.Equal(intcode.Image{1, 12, 2, 0, 99, 0, 99}, patched)
	assert.Equal(intcode.Image{1, 0, 0, 0, 99}, image)
}

func TestExec_Empty(t *testing.T) {
	assert := assert.New(t)

	setup, err := Exec("empty.star", "x = peek(100)\n", nil)
	assert.NoError(err)
	assert.Nil(setup.Patch)
	assert.Nil(setup.Input)
	assert.Nil(setup.Phases)

	m := intcode.NewMachine(intcode.Image{99})
	assert.NoError(setup.Apply(&m.Memory))
	assert.Equal([]int64{99}, m.Memory.Data)
}

func TestExec_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		src  string
		err  error
	}){
		{"patch_list", "patch = [1]\n", ErrGlobal{Name: "patch", Want: "a dict of address to value"}},
		{"patch_value", "patch = {1: 'x'}\n", ErrGlobal{Name: "patch", Want: "an integer"}},
		{"input_int", "input = 3\n", ErrGlobal{Name: "input", Want: "a list of integers"}},
		{"phases_str", "phases = ['a']\n", ErrGlobal{Name: "phases", Want: "an integer"}},
		{"phases_big", "phases = [1 << 70]\n", ErrGlobal{Name: "phases", Want: "a 64-bit integer"}},
	}

	for _, entry := range table {
		setup, err := Exec(entry.name, entry.src, nil)
		assert.Nil(setup, entry.name)
		assert.ErrorIs(err, entry.err, entry.name)
	}

	_, err := Exec("syntax", "patch = {", nil)
	assert.Error(err)

	_, err = Exec("peek", "x = peek(-1)\n", nil)
	assert.ErrorContains(err, "out of range")

	setup, err := Exec("limit", "patch = {-1: 0}\n", nil)
	assert.NoError(err)
	_, err = setup.Patched(nil)
	assert.ErrorIs(err, intcode.ErrNegativeAddress)
}
