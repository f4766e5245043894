package intcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadBeyondEnd(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(Image{1, 2, 3})

	value, err := mem.Read(2)
	assert.NoError(err)
	assert.Equal(int64(3), value)

	value, err = mem.Read(1000)
	assert.NoError(err)
	assert.Equal(int64(0), value)
	assert.Equal(int64(3), mem.Len())
}

func TestMemory_WriteGrows(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(Image{1, 2, 3})

	err := mem.Write(7, 42)
	assert.NoError(err)
	assert.Equal(int64(8), mem.Len())
	assert.Equal([]int64{1, 2, 3, 0, 0, 0, 0, 42}, mem.Data)
}

func TestMemory_NegativeAddress(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	_, err := mem.Read(-1)
	assert.ErrorIs(err, ErrNegativeAddress)

	err = mem.Write(-5, 1)
	assert.ErrorIs(err, ErrNegativeAddress)
	assert.Equal(int64(0), mem.Len())
}

func TestMemory_Limit(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Limit: 16}

	assert.NoError(mem.Write(15, 1))
	assert.ErrorIs(mem.Write(16, 1), ErrAddressLimit)

	mem = &Memory{}
	assert.ErrorIs(mem.Write(MEMORY_LIMIT, 1), ErrAddressLimit)
}

func TestMemory_LoadCopies(t *testing.T) {
	assert := assert.New(t)

	image := Image{5, 6}
	mem := NewMemory(image)
	assert.NoError(mem.Write(0, 9))
	assert.Equal(Image{5, 6}, image)
}
