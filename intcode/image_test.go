package intcode

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImage(t *testing.T) {
	assert := assert.New(t)

	image, err := ParseImage(" 1, -9 ,10,3\n")
	assert.NoError(err)
	assert.Equal(Image{1, -9, 10, 3}, image)
	assert.Equal("1,-9,10,3", image.String())

	image, err = ParseImage("  \n")
	assert.NoError(err)
	assert.Empty(image)

	_, err = ParseImage("1,2,x,4")
	assert.Error(err)
	assert.Contains(err.Error(), "token 2")

	_, err = ParseImage("1,,2")
	assert.Error(err)
}

func TestReadImage(t *testing.T) {
	assert := assert.New(t)

	image, err := ReadImage(strings.NewReader("104,1125899906842624,99"))
	assert.NoError(err)
	assert.Equal(Image{104, 1125899906842624, 99}, image)
}

func TestLoadImage(t *testing.T) {
	assert := assert.New(t)

	name := filepath.Join(t.TempDir(), "prog.txt")
	assert.NoError(os.WriteFile(name, []byte("1,0,0,0,99\n"), 0o644))

	image, err := LoadImage(name)
	assert.NoError(err)
	assert.Equal(Image{1, 0, 0, 0, 99}, image)

	_, err = LoadImage(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestImage_Clone(t *testing.T) {
	assert := assert.New(t)

	image := Image{1, 2}
	clone := image.Clone()
	clone[0] = 7
	assert.Equal(Image{1, 2}, image)
}
