package intcode

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Image is a program: the initial contents of memory from address 0.
type Image []int64

// ParseImage parses a comma-separated list of decimal integers.
// Whitespace around each token is ignored.
func ParseImage(text string) (image Image, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	tokens := strings.Split(text, ",")
	image = make(Image, 0, len(tokens))
	for n, token := range tokens {
		var value int64
		value, err = strconv.ParseInt(strings.TrimSpace(token), 10, 64)
		if err != nil {
			err = errors.Wrapf(err, "token %d %q", n, token)
			image = nil
			return
		}
		image = append(image, value)
	}

	return
}

// ReadImage parses an image from r.
func ReadImage(r io.Reader) (image Image, err error) {
	text, err := io.ReadAll(r)
	if err != nil {
		err = errors.Wrap(err, "read image")
		return
	}

	return ParseImage(string(text))
}

// LoadImage parses an image from the named file.
func LoadImage(fileName string) (image Image, err error) {
	inf, err := os.Open(fileName)
	if err != nil {
		err = errors.Wrap(err, "load image")
		return
	}
	defer inf.Close()

	image, err = ReadImage(inf)
	if err != nil {
		err = errors.Wrapf(err, "load image %v", fileName)
	}

	return
}

// String returns the image in its comma-separated load format.
func (image Image) String() string {
	var sb strings.Builder
	for n, value := range image {
		if n > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(value, 10))
	}
	return sb.String()
}

// Clone returns an independent copy of the image.
func (image Image) Clone() Image {
	return append(Image(nil), image...)
}
