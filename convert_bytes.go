package colorkey

import (
	"bytes"
	"fmt"

	"github.com/k1LoW/errors"
)

// Result describes a completed conversion.
type Result struct {
	Input  string
	Output string
	// Format is the encoded output format.
	Format string
	Stats  Stats
}

// ConvertBytes applies the default converter to raw image bytes. name only
// selects the output format through its extension.
func ConvertBytes(data []byte, name string) ([]byte, Result, error) {
	return defaultConv().ConvertBytes(data, name)
}

// ConvertBytes decodes data, applies the color key and encodes the result in
// the format implied by the extension of name, all in memory.
func (c *Converter) ConvertBytes(data []byte, name string) (_ []byte, _ Result, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	if len(data) == 0 {
		return nil, Result{}, fmt.Errorf("%w: empty image data", ErrDecode)
	}

	img, inFormat, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, Result{}, err
	}

	// Unreadable input is a decode failure whatever the output name says.
	if _, err := OutputFormat(name); err != nil {
		return nil, Result{}, err
	}
	c.logger.Debug("decoded image", "format", inFormat, "bounds", img.Bounds().String())

	converted, stats, err := c.Convert(img)
	if err != nil {
		return nil, Result{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	var buf bytes.Buffer
	outFormat, err := Encode(&buf, converted, name)
	if err != nil {
		return nil, Result{}, err
	}

	return buf.Bytes(), Result{Output: name, Format: outFormat, Stats: stats}, nil
}
