package colorkey

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/k1LoW/errors"
)

// OutputPrefix is prepended to the input base name to form the output name.
const OutputPrefix = "new-"

// OutputName returns the output file name for path: the base name with
// OutputPrefix prepended. The directory component of path is dropped.
func OutputName(path string) string {
	return OutputPrefix + filepath.Base(path)
}

// ConvertFile applies the default converter to the file at path.
func ConvertFile(path, dir string) (Result, error) {
	return defaultConv().ConvertFile(path, dir)
}

// ConvertFile reads the image at path, applies the color key and writes the
// result to OutputName(path) inside dir. An empty dir means the current
// working directory. The output is fully encoded before the file is created,
// so a failed run leaves no output file behind.
func (c *Converter) ConvertFile(path, dir string) (_ Result, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	data, err := readInput(path)
	if err != nil {
		return Result{}, err
	}

	outPath := OutputName(path)
	if dir != "" {
		outPath = filepath.Join(dir, outPath)
	}

	encoded, res, err := c.ConvertBytes(data, outPath)
	if err != nil {
		return Result{}, fmt.Errorf("convert %s: %w", path, err)
	}

	if err := writeOutput(outPath, encoded); err != nil {
		return Result{}, err
	}

	res.Input = path
	res.Output = outPath
	c.logger.Debug("wrote output", "path", outPath, "format", res.Format, "bytes", len(encoded))

	return res, nil
}

func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %w: %w", ErrDecode, ErrNotFound, err)
		}
		return nil, fmt.Errorf("%w: open input: %w", ErrDecode, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read input: %w", ErrDecode, err)
	}
	return data, nil
}

// writeOutput creates or truncates outPath. A failed write removes the
// partial file.
func writeOutput(outPath string, data []byte) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: create output: %w", ErrEncode, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(outPath)
		return fmt.Errorf("%w: write output: %w", ErrEncode, err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(outPath)
		return fmt.Errorf("%w: close output: %w", ErrEncode, err)
	}

	return nil
}
