package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
)

// go run ./cmd/colorkey photo.png            -> ./new-photo.png
// go run ./cmd/colorkey -v /tmp/dir/icon.bmp -> ./new-icon.bmp

func main() {
	cmd := newRootCmd()
	cmd.SetErr(colorable.NewColorableStderr())
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "colorkey: %v\n", err)
		os.Exit(1)
	}
}
