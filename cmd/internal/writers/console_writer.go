package writers

import (
	"fmt"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"io"
	"os"
)

// ConsoleWriter prints each document after its file name, in file name order.
type ConsoleWriter struct {
	// Out defaults to stdout
	Out io.Writer
}

func (c ConsoleWriter) Write(files map[string]string) (string, error) {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	names := maps.Keys(files)
	slices.Sort(names)

	for _, name := range names {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return "", err
		}

		if _, err := fmt.Fprintln(out, files[name]); err != nil {
			return "", err
		}
	}

	return "", nil
}
