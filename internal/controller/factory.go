package controller

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/covobj/internal/model"
)

// NewUI creates the UI for the requested format. FormatAuto picks a table
// on a terminal and plain lines otherwise, so piped output stays
// machine-readable.
func NewUI(cmd *cobra.Command, format string, useTTY bool) (UI, error) {
	switch format {
	case FormatLines:
		return NewSimpleUI(cmd), nil
	case FormatTable:
		return NewTableUI(cmd), nil
	case FormatAuto, "":
		if useTTY {
			return NewTableUI(cmd), nil
		}

		return NewSimpleUI(cmd), nil
	default:
		return nil, &m.ConfigError{Field: "output format", Value: format, Err: errors.New("want lines, table or auto")}
	}
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
