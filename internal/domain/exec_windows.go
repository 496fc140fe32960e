//go:build windows

package domain

import (
	"io/fs"
	"path/filepath"
	"strings"
)

const doctestBinary = "rust_out.exe"

// isExecutable has no permission bits to consult on Windows and falls back
// to the executable and shared library extensions.
func isExecutable(info fs.FileInfo) bool {
	ext := filepath.Ext(info.Name())

	return strings.EqualFold(ext, ".exe") || strings.EqualFold(ext, ".dll")
}
