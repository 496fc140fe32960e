//go:build !windows

package domain

import "io/fs"

// doctestBinary is the file name rustdoc gives a persisted doctest executable.
const doctestBinary = "rust_out"

// isExecutable treats any execute permission bit as the mark of an object
// file. This relies on the host filesystem carrying Unix permission bits.
func isExecutable(info fs.FileInfo) bool {
	return info.Mode().Perm()&0o111 != 0
}
