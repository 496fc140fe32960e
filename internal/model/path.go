// Package model defines the data structures shared by the artifact discovery layers.
package model

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}
