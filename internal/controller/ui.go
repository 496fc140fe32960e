// Package controller renders located coverage object files.
package controller

import (
	m "github.com/mouse-blink/covobj/internal/model"
)

// Output formats accepted by NewUI.
const (
	FormatLines = "lines"
	FormatTable = "table"
	FormatAuto  = "auto"
)

// UI defines the interface for displaying located object files.
// Implementations can use different output methods (plain lines, table).
type UI interface {
	Display(artifacts []m.Artifact) error
}
