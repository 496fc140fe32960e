package controller

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/covobj/internal/model"
)

// SimpleUI prints one workspace-relative path per line, the form coverage
// report tools take as object file arguments.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Display prints the artifact paths in the order given. Nothing is printed
// for an empty list.
func (s *SimpleUI) Display(artifacts []m.Artifact) error {
	for _, artifact := range artifacts {
		if _, err := fmt.Fprintln(s.cmd.OutOrStdout(), artifact.Path); err != nil {
			return err
		}
	}

	return nil
}
