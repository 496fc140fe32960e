package controller

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/covobj/internal/model"
)

var kindOrder = []m.ArtifactKind{m.KindBinary, m.KindBuildScript, m.KindDoctest}

// TableUI renders artifacts as a Path | Kind table followed by a summary.
type TableUI struct {
	cmd *cobra.Command
}

// NewTableUI creates a new TableUI.
func NewTableUI(cmd *cobra.Command) *TableUI {
	return &TableUI{cmd: cmd}
}

// Display renders the table. An empty list prints only the summary.
func (u *TableUI) Display(artifacts []m.Artifact) error {
	out := u.cmd.OutOrStdout()

	if len(artifacts) > 0 {
		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"Path", "Kind"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetAutoWrapText(false)
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

		for _, artifact := range artifacts {
			table.Append([]string{string(artifact.Path), string(artifact.Kind)})
		}

		table.Render()

		if _, err := io.Copy(out, &tableBuffer); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(out, summaryStyle(out).Render(summary(artifacts)))

	return err
}

func summaryStyle(w io.Writer) lipgloss.Style {
	return lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.Color("6")).
		Bold(true)
}

// summary reads like "3 object files (2 binary, 1 doctest)".
func summary(artifacts []m.Artifact) string {
	counts := make(map[m.ArtifactKind]int)
	for _, artifact := range artifacts {
		counts[artifact.Kind]++
	}

	noun := "object files"
	if len(artifacts) == 1 {
		noun = "object file"
	}

	if len(artifacts) == 0 {
		return "0 " + noun
	}

	parts := make([]string, 0, len(counts))

	for _, kind := range kindOrder {
		if n := counts[kind]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, kind))
		}
	}

	for kind, n := range counts {
		if !slices.Contains(kindOrder, kind) {
			parts = append(parts, fmt.Sprintf("%d %s", n, kind))
		}
	}

	return fmt.Sprintf("%d %s (%s)", len(artifacts), noun, strings.Join(parts, ", "))
}
