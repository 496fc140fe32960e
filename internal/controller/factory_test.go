package controller

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/covobj/internal/model"
)

func TestNewUI_Formats(t *testing.T) {
	tests := []struct {
		format string
		tty    bool
		want   string
	}{
		{format: FormatLines, tty: true, want: "*controller.SimpleUI"},
		{format: FormatTable, tty: false, want: "*controller.TableUI"},
		{format: FormatAuto, tty: true, want: "*controller.TableUI"},
		{format: FormatAuto, tty: false, want: "*controller.SimpleUI"},
		{format: "", tty: false, want: "*controller.SimpleUI"},
	}

	for _, tt := range tests {
		cmd := &cobra.Command{}
		cmd.SetOut(&bytes.Buffer{})

		ui, err := NewUI(cmd, tt.format, tt.tty)
		if err != nil {
			t.Fatalf("NewUI(%q, %v) error = %v", tt.format, tt.tty, err)
		}

		switch ui.(type) {
		case *SimpleUI:
			if tt.want != "*controller.SimpleUI" {
				t.Errorf("NewUI(%q, %v) returned %T, want %s", tt.format, tt.tty, ui, tt.want)
			}
		case *TableUI:
			if tt.want != "*controller.TableUI" {
				t.Errorf("NewUI(%q, %v) returned %T, want %s", tt.format, tt.tty, ui, tt.want)
			}
		default:
			t.Errorf("NewUI(%q, %v) returned unexpected %T", tt.format, tt.tty, ui)
		}
	}
}

func TestNewUI_UnknownFormat(t *testing.T) {
	_, err := NewUI(&cobra.Command{}, "json", false)
	if err == nil {
		t.Fatal("NewUI(json) expected error")
	}

	if !errors.Is(err, m.ErrInvalidConfig) {
		t.Errorf("NewUI(json) error = %v, want ErrInvalidConfig", err)
	}
}

func TestIsTTY_WithInvalidFile(t *testing.T) {
	file, err := os.CreateTemp("", "covobj-tty")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	file.Close()
	defer os.Remove(file.Name())

	if IsTTY(file) {
		t.Fatalf("IsTTY(regular file) = true, want false")
	}
}

func TestIsTTY_WithCharDevice(t *testing.T) {
	file, err := os.Open("/dev/null")
	if err != nil {
		t.Skip("/dev/null not available")
	}
	defer file.Close()

	if !IsTTY(file) {
		t.Fatalf("IsTTY(/dev/null) = false, want true")
	}
}

func TestIsTTY_WithNonTerminal(t *testing.T) {
	var buf bytes.Buffer

	if IsTTY(&buf) {
		t.Error("IsTTY(buffer) = true, want false")
	}
}
