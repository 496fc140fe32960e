package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	m "github.com/mouse-blink/covobj/internal/model"
)

const metadataTimeout = 2 * time.Minute

// MetadataAdapter supplies the workspace package and target names.
type MetadataAdapter interface {
	// Load asks the build system for the metadata of the workspace at root.
	Load(ctx context.Context, root m.Path) (m.WorkspaceIndex, error)
	// LoadFile reads previously saved metadata JSON.
	LoadFile(path m.Path) (m.WorkspaceIndex, error)
}

// CargoMetadataAdapter reads `cargo metadata` output.
type CargoMetadataAdapter struct {
	cargo string
}

// NewCargoMetadataAdapter constructs a CargoMetadataAdapter. The cargo binary
// is taken from $CARGO when set, as build scripts and cargo subcommands do.
func NewCargoMetadataAdapter() *CargoMetadataAdapter {
	cargo := os.Getenv("CARGO")
	if cargo == "" {
		cargo = "cargo"
	}

	return &CargoMetadataAdapter{cargo: cargo}
}

// Load runs `cargo metadata --no-deps` for the manifest at root.
func (a *CargoMetadataAdapter) Load(ctx context.Context, root m.Path) (m.WorkspaceIndex, error) {
	ctx, cancel := context.WithTimeout(ctx, metadataTimeout)
	defer cancel()

	manifest := filepath.Join(string(root), "Cargo.toml")

	// #nosec G204 - cargo binary and manifest path come from the local environment
	cmd := exec.CommandContext(ctx, a.cargo, "metadata", "--format-version", "1", "--no-deps", "--manifest-path", manifest)
	cmd.Dir = string(root)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return m.WorkspaceIndex{}, fmt.Errorf("cargo metadata: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}

	return ParseMetadata(bytes.NewReader(out))
}

// LoadFile parses a saved `cargo metadata` JSON document.
func (a *CargoMetadataAdapter) LoadFile(path m.Path) (m.WorkspaceIndex, error) {
	// #nosec G304 - path is an explicit user-supplied metadata file
	f, err := os.Open(string(path))
	if err != nil {
		return m.WorkspaceIndex{}, err
	}

	defer func() { _ = f.Close() }()

	return ParseMetadata(f)
}

type cargoMetadata struct {
	Packages []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Targets []struct {
			Name string `json:"name"`
		} `json:"targets"`
	} `json:"packages"`
	WorkspaceMembers []string `json:"workspace_members"`
}

// ParseMetadata decodes the parts of `cargo metadata --format-version 1`
// output that name workspace packages and targets.
func ParseMetadata(r io.Reader) (m.WorkspaceIndex, error) {
	var raw cargoMetadata
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return m.WorkspaceIndex{}, fmt.Errorf("decode cargo metadata: %w", err)
	}

	index := m.WorkspaceIndex{
		MemberIDs:    raw.WorkspaceMembers,
		PackagesByID: make(map[string]m.Package, len(raw.Packages)),
	}

	for _, p := range raw.Packages {
		pkg := m.Package{Name: p.Name, Targets: make([]m.Target, 0, len(p.Targets))}
		for _, t := range p.Targets {
			pkg.Targets = append(pkg.Targets, m.Target{Name: t.Name})
		}

		index.PackagesByID[p.ID] = pkg
	}

	return index, nil
}
