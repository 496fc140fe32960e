// Package adapter contains the infrastructure adapters used by the covobj CLI.
package adapter

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/mouse-blink/covobj/internal/model"
)

// ArtifactFSAdapter abstracts the filesystem operations the domain layer relies
// on when scanning a build output tree. It hides direct `os` access so the
// walker and classifier can be tested against a virtual tree.
type ArtifactFSAdapter interface {
	// ReadDir lists the entries of dir sorted by name. Entries are not
	// resolved: a symbolic link is reported as a link, never as a directory.
	ReadDir(dir m.Path) ([]fs.DirEntry, error)

	// FileInfo returns metadata for path, following symbolic links.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Glob returns absolute paths under root matching pattern. A root that
	// does not exist matches nothing.
	Glob(root m.Path, pattern string) ([]m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalArtifactFSAdapter implements ArtifactFSAdapter on the host filesystem.
type LocalArtifactFSAdapter struct{}

// NewLocalArtifactFSAdapter constructs a LocalArtifactFSAdapter.
func NewLocalArtifactFSAdapter() *LocalArtifactFSAdapter {
	return &LocalArtifactFSAdapter{}
}

// ReadDir reads the whole directory and closes it before returning.
func (a *LocalArtifactFSAdapter) ReadDir(dir m.Path) ([]fs.DirEntry, error) {
	return os.ReadDir(string(dir))
}

// FileInfo returns os.Stat metadata for path.
func (a *LocalArtifactFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Glob matches pattern (doublestar syntax, slash separated) below root.
func (a *LocalArtifactFSAdapter) Glob(root m.Path, pattern string) ([]m.Path, error) {
	matches, err := doublestar.Glob(os.DirFS(string(root)), pattern)
	if err != nil {
		return nil, err
	}

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(filepath.Join(string(root), filepath.FromSlash(match))))
	}

	return paths, nil
}

// RelPath returns the relative path from base to target.
func (a *LocalArtifactFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalArtifactFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
