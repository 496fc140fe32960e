package domain

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	m "github.com/mouse-blink/covobj/internal/model"
)

// memFSAdapter serves a virtual tree. Paths may carry a leading slash so
// they look absolute to the code under test.
type memFSAdapter struct {
	fsys    fstest.MapFS
	failing map[m.Path]error
}

func newMemFS(files map[string]fs.FileMode) *memFSAdapter {
	fsys := fstest.MapFS{}
	for name, mode := range files {
		fsys[strings.TrimPrefix(name, "/")] = &fstest.MapFile{Data: []byte("\x7fELF"), Mode: mode}
	}

	return &memFSAdapter{fsys: fsys, failing: map[m.Path]error{}}
}

func (a *memFSAdapter) key(p m.Path) string {
	k := strings.TrimPrefix(string(p), "/")
	if k == "" {
		return "."
	}

	return k
}

func (a *memFSAdapter) ReadDir(dir m.Path) ([]fs.DirEntry, error) {
	if err, ok := a.failing[dir]; ok {
		return nil, err
	}

	return fs.ReadDir(a.fsys, a.key(dir))
}

func (a *memFSAdapter) FileInfo(p m.Path) (os.FileInfo, error) {
	return fs.Stat(a.fsys, a.key(p))
}

func (a *memFSAdapter) Glob(root m.Path, pattern string) ([]m.Path, error) {
	matches, err := fs.Glob(a.fsys, path.Join(a.key(root), pattern))
	if err != nil {
		return nil, err
	}

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path("/"+match))
	}

	return paths, nil
}

func (a *memFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))

	return m.Path(rel), err
}

func (a *memFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(path.Join(elem...))
}

func writeExec(t *testing.T, path string) {
	t.Helper()
	writeMode(t, path, 0o755)
}

func writeMode(t *testing.T, path string, perm os.FileMode) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte("\x7fELF"), perm); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	if err := os.Chmod(path, perm); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
}
