//go:build !windows

package domain

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/mouse-blink/covobj/internal/adapter"
	m "github.com/mouse-blink/covobj/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestClassifier_IsObjectFile(t *testing.T) {
	tree := newMemFS(map[string]fs.FileMode{
		"t/debug/mybin":                 0o755,
		"t/debug/mybin.d":               0o644,
		"t/debug/exec.d":                0o755,
		"t/debug/deps/libfoo.rlib":      0o755,
		"t/debug/deps/libfoo.rmeta":     0o755,
		"t/debug/deps/libfoo-12ab.so":   0o755,
		"t/debug/deps/.cargo-lock":      0o755,
		"t/debug/deps/run.cargo-lock":   0o755,
		"t/debug/noexec":                0o644,
		"t/debug/group-exec":            0o610,
		"t/debug/other-exec":            0o601,
		"t/debug/subdir":                fs.ModeDir | 0o755,
		"t/debug/link":                  fs.ModeSymlink | 0o777,
		"t/debug/deps/foo-0a1b2c3d.dll": 0o755,
	})
	classifier := NewClassifier(tree, m.PathConfig{}, "t/debug", MatchAllNames())

	tests := []struct {
		path string
		want bool
	}{
		{path: "t/debug/mybin", want: true},
		{path: "t/debug/mybin.d", want: false},
		{path: "t/debug/exec.d", want: false},
		{path: "t/debug/deps/libfoo.rlib", want: false},
		{path: "t/debug/deps/libfoo.rmeta", want: false},
		{path: "t/debug/deps/libfoo-12ab.so", want: true},
		{path: "t/debug/deps/.cargo-lock", want: false},
		{path: "t/debug/deps/run.cargo-lock", want: false},
		{path: "t/debug/noexec", want: false},
		{path: "t/debug/group-exec", want: true},
		{path: "t/debug/other-exec", want: true},
		{path: "t/debug/subdir", want: false},
		{path: "t/debug/link", want: false},
		{path: "t/debug/missing", want: false},
		{path: "t/debug/deps/foo-0a1b2c3d.dll", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.IsObjectFile(m.Path(tt.path)))
		})
	}
}

func TestClassifier_NoExecuteBitNeverIncluded(t *testing.T) {
	files := map[string]fs.FileMode{}
	names := []string{"a", "a.so", "a.exe", "liba.dylib", "a.wasm", "a.d", "a.rlib"}

	for _, name := range names {
		files["t/debug/"+name] = 0o644
	}

	classifier := NewClassifier(newMemFS(files), m.PathConfig{}, "t/debug", MatchAllNames())

	for _, name := range names {
		assert.False(t, classifier.IsObjectFile(m.Path("t/debug/"+name)), name)
	}
}

func TestClassifier_DanglingLink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")

	if err := os.Symlink(filepath.Join(dir, "gone"), link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	target := filepath.Join(dir, "real")
	writeExec(t, target)

	good := filepath.Join(dir, "good-link")
	if err := os.Symlink(target, good); err != nil {
		t.Fatal(err)
	}

	classifier := NewClassifier(adapter.NewLocalArtifactFSAdapter(), m.PathConfig{}, m.Path(dir), MatchAllNames())

	assert.False(t, classifier.IsObjectFile(m.Path(link)))
	assert.True(t, classifier.IsObjectFile(m.Path(good)), "a link to an executable file qualifies")
}

func TestClassifier_BuildScriptGate(t *testing.T) {
	tree := newMemFS(map[string]fs.FileMode{
		"t/debug/app":                                      0o755,
		"t/debug/build/foo-1234/build-script-build":        0o755,
		"t/debug/build/bar-9999/build-script-build":        0o755,
		"t/debug/build/foo-1234/build_script_build-0a1b2c": 0o755,
		"t/debug/build/foo-1234/build-script-main":         0o755,
		"t/debug/build/foo-1234/root-output":               0o755,
		"t/debug/build/foo-1234/nested/build-script-build": 0o755,
		"t/debug/build/foo-1234/nested/tool":               0o755,
		"t/debug/build/foo-noexec/build-script-build":      0o644,
	})

	cfg := m.PathConfig{
		Prune:            m.PruneWithBuildScripts,
		BuildScriptAllow: regexp.MustCompile(`^foo-`),
	}
	classifier := NewClassifier(tree, cfg, "t/debug", MatchAllNames())

	tests := []struct {
		path string
		kind m.ArtifactKind
		ok   bool
	}{
		{path: "t/debug/app", kind: m.KindBinary, ok: true},
		{path: "t/debug/build/foo-1234/build-script-build", kind: m.KindBuildScript, ok: true},
		{path: "t/debug/build/bar-9999/build-script-build", ok: false},
		{path: "t/debug/build/foo-1234/build_script_build-0a1b2c", kind: m.KindBuildScript, ok: true},
		{path: "t/debug/build/foo-1234/build-script-main", ok: false},
		{path: "t/debug/build/foo-1234/root-output", ok: false},
		{path: "t/debug/build/foo-1234/nested/build-script-build", kind: m.KindBinary, ok: true},
		{path: "t/debug/build/foo-1234/nested/tool", kind: m.KindBinary, ok: true},
		{path: "t/debug/build/foo-noexec/build-script-build", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			kind, ok := classifier.Classify(m.Path(tt.path))

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestClassifier_BuildScriptGate_NilAllowMatchesAll(t *testing.T) {
	tree := newMemFS(map[string]fs.FileMode{
		"t/debug/build/bar-9999/build-script-build": 0o755,
	})
	classifier := NewClassifier(tree, m.PathConfig{Prune: m.PruneWithBuildScripts}, "t/debug", MatchAllNames())

	kind, ok := classifier.Classify("t/debug/build/bar-9999/build-script-build")
	assert.True(t, ok)
	assert.Equal(t, m.KindBuildScript, kind)
}

func TestClassifier_BuildScriptGate_InactiveWithoutBuildScripts(t *testing.T) {
	tree := newMemFS(map[string]fs.FileMode{
		"t/debug/build/foo-1234/root-output": 0o755,
	})
	classifier := NewClassifier(tree, m.PathConfig{Prune: m.PruneWithoutBuildScripts}, "t/debug", MatchAllNames())

	kind, ok := classifier.Classify("t/debug/build/foo-1234/root-output")
	assert.True(t, ok)
	assert.Equal(t, m.KindBinary, kind)
}

func TestClassifier_BuildScriptGate_TargetDirNamedBuild(t *testing.T) {
	tree := newMemFS(map[string]fs.FileMode{
		"build/debug/app": 0o755,
	})
	classifier := NewClassifier(tree, m.PathConfig{Prune: m.PruneWithBuildScripts}, "build/debug", MatchAllNames())

	kind, ok := classifier.Classify("build/debug/app")
	assert.True(t, ok)
	assert.Equal(t, m.KindBinary, kind)
}

func TestClassifier_NameFilter(t *testing.T) {
	tree := newMemFS(map[string]fs.FileMode{
		"t/debug/deps/my_crate-0123abcd":   0o755,
		"t/debug/deps/libmy_crate-00ff.so": 0o755,
		"t/debug/deps/serde-0123abcd":      0o755,
	})

	names, err := BuildNameMatcher(m.WorkspaceIndex{
		MemberIDs:    []string{"my-crate"},
		PackagesByID: map[string]m.Package{"my-crate": {Name: "my-crate"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	classifier := NewClassifier(tree, m.PathConfig{}, "t/debug", names)

	_, ok := classifier.Classify("t/debug/deps/my_crate-0123abcd")
	assert.True(t, ok)

	_, ok = classifier.Classify("t/debug/deps/libmy_crate-00ff.so")
	assert.True(t, ok)

	_, ok = classifier.Classify("t/debug/deps/serde-0123abcd")
	assert.False(t, ok)
}
