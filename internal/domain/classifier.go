package domain

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mouse-blink/covobj/internal/adapter"
	m "github.com/mouse-blink/covobj/internal/model"
)

const (
	buildDirName      = "build"
	buildScriptName   = "build-script-build"
	buildScriptPrefix = "build_script_build-"
	cargoLockSuffix   = ".cargo-lock"
)

var excludedExtensions = map[string]struct{}{
	"d":     {},
	"rlib":  {},
	"rmeta": {},
}

// Classifier decides which walk candidates are coverage object files.
type Classifier struct {
	fsAdapter adapter.ArtifactFSAdapter
	root      m.Path
	policy    m.PrunePolicy
	allow     *regexp.Regexp
	names     NameMatcher
}

// NewClassifier constructs a Classifier for candidates found below scanRoot.
func NewClassifier(fsAdapter adapter.ArtifactFSAdapter, cfg m.PathConfig, scanRoot m.Path, names NameMatcher) *Classifier {
	return &Classifier{
		fsAdapter: fsAdapter,
		root:      scanRoot,
		policy:    cfg.Prune,
		allow:     cfg.BuildScriptAllow,
		names:     names,
	}
}

// Classify applies the build-script gate, the object-file predicate and the
// name filter, in that order.
func (c *Classifier) Classify(path m.Path) (m.ArtifactKind, bool) {
	kind, ok := c.gate(path)
	if !ok {
		return "", false
	}

	if !c.IsObjectFile(path) {
		return "", false
	}

	if !c.names.Match(Stem(filepath.Base(string(path)))) {
		return "", false
	}

	return kind, true
}

// gate admits only the build-script binary itself from build/<pkg-hash>/
// directories, and only when its package directory matches the allow
// pattern. Candidates elsewhere pass through as plain binaries.
func (c *Classifier) gate(path m.Path) (m.ArtifactKind, bool) {
	if !c.policy.IncludesBuildScripts() {
		return m.KindBinary, true
	}

	parent := filepath.Dir(string(path))
	grandparent := filepath.Dir(parent)

	if filepath.Base(grandparent) != buildDirName || !c.below(grandparent) {
		return m.KindBinary, true
	}

	stem := FileStem(filepath.Base(string(path)))
	if stem != buildScriptName && !strings.HasPrefix(stem, buildScriptPrefix) {
		return "", false
	}

	if c.allow != nil && !c.allow.MatchString(filepath.Base(parent)) {
		return "", false
	}

	return m.KindBuildScript, true
}

// below reports whether dir lies strictly inside the scan root, so a target
// directory that happens to be named build is not mistaken for the
// build-script output directory.
func (c *Classifier) below(dir string) bool {
	rel, err := filepath.Rel(string(c.root), dir)
	if err != nil || rel == "." {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// IsObjectFile reports whether path is a regular file (links followed) with
// no metadata or archive extension and an executable mark. The file contents
// are never inspected.
func (c *Classifier) IsObjectFile(path m.Path) bool {
	name := filepath.Base(string(path))

	if _, excluded := excludedExtensions[extension(name)]; excluded {
		return false
	}

	if strings.HasSuffix(name, cargoLockSuffix) {
		return false
	}

	info, err := c.fsAdapter.FileInfo(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	return isExecutable(info)
}
