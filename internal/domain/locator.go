package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/mouse-blink/covobj/internal/adapter"
	m "github.com/mouse-blink/covobj/internal/model"
)

const doctestPattern = "*/" + doctestBinary

// Locator finds the coverage object files of a built workspace.
type Locator interface {
	// Locate returns the object files sorted by workspace-relative path.
	// Finding nothing is not an error.
	Locate(cfg m.PathConfig, index m.WorkspaceIndex) ([]m.Artifact, error)
}

type locator struct {
	fsAdapter adapter.ArtifactFSAdapter
	logger    *zap.Logger
}

// NewLocator creates a Locator backed by the provided filesystem adapter.
func NewLocator(fsAdapter adapter.ArtifactFSAdapter, logger *zap.Logger) Locator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &locator{
		fsAdapter: fsAdapter,
		logger:    logger,
	}
}

func (l *locator) Locate(cfg m.PathConfig, index m.WorkspaceIndex) ([]m.Artifact, error) {
	if cfg.WorkspaceRoot == "" {
		return nil, &m.ConfigError{Field: "workspace root", Err: errors.New("must not be empty")}
	}

	if cfg.IncludeDoctests && cfg.DoctestsDir == "" {
		return nil, &m.ConfigError{Field: "doctests dir", Err: errors.New("must be set when doctests are included")}
	}

	names, err := l.nameMatcher(cfg, index)
	if err != nil {
		return nil, err
	}

	scanRoot, err := ResolveScanRoot(cfg)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("scanning for object files",
		zap.String("root", string(scanRoot)),
		zap.Stringer("prune", cfg.Prune),
		zap.Stringer("names", names))

	classifier := NewClassifier(l.fsAdapter, cfg, scanRoot, names)
	walker := NewTreeWalker(l.fsAdapter, cfg.Prune, l.logger)
	searched := []string{string(scanRoot)}

	artifacts := []m.Artifact{}

	for path, err := range walker.Walk(scanRoot) {
		if err != nil {
			return nil, err
		}

		kind, ok := classifier.Classify(path)
		if !ok {
			continue
		}

		artifact, err := l.relative(cfg.WorkspaceRoot, path, kind)
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, artifact)
	}

	if cfg.IncludeDoctests {
		searched = append(searched, string(cfg.DoctestsDir))

		doctests, err := l.doctests(cfg, classifier)
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, doctests...)
	}

	slices.SortFunc(artifacts, func(a, b m.Artifact) int {
		return strings.Compare(string(a.Path), string(b.Path))
	})
	artifacts = slices.CompactFunc(artifacts, func(a, b m.Artifact) bool {
		return a.Path == b.Path
	})

	if len(artifacts) == 0 {
		l.logger.Warn("no coverage object files found", zap.String("searched", strings.Join(searched, ", ")))
	}

	return artifacts, nil
}

// nameMatcher returns the workspace name filter when enabled. It is off by
// default: filtering on workspace names has been seen to drop every artifact.
func (l *locator) nameMatcher(cfg m.PathConfig, index m.WorkspaceIndex) (NameMatcher, error) {
	if !cfg.NameFilter {
		return MatchAllNames(), nil
	}

	return BuildNameMatcher(index)
}

// doctests collects <DoctestsDir>/*/rust_out executables.
func (l *locator) doctests(cfg m.PathConfig, classifier *Classifier) ([]m.Artifact, error) {
	matches, err := l.fsAdapter.Glob(cfg.DoctestsDir, doctestPattern)
	if err != nil {
		return nil, fmt.Errorf("scan doctests in %s: %w", cfg.DoctestsDir, err)
	}

	var artifacts []m.Artifact

	for _, path := range matches {
		if !classifier.IsObjectFile(path) {
			continue
		}

		artifact, err := l.relative(cfg.WorkspaceRoot, path, m.KindDoctest)
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

func (l *locator) relative(root, path m.Path, kind m.ArtifactKind) (m.Artifact, error) {
	rel, err := l.fsAdapter.RelPath(root, path)
	if err != nil {
		return m.Artifact{}, fmt.Errorf("failed to get path of %s relative to %s: %w", path, root, err)
	}

	return m.Artifact{Path: rel, Kind: kind}, nil
}
