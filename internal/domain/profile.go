package domain

import (
	"errors"
	"path/filepath"

	m "github.com/mouse-blink/covobj/internal/model"
)

const (
	debugDir   = "debug"
	releaseDir = "release"
)

// ResolveProfileDir maps a profile selector to the directory name the build
// writes that profile's outputs to. dev and test share debug, release and
// bench share release, and a custom profile is used verbatim.
func ResolveProfileDir(profile m.Profile, useRelease bool) string {
	switch {
	case profile == "" && useRelease:
		return releaseDir
	case profile == m.ProfileRelease || profile == m.ProfileBench:
		return releaseDir
	case profile == "" || profile == m.ProfileDev || profile == m.ProfileTest:
		return debugDir
	default:
		return string(profile)
	}
}

// ResolveScanRoot composes TargetDir [/ CrossTarget] / profile directory.
// It does not touch the filesystem.
func ResolveScanRoot(cfg m.PathConfig) (m.Path, error) {
	if cfg.TargetDir == "" {
		return "", &m.ConfigError{Field: "target dir", Err: errors.New("must not be empty")}
	}

	if !filepath.IsAbs(string(cfg.TargetDir)) {
		return "", &m.ConfigError{Field: "target dir", Value: string(cfg.TargetDir), Err: errors.New("must be absolute")}
	}

	elems := []string{string(cfg.TargetDir)}
	if cfg.CrossTarget != "" {
		elems = append(elems, cfg.CrossTarget)
	}

	elems = append(elems, ResolveProfileDir(cfg.Profile, cfg.UseRelease))

	return m.Path(filepath.Join(elems...)), nil
}
