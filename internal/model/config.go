package model

import "regexp"

// Profile is a build profile selector. The empty Profile means no explicit
// profile was requested.
type Profile string

const (
	// ProfileDev is the default development profile.
	ProfileDev Profile = "dev"
	// ProfileTest is the profile used to build test harnesses.
	ProfileTest Profile = "test"
	// ProfileRelease is the optimized profile.
	ProfileRelease Profile = "release"
	// ProfileBench is the profile used to build benchmarks.
	ProfileBench Profile = "bench"
)

// Known reports whether p is one of the built-in profiles.
func (p Profile) Known() bool {
	switch p {
	case ProfileDev, ProfileTest, ProfileRelease, ProfileBench:
		return true
	default:
		return false
	}
}

// PrunePolicy selects which directory names are skipped during the tree walk.
// It is chosen once, when configuration is resolved.
type PrunePolicy int

const (
	// PruneWithoutBuildScripts skips the whole build directory.
	PruneWithoutBuildScripts PrunePolicy = iota
	// PruneWithBuildScripts descends into build so build-script binaries can be
	// reached, but skips their out working directories.
	PruneWithBuildScripts
)

var (
	pruneWithoutBuildScripts = []string{"incremental", ".fingerprint", "build"}
	pruneWithBuildScripts    = []string{"incremental", ".fingerprint", "out"}
)

// PrunedDirs returns the directory names this policy never descends into.
func (p PrunePolicy) PrunedDirs() []string {
	if p == PruneWithBuildScripts {
		return append([]string(nil), pruneWithBuildScripts...)
	}

	return append([]string(nil), pruneWithoutBuildScripts...)
}

// ShouldPrune reports whether a directory with the given base name is skipped.
func (p PrunePolicy) ShouldPrune(name string) bool {
	dirs := pruneWithoutBuildScripts
	if p == PruneWithBuildScripts {
		dirs = pruneWithBuildScripts
	}

	for _, dir := range dirs {
		if dir == name {
			return true
		}
	}

	return false
}

// IncludesBuildScripts reports whether build-script binaries are eligible.
func (p PrunePolicy) IncludesBuildScripts() bool {
	return p == PruneWithBuildScripts
}

func (p PrunePolicy) String() string {
	if p == PruneWithBuildScripts {
		return "with-build-scripts"
	}

	return "without-build-scripts"
}

// PathConfig is the resolved, read-only configuration of a discovery run.
// All paths are absolute.
type PathConfig struct {
	WorkspaceRoot Path
	TargetDir     Path
	DoctestsDir   Path
	// CrossTarget is the cross-compilation triple; empty for host builds.
	CrossTarget     string
	UseRelease      bool
	Profile         Profile
	IncludeDoctests bool
	Prune           PrunePolicy
	// BuildScriptAllow is matched against the package directory of a
	// build-script binary. Only consulted when Prune includes build scripts.
	BuildScriptAllow *regexp.Regexp
	// NameFilter restricts results to stems naming workspace packages or targets.
	NameFilter bool
}
