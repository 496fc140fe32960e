package model

// ArtifactKind tells how an artifact was discovered.
type ArtifactKind string

const (
	// KindBinary is an executable found in the profile directory tree.
	KindBinary ArtifactKind = "binary"
	// KindBuildScript is a build-script binary admitted by the allow pattern.
	KindBuildScript ArtifactKind = "build-script"
	// KindDoctest is a compiled doctest (rust_out).
	KindDoctest ArtifactKind = "doctest"
)

// Artifact is a coverage object file, relative to the workspace root.
type Artifact struct {
	Path Path
	Kind ArtifactKind
}

// ArtifactPaths returns the paths of artifacts in order.
func ArtifactPaths(artifacts []Artifact) []string {
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		paths = append(paths, string(a.Path))
	}

	return paths
}
