package model

import "sort"

// Target is a build target of a package (lib, bin, test, bench, example).
type Target struct {
	Name string
}

// Package is a workspace package and its targets.
type Package struct {
	Name    string
	Targets []Target
}

// WorkspaceIndex is a read-only view of the workspace members.
type WorkspaceIndex struct {
	MemberIDs    []string
	PackagesByID map[string]Package
}

// Names returns the sorted union of member package names and their target names.
// Member ids without a package entry are ignored.
func (w WorkspaceIndex) Names() []string {
	set := make(map[string]struct{})

	for _, id := range w.MemberIDs {
		pkg, ok := w.PackagesByID[id]
		if !ok {
			continue
		}

		if pkg.Name != "" {
			set[pkg.Name] = struct{}{}
		}

		for _, target := range pkg.Targets {
			if target.Name != "" {
				set[target.Name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
