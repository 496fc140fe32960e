package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/covobj/internal/model"
)

// NameMatcher recognizes artifact stems that belong to workspace packages or targets.
type NameMatcher struct {
	all bool
	re  *regexp.Regexp
}

// MatchAllNames returns a matcher that accepts every stem.
func MatchAllNames() NameMatcher {
	return NameMatcher{all: true}
}

// BuildNameMatcher builds a matcher from the workspace names. Artifact names
// substitute '-' with '_', may carry a lib prefix and end with -<hash>, so the
// pattern is ^(lib)?(names...)(-[0-9a-f]+)?$. With no names the matcher
// accepts nothing.
func BuildNameMatcher(index m.WorkspaceIndex) (NameMatcher, error) {
	names := index.Names()
	if len(names) == 0 {
		return NameMatcher{}, nil
	}

	seen := make(map[string]struct{}, 2*len(names))
	alts := make([]string, 0, 2*len(names))

	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}

		seen[name] = struct{}{}
		alts = append(alts, regexp.QuoteMeta(name))
	}

	for _, name := range names {
		add(name)

		if strings.Contains(name, "-") {
			add(strings.ReplaceAll(name, "-", "_"))
		}
	}

	pattern := "^(lib)?(" + strings.Join(alts, "|") + ")(-[0-9a-f]+)?$"

	re, err := regexp.Compile(pattern)
	if err != nil {
		return NameMatcher{}, &m.ConfigError{Field: "workspace name pattern", Value: pattern, Err: err}
	}

	return NameMatcher{re: re}, nil
}

// Match reports whether stem names a workspace package or target.
func (n NameMatcher) Match(stem string) bool {
	if n.all {
		return true
	}

	if n.re == nil {
		return false
	}

	return n.re.MatchString(stem)
}

func (n NameMatcher) String() string {
	switch {
	case n.all:
		return ".*"
	case n.re == nil:
		return "<none>"
	default:
		return n.re.String()
	}
}

// FileStem returns name with its final extension removed. A leading dot does
// not start an extension, so ".hidden" is its own stem.
func FileStem(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i]
	}

	return name
}

// Stem strips extensions until none remain: foo.tar.gz becomes foo.
func Stem(name string) string {
	for {
		stem := FileStem(name)
		if stem == name {
			return name
		}

		name = stem
	}
}

// extension returns the final extension of name without the dot.
func extension(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[i+1:]
	}

	return ""
}
