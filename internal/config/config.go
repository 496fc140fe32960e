// Package config loads covobj options from an optional YAML file and turns
// them into the resolved path configuration the domain layer consumes.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/covobj/internal/model"
)

// FileName is the config file looked up in the workspace root.
const FileName = "covobj.yaml"

// Options are the user-facing settings. Relative directories are resolved
// against WorkspaceRoot.
type Options struct {
	WorkspaceRoot    string `yaml:"workspace_root"`
	TargetDir        string `yaml:"target_dir"`
	DoctestsDir      string `yaml:"doctests_dir"`
	Target           string `yaml:"target"`
	Release          bool   `yaml:"release"`
	Profile          string `yaml:"profile"`
	Doctests         bool   `yaml:"doctests"`
	BuildScripts     bool   `yaml:"build_scripts"`
	BuildScriptAllow string `yaml:"build_script_allow"`
	NameFilter       bool   `yaml:"name_filter"`
	Metadata         string `yaml:"metadata"`
	Format           string `yaml:"format"`
	LogLevel         string `yaml:"log_level"`
}

func DefaultOptions() Options {
	return Options{
		WorkspaceRoot:    ".",
		TargetDir:        "target",
		DoctestsDir:      filepath.Join("target", "doctestbins"),
		BuildScriptAllow: ".*",
		Format:           "auto",
		LogLevel:         "warn",
	}
}

// Load reads explicitPath when set, failing if it does not exist. Otherwise
// it reads FileName from workspaceRoot, where a missing file means defaults.
func Load(workspaceRoot, explicitPath string) (Options, error) {
	if explicitPath != "" {
		return load(explicitPath, true)
	}

	if workspaceRoot == "" {
		workspaceRoot = DefaultOptions().WorkspaceRoot
	}

	return LoadFrom(filepath.Join(workspaceRoot, FileName))
}

// LoadFrom reads configPath on top of DefaultOptions. A missing file is not
// an error.
func LoadFrom(configPath string) (Options, error) {
	return load(configPath, false)
}

func load(configPath string, required bool) (Options, error) {
	opts := DefaultOptions()

	// #nosec G304 - config path is chosen by the user
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return opts, nil
		}

		return opts, &m.ConfigError{Field: "config file", Value: configPath, Err: err}
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return DefaultOptions(), &m.ConfigError{Field: "config file", Value: configPath, Err: err}
	}

	return opts, nil
}

// Resolve validates the options and builds the PathConfig for a scan. The
// build-script allow pattern is compiled here, so a bad pattern fails before
// any directory is read.
func (o Options) Resolve() (m.PathConfig, error) {
	root := o.WorkspaceRoot
	if root == "" {
		root = "."
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return m.PathConfig{}, &m.ConfigError{Field: "workspace root", Value: root, Err: err}
	}

	if o.TargetDir == "" {
		return m.PathConfig{}, &m.ConfigError{Field: "target dir", Err: errors.New("must not be empty")}
	}

	profile := m.Profile(o.Profile)
	if err := validateProfile(profile, o.Release); err != nil {
		return m.PathConfig{}, err
	}

	if strings.ContainsAny(o.Target, `/\`) || o.Target == "." || o.Target == ".." {
		return m.PathConfig{}, &m.ConfigError{Field: "target triple", Value: o.Target, Err: errors.New("must be a single path segment")}
	}

	allow, err := regexp.Compile(o.BuildScriptAllow)
	if err != nil {
		return m.PathConfig{}, &m.ConfigError{Field: "build-script allow pattern", Value: o.BuildScriptAllow, Err: err}
	}

	cfg := m.PathConfig{
		WorkspaceRoot:    m.Path(absRoot),
		TargetDir:        m.Path(under(absRoot, o.TargetDir)),
		CrossTarget:      o.Target,
		UseRelease:       o.Release,
		Profile:          profile,
		IncludeDoctests:  o.Doctests,
		Prune:            m.PruneWithoutBuildScripts,
		BuildScriptAllow: allow,
		NameFilter:       o.NameFilter,
	}

	if o.DoctestsDir != "" {
		cfg.DoctestsDir = m.Path(under(absRoot, o.DoctestsDir))
	}

	if o.BuildScripts {
		cfg.Prune = m.PruneWithBuildScripts
	}

	return cfg, nil
}

func validateProfile(profile m.Profile, release bool) error {
	if profile == "" || profile.Known() {
		if release && profile != "" && profile != m.ProfileRelease {
			return &m.ConfigError{Field: "profile", Value: string(profile), Err: errors.New("conflicts with release")}
		}

		return nil
	}

	if release {
		return &m.ConfigError{Field: "profile", Value: string(profile), Err: errors.New("conflicts with release")}
	}

	name := string(profile)
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return &m.ConfigError{Field: "profile", Value: name, Err: errors.New("must be a single path segment")}
	}

	return nil
}

func under(root, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}

	return filepath.Join(root, dir)
}
