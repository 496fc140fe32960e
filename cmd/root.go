// Package cmd provides the root command and CLI setup for covobj.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/mouse-blink/covobj/internal/adapter"
	"github.com/mouse-blink/covobj/internal/config"
	"github.com/mouse-blink/covobj/internal/controller"
	"github.com/mouse-blink/covobj/internal/domain"
	"github.com/mouse-blink/covobj/internal/logging"
	m "github.com/mouse-blink/covobj/internal/model"
)

var fsAdapter adapter.ArtifactFSAdapter
var metadataAdapter adapter.MetadataAdapter
var newLocator func(adapter.ArtifactFSAdapter, *zap.Logger) domain.Locator
var newUI func(cmd *cobra.Command, format string, useTTY bool) (controller.UI, error)

func init() {
	fsAdapter = adapter.NewLocalArtifactFSAdapter()
	metadataAdapter = adapter.NewCargoMetadataAdapter()
	newLocator = domain.NewLocator
	newUI = controller.NewUI
}

var configFlag string
var flagOpts config.Options

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	defaults := config.DefaultOptions()
	flagOpts = defaults

	cmd := &cobra.Command{
		Use:   "covobj",
		Short: "List coverage-instrumented object files of a cargo workspace",
		Long: `covobj walks the build output of a cargo workspace and prints the
executables and shared libraries a coverage report tool should read
profile data for: test harnesses, binaries, examples and, on request,
build-script binaries and doctest executables.

Paths are printed relative to the workspace root, one per line when
the output is not a terminal:

  llvm-cov report $(covobj --doctests | sed 's/^/--object /')`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runRoot,
	}

	f := cmd.Flags()
	f.StringVarP(&configFlag, "config", "c", "", "config file (default <workspace-root>/"+config.FileName+")")
	f.StringVarP(&flagOpts.WorkspaceRoot, "workspace-root", "w", defaults.WorkspaceRoot, "workspace root; output paths are relative to it")
	f.StringVar(&flagOpts.TargetDir, "target-dir", defaults.TargetDir, "build output directory, relative to the workspace root unless absolute")
	f.StringVar(&flagOpts.DoctestsDir, "doctests-dir", defaults.DoctestsDir, "directory doctest executables were persisted to")
	f.StringVarP(&flagOpts.Target, "target", "t", "", "cross-compilation target triple")
	f.BoolVarP(&flagOpts.Release, "release", "r", false, "scan the release profile output")
	f.StringVarP(&flagOpts.Profile, "profile", "p", "", "build profile (dev, test, release, bench or a custom name)")
	f.BoolVar(&flagOpts.Doctests, "doctests", false, "include doctest executables")
	f.BoolVar(&flagOpts.BuildScripts, "build-scripts", false, "include build-script binaries")
	f.StringVar(&flagOpts.BuildScriptAllow, "build-script-allow", defaults.BuildScriptAllow, "regular expression a build-script package directory must match")
	f.BoolVar(&flagOpts.NameFilter, "name-filter", false, "keep only files named after workspace packages and targets")
	f.StringVar(&flagOpts.Metadata, "metadata", "", "saved cargo metadata JSON to read instead of running cargo")
	f.StringVarP(&flagOpts.Format, "format", "f", defaults.Format, "output format: lines, table or auto")
	f.StringVar(&flagOpts.LogLevel, "log-level", defaults.LogLevel, "log level written to stderr")

	return cmd
}

func runRoot(cmd *cobra.Command, _ []string) error {
	opts, err := config.Load(flagOpts.WorkspaceRoot, configFlag)
	if err != nil {
		return err
	}

	overrideChanged(cmd.Flags(), &opts, flagOpts)

	logger, err := logging.New(cmd.ErrOrStderr(), opts.LogLevel)
	if err != nil {
		return err
	}

	defer func() { _ = logger.Sync() }()

	ui, err := newUI(cmd, opts.Format, controller.IsTTY(cmd.OutOrStdout()))
	if err != nil {
		return err
	}

	cfg, err := opts.Resolve()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	index, err := loadIndex(ctx, opts, cfg)
	if err != nil {
		return err
	}

	artifacts, err := newLocator(fsAdapter, logger).Locate(cfg, index)
	if err != nil {
		return err
	}

	return ui.Display(artifacts)
}

// overrideChanged copies the flags the user set explicitly over the values
// read from the config file.
func overrideChanged(flags *pflag.FlagSet, opts *config.Options, set config.Options) {
	overrides := map[string]func(){
		"workspace-root":     func() { opts.WorkspaceRoot = set.WorkspaceRoot },
		"target-dir":         func() { opts.TargetDir = set.TargetDir },
		"doctests-dir":       func() { opts.DoctestsDir = set.DoctestsDir },
		"target":             func() { opts.Target = set.Target },
		"release":            func() { opts.Release = set.Release },
		"profile":            func() { opts.Profile = set.Profile },
		"doctests":           func() { opts.Doctests = set.Doctests },
		"build-scripts":      func() { opts.BuildScripts = set.BuildScripts },
		"build-script-allow": func() { opts.BuildScriptAllow = set.BuildScriptAllow },
		"name-filter":        func() { opts.NameFilter = set.NameFilter },
		"metadata":           func() { opts.Metadata = set.Metadata },
		"format":             func() { opts.Format = set.Format },
		"log-level":          func() { opts.LogLevel = set.LogLevel },
	}

	flags.Visit(func(f *pflag.Flag) {
		if override, ok := overrides[f.Name]; ok {
			override()
		}
	})
}

// loadIndex supplies workspace names only when the name filter needs them.
func loadIndex(ctx context.Context, opts config.Options, cfg m.PathConfig) (m.WorkspaceIndex, error) {
	if !cfg.NameFilter {
		return m.WorkspaceIndex{}, nil
	}

	if opts.Metadata != "" {
		return metadataAdapter.LoadFile(m.Path(opts.Metadata))
	}

	return metadataAdapter.Load(ctx, cfg.WorkspaceRoot)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
