// Package cmd wires the gols command line to the lister.
package cmd

import (
	"fmt"
	"os"

	"github.com/harrison/gols/internal/config"
	"github.com/harrison/gols/internal/format"
	"github.com/harrison/gols/internal/fsys"
	"github.com/harrison/gols/internal/identity"
	"github.com/harrison/gols/internal/lister"
	"github.com/harrison/gols/internal/logger"
	"github.com/harrison/gols/internal/status"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// Execute runs the root command with the process arguments and returns the
// process exit code: the run-status bitmask, or 64 for usage and startup
// errors.
func Execute() int {
	var code int
	root := NewRootCommand(&code)
	if err := root.Execute(); err != nil {
		return 64
	}
	return code
}

// NewRootCommand creates the root cobra command. After a successful run the
// accumulated status bitmask is written to exitCode (which may be nil).
func NewRootCommand(exitCode *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gols [flags] [file...]",
		Short: "List files and their metadata",
		Long: `gols lists filesystem entries and their metadata.

With no arguments it lists the current directory. Directory arguments are
listed entry by entry; other arguments are listed as single entries. Errors
never abort the run: every failure is reported as it happens and folded
into the exit status.

Exit status:
  0   ok
  64  error occurred
  72  file not found
  80  permission denied
  88  file not found and permission denied
  96  user/group lookup didn't work`,
		Version:      Version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, exitCode)
		},
	}

	// Predefining --help keeps cobra from claiming -h, which belongs to
	// --human-readable here.
	cmd.Flags().Bool("help", false, "display this message and exit")

	cmd.Flags().BoolP("all", "a", false, "don't ignore hidden files")
	cmd.Flags().BoolP("long", "l", false, "print long listing format, will show symlinks")
	cmd.Flags().BoolP("recursive", "R", false, "list subdirectories recursively")
	cmd.Flags().BoolP("count", "n", false, "count files only, won't show files")
	cmd.Flags().BoolP("human-readable", "h", false, "with -l, print sizes scaled to K/M/G units")
	cmd.Flags().BoolP("one-per-line", "1", false, "list one file per line (the default; accepted for compatibility)")
	cmd.Flags().String("config", "", "path to config file (default: ~/.config/gols/config.yaml)")
	cmd.Flags().Bool("verbose", false, "enable debug tracing on stderr")

	return cmd
}

// runList implements the root command logic.
func runList(cmd *cobra.Command, args []string, exitCode *int) error {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadDefault()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	// CLI flags override config file settings.
	cfg.MergeWithFlags(
		changedBool(cmd, "all"),
		changedBool(cmd, "long"),
		changedBool(cmd, "recursive"),
		changedBool(cmd, "human-readable"),
		nil,
	)

	countOnly, _ := cmd.Flags().GetBool("count")

	// Verbose flag overrides the configured log level.
	logLevel := cfg.LogLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logLevel = "debug"
	}
	log := logger.NewConsole(os.Stderr, logLevel)

	out := cmd.OutOrStdout()
	tracker := status.NewTracker(out)

	l := &lister.Lister{
		FS: fsys.NewOS(),
		Format: &format.Formatter{
			Identity: identity.NewOS(),
			Human:    cfg.HumanReadable,
		},
		Status: tracker,
		Out:    out,
		Log:    log,
		Opts: lister.Options{
			Long:      cfg.Long,
			All:       cfg.All,
			Recursive: cfg.Recursive,
			CountOnly: countOnly,
		},
	}

	log.Debugf("listing %d argument(s) (long=%v all=%v recursive=%v count=%v)",
		len(args), cfg.Long, cfg.All, cfg.Recursive, countOnly)
	l.Run(args)

	if exitCode != nil {
		*exitCode = tracker.Code()
	}
	return nil
}

// changedBool returns a pointer to the flag value if the user set it, or
// nil so the config value stays in effect.
func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}
