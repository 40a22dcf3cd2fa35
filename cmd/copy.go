package cmd

import (
	"errors"
	"fmt"
	"os"

	"foldermd/pkg/combine"
	"foldermd/pkg/host"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// copyOptions holds the flags of the copy command.
type copyOptions struct {
	includes      []string
	excludes      []string
	maxFileSizeKB int
	workers       int
	workspaces    []string
	settingsPath  string
	output        string
}

func newCopyCmd() *cobra.Command {
	opts := &copyOptions{}

	cmd := &cobra.Command{
		Use:   "copy [folder]",
		Short: "Copy a folder's text files to the clipboard as Markdown",
		Long: `Copy gathers the files under folder that match the include globs and none of the
exclude globs, skips binary and oversized files, and writes one Markdown section per
file to the clipboard.

Settings are read from the copyFolderAsMarkdown keys of the settings document,
then from FOLDERMD_* environment variables (a .env file is honoured), then flags.`,
		Example: `  # Copy the Go sources of ./pkg
  foldermd copy --include '**/*.go' ./pkg

  # Write to a file instead of the clipboard
  foldermd copy --exclude '**/vendor/**' --output /tmp/project.md .`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) > 0 {
				target = args[0]
			}
			return runCopy(cmd, opts, target)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.includes, "include", "i", nil, "Include glob, relative to the folder (repeatable)")
	flags.StringArrayVarP(&opts.excludes, "exclude", "e", nil, "Exclude glob, relative to the folder (repeatable)")
	flags.IntVar(&opts.maxFileSizeKB, "max-file-size-kb", combine.DefaultMaxFileSizeKB, "Skip files larger than this many KB")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "Concurrent file readers (0 = number of CPUs)")
	flags.StringArrayVar(&opts.workspaces, "workspace", nil, "Workspace folder that relative paths are computed against (repeatable, default: working directory)")
	flags.StringVar(&opts.settingsPath, "settings", "", "Settings document (default: <user config dir>/foldermd/settings.yaml)")
	flags.StringVarP(&opts.output, "output", "o", "", "Write the document to this file instead of the clipboard")
	return cmd
}

func init() {
	RootCmd.AddCommand(newCopyCmd())
}

func runCopy(cmd *cobra.Command, opts *copyOptions, target string) error {
	notifier := host.NewTerminalNotifier(cmd.OutOrStdout(), cmd.ErrOrStderr(), term.IsTerminal(int(os.Stderr.Fd())))

	selection, err := loadSelection(cmd, opts)
	if err != nil {
		logger.Error("Failed to load settings", zap.Error(err))
		notifier.Error(fmt.Sprintf("Invalid copyFolderAsMarkdown settings: %v", err))
		return err
	}

	workspaces := opts.workspaces
	if len(workspaces) == 0 {
		if wd, err := os.Getwd(); err == nil {
			workspaces = []string{wd}
		}
	}

	env := combine.Env{
		FS:        host.NewOSFileSystem(logger),
		Clipboard: host.SystemClipboard{},
		Notifier:  notifier,
		Workspace: host.NewWorkspace(workspaces...),
		Logger:    logger,
	}
	if opts.output != "" {
		env.Clipboard = combine.FileSink{Path: opts.output, Logger: logger}
		env.Destination = opts.output
	}

	args := combine.Arguments{
		Target:     target,
		Selection:  selection,
		MaxWorkers: opts.workers,
	}
	if _, err := combine.CopyFolder(cmd.Context(), args, env); err != nil {
		// Nothing matched is a warning, not a failure.
		if errors.Is(err, combine.ErrEmptySelection) {
			return nil
		}
		return err
	}
	return nil
}

// loadSelection layers the settings document, the environment and the command's flags.
func loadSelection(cmd *cobra.Command, opts *copyOptions) (combine.SelectionConfig, error) {
	_ = godotenv.Load()

	path := opts.settingsPath
	if path == "" {
		var err error
		if path, err = host.DefaultSettingsPath(); err != nil {
			logger.Debug("No user settings location", zap.Error(err))
		}
	}

	settings := host.DefaultSettings()
	if path != "" {
		loaded, err := host.LoadSettings(path)
		if err != nil {
			return combine.SelectionConfig{}, err
		}
		settings = loaded
		logger.Debug("Loaded settings", zap.String("path", path))
	}

	settings, err := settings.WithEnv(os.LookupEnv)
	if err != nil {
		return combine.SelectionConfig{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("include") {
		settings.Includes = opts.includes
	}
	if flags.Changed("exclude") {
		settings.Excludes = opts.excludes
	}
	if flags.Changed("max-file-size-kb") {
		settings.MaxFileSizeKB = opts.maxFileSizeKB
	}
	return settings.SelectionConfig(), nil
}
