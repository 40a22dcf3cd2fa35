package cmd

import (
	"errors"
	"fmt"
	"os"

	"foldermd/pkg/combine"
	"foldermd/pkg/logging"
	"foldermd/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "foldermd"

var (
	logger = zap.NewNop()
	debug  bool
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   appName,
	Short: "foldermd copies a folder's text files to the clipboard as Markdown",
	Long: `foldermd gathers the text files of a folder, wraps each one in a fenced code block
headed by its relative path, and places the resulting Markdown document on the clipboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !debug {
			return nil
		}
		if err := logging.Setup(true, appName, version.Get().Version); err != nil {
			return fmt.Errorf("failed to initialize debug logger: %w", err)
		}
		logger = logging.Logger
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging, including skipped files")
}

// Execute adds all child commands to the root command and runs it with the given logger.
func Execute(l *zap.Logger) error {
	if l != nil {
		logger = l
	}
	err := RootCmd.Execute()
	if err != nil && !reported(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// reported tells whether err was already shown to the user by the copy command.
func reported(err error) bool {
	for _, kind := range []error{
		combine.ErrInvalidTarget,
		combine.ErrConfiguration,
		combine.ErrEmptySelection,
		combine.ErrClipboardWrite,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
