// File: pkg/combine/execute.go
package combine

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// ProgressTitle is shown while a folder is being assembled.
const ProgressTitle = "Copying folder as Markdown"

// DestinationClipboard names the default output sink.
const DestinationClipboard = "clipboard"

// Env bundles the host collaborators used by CopyFolder.
type Env struct {
	FS          FileSystem
	Clipboard   Clipboard
	Notifier    Notifier
	Workspace   Workspace // Optional; without it paths are relative to the target.
	Logger      *zap.Logger
	Destination string // Label for the output sink; defaults to DestinationClipboard.
}

// CopyFolder is the user-facing copy operation: it validates the target, assembles
// the document and writes it to the clipboard. Every outcome is reported through the
// notifier; the returned error carries one of the package's error kinds.
func CopyFolder(ctx context.Context, args Arguments, env Env) (Result, error) {
	logger := env.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	notifier := env.Notifier
	if notifier == nil {
		notifier = nopNotifier{}
	}
	destination := env.Destination
	if destination == "" {
		destination = DestinationClipboard
	}

	target, err := ResolveTarget(env.FS, args.Target)
	if err != nil {
		logger.Error("Rejected copy target", zap.String("target", args.Target), zap.Error(err))
		notifier.Error("No folder selected.")
		return Result{}, err
	}

	if err := args.Selection.Validate(); err != nil {
		logger.Error("Invalid selection settings", zap.Error(err))
		notifier.Error(fmt.Sprintf("Invalid copyFolderAsMarkdown settings: %v", err))
		return Result{}, err
	}

	baseRoot := target
	if env.Workspace != nil {
		if folder, ok := env.Workspace.FolderFor(target); ok {
			baseRoot = folder
		}
	}
	logger.Info("Starting copy", zap.String("target", target), zap.String("baseRoot", baseRoot))

	var doc Document
	err = notifier.Progress(ProgressTitle, func() error {
		var assembleErr error
		doc, assembleErr = Assemble(ctx, env.FS, target, baseRoot, args.Selection, args.MaxWorkers, logger)
		return assembleErr
	})
	switch {
	case errors.Is(err, ErrEmptySelection):
		logger.Warn("No files matched", zap.String("target", target))
		notifier.Warn("No files matched.")
		return Result{BaseRoot: baseRoot}, err
	case errors.Is(err, ErrConfiguration):
		logger.Error("Invalid selection settings", zap.Error(err))
		notifier.Error(fmt.Sprintf("Invalid copyFolderAsMarkdown settings: %v", err))
		return Result{}, err
	case err != nil:
		logger.Error("Failed to assemble folder", zap.Error(err))
		notifier.Error(fmt.Sprintf("Failed to copy folder as Markdown: %v", err))
		return Result{}, err
	}

	if err := env.Clipboard.WriteText(doc.Text); err != nil {
		logger.Error("Failed to write document", zap.String("destination", destination), zap.Error(err))
		notifier.Error(fmt.Sprintf("Failed to copy to %s: %v", destination, err))
		return Result{}, fmt.Errorf("%w: %w", ErrClipboardWrite, err)
	}

	notifier.Info(fmt.Sprintf("Copied folder as Markdown to %s (%s, %s).",
		destination, pluralFiles(len(doc.Files)), humanize.Bytes(uint64(doc.Bytes))))
	logger.Info("Copied folder as Markdown",
		zap.String("destination", destination),
		zap.Int("totalFiles", len(doc.Files)),
		zap.Int("totalBytes", doc.Bytes))

	return Result{Document: doc, BaseRoot: baseRoot, Destination: destination}, nil
}

// ResolveTarget turns the user's selection into a clean absolute directory path.
// Inputs that are empty, non-local URIs, missing, or not directories are rejected
// with ErrInvalidTarget.
func ResolveTarget(fsys FileSystem, target string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", fmt.Errorf("%w: no folder given", ErrInvalidTarget)
	}

	if strings.Contains(target, "://") {
		u, err := url.Parse(target)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidTarget, err)
		}
		if u.Scheme != "file" {
			return "", fmt.Errorf("%w: %s is not a local path", ErrInvalidTarget, target)
		}
		target = u.Path
	}

	absPath, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}

	info, err := fsys.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s does not exist", ErrInvalidTarget, absPath)
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidTarget, absPath)
	}
	return absPath, nil
}

func pluralFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}

type nopNotifier struct{}

func (nopNotifier) Info(string)  {}
func (nopNotifier) Warn(string)  {}
func (nopNotifier) Error(string) {}

func (nopNotifier) Progress(_ string, fn func() error) error {
	return fn()
}
