// Package share implements the hand-off of exported files. The desktop
// stand-in for a mobile share sheet is a configured share directory the
// exported artifact is copied into, with an optional command (xdg-open and
// friends) invoked on the result.
package share

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// FileSharer copies shared files into Dir and optionally opens them with
// OpenWith. It implements ledger.Sharer.
type FileSharer struct {
	// Dir receives shared files. Empty means sharing is unavailable.
	Dir string
	// OpenWith, when non-empty, is run with the destination path as its
	// only argument after the copy.
	OpenWith string
}

// Available reports whether a share destination is configured and usable.
func (s *FileSharer) Available() bool {
	if s.Dir == "" {
		return false
	}
	return os.MkdirAll(s.Dir, 0750) == nil
}

// Share copies the file at path into the share directory, keeping its base
// name, and invokes the configured opener if any. The MIME type is recorded
// for logging only; the receiving side decides by extension.
func (s *FileSharer) Share(ctx context.Context, path, mimeType string) error {
	if !s.Available() {
		return fmt.Errorf("share directory %q is not usable", s.Dir)
	}

	dst := filepath.Join(s.Dir, filepath.Base(path))
	if err := copyFile(path, dst); err != nil {
		return fmt.Errorf("failed to share %s: %w", path, err)
	}

	slog.Info("Shared file", "path", dst, "mime_type", mimeType)

	if s.OpenWith != "" {
		if err := exec.CommandContext(ctx, s.OpenWith, dst).Start(); err != nil {
			return fmt.Errorf("failed to open shared file with %s: %w", s.OpenWith, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
