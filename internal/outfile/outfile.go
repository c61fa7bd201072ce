// Package outfile writes generated .gitignore content to disk.
package outfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gorewood/gig/internal/output"
)

// Stdout is the output path that means "write to standard output".
const Stdout = "-"

// Write writes content to path, creating parent directories as needed.
//
// Without force the file is created exclusively and an existing file yields
// a conflict error. With force the file is replaced atomically.
func Write(path, content string, force bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return output.NewSystemErrorWithCause("failed to create directory "+dir, err)
		}
	}

	if force {
		if err := atomicWrite(path, []byte(content)); err != nil {
			return output.NewSystemErrorWithCause(fmt.Sprintf("failed to write %s: %v", path, err), err)
		}
		return nil
	}

	return writeNew(path, content)
}

// writeNew creates path exclusively and writes content to it.
func writeNew(path, content string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return output.NewConflictErrorWithCause(fmt.Sprintf(
				"file %s already exists; remove it first or choose a different path", path), err)
		}
		return output.NewSystemErrorWithCause(fmt.Sprintf("failed to create %s: %v", path, err), err)
	}

	if _, err := file.WriteString(content); err != nil {
		_ = file.Close()
		return output.NewSystemErrorWithCause(fmt.Sprintf("failed to write %s: %v", path, err), err)
	}
	if err := file.Close(); err != nil {
		return output.NewSystemErrorWithCause(fmt.Sprintf("failed to close %s: %v", path, err), err)
	}
	return nil
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path.
func atomicWrite(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-gig-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Chmod(0o644); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
