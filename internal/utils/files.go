package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir ensures the directory that will hold path exists.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// AtomicReplace creates the parent directory of path, lets write produce a
// temp file next to it and renames that file into place. The temp name keeps
// path's extension, since some writers pick the format from it. On failure
// the temp file is removed.
func AtomicReplace(path string, write func(tmp string) error) error {
	if err := EnsureParentDir(path); err != nil {
		return fmt.Errorf("mkdir output dir: %w", err)
	}
	tmp := path + ".tmp" + filepath.Ext(path)
	if err := write(tmp); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}

// SafeWriteFile writes data to a temp file and atomically renames it into place.
func SafeWriteFile(path string, data []byte) error {
	return AtomicReplace(path, func(tmp string) error {
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			return fmt.Errorf("write temp file: %w", err)
		}
		return nil
	})
}
