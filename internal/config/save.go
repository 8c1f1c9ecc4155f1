package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/logging"
)

// FileMode is the permission applied to saved config and checksum files.
const FileMode os.FileMode = 0660

// Save writes c to path, replacing any existing file. The data is written to
// a temporary file in the same directory and renamed into place, so path
// holds either the old content or the complete new content.
func (c *Config) Save(path string) error {
	data := []byte(c.Serialize())
	if err := atomicWrite(path, data); err != nil {
		logging.Error("Config save failed", zap.String("path", path), zap.Error(err))
		return newError("save", path, err)
	}
	logging.LogSave(path, len(data))
	return nil
}

// atomicWrite writes data to a temporary sibling of path, syncs it and
// renames it over path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	// Remove the temp file on any failure below.
	ok := false
	defer func() {
		if !ok {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temporary file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}
	if err := os.Chmod(tmpPath, FileMode); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	ok = true

	// Persist the rename itself; failure here does not undo the write.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		d.Close()
	}
	return nil
}
