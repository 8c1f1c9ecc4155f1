package config

import (
	"os"

	"go.uber.org/zap"

	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/logging"
)

// ReadChecksum returns the checksum token stored at path exactly as written.
// It returns "" and an *Error if the file is missing or unreadable.
func ReadChecksum(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logging.Warn("Checksum unavailable", zap.String("path", path), zap.Error(err))
		return "", newError("read checksum", path, err)
	}
	return string(data), nil
}

// SaveChecksum writes checksum to path, replacing any existing file. The
// token is opaque to this package; it is written as-is with no trailing
// newline.
func SaveChecksum(checksum, path string) error {
	if err := atomicWrite(path, []byte(checksum)); err != nil {
		return newError("save checksum", path, err)
	}
	logging.LogChecksum(path, "save", checksum)
	return nil
}
