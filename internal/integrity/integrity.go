package integrity

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/config"
	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/logging"
)

// DefaultSuffix is appended to a config path to locate its checksum file.
const DefaultSuffix = ".checksum"

var (
	// ErrMismatch is returned when the stored checksum does not match the
	// config file content.
	ErrMismatch = errors.New("checksum mismatch")

	// ErrMissingChecksum is returned when no checksum file can be read.
	ErrMissingChecksum = errors.New("checksum file missing")
)

// Compute returns the hex-encoded SHA-256 digest of data.
func Compute(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ComputeFile returns the checksum of the file at path.
func ComputeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return Compute(data), nil
}

// SidecarPath returns the checksum file path for configPath. An empty suffix
// selects DefaultSuffix.
func SidecarPath(configPath, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return configPath + suffix
}

// Seal computes the checksum of the file at configPath and stores it in
// checksumPath. It returns the token written.
func Seal(configPath, checksumPath string) (string, error) {
	sum, err := ComputeFile(configPath)
	if err != nil {
		return "", err
	}
	if err := config.SaveChecksum(sum, checksumPath); err != nil {
		return "", err
	}
	return sum, nil
}

// SaveConfig saves cfg to configPath and then seals it.
func SaveConfig(cfg *config.Config, configPath, checksumPath string) (string, error) {
	if err := cfg.Save(configPath); err != nil {
		return "", err
	}
	return Seal(configPath, checksumPath)
}

// Verify compares the checksum stored in checksumPath with the current
// content of configPath. It returns nil when they match, ErrMissingChecksum
// when there is no stored checksum and ErrMismatch when the file changed.
// Whitespace around the stored token is ignored.
func Verify(configPath, checksumPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", configPath, err)
	}
	return verifyData(data, configPath, checksumPath)
}

func verifyData(data []byte, configPath, checksumPath string) error {
	stored, err := config.ReadChecksum(checksumPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingChecksum, err)
	}
	stored = strings.TrimSpace(stored)

	if stored != Compute(data) {
		logging.Warn("Config checksum mismatch",
			zap.String("config", configPath),
			zap.String("checksum_file", checksumPath),
		)
		return fmt.Errorf("%w: %s", ErrMismatch, configPath)
	}

	logging.LogChecksum(checksumPath, "verify", stored)
	return nil
}

// LoadVerified reads configPath once, checks those bytes against
// checksumPath and parses them. The config is only returned when the
// checksum matches. A missing config file yields an error wrapping
// fs.ErrNotExist.
func LoadVerified(configPath, checksumPath string) (*config.Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", configPath, err)
	}
	if err := verifyData(data, configPath, checksumPath); err != nil {
		return nil, err
	}

	cfg, err := config.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configPath, err)
	}
	logging.LogLoad(configPath, cfg.Len())
	return cfg, nil
}
