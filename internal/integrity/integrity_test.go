package integrity

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/config"
)

func TestCompute(t *testing.T) {
	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := Compute([]byte("abc")); got != want {
		t.Errorf("Compute() = %s, want %s", got, want)
	}
}

func TestSidecarPath(t *testing.T) {
	if got := SidecarPath("/data/bt_config.conf", ""); got != "/data/bt_config.conf.checksum" {
		t.Errorf("SidecarPath() = %q", got)
	}
	if got := SidecarPath("/data/bt_config.conf", ".sum"); got != "/data/bt_config.conf.sum" {
		t.Errorf("SidecarPath() with suffix = %q", got)
	}
}

func TestSaveConfigThenVerify(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bt_config.conf")
	sumPath := SidecarPath(path, "")

	cfg := config.New()
	cfg.SetString("Adapter", "Name", "phone")

	sum, err := SaveConfig(cfg, path, sumPath)
	if err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}
	if sum != Compute([]byte(cfg.Serialize())) {
		t.Error("stored checksum should cover the serialized config")
	}

	if err := Verify(path, sumPath); err != nil {
		t.Errorf("Verify() error = %v", err)
	}

	loaded, err := LoadVerified(path, sumPath)
	if err != nil {
		t.Fatalf("LoadVerified() error = %v", err)
	}
	if !loaded.Equal(cfg) {
		t.Error("LoadVerified() returned different content")
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bt_config.conf")
	sumPath := SidecarPath(path, "")

	cfg := config.New()
	cfg.SetString("Adapter", "Name", "phone")
	if _, err := SaveConfig(cfg, path, sumPath); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("[Adapter]\nName=evil\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := Verify(path, sumPath); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify() = %v, want ErrMismatch", err)
	}
	if cfg, err := LoadVerified(path, sumPath); cfg != nil || !errors.Is(err, ErrMismatch) {
		t.Errorf("LoadVerified() = %v, %v; want nil, ErrMismatch", cfg, err)
	}
}

func TestVerifyMissingChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bt_config.conf")
	if err := os.WriteFile(path, []byte("a=1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	err := Verify(path, SidecarPath(path, ""))
	if !errors.Is(err, ErrMissingChecksum) {
		t.Errorf("Verify() = %v, want ErrMissingChecksum", err)
	}
}

func TestSealMissingConfig(t *testing.T) {
	dir := t.TempDir()
	if _, err := Seal(filepath.Join(dir, "nope"), filepath.Join(dir, "nope.checksum")); err == nil {
		t.Error("Seal() of a missing config should fail")
	}
}

func TestVerifyIgnoresWhitespaceAroundToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bt_config.conf")
	data := []byte("[A]\nx=1\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}
	sumPath := SidecarPath(path, "")
	// Written by hand with echo: trailing newline.
	if err := os.WriteFile(sumPath, []byte(Compute(data)+"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := Verify(path, sumPath); err != nil {
		t.Errorf("Verify() = %v, want nil", err)
	}
	if _, err := LoadVerified(path, sumPath); err != nil {
		t.Errorf("LoadVerified() = %v, want nil", err)
	}
}

func TestLoadVerifiedMissingConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadVerified(filepath.Join(dir, "nope"), filepath.Join(dir, "nope.checksum"))
	if cfg != nil {
		t.Error("LoadVerified() of a missing config should return nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadVerified() = %v, want fs.ErrNotExist", err)
	}
	if errors.Is(err, ErrMissingChecksum) {
		t.Error("a missing config is not a missing checksum")
	}
}
