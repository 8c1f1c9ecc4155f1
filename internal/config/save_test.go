package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bt_config.conf")

	cfg := New()
	cfg.SetString("Adapter", "Name", "phone")
	cfg.SetInt("Adapter", "ScanMode", 2)

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !loaded.Equal(cfg) {
		t.Errorf("loaded config differs:\n%s", loaded.Serialize())
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0600 != 0600 {
		t.Errorf("file mode = %v, owner must be able to read and write", info.Mode().Perm())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the config file in %s, found %d entries", dir, len(entries))
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bt_config.conf")
	if err := os.WriteFile(path, []byte("# hand edited\nold=1\n[Gone]\nk=v\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := New()
	cfg.SetString("New", "k", "v")
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "[New]\nk=v\n"; got != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}

func TestSaveUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "bt_config.conf")

	cfg := New()
	cfg.SetString("A", "k", "v")

	err := cfg.Save(path)
	if err == nil {
		t.Fatal("Save() into a missing directory should fail")
	}
	if !IsNotFound(err) {
		t.Errorf("expected not-found error kind, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("failed save must not create the file")
	}
}
