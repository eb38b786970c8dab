package registry

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "cache.json"))
	reg, err := s.Load()
	if err != nil {
		t.Fatalf("load missing file: %v", err)
	}
	if len(reg) != 0 {
		t.Fatalf("expected empty registry, got %d records", len(reg))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "cache.json"))
	in := Registry{
		{BinaryPath: "/usr/local/bin/alpha", PID: 101},
		{BinaryPath: "./relative/beta", PID: 202},
		{BinaryPath: "/opt/gamma", PID: 303},
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round-trip mismatch:\n in=%+v\nout=%+v", in, out)
	}
}

func TestSaveCreatesConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "svcman")
	s := NewStore(filepath.Join(dir, "cache.json"))
	if err := s.Save(Registry{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("config dir not created: %v", err)
	}
}

func TestSaveIsPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	s := NewStore(path)
	if err := s.Save(Registry{{BinaryPath: "/bin/x", PID: 7}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(b), "\n  ") {
		t.Fatalf("expected indented output, got %q", string(b))
	}
}

func TestLoadMalformedFileIsErrFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	s := NewStore(path)
	if _, err := s.Load(); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestDefaultStorePathFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home) // windows

	s, err := DefaultStore()
	if err != nil {
		t.Fatalf("default store: %v", err)
	}
	want := filepath.Join(home, ".config", "svcman", "cache.json")
	if s.Path() != want {
		t.Fatalf("path = %s, want %s", s.Path(), want)
	}
}

func TestOmittedPIDRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	s := NewStore(path)
	if err := s.Save(Registry{{BinaryPath: "/bin/nopid"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if strings.Contains(string(b), "pid") {
		t.Fatalf("zero pid should be omitted from file, got %q", string(b))
	}
	out, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0].PID != 0 {
		t.Fatalf("unexpected records: %+v", out)
	}
}
