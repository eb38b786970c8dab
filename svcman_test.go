package svcman

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewWithExplicitRegistryPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	mgr, err := New(Options{RegistryPath: path})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	reg, err := mgr.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reg) != 0 {
		t.Fatalf("expected empty registry, got %+v", reg)
	}
}

func TestNewWithDefaultRegistryPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	mgr, err := New(Options{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := mgr.List(); err != nil {
		t.Fatalf("list: %v", err)
	}
	// The store creates the config directory on first use.
	if _, err := os.Stat(filepath.Join(home, ".config", "svcman")); err != nil {
		t.Fatalf("config dir not created: %v", err)
	}
}

func TestNewWithBadHistoryDSN(t *testing.T) {
	_, err := New(Options{
		RegistryPath: filepath.Join(t.TempDir(), "cache.json"),
		HistoryDSN:   "redis://localhost:6379",
	})
	if err == nil {
		t.Fatalf("expected error for unsupported history DSN")
	}
}

func TestFacadeErrorsAreInternalOnes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	mgr, err := New(Options{RegistryPath: path})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := mgr.Stop("/bin/absent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound through the facade, got %v", err)
	}
}

func TestNewSinkFromDSN(t *testing.T) {
	sink, err := NewSinkFromDSN("sqlite://:memory:")
	if err != nil {
		t.Fatalf("sink: %v", err)
	}
	_ = sink.Close()
}
