package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Align.Match != 1 || c.Align.Mismatch != -1 || c.Align.Gap != -2 {
		t.Errorf("scoring defaults wrong: %+v", c.Align)
	}
	if c.Align.AnchorLength != 12 {
		t.Errorf("anchor-length = %d, want 12", c.Align.AnchorLength)
	}
	if c.MinIdentity != 50 {
		t.Errorf("min-identity = %d, want 50", c.MinIdentity)
	}
	if c.Threads != 0 {
		t.Errorf("threads = %d, want 0", c.Threads)
	}
}

func TestNewUserOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("align:\n  gap: -4\nmin-identity: 80\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Align.Gap != -4 {
		t.Errorf("gap = %d, want -4 from override", c.Align.Gap)
	}
	if c.MinIdentity != 80 {
		t.Errorf("min-identity = %d, want 80 from override", c.MinIdentity)
	}
	// untouched keys keep embedded defaults
	if c.Align.Match != 1 {
		t.Errorf("match = %d, want default 1", c.Align.Match)
	}
}

func TestNewMissingUserFile(t *testing.T) {
	if _, err := New("/nonexistent/settings.yaml"); err == nil {
		t.Fatal("expected error for missing settings file")
	}
}
