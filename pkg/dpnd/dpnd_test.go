package dpnd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/eZanmoto/dpnd/internal/manifest"
)

func TestNewDefaults(t *testing.T) {
	c, err := New(Options{WorkDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.inst.ManifestName != "dpnd.txt" {
		t.Errorf("manifest name = %q", c.inst.ManifestName)
	}
	if c.inst.LedgerName != "current_dpnd.txt" {
		t.Errorf("ledger name = %q", c.inst.LedgerName)
	}
	if !c.inst.Tools.Has("git") {
		t.Error("git tool should be registered by default")
	}
}

func TestNewManifestNameOverride(t *testing.T) {
	c, err := New(Options{WorkDir: t.TempDir(), ManifestName: "deps.conf"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.inst.ManifestName != "deps.conf" {
		t.Errorf("manifest name = %q", c.inst.ManifestName)
	}
	if c.inst.LedgerName != "current_deps.conf" {
		t.Errorf("ledger name = %q", c.inst.LedgerName)
	}
}

func TestInstallEmptyManifest(t *testing.T) {
	proj := t.TempDir()
	if err := os.WriteFile(filepath.Join(proj, "dpnd.txt"), []byte("deps\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := New(Options{WorkDir: proj})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Install(context.Background(), InstallOptions{}); err != nil {
		t.Fatalf("Install: %v", err)
	}

	// Even a zero-dependency project gets its ledger established.
	data, err := os.ReadFile(filepath.Join(proj, "deps", "current_dpnd.txt"))
	if err != nil {
		t.Fatalf("ledger missing: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("ledger = %q, want empty", data)
	}
}

// markerTool records its fetches by dropping a marker file in the target
// directory.
type markerTool struct {
	name string
}

func (m markerTool) Name() string { return m.name }

func (m markerTool) Fetch(_ context.Context, source, version, dir string) error {
	return os.WriteFile(filepath.Join(dir, "marker.txt"), []byte(source+" "+version), 0644)
}

func TestNewRegistersCustomTools(t *testing.T) {
	proj := t.TempDir()
	text := "deps\nassets cp file://host/assets v3\n"
	if err := os.WriteFile(filepath.Join(proj, "dpnd.txt"), []byte(text), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := New(Options{
		WorkDir: proj,
		Tools:   []Tool{markerTool{name: "cp"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !c.inst.Tools.Has("git") {
		t.Error("built-in git tool should still be registered")
	}

	if err := c.Install(context.Background(), InstallOptions{}); err != nil {
		t.Fatalf("Install: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(proj, "deps", "assets", "marker.txt"))
	if err != nil {
		t.Fatalf("custom tool did not fetch: %v", err)
	}
	if string(data) != "file://host/assets v3" {
		t.Errorf("marker = %q", data)
	}
}

func TestInstallNoManifest(t *testing.T) {
	c, err := New(Options{WorkDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = c.Install(context.Background(), InstallOptions{})
	if !errors.Is(err, manifest.ErrNotFound) {
		t.Errorf("err = %v, want manifest.ErrNotFound", err)
	}
}
