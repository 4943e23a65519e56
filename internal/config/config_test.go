package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadValidSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFileName)
	if err := os.WriteFile(path, []byte("manifest_name: deps.conf\nrecursive: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.ManifestName != "deps.conf" {
		t.Errorf("manifest_name = %q", s.ManifestName)
	}
	if s.Recursive == nil || !*s.Recursive {
		t.Errorf("recursive = %v, want true", s.Recursive)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), SettingsFileName))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	if err := os.WriteFile(path, []byte("manifest_name: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateRejectsPathSeparators(t *testing.T) {
	s := &Settings{ManifestName: "sub/deps.txt"}
	errs := Validate(s)
	if len(errs) == 0 {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(errs[0], "bare filename") {
		t.Errorf("unexpected message: %v", errs)
	}
}

func TestMergePrecedence(t *testing.T) {
	yes := true
	base := &Settings{ManifestName: "base.txt", Recursive: &yes}
	over := &Settings{ManifestName: "over.txt"}

	merged := Merge(base, over)
	if merged.ManifestName != "over.txt" {
		t.Errorf("manifest_name = %q, want override", merged.ManifestName)
	}
	if merged.Recursive == nil || !*merged.Recursive {
		t.Error("recursive should be inherited from the base layer")
	}
}

func TestResolveProjectOverridesUser(t *testing.T) {
	userCfg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", userCfg)

	userDir := filepath.Join(userCfg, "dpnd")
	if err := os.MkdirAll(userDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, SettingsFileName), []byte("manifest_name: user.txt\nrecursive: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	proj := t.TempDir()
	if err := os.WriteFile(filepath.Join(proj, SettingsFileName), []byte("manifest_name: project.txt\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, layers, err := Resolve(proj)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s.ManifestName != "project.txt" {
		t.Errorf("manifest_name = %q, want project layer to win", s.ManifestName)
	}
	if s.Recursive == nil || !*s.Recursive {
		t.Error("recursive should survive from the user layer")
	}
	if len(layers) != 2 {
		t.Errorf("layers = %d, want 2", len(layers))
	}
}

func TestResolveMissingLayersAreSkipped(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s, _, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s.ManifestName != "" || s.Recursive != nil {
		t.Errorf("settings = %+v, want zero value", s)
	}
}

func TestResolveBrokenLayerIsFatal(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	proj := t.TempDir()
	if err := os.WriteFile(filepath.Join(proj, SettingsFileName), []byte(":\n:bad"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := Resolve(proj); err == nil {
		t.Fatal("expected error for broken settings file")
	}
}
