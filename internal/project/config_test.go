package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, ManifestName)
	content := `
[project]
name = "demo"
src = ["src", "lib"]

[extract]
extensions = [".ts"]
max_diagnostics = 25
jobs = 4
cache = false

[output]
format = "json"
`
	if err := os.WriteFile(manifest, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(manifest)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Project.Name != "demo" || len(cfg.Project.Src) != 2 {
		t.Errorf("project section: %+v", cfg.Project)
	}
	if cfg.Extract.MaxDiagnostics != 25 || cfg.Extract.Jobs != 4 || cfg.Extract.Cache {
		t.Errorf("extract section: %+v", cfg.Extract)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("output format = %q", cfg.Output.Format)
	}
}

func TestLoadConfigRejectsBadFormat(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(manifest, []byte("[output]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(manifest); err == nil {
		t.Fatal("expected validation error for unknown format")
	}
}

func TestLoadConfigFromDefaults(t *testing.T) {
	cfg, path, err := LoadConfigFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}
	if path != "" {
		t.Errorf("unexpected manifest path %q", path)
	}
	if cfg.Extract.MaxDiagnostics != 100 || !cfg.Extract.Cache {
		t.Errorf("defaults: %+v", cfg.Extract)
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(root, ManifestName)
	if err := os.WriteFile(manifest, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	found, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest: ok=%v err=%v", ok, err)
	}
	if found != manifest {
		t.Errorf("found %q, want %q", found, manifest)
	}
}
