package project

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleManifest = `[project]
name = "contoh"
entry = "src/main.ntl"

[diagnostics]
max = 50
werror = true

[output]
color = "never"
`

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "notal.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), sampleManifest)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Project.Name != "contoh" || m.Project.Entry != "src/main.ntl" {
		t.Errorf("project section mangled: %+v", m.Project)
	}
	if m.Diagnostics.Max != 50 || !m.Diagnostics.Werror {
		t.Errorf("diagnostics section mangled: %+v", m.Diagnostics)
	}
	if m.Output.Color != "never" {
		t.Errorf("output section mangled: %+v", m.Output)
	}
}

func TestLoadManifestPartial(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[project]\nname = \"minim\"\n")

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Project.Name != "minim" {
		t.Errorf("expected name %q, got %q", "minim", m.Project.Name)
	}
	if m.Diagnostics.Max != 0 || m.Diagnostics.Werror || m.Output.Color != "" {
		t.Errorf("missing sections must stay zero: %+v", m)
	}
}

func TestLoadManifestBadTOML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[project\nname =")

	if _, err := LoadManifest(path); err == nil {
		t.Error("malformed TOML must fail")
	}
}

func TestFindNotalTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, sampleManifest)
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := FindNotalToml(nested)
	if err != nil || !ok {
		t.Fatalf("FindNotalToml: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestFindNotalTomlPrefersNearest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[project]\nname = \"outer\"\n")
	inner := filepath.Join(root, "sub")
	if err := os.MkdirAll(inner, 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeManifest(t, inner, "[project]\nname = \"inner\"\n")

	got, ok, err := FindNotalToml(inner)
	if err != nil || !ok {
		t.Fatalf("FindNotalToml: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Errorf("expected the nearest manifest %s, got %s", want, got)
	}
}

func TestLoadNearestManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, sampleManifest)
	nested := filepath.Join(root, "src")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := LoadNearestManifest(nested)
	if err != nil || !ok {
		t.Fatalf("LoadNearestManifest: ok=%v err=%v", ok, err)
	}
	if m.Project.Name != "contoh" {
		t.Errorf("expected name %q, got %q", "contoh", m.Project.Name)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	writeManifest(t, root, sampleManifest)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("FindProjectRoot: ok=%v err=%v", ok, err)
	}
	if got != root {
		t.Errorf("expected root %s, got %s", root, got)
	}
}
