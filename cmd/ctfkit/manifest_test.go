package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleManifest = `# test manifest
[session]
name = "mem"
domain = "userspace"
output = "traces/mem"

[record]
events = ["ust_libc:malloc", "ust_libc:free"]
contexts = ["vpid", "procname"]
duration = "5s"
`

func writeManifest(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, "ctfkit.toml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write ctfkit.toml: %v", err)
	}
	return path
}

func TestFindCtfkitToml_WalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, sampleManifest)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, ok, err := findCtfkitToml(nested)
	if err != nil {
		t.Fatalf("findCtfkitToml: %v", err)
	}
	if !ok {
		t.Fatalf("expected manifest to be found")
	}
	if got != want {
		t.Fatalf("findCtfkitToml = %q, want %q", got, want)
	}
}

func TestFindCtfkitToml_NotFound(t *testing.T) {
	_, ok, err := findCtfkitToml(t.TempDir())
	if err != nil {
		t.Fatalf("findCtfkitToml: %v", err)
	}
	if ok {
		t.Fatalf("expected no manifest")
	}
}

func TestLoadRecordManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, sampleManifest)

	manifest, ok, err := loadRecordManifest(root)
	if err != nil {
		t.Fatalf("loadRecordManifest: %v", err)
	}
	if !ok {
		t.Fatalf("expected manifest to be found")
	}
	cfg := manifest.Config
	if cfg.Session.Name != "mem" {
		t.Fatalf("Session.Name = %q, want mem", cfg.Session.Name)
	}
	if cfg.Session.Domain != "userspace" {
		t.Fatalf("Session.Domain = %q, want userspace", cfg.Session.Domain)
	}
	if len(cfg.Record.Events) != 2 || cfg.Record.Events[0] != "ust_libc:malloc" {
		t.Fatalf("unexpected events: %v", cfg.Record.Events)
	}
	if len(cfg.Record.Contexts) != 2 || cfg.Record.Contexts[1] != "procname" {
		t.Fatalf("unexpected contexts: %v", cfg.Record.Contexts)
	}
	if cfg.Record.Duration != "5s" {
		t.Fatalf("Duration = %q, want 5s", cfg.Record.Duration)
	}

	want := filepath.Join(manifest.Root, "traces", "mem")
	if got := resolveOutputDir(manifest); got != want {
		t.Fatalf("resolveOutputDir = %q, want %q", got, want)
	}
}

func TestLoadRecordConfig_Validation(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "missing session table",
			data:    "[record]\nevents = []\n",
			wantErr: "missing [session]",
		},
		{
			name:    "missing session name",
			data:    "[session]\ndomain = \"userspace\"\n",
			wantErr: "missing [session].name",
		},
		{
			name:    "missing session domain",
			data:    "[session]\nname = \"mem\"\n",
			wantErr: "missing [session].domain",
		},
		{
			name:    "bad duration",
			data:    "[session]\nname = \"mem\"\ndomain = \"userspace\"\n\n[record]\nduration = \"forever\"\n",
			wantErr: "invalid [record].duration",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tc.data)
			_, err := loadRecordConfig(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestResolveOutputDir_Default(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[session]\nname = \"mem\"\ndomain = \"userspace\"\n")

	manifest, _, err := loadRecordManifest(root)
	if err != nil {
		t.Fatalf("loadRecordManifest: %v", err)
	}
	want := filepath.Join(manifest.Root, "traces", "mem")
	if got := resolveOutputDir(manifest); got != want {
		t.Fatalf("resolveOutputDir = %q, want %q", got, want)
	}
}
