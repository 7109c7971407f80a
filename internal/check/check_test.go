package check

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"confsync/internal/config"
	"confsync/internal/model"
)

type env struct {
	cfg *config.Config
}

func newEnv(t *testing.T) env {
	t.Helper()

	cfg := config.Defaults(t.TempDir())
	return env{cfg: &cfg}
}

func (e env) write(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func (e env) script(t *testing.T, content string) {
	e.write(t, e.cfg.SyncScript, content)
}

func (e env) config(t *testing.T, rel, content string) {
	e.write(t, filepath.Join(e.cfg.ConfigDir, rel), content)
}

func (e env) mirror(t *testing.T, rel, content string) {
	e.write(t, filepath.Join(e.cfg.MirrorDir, rel), content)
}

func encode(t *testing.T, p model.Payload) string {
	t.Helper()

	var buf bytes.Buffer
	if err := Write(&buf, p); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestRunOutOfSync(t *testing.T) {
	e := newEnv(t)
	e.script(t, `folders=("waybar")`+"\n"+`files=("starship.toml")`)
	e.config(t, "waybar/config.jsonc", `{"layer":"top"}`)
	e.mirror(t, "waybar/config.jsonc", `{"layer":"bottom"}`)
	e.config(t, "starship.toml", "add_newline = false")
	e.mirror(t, "starship.toml", "add_newline = false")

	report, err := Inspect(e.cfg)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if len(report.Mismatched) != 1 || report.Mismatched[0] != "waybar/config.jsonc" {
		t.Fatalf("unexpected mismatches %v", report.Mismatched)
	}

	payload, err := Run(e.cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if payload.Class != model.ClassOutOfSync {
		t.Errorf("expected out-of-sync, got %s", payload.Class)
	}
	if payload.Tooltip != "Waybar -\nconfig.jsonc" {
		t.Errorf("unexpected tooltip %q", payload.Tooltip)
	}

	want := `{"text":" | ","tooltip":"Waybar -\nconfig.jsonc","class":"out-of-sync"}` + "\n"
	if got := encode(t, payload); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestRunInSync(t *testing.T) {
	e := newEnv(t)
	e.script(t, "folders=(\n  \"hypr\"\n)\nfiles=(\"starship.toml\")\n")
	e.config(t, "hypr/hyprland.conf", "monitor=,preferred,auto,1")
	e.mirror(t, "hypr/hyprland.conf", "monitor=,preferred,auto,1")
	e.config(t, "starship.toml", "x")
	e.mirror(t, "starship.toml", "x")
	// mirror-only files do not affect the result
	e.mirror(t, "hypr/old.conf", "stale")

	payload, err := Run(e.cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := `{"text":" | ","class":"in-sync"}` + "\n"
	if got := encode(t, payload); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestRunEmptyArrays(t *testing.T) {
	e := newEnv(t)
	e.script(t, "folders=()\nfiles=()\n")

	report, err := Inspect(e.cfg)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if len(report.Watched) != 0 || len(report.Mismatched) != 0 {
		t.Errorf("expected empty report, got %+v", report)
	}

	payload, _ := Run(e.cfg)
	if got := encode(t, payload); got != `{"text":" | ","class":"in-sync"}`+"\n" {
		t.Errorf("unexpected payload %s", got)
	}
}

func TestRunMissingMirrorFile(t *testing.T) {
	e := newEnv(t)
	e.script(t, `files=("mimeapps.list")`)
	e.config(t, "mimeapps.list", "[Default Applications]")

	payload, err := Run(e.cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if payload.Class != model.ClassOutOfSync {
		t.Errorf("expected out-of-sync, got %s", payload.Class)
	}
	if payload.Tooltip != "Mimeapps.list -\nmimeapps.list" {
		t.Errorf("unexpected tooltip %q", payload.Tooltip)
	}
}

func TestRunMissingScript(t *testing.T) {
	e := newEnv(t)

	payload, err := Run(e.cfg)
	if err == nil {
		t.Fatal("expected error for missing sync script")
	}
	if payload.Class != model.ClassError {
		t.Errorf("expected error class, got %s", payload.Class)
	}
	if payload.Text != " | " {
		t.Errorf("unexpected text %q", payload.Text)
	}

	prefix := "Error reading sync script: open " + e.cfg.SyncScript
	if !strings.HasPrefix(payload.Tooltip, prefix) {
		t.Errorf("expected tooltip to start with %q, got %q", prefix, payload.Tooltip)
	}
	if strings.Contains(payload.Tooltip, "failed to read") {
		t.Errorf("tooltip should carry only the OS description, got %q", payload.Tooltip)
	}
}

func TestConfigErrorPayload(t *testing.T) {
	p := ConfigErrorPayload(" | ", os.ErrPermission)
	if p.Class != model.ClassError || p.Tooltip != "Error loading config: permission denied" {
		t.Errorf("unexpected payload %+v", p)
	}
}

func TestWriteDoesNotEscapeHTML(t *testing.T) {
	got := encode(t, model.Payload{Text: "<>&", Class: model.ClassInSync})
	if got != `{"text":"<>&","class":"in-sync"}`+"\n" {
		t.Errorf("unexpected encoding %s", got)
	}
}
