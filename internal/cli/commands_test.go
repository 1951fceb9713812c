package cli

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"

	"sdkshell/internal/config"
	"sdkshell/internal/history"
)

func TestPruneHistory(t *testing.T) {
	env := newTestEnv(t)

	store, err := env.app.openHistory()
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	old := history.NewEntry(history.OpInstall, "all", "emulator")
	old.Timestamp = time.Now().Add(-48 * time.Hour)
	recent := history.NewEntry(history.OpUninstall, "all", "emulator")
	for _, e := range []*history.Entry{old, recent} {
		if err := store.Record(e); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}
	store.Close()

	if err := env.app.pruneHistory(24 * time.Hour); err != nil {
		t.Fatalf("pruneHistory() error: %v", err)
	}
	if !strings.Contains(env.out.String(), "[+] Removed 1 entries older than 24h0m0s") {
		t.Errorf("output = %q", env.out.String())
	}
	if entries := env.history(t); len(entries) != 1 || entries[0].Operation != history.OpUninstall {
		t.Errorf("remaining history = %+v", entries)
	}

	if err := env.app.pruneHistory(0); err == nil {
		t.Error("pruneHistory(0) should be rejected")
	}
}

func TestSaveConfig(t *testing.T) {
	env := newTestEnv(t)
	env.app.cfg.SDK.ToolsDir = "/opt/android/cmdline-tools/latest/bin"

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := env.app.saveConfig(path); err != nil {
		t.Fatalf("saveConfig() error: %v", err)
	}

	loaded, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if loaded.SDK.ToolsDir != "/opt/android/cmdline-tools/latest/bin" {
		t.Errorf("saved tools_dir = %q", loaded.SDK.ToolsDir)
	}
	if !strings.Contains(env.out.String(), "Configuration saved to "+path) {
		t.Errorf("output = %q", env.out.String())
	}
}

func TestSaveConfigDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("APPDATA", dir)

	env := newTestEnv(t)
	env.app.cfg.General.AutoConfirm = true

	if err := env.app.saveConfig(""); err != nil {
		t.Fatalf("saveConfig() error: %v", err)
	}

	loaded, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !loaded.General.AutoConfirm {
		t.Error("auto_confirm should have been saved to the default config file")
	}
}

func TestShowConfig(t *testing.T) {
	env := newTestEnv(t)
	env.app.cfg.SDK.Binary = "/usr/local/bin/sdkmanager"

	if err := env.app.showConfig("/etc/sdkshell.toml"); err != nil {
		t.Fatalf("showConfig() error: %v", err)
	}

	out := env.out.String()
	if !strings.Contains(out, "File: /etc/sdkshell.toml") {
		t.Errorf("output missing config path:\n%s", out)
	}

	body := out[strings.Index(out, "[general]"):]
	var shown config.Config
	if _, err := toml.Decode(body, &shown); err != nil {
		t.Fatalf("shown settings are not valid TOML: %v\n%s", err, body)
	}
	if shown.SDK.Binary != "/usr/local/bin/sdkmanager" {
		t.Errorf("shown binary = %q", shown.SDK.Binary)
	}
}
