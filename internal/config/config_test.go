package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

// isolate points the user config and env at an empty temp home.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, k := range []string{EnvVault, EnvDailyPath, EnvLogLevel, EnvTheme} {
		t.Setenv(k, "")
	}
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", Overrides{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadUserFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, filepath.Join(home, "msbee", "config.toml"), `
vault = "/notes"
extension = "markdown"
exclude = ["Templates", "Archive/"]
log_level = "DEBUG"
`)

	cfg, err := Load("", Overrides{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Vault != "/notes" {
		t.Errorf("Vault = %q", cfg.Vault)
	}
	if cfg.Extension != ".markdown" {
		t.Errorf("Extension = %q, want .markdown", cfg.Extension)
	}
	if !reflect.DeepEqual(cfg.Exclude, []string{"Templates", "Archive/"}) {
		t.Errorf("Exclude = %q", cfg.Exclude)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.DailyPath != "daily" {
		t.Errorf("DailyPath = %q, want default", cfg.DailyPath)
	}
}

func TestLoadYAML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "msbee.yaml")
	writeConfig(t, path, "vault: /yaml/vault\ndaily_path: journal\ntheme: light\n")

	cfg, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Vault != "/yaml/vault" || cfg.DailyPath != "journal" || cfg.Theme != "light" {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	home := isolate(t)
	writeConfig(t, filepath.Join(home, "msbee", "config.toml"), "vault = \"/from-file\"\nlog_level = \"info\"\ntheme = \"dark\"\n")
	t.Setenv(EnvVault, "/from-env")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load("", Overrides{Vault: "/from-flag"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Vault != "/from-flag" {
		t.Errorf("Vault = %q, want flag value", cfg.Vault)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want env value", cfg.LogLevel)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want file value", cfg.Theme)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), Overrides{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want not-exist", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "vault = [unclosed"},
		{"bad level", `log_level = "loud"`},
		{"bad theme", `theme = "sepia"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "config.toml")
			writeConfig(t, path, tt.content)
			if _, err := Load(path, Overrides{}); err == nil {
				t.Errorf("Load(%q) succeeded, want error", tt.content)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home := isolate(t)
	t.Setenv("NOTES", "/srv/notes")

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"~", home},
		{"~/vault", filepath.Join(home, "vault")},
		{"$NOTES/work", "/srv/notes/work"},
		{"/plain", "/plain"},
		{"relative/dir", "relative/dir"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveVault(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".obsidian"), 0755); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(root, "projects", "a")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	got, err := cfg.ResolveVault(sub)
	if err != nil {
		t.Fatalf("ResolveVault: %v", err)
	}
	if got != root {
		t.Errorf("discovered vault = %q, want %q", got, root)
	}

	cfg.Vault = sub
	got, err = cfg.ResolveVault(root)
	if err != nil {
		t.Fatalf("ResolveVault: %v", err)
	}
	if got != sub {
		t.Errorf("configured vault = %q, want %q", got, sub)
	}
}

func TestWrite(t *testing.T) {
	cfg := Default()
	cfg.Vault = "/notes"
	cfg.Exclude = []string{"Templates"}

	var buf bytes.Buffer
	if err := cfg.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), `vault = "/notes"`) {
		t.Errorf("Write() missing vault:\n%s", buf.String())
	}

	var back Config
	if _, err := toml.Decode(buf.String(), &back); err != nil {
		t.Fatalf("Write() produced invalid TOML: %v\n%s", err, buf.String())
	}
	if !reflect.DeepEqual(&back, cfg) {
		t.Errorf("decoded %+v, want %+v", back, *cfg)
	}
}
