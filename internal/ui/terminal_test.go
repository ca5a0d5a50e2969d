package ui

import (
	"os"
	"testing"
)

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		name      string
		env, conf string
		want      Theme
	}{
		{"defaults to auto", "", "", ThemeAuto},
		{"config dark", "", "dark", ThemeDark},
		{"config light mixed case", "", "Light", ThemeLight},
		{"env beats config", "light", "dark", ThemeLight},
		{"invalid env falls through", "neon", "dark", ThemeDark},
		{"invalid everywhere", "neon", "sepia", ThemeAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveTheme(tt.env, tt.conf); got != tt.want {
				t.Errorf("resolveTheme(%q, %q) = %q, want %q", tt.env, tt.conf, got, tt.want)
			}
		})
	}
}

func TestInitThemeFromEnv(t *testing.T) {
	t.Setenv(EnvTheme, "light")
	InitTheme("dark")

	if CurrentTheme() != ThemeLight {
		t.Errorf("CurrentTheme() = %q, want light", CurrentTheme())
	}
	if HasDarkBackground() {
		t.Error("HasDarkBackground() = true for light theme")
	}
}

func TestShouldUseColor(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"NO_COLOR wins over force", map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}, false},
		{"CLICOLOR=0", map[string]string{"CLICOLOR": "0", "CLICOLOR_FORCE": "1"}, false},
		{"forced", map[string]string{"CLICOLOR_FORCE": "1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"NO_COLOR", "CLICOLOR", "CLICOLOR_FORCE"} {
				t.Setenv(k, "")
				os.Unsetenv(k)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := ShouldUseColor(); got != tt.want {
				t.Errorf("ShouldUseColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShouldUseEmojiDisabled(t *testing.T) {
	t.Setenv("MSBEE_NO_EMOJI", "1")
	if ShouldUseEmoji() {
		t.Error("ShouldUseEmoji() = true with MSBEE_NO_EMOJI set")
	}
	if Bee() != "*" {
		t.Errorf("Bee() = %q, want plain fallback", Bee())
	}
}

func TestWidthWithoutTerminal(t *testing.T) {
	// go test runs with stdout redirected.
	if IsTerminal() {
		t.Skip("stdout is a terminal")
	}
	if Width() != 80 {
		t.Errorf("Width() = %d, want 80", Width())
	}
	if Height() != 0 {
		t.Errorf("Height() = %d, want 0", Height())
	}
}
