package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"canvassmith/internal/ui/preferences"
)

func useTempConfigDir(t *testing.T) {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("config dir override relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	useTempConfigDir(t)

	settings, err := LoadSettings("canvassmith-test")
	if err != nil {
		t.Fatalf("LoadSettings err=%v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestSaveThenLoadSettings(t *testing.T) {
	useTempConfigDir(t)

	saved := preferences.Settings{
		BackendURL:   "http://backend.local:9000",
		CheckOnStart: false,
		PollEnabled:  true,
		PollInterval: 45 * time.Second,
	}
	if err := SaveSettings("canvassmith-test", saved); err != nil {
		t.Fatalf("SaveSettings err=%v", err)
	}

	loaded, err := LoadSettings("canvassmith-test")
	if err != nil {
		t.Fatalf("LoadSettings err=%v", err)
	}
	if loaded != saved {
		t.Fatalf("roundtrip mismatch: saved %+v, loaded %+v", saved, loaded)
	}
}

func TestLoadSettings_RejectsInvalidBackendURL(t *testing.T) {
	useTempConfigDir(t)

	configDir, err := os.UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir err=%v", err)
	}
	dir := filepath.Join(configDir, "canvassmith-test")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll err=%v", err)
	}
	content := []byte("backend_url: \"not a url\"\ncheck_on_start: true\n")
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), content, 0o644); err != nil {
		t.Fatalf("WriteFile err=%v", err)
	}

	settings, err := LoadSettings("canvassmith-test")
	if err != nil {
		t.Fatalf("LoadSettings err=%v", err)
	}
	if settings.BackendURL != preferences.DefaultBackendURL {
		t.Fatalf("invalid backend url should fall back to default, got %q", settings.BackendURL)
	}
}

func TestLoadSettings_BadYaml(t *testing.T) {
	useTempConfigDir(t)

	configDir, _ := os.UserConfigDir()
	dir := filepath.Join(configDir, "canvassmith-test")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll err=%v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), []byte("backend_url: [oops"), 0o644); err != nil {
		t.Fatalf("WriteFile err=%v", err)
	}

	if _, err := LoadSettings("canvassmith-test"); err == nil {
		t.Fatal("expected parse error")
	}
}
