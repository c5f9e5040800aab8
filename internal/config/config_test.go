package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xvierd/focusflow/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if time.Duration(cfg.ConfirmWindow) != 3*time.Second {
		t.Errorf("ConfirmWindow = %v, want 3s", cfg.ConfirmWindow)
	}
	if time.Duration(cfg.TickInterval) != time.Second {
		t.Errorf("TickInterval = %v, want 1s", cfg.TickInterval)
	}
	if !cfg.Focus.AutoStart {
		t.Error("focus should auto start by default")
	}

	seeds := cfg.ToDomainSeeds()
	if len(seeds) != 3 {
		t.Fatalf("expected 3 seed tasks, got %d", len(seeds))
	}
	if !seeds[0].Completed || seeds[1].Completed {
		t.Errorf("unexpected seed completion: %+v", seeds)
	}
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	if time.Duration(cfg.ConfirmWindow) != 3*time.Second {
		t.Errorf("ConfirmWindow = %v, want 3s", cfg.ConfirmWindow)
	}
	if cfg.Dashboard.Notes != domain.DefaultNotes {
		t.Errorf("Notes = %q", cfg.Dashboard.Notes)
	}
	if len(cfg.Dashboard.SeedTasks) != 3 || cfg.Dashboard.SeedTasks[0].Text != "Research Methods Assignment" {
		t.Errorf("SeedTasks = %+v", cfg.Dashboard.SeedTasks)
	}
	if cfg.Theme.Dark.Accent != DefaultThemeConfig().Dark.Accent {
		t.Errorf("dark accent = %q", cfg.Theme.Dark.Accent)
	}
	if filepath.IsAbs(cfg.Storage.DataDir) == false {
		t.Errorf("DataDir should be expanded, got %q", cfg.Storage.DataDir)
	}
}

func TestLoad_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
confirm_window = "5s"
tick_interval = "250ms"

[focus]
auto_start = false

[dashboard]
notes = "hello"

[[dashboard.seed_tasks]]
text = "Only task"

[storage]
data_dir = "` + filepath.ToSlash(dir) + `"

[theme.light]
accent = "#123456"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if time.Duration(cfg.ConfirmWindow) != 5*time.Second {
		t.Errorf("ConfirmWindow = %v, want 5s", cfg.ConfirmWindow)
	}
	if time.Duration(cfg.TickInterval) != 250*time.Millisecond {
		t.Errorf("TickInterval = %v, want 250ms", cfg.TickInterval)
	}
	if cfg.Focus.AutoStart {
		t.Error("auto_start override ignored")
	}
	if !cfg.Focus.GitContext {
		t.Error("unset keys should keep their defaults")
	}
	if cfg.Dashboard.Notes != "hello" {
		t.Errorf("Notes = %q", cfg.Dashboard.Notes)
	}
	if len(cfg.Dashboard.SeedTasks) != 1 || cfg.Dashboard.SeedTasks[0].Completed {
		t.Errorf("SeedTasks = %+v", cfg.Dashboard.SeedTasks)
	}
	if cfg.Theme.Light.Accent != "#123456" {
		t.Errorf("light accent = %q", cfg.Theme.Light.Accent)
	}
	if cfg.Theme.Light.Danger != DefaultThemeConfig().Light.Danger {
		t.Errorf("light danger should default, got %q", cfg.Theme.Light.Danger)
	}
	if got := GetDBPath(cfg); got != filepath.Join(dir, "focusflow.db") {
		t.Errorf("GetDBPath() = %q", got)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`confirm_window = "soon"`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject an unparseable duration")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Storage.DataDir = t.TempDir()
	cfg.Notifications.Sound = true
	cfg.Dashboard.SeedTasks = []SeedTask{{Text: "a", Completed: true}, {Text: "b"}}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !got.Notifications.Sound {
		t.Error("sound flag lost")
	}
	if len(got.Dashboard.SeedTasks) != 2 || !got.Dashboard.SeedTasks[0].Completed || got.Dashboard.SeedTasks[1].Text != "b" {
		t.Errorf("SeedTasks = %+v", got.Dashboard.SeedTasks)
	}
}

func TestPaletteFor(t *testing.T) {
	theme := DefaultThemeConfig()
	if theme.PaletteFor(domain.ThemeDark) != theme.Dark {
		t.Error("dark theme should use the dark palette")
	}
	if theme.PaletteFor(domain.ThemeLight) != theme.Light {
		t.Error("light theme should use the light palette")
	}
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if time.Duration(d) != 90*time.Second {
		t.Errorf("got %v", d)
	}
	text, _ := d.MarshalText()
	if string(text) != "1m30s" {
		t.Errorf("MarshalText() = %q", text)
	}
	if err := d.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText() should fail on garbage")
	}
}
