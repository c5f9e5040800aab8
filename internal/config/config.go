// Package config provides configuration management for FocusFlow.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/xvierd/focusflow/internal/domain"
)

// Config holds all configuration for the FocusFlow application.
type Config struct {
	ConfirmWindow Duration           `mapstructure:"confirm_window"`
	TickInterval  Duration           `mapstructure:"tick_interval"`
	Focus         FocusConfig        `mapstructure:"focus"`
	Dashboard     DashboardConfig    `mapstructure:"dashboard"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Log           LogConfig          `mapstructure:"log"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// FocusConfig holds flow-mode settings.
type FocusConfig struct {
	AutoStart  bool `mapstructure:"auto_start"`
	GitContext bool `mapstructure:"git_context"`
}

// SeedTask is a task a fresh dashboard starts with.
type SeedTask struct {
	Text      string `mapstructure:"text"`
	Completed bool   `mapstructure:"completed"`
}

// DashboardConfig holds the initial dashboard contents.
type DashboardConfig struct {
	SeedTasks []SeedTask `mapstructure:"seed_tasks"`
	Notes     string     `mapstructure:"notes"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// LogConfig holds debug log settings. An empty File discards log output.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Palette is one theme's colors.
type Palette struct {
	Background string `mapstructure:"background"`
	Surface    string `mapstructure:"surface"`
	Text       string `mapstructure:"text"`
	Muted      string `mapstructure:"muted"`
	Accent     string `mapstructure:"accent"`
	Success    string `mapstructure:"success"`
	Danger     string `mapstructure:"danger"`
	Border     string `mapstructure:"border"`
}

// ThemeConfig holds the light and dark palettes.
type ThemeConfig struct {
	Light Palette `mapstructure:"light"`
	Dark  Palette `mapstructure:"dark"`
}

// DefaultThemeConfig returns the default palettes.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		Light: Palette{
			Background: "#F8FAFC",
			Surface:    "#FFFFFF",
			Text:       "#1E293B",
			Muted:      "#64748B",
			Accent:     "#0D9488",
			Success:    "#14B8A6",
			Danger:     "#EF4444",
			Border:     "#CBD5E1",
		},
		Dark: Palette{
			Background: "#0F172A",
			Surface:    "#1E293B",
			Text:       "#F1F5F9",
			Muted:      "#94A3B8",
			Accent:     "#2DD4BF",
			Success:    "#14B8A6",
			Danger:     "#F87171",
			Border:     "#334155",
		},
	}
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

const defaultDataDir = "~/.focusflow"

// DefaultSeedTasks returns the tasks of a fresh dashboard.
func DefaultSeedTasks() []SeedTask {
	seeds := domain.DefaultSeedTasks()
	out := make([]SeedTask, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, SeedTask{Text: s.Text, Completed: s.Completed})
	}
	return out
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ConfirmWindow: Duration(3 * time.Second),
		TickInterval:  Duration(time.Second),
		Focus: FocusConfig{
			AutoStart:  true,
			GitContext: true,
		},
		Dashboard: DashboardConfig{
			SeedTasks: DefaultSeedTasks(),
			Notes:     domain.DefaultNotes,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   false,
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir,
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from path, or from the default location when
// path is empty. A missing file is created with the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(path, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	dataDir, err := expandHome(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}
	cfg.Storage.DataDir = dataDir

	if cfg.Log.File != "" {
		if cfg.Log.File, err = expandHome(cfg.Log.File); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

// Save writes cfg to path as TOML.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")

	v.Set("confirm_window", cfg.ConfirmWindow.String())
	v.Set("tick_interval", cfg.TickInterval.String())
	v.Set("focus.auto_start", cfg.Focus.AutoStart)
	v.Set("focus.git_context", cfg.Focus.GitContext)
	v.Set("dashboard.seed_tasks", seedTaskMaps(cfg.Dashboard.SeedTasks))
	v.Set("dashboard.notes", cfg.Dashboard.Notes)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.sound", cfg.Notifications.Sound)
	v.Set("storage.data_dir", cfg.Storage.DataDir)
	v.Set("log.file", cfg.Log.File)
	setPalette(v, "theme.light", cfg.Theme.Light)
	setPalette(v, "theme.dark", cfg.Theme.Dark)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".focusflow", "config.toml"), nil
}

// GetDBPath returns the path to the preference database.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "focusflow.db")
}

// setDefaults sets default values for v.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("confirm_window", d.ConfirmWindow.String())
	v.SetDefault("tick_interval", d.TickInterval.String())
	v.SetDefault("focus.auto_start", d.Focus.AutoStart)
	v.SetDefault("focus.git_context", d.Focus.GitContext)
	v.SetDefault("dashboard.seed_tasks", seedTaskMaps(d.Dashboard.SeedTasks))
	v.SetDefault("dashboard.notes", d.Dashboard.Notes)
	v.SetDefault("notifications.enabled", d.Notifications.Enabled)
	v.SetDefault("notifications.sound", d.Notifications.Sound)
	v.SetDefault("storage.data_dir", d.Storage.DataDir)
	v.SetDefault("log.file", "")

	for prefix, p := range map[string]Palette{"theme.light": d.Theme.Light, "theme.dark": d.Theme.Dark} {
		for key, value := range paletteMap(p) {
			v.SetDefault(prefix+"."+key, value)
		}
	}
}

func setPalette(v *viper.Viper, prefix string, p Palette) {
	for key, value := range paletteMap(p) {
		v.Set(prefix+"."+key, value)
	}
}

func paletteMap(p Palette) map[string]string {
	return map[string]string{
		"background": p.Background,
		"surface":    p.Surface,
		"text":       p.Text,
		"muted":      p.Muted,
		"accent":     p.Accent,
		"success":    p.Success,
		"danger":     p.Danger,
		"border":     p.Border,
	}
}

func seedTaskMaps(seeds []SeedTask) []map[string]any {
	out := make([]map[string]any, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, map[string]any{"text": s.Text, "completed": s.Completed})
	}
	return out
}

func expandHome(path string) (string, error) {
	if path == "" {
		path = defaultDataDir
	}
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}

// ToDomainSeeds converts the configured seed tasks.
func (c *Config) ToDomainSeeds() []domain.SeedTask {
	out := make([]domain.SeedTask, 0, len(c.Dashboard.SeedTasks))
	for _, s := range c.Dashboard.SeedTasks {
		out = append(out, domain.SeedTask{Text: s.Text, Completed: s.Completed})
	}
	return out
}

// PaletteFor returns the palette of theme.
func (c *ThemeConfig) PaletteFor(theme domain.Theme) Palette {
	if theme == domain.ThemeDark {
		return c.Dark
	}
	return c.Light
}
