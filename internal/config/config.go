package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures how to reach the Supabase project.
type Config struct {
	URL            string
	AnonKey        string
	RequestTimeout time.Duration // zero means no timeout
	// Warnings lists problems that did not stop startup.
	Warnings []string

	missingURL bool
	missingKey bool
}

const (
	defaultConfigPath = "~/.config/deafcat/config.toml"

	// PlaceholderURL and PlaceholderKey keep the client constructible when
	// nothing is configured; requests against them fail at call time.
	PlaceholderURL = "https://placeholder.supabase.co"
	PlaceholderKey = "placeholder"

	missingWarning = "Supabase URL or Key missing! Check your config file or environment."
)

// Environment variables, newest name first. The VITE_ names match the web
// build's .env files so one file can serve both.
var (
	urlEnvVars = []string{"SUPABASE_URL", "VITE_SUPABASE_URL"}
	keyEnvVars = []string{"SUPABASE_ANON_KEY", "VITE_SUPABASE_ANON_KEY"}
)

// Load reads the TOML config at path (or the default location), applies
// environment overrides and falls back to placeholders for anything missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	raw, err := readFile(resolved)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		URL:     strings.TrimSpace(raw.URL),
		AnonKey: strings.TrimSpace(raw.AnonKey),
	}
	if timeout := strings.TrimSpace(raw.RequestTimeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse request_timeout: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("parse request_timeout: negative duration %q", timeout)
		}
		cfg.RequestTimeout = d
	}

	if v := firstEnv(urlEnvVars); v != "" {
		cfg.URL = v
	}
	if v := firstEnv(keyEnvVars); v != "" {
		cfg.AnonKey = v
	}

	cfg.applyPlaceholders()
	return cfg, nil
}

// Configured reports whether both the URL and the key were supplied.
func (c Config) Configured() bool {
	return !c.missingURL && !c.missingKey
}

func (c *Config) applyPlaceholders() {
	if c.URL == "" {
		c.URL = PlaceholderURL
		c.missingURL = true
	}
	if c.AnonKey == "" {
		c.AnonKey = PlaceholderKey
		c.missingKey = true
	}
	if !c.Configured() {
		c.Warnings = append(c.Warnings, missingWarning)
	}
}

type fileConfig struct {
	URL            string `toml:"supabase_url"`
	AnonKey        string `toml:"supabase_anon_key"`
	RequestTimeout string `toml:"request_timeout"`
}

func readFile(path string) (fileConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fileConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return raw, nil
}

func firstEnv(names []string) string {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

// ExpandPath expands a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
