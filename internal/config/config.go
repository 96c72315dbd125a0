package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/headgate/sluice/internal/content"
	"github.com/headgate/sluice/internal/settings"
)

// Config captures the demo's startup configuration. It seeds the initial
// settings slice and the article list; the running stores never write
// anything back.
type Config struct {
	Language      string
	DarkMode      bool
	Notifications bool
	LogFile       string
	Articles      []content.Article
}

const (
	defaultConfigPath    = "~/.config/sluice-demo/config.toml"
	defaultLanguage      = "en"
	defaultNotifications = true
)

// Load locates and parses the demo config, falling back to defaults when
// missing. When no articles are configured the built-in samples are used so
// the demo renders out of the box.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Language:      defaultLanguage,
		Notifications: defaultNotifications,
		Articles:      SampleArticles(),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Language      string `toml:"language"`
		DarkMode      *bool  `toml:"dark_mode"`
		Notifications *bool  `toml:"notifications"`
		LogFile       string `toml:"log_file"`
		Articles      []struct {
			ID      int    `toml:"id"`
			Title   string `toml:"title"`
			Content string `toml:"content"`
		} `toml:"articles"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Language = strings.TrimSpace(raw.Language)
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}

	// Pointer fields distinguish "absent" from an explicit false.
	if raw.DarkMode != nil {
		cfg.DarkMode = *raw.DarkMode
	}
	if raw.Notifications != nil {
		cfg.Notifications = *raw.Notifications
	}

	cfg.LogFile = strings.TrimSpace(raw.LogFile)
	if cfg.LogFile != "" {
		cfg.LogFile = mustExpand(cfg.LogFile)
	}

	if len(raw.Articles) > 0 {
		articles := make([]content.Article, 0, len(raw.Articles))
		for _, a := range raw.Articles {
			articles = append(articles, content.Article{
				ID:      a.ID,
				Title:   strings.TrimSpace(a.Title),
				Content: a.Content,
			})
		}
		cfg.Articles = articles
	}

	return cfg, nil
}

// InitialSettings maps the configuration onto the settings slice's starting
// state.
func (c Config) InitialSettings() settings.State {
	return settings.State{
		DarkMode:      c.DarkMode,
		Notifications: c.Notifications,
		Language:      c.Language,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
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
