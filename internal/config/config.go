// Package config holds site generation settings. Defaults are overridden by
// an optional sitegen.yaml in the root directory, then by environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional per-site configuration file, looked up in the
// root directory.
const ConfigFile = "sitegen.yaml"

type Config struct {
	// Menu
	MenuName     string `yaml:"menu_name"`     // Heading above the chapter menu.
	NumberedMenu bool   `yaml:"numbered_menu"` // Label entries "Chapter N" instead of the heading text.

	// Site
	CNAME      string `yaml:"cname"`       // Custom domain; CNAME file is written only when set.
	CoverImage string `yaml:"cover_image"` // Image shown on the index page.

	// Layout consumed from the root directory.
	TemplatePath string `yaml:"template"`
	AssetsDir    string `yaml:"assets_dir"`
	ImagesDir    string `yaml:"images_dir"`

	// Output
	StylesheetPath string   `yaml:"stylesheet"` // Relative to the output directory.
	ImageExts      []string `yaml:"image_exts"` // Image files worth copying.
}

// Load builds the configuration for a site rooted at rootDir.
func Load(rootDir string) (Config, error) {
	cfg := Config{
		MenuName:       "Content",
		CoverImage:     "/images/cover.png",
		TemplatePath:   filepath.Join("templates", "base.html"),
		AssetsDir:      "assets",
		ImagesDir:      "images",
		StylesheetPath: filepath.Join("assets", "css", "pandoc.css"),
		ImageExts:      []string{".svg", ".png", ".jpg"},
	}

	path := filepath.Join(rootDir, ConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Defaults apply.
	default:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.MenuName = envOr("SITEGEN_MENU_NAME", cfg.MenuName)
	cfg.NumberedMenu = envBool("SITEGEN_NUMBERED_MENU", cfg.NumberedMenu)
	cfg.CNAME = envOr("SITEGEN_CNAME", cfg.CNAME)
	cfg.CoverImage = envOr("SITEGEN_COVER_IMAGE", cfg.CoverImage)

	return cfg, nil
}

func (c Config) Validate() error {
	if c.MenuName == "" {
		return fmt.Errorf("menu_name must not be empty")
	}
	if c.TemplatePath == "" {
		return fmt.Errorf("template must not be empty")
	}
	if len(c.ImageExts) == 0 {
		return fmt.Errorf("image_exts must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
