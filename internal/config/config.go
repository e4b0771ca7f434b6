// Package config loads the matching rules and runtime settings from
// viper (config file, environment, defaults) into one typed struct.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mboyd1/asanagen/internal/outline"
)

type Config struct {
	// Rules drives outline extraction.
	Rules outline.Rules

	// Row defaults stamped onto every exported task.
	DefaultSection string
	DefaultProject string

	// Batch processing
	Workers int

	// Serve mode
	Port           string
	APIKey         string
	MaxUploadBytes int64
}

// SetDefaults registers the documented fallbacks so a run with no
// config file still behaves.
func SetDefaults() {
	d := outline.DefaultRules()

	viper.SetDefault("document.heading_styles.section", d.Section.Style)
	viper.SetDefault("document.heading_styles.product_type", d.ProductType.Style)
	viper.SetDefault("document.heading_styles.manufacturer", d.Manufacturer.Style)
	viper.SetDefault("document.heading_styles.description", d.Description.Style)

	viper.SetDefault("document.heading_style_variations.section", d.Section.Variants)
	viper.SetDefault("document.heading_style_variations.product_type", d.ProductType.Variants)
	viper.SetDefault("document.heading_style_variations.manufacturer", d.Manufacturer.Variants)
	viper.SetDefault("document.heading_style_variations.description", d.Description.Variants)

	viper.SetDefault("document.products_heading_variations", d.SectionCaptions)
	viper.SetDefault("document.manufacturer_headings", d.ManufacturerCaptions)

	viper.SetDefault("asana.default_section", "CA Submittal Check-list")
	viper.SetDefault("asana.default_project", "")

	viper.SetDefault("batch.workers", 4)

	viper.SetDefault("server.port", "8090")
	viper.SetDefault("server.api_key", "")
	viper.SetDefault("server.max_upload_bytes", int64(52428800)) // 50MB
}

// Load reads the effective configuration. Call SetDefaults first.
func Load() Config {
	cfg := Config{
		Rules: outline.Rules{
			Section: outline.RoleRule{
				Style:    viper.GetString("document.heading_styles.section"),
				Variants: viper.GetStringSlice("document.heading_style_variations.section"),
			},
			ProductType: outline.RoleRule{
				Style:    viper.GetString("document.heading_styles.product_type"),
				Variants: viper.GetStringSlice("document.heading_style_variations.product_type"),
			},
			Manufacturer: outline.RoleRule{
				Style:    viper.GetString("document.heading_styles.manufacturer"),
				Variants: viper.GetStringSlice("document.heading_style_variations.manufacturer"),
			},
			Description: outline.RoleRule{
				Style:    viper.GetString("document.heading_styles.description"),
				Variants: viper.GetStringSlice("document.heading_style_variations.description"),
			},
			SectionCaptions:      viper.GetStringSlice("document.products_heading_variations"),
			ManufacturerCaptions: viper.GetStringSlice("document.manufacturer_headings"),
		},

		DefaultSection: viper.GetString("asana.default_section"),
		DefaultProject: viper.GetString("asana.default_project"),

		Workers: viper.GetInt("batch.workers"),

		Port:           viper.GetString("server.port"),
		APIKey:         viper.GetString("server.api_key"),
		MaxUploadBytes: viper.GetInt64("server.max_upload_bytes"),
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}

	return cfg
}

func (c Config) Validate() error {
	for role, style := range map[string]string{
		"section":      c.Rules.Section.Style,
		"product_type": c.Rules.ProductType.Style,
		"manufacturer": c.Rules.Manufacturer.Style,
		"description":  c.Rules.Description.Style,
	} {
		if style == "" {
			return fmt.Errorf("document.heading_styles.%s is required", role)
		}
	}
	if len(c.Rules.SectionCaptions) == 0 {
		return fmt.Errorf("document.products_heading_variations must not be empty")
	}
	if len(c.Rules.ManufacturerCaptions) == 0 {
		return fmt.Errorf("document.manufacturer_headings must not be empty")
	}
	return nil
}
