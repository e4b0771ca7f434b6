package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()

	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default configuration must validate: %v", err)
	}

	if cfg.Rules.Section.Style != "Heading 1" || cfg.Rules.Description.Style != "Heading 4" {
		t.Errorf("unexpected default heading styles: %+v", cfg.Rules)
	}
	if len(cfg.Rules.SectionCaptions) == 0 || len(cfg.Rules.ManufacturerCaptions) == 0 {
		t.Errorf("expected default vocabularies: %+v", cfg.Rules)
	}
	if cfg.DefaultSection != "CA Submittal Check-list" {
		t.Errorf("unexpected default section: %q", cfg.DefaultSection)
	}
	if cfg.Workers != 4 || cfg.Port != "8090" || cfg.MaxUploadBytes != 52428800 {
		t.Errorf("unexpected runtime defaults: %+v", cfg)
	}
}

func TestLoad_OverridesAndClamps(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()

	viper.Set("document.heading_styles.section", "Title 1")
	viper.Set("asana.default_project", "Submittals")
	viper.Set("batch.workers", -3)

	cfg := Load()
	if cfg.Rules.Section.Style != "Title 1" {
		t.Errorf("expected override, got %q", cfg.Rules.Section.Style)
	}
	if cfg.DefaultProject != "Submittals" {
		t.Errorf("expected project override, got %q", cfg.DefaultProject)
	}
	if cfg.Workers != 4 {
		t.Errorf("expected non-positive workers clamped to 4, got %d", cfg.Workers)
	}
}

func TestValidate_RejectsEmptyVocabulary(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()

	cfg := Load()
	cfg.Rules.ManufacturerCaptions = nil
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty manufacturer captions")
	}

	cfg = Load()
	cfg.Rules.ProductType.Style = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty heading style")
	}
}
