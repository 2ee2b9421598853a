package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/renmarsh/pagefx/internal/foam"
	"github.com/renmarsh/pagefx/internal/reveal"
)

const (
	DefaultThreshold    = 0.1
	DefaultBottomMargin = -50.0
	DefaultStaggerMs    = 100
	DefaultDuration     = 0.5
	DefaultEasing       = "ease"
	DefaultOffsetPx     = 20.0
)

type Config struct {
	Reveal    RevealConfig `yaml:"reveal"`
	Foam      FoamConfig   `yaml:"foam"`
	Selectors []string     `yaml:"selectors"`
	Seed      int64        `yaml:"seed"`
}

type RevealConfig struct {
	Threshold    float64 `yaml:"threshold"`
	BottomMargin float64 `yaml:"bottom_margin"`
	StaggerMs    int     `yaml:"stagger_ms"`
	Duration     float64 `yaml:"duration"`
	Easing       string  `yaml:"easing"`
	OffsetPx     float64 `yaml:"offset_px"`
}

type FoamConfig struct {
	PrimaryStep                float64 `yaml:"primary_step"`
	PrimaryJitter              float64 `yaml:"primary_jitter"`
	PrimaryDuration            float64 `yaml:"primary_duration"`
	PrimaryDurationJitter      float64 `yaml:"primary_duration_jitter"`
	InterstitialStep           float64 `yaml:"interstitial_step"`
	InterstitialJitter         float64 `yaml:"interstitial_jitter"`
	InterstitialDuration       float64 `yaml:"interstitial_duration"`
	InterstitialDurationJitter float64 `yaml:"interstitial_duration_jitter"`
}

func DefaultConfig() *Config {
	return &Config{
		Reveal: RevealConfig{
			Threshold:    DefaultThreshold,
			BottomMargin: DefaultBottomMargin,
			StaggerMs:    DefaultStaggerMs,
			Duration:     DefaultDuration,
			Easing:       DefaultEasing,
			OffsetPx:     DefaultOffsetPx,
		},
		Foam: FoamConfig{
			PrimaryStep:                -1.5,
			PrimaryJitter:              0.4,
			PrimaryDuration:            20,
			PrimaryDurationJitter:      1,
			InterstitialStep:           -0.6,
			InterstitialJitter:         0.75,
			InterstitialDuration:       5,
			InterstitialDurationJitter: 0.75,
		},
		Selectors: []string{".feature-card", ".content-card", ".faq-item", ".contact-card"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Reveal.Threshold < 0 || c.Reveal.Threshold > 1 {
		return fmt.Errorf("reveal threshold must be in [0,1], got %g", c.Reveal.Threshold)
	}
	if c.Reveal.StaggerMs < 0 {
		return fmt.Errorf("stagger must be non-negative, got %d", c.Reveal.StaggerMs)
	}
	if c.Reveal.Duration < 0 {
		return fmt.Errorf("transition duration must be non-negative, got %g", c.Reveal.Duration)
	}
	if c.Foam.PrimaryDuration <= 0 || c.Foam.InterstitialDuration <= 0 {
		return fmt.Errorf("foam durations must be positive")
	}
	if len(c.Selectors) == 0 {
		return fmt.Errorf("at least one reveal selector is required")
	}
	return nil
}

// RevealOptions maps the file representation onto the animator's config.
func (c *Config) RevealOptions() reveal.Config {
	return reveal.Config{
		Threshold:    c.Reveal.Threshold,
		BottomMargin: c.Reveal.BottomMargin,
		Stagger:      time.Duration(c.Reveal.StaggerMs) * time.Millisecond,
		Duration:     c.Reveal.Duration,
		Easing:       c.Reveal.Easing,
		OffsetPx:     c.Reveal.OffsetPx,
	}
}

// FoamOptions maps the file representation onto the assigner's config.
func (c *Config) FoamOptions() foam.Config {
	return foam.Config{
		PrimaryStep:                c.Foam.PrimaryStep,
		PrimaryJitter:              c.Foam.PrimaryJitter,
		PrimaryDuration:            c.Foam.PrimaryDuration,
		PrimaryDurationJitter:      c.Foam.PrimaryDurationJitter,
		InterstitialStep:           c.Foam.InterstitialStep,
		InterstitialJitter:         c.Foam.InterstitialJitter,
		InterstitialDuration:       c.Foam.InterstitialDuration,
		InterstitialDurationJitter: c.Foam.InterstitialDurationJitter,
	}
}
