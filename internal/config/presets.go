package config

import "sort"

var presets = map[string]func() *Config{
	"default": DefaultConfig,
	"gentle": func() *Config {
		cfg := DefaultConfig()
		cfg.Reveal.StaggerMs = 180
		cfg.Reveal.Duration = 0.9
		cfg.Reveal.OffsetPx = 12
		cfg.Foam.PrimaryDuration = 28
		cfg.Foam.InterstitialDuration = 8
		return cfg
	},
	"snappy": func() *Config {
		cfg := DefaultConfig()
		cfg.Reveal.StaggerMs = 60
		cfg.Reveal.Duration = 0.25
		cfg.Reveal.Easing = "ease-out"
		cfg.Reveal.OffsetPx = 30
		cfg.Foam.PrimaryDuration = 14
		cfg.Foam.InterstitialDuration = 3.5
		return cfg
	},
}

// GetPreset returns a fresh copy of a named preset, or nil if unknown.
func GetPreset(name string) *Config {
	build, ok := presets[name]
	if !ok {
		return nil
	}
	return build()
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
