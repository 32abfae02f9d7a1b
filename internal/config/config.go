// internal/config/config.go
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Badge BadgeConfig `yaml:"badge"`
}

type BadgeConfig struct {
	Device     DeviceConfig `yaml:"device"`
	Brightness int          `yaml:"brightness"` // 25/50/75/100, 0 = device default
	StampTime  bool         `yaml:"stamp_time"`
	Render     RenderConfig `yaml:"render"`
	Log        LogConfig    `yaml:"log"`
	Slots      []SlotConfig `yaml:"slots"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	VendorID  uint16 `yaml:"vendor_id"`
	ProductID uint16 `yaml:"product_id"`
}

// ---- RENDER ----

type RenderConfig struct {
	MaxChars     int    `yaml:"max_chars"`     // 0 = 750
	Overflow     string `yaml:"overflow"`      // truncate | reject
	UnknownGlyph string `yaml:"unknown_glyph"` // fail | blank
	CacheSize    int    `yaml:"cache_size"`
	IconsDir     string `yaml:"icons_dir"`
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// ---- SLOT ----

type SlotConfig struct {
	Text  string `yaml:"text"`
	Speed *int   `yaml:"speed"` // nil = DefaultSpeed
	Mode  string `yaml:"mode"`  // name or code, "" = scroll-left
	Blink bool   `yaml:"blink"`
	Ants  bool   `yaml:"ants"`
}

// Load reads a YAML config. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return &cfg, nil
}
