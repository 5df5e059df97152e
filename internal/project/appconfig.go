package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// AppConfig holds user preferences applied to new designs.
type AppConfig struct {
	DefaultClearance  float64          `json:"default_clearance"`
	DefaultDepth      float64          `json:"default_depth"`
	DefaultUnitSystem model.UnitSystem `json:"default_unit_system"`
	DefaultMaterials  model.Materials  `json:"default_materials"`
	RecentDesigns     []string         `json:"recent_designs"`
}

// DefaultAppConfig mirrors the built-in design defaults.
func DefaultAppConfig() AppConfig {
	p := model.DefaultParams()
	return AppConfig{
		DefaultClearance:  p.InteriorClearance,
		DefaultDepth:      p.Depth,
		DefaultUnitSystem: p.UnitSystem,
		DefaultMaterials:  p.Materials,
		RecentDesigns:     []string{},
	}
}

// ApplyToParams copies the saved defaults into a parameter set, so new
// designs inherit the user's preferences.
func (c AppConfig) ApplyToParams(p *model.DesignParams) {
	if c.DefaultClearance > 0 {
		p.InteriorClearance = c.DefaultClearance
	}
	if c.DefaultDepth > 0 {
		p.Depth = c.DefaultDepth
	}
	if c.DefaultUnitSystem != "" {
		p.UnitSystem = c.DefaultUnitSystem
	}
	if c.DefaultMaterials.Frame.Inches() > 0 {
		p.Materials = c.DefaultMaterials
	}
}

// DefaultConfigPath returns ~/.shelfcut/config.json.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".shelfcut", "config.json"), nil
}

// SaveConfig writes the config, creating parent directories as needed.
func SaveConfig(path string, c AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadConfig reads the config. A missing file yields the defaults, which
// are saved back so the file exists for the next edit.
func LoadConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			c := DefaultAppConfig()
			if saveErr := SaveConfig(path, c); saveErr != nil {
				return c, saveErr
			}
			return c, nil
		}
		return AppConfig{}, err
	}
	var c AppConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return AppConfig{}, err
	}
	return c, nil
}
