// Package project handles persistence of designs and application
// configuration. Only parameters are persisted; derived data (layout,
// parts, sheet plans) is always recomputed on load.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// Design is a saved shelving design: identity plus parameters.
type Design struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Created  time.Time          `json:"created"`
	Modified time.Time          `json:"modified"`
	Params   model.DesignParams `json:"params"`
}

// NewDesign creates a design with default parameters and a fresh id.
func NewDesign(name string) Design {
	now := time.Now()
	return Design{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Created:  now,
		Modified: now,
		Params:   model.DefaultParams(),
	}
}

// SaveDesign writes the design to a JSON file, creating parent
// directories as needed.
func SaveDesign(path string, d Design) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	d.Modified = time.Now()
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadDesign reads a design from a JSON file and validates its params.
// For convenience the file may also contain a bare DesignParams object,
// in which case a design wrapper is synthesized around it.
func LoadDesign(path string) (Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Design{}, err
	}

	var d Design
	if err := json.Unmarshal(data, &d); err != nil {
		return Design{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if d.ID == "" && d.Params.Rows == 0 {
		// Possibly a bare params file.
		var p model.DesignParams
		if err := json.Unmarshal(data, &p); err != nil {
			return Design{}, fmt.Errorf("parse %s: %w", path, err)
		}
		d = Design{
			ID:     uuid.New().String()[:8],
			Name:   filepath.Base(path),
			Params: p,
		}
	}

	if err := d.Params.Validate(); err != nil {
		return Design{}, fmt.Errorf("design %s: %w", path, err)
	}
	return d, nil
}
