// Package manifest records the inputs and outputs of a generator run.
package manifest

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/renameio/v2"
)

// Manifest describes one generated file.
type Manifest struct {
	Version            int       `json:"version"`
	CreatedAt          time.Time `json:"created_at"`
	Location           string    `json:"location"`
	Encoding           string    `json:"encoding"`
	ContentHash        string    `json:"content_hash"`
	Entries            int       `json:"entries"`
	CountriesCount     int       `json:"countries_count"`
	CountriesPlusCount int       `json:"countries_plus_count"`
	OfficialCount      int       `json:"official_count"`
	Output             string    `json:"output"`
	OutputHash         string    `json:"output_hash"`
	Format             string    `json:"format"`
	Generator          string    `json:"generator"`
}

// Version is the current manifest format version.
const Version = 1

// New creates a new manifest stamped with the current time.
func New() *Manifest {
	return &Manifest{
		Version:   Version,
		CreatedAt: time.Now().UTC(),
	}
}

// Save atomically replaces path with the manifest.
func (m *Manifest) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return renameio.WriteFile(path, append(data, '\n'), 0644)
}

// Load loads a manifest from a file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	return &m, nil
}
