package model

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed artifacts/default.json
var artifactFS embed.FS

// Load reads and validates a classifier artifact from disk. A nil
// artifact with an error means the engine should run rules-only;
// load failure is a recoverable condition, never fatal.
func Load(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading artifact: %w", err)
	}
	return decode(data)
}

// LoadDefault returns the artifact bundled with the binary.
func LoadDefault() (*Artifact, error) {
	data, err := artifactFS.ReadFile("artifacts/default.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded artifact: %w", err)
	}
	return decode(data)
}

func decode(data []byte) (*Artifact, error) {
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decoding artifact: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("malformed artifact: %w", err)
	}
	return &a, nil
}
