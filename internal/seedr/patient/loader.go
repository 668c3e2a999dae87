package patient

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML list of candidates, replacing the built-in list.
// The file format matches what `seedr generate` emits.
func LoadFile(path string) ([]Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}
	var cands []Candidate
	if err := yaml.Unmarshal(data, &cands); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	return cands, nil
}
