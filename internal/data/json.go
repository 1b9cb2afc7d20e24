package data

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"derivatives-case-study/internal/model"
)

// PathFile is the on-disk shape of a user-supplied rate path. Either a bare
// array of points or an object with a "path" field is accepted:
//
//	[{"month": 1, "rate": 1.60}, ...]
//	{"name": "my path", "path": [{"month": 1, "rate": 1.60}, ...]}
type PathFile struct {
	Name string             `json:"name,omitempty"`
	Path model.ScenarioPath `json:"path"`
}

func LoadPathJSON(path string) (*PathFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pf, err := DecodePathJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pf, nil
}

// DecodePathJSON reads and validates a rate path.
func DecodePathJSON(r io.Reader) (*PathFile, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var pf PathFile
	if err := json.Unmarshal(raw, &pf.Path); err != nil {
		if err := json.Unmarshal(raw, &pf); err != nil {
			return nil, model.InvalidInputf("rate path JSON: %v", err)
		}
	}
	if err := pf.Path.Validate(); err != nil {
		return nil, err
	}
	return &pf, nil
}

// SavePathJSON writes pf in the object form, creating parent directories.
func SavePathJSON(path string, pf *PathFile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(pf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(raw, '\n'), 0o644)
}
