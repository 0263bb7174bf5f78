package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one capture directory in the output manifest.
type ManifestEntry struct {
	Dir    string `json:"dir"`
	Output string `json:"output,omitempty"`
	Poses  int    `json:"poses"`
	Frames int    `json:"frames"`
	Error  string `json:"error,omitempty"`
}

// WriteManifest writes the results as indented JSON. Output paths are made
// relative to the manifest's directory where possible.
func WriteManifest(path string, results []Result) error {
	base := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		e := ManifestEntry{
			Dir:    rel(base, r.Dir),
			Poses:  r.Poses,
			Frames: r.Frames,
			Error:  r.Error,
		}
		if r.Success {
			e.Output = rel(base, r.Output)
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func rel(base, p string) string {
	if r, err := filepath.Rel(base, p); err == nil {
		return filepath.ToSlash(r)
	}
	return p
}
