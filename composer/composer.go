// Package composer reads a project's composer.json and answers whether any
// package from a known catalog is declared as a dependency.
package composer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestFile is the manifest's fixed location relative to the project root.
const ManifestFile = "composer.json"

// ErrManifestNotFound is returned when the project has no composer.json at
// all. Callers must keep this distinct from a parse failure: a missing
// manifest means the analysis cannot run, a broken one means the target
// project is broken.
var ErrManifestNotFound = errors.New("composer.json not found")

// Manifest holds the dependency declarations of a composer.json. Version
// constraints are kept verbatim and never evaluated.
type Manifest struct {
	Require    map[string]string `json:"require"`
	RequireDev map[string]string `json:"require-dev"`
}

// Load reads and parses the manifest of the project rooted at projectRoot.
func Load(projectRoot string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(projectRoot, ManifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrManifestNotFound
		}
		return nil, fmt.Errorf("read %s: %w", ManifestFile, err)
	}

	return Parse(data)
}

// Parse decodes manifest bytes. Malformed JSON is a hard failure, never
// "capability absent".
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ManifestFile, err)
	}
	return &m, nil
}

// Has reports whether the package is declared in require or require-dev.
// Matching is case-sensitive and exact; dev-only declarations count, since
// the capability may legitimately live in non-production tooling.
func (m *Manifest) Has(name string) bool {
	if _, ok := m.Require[name]; ok {
		return true
	}
	_, ok := m.RequireDev[name]
	return ok
}

// Matched returns the known packages the manifest declares, in catalog
// order, for reporting.
func (m *Manifest) Matched(known []string) []string {
	var matched []string
	for _, name := range known {
		if m.Has(name) {
			matched = append(matched, name)
		}
	}
	return matched
}
