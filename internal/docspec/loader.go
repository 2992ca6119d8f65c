package docspec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/rezonia/zugferd/internal/profile"
)

// LoadFile reads a description from path. Attachments named in the file
// resolve relative to its directory.
func LoadFile(path string) (*Description, error) {
	dir := filepath.Dir(path)
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open description directory: %w", err)
	}
	defer func() {
		_ = root.Close()
	}()

	file, err := root.Open(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open description: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	d, err := Load(file)
	if err != nil {
		return nil, err
	}
	d.baseDir = dir
	return d, nil
}

// Load decodes a description. Unknown keys are rejected.
func Load(r io.Reader) (*Description, error) {
	var d Description
	decoder := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := decoder.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode description YAML: %w", err)
	}
	return &d, nil
}

// ResolveProfile picks the profile to build with. A non-empty override wins
// over the profile named in the description.
func (d *Description) ResolveProfile(override string) (profile.Profile, error) {
	name := override
	if name == "" {
		name = d.Profile
	}
	if name == "" {
		return 0, errors.New("no profile given: set profile in the description or pass one explicitly")
	}
	return profile.Parse(name)
}

// SetBaseDir changes the directory relative attachment paths resolve
// against.
func (d *Description) SetBaseDir(dir string) {
	d.baseDir = dir
}
