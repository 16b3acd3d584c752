// Package versions reads package index files: lists of packages pinned at a
// version, stored as JSON or YAML.
package versions

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goplus/apkver/pkgs/mod/module"
	"gopkg.in/yaml.v3"
)

// Index is the content of an index file:
//
//	{"packages": [{"id": "busybox", "version": "1.36.1-r2"}]}
type Index struct {
	Packages []module.Version `json:"packages" yaml:"packages"`
}

// Parse parses an index file. If data is nil the file is read from disk.
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
func Parse(file string, data []byte) (*Index, error) {
	var reader io.Reader

	if data != nil {
		reader = bytes.NewBuffer(data)
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		reader = f
	}

	var idx Index

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(reader).Decode(&idx); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		if err := json.NewDecoder(reader).Decode(&idx); err != nil {
			return nil, err
		}
	}

	return &idx, nil
}

// Invalid returns the entries whose version is rejected by validate.
func (idx *Index) Invalid(validate func(string) bool) []module.Version {
	var bad []module.Version
	for _, p := range idx.Packages {
		if !validate(p.Version) {
			bad = append(bad, p)
		}
	}
	return bad
}
