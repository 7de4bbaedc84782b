// Package snapshot persists object definitions as YAML files, one per
// object, so the catalog can load without a live metadata provider.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/colinp85/simpler-salesforce/internal/schema"
)

// Store reads and writes object snapshots under a single directory. The
// file name (without extension) is the object name.
type Store struct {
	dir string
	log *zap.SugaredLogger
}

// New creates a store rooted at dir. The directory is created lazily on
// first write.
func New(dir string, log *zap.SugaredLogger) *Store {
	return &Store{dir: dir, log: log}
}

// Write marshals the field list to <dir>/<object>.yaml.
func (s *Store) Write(object string, fields []*schema.Field) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}

	data, err := yaml.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", object, err)
	}

	path := filepath.Join(s.dir, object+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	s.log.Debugw("wrote object snapshot", "object", object, "path", path)
	return nil
}

// List parses every *.yaml snapshot in the store directory. A file that
// fails to read or parse is logged and skipped; it never aborts the rest
// of the listing.
func (s *Store) List() ([]schema.ObjectSnapshot, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}

	var snaps []schema.ObjectSnapshot
	for _, path := range paths {
		object := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

		data, err := os.ReadFile(path)
		if err != nil {
			s.log.Errorw("reading snapshot", "path", path, "error", err)
			continue
		}
		var fields []*schema.Field
		if err := yaml.Unmarshal(data, &fields); err != nil {
			s.log.Errorw("parsing snapshot", "object", object, "path", path, "error", err)
			continue
		}
		snaps = append(snaps, schema.ObjectSnapshot{Object: object, Fields: fields})
	}
	return snaps, nil
}
