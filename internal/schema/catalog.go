// Package schema holds the normalized object field model and the
// process-wide catalog of object definitions.
package schema

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// MetadataProvider is the live metadata collaborator.
type MetadataProvider interface {
	// Describe returns the raw field listing for one object name.
	Describe(ctx context.Context, object string) ([]FieldMetadata, error)
	// ObjectNames enumerates every object name the provider knows about.
	ObjectNames(ctx context.Context) ([]string, error)
}

// SnapshotWriter persists one object's normalized field list.
type SnapshotWriter interface {
	Write(object string, fields []*Field) error
}

// SnapshotSource enumerates previously persisted object snapshots,
// tolerating per-item parse failure.
type SnapshotSource interface {
	List() ([]ObjectSnapshot, error)
}

// ObjectSnapshot is one persisted object definition.
type ObjectSnapshot struct {
	Object string
	Fields []*Field
}

// Catalog is the process-wide store of object schemas. It is written only
// by the Load methods and read thereafter; it carries no internal locking,
// so concurrent loads must be serialized by the caller.
//
// Load failures degrade to empty results with loud logging rather than
// propagating errors: a failed object is skipped, never aborting the rest
// of the load.
type Catalog struct {
	log  *zap.SugaredLogger
	defs map[string]*ObjectSchema
}

// NewCatalog returns an empty catalog.
func NewCatalog(log *zap.SugaredLogger) *Catalog {
	return &Catalog{log: log, defs: make(map[string]*ObjectSchema)}
}

// LoadLive populates the catalog from the metadata provider. With no names
// given, every object the provider enumerates is loaded. When snap is
// non-nil, each loaded definition is written through as a snapshot.
func (c *Catalog) LoadLive(ctx context.Context, src MetadataProvider, names []string, snap SnapshotWriter) {
	if len(names) == 0 {
		var err error
		names, err = src.ObjectNames(ctx)
		if err != nil {
			c.log.Errorw("listing object names", "error", err)
			return
		}
	}

	for _, object := range names {
		metas, err := src.Describe(ctx, object)
		if err != nil {
			c.log.Errorw("describe failed, skipping object", "object", object, "error", err)
			continue
		}

		os := NewObjectSchema()
		for _, meta := range metas {
			f, ok := NewField(meta)
			if !ok {
				continue
			}
			os.Add(f)
		}
		c.defs[object] = os
		c.log.Debugw("loaded object definition", "object", object, "fields", os.Len())

		if snap != nil {
			if err := snap.Write(object, os.Fields()); err != nil {
				c.log.Errorw("writing snapshot", "object", object, "error", err)
			}
		}
	}
}

// LoadSnapshots populates the catalog from persisted snapshots. When names
// is non-empty, snapshots outside the filter are skipped.
func (c *Catalog) LoadSnapshots(src SnapshotSource, names []string) {
	snaps, err := src.List()
	if err != nil {
		c.log.Errorw("listing snapshots", "error", err)
		return
	}

	var filter map[string]bool
	if len(names) > 0 {
		filter = make(map[string]bool, len(names))
		for _, n := range names {
			filter[n] = true
		}
	}

	for _, snap := range snaps {
		if filter != nil && !filter[snap.Object] {
			continue
		}
		os := NewObjectSchema()
		for _, f := range snap.Fields {
			if f == nil || f.Name == "" {
				continue
			}
			os.Add(f)
		}
		c.defs[snap.Object] = os
		c.log.Debugw("loaded cached definition", "object", snap.Object, "fields", os.Len())
	}
}

// Fields returns the schema for a loaded object, or nil. An unpopulated
// catalog and an unknown object name are distinct caller mistakes and are
// logged separately; both yield nil.
func (c *Catalog) Fields(object string) *ObjectSchema {
	if len(c.defs) == 0 {
		c.log.Error("object definitions not loaded; call LoadLive or LoadSnapshots first")
		return nil
	}
	os, ok := c.defs[object]
	if !ok {
		c.log.Errorw("object not found in loaded definitions", "object", object)
		return nil
	}
	return os
}

// ReferenceFields returns the object's reference fields in schema order,
// or nil when the object has no schema loaded or no reference fields.
func (c *Catalog) ReferenceFields(object string) []*Field {
	os := c.Fields(object)
	if os == nil {
		return nil
	}
	return os.ReferenceFields()
}

// Objects returns the loaded object names, sorted.
func (c *Catalog) Objects() []string {
	names := make([]string, 0, len(c.defs))
	for name := range c.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of loaded objects.
func (c *Catalog) Len() int {
	return len(c.defs)
}
