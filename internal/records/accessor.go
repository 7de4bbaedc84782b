// Package records fetches flat object records and resolves their reference
// fields into embedded child records.
package records

import (
	"context"

	"go.uber.org/zap"

	"github.com/colinp85/simpler-salesforce/internal/schema"
	"github.com/colinp85/simpler-salesforce/internal/soql"
)

// Record is a flat field-name to value mapping as returned by query
// execution. Resolution adds relationship keys whose values are themselves
// Records; the original flat keys are never replaced.
type Record map[string]any

// QueryExecutor runs a SOQL query and returns every matching record, in
// source order. Pagination, if any, is the executor's concern.
type QueryExecutor interface {
	Query(ctx context.Context, query string) ([]Record, error)
}

// Accessor composes the schema catalog with the query executor. Failures
// degrade to empty results with logging; callers inspect emptiness rather
// than errors.
type Accessor struct {
	cat  *schema.Catalog
	exec QueryExecutor
	log  *zap.SugaredLogger
}

// NewAccessor creates an accessor over an already populated catalog.
func NewAccessor(cat *schema.Catalog, exec QueryExecutor, log *zap.SugaredLogger) *Accessor {
	return &Accessor{cat: cat, exec: exec, log: log}
}

// GetObject returns every record of an object, selecting all schema fields
// and optionally filtering with a verbatim WHERE fragment (see
// soql.BuildSelect). A missing schema or a failed query yields an empty
// slice, never an error.
func (a *Accessor) GetObject(ctx context.Context, object, where string) []Record {
	fields := a.cat.Fields(object)
	if fields == nil {
		a.log.Errorw("fields for object not found", "object", object)
		return nil
	}

	query := soql.BuildSelect(object, fields, where)
	recs, err := a.exec.Query(ctx, query)
	if err != nil {
		a.log.Errorw("query failed", "object", object, "error", err)
		return nil
	}
	return recs
}

// GetObjectByID returns the record with the given Id, or nil when nothing
// matches. When more than one record matches, the first in executor order
// wins; that tie-break is a known limitation.
func (a *Accessor) GetObjectByID(ctx context.Context, object, id string) Record {
	recs := a.GetObject(ctx, object, soql.ByID(id))
	if len(recs) == 0 {
		return nil
	}
	return recs[0]
}
