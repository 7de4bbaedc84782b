package records

import (
	"context"
	"fmt"

	"github.com/colinp85/simpler-salesforce/internal/schema"
)

// Resolve fetches the records referenced by rec's populated reference
// fields and embeds each one under its relationship key
// (schema.RelationshipKey), leaving the raw id keys untouched. Resolution
// is single-level: embedded children are flat records whose own reference
// fields are not resolved, which bounds the work to one fetch per
// populated reference field and makes cyclic schemas (A→B, B→A) safe
// without a visited set.
//
// When allowed is non-nil, only fields named in it are resolved; a nil
// allowed resolves everything. A field whose target cannot be fetched is
// left unresolved and never aborts its siblings. The record is mutated in
// place and also returned.
func (a *Accessor) Resolve(ctx context.Context, rec Record, object string, allowed []string) Record {
	refFields := a.cat.ReferenceFields(object)
	if len(refFields) == 0 {
		a.log.Debugw("no reference fields to resolve", "object", object)
		return rec
	}

	var allow map[string]bool
	if allowed != nil {
		allow = make(map[string]bool, len(allowed))
		for _, name := range allowed {
			allow[name] = true
		}
	}

	for _, f := range refFields {
		val, ok := rec[f.Name]
		if !ok || val == nil {
			continue
		}
		if allow != nil && !allow[f.Name] {
			continue
		}

		id := fmt.Sprint(val)
		if id == "" {
			continue
		}

		child := a.GetObjectByID(ctx, f.Reference, id)
		if child == nil {
			a.log.Warnw("reference not resolved",
				"object", object, "field", f.Name, "target", f.Reference, "id", id)
			continue
		}
		rec[schema.RelationshipKey(f.Name)] = child
	}
	return rec
}
