// Package printer renders records using the catalog's field labels.
package printer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/colinp85/simpler-salesforce/internal/records"
	"github.com/colinp85/simpler-salesforce/internal/schema"
)

// Fprint writes rec's fields as "Label (Name): value" lines, sorted by
// label with the field name as fallback. Resolved child records render as
// indented sub-blocks under their parent field. Records keys outside the
// schema (such as the query attributes metadata) are not printed.
func Fprint(w io.Writer, cat *schema.Catalog, rec records.Record, object string, indent int) {
	fields := cat.Fields(object)
	if fields == nil {
		return
	}

	prefix := strings.Repeat(" ", indent)
	fmt.Fprintf(w, "%s---- Object: %s ----\n", prefix, object)

	sorted := fields.Fields()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DisplayLabel() < sorted[j].DisplayLabel()
	})

	for _, f := range sorted {
		fmt.Fprintf(w, "%s%s (%s): %v\n", prefix, f.DisplayLabel(), f.Name, rec[f.Name])

		if !f.IsReference() {
			continue
		}
		if child, ok := rec[schema.RelationshipKey(f.Name)].(records.Record); ok {
			Fprint(w, cat, child, f.Reference, indent+2)
		}
	}
}
