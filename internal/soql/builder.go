// Package soql builds SOQL query strings from catalog schemas.
package soql

import (
	"strings"

	"github.com/colinp85/simpler-salesforce/internal/schema"
)

// BuildSelect returns a SELECT over every field of the object's schema, in
// schema order, optionally filtered by where. Returns "" when the schema is
// missing or empty.
//
// The where fragment is appended verbatim after WHERE: it is a
// caller-trusted raw SOQL predicate and is never parsed or escaped.
// Callers interpolating external input into it own its safety.
func BuildSelect(object string, os *schema.ObjectSchema, where string) string {
	if os == nil || os.Len() == 0 {
		return ""
	}
	q := "SELECT " + strings.Join(os.Names(), ", ") + " FROM " + object
	if where != "" {
		q += " WHERE " + where
	}
	return q
}

// ByID returns an Id-equality predicate for BuildSelect.
func ByID(id string) string {
	return "Id = '" + id + "'"
}
