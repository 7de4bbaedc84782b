package schema

import "strings"

// PicklistEntry is one picklist option as returned by the describe API.
type PicklistEntry struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Active bool   `json:"active"`
}

// FieldMetadata is the raw per-field shape returned by the metadata
// provider (the object describe call). Only the attributes the catalog
// normalizes are decoded; the rest of the describe payload is ignored.
type FieldMetadata struct {
	Name           string          `json:"name"`
	Label          string          `json:"label"`
	Type           string          `json:"type"`
	ReferenceTo    []string        `json:"referenceTo"`
	Length         int             `json:"length"`
	PicklistValues []PicklistEntry `json:"picklistValues"`
}

// Field is the normalized descriptor for one field of one object. The yaml
// tags are the on-disk snapshot contract; live-mode caching writes this
// shape and snapshot-mode loading reads it back losslessly.
type Field struct {
	Name           string   `yaml:"name"`
	Label          string   `yaml:"label"`
	Type           string   `yaml:"type"`
	Reference      string   `yaml:"reference"`
	Length         int      `yaml:"length"`
	PicklistValues []string `yaml:"picklistValues"`
}

// NewField normalizes raw describe metadata into a Field. Only the first
// reference target is kept; polymorphic targets beyond it are discarded.
// Entries without a name are rejected (ok is false) and must not enter an
// ObjectSchema.
func NewField(meta FieldMetadata) (*Field, bool) {
	if meta.Name == "" {
		return nil, false
	}
	f := &Field{
		Name:   meta.Name,
		Label:  meta.Label,
		Type:   meta.Type,
		Length: meta.Length,
	}
	if len(meta.ReferenceTo) > 0 {
		f.Reference = meta.ReferenceTo[0]
	}
	for _, pv := range meta.PicklistValues {
		f.PicklistValues = append(f.PicklistValues, pv.Value)
	}
	return f, true
}

// IsReference reports whether the field points at another object type.
func (f *Field) IsReference() bool {
	return f.Reference != ""
}

// DisplayLabel returns the human-readable label, falling back to the API
// name when no label is set.
func (f *Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// RelationshipKey returns the record key under which a reference field's
// resolved child is embedded. Custom fields swap the __c suffix for __r;
// standard id fields drop the trailing Id (OwnerId -> Owner); anything else
// gets an __r suffix so the original key is never overwritten.
func RelationshipKey(name string) string {
	if strings.HasSuffix(name, "__c") {
		return strings.TrimSuffix(name, "__c") + "__r"
	}
	if len(name) > 2 && strings.HasSuffix(name, "Id") {
		return strings.TrimSuffix(name, "Id")
	}
	return name + "__r"
}
