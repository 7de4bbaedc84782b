package schema

// ObjectSchema maps field name to descriptor for one object type. Fields
// keep the order in which they were added: the query builder's projection
// and the resolver's traversal both follow it.
type ObjectSchema struct {
	names  []string
	fields map[string]*Field
}

// NewObjectSchema returns an empty schema.
func NewObjectSchema() *ObjectSchema {
	return &ObjectSchema{fields: make(map[string]*Field)}
}

// Add inserts or replaces a field. Replacing keeps the field's original
// position.
func (s *ObjectSchema) Add(f *Field) {
	if _, exists := s.fields[f.Name]; !exists {
		s.names = append(s.names, f.Name)
	}
	s.fields[f.Name] = f
}

// Get returns the descriptor for a field name.
func (s *ObjectSchema) Get(name string) (*Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Names returns all field names in schema order.
func (s *ObjectSchema) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Fields returns all descriptors in schema order.
func (s *ObjectSchema) Fields() []*Field {
	fields := make([]*Field, len(s.names))
	for i, name := range s.names {
		fields[i] = s.fields[name]
	}
	return fields
}

// ReferenceFields returns the fields pointing at other objects, in schema
// order.
func (s *ObjectSchema) ReferenceFields() []*Field {
	var refs []*Field
	for _, name := range s.names {
		if f := s.fields[name]; f.IsReference() {
			refs = append(refs, f)
		}
	}
	return refs
}

// Len returns the number of fields.
func (s *ObjectSchema) Len() int {
	return len(s.names)
}
