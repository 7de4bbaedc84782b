// Package graph builds a directed reference graph over the objects loaded
// in a schema catalog.
package graph

import "github.com/colinp85/simpler-salesforce/internal/schema"

// Edge represents one reference field: a directed edge from the
// referencing object to its target object.
type Edge struct {
	Object string // referencing object
	Field  string // reference field name
	Target string // referenced object
}

// Graph is the reference graph over the catalog's loaded objects.
type Graph struct {
	// Objects holds all loaded object names, sorted.
	Objects []string

	// Edges are non-self-reference edges (object → target)
	Edges []Edge

	// SelfRefs holds self-reference edges, keyed by object name
	SelfRefs map[string][]Edge

	// Sources maps target object → referencing objects
	Sources map[string][]string

	// Targets maps object → referenced objects
	Targets map[string][]string

	// adjacency for undirected connectivity
	Adjacency map[string]map[string]bool
}

// Build constructs the reference graph from a populated catalog. Reference
// fields whose target object is not loaded in the catalog are ignored.
func Build(cat *schema.Catalog) *Graph {
	g := &Graph{
		Objects:   cat.Objects(),
		SelfRefs:  make(map[string][]Edge),
		Sources:   make(map[string][]string),
		Targets:   make(map[string][]string),
		Adjacency: make(map[string]map[string]bool),
	}

	known := make(map[string]bool, len(g.Objects))
	for _, object := range g.Objects {
		known[object] = true
		g.Adjacency[object] = make(map[string]bool)
	}

	for _, object := range g.Objects {
		fields := cat.Fields(object)
		if fields == nil {
			continue
		}
		for _, f := range fields.ReferenceFields() {
			if !known[f.Reference] {
				continue // target object not loaded
			}

			edge := Edge{Object: object, Field: f.Name, Target: f.Reference}
			if f.Reference == object {
				g.SelfRefs[object] = append(g.SelfRefs[object], edge)
				continue
			}

			g.Edges = append(g.Edges, edge)
			g.Sources[f.Reference] = append(g.Sources[f.Reference], object)
			g.Targets[object] = append(g.Targets[object], f.Reference)
			g.Adjacency[object][f.Reference] = true
			g.Adjacency[f.Reference][object] = true
		}
	}

	return g
}

// Leaves returns objects that reference no other object.
func (g *Graph) Leaves() []string {
	var leaves []string
	for _, object := range g.Objects {
		if len(g.Targets[object]) == 0 {
			leaves = append(leaves, object)
		}
	}
	return leaves
}
