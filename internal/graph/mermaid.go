package graph

import (
	"fmt"
	"io"
	"sort"
)

// WriteMermaid writes the reference graph in Mermaid format to w.
// Each connected component is a subgraph.
func WriteMermaid(w io.Writer, g *Graph) error {
	components := sortedComponents(g)

	if _, err := fmt.Fprintln(w, "graph TD"); err != nil {
		return err
	}

	for i, comp := range components {
		fmt.Fprintf(w, "    subgraph component_%d\n", i+1)

		objectSet := make(map[string]bool, len(comp.Objects))
		for _, o := range comp.Objects {
			objectSet[o] = true
		}

		edgesWritten := make(map[string]bool)
		for _, edge := range g.Edges {
			if !objectSet[edge.Object] {
				continue
			}
			key := fmt.Sprintf("%s-->%s:%s", edge.Object, edge.Target, edge.Field)
			if edgesWritten[key] {
				continue
			}
			edgesWritten[key] = true
			fmt.Fprintf(w, "        %s -->|%s| %s\n", edge.Object, edge.Field, edge.Target)
		}

		// Self-reference edges
		for _, o := range comp.Objects {
			for _, edge := range g.SelfRefs[o] {
				fmt.Fprintf(w, "        %s -->|%s| %s\n", o, edge.Field, o)
			}
		}

		// Standalone nodes
		for _, o := range comp.Objects {
			if !hasEdge(g, o) {
				fmt.Fprintf(w, "        %s\n", o)
			}
		}

		fmt.Fprintln(w, "    end")
		if i < len(components)-1 {
			fmt.Fprintln(w)
		}
	}

	return nil
}

// WriteText writes a text summary of the reference graph to w.
func WriteText(w io.Writer, g *Graph) error {
	components := sortedComponents(g)

	fmt.Fprintf(w, "Objects: %d\n", len(g.Objects))
	fmt.Fprintf(w, "Reference Fields: %d\n", len(g.Edges)+countSelfRefs(g))
	fmt.Fprintf(w, "Connected Components: %d\n\n", len(components))

	topoResult := TopoSortAll(g)
	if topoResult.HasCycle {
		sort.Strings(topoResult.CycleObjects)
		fmt.Fprintf(w, "WARNING: Reference cycles detected: %v\n", topoResult.CycleObjects)
		fmt.Fprintf(w, "Resolution is single-level, so cycles cannot recurse.\n\n")
	}

	if len(g.SelfRefs) > 0 {
		var selfRefObjects []string
		for o := range g.SelfRefs {
			selfRefObjects = append(selfRefObjects, o)
		}
		sort.Strings(selfRefObjects)
		fmt.Fprintf(w, "Self-referencing objects: %v\n\n", selfRefObjects)
	}

	for i, comp := range components {
		fmt.Fprintf(w, "Component %d (%d objects):\n", i+1, len(comp.Objects))
		for _, o := range comp.Objects {
			fmt.Fprintf(w, "  %s\n", o)
			for _, edge := range g.Edges {
				if edge.Object == o {
					fmt.Fprintf(w, "    %s -> %s\n", edge.Field, edge.Target)
				}
			}
			for _, edge := range g.SelfRefs[o] {
				fmt.Fprintf(w, "    %s -> %s (self)\n", edge.Field, o)
			}
		}
		if i < len(components)-1 {
			fmt.Fprintln(w)
		}
	}

	return nil
}

// sortedComponents returns components with deterministic ordering.
func sortedComponents(g *Graph) []Component {
	components := FindComponents(g)
	for i := range components {
		sort.Strings(components[i].Objects)
	}
	sort.Slice(components, func(i, j int) bool {
		if len(components[i].Objects) == 0 {
			return true
		}
		if len(components[j].Objects) == 0 {
			return false
		}
		return components[i].Objects[0] < components[j].Objects[0]
	})
	return components
}

func hasEdge(g *Graph, object string) bool {
	if len(g.SelfRefs[object]) > 0 {
		return true
	}
	return len(g.Sources[object]) > 0 || len(g.Targets[object]) > 0
}

func countSelfRefs(g *Graph) int {
	n := 0
	for _, edges := range g.SelfRefs {
		n += len(edges)
	}
	return n
}
