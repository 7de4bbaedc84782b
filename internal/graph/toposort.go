package graph

import "fmt"

// TopoResult holds the result of topological sorting.
type TopoResult struct {
	// Order is the topological order (referenced objects before the
	// objects that reference them).
	Order []string
	// HasCycle is true if the graph contains a reference cycle.
	HasCycle bool
	// CycleObjects lists objects involved in cycles (if any).
	CycleObjects []string
}

// TopoSort performs Kahn's algorithm on the given subset of objects.
// Self-references are ignored; they cycle trivially.
func TopoSort(g *Graph, objects []string) TopoResult {
	objectSet := make(map[string]bool, len(objects))
	for _, o := range objects {
		objectSet[o] = true
	}

	// In-degree = number of referenced objects within the subset
	inDegree := make(map[string]int, len(objects))
	for _, o := range objects {
		inDegree[o] = 0
	}

	localSources := make(map[string][]string)
	for _, o := range objects {
		for _, t := range g.Targets[o] {
			if objectSet[t] {
				localSources[t] = append(localSources[t], o)
				inDegree[o]++
			}
		}
	}

	var queue []string
	for _, o := range objects {
		if inDegree[o] == 0 {
			queue = append(queue, o)
		}
	}

	var order []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		for _, src := range localSources[node] {
			inDegree[src]--
			if inDegree[src] == 0 {
				queue = append(queue, src)
			}
		}
	}

	result := TopoResult{Order: order}

	if len(order) < len(objects) {
		result.HasCycle = true
		for _, o := range objects {
			if inDegree[o] > 0 {
				result.CycleObjects = append(result.CycleObjects, o)
			}
		}
	}

	return result
}

// TopoSortAll performs topological sort across all objects in the graph.
func TopoSortAll(g *Graph) TopoResult {
	return TopoSort(g, g.Objects)
}

// ValidateCycles checks for cycles and returns a descriptive error if found.
func ValidateCycles(result TopoResult) error {
	if !result.HasCycle {
		return nil
	}
	return fmt.Errorf("reference cycle detected among objects: %v", result.CycleObjects)
}
