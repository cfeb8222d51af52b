package partition

import (
	"github.com/uhaseeb85/stategraph/pkg/domain"
)

// ConnectedComponents groups the graph's states into connected
// components via breadth-first traversal, treating every rule as an
// undirected link. Components are emitted in order of their first state
// and each component lists state ids in discovery order.
func ConnectedComponents(g *domain.Graph) [][]string {
	n := g.Len()
	visited := make([]bool, n)
	var components [][]string

	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}

		var component []string
		queue := []int{i}
		visited[i] = true

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			component = append(component, g.At(cur).ID)

			for _, next := range g.Neighbors(cur) {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		components = append(components, component)
	}

	return components
}
