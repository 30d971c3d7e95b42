package arrange

import (
	"fmt"

	"github.com/go-lar/larcx/matrix"
)

// BiconnectedComponents decomposes the 1-skeleton described by copEV into
// its biconnected components, each returned as the list of edge indices it
// contains. It is the classic DFS low-link/edge-stack algorithm
// (Hopcroft-Tarjan), generalized here from vertex/edge traversal over a
// core.Graph adjacency list to traversal directly over a ChainOp's rows.
func BiconnectedComponents(ev *matrix.ChainOp) ([][]int, error) {
	adj := make(map[int][][2]int) // vertex -> (neighbor, edge) pairs
	nv := ev.Cols()
	for e := 0; e < ev.Rows(); e++ {
		cols, _, err := ev.RowNonzeros(e)
		if err != nil {
			return nil, fmt.Errorf("arrange.BiconnectedComponents: %w", err)
		}
		if len(cols) != 2 {
			return nil, fmt.Errorf("arrange.BiconnectedComponents: edge %d: %w", e, ErrMalformedEdge)
		}
		a, b := cols[0], cols[1]
		adj[a] = append(adj[a], [2]int{b, e})
		adj[b] = append(adj[b], [2]int{a, e})
	}

	disc := make([]int, nv)
	low := make([]int, nv)
	visited := make([]bool, nv)
	timer := 0
	var edgeStack []int
	var components [][]int

	var dfs func(u, parentEdge int)
	dfs = func(u, parentEdge int) {
		visited[u] = true
		timer++
		disc[u] = timer
		low[u] = timer

		for _, nb := range adj[u] {
			v, e := nb[0], nb[1]
			if e == parentEdge {
				continue
			}
			if !visited[v] {
				edgeStack = append(edgeStack, e)
				dfs(v, e)
				if low[v] < low[u] {
					low[u] = low[v]
				}
				if low[v] >= disc[u] {
					comp := popComponent(&edgeStack, e)
					components = append(components, comp)
				}
			} else if disc[v] < disc[u] {
				edgeStack = append(edgeStack, e)
				if disc[v] < low[u] {
					low[u] = disc[v]
				}
			}
		}
	}

	for v := 0; v < nv; v++ {
		if !visited[v] && len(adj[v]) > 0 {
			dfs(v, -1)
			if len(edgeStack) > 0 {
				components = append(components, append([]int(nil), edgeStack...))
				edgeStack = edgeStack[:0]
			}
		}
	}
	return components, nil
}

// ConnectedComponentCount counts weakly-connected components of the
// 1-skeleton described by copEV, used by Driver.Arrange as a before/after
// sanity check around the vertex-merge step.
func ConnectedComponentCount(ev *matrix.ChainOp) (int, error) {
	parent := make([]int, ev.Cols())
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	touched := make([]bool, ev.Cols())
	for e := 0; e < ev.Rows(); e++ {
		cols, _, err := ev.RowNonzeros(e)
		if err != nil {
			return 0, fmt.Errorf("arrange.ConnectedComponentCount: %w", err)
		}
		if len(cols) != 2 {
			return 0, fmt.Errorf("arrange.ConnectedComponentCount: edge %d: %w", e, ErrMalformedEdge)
		}
		touched[cols[0]] = true
		touched[cols[1]] = true
		union(cols[0], cols[1])
	}

	roots := make(map[int]bool)
	for v, ok := range touched {
		if ok {
			roots[find(v)] = true
		}
	}
	return len(roots), nil
}

// popComponent pops edges off the stack down to and including target,
// returning them as a fresh, owned slice.
func popComponent(stack *[]int, target int) []int {
	s := *stack
	i := len(s) - 1
	for i >= 0 && s[i] != target {
		i--
	}
	comp := append([]int(nil), s[i:]...)
	*stack = s[:i]
	return comp
}
