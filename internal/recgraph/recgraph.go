package recgraph

import "sort"

// Graph is an undirected weighted co-purchase graph over product IDs,
// stored as an adjacency map of maps: adj[a][b] is the number of
// distinct orders containing both a and b. Both mirrored directions of
// an edge are always written together, so adj[a][b] == adj[b][a] holds
// at every point.
type Graph struct {
	adj map[string]map[string]int
}

func New() *Graph {
	return &Graph{adj: make(map[string]map[string]int)}
}

func (g *Graph) ensure(id string) map[string]int {
	n, ok := g.adj[id]
	if !ok {
		n = make(map[string]int)
		g.adj[id] = n
	}
	return n
}

// RecordPurchase records one order. Repeats of an ID within the order
// are collapsed (first occurrence kept), so every unordered pair
// contributes exactly 1 per order. Empty IDs are skipped. Fewer than
// two distinct IDs is a no-op.
func (g *Graph) RecordPurchase(ids []string) {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) < 2 {
		return
	}
	for i := 0; i < len(unique); i++ {
		for j := i + 1; j < len(unique); j++ {
			a, b := unique[i], unique[j]
			g.ensure(a)[b]++
			g.ensure(b)[a]++
		}
	}
}

// Recommend returns up to n neighbor IDs of id ordered by edge weight
// descending, then ID ascending as a deterministic tiebreak. An unknown
// id or n <= 0 yields an empty result.
func (g *Graph) Recommend(id string, n int) []string {
	if n <= 0 {
		return nil
	}
	neighbors, ok := g.adj[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(neighbors))
	for b := range neighbors {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		wi, wj := neighbors[out[i]], neighbors[out[j]]
		if wi != wj {
			return wi > wj
		}
		return out[i] < out[j]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Weight returns the co-purchase count between a and b, 0 if no edge.
func (g *Graph) Weight(a, b string) int {
	return g.adj[a][b]
}

// Export returns a deep copy of the adjacency map in snapshot document
// form.
func (g *Graph) Export() map[string]map[string]int {
	out := make(map[string]map[string]int, len(g.adj))
	for a, neighbors := range g.adj {
		cp := make(map[string]int, len(neighbors))
		for b, w := range neighbors {
			cp[b] = w
		}
		out[a] = cp
	}
	return out
}

// Restore builds a graph from a snapshot adjacency map. Weights are
// re-mirrored so a document with one-sided edges still satisfies the
// symmetry invariant: the larger direction wins.
func Restore(adj map[string]map[string]int) *Graph {
	g := New()
	for a, neighbors := range adj {
		for b, w := range neighbors {
			if a == b || w <= 0 {
				continue
			}
			if w > g.adj[a][b] {
				g.ensure(a)[b] = w
				g.ensure(b)[a] = w
			}
		}
	}
	return g
}
