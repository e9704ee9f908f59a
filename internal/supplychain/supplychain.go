package supplychain

import (
	"sort"

	"github.com/openmerch/shelfdex/api"
)

// Chain is a bipartite supplier–product graph: two adjacency maps kept
// mutually consistent on every link, plus a supplier registry separate
// from adjacency. Linking an ID that has no registry or catalog entry
// yet is permitted — registration may arrive later.
type Chain struct {
	suppliers        map[string]api.Supplier
	productSuppliers map[string]map[string]struct{}
	supplierProducts map[string]map[string]struct{}
}

func New() *Chain {
	return &Chain{
		suppliers:        make(map[string]api.Supplier),
		productSuppliers: make(map[string]map[string]struct{}),
		supplierProducts: make(map[string]map[string]struct{}),
	}
}

// AddSupplier upserts the registry entry and ensures an adjacency
// bucket exists for the supplier even with zero links.
func (c *Chain) AddSupplier(s api.Supplier) {
	c.suppliers[s.ID] = s
	if _, ok := c.supplierProducts[s.ID]; !ok {
		c.supplierProducts[s.ID] = make(map[string]struct{})
	}
}

// Link idempotently adds both adjacency directions between supplierID
// and productID.
func (c *Chain) Link(supplierID, productID string) {
	ps, ok := c.productSuppliers[productID]
	if !ok {
		ps = make(map[string]struct{})
		c.productSuppliers[productID] = ps
	}
	ps[supplierID] = struct{}{}

	sp, ok := c.supplierProducts[supplierID]
	if !ok {
		sp = make(map[string]struct{})
		c.supplierProducts[supplierID] = sp
	}
	sp[productID] = struct{}{}
}

// SuppliersFor returns the registered Supplier records linked to the
// product, sorted by supplier ID. Linked IDs missing from the registry
// are silently dropped.
func (c *Chain) SuppliersFor(productID string) []api.Supplier {
	ids := c.productSuppliers[productID]
	out := make([]api.Supplier, 0, len(ids))
	for sid := range ids {
		if s, ok := c.suppliers[sid]; ok {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ProductsFor returns the product IDs linked to the supplier, sorted
// lexicographically. No catalog filtering is applied.
func (c *Chain) ProductsFor(supplierID string) []string {
	ids := c.supplierProducts[supplierID]
	out := make([]string, 0, len(ids))
	for pid := range ids {
		out = append(out, pid)
	}
	sort.Strings(out)
	return out
}

// Suppliers returns every registered supplier sorted by ID.
func (c *Chain) Suppliers() []api.Supplier {
	out := make([]api.Supplier, 0, len(c.suppliers))
	for _, s := range c.suppliers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Export returns the chain in snapshot document form: the supplier
// registry plus both adjacency maps with sorted ID lists.
func (c *Chain) Export() (suppliers map[string]api.Supplier, productToSuppliers, supplierToProducts map[string][]string) {
	suppliers = make(map[string]api.Supplier, len(c.suppliers))
	for id, s := range c.suppliers {
		suppliers[id] = s
	}
	productToSuppliers = exportAdjacency(c.productSuppliers)
	supplierToProducts = exportAdjacency(c.supplierProducts)
	return suppliers, productToSuppliers, supplierToProducts
}

func exportAdjacency(adj map[string]map[string]struct{}) map[string][]string {
	out := make(map[string][]string, len(adj))
	for id, set := range adj {
		ids := make([]string, 0, len(set))
		for other := range set {
			ids = append(ids, other)
		}
		sort.Strings(ids)
		out[id] = ids
	}
	return out
}

// Restore builds a chain from snapshot documents. Both adjacency maps
// are taken as-is (each side is authoritative for its own view), so a
// round-trip reproduces the saved links exactly.
func Restore(suppliers map[string]api.Supplier, productToSuppliers, supplierToProducts map[string][]string) *Chain {
	c := New()
	for id, s := range suppliers {
		if s.ID == "" {
			s.ID = id
		}
		c.AddSupplier(s)
	}
	for pid, sids := range productToSuppliers {
		set := make(map[string]struct{}, len(sids))
		for _, sid := range sids {
			set[sid] = struct{}{}
		}
		c.productSuppliers[pid] = set
	}
	for sid, pids := range supplierToProducts {
		set, ok := c.supplierProducts[sid]
		if !ok {
			set = make(map[string]struct{}, len(pids))
			c.supplierProducts[sid] = set
		}
		for _, pid := range pids {
			set[pid] = struct{}{}
		}
	}
	return c
}
