package catalog

import (
	"sort"

	"github.com/openmerch/shelfdex/api"
)

// Catalog is a hash-indexed product store keyed by product ID.
// Lookups, inserts, and removals are O(1) expected. The catalog does no
// internal locking; callers serialize mutation (single-writer design).
type Catalog struct {
	products map[string]api.Product
}

func New() *Catalog {
	return &Catalog{products: make(map[string]api.Product)}
}

// Add upserts a product by ID. Re-adding an ID overwrites the prior
// record.
func (c *Catalog) Add(p api.Product) {
	c.products[p.ID] = p
}

// Get returns the product for id, or ok=false if absent.
func (c *Catalog) Get(id string) (api.Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// Update applies the patch's non-nil fields to an existing product.
// It returns the record as it was before the patch so callers can
// react to field changes (the engine re-indexes the search trie when
// the name changes). ok is false when id is absent.
func (c *Catalog) Update(id string, patch api.ProductPatch) (prev api.Product, ok bool) {
	p, ok := c.products[id]
	if !ok {
		return api.Product{}, false
	}
	prev = p
	p.Apply(patch)
	c.products[id] = p
	return prev, true
}

// Remove deletes the product. It reports whether an entry existed.
func (c *Catalog) Remove(id string) bool {
	if _, ok := c.products[id]; !ok {
		return false
	}
	delete(c.products, id)
	return true
}

// Products returns every product sorted by ID.
func (c *Catalog) Products() []api.Product {
	out := make([]api.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}
