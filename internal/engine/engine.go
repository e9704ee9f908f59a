package engine

import (
	"github.com/openmerch/shelfdex/api"
	"github.com/openmerch/shelfdex/internal/catalog"
	"github.com/openmerch/shelfdex/internal/inventory"
	"github.com/openmerch/shelfdex/internal/recgraph"
	"github.com/openmerch/shelfdex/internal/searchtrie"
	"github.com/openmerch/shelfdex/internal/supplychain"
)

// Engine bundles one instance of each structure into an explicit
// application-context value owned by the caller — there is no
// package-level state. A front end creates one from a loaded snapshot
// at startup and saves it at shutdown.
//
// The compound flows below touch several structures in sequence and
// are NOT atomic: a concurrent reader may observe a partially applied
// flow unless the hosting layer serializes access.
type Engine struct {
	Catalog         *catalog.Catalog
	Inventory       *inventory.Inventory
	Search          *searchtrie.Trie
	Recommendations *recgraph.Graph
	Supply          *supplychain.Chain
}

func New() *Engine {
	return &Engine{
		Catalog:         catalog.New(),
		Inventory:       inventory.New(),
		Search:          searchtrie.New(),
		Recommendations: recgraph.New(),
		Supply:          supplychain.New(),
	}
}

// CreateProduct adds a product to the catalog, sets its initial stock,
// and indexes its name in the search trie. The stock quantity is
// validated first so a negative value leaves no partial state behind.
// Re-creating an existing ID overwrites the catalog record; the prior
// name is de-indexed so the trie never serves a stale entry.
func (e *Engine) CreateProduct(p api.Product, initialStock int) error {
	if err := e.Inventory.AddStock(p.ID, initialStock); err != nil {
		return err
	}
	if prev, ok := e.Catalog.Get(p.ID); ok {
		e.Search.Remove(prev.Name, p.ID)
	}
	e.Catalog.Add(p)
	e.Search.Insert(p.Name, p.ID)
	return nil
}

// UpdateProduct patches a catalog entry and keeps the search trie in
// sync when the name changes. It reports whether the product existed.
func (e *Engine) UpdateProduct(id string, patch api.ProductPatch) bool {
	prev, ok := e.Catalog.Update(id, patch)
	if !ok {
		return false
	}
	if patch.Name != nil && *patch.Name != prev.Name {
		e.Search.Remove(prev.Name, id)
		e.Search.Insert(*patch.Name, id)
	}
	return true
}

// DeleteProduct removes a product from the catalog and the search trie.
// Stock, recommendation, and supply-chain entries are independent
// structures and are left untouched. It reports whether the product
// existed.
func (e *Engine) DeleteProduct(id string) bool {
	p, ok := e.Catalog.Get(id)
	if !ok {
		return false
	}
	e.Catalog.Remove(id)
	e.Search.Remove(p.Name, id)
	return true
}
