package snapshot

import (
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/alt"
	"github.com/ohler55/ojg/oj"

	"github.com/openmerch/shelfdex/api"
	"github.com/openmerch/shelfdex/internal/catalog"
	"github.com/openmerch/shelfdex/internal/inventory"
	"github.com/openmerch/shelfdex/internal/recgraph"
	"github.com/openmerch/shelfdex/internal/supplychain"
)

// Sorted keys keep document bytes canonical: the same state always
// encodes to the same bytes, which is what Verify compares.
var writeOptions = ojg.Options{Sort: true, Indent: 2}

// parseDoc parses a document into a raw map. Decoders never fail:
// empty, unparseable, or wrongly shaped input yields nil, which every
// decoder treats as the empty default.
func parseDoc(data []byte) map[string]any {
	if len(data) == 0 {
		return nil
	}
	v, err := oj.Parse(data)
	if err != nil {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// stringList coerces a raw array into its non-empty string elements.
func stringList(v any) []string {
	list, _ := v.([]any)
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s := alt.String(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func encodeProducts(c *catalog.Catalog) []byte {
	doc := make(map[string]any, c.Len())
	for _, p := range c.Products() {
		doc[p.ID] = p.Doc()
	}
	return []byte(oj.JSON(doc, &writeOptions))
}

func decodeProducts(data []byte) *catalog.Catalog {
	c := catalog.New()
	for id, raw := range parseDoc(data) {
		p := api.ProductFromDoc(asMap(raw))
		if p.ID == "" {
			// Tolerate records missing their embedded ID — the map key
			// is authoritative anyway.
			p.ID = id
		}
		c.Add(p)
	}
	return c
}

func encodeInventory(inv *inventory.Inventory) []byte {
	levels := inv.Levels()
	doc := make(map[string]any, len(levels))
	for id, qty := range levels {
		doc[id] = qty
	}
	return []byte(oj.JSON(doc, &writeOptions))
}

func decodeInventory(data []byte) *inventory.Inventory {
	raw := parseDoc(data)
	levels := make(map[string]int, len(raw))
	for id, qty := range raw {
		levels[id] = int(alt.Int(qty))
	}
	return inventory.Restore(levels)
}

func encodeRecommendations(g *recgraph.Graph) []byte {
	adj := g.Export()
	doc := make(map[string]any, len(adj))
	for a, neighbors := range adj {
		n := make(map[string]any, len(neighbors))
		for b, w := range neighbors {
			n[b] = w
		}
		doc[a] = n
	}
	return []byte(oj.JSON(doc, &writeOptions))
}

func decodeRecommendations(data []byte) *recgraph.Graph {
	raw := parseDoc(data)
	adj := make(map[string]map[string]int, len(raw))
	for a, rawNeighbors := range raw {
		neighbors := asMap(rawNeighbors)
		n := make(map[string]int, len(neighbors))
		for b, w := range neighbors {
			n[b] = int(alt.Int(w))
		}
		adj[a] = n
	}
	return recgraph.Restore(adj)
}

func encodeSupplyChain(c *supplychain.Chain) []byte {
	suppliers, productToSuppliers, supplierToProducts := c.Export()
	supplierDocs := make(map[string]any, len(suppliers))
	for id, s := range suppliers {
		supplierDocs[id] = s.Doc()
	}
	doc := map[string]any{
		"suppliers":            supplierDocs,
		"product_to_suppliers": productToSuppliers,
		"supplier_to_products": supplierToProducts,
	}
	return []byte(oj.JSON(doc, &writeOptions))
}

func decodeSupplyChain(data []byte) *supplychain.Chain {
	raw := parseDoc(data)

	rawSuppliers := asMap(raw["suppliers"])
	suppliers := make(map[string]api.Supplier, len(rawSuppliers))
	for id, fields := range rawSuppliers {
		suppliers[id] = api.SupplierFromDoc(asMap(fields))
	}

	decodeAdjacency := func(v any) map[string][]string {
		m := asMap(v)
		out := make(map[string][]string, len(m))
		for id, ids := range m {
			out[id] = stringList(ids)
		}
		return out
	}

	return supplychain.Restore(
		suppliers,
		decodeAdjacency(raw["product_to_suppliers"]),
		decodeAdjacency(raw["supplier_to_products"]),
	)
}
