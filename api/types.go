package api

import "github.com/ohler55/ojg/alt"

// DefaultCategory is substituted when a product document carries no
// usable category.
const DefaultCategory = "uncategorized"

// Product is a catalog entry.
type Product struct {
	// ID uniquely identifies the product across every structure.
	ID string `json:"product_id"`
	// Name is the display name, also the key indexed by the search trie.
	Name string `json:"name"`
	// Description is free text, may be empty.
	Description string `json:"description"`
	// Price in the store currency.
	Price float64 `json:"price"`
	// Category groups products; defaults to DefaultCategory.
	Category string `json:"category"`
}

// Doc returns the canonical snapshot document form of the product.
func (p Product) Doc() map[string]any {
	return map[string]any{
		"product_id":  p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"category":    p.Category,
	}
}

// ProductFromDoc builds a Product from a raw snapshot document.
// Missing or malformed fields are replaced with their defaults rather
// than causing failure; unknown fields are ignored.
func ProductFromDoc(doc map[string]any) Product {
	return Product{
		ID:          alt.String(doc["product_id"]),
		Name:        alt.String(doc["name"]),
		Description: alt.String(doc["description"]),
		Price:       alt.Float(doc["price"]),
		Category:    stringField(doc, "category", DefaultCategory),
	}
}

// stringField coerces doc[key] to a string, falling back to def when
// the key is absent or null. alt.String applies its defaults only to
// non-nil unconvertible values, so the absence case needs handling
// here. A present empty string stays empty.
func stringField(doc map[string]any, key, def string) string {
	v, ok := doc[key]
	if !ok || v == nil {
		return def
	}
	return alt.String(v, def)
}

// ProductPatch is a partial update to a Product. Nil fields are left
// untouched. Enumerating the updatable fields here rejects unknown
// field names at compile time instead of silently ignoring them.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
}

// Apply overwrites the product's fields with the patch's non-nil ones.
func (p *Product) Apply(patch ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
}

// Supplier is a supply-chain registry entry.
type Supplier struct {
	ID      string `json:"supplier_id"`
	Name    string `json:"name"`
	Contact string `json:"contact_info"`
}

// Doc returns the canonical snapshot document form of the supplier.
func (s Supplier) Doc() map[string]any {
	return map[string]any{
		"supplier_id":  s.ID,
		"name":         s.Name,
		"contact_info": s.Contact,
	}
}

// SupplierFromDoc builds a Supplier from a raw snapshot document with
// the same recovery rules as ProductFromDoc.
func SupplierFromDoc(doc map[string]any) Supplier {
	return Supplier{
		ID:      alt.String(doc["supplier_id"]),
		Name:    alt.String(doc["name"]),
		Contact: alt.String(doc["contact_info"]),
	}
}
