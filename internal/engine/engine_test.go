package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmerch/shelfdex/api"
	"github.com/openmerch/shelfdex/internal/inventory"
)

func TestEngine_CreateProduct(t *testing.T) {
	eng := New()
	require.NoError(t, eng.CreateProduct(api.Product{ID: "p1", Name: "Widget"}, 4))

	_, ok := eng.Catalog.Get("p1")
	assert.True(t, ok)
	assert.Equal(t, 4, eng.Inventory.Stock("p1"))
	assert.Equal(t, []string{"p1"}, eng.Search.SearchByPrefix("wid"))
}

func TestEngine_CreateProductRejectsNegativeStock(t *testing.T) {
	eng := New()
	err := eng.CreateProduct(api.Product{ID: "p1", Name: "Widget"}, -1)
	require.ErrorIs(t, err, inventory.ErrNegativeQuantity)

	// Validation happens before any structure is touched.
	_, ok := eng.Catalog.Get("p1")
	assert.False(t, ok)
	assert.Empty(t, eng.Search.SearchByPrefix("wid"))
}

func TestEngine_RecreateUnderNewNameDeindexesOldName(t *testing.T) {
	eng := New()
	require.NoError(t, eng.CreateProduct(api.Product{ID: "p1", Name: "Widget"}, 3))
	require.NoError(t, eng.CreateProduct(api.Product{ID: "p1", Name: "Gadget"}, 2))

	assert.Empty(t, eng.Search.SearchByPrefix("wid"), "overwritten name should be de-indexed")
	assert.Equal(t, []string{"p1"}, eng.Search.SearchByPrefix("gad"))

	p, _ := eng.Catalog.Get("p1")
	assert.Equal(t, "Gadget", p.Name)
	// Stock accumulates across the re-create, as with any AddStock.
	assert.Equal(t, 5, eng.Inventory.Stock("p1"))
}

func TestEngine_UpdateProductReindexesOnRename(t *testing.T) {
	eng := New()
	require.NoError(t, eng.CreateProduct(api.Product{ID: "p1", Name: "Widget"}, 0))

	name := "Gadget"
	assert.True(t, eng.UpdateProduct("p1", api.ProductPatch{Name: &name}))

	assert.Empty(t, eng.Search.SearchByPrefix("wid"), "old name should be de-indexed")
	assert.Equal(t, []string{"p1"}, eng.Search.SearchByPrefix("gad"))

	p, _ := eng.Catalog.Get("p1")
	assert.Equal(t, "Gadget", p.Name)
}

func TestEngine_UpdateProductAbsent(t *testing.T) {
	eng := New()
	name := "x"
	assert.False(t, eng.UpdateProduct("nope", api.ProductPatch{Name: &name}))
}

func TestEngine_DeleteProduct(t *testing.T) {
	eng := New()
	require.NoError(t, eng.CreateProduct(api.Product{ID: "p1", Name: "Widget"}, 2))

	assert.True(t, eng.DeleteProduct("p1"))
	assert.False(t, eng.DeleteProduct("p1"))

	_, ok := eng.Catalog.Get("p1")
	assert.False(t, ok)
	assert.Empty(t, eng.Search.SearchByPrefix("wid"))
	// Inventory is an independent structure; its entry survives.
	assert.Equal(t, 2, eng.Inventory.Stock("p1"))
}
