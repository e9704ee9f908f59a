package supplychain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openmerch/shelfdex/api"
)

func TestChain_LinkIsIdempotent(t *testing.T) {
	c := New()
	c.AddSupplier(api.Supplier{ID: "s1", Name: "Acme"})
	c.Link("s1", "p1")
	c.Link("s1", "p1")

	suppliers := c.SuppliersFor("p1")
	assert.Len(t, suppliers, 1)
	assert.Equal(t, "s1", suppliers[0].ID)
	assert.Equal(t, []string{"p1"}, c.ProductsFor("s1"))
}

func TestChain_LinkBeforeRegistrationIsPermitted(t *testing.T) {
	c := New()
	c.Link("s1", "p1")

	// Unregistered supplier IDs are dropped from the supplier view...
	assert.Empty(t, c.SuppliersFor("p1"))
	// ...but the product view keeps the edge.
	assert.Equal(t, []string{"p1"}, c.ProductsFor("s1"))

	c.AddSupplier(api.Supplier{ID: "s1", Name: "Acme"})
	suppliers := c.SuppliersFor("p1")
	assert.Len(t, suppliers, 1)
	assert.Equal(t, "Acme", suppliers[0].Name)
}

func TestChain_AddSupplierUpsertsAndKeepsLinks(t *testing.T) {
	c := New()
	c.AddSupplier(api.Supplier{ID: "s1", Name: "Acme"})
	c.Link("s1", "p1")
	c.AddSupplier(api.Supplier{ID: "s1", Name: "Acme Corp", Contact: "a@acme.test"})

	suppliers := c.SuppliersFor("p1")
	assert.Len(t, suppliers, 1)
	assert.Equal(t, "Acme Corp", suppliers[0].Name)
	assert.Equal(t, []string{"p1"}, c.ProductsFor("s1"))
}

func TestChain_ResultsSortedByID(t *testing.T) {
	c := New()
	for _, sid := range []string{"s3", "s1", "s2"} {
		c.AddSupplier(api.Supplier{ID: sid})
		c.Link(sid, "p1")
	}
	c.Link("s1", "p3")
	c.Link("s1", "p2")

	suppliers := c.SuppliersFor("p1")
	ids := make([]string, len(suppliers))
	for i, s := range suppliers {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"s1", "s2", "s3"}, ids)
	assert.Equal(t, []string{"p1", "p2", "p3"}, c.ProductsFor("s1"))

	all := c.Suppliers()
	assert.Len(t, all, 3)
	assert.Equal(t, "s1", all[0].ID)
	assert.Equal(t, "s3", all[2].ID)
}

func TestChain_ProductsForNotFilteredAgainstCatalog(t *testing.T) {
	c := New()
	c.AddSupplier(api.Supplier{ID: "s1"})
	c.Link("s1", "ghost-product")

	assert.Equal(t, []string{"ghost-product"}, c.ProductsFor("s1"))
}

func TestChain_ExportRestoreRoundTrip(t *testing.T) {
	c := New()
	c.AddSupplier(api.Supplier{ID: "s1", Name: "Acme", Contact: "a@acme.test"})
	c.AddSupplier(api.Supplier{ID: "s2", Name: "Globex"})
	c.Link("s1", "p1")
	c.Link("s1", "p2")
	c.Link("s2", "p1")
	c.Link("s9", "p1") // dangling, still persisted

	suppliers, p2s, s2p := c.Export()
	restored := Restore(suppliers, p2s, s2p)

	rs, rp2s, rs2p := restored.Export()
	assert.Equal(t, suppliers, rs)
	assert.Equal(t, p2s, rp2s)
	assert.Equal(t, s2p, rs2p)
}
