package inventory

import "errors"

// ErrNegativeQuantity is returned by stock mutations given a negative
// quantity. It is the only hard failure in the inventory; everything
// else is signaled through return values.
var ErrNegativeQuantity = errors.New("quantity must be non-negative")

// Inventory maps product ID to a non-negative stock quantity. Absence
// implies zero. The quantity invariant is enforced by rejecting
// over-withdrawal, never by clamping.
type Inventory struct {
	stock map[string]int
}

func New() *Inventory {
	return &Inventory{stock: make(map[string]int)}
}

// Stock returns the current quantity for id, 0 if unknown.
func (inv *Inventory) Stock(id string) int {
	return inv.stock[id]
}

// AddStock creates or increments the entry for id.
func (inv *Inventory) AddStock(id string, qty int) error {
	if qty < 0 {
		return ErrNegativeQuantity
	}
	inv.stock[id] = inv.stock[id] + qty
	return nil
}

// RemoveStock decrements the entry for id. It returns false and leaves
// the state unchanged when qty exceeds the current stock.
func (inv *Inventory) RemoveStock(id string, qty int) (bool, error) {
	if qty < 0 {
		return false, ErrNegativeQuantity
	}
	current := inv.stock[id]
	if qty > current {
		return false, nil
	}
	inv.stock[id] = current - qty
	return true, nil
}

// Levels returns a copy of every stock entry.
func (inv *Inventory) Levels() map[string]int {
	out := make(map[string]int, len(inv.stock))
	for id, qty := range inv.stock {
		out[id] = qty
	}
	return out
}

// Restore builds an inventory from snapshot levels. Negative values
// from a malformed document are recovered as zero to preserve the
// non-negative invariant.
func Restore(levels map[string]int) *Inventory {
	inv := New()
	for id, qty := range levels {
		if qty < 0 {
			qty = 0
		}
		inv.stock[id] = qty
	}
	return inv
}
