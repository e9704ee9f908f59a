package snapshot

import "errors"

// Canonical document names. Any change to the document shapes behind
// these names is a breaking format change that callers must version
// explicitly.
const (
	DocProducts        = "products"
	DocInventory       = "inventory"
	DocRecommendations = "recommendations"
	DocSupplyChain     = "supply_chain"
)

// DocNames lists every canonical document.
var DocNames = []string{DocProducts, DocInventory, DocRecommendations, DocSupplyChain}

// ErrDocNotFound is returned by Store.ReadDoc for an absent document.
// Load treats it as "no data yet" and substitutes an empty default.
var ErrDocNotFound = errors.New("snapshot document not found")

// Store persists named snapshot documents. Implementations do not
// interpret document contents.
type Store interface {
	ReadDoc(name string) ([]byte, error)
	WriteDoc(name string, data []byte) error
	Close() error
}
