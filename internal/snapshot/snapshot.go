// Package snapshot converts the engine's structures to and from their
// canonical document form and persists them through a Store.
//
// The snapshot is four independent documents (products, inventory,
// recommendations, supply_chain). The search trie is never persisted:
// it is a derived index, rebuilt on load by replaying every catalog
// name. Loading is lossless for everything persisted and never fails
// on absent documents or malformed fields — defaults are substituted
// locally and unknown fields are ignored, so older binaries can read
// newer documents.
package snapshot

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-git/go-billy/v5/memfs"

	"github.com/openmerch/shelfdex/internal/engine"
	"github.com/openmerch/shelfdex/internal/searchtrie"
)

// Save writes the four canonical documents to the store. There is no
// cross-document atomicity: a failure mid-save can leave the store
// holding documents from two generations.
func Save(store Store, eng *engine.Engine) error {
	docs := map[string][]byte{
		DocProducts:        encodeProducts(eng.Catalog),
		DocInventory:       encodeInventory(eng.Inventory),
		DocRecommendations: encodeRecommendations(eng.Recommendations),
		DocSupplyChain:     encodeSupplyChain(eng.Supply),
	}
	for _, name := range DocNames {
		if err := store.WriteDoc(name, docs[name]); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
	}
	return nil
}

// Load reads the four documents and reconstructs a full engine,
// substituting an empty default for any absent document and rebuilding
// the search trie from the catalog. Iteration order of the rebuild
// does not affect query results — terminal ID sets are unordered.
func Load(store Store) (*engine.Engine, error) {
	read := func(name string) ([]byte, error) {
		data, err := store.ReadDoc(name)
		if errors.Is(err, ErrDocNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
		return data, nil
	}

	raw := make(map[string][]byte, len(DocNames))
	for _, name := range DocNames {
		data, err := read(name)
		if err != nil {
			return nil, err
		}
		raw[name] = data
	}

	eng := &engine.Engine{
		Catalog:         decodeProducts(raw[DocProducts]),
		Inventory:       decodeInventory(raw[DocInventory]),
		Search:          searchtrie.New(),
		Recommendations: decodeRecommendations(raw[DocRecommendations]),
		Supply:          decodeSupplyChain(raw[DocSupplyChain]),
	}
	for _, p := range eng.Catalog.Products() {
		eng.Search.Insert(p.Name, p.ID)
	}
	return eng, nil
}

// Verify checks that the store's snapshot survives a round-trip: it
// loads the snapshot, saves it to a scratch in-memory store, reloads,
// and compares the canonical encodings document by document.
func Verify(store Store) error {
	eng, err := Load(store)
	if err != nil {
		return err
	}
	scratch := NewFileStore(memfs.New())
	if err := Save(scratch, eng); err != nil {
		return err
	}
	reloaded, err := Load(scratch)
	if err != nil {
		return err
	}

	encoded := func(e *engine.Engine) map[string][]byte {
		return map[string][]byte{
			DocProducts:        encodeProducts(e.Catalog),
			DocInventory:       encodeInventory(e.Inventory),
			DocRecommendations: encodeRecommendations(e.Recommendations),
			DocSupplyChain:     encodeSupplyChain(e.Supply),
		}
	}
	before, after := encoded(eng), encoded(reloaded)
	for _, name := range DocNames {
		if !bytes.Equal(before[name], after[name]) {
			return fmt.Errorf("%s document not stable across round-trip", name)
		}
	}
	return nil
}
