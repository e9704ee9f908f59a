package searchtrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrie_InsertAndPrefixSearch(t *testing.T) {
	tr := New()
	tr.Insert("Apple iPhone", "p1")
	tr.Insert("Apple Watch", "p2")
	tr.Insert("Anvil", "p3")

	assert.Equal(t, []string{"p1", "p2"}, tr.SearchByPrefix("apple"))
	assert.Equal(t, []string{"p1", "p2", "p3"}, tr.SearchByPrefix("a"))
	assert.Equal(t, []string{"p1"}, tr.SearchByPrefix("apple i"))
	assert.Empty(t, tr.SearchByPrefix("banana"))
}

func TestTrie_EveryPrefixOfInsertedNameMatches(t *testing.T) {
	tr := New()
	name := "gizmo 9000"
	tr.Insert(name, "p1")

	for i := 1; i <= len(name); i++ {
		assert.Contains(t, tr.SearchByPrefix(name[:i]), "p1", "prefix %q", name[:i])
	}
}

func TestTrie_NormalizationOnInsertAndQuery(t *testing.T) {
	tr := New()
	tr.Insert("  Apple iPhone ", "p1")

	assert.Equal(t, []string{"p1"}, tr.SearchByPrefix("apple"))
	assert.Equal(t, []string{"p1"}, tr.SearchByPrefix(" Apple "))
	assert.Equal(t, []string{"p1"}, tr.SearchByPrefix("APPLE IPHONE"))
}

func TestTrie_SharedExactNameKeepsBothIDs(t *testing.T) {
	tr := New()
	tr.Insert("Apple iPhone", "p1")
	tr.Insert("apple iphone", "p9")

	assert.Equal(t, []string{"p1", "p9"}, tr.SearchByPrefix("apple iphone"))

	tr.Remove("Apple iPhone", "p1")
	assert.Equal(t, []string{"p9"}, tr.SearchByPrefix("apple iphone"))
}

func TestTrie_EmptyPrefixReturnsEverything(t *testing.T) {
	tr := New()
	tr.Insert("alpha", "p2")
	tr.Insert("beta", "p1")

	assert.Equal(t, []string{"p1", "p2"}, tr.SearchByPrefix(""))
}

func TestTrie_RemovePrunesEmptyBranch(t *testing.T) {
	tr := New()
	require.Equal(t, 1, tr.NodeCount(), "fresh trie is just the root")

	tr.Insert("abc", "p1")
	require.Equal(t, 4, tr.NodeCount())

	tr.Remove("abc", "p1")
	assert.Equal(t, 1, tr.NodeCount(), "whole branch should be pruned back to the root")
	assert.Empty(t, tr.SearchByPrefix("a"))
}

func TestTrie_RemoveStopsAtFirstNonPrunableAncestor(t *testing.T) {
	tr := New()
	tr.Insert("car", "p1")
	tr.Insert("carpet", "p2")
	require.Equal(t, 7, tr.NodeCount()) // root + c,a,r + p,e,t

	tr.Remove("carpet", "p2")
	assert.Equal(t, 4, tr.NodeCount(), "p,e,t pruned; c,a,r kept for p1")
	assert.Equal(t, []string{"p1"}, tr.SearchByPrefix("car"))

	tr.Remove("car", "p1")
	assert.Equal(t, 1, tr.NodeCount())
}

func TestTrie_RemoveKeepsNodeWithRemainingIDs(t *testing.T) {
	tr := New()
	tr.Insert("ab", "p1")
	tr.Insert("ab", "p2")
	before := tr.NodeCount()

	tr.Remove("ab", "p1")
	assert.Equal(t, before, tr.NodeCount(), "node still terminates p2")
	assert.Equal(t, []string{"p2"}, tr.SearchByPrefix("ab"))
}

func TestTrie_RemoveUnknownNameOrIDIsNoOp(t *testing.T) {
	tr := New()
	tr.Insert("abc", "p1")
	before := tr.NodeCount()

	tr.Remove("zzz", "p1")
	tr.Remove("abc", "p2")
	assert.Equal(t, before, tr.NodeCount())
	assert.Equal(t, []string{"p1"}, tr.SearchByPrefix("abc"))
}

func TestTrie_PrunedSlotsAreReused(t *testing.T) {
	tr := New()
	tr.Insert("abc", "p1")
	tr.Remove("abc", "p1")
	require.Equal(t, 1, tr.NodeCount())

	tr.Insert("xyz", "p2")
	assert.Equal(t, 4, tr.NodeCount())
	assert.Len(t, tr.nodes, 4, "arena should not grow past the freed slots")
	assert.Equal(t, []string{"p2"}, tr.SearchByPrefix("x"))
}

func TestTrie_UnicodeNames(t *testing.T) {
	tr := New()
	tr.Insert("Café Équipement", "p1")

	assert.Equal(t, []string{"p1"}, tr.SearchByPrefix("café"))
	assert.Empty(t, tr.SearchByPrefix("cafe"))
}
