package searchtrie

import (
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring"
)

// Trie is a prefix tree over normalized product names. Nodes live in an
// arena slice addressed by index (root at index 0) rather than as
// owning pointers; pruning just returns a slot to the free list.
//
// Terminal ID sets are roaring bitmaps over interned product IDs: each
// distinct product ID is assigned a uint32 once (idToInt/intToID), and
// every terminal node stores a bitmap of those. Several products may
// share one exact normalized name, so the terminal set is a set, not a
// single ID.
//
// No internal locking — the hosting layer serializes writers.
type Trie struct {
	nodes []node
	free  []int32

	idToInt   map[string]uint32
	intToID   []string
	nextIntID uint32
}

// node is one arena slot. A live node always has a non-nil children
// map; ids stays nil until the first product terminates here.
type node struct {
	children map[rune]int32
	ids      *roaring.Bitmap
}

func New() *Trie {
	return &Trie{
		nodes:   []node{{children: make(map[rune]int32)}},
		idToInt: make(map[string]uint32),
	}
}

// normalize trims surrounding whitespace and lowercases. Applied on
// insertion and query alike so case/whitespace variants match. Spaces
// and punctuation inside the name are ordinary characters.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (t *Trie) intern(id string) uint32 {
	if n, ok := t.idToInt[id]; ok {
		return n
	}
	n := t.nextIntID
	t.nextIntID++
	t.idToInt[id] = n
	t.intToID = append(t.intToID, id)
	return n
}

// alloc returns the index of a fresh node, reusing a pruned slot when
// one is available.
func (t *Trie) alloc() int32 {
	if n := len(t.free); n > 0 {
		idx := t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[idx] = node{children: make(map[rune]int32)}
		return idx
	}
	t.nodes = append(t.nodes, node{children: make(map[rune]int32)})
	return int32(len(t.nodes) - 1)
}

func (t *Trie) release(idx int32) {
	t.nodes[idx] = node{}
	t.free = append(t.free, idx)
}

// Insert walks/creates one node per character of the normalized name
// and attaches id to the terminal node's set. O(len(name)).
func (t *Trie) Insert(name, id string) {
	cur := int32(0)
	for _, ch := range normalize(name) {
		next, ok := t.nodes[cur].children[ch]
		if !ok {
			next = t.alloc()
			t.nodes[cur].children[ch] = next
		}
		cur = next
	}
	if t.nodes[cur].ids == nil {
		t.nodes[cur].ids = roaring.New()
	}
	t.nodes[cur].ids.Add(t.intern(id))
}

// SearchByPrefix returns the IDs of every product whose normalized name
// starts with the normalized prefix, sorted lexicographically. A prefix
// with no matching branch yields an empty result. The subtree walk is
// exhaustive: O(size of matching subtree).
func (t *Trie) SearchByPrefix(prefix string) []string {
	cur := int32(0)
	for _, ch := range normalize(prefix) {
		next, ok := t.nodes[cur].children[ch]
		if !ok {
			return nil
		}
		cur = next
	}

	acc := roaring.New()
	stack := []int32{cur}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if ids := t.nodes[idx].ids; ids != nil {
			acc.Or(ids)
		}
		for _, child := range t.nodes[idx].children {
			stack = append(stack, child)
		}
	}

	out := make([]string, 0, acc.GetCardinality())
	it := acc.Iterator()
	for it.HasNext() {
		out = append(out, t.intToID[it.Next()])
	}
	sort.Strings(out)
	return out
}

// Remove detaches id from the exact terminal node of name, then prunes
// every ancestor whose ID set and child map are both empty, stopping at
// the first non-prunable one. Removing an unknown name or id is a no-op.
func (t *Trie) Remove(name, id string) {
	intID, ok := t.idToInt[id]
	if !ok {
		return
	}

	type step struct {
		parent int32
		ch     rune
	}
	var path []step
	cur := int32(0)
	for _, ch := range normalize(name) {
		next, ok := t.nodes[cur].children[ch]
		if !ok {
			return
		}
		path = append(path, step{parent: cur, ch: ch})
		cur = next
	}

	if ids := t.nodes[cur].ids; ids != nil {
		ids.Remove(intID)
	}

	// Walk back toward the root. The root itself (empty path) is never
	// pruned.
	for i := len(path) - 1; i >= 0; i-- {
		n := t.nodes[cur]
		if (n.ids != nil && !n.ids.IsEmpty()) || len(n.children) > 0 {
			break
		}
		delete(t.nodes[path[i].parent].children, path[i].ch)
		t.release(cur)
		cur = path[i].parent
	}
}

// NodeCount reports the number of live nodes, root included. Used to
// verify pruning.
func (t *Trie) NodeCount() int {
	return len(t.nodes) - len(t.free)
}
