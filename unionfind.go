// Package unionfind implements the disjoint-set data structure: a growable
// universe of elements, identified by dense non-negative ids, partitioned
// into disjoint sets. Find and Union run in amortized near-constant time
// thanks to the combination of two-pass path compression and union by rank.
package unionfind

import (
	"github.com/pkg/errors"
)

// ErrNoSuchElement is the only failure mode in the package: an id (or key)
// presented to Find, Union or Connected lies outside the current universe.
// The bounds check runs before any mutation, so a failed call never leaves
// the store partially updated.
var ErrNoSuchElement = errors.New("no such element")

// UnionFind - a mutable partition of elements into disjoint sets. Ids are
// assigned densely in creation order, starting at 0, and are never reused.
//
// The structure is meant for single-threaded, sequential use: every
// operation, lookups included, may rewrite internal state. Callers that
// share a store across goroutines must serialize all access to it behind
// one lock.
type UnionFind struct {
	backing []element
	count   int
}

// element is one record per id. parent points toward the set's root and
// equals the element's own id at the root itself. rank upper-bounds the
// height of the tree hanging off a root; once an element stops being a root
// its rank goes stale and is never read again.
type element struct {
	parent int
	rank   int
}

// New creates a store of size elements, ids [0, size), each alone in its
// own singleton set. A size of zero or less yields an empty store.
func New(size int) *UnionFind {
	if size < 0 {
		size = 0
	}

	backing := make([]element, size)
	for i := range backing {
		backing[i].parent = i
	}

	return &UnionFind{
		backing: backing,
		count:   size,
	}
}

// Fresh appends one element as the sole member of a brand new set and
// returns its id, which always equals the pre-call Len. Fresh is the only
// way to grow the universe and it never disturbs existing sets.
func (u *UnionFind) Fresh() int {
	id := len(u.backing)
	u.backing = append(u.backing, element{parent: id})
	u.count++
	return id
}

// Len returns the number of elements ever created in the store.
func (u *UnionFind) Len() int {
	return len(u.backing)
}

// Count returns the number of disjoint sets the universe is currently
// partitioned into.
func (u *UnionFind) Count() int {
	return u.count
}

// Find returns the id of the representative element of the set containing
// id. As a side effect every element walked on the way to the representative
// is re-pointed directly at it, flattening future lookups to a single hop.
func (u *UnionFind) Find(id int) (int, error) {
	if err := u.validate(id); err != nil {
		return 0, err
	}

	return u.find(id), nil
}

// Union merges the sets containing id1 and id2 and returns the id of the
// representative of the merged set. Merging a set with itself is a valid
// no-op that still returns the representative. A failed call leaves the
// store untouched.
func (u *UnionFind) Union(id1, id2 int) (int, error) {
	if err := u.validate(id1); err != nil {
		return 0, err
	}
	if err := u.validate(id2); err != nil {
		return 0, err
	}

	rep1 := u.find(id1)
	rep2 := u.find(id2)
	if rep1 == rep2 {
		return rep1, nil
	}

	u.count--

	switch {
	case u.backing[rep1].rank < u.backing[rep2].rank:
		u.backing[rep1].parent = rep2
		return rep2, nil
	case u.backing[rep1].rank > u.backing[rep2].rank:
		u.backing[rep2].parent = rep1
		return rep1, nil
	default:
		// Equal ranks: the first argument's root always becomes the child
		// and only the surviving root's rank grows, by exactly one.
		u.backing[rep1].parent = rep2
		u.backing[rep2].rank++
		return rep2, nil
	}
}

// Connected reports whether id1 and id2 currently belong to the same set.
func (u *UnionFind) Connected(id1, id2 int) (bool, error) {
	if err := u.validate(id1); err != nil {
		return false, err
	}
	if err := u.validate(id2); err != nil {
		return false, err
	}

	return u.find(id1) == u.find(id2), nil
}

func (u *UnionFind) validate(id int) error {
	if id < 0 || id >= len(u.backing) {
		return errors.Wrapf(ErrNoSuchElement, "id %d out of range [0, %d)", id, len(u.backing))
	}
	return nil
}

// find expects a validated id. The first pass walks parent pointers up to
// the root; the second pass walks the same path again and rewrites every
// element on it to point at the root directly, not merely at a nearer
// ancestor.
func (u *UnionFind) find(id int) int {
	rep := id
	for u.backing[rep].parent != rep {
		rep = u.backing[rep].parent
	}

	current := id
	for current != rep {
		next := u.backing[current].parent
		u.backing[current].parent = rep
		current = next
	}

	return rep
}
