package unionfind

import (
	"github.com/pkg/errors"
)

// Keyed - the same disjoint-set semantics addressed by arbitrary comparable
// keys instead of dense ids. Keys are interned into a core store on Add, so
// every guarantee of UnionFind (two-pass compression, union by rank, the
// single out-of-range failure mode, no mutation on failure) carries over
// unchanged.
type Keyed[K comparable] struct {
	core *UnionFind
	ids  map[K]int
	keys []K
}

// NewKeyed creates an empty keyed store.
func NewKeyed[K comparable]() *Keyed[K] {
	return &Keyed[K]{
		core: New(0),
		ids:  make(map[K]int),
	}
}

// Add interns key as a fresh singleton set and returns its dense id, which
// follows creation order starting at 0. Adding a key that is already present
// changes nothing and returns the id it was given the first time.
func (k *Keyed[K]) Add(key K) int {
	if id, ok := k.ids[key]; ok {
		return id
	}

	id := k.core.Fresh()
	k.ids[key] = id
	k.keys = append(k.keys, key)
	return id
}

// Has reports whether key has been added to the store.
func (k *Keyed[K]) Has(key K) bool {
	_, ok := k.ids[key]
	return ok
}

// Find returns the representative key of the set containing key.
func (k *Keyed[K]) Find(key K) (K, error) {
	id, ok := k.ids[key]
	if !ok {
		return zero[K](), errors.Wrapf(ErrNoSuchElement, "key %v was never added", key)
	}

	return k.keys[k.core.find(id)], nil
}

// Union merges the sets containing key1 and key2 and returns the surviving
// representative key. Both keys are checked before anything is mutated.
func (k *Keyed[K]) Union(key1, key2 K) (K, error) {
	id1, ok := k.ids[key1]
	if !ok {
		return zero[K](), errors.Wrapf(ErrNoSuchElement, "key %v was never added", key1)
	}
	id2, ok := k.ids[key2]
	if !ok {
		return zero[K](), errors.Wrapf(ErrNoSuchElement, "key %v was never added", key2)
	}

	rep, err := k.core.Union(id1, id2)
	if err != nil {
		return zero[K](), err
	}

	return k.keys[rep], nil
}

// Connected reports whether key1 and key2 currently belong to the same set.
func (k *Keyed[K]) Connected(key1, key2 K) (bool, error) {
	id1, ok := k.ids[key1]
	if !ok {
		return false, errors.Wrapf(ErrNoSuchElement, "key %v was never added", key1)
	}
	id2, ok := k.ids[key2]
	if !ok {
		return false, errors.Wrapf(ErrNoSuchElement, "key %v was never added", key2)
	}

	return k.core.find(id1) == k.core.find(id2), nil
}

// Len returns the number of keys ever added.
func (k *Keyed[K]) Len() int {
	return k.core.Len()
}

// Count returns the number of disjoint sets the keys are currently
// partitioned into.
func (k *Keyed[K]) Count() int {
	return k.core.Count()
}

func zero[T any]() T {
	var z T
	return z
}
