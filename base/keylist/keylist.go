// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list (slice) of items,
with a map from a key (e.g., names) to indexes,
to support fast lookup by name. It backs ordered
key-value stores like entity properties, where insertion
order is significant for display and persistence.
*/
package keylist

import (
	"fmt"
	"slices"
	"strings"
)

// List implements an ordered list (slice) of Values,
// with a map from a key (e.g., names) to indexes,
// to support fast lookup by name.
type List[K comparable, V any] struct {
	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values]
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List].  The zero value
// is usable without initialization, so this is
// just a simple standard convenience method.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// initIndexes ensures that the index map exists and is in sync.
func (kl *List[K, V]) initIndexes() {
	if kl.indexes == nil || len(kl.indexes) != len(kl.Keys) {
		kl.UpdateIndexes()
	}
}

// Set sets given key to given value, adding to the end of the list
// if not already present, and otherwise replacing with this new value.
// This is the same semantics as a Go map.
func (kl *List[K, V]) Set(key K, val V) {
	kl.initIndexes()
	if idx, ok := kl.indexes[key]; ok {
		kl.Values[idx] = val
		return
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
}

// Add adds an item to the list with given key.
// An error is returned if the key is already on the list.
func (kl *List[K, V]) Add(key K, val V) error {
	kl.initIndexes()
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already on the list", key)
	}
	kl.Set(key, val)
	return nil
}

// At returns the value corresponding to the given key,
// with a zero value returned for a missing key. See [List.AtTry]
// for one that returns a bool for missing keys.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value corresponding to the given key,
// with false returned for a missing key, in case the zero value
// is not diagnostic.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	var zv V
	if kl == nil {
		return zv, false
	}
	kl.initIndexes()
	idx, ok := kl.indexes[key]
	if ok {
		return kl.Values[idx], true
	}
	return zv, false
}

// Has returns whether the given key is on the list.
func (kl *List[K, V]) Has(key K) bool {
	_, ok := kl.AtTry(key)
	return ok
}

// IndexByKey returns the index of the given key, with a -1 for missing key.
func (kl *List[K, V]) IndexByKey(key K) int {
	if kl == nil {
		return -1
	}
	kl.initIndexes()
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// DeleteByKey deletes the item with the given key,
// returning false if it does not find it.
// This is relatively slow because it needs to regenerate the
// index map.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx := kl.IndexByKey(key)
	if idx < 0 {
		return false
	}
	kl.Keys = slices.Delete(kl.Keys, idx, idx+1)
	kl.Values = slices.Delete(kl.Values, idx, idx+1)
	kl.UpdateIndexes()
	return true
}

// Clone returns a copy of the list that shares no storage with it.
// Values are copied by assignment.
func (kl *List[K, V]) Clone() *List[K, V] {
	nl := New[K, V]()
	if kl == nil {
		return nl
	}
	nl.Keys = slices.Clone(kl.Keys)
	nl.Values = slices.Clone(kl.Values)
	nl.UpdateIndexes()
	return nl
}

// Equal returns whether both lists hold the same keys and values
// in the same order, using the given value comparison function.
func (kl *List[K, V]) Equal(other *List[K, V], eq func(a, b V) bool) bool {
	if kl.Len() != other.Len() {
		return false
	}
	for i := range kl.Len() {
		if kl.Keys[i] != other.Keys[i] || !eq(kl.Values[i], other.Values[i]) {
			return false
		}
	}
	return true
}

// String returns a string representation of the list.
func (kl *List[K, V]) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, v := range kl.Values {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", kl.Keys[i], v)
	}
	b.WriteString("}")
	return b.String()
}

// UpdateIndexes updates the indexes from Keys.
// This must be called after modifying Keys directly, for example
// after deep copying a list, which does not copy the unexported index map.
func (kl *List[K, V]) UpdateIndexes() {
	kl.indexes = make(map[K]int, len(kl.Keys))
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
}
