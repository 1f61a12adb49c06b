package game

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// ObjectSet is an unordered set of objects. Rooms and the player's inventory
// both hold one; an object is either fully in a set or not at all.
type ObjectSet struct {
	set mapset.Set[ObjectId]
}

// NewObjectSet creates a set holding ids.
func NewObjectSet(ids ...ObjectId) *ObjectSet {
	s := &ObjectSet{set: mapset.New[ObjectId]()}
	for _, id := range ids {
		s.set.Put(id)
	}
	return s
}

// Add puts id in the set. Returns false if it was already present.
func (s *ObjectSet) Add(id ObjectId) bool {
	if s.set.Has(id) {
		return false
	}
	s.set.Put(id)
	return true
}

// Remove takes id out of the set. Returns false if it was not present.
func (s *ObjectSet) Remove(id ObjectId) bool {
	if !s.set.Has(id) {
		return false
	}
	s.set.Remove(id)
	return true
}

// Contains reports whether id is in the set.
func (s *ObjectSet) Contains(id ObjectId) bool {
	return s.set.Has(id)
}

// Len returns the number of objects in the set.
func (s *ObjectSet) Len() int {
	return s.set.Size()
}

// Sorted returns the objects in lexical order. The set itself is unordered;
// sorting keeps output stable between turns.
func (s *ObjectSet) Sorted() []ObjectId {
	ids := make([]ObjectId, 0, s.set.Size())
	s.set.Each(func(id ObjectId) {
		ids = append(ids, id)
	})
	slices.Sort(ids)
	return ids
}

// Inventory is the set of objects carried by the player.
type Inventory = ObjectSet
