package store

// Entity is the contract every stored record type satisfies: an integer
// identity plus value-semantics helpers so the collection can hand out
// copies instead of aliases.
type Entity[T any] interface {
	Identity() int
	WithIdentity(id int) T
	Clone() T
}

// Collection is an ordered in-memory record set. Insertion order is
// preserved and is the display order consumers see. Collection is not
// safe for concurrent use on its own; the Store serializes access.
type Collection[T Entity[T]] struct {
	items []T
}

// NextID returns one more than the current maximum id, or 1 when the
// collection is empty. Ids freed by deletion below the maximum are never
// reused, but gaps below the max can be filled again once the max itself
// is deleted.
func (c *Collection[T]) NextID() int {
	maxID := 0

	for _, item := range c.items {
		if item.Identity() > maxID {
			maxID = item.Identity()
		}
	}

	return maxID + 1
}

// Insert assigns the next id, appends the record, and returns the stored
// copy.
func (c *Collection[T]) Insert(item T) T {
	stored := item.WithIdentity(c.NextID())
	c.items = append(c.items, stored)

	return stored.Clone()
}

// Get returns a copy of the record with the given id.
func (c *Collection[T]) Get(id int) (T, bool) {
	for _, item := range c.items {
		if item.Identity() == id {
			return item.Clone(), true
		}
	}

	var zero T

	return zero, false
}

// List returns copies of all records in insertion order.
func (c *Collection[T]) List() []T {
	items := make([]T, len(c.items))
	for i, item := range c.items {
		items[i] = item.Clone()
	}

	return items
}

// Replace overwrites the record whose id matches, keeping its position.
// Every field is replaced, not merged. Returns false and leaves the
// collection untouched when no record matches.
func (c *Collection[T]) Replace(item T) bool {
	for i, existing := range c.items {
		if existing.Identity() == item.Identity() {
			c.items[i] = item.Clone()

			return true
		}
	}

	return false
}

// Remove deletes the record with the given id and returns a copy of it.
// Removing an absent id is a no-op.
func (c *Collection[T]) Remove(id int) (T, bool) {
	for i, existing := range c.items {
		if existing.Identity() == id {
			removed := existing.Clone()
			c.items = append(c.items[:i], c.items[i+1:]...)

			return removed, true
		}
	}

	var zero T

	return zero, false
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	return len(c.items)
}
