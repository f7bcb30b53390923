// Package store provides the per-item atomic key-value adapter every
// aggregate repository is built on. The contract is deliberately narrow:
// get, conditional put, single-item update with set-delta operators, and
// delete. No cross-item atomicity exists; callers sequence multi-entity
// writes themselves and live with the documented partial-failure windows.
package store

import "context"

// Logical table names. Each maps to one collection.
const (
	TableUsers         = "users"
	TableRooms         = "rooms"
	TableTasks         = "tasks"
	TableNotifications = "notifications"
)

// Mutation describes a single-item update. Field-set, field-unset, set-add,
// set-remove and list-append deltas may be combined in one atomic write.
// Removing a member that is not in the set is a silent no-op.
type Mutation struct {
	Set    map[string]interface{}
	Unset  []string
	Add    map[string]string
	Remove map[string]string
	Push   map[string]string

	// Require names a field that must exist on the item for the update to
	// apply, independent of failIfAbsent. A failed guard surfaces as
	// NotFound, mirroring a rejected attribute_exists condition.
	Require string
}

func (m Mutation) empty() bool {
	return len(m.Set) == 0 && len(m.Unset) == 0 && len(m.Add) == 0 &&
		len(m.Remove) == 0 && len(m.Push) == 0
}

// Store is the atomic per-item contract.
//
// Get decodes the item under key into out and reports NotFound when absent.
// Put writes a whole item; with failIfExists it is a conditional create and
// reports Conflict when the key is taken. Update applies a Mutation; with
// failIfAbsent (or Mutation.Require) it reports NotFound when the guard does
// not match, so races against concurrent deletion never re-create an item.
// Delete is idempotent.
type Store interface {
	Get(ctx context.Context, table, key string, out interface{}) error
	Put(ctx context.Context, table, key string, item interface{}, failIfExists bool) error
	Update(ctx context.Context, table, key string, mut Mutation, failIfAbsent bool) error
	Delete(ctx context.Context, table, key string) error
}
