// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package resource

import "context"

// Repository persists one resource type and implements its lifecycle transitions.
//
// Operations that target a missing record return a NotFound [apperr.AppError].
type Repository[T Entity, P Payload[P]] interface {
	// ListActive returns active records by display_order (nulls last), then by
	// the resource's sort key. A non-empty query filters by substring where the
	// resource supports search.
	ListActive(context context.Context, query string) ([]T, error)

	// ListTrashed returns trashed records, most recently deleted first.
	ListTrashed(context context.Context) ([]T, error)

	// Get returns a record regardless of its lifecycle state.
	Get(context context.Context, id string) (T, error)

	// Insert creates an active record with the given identity.
	Insert(context context.Context, id string, payload P) (T, error)

	// Update overwrites the optional fields of an active record. The required
	// field and the flag keep their stored values when the payload omits them.
	Update(context context.Context, id string, payload P) (T, error)

	// Duplicate copies sourceID into a new active record named as a copy, with
	// the flag off and no display_order.
	Duplicate(context context.Context, sourceID, newID string) (T, error)

	// SoftDelete trashes a record. Trashing a trashed record keeps its original
	// deletion time.
	SoftDelete(context context.Context, id string) error

	// Restore makes a record active again.
	Restore(context context.Context, id string) (T, error)

	// SetFlag stores the given flag value.
	SetFlag(context context.Context, id string, value bool) (T, error)

	// SetDisplayOrder stores position for id. Unknown ids are not an error.
	SetDisplayOrder(context context.Context, id string, position int) error

	// HardDelete removes a record permanently.
	HardDelete(context context.Context, id string) error
}
