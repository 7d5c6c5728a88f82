// Package schema names the tables and columns of the record store.
//
// Repositories build SQL from these constants instead of repeating string
// literals, so a renamed column is a one-line change.
package schema

// Lifecycle columns shared by every resource table.
const (
	ColumnID           = "id"
	ColumnDisplayOrder = "display_order"
	ColumnCreatedAt    = "created_at"
	ColumnUpdatedAt    = "updated_at"
	ColumnDeletedAt    = "deleted_at"
)
