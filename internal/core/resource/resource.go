// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package resource implements the soft-delete-and-order lifecycle shared by every
admin resource (books, tags, curators, affiliates).

A record is either Active (deleted_at IS NULL) or Trashed (deleted_at set).
Beside full edits, a record changes through narrow operations: toggle its
flag, move it in the display order, trash it, restore it, or duplicate it.

# Architecture

  - [Repository]: persistence contract, one implementation per store.
  - [PostgresRepository]: the pgx implementation, driven by a [Table] descriptor.
  - [Service]: validation, identity generation, logging, cache invalidation.
  - [Handler]: the HTTP boundary, one narrow route per operation.

Resource packages supply the record type, the payload type and the table
descriptor; everything else is shared.
*/
package resource

import (
	"context"

	"github.com/taibuivan/backlist/internal/platform/validate"
)

// Entity is implemented by every resource record.
type Entity interface {
	// EntityID returns the immutable record identity.
	EntityID() string
	// FlagValue returns the resource's independently toggled boolean.
	FlagValue() bool
}

// Payload is the editable field set of a resource, as sent by the client.
type Payload[P any] interface {
	// RequiredValue returns the trimmed value of the single required field.
	RequiredValue() string
	// FlagInput returns the flag as sent, or nil when absent.
	FlagInput() *bool
	// Normalize trims text, maps blank optional fields to nil and canonicalizes slugs.
	Normalize() P
	// Validate checks the optional fields of a normalized payload.
	Validate(validator *validate.Validator)
}

// Invalidator is notified after every successful mutation.
type Invalidator interface {
	Invalidate(context context.Context) error
}
