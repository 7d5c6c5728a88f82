// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package resource

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/backlist/internal/platform/apperr"
	"github.com/taibuivan/backlist/internal/platform/ctxutil"
	"github.com/taibuivan/backlist/internal/platform/validate"
	"github.com/taibuivan/backlist/pkg/uuid"
)

// maxRequiredLength bounds titles and names.
const maxRequiredLength = 500

// Options configures a [Service] for one resource type.
type Options struct {
	// Label names the resource in errors and log events ("Book").
	Label string
	// RequiredField is the JSON name of the required field ("title").
	RequiredField string
	// AllowHardDelete enables permanent deletion.
	AllowHardDelete bool
	// Invalidator, when set, is notified after every successful mutation.
	Invalidator Invalidator
}

// Service implements the lifecycle use cases of one resource type.
type Service[T Entity, P Payload[P]] struct {
	repository Repository[T, P]
	options    Options
	logger     *slog.Logger
	newID      func() string
}

// NewService constructs a [Service] over repository.
func NewService[T Entity, P Payload[P]](repository Repository[T, P], options Options, logger *slog.Logger) *Service[T, P] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service[T, P]{
		repository: repository,
		options:    options,
		logger:     logger,
		newID:      uuid.New,
	}
}

// Label returns the resource label.
func (service *Service[T, P]) Label() string {
	return service.options.Label
}

// AllowsHardDelete reports whether [Service.HardDelete] is available.
func (service *Service[T, P]) AllowsHardDelete() bool {
	return service.options.AllowHardDelete
}

// # Queries

// List returns active records, filtered by query where the resource supports search.
func (service *Service[T, P]) List(context context.Context, query string) ([]T, error) {
	return service.repository.ListActive(context, strings.TrimSpace(query))
}

// ListTrashed returns trashed records, most recently deleted first.
func (service *Service[T, P]) ListTrashed(context context.Context) ([]T, error) {
	return service.repository.ListTrashed(context)
}

// Get returns one record in any lifecycle state.
func (service *Service[T, P]) Get(context context.Context, id string) (T, error) {
	if err := service.checkID(id); err != nil {
		var zero T
		return zero, err
	}
	return service.repository.Get(context, id)
}

// # Mutations

// Create validates payload and inserts a new active record.
func (service *Service[T, P]) Create(context context.Context, payload P) (T, error) {
	var zero T
	payload = payload.Normalize()

	validator := &validate.Validator{}
	validator.Required(service.options.RequiredField, payload.RequiredValue()).
		MaxLen(service.options.RequiredField, payload.RequiredValue(), maxRequiredLength)
	payload.Validate(validator)

	if err := validator.Err(); err != nil {
		return zero, err
	}

	record, err := service.repository.Insert(context, service.newID(), payload)
	if err != nil {
		return zero, err
	}

	service.changed(context, "created", record.EntityID())
	return record, nil
}

// Update overwrites an active record. An empty required field keeps the stored value.
func (service *Service[T, P]) Update(context context.Context, id string, payload P) (T, error) {
	var zero T
	if err := service.checkID(id); err != nil {
		return zero, err
	}

	payload = payload.Normalize()

	validator := &validate.Validator{}
	validator.MaxLen(service.options.RequiredField, payload.RequiredValue(), maxRequiredLength)
	payload.Validate(validator)

	if err := validator.Err(); err != nil {
		return zero, err
	}

	record, err := service.repository.Update(context, id, payload)
	if err != nil {
		return zero, err
	}

	service.changed(context, "updated", id)
	return record, nil
}

// Duplicate creates a copy of id with a fresh identity.
func (service *Service[T, P]) Duplicate(context context.Context, id string) (T, error) {
	var zero T
	if err := service.checkID(id); err != nil {
		return zero, err
	}

	record, err := service.repository.Duplicate(context, id, service.newID())
	if err != nil {
		return zero, err
	}

	service.changed(context, "duplicated", record.EntityID(), slog.String("source_id", id))
	return record, nil
}

// SoftDelete moves a record to the trash. Trashing twice is a no-op success.
func (service *Service[T, P]) SoftDelete(context context.Context, id string) error {
	if err := service.checkID(id); err != nil {
		return err
	}
	if err := service.repository.SoftDelete(context, id); err != nil {
		return err
	}

	service.changed(context, "trashed", id)
	return nil
}

// Restore brings a record back from the trash. Restoring an active record is a no-op success.
func (service *Service[T, P]) Restore(context context.Context, id string) (T, error) {
	var zero T
	if err := service.checkID(id); err != nil {
		return zero, err
	}

	record, err := service.repository.Restore(context, id)
	if err != nil {
		return zero, err
	}

	service.changed(context, "restored", id)
	return record, nil
}

// ToggleFlag stores the caller's flag value. It is a set, not a flip.
func (service *Service[T, P]) ToggleFlag(context context.Context, id string, value bool) (T, error) {
	var zero T
	if err := service.checkID(id); err != nil {
		return zero, err
	}

	record, err := service.repository.SetFlag(context, id, value)
	if err != nil {
		return zero, err
	}

	service.changed(context, "flag_set", id, slog.Bool("value", value))
	return record, nil
}

// Reorder assigns each id its 0-based position in ids.
//
// Writes happen one by one without a transaction. Ids outside the active set
// are written too; malformed ids cannot name a record and are skipped.
// The first failing write aborts the remainder.
func (service *Service[T, P]) Reorder(context context.Context, ids []string) error {
	written := 0
	for position, id := range ids {
		if !validate.IsUUID(id) {
			continue
		}
		if err := service.repository.SetDisplayOrder(context, id, position); err != nil {
			return fmt.Errorf("reorder %s at position %d: %w", service.options.Label, position, err)
		}
		written++
	}

	service.changed(context, "reordered", "", slog.Int("count", written))
	return nil
}

// HardDelete removes a record permanently, where the resource allows it.
func (service *Service[T, P]) HardDelete(context context.Context, id string) error {
	if !service.options.AllowHardDelete {
		return apperr.Forbidden(service.options.Label + " records cannot be deleted permanently")
	}
	if err := service.checkID(id); err != nil {
		return err
	}
	if err := service.repository.HardDelete(context, id); err != nil {
		return err
	}

	service.changed(context, "deleted", id)
	return nil
}

// # Helpers

// checkID rejects ids that cannot name a record.
func (service *Service[T, P]) checkID(id string) error {
	if !validate.IsUUID(id) {
		return apperr.NotFound(service.options.Label)
	}
	return nil
}

// changed logs a mutation event and invalidates dependent caches.
func (service *Service[T, P]) changed(context context.Context, event, id string, attributes ...any) {
	logger := service.logger.With(slog.String("request_id", ctxutil.GetRequestID(context)))

	if id != "" {
		attributes = append([]any{slog.String("id", id)}, attributes...)
	}
	logger.InfoContext(context, strings.ToLower(service.options.Label)+"_"+event, attributes...)

	if service.options.Invalidator == nil {
		return
	}
	if err := service.options.Invalidator.Invalidate(context); err != nil {
		logger.WarnContext(context, "cache_invalidation_failed",
			slog.String("resource", service.options.Label),
			slog.Any("error", err),
		)
	}
}
