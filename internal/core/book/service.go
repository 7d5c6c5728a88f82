// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"log/slog"

	"github.com/taibuivan/backlist/internal/core/resource"
	"github.com/taibuivan/backlist/internal/platform/apperr"
	"github.com/taibuivan/backlist/internal/platform/ctxutil"
	"github.com/taibuivan/backlist/internal/platform/validate"
)

// Service adds tag links and permanent deletion to the book lifecycle.
type Service struct {
	*resource.Service[*Book, Payload]

	tags        TagRepository
	invalidator resource.Invalidator
	logger      *slog.Logger
}

// NewService constructs a book [Service]. invalidator may be nil.
func NewService(repository Repository, tags TagRepository, invalidator resource.Invalidator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	lifecycle := resource.NewService(repository, resource.Options{
		Label:           Table.Label,
		RequiredField:   "title",
		AllowHardDelete: true,
		Invalidator:     invalidator,
	}, logger)

	return &Service{
		Service:     lifecycle,
		tags:        tags,
		invalidator: invalidator,
		logger:      logger,
	}
}

// ListTags returns the live tag links of a book.
func (service *Service) ListTags(context context.Context, bookID string) ([]*TagLink, error) {
	if !validate.IsUUID(bookID) {
		return nil, apperr.NotFound(Table.Label)
	}
	return service.tags.ListTags(context, bookID)
}

// AttachTag links a tag to a book. Attaching an existing link is a no-op success.
func (service *Service) AttachTag(context context.Context, bookID, tagID string) error {
	if err := checkLink(bookID, tagID); err != nil {
		return err
	}
	if err := service.tags.AttachTag(context, bookID, tagID); err != nil {
		return err
	}

	service.linkChanged(context, "book_tag_attached", bookID, tagID)
	return nil
}

// DetachTag soft-deletes the link between a book and a tag.
func (service *Service) DetachTag(context context.Context, bookID, tagID string) error {
	if err := checkLink(bookID, tagID); err != nil {
		return err
	}
	if err := service.tags.DetachTag(context, bookID, tagID); err != nil {
		return err
	}

	service.linkChanged(context, "book_tag_detached", bookID, tagID)
	return nil
}

func checkLink(bookID, tagID string) error {
	if !validate.IsUUID(bookID) {
		return apperr.NotFound(Table.Label)
	}
	if !validate.IsUUID(tagID) {
		return apperr.NotFound("Tag")
	}
	return nil
}

func (service *Service) linkChanged(context context.Context, event, bookID, tagID string) {
	logger := service.logger.With(slog.String("request_id", ctxutil.GetRequestID(context)))
	logger.InfoContext(context, event, slog.String("id", bookID), slog.String("tag_id", tagID))

	if service.invalidator == nil {
		return
	}
	if err := service.invalidator.Invalidate(context); err != nil {
		logger.WarnContext(context, "cache_invalidation_failed",
			slog.String("resource", "BookTag"),
			slog.Any("error", err),
		)
	}
}
