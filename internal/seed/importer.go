// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/backlist/internal/core/affiliate"
	"github.com/taibuivan/backlist/internal/core/book"
	"github.com/taibuivan/backlist/internal/core/curator"
	"github.com/taibuivan/backlist/internal/core/tag"
)

// Creator creates one record of a resource.
type Creator[T any, P any] interface {
	Create(context context.Context, payload P) (T, error)
}

// Linker attaches a tag to a book.
type Linker interface {
	AttachTag(context context.Context, bookID, tagID string) error
}

// Services are the admin services an import writes through.
type Services struct {
	Tags       Creator[*tag.Tag, tag.Payload]
	Curators   Creator[*curator.Curator, curator.Payload]
	Affiliates Creator[*affiliate.Affiliate, affiliate.Payload]
	Books      Creator[*book.Book, book.Payload]
	Links      Linker
}

// Report counts what an import created.
type Report struct {
	Tags       int
	Curators   int
	Affiliates int
	Books      int
	Links      int
}

// Importer writes a [Catalog] through the admin services.
type Importer struct {
	services Services
	logger   *slog.Logger
}

// NewImporter creates an [Importer].
func NewImporter(services Services, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{services: services, logger: logger}
}

// Import checks the catalog and creates its records in dependency order.
// It stops at the first failure; records created before it are kept.
func (importer *Importer) Import(context context.Context, catalog *Catalog) (Report, error) {
	var report Report

	if err := catalog.Check(); err != nil {
		return report, err
	}

	tagIDs := make(map[string]string, len(catalog.Tags))
	for _, entry := range catalog.Tags {
		created, err := importer.services.Tags.Create(context, entry.Payload)
		if err != nil {
			return report, fmt.Errorf("seed: tag %q: %w", entry.Key, err)
		}
		tagIDs[entry.Key] = created.ID
		report.Tags++
	}

	for _, payload := range catalog.Curators {
		if _, err := importer.services.Curators.Create(context, payload); err != nil {
			return report, fmt.Errorf("seed: curator %q: %w", payload.Name, err)
		}
		report.Curators++
	}

	for _, payload := range catalog.Affiliates {
		if _, err := importer.services.Affiliates.Create(context, payload); err != nil {
			return report, fmt.Errorf("seed: affiliate %q: %w", payload.Name, err)
		}
		report.Affiliates++
	}

	for _, entry := range catalog.Books {
		created, err := importer.services.Books.Create(context, entry.Payload)
		if err != nil {
			return report, fmt.Errorf("seed: book %q: %w", entry.Title, err)
		}
		report.Books++

		for _, key := range entry.Tags {
			if err := importer.services.Links.AttachTag(context, created.ID, tagIDs[key]); err != nil {
				return report, fmt.Errorf("seed: book %q tag %q: %w", entry.Title, key, err)
			}
			report.Links++
		}
	}

	importer.logger.InfoContext(context, "seed_imported",
		slog.Int("tags", report.Tags),
		slog.Int("curators", report.Curators),
		slog.Int("affiliates", report.Affiliates),
		slog.Int("books", report.Books),
		slog.Int("links", report.Links),
	)
	return report, nil
}
