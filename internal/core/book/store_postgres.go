package book

import (
	"context"
	"fmt"

	"github.com/taibuivan/backlist/internal/core/resource"
	"github.com/taibuivan/backlist/internal/platform/apperr"
	"github.com/taibuivan/backlist/internal/platform/database/schema"
	"github.com/taibuivan/backlist/internal/platform/dberr"
	"github.com/taibuivan/backlist/internal/platform/postgres"
)

// PostgresRepository persists books and their tag links.
type PostgresRepository struct {
	*resource.PostgresRepository[*Book, Payload]
}

// NewPostgresRepository creates a book repository over db.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{PostgresRepository: resource.NewPostgresRepository(db, Table)}
}

// ListTags implements [TagRepository].
func (repository *PostgresRepository) ListTags(context context.Context, bookID string) ([]*TagLink, error) {
	bt, t := schema.BookTag, schema.Tag
	query := fmt.Sprintf(`
		SELECT t.%s, t.%s, t.%s, t.%s, bt.%s
		FROM %s bt
		JOIN %s t ON t.%s = bt.%s
		WHERE bt.%s = $1 AND bt.%s IS NULL
		ORDER BY t.%s ASC`,
		t.ID, t.Name, t.Slug, t.TagType, bt.CreatedAt,
		bt.Table,
		t.Table, t.ID, bt.TagID,
		bt.BookID, bt.DeletedAt,
		t.Name,
	)

	rows, err := repository.DB().Query(context, query, bookID)
	if err != nil {
		return nil, dberr.Wrap(err, "book_list_tags")
	}
	defer rows.Close()

	links := make([]*TagLink, 0)
	for rows.Next() {
		link := &TagLink{}
		if err := rows.Scan(&link.TagID, &link.Name, &link.Slug, &link.TagType, &link.LinkedAt); err != nil {
			return nil, dberr.Wrap(err, "book_scan_tag")
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "book_list_tags")
	}
	return links, nil
}

// AttachTag implements [TagRepository]. A link to a missing book or tag is Unprocessable.
func (repository *PostgresRepository) AttachTag(context context.Context, bookID, tagID string) error {
	bt := schema.BookTag
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s) VALUES ($1, $2)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = NULL`,
		bt.Table, bt.BookID, bt.TagID,
		bt.BookID, bt.TagID, bt.DeletedAt,
	)

	if _, err := repository.DB().Exec(context, query, bookID, tagID); err != nil {
		return dberr.Wrap(err, "book_attach_tag")
	}
	return nil
}

// DetachTag implements [TagRepository].
func (repository *PostgresRepository) DetachTag(context context.Context, bookID, tagID string) error {
	bt := schema.BookTag
	query := fmt.Sprintf(`
		UPDATE %s SET %s = COALESCE(%s, NOW())
		WHERE %s = $1 AND %s = $2`,
		bt.Table, bt.DeletedAt, bt.DeletedAt,
		bt.BookID, bt.TagID,
	)

	tag, err := repository.DB().Exec(context, query, bookID, tagID)
	if err != nil {
		return dberr.Wrap(err, "book_detach_tag")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Book tag")
	}
	return nil
}
