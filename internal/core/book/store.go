package book

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/backlist/internal/core/resource"
	"github.com/taibuivan/backlist/internal/platform/constants"
	"github.com/taibuivan/backlist/internal/platform/database/schema"
)

// Repository is the lifecycle store for books.
type Repository = resource.Repository[*Book, Payload]

// TagRepository manages the book↔tag join rows.
//
// Join rows carry their own deleted_at and are never restored together with
// the book or the tag.
type TagRepository interface {
	// ListTags returns the live tag links of bookID, ordered by tag name.
	ListTags(context context.Context, bookID string) ([]*TagLink, error)
	// AttachTag links bookID and tagID, reviving a detached link.
	AttachTag(context context.Context, bookID, tagID string) error
	// DetachTag soft-deletes the link.
	DetachTag(context context.Context, bookID, tagID string) error
}

// Table maps books onto the books relation.
var Table = resource.Table[*Book, Payload]{
	Label:       "Book",
	Name:        schema.Book.Table,
	Columns:     schema.Book.Columns(),
	Scan:        scanBook,
	Required:    schema.Book.Title,
	Flag:        schema.Book.IsFeatured,
	FlagDefault: false,
	Slug:        schema.Book.Slug,
	Fields:      schema.Book.Payload(),
	Values: func(p Payload) []any {
		return []any{
			p.Author, p.Slug, p.Publisher, p.ISBN, p.ISBN13, p.CoverURL, p.Description,
			p.Year, p.Price, p.Availability, p.Language, p.PageCount,
		}
	},
	SortKey:       schema.Book.Title,
	SearchColumns: []string{schema.Book.Title, schema.Book.Author, schema.Book.ISBN13},
	ListLimit:     constants.BookListLimit,
	SearchLimit:   constants.BookSearchLimit,
}

func scanBook(row pgx.Row) (*Book, error) {
	b := &Book{}
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Slug, &b.Publisher, &b.ISBN, &b.ISBN13, &b.CoverURL,
		&b.Description, &b.Year, &b.Price, &b.Availability, &b.Language, &b.PageCount,
		&b.IsFeatured, &b.TotalScore, &b.DisplayOrder, &b.CreatedAt, &b.UpdatedAt, &b.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}
