package tag

import (
	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/backlist/internal/core/resource"
	"github.com/taibuivan/backlist/internal/platform/database/schema"
	"github.com/taibuivan/backlist/internal/platform/postgres"
)

// Repository is the lifecycle store for tags.
type Repository = resource.Repository[*Tag, Payload]

// Table maps tags onto the tags relation.
var Table = resource.Table[*Tag, Payload]{
	Label:       "Tag",
	Name:        schema.Tag.Table,
	Columns:     schema.Tag.Columns(),
	Scan:        scanTag,
	Required:    schema.Tag.Name,
	Flag:        schema.Tag.Visible,
	FlagDefault: false,
	Slug:        schema.Tag.Slug,
	Fields:      schema.Tag.Payload(),
	Values: func(p Payload) []any {
		return []any{p.Slug, p.Description, p.Color, p.Category, p.TagType}
	},
	SortKey: schema.Tag.Name,
}

// NewPostgresRepository creates the tag repository over db.
func NewPostgresRepository(db postgres.DB) *resource.PostgresRepository[*Tag, Payload] {
	return resource.NewPostgresRepository(db, Table)
}

func scanTag(row pgx.Row) (*Tag, error) {
	t := &Tag{}
	err := row.Scan(
		&t.ID, &t.Name, &t.Slug, &t.Description, &t.Color, &t.Category, &t.TagType,
		&t.Visible, &t.DisplayOrder, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}
