package curator

import (
	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/backlist/internal/core/resource"
	"github.com/taibuivan/backlist/internal/platform/database/schema"
	"github.com/taibuivan/backlist/internal/platform/postgres"
)

// Repository is the lifecycle store for curators.
type Repository = resource.Repository[*Curator, Payload]

// Table maps curators onto the curators relation.
var Table = resource.Table[*Curator, Payload]{
	Label:       "Curator",
	Name:        schema.Curator.Table,
	Columns:     schema.Curator.Columns(),
	Scan:        scanCurator,
	Required:    schema.Curator.Name,
	Flag:        schema.Curator.Visible,
	FlagDefault: false,
	Slug:        schema.Curator.Slug,
	Fields:      schema.Curator.Payload(),
	Values: func(p Payload) []any {
		return []any{p.Slug, p.Bio, p.AvatarURL, p.Focus, p.WebsiteURL, p.InstagramURL, p.PodcastURL}
	},
	SortKey: schema.Curator.Name,
}

// NewPostgresRepository creates the curator repository over db.
func NewPostgresRepository(db postgres.DB) *resource.PostgresRepository[*Curator, Payload] {
	return resource.NewPostgresRepository(db, Table)
}

func scanCurator(row pgx.Row) (*Curator, error) {
	c := &Curator{}
	err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Bio, &c.AvatarURL, &c.Focus, &c.WebsiteURL, &c.InstagramURL,
		&c.PodcastURL, &c.Visible, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
