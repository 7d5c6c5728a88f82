package affiliate

import (
	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/backlist/internal/core/resource"
	"github.com/taibuivan/backlist/internal/platform/database/schema"
	"github.com/taibuivan/backlist/internal/platform/postgres"
)

// Repository is the lifecycle store for affiliates.
type Repository = resource.Repository[*Affiliate, Payload]

// Table maps affiliates onto the affiliates relation. New affiliates are active.
var Table = resource.Table[*Affiliate, Payload]{
	Label:       "Affiliate",
	Name:        schema.Affiliate.Table,
	Columns:     schema.Affiliate.Columns(),
	Scan:        scanAffiliate,
	Required:    schema.Affiliate.Name,
	Flag:        schema.Affiliate.IsActive,
	FlagDefault: true,
	Slug:        schema.Affiliate.Slug,
	Fields:      schema.Affiliate.Payload(),
	Values: func(p Payload) []any {
		return []any{p.Slug, p.LinkTemplate, p.LogoURL, p.FaviconURL}
	},
	SortKey: schema.Affiliate.Name,
}

// NewPostgresRepository creates the affiliate repository over db.
func NewPostgresRepository(db postgres.DB) *resource.PostgresRepository[*Affiliate, Payload] {
	return resource.NewPostgresRepository(db, Table)
}

func scanAffiliate(row pgx.Row) (*Affiliate, error) {
	a := &Affiliate{}
	err := row.Scan(
		&a.ID, &a.Name, &a.Slug, &a.LinkTemplate, &a.LogoURL, &a.FaviconURL,
		&a.IsActive, &a.DisplayOrder, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
