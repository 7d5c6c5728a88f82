package schema

// AffiliateTable represents the 'affiliates' table
type AffiliateTable struct {
	Table        string
	ID           string
	Name         string
	Slug         string
	LinkTemplate string
	LogoURL      string
	FaviconURL   string
	IsActive     string
	DisplayOrder string
	CreatedAt    string
	UpdatedAt    string
	DeletedAt    string
}

// Affiliate is the schema definition for affiliates
var Affiliate = AffiliateTable{
	Table:        "affiliates",
	ID:           ColumnID,
	Name:         "name",
	Slug:         "slug",
	LinkTemplate: "link_template",
	LogoURL:      "logo_url",
	FaviconURL:   "favicon_url",
	IsActive:     "is_active",
	DisplayOrder: ColumnDisplayOrder,
	CreatedAt:    ColumnCreatedAt,
	UpdatedAt:    ColumnUpdatedAt,
	DeletedAt:    ColumnDeletedAt,
}

func (t AffiliateTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.LinkTemplate, t.LogoURL, t.FaviconURL,
		t.IsActive, t.DisplayOrder, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}

func (t AffiliateTable) Payload() []string {
	return []string{t.Slug, t.LinkTemplate, t.LogoURL, t.FaviconURL}
}
