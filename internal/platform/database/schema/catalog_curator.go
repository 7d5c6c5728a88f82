package schema

// CuratorTable represents the 'curators' table
type CuratorTable struct {
	Table        string
	ID           string
	Name         string
	Slug         string
	Bio          string
	AvatarURL    string
	Focus        string
	WebsiteURL   string
	InstagramURL string
	PodcastURL   string
	Visible      string
	DisplayOrder string
	CreatedAt    string
	UpdatedAt    string
	DeletedAt    string
}

// Curator is the schema definition for curators
var Curator = CuratorTable{
	Table:        "curators",
	ID:           ColumnID,
	Name:         "name",
	Slug:         "slug",
	Bio:          "bio",
	AvatarURL:    "avatar_url",
	Focus:        "focus",
	WebsiteURL:   "website_url",
	InstagramURL: "instagram_url",
	PodcastURL:   "podcast_url",
	Visible:      "visible",
	DisplayOrder: ColumnDisplayOrder,
	CreatedAt:    ColumnCreatedAt,
	UpdatedAt:    ColumnUpdatedAt,
	DeletedAt:    ColumnDeletedAt,
}

func (t CuratorTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.Bio, t.AvatarURL, t.Focus, t.WebsiteURL, t.InstagramURL,
		t.PodcastURL, t.Visible, t.DisplayOrder, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}

func (t CuratorTable) Payload() []string {
	return []string{t.Slug, t.Bio, t.AvatarURL, t.Focus, t.WebsiteURL, t.InstagramURL, t.PodcastURL}
}
