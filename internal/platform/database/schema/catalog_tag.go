package schema

// TagTable represents the 'tags' table
type TagTable struct {
	Table        string
	ID           string
	Name         string
	Slug         string
	Description  string
	Color        string
	Category     string
	TagType      string
	Visible      string
	DisplayOrder string
	CreatedAt    string
	UpdatedAt    string
	DeletedAt    string
}

// Tag is the schema definition for tags
var Tag = TagTable{
	Table:        "tags",
	ID:           ColumnID,
	Name:         "name",
	Slug:         "slug",
	Description:  "description",
	Color:        "color",
	Category:     "category",
	TagType:      "tag_type",
	Visible:      "visible",
	DisplayOrder: ColumnDisplayOrder,
	CreatedAt:    ColumnCreatedAt,
	UpdatedAt:    ColumnUpdatedAt,
	DeletedAt:    ColumnDeletedAt,
}

func (t TagTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.Description, t.Color, t.Category, t.TagType,
		t.Visible, t.DisplayOrder, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}

func (t TagTable) Payload() []string {
	return []string{t.Slug, t.Description, t.Color, t.Category, t.TagType}
}
