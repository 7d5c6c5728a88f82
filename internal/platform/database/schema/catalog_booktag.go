package schema

// BookTagTable represents the 'book_tags' join table
type BookTagTable struct {
	Table     string
	BookID    string
	TagID     string
	CreatedAt string
	DeletedAt string
}

// BookTag is the schema definition for book_tags
var BookTag = BookTagTable{
	Table:     "book_tags",
	BookID:    "book_id",
	TagID:     "tag_id",
	CreatedAt: ColumnCreatedAt,
	DeletedAt: ColumnDeletedAt,
}
