package schema

// CurationTable represents the 'curations' table
type CurationTable struct {
	Table     string
	ID        string
	CuratorID string
	Title     string
	Rationale string
	Status    string
	SortOrder string
	CreatedAt string
	DeletedAt string
}

// Curation is the schema definition for curations
var Curation = CurationTable{
	Table:     "curations",
	ID:        ColumnID,
	CuratorID: "curator_id",
	Title:     "title",
	Rationale: "rationale",
	Status:    "status",
	SortOrder: "sort_order",
	CreatedAt: ColumnCreatedAt,
	DeletedAt: ColumnDeletedAt,
}

// CurationBookTable represents the 'curation_books' join table
type CurationBookTable struct {
	Table      string
	CurationID string
	BookID     string
	SortOrder  string
	DeletedAt  string
}

// CurationBook is the schema definition for curation_books
var CurationBook = CurationBookTable{
	Table:      "curation_books",
	CurationID: "curation_id",
	BookID:     "book_id",
	SortOrder:  "sort_order",
	DeletedAt:  ColumnDeletedAt,
}
