package schema

// BookTable represents the 'books' table
type BookTable struct {
	Table        string
	ID           string
	Title        string
	Author       string
	Slug         string
	Publisher    string
	ISBN         string
	ISBN13       string
	CoverURL     string
	Description  string
	Year         string
	Price        string
	Availability string
	Language     string
	PageCount    string
	IsFeatured   string
	TotalScore   string
	DisplayOrder string
	CreatedAt    string
	UpdatedAt    string
	DeletedAt    string
}

// Book is the schema definition for books
var Book = BookTable{
	Table:        "books",
	ID:           ColumnID,
	Title:        "title",
	Author:       "author",
	Slug:         "slug",
	Publisher:    "publisher",
	ISBN:         "isbn",
	ISBN13:       "isbn13",
	CoverURL:     "cover_url",
	Description:  "description",
	Year:         "year",
	Price:        "price",
	Availability: "availability",
	Language:     "language",
	PageCount:    "page_count",
	IsFeatured:   "is_featured",
	TotalScore:   "total_score",
	DisplayOrder: ColumnDisplayOrder,
	CreatedAt:    ColumnCreatedAt,
	UpdatedAt:    ColumnUpdatedAt,
	DeletedAt:    ColumnDeletedAt,
}

// Columns returns the columns scanned into a book record, in scan order.
func (t BookTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Author, t.Slug, t.Publisher, t.ISBN, t.ISBN13, t.CoverURL,
		t.Description, t.Year, t.Price, t.Availability, t.Language, t.PageCount,
		t.IsFeatured, t.TotalScore, t.DisplayOrder, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}

// Payload returns the editable optional columns, in payload order.
func (t BookTable) Payload() []string {
	return []string{
		t.Author, t.Slug, t.Publisher, t.ISBN, t.ISBN13, t.CoverURL, t.Description,
		t.Year, t.Price, t.Availability, t.Language, t.PageCount,
	}
}
