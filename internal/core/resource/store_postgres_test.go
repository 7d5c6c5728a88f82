package resource

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/backlist/internal/platform/validate"
)

type sqlRecord struct{ id string }

func (r *sqlRecord) EntityID() string { return r.id }
func (r *sqlRecord) FlagValue() bool  { return false }

type sqlPayload struct{}

func (sqlPayload) RequiredValue() string                  { return "" }
func (sqlPayload) FlagInput() *bool                       { return nil }
func (p sqlPayload) Normalize() sqlPayload                { return p }
func (sqlPayload) Validate(validator *validate.Validator) {}

func testTable() Table[*sqlRecord, sqlPayload] {
	return Table[*sqlRecord, sqlPayload]{
		Label:         "Tag",
		Name:          "tags",
		Columns:       []string{"id", "name", "slug", "visible"},
		Scan:          func(pgx.Row) (*sqlRecord, error) { return &sqlRecord{}, nil },
		Required:      "name",
		Flag:          "visible",
		Slug:          "slug",
		Fields:        []string{"slug", "color"},
		Values:        func(sqlPayload) []any { return []any{nil, nil} },
		SortKey:       "name",
		SearchColumns: []string{"name", "slug"},
		ListLimit:     200,
		SearchLimit:   100,
	}
}

/*
TestTable_ListSQL checks filters, ordering and caps.
*/
func TestTable_ListSQL(t *testing.T) {
	table := testTable()

	assert.Equal(t,
		"SELECT id, name, slug, visible FROM tags WHERE deleted_at IS NULL ORDER BY display_order ASC NULLS LAST, name ASC, id ASC LIMIT 200",
		table.listActiveSQL(false))

	assert.Equal(t,
		"SELECT id, name, slug, visible FROM tags WHERE deleted_at IS NULL AND (name ILIKE $1 OR slug ILIKE $1) ORDER BY display_order ASC NULLS LAST, name ASC, id ASC LIMIT 100",
		table.listActiveSQL(true))

	table.ListLimit = 0
	assert.NotContains(t, table.listActiveSQL(false), "LIMIT")

	assert.Equal(t,
		"SELECT id, name, slug, visible FROM tags WHERE deleted_at IS NOT NULL ORDER BY deleted_at DESC",
		table.listTrashedSQL())
}

/*
TestTable_MutationSQL checks the write statements.
*/
func TestTable_MutationSQL(t *testing.T) {
	table := testTable()

	assert.Equal(t,
		"INSERT INTO tags (id, name, visible, slug, color) VALUES ($1, $2, $3, $4, $5) RETURNING id, name, slug, visible",
		table.insertSQL())

	assert.Equal(t,
		"UPDATE tags SET name = COALESCE($2, name), visible = COALESCE($3, visible), slug = $4, color = $5, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL RETURNING id, name, slug, visible",
		table.updateSQL())

	assert.Equal(t,
		"INSERT INTO tags (id, name, visible, slug, color) SELECT $2, name || $3, FALSE, slug || $4, color FROM tags WHERE id = $1 RETURNING id, name, slug, visible",
		table.duplicateSQL())

	assert.Equal(t, "UPDATE tags SET deleted_at = COALESCE(deleted_at, NOW()) WHERE id = $1", table.softDeleteSQL())
	assert.Equal(t, "UPDATE tags SET deleted_at = NULL WHERE id = $1 RETURNING id, name, slug, visible", table.restoreSQL())
	assert.Equal(t, "UPDATE tags SET display_order = $2 WHERE id = $1", table.setDisplayOrderSQL())
	assert.Equal(t, "DELETE FROM tags WHERE id = $1", table.hardDeleteSQL())
}

/*
TestTable_DuplicateWithoutSlug leaves every payload column untouched.
*/
func TestTable_DuplicateWithoutSlug(t *testing.T) {
	table := testTable()
	table.Slug = ""

	assert.Contains(t, table.duplicateSQL(), "SELECT $2, name || $3, FALSE, slug, color FROM")
}

/*
TestLikeEscaper matches wildcards literally.
*/
func TestLikeEscaper(t *testing.T) {
	assert.Equal(t, `100\% \_ok\\`, likeEscaper.Replace(`100% _ok\`))
}
