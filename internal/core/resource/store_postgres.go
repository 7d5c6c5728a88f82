// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package resource

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/backlist/internal/platform/apperr"
	"github.com/taibuivan/backlist/internal/platform/constants"
	"github.com/taibuivan/backlist/internal/platform/database/schema"
	"github.com/taibuivan/backlist/internal/platform/dberr"
	"github.com/taibuivan/backlist/internal/platform/postgres"
	"github.com/taibuivan/backlist/pkg/pointer"
)

// # Table Descriptor

// Table describes how one resource maps onto its relation.
type Table[T Entity, P Payload[P]] struct {
	// Label names the resource in error messages ("Book").
	Label string
	// Name is the relation name.
	Name string
	// Columns are selected and handed to Scan, in that order.
	Columns []string
	// Scan reads one row selected with Columns.
	Scan func(row pgx.Row) (T, error)
	// Required is the NOT NULL column the payload must provide on create.
	Required string
	// Flag is the independently toggled boolean column.
	Flag string
	// FlagDefault applies on create when the payload carries no flag.
	FlagDefault bool
	// Slug is suffixed on duplicate; empty when the resource has none.
	Slug string
	// Fields are the optional payload columns, aligned with Values.
	Fields []string
	// Values extracts the optional payload values.
	Values func(payload P) []any
	// SortKey breaks display_order ties.
	SortKey string
	// SearchColumns are matched case-insensitively by a list query; nil disables search.
	SearchColumns []string
	// ListLimit caps unfiltered lists; zero means no cap.
	ListLimit int
	// SearchLimit caps filtered lists; zero means no cap.
	SearchLimit int
}

// likeEscaper makes user input match literally inside ILIKE patterns.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (table Table[T, P]) selectList() string {
	return strings.Join(table.Columns, ", ")
}

// listActiveSQL builds the active listing, optionally filtered by $1.
func (table Table[T, P]) listActiveSQL(search bool) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "SELECT %s FROM %s WHERE %s IS NULL", table.selectList(), table.Name, schema.ColumnDeletedAt)

	limit := table.ListLimit
	if search {
		matches := make([]string, 0, len(table.SearchColumns))
		for _, column := range table.SearchColumns {
			matches = append(matches, column+" ILIKE $1")
		}
		fmt.Fprintf(&builder, " AND (%s)", strings.Join(matches, " OR "))
		limit = table.SearchLimit
	}

	fmt.Fprintf(&builder, " ORDER BY %s ASC NULLS LAST, %s ASC, %s ASC", schema.ColumnDisplayOrder, table.SortKey, schema.ColumnID)
	if limit > 0 {
		fmt.Fprintf(&builder, " LIMIT %d", limit)
	}
	return builder.String()
}

func (table Table[T, P]) listTrashedSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s IS NOT NULL ORDER BY %s DESC",
		table.selectList(), table.Name, schema.ColumnDeletedAt, schema.ColumnDeletedAt)
}

func (table Table[T, P]) getSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", table.selectList(), table.Name, schema.ColumnID)
}

func (table Table[T, P]) insertSQL() string {
	columns := append([]string{schema.ColumnID, table.Required, table.Flag}, table.Fields...)
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		table.Name, strings.Join(columns, ", "), strings.Join(placeholders, ", "), table.selectList())
}

// updateSQL keeps the required column and the flag when $2/$3 are NULL.
func (table Table[T, P]) updateSQL() string {
	assignments := []string{
		fmt.Sprintf("%s = COALESCE($2, %s)", table.Required, table.Required),
		fmt.Sprintf("%s = COALESCE($3, %s)", table.Flag, table.Flag),
	}
	for i, field := range table.Fields {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", field, i+4))
	}
	assignments = append(assignments, schema.ColumnUpdatedAt+" = NOW()")

	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1 AND %s IS NULL RETURNING %s",
		table.Name, strings.Join(assignments, ", "), schema.ColumnID, schema.ColumnDeletedAt, table.selectList())
}

// duplicateSQL copies $1 into $2, suffixing the required column with $3 and
// the slug with $4. Concatenation with a NULL slug stays NULL.
func (table Table[T, P]) duplicateSQL() string {
	columns := append([]string{schema.ColumnID, table.Required, table.Flag}, table.Fields...)
	sources := []string{"$2", table.Required + " || $3", "FALSE"}
	for _, field := range table.Fields {
		if field == table.Slug {
			sources = append(sources, field+" || $4")
			continue
		}
		sources = append(sources, field)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) SELECT %s FROM %s WHERE %s = $1 RETURNING %s",
		table.Name, strings.Join(columns, ", "), strings.Join(sources, ", "), table.Name, schema.ColumnID, table.selectList())
}

func (table Table[T, P]) softDeleteSQL() string {
	return fmt.Sprintf("UPDATE %s SET %s = COALESCE(%s, NOW()) WHERE %s = $1",
		table.Name, schema.ColumnDeletedAt, schema.ColumnDeletedAt, schema.ColumnID)
}

func (table Table[T, P]) restoreSQL() string {
	return fmt.Sprintf("UPDATE %s SET %s = NULL WHERE %s = $1 RETURNING %s",
		table.Name, schema.ColumnDeletedAt, schema.ColumnID, table.selectList())
}

func (table Table[T, P]) setFlagSQL() string {
	return fmt.Sprintf("UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 RETURNING %s",
		table.Name, table.Flag, schema.ColumnUpdatedAt, schema.ColumnID, table.selectList())
}

func (table Table[T, P]) setDisplayOrderSQL() string {
	return fmt.Sprintf("UPDATE %s SET %s = $2 WHERE %s = $1", table.Name, schema.ColumnDisplayOrder, schema.ColumnID)
}

func (table Table[T, P]) hardDeleteSQL() string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table.Name, schema.ColumnID)
}

// # Repository

// PostgresRepository implements [Repository] for one [Table].
type PostgresRepository[T Entity, P Payload[P]] struct {
	db    postgres.DB
	table Table[T, P]
}

// NewPostgresRepository creates a repository over db for table.
func NewPostgresRepository[T Entity, P Payload[P]](db postgres.DB, table Table[T, P]) *PostgresRepository[T, P] {
	return &PostgresRepository[T, P]{db: db, table: table}
}

// DB exposes the underlying connection for resource-specific queries.
func (repository *PostgresRepository[T, P]) DB() postgres.DB {
	return repository.db
}

// ListActive implements [Repository].
func (repository *PostgresRepository[T, P]) ListActive(context context.Context, query string) ([]T, error) {
	query = strings.TrimSpace(query)
	if query == "" || len(repository.table.SearchColumns) == 0 {
		return repository.collect(context, "list_active", repository.table.listActiveSQL(false))
	}
	pattern := "%" + likeEscaper.Replace(query) + "%"
	return repository.collect(context, "search_active", repository.table.listActiveSQL(true), pattern)
}

// ListTrashed implements [Repository].
func (repository *PostgresRepository[T, P]) ListTrashed(context context.Context) ([]T, error) {
	return repository.collect(context, "list_trashed", repository.table.listTrashedSQL())
}

// Get implements [Repository].
func (repository *PostgresRepository[T, P]) Get(context context.Context, id string) (T, error) {
	return repository.one(context, "get", repository.table.getSQL(), id)
}

// Insert implements [Repository].
func (repository *PostgresRepository[T, P]) Insert(context context.Context, id string, payload P) (T, error) {
	flag := pointer.Fallback(payload.FlagInput(), repository.table.FlagDefault)
	arguments := append([]any{id, payload.RequiredValue(), flag}, repository.table.Values(payload)...)
	return repository.one(context, "insert", repository.table.insertSQL(), arguments...)
}

// Update implements [Repository].
func (repository *PostgresRepository[T, P]) Update(context context.Context, id string, payload P) (T, error) {
	var required *string
	if value := payload.RequiredValue(); value != "" {
		required = &value
	}
	arguments := append([]any{id, required, payload.FlagInput()}, repository.table.Values(payload)...)
	return repository.one(context, "update", repository.table.updateSQL(), arguments...)
}

// Duplicate implements [Repository].
func (repository *PostgresRepository[T, P]) Duplicate(context context.Context, sourceID, newID string) (T, error) {
	arguments := []any{sourceID, newID, constants.CopyNameSuffix}
	if repository.table.Slug != "" {
		arguments = append(arguments, constants.CopySlugSuffix)
	}
	return repository.one(context, "duplicate", repository.table.duplicateSQL(), arguments...)
}

// SoftDelete implements [Repository].
func (repository *PostgresRepository[T, P]) SoftDelete(context context.Context, id string) error {
	return repository.exec(context, "soft_delete", repository.table.softDeleteSQL(), id)
}

// Restore implements [Repository].
func (repository *PostgresRepository[T, P]) Restore(context context.Context, id string) (T, error) {
	return repository.one(context, "restore", repository.table.restoreSQL(), id)
}

// SetFlag implements [Repository].
func (repository *PostgresRepository[T, P]) SetFlag(context context.Context, id string, value bool) (T, error) {
	return repository.one(context, "set_flag", repository.table.setFlagSQL(), id, value)
}

// SetDisplayOrder implements [Repository].
func (repository *PostgresRepository[T, P]) SetDisplayOrder(context context.Context, id string, position int) error {
	if _, err := repository.db.Exec(context, repository.table.setDisplayOrderSQL(), id, position); err != nil {
		return repository.wrap(err, "set_display_order")
	}
	return nil
}

// HardDelete implements [Repository].
func (repository *PostgresRepository[T, P]) HardDelete(context context.Context, id string) error {
	return repository.exec(context, "hard_delete", repository.table.hardDeleteSQL(), id)
}

// # Helpers

// one runs a single-row statement and scans the result.
func (repository *PostgresRepository[T, P]) one(context context.Context, action, query string, arguments ...any) (T, error) {
	record, err := repository.table.Scan(repository.db.QueryRow(context, query, arguments...))
	if err != nil {
		var zero T
		return zero, repository.wrap(err, action)
	}
	return record, nil
}

// collect runs a multi-row statement and scans every row.
func (repository *PostgresRepository[T, P]) collect(context context.Context, action, query string, arguments ...any) ([]T, error) {
	rows, err := repository.db.Query(context, query, arguments...)
	if err != nil {
		return nil, repository.wrap(err, action)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		record, err := repository.table.Scan(rows)
		if err != nil {
			return nil, repository.wrap(err, action)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.wrap(err, action)
	}
	return records, nil
}

// exec runs a statement that must touch exactly the addressed row.
func (repository *PostgresRepository[T, P]) exec(context context.Context, action, query string, arguments ...any) error {
	tag, err := repository.db.Exec(context, query, arguments...)
	if err != nil {
		return repository.wrap(err, action)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(repository.table.Label)
	}
	return nil
}

func (repository *PostgresRepository[T, P]) wrap(err error, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(repository.table.Label)
	}
	return dberr.Wrap(err, strings.ToLower(repository.table.Label)+"_"+action)
}
