package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/backlist/internal/core/affiliate"
	"github.com/taibuivan/backlist/internal/platform/apperr"
	"github.com/taibuivan/backlist/internal/platform/database/schema"
	"github.com/taibuivan/backlist/internal/platform/dberr"
	"github.com/taibuivan/backlist/internal/platform/postgres"
)

// listableBook restricts b to books the public site may show.
const listableBook = `b.deleted_at IS NULL
	AND (b.isbn13 LIKE '978%' OR b.isbn13 LIKE '979%')
	AND b.cover_url IS NOT NULL AND b.cover_url <> ''`

const (
	featuredBooksQuery = `
		SELECT b.id, b.title, b.author, b.cover_url
		FROM books b
		WHERE ` + listableBook + `
		ORDER BY b.total_score DESC, b.title ASC
		LIMIT $1`

	bookQuery = `
		SELECT id, title, author, publisher, cover_url, description, price, isbn13, language, availability
		FROM books
		WHERE id = $1 AND deleted_at IS NULL`

	topicColumns = `t.id, t.name, t.slug, t.tag_type, t.description, t.color, COUNT(bt.book_id)::int`

	topicsQuery = `
		SELECT ` + topicColumns + `
		FROM tags t
		LEFT JOIN book_tags bt ON bt.tag_id = t.id AND bt.deleted_at IS NULL
		WHERE t.deleted_at IS NULL AND t.visible = TRUE
		GROUP BY t.id
		ORDER BY COUNT(bt.book_id) DESC, t.name ASC`

	topicQuery = `
		SELECT ` + topicColumns + `
		FROM tags t
		LEFT JOIN book_tags bt ON bt.tag_id = t.id AND bt.deleted_at IS NULL
		WHERE t.slug = $1 AND t.deleted_at IS NULL
		GROUP BY t.id
		LIMIT 1`

	topicBooksQuery = `
		SELECT b.id, b.title, b.author, b.cover_url
		FROM books b
		JOIN book_tags bt ON bt.book_id = b.id
		WHERE bt.tag_id = $1 AND bt.deleted_at IS NULL
			AND ` + listableBook + `
		ORDER BY b.total_score DESC, b.title ASC
		LIMIT $2`

	curatorColumns = `id, name, slug, bio, avatar_url, focus, website_url, instagram_url, podcast_url`

	curatorsQuery = `
		SELECT ` + curatorColumns + `
		FROM curators
		WHERE deleted_at IS NULL AND visible = TRUE
		ORDER BY display_order ASC NULLS LAST, name ASC`

	curatorQuery = `
		SELECT ` + curatorColumns + `
		FROM curators
		WHERE slug = $1 AND deleted_at IS NULL AND visible = TRUE
		LIMIT 1`

	curationsQuery = `
		SELECT id, title, rationale
		FROM curations
		WHERE curator_id = $1 AND deleted_at IS NULL AND status = 'published'
		ORDER BY sort_order ASC, created_at ASC`

	curatorBooksQuery = `
		SELECT b.id, b.title, b.author, b.cover_url
		FROM books b
		JOIN curation_books cb ON cb.book_id = b.id AND cb.deleted_at IS NULL
		JOIN curations cu ON cu.id = cb.curation_id AND cu.deleted_at IS NULL
		WHERE cu.curator_id = $1
			AND ` + listableBook + `
		GROUP BY b.id
		ORDER BY MIN(cb.sort_order) ASC, b.title ASC
		LIMIT $2`

	statsQuery = `
		SELECT
			(SELECT COUNT(*) FROM books b WHERE b.deleted_at IS NULL AND (b.isbn13 LIKE '978%' OR b.isbn13 LIKE '979%')),
			(SELECT COUNT(*) FROM books WHERE deleted_at IS NULL AND is_featured = TRUE),
			(SELECT COUNT(*) FROM tags WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM affiliates WHERE deleted_at IS NULL AND is_active = TRUE),
			(SELECT COUNT(*) FROM curators WHERE deleted_at IS NULL AND visible = TRUE)`
)

// PostgresRepository implements [Repository] with pgx.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository creates the catalog repository over db.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FeaturedBooks implements [Repository].
func (repository *PostgresRepository) FeaturedBooks(context context.Context, limit int) ([]*BookCard, error) {
	return repository.bookCards(context, "catalog_featured_books", featuredBooksQuery, limit)
}

// Book implements [Repository].
func (repository *PostgresRepository) Book(context context.Context, id string) (*BookDetail, error) {
	b := &BookDetail{}
	err := repository.db.QueryRow(context, bookQuery, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.Publisher, &b.CoverURL, &b.Description,
		&b.Price, &b.ISBN13, &b.Language, &b.Availability,
	)
	if err != nil {
		return nil, notFound(err, "Book", "catalog_book")
	}
	return b, nil
}

// ShopAffiliates implements [Repository].
func (repository *PostgresRepository) ShopAffiliates(context context.Context) ([]*affiliate.Affiliate, error) {
	a := schema.Affiliate
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s IS NULL AND %s = TRUE ORDER BY %s ASC NULLS LAST, %s ASC`,
		strings.Join(a.Columns(), ", "), a.Table, a.DeletedAt, a.IsActive, a.DisplayOrder, a.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "catalog_affiliates")
	}
	defer rows.Close()

	affiliates := make([]*affiliate.Affiliate, 0)
	for rows.Next() {
		shop, err := affiliate.Table.Scan(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "catalog_scan_affiliate")
		}
		affiliates = append(affiliates, shop)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "catalog_affiliates")
	}
	return affiliates, nil
}

// Topics implements [Repository].
func (repository *PostgresRepository) Topics(context context.Context) ([]*Topic, error) {
	rows, err := repository.db.Query(context, topicsQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "catalog_topics")
	}
	defer rows.Close()

	topics := make([]*Topic, 0)
	for rows.Next() {
		topic, err := scanTopic(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "catalog_scan_topic")
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "catalog_topics")
	}
	return topics, nil
}

// Topic implements [Repository].
func (repository *PostgresRepository) Topic(context context.Context, slug string) (*Topic, error) {
	topic, err := scanTopic(repository.db.QueryRow(context, topicQuery, slug))
	if err != nil {
		return nil, notFound(err, "Topic", "catalog_topic")
	}
	return topic, nil
}

// TopicBooks implements [Repository].
func (repository *PostgresRepository) TopicBooks(context context.Context, tagID string, limit int) ([]*BookCard, error) {
	return repository.bookCards(context, "catalog_topic_books", topicBooksQuery, tagID, limit)
}

// Curators implements [Repository].
func (repository *PostgresRepository) Curators(context context.Context) ([]*Curator, error) {
	rows, err := repository.db.Query(context, curatorsQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "catalog_curators")
	}
	defer rows.Close()

	curators := make([]*Curator, 0)
	for rows.Next() {
		curator, err := scanCurator(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "catalog_scan_curator")
		}
		curators = append(curators, curator)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "catalog_curators")
	}
	return curators, nil
}

// Curator implements [Repository].
func (repository *PostgresRepository) Curator(context context.Context, slug string) (*Curator, error) {
	curator, err := scanCurator(repository.db.QueryRow(context, curatorQuery, slug))
	if err != nil {
		return nil, notFound(err, "Curator", "catalog_curator")
	}
	return curator, nil
}

// Curations implements [Repository].
func (repository *PostgresRepository) Curations(context context.Context, curatorID string) ([]*Curation, error) {
	rows, err := repository.db.Query(context, curationsQuery, curatorID)
	if err != nil {
		return nil, dberr.Wrap(err, "catalog_curations")
	}
	defer rows.Close()

	curations := make([]*Curation, 0)
	for rows.Next() {
		c := &Curation{}
		if err := rows.Scan(&c.ID, &c.Title, &c.Rationale); err != nil {
			return nil, dberr.Wrap(err, "catalog_scan_curation")
		}
		curations = append(curations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "catalog_curations")
	}
	return curations, nil
}

// CuratorBooks implements [Repository].
func (repository *PostgresRepository) CuratorBooks(context context.Context, curatorID string, limit int) ([]*BookCard, error) {
	return repository.bookCards(context, "catalog_curator_books", curatorBooksQuery, curatorID, limit)
}

// Stats implements [Repository].
func (repository *PostgresRepository) Stats(context context.Context) (*Stats, error) {
	s := &Stats{}
	err := repository.db.QueryRow(context, statsQuery).Scan(&s.Books, &s.Featured, &s.Tags, &s.Affiliates, &s.Curators)
	if err != nil {
		return nil, dberr.Wrap(err, "catalog_stats")
	}
	return s, nil
}

// # Helpers

func (repository *PostgresRepository) bookCards(context context.Context, action, query string, arguments ...any) ([]*BookCard, error) {
	rows, err := repository.db.Query(context, query, arguments...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	books := make([]*BookCard, 0)
	for rows.Next() {
		b := &BookCard{}
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.CoverURL); err != nil {
			return nil, dberr.Wrap(err, action)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return books, nil
}

func scanTopic(row pgx.Row) (*Topic, error) {
	t := &Topic{}
	if err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.TagType, &t.Description, &t.Color, &t.BookCount); err != nil {
		return nil, err
	}
	return t, nil
}

func scanCurator(row pgx.Row) (*Curator, error) {
	c := &Curator{}
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Bio, &c.AvatarURL, &c.Focus, &c.WebsiteURL, &c.InstagramURL, &c.PodcastURL)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// notFound labels a missing row with resource and classifies everything else.
func notFound(err error, resource, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}
	return dberr.Wrap(err, action)
}
