package seed_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/backlist/internal/core/affiliate"
	"github.com/taibuivan/backlist/internal/core/book"
	"github.com/taibuivan/backlist/internal/core/curator"
	"github.com/taibuivan/backlist/internal/core/tag"
	"github.com/taibuivan/backlist/internal/seed"
)

const document = `
tags:
  - key: krimi
    name: Krimi
    tag_type: genre
    visible: true
  - key: klassiker
    name: Klassiker
curators:
  - name: Lea Buch
    slug: lea
affiliates:
  - name: Buchladen
    link_template: https://buchladen.example/isbn/{isbn13}
books:
  - title: Der Process
    author: Kafka, Franz
    isbn13: "9783150096767"
    year: 1925
    tags: [krimi, klassiker]
  - title: Kassandra
`

// # Fakes

type recorder[T any, P any] struct {
	payloads []P
	build    func(id string, payload P) T
	failOn   int
}

func (r *recorder[T, P]) Create(_ context.Context, payload P) (T, error) {
	r.payloads = append(r.payloads, payload)
	if r.failOn > 0 && len(r.payloads) == r.failOn {
		var zero T
		return zero, errors.New("insert failed")
	}
	return r.build(fmt.Sprintf("id-%d", len(r.payloads)), payload), nil
}

type links struct{ pairs [][2]string }

func (l *links) AttachTag(_ context.Context, bookID, tagID string) error {
	l.pairs = append(l.pairs, [2]string{bookID, tagID})
	return nil
}

type fixture struct {
	tags       *recorder[*tag.Tag, tag.Payload]
	curators   *recorder[*curator.Curator, curator.Payload]
	affiliates *recorder[*affiliate.Affiliate, affiliate.Payload]
	books      *recorder[*book.Book, book.Payload]
	links      *links
	importer   *seed.Importer
}

func newFixture() *fixture {
	f := &fixture{
		tags:       &recorder[*tag.Tag, tag.Payload]{build: func(id string, p tag.Payload) *tag.Tag { return &tag.Tag{ID: "tag-" + id, Name: p.Name} }},
		curators:   &recorder[*curator.Curator, curator.Payload]{build: func(id string, p curator.Payload) *curator.Curator { return &curator.Curator{ID: id, Name: p.Name} }},
		affiliates: &recorder[*affiliate.Affiliate, affiliate.Payload]{build: func(id string, p affiliate.Payload) *affiliate.Affiliate { return &affiliate.Affiliate{ID: id, Name: p.Name} }},
		books:      &recorder[*book.Book, book.Payload]{build: func(id string, p book.Payload) *book.Book { return &book.Book{ID: "book-" + id, Title: p.Title} }},
		links:      &links{},
	}
	f.importer = seed.NewImporter(seed.Services{
		Tags:       f.tags,
		Curators:   f.curators,
		Affiliates: f.affiliates,
		Books:      f.books,
		Links:      f.links,
	}, nil)
	return f
}

// # Tests

/*
TestParse verifies the document layout and inline payload fields.
*/
func TestParse(t *testing.T) {
	catalog, err := seed.Parse([]byte(document))
	require.NoError(t, err)

	require.Len(t, catalog.Tags, 2)
	assert.Equal(t, "krimi", catalog.Tags[0].Key)
	assert.Equal(t, "Krimi", catalog.Tags[0].Name)
	assert.Equal(t, "genre", *catalog.Tags[0].TagType)
	assert.True(t, *catalog.Tags[0].Visible)

	require.Len(t, catalog.Books, 2)
	assert.Equal(t, 1925, *catalog.Books[0].Year)
	assert.Equal(t, []string{"krimi", "klassiker"}, catalog.Books[0].Tags)
	assert.Equal(t, "https://buchladen.example/isbn/{isbn13}", *catalog.Affiliates[0].LinkTemplate)

	_, err = seed.Parse([]byte("books:\n  - titel: Tippfehler\n"))
	assert.Error(t, err)
}

/*
TestLoad verifies reading from disk.
*/
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))

	catalog, err := seed.Load(path)
	require.NoError(t, err)
	assert.Len(t, catalog.Curators, 1)

	_, err = seed.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

/*
TestCatalog_Check verifies key and reference checks.
*/
func TestCatalog_Check(t *testing.T) {
	cases := []struct {
		name    string
		catalog seed.Catalog
		message string
	}{
		{"MissingKey", seed.Catalog{Tags: []seed.Tag{{Payload: tag.Payload{Name: "Krimi"}}}}, "has no key"},
		{"DuplicateKey", seed.Catalog{Tags: []seed.Tag{{Key: "a"}, {Key: "a"}}}, `duplicate tag key "a"`},
		{"UnknownReference", seed.Catalog{Books: []seed.Book{{Payload: book.Payload{Title: "X"}, Tags: []string{"lyrik"}}}}, `unknown tag "lyrik"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorContains(t, tc.catalog.Check(), tc.message)
		})
	}
}

/*
TestImporter_Import verifies creation order, counts and tag links.
*/
func TestImporter_Import(t *testing.T) {
	catalog, err := seed.Parse([]byte(document))
	require.NoError(t, err)
	f := newFixture()

	report, err := f.importer.Import(context.Background(), catalog)
	require.NoError(t, err)

	assert.Equal(t, seed.Report{Tags: 2, Curators: 1, Affiliates: 1, Books: 2, Links: 2}, report)
	assert.Equal(t, [][2]string{{"book-id-1", "tag-id-1"}, {"book-id-1", "tag-id-2"}}, f.links.pairs)
	assert.Equal(t, "Kafka, Franz", *f.books.payloads[0].Author)
}

/*
TestImporter_UnknownTagCreatesNothing verifies that references are checked first.
*/
func TestImporter_UnknownTagCreatesNothing(t *testing.T) {
	f := newFixture()
	catalog := &seed.Catalog{
		Tags:  []seed.Tag{{Key: "krimi", Payload: tag.Payload{Name: "Krimi"}}},
		Books: []seed.Book{{Payload: book.Payload{Title: "X"}, Tags: []string{"lyrik"}}},
	}

	_, err := f.importer.Import(context.Background(), catalog)
	require.Error(t, err)
	assert.Empty(t, f.tags.payloads)
	assert.Empty(t, f.books.payloads)
}

/*
TestImporter_StopsOnFailure verifies that the report reflects what was created.
*/
func TestImporter_StopsOnFailure(t *testing.T) {
	catalog, err := seed.Parse([]byte(document))
	require.NoError(t, err)
	f := newFixture()
	f.books.failOn = 2

	report, err := f.importer.Import(context.Background(), catalog)
	assert.ErrorContains(t, err, `book "Kassandra"`)
	assert.Equal(t, 1, report.Books)
	assert.Equal(t, 2, report.Links)
}
