// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/backlist/internal/core/affiliate"
	"github.com/taibuivan/backlist/internal/core/catalog"
	"github.com/taibuivan/backlist/internal/platform/apperr"
	"github.com/taibuivan/backlist/internal/platform/constants"
	"github.com/taibuivan/backlist/pkg/pointer"
)

const bookID = "0190a0b2-7c4e-7d2a-9f1e-0a1b2c3d4e5f"

// # Fakes

type fakeRepository struct {
	catalog.Repository

	calls     map[string]int
	limits    map[string]int
	books     map[string]*catalog.BookDetail
	shops     []*affiliate.Affiliate
	topics    []*catalog.Topic
	cards     []*catalog.BookCard
	curator   *catalog.Curator
	curations []*catalog.Curation
	failWith  error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{calls: make(map[string]int), limits: make(map[string]int), books: make(map[string]*catalog.BookDetail)}
}

func (repository *fakeRepository) FeaturedBooks(_ context.Context, limit int) ([]*catalog.BookCard, error) {
	repository.calls["featured"]++
	repository.limits["featured"] = limit
	if repository.failWith != nil {
		return nil, repository.failWith
	}
	return cloneCards(repository.cards), nil
}

func (repository *fakeRepository) Book(_ context.Context, id string) (*catalog.BookDetail, error) {
	repository.calls["book"]++
	book, ok := repository.books[id]
	if !ok {
		return nil, apperr.NotFound("Book")
	}
	clone := *book
	return &clone, nil
}

func (repository *fakeRepository) ShopAffiliates(context.Context) ([]*affiliate.Affiliate, error) {
	return repository.shops, nil
}

func (repository *fakeRepository) Topics(context.Context) ([]*catalog.Topic, error) {
	repository.calls["topics"]++
	return repository.topics, nil
}

func (repository *fakeRepository) Topic(_ context.Context, slug string) (*catalog.Topic, error) {
	for _, topic := range repository.topics {
		if topic.Slug != nil && *topic.Slug == slug {
			return topic, nil
		}
	}
	return nil, apperr.NotFound("Topic")
}

func (repository *fakeRepository) TopicBooks(_ context.Context, _ string, limit int) ([]*catalog.BookCard, error) {
	repository.limits["topic"] = limit
	return cloneCards(repository.cards), nil
}

func (repository *fakeRepository) Curator(_ context.Context, slug string) (*catalog.Curator, error) {
	if repository.curator == nil || repository.curator.Slug == nil || *repository.curator.Slug != slug {
		return nil, apperr.NotFound("Curator")
	}
	return repository.curator, nil
}

func (repository *fakeRepository) Curations(context.Context, string) ([]*catalog.Curation, error) {
	return repository.curations, nil
}

func (repository *fakeRepository) CuratorBooks(_ context.Context, _ string, limit int) ([]*catalog.BookCard, error) {
	repository.limits["curator"] = limit
	return cloneCards(repository.cards), nil
}

func (repository *fakeRepository) Stats(context.Context) (*catalog.Stats, error) {
	repository.calls["stats"]++
	return &catalog.Stats{Books: 3, Featured: 1, Tags: 4, Affiliates: 2, Curators: 1}, nil
}

func cloneCards(cards []*catalog.BookCard) []*catalog.BookCard {
	clones := make([]*catalog.BookCard, 0, len(cards))
	for _, card := range cards {
		clone := *card
		clones = append(clones, &clone)
	}
	return clones
}

// memoryCache stores JSON like the Redis cache does.
type memoryCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	failWith    error
	invalidated int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (cache *memoryCache) Get(_ context.Context, key string, target any) (bool, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.failWith != nil {
		return false, cache.failWith
	}
	raw, ok := cache.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, target)
}

func (cache *memoryCache) Set(_ context.Context, key string, value any) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.failWith != nil {
		return cache.failWith
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	cache.entries[key] = raw
	return nil
}

func (cache *memoryCache) Invalidate(context.Context) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	cache.invalidated++
	cache.entries = make(map[string][]byte)
	return nil
}

func newService(repository catalog.Repository, cache catalog.Cache) *catalog.Service {
	return catalog.NewService(repository, cache, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// # Tests

/*
TestFormatAuthor verifies that only the two-part "Last, First" form is reordered.
*/
func TestFormatAuthor(t *testing.T) {
	cases := []struct {
		raw  *string
		want *string
	}{
		{nil, nil},
		{pointer.To("Kafka, Franz"), pointer.To("Franz Kafka")},
		{pointer.To("Franz Kafka"), pointer.To("Franz Kafka")},
		{pointer.To("Mann, Thomas, Jr."), pointer.To("Mann, Thomas, Jr.")},
		{pointer.To("  Wolf ,Christa "), pointer.To("Christa Wolf")},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, catalog.FormatAuthor(tc.raw))
	}
}

/*
TestService_FeaturedBooks_ReadThrough verifies that the second call is served
from the cache and that invalidation forces a reload.
*/
func TestService_FeaturedBooks_ReadThrough(t *testing.T) {
	repository := newFakeRepository()
	repository.cards = []*catalog.BookCard{{ID: bookID, Title: "Der Process", Author: pointer.To("Kafka, Franz")}}
	cache := newMemoryCache()
	service := newService(repository, cache)

	first, err := service.FeaturedBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "Franz Kafka", *first[0].Author)
	assert.Equal(t, constants.FeaturedBookLimit, repository.limits["featured"])

	second, err := service.FeaturedBooks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repository.calls["featured"])

	require.NoError(t, service.Invalidate(context.Background()))
	_, err = service.FeaturedBooks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repository.calls["featured"])
}

/*
TestService_CacheFailure verifies that an unreachable cache never fails a read.
*/
func TestService_CacheFailure(t *testing.T) {
	repository := newFakeRepository()
	cache := newMemoryCache()
	cache.failWith = errors.New("connection refused")
	service := newService(repository, cache)

	books, err := service.FeaturedBooks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, books)

	_, err = service.FeaturedBooks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repository.calls["featured"])
}

/*
TestService_LoadErrorIsNotCached verifies that failures surface and are retried.
*/
func TestService_LoadErrorIsNotCached(t *testing.T) {
	repository := newFakeRepository()
	repository.failWith = apperr.StoreUnavailable(errors.New("down"))
	cache := newMemoryCache()
	service := newService(repository, cache)

	_, err := service.FeaturedBooks(context.Background())
	assert.True(t, apperr.HasCode(err, apperr.CodeStoreUnavailable))
	assert.Empty(t, cache.entries)
}

/*
TestService_Book verifies purchase links and id handling.
*/
func TestService_Book(t *testing.T) {
	repository := newFakeRepository()
	repository.books[bookID] = &catalog.BookDetail{ID: bookID, Title: "Kassandra", Author: pointer.To("Wolf, Christa"), ISBN13: pointer.To("9783518188842")}
	repository.shops = []*affiliate.Affiliate{
		{Name: "Buchladen", Slug: pointer.To("buchladen"), LinkTemplate: pointer.To("https://buchladen.example/isbn/{isbn13}")},
		{Name: "Ohne Vorlage"},
	}
	service := newService(repository, nil)

	t.Run("Links", func(t *testing.T) {
		book, err := service.Book(context.Background(), bookID)
		require.NoError(t, err)
		assert.Equal(t, "Christa Wolf", *book.Author)
		require.Len(t, book.Links, 1)
		assert.Equal(t, "https://buchladen.example/isbn/9783518188842", book.Links[0].URL)
		assert.Equal(t, "Buchladen", book.Links[0].Affiliate)
	})

	t.Run("NoISBN", func(t *testing.T) {
		repository.books[bookID].ISBN13 = nil
		book, err := service.Book(context.Background(), bookID)
		require.NoError(t, err)
		assert.NotNil(t, book.Links)
		assert.Empty(t, book.Links)
	})

	t.Run("MalformedID", func(t *testing.T) {
		calls := repository.calls["book"]
		_, err := service.Book(context.Background(), "not-a-uuid")
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
		assert.Equal(t, calls, repository.calls["book"])
	})
}

/*
TestService_Topics verifies group order, the trailing "sonstige" group and
that empty groups are left out.
*/
func TestService_Topics(t *testing.T) {
	repository := newFakeRepository()
	repository.topics = []*catalog.Topic{
		{ID: "1", Name: "Krimi", TagType: pointer.To("genre"), BookCount: 9},
		{ID: "2", Name: "Ohne Typ", BookCount: 5},
		{ID: "3", Name: "Klima", TagType: pointer.To("topic"), BookCount: 4},
		{ID: "4", Name: "Roman", TagType: pointer.To("genre"), BookCount: 2},
		{ID: "5", Name: "Unbekannt", TagType: pointer.To("mystery"), BookCount: 1},
	}
	service := newService(repository, nil)

	groups, err := service.Topics(context.Background())
	require.NoError(t, err)

	var types []string
	for _, group := range groups {
		types = append(types, group.Type)
	}
	assert.Equal(t, []string{"topic", "genre", "sonstige"}, types)
	assert.Equal(t, "Themen", groups[0].Label)
	require.Len(t, groups[1].Topics, 2)
	assert.Equal(t, "Krimi", groups[1].Topics[0].Name)
	assert.Len(t, groups[2].Topics, 2)
}

/*
TestService_TopicAndCurator verifies the detail views and their book caps.
*/
func TestService_TopicAndCurator(t *testing.T) {
	repository := newFakeRepository()
	repository.topics = []*catalog.Topic{{ID: "t1", Name: "Krimi", Slug: pointer.To("krimi")}}
	repository.cards = []*catalog.BookCard{{ID: bookID, Title: "Tod auf dem Nil", Author: pointer.To("Christie, Agatha")}}
	repository.curator = &catalog.Curator{ID: "c1", Name: "Lea", Slug: pointer.To("lea")}
	repository.curations = []*catalog.Curation{{ID: "k1", Title: "Sommerkrimis"}}
	service := newService(repository, newMemoryCache())

	topic, err := service.Topic(context.Background(), "krimi")
	require.NoError(t, err)
	assert.Equal(t, "Krimi", topic.Topic.Name)
	assert.Equal(t, "Agatha Christie", *topic.Books[0].Author)
	assert.Equal(t, constants.TopicBookLimit, repository.limits["topic"])

	curator, err := service.Curator(context.Background(), "lea")
	require.NoError(t, err)
	assert.Equal(t, "Sommerkrimis", curator.Curations[0].Title)
	assert.Equal(t, "Agatha Christie", *curator.Books[0].Author)
	assert.Equal(t, constants.CuratorBookLimit, repository.limits["curator"])

	_, err = service.Topic(context.Background(), "unbekannt")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	_, err = service.Curator(context.Background(), "unbekannt")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestHandler verifies the public routes and the stats handler.
*/
func TestHandler(t *testing.T) {
	repository := newFakeRepository()
	repository.books[bookID] = &catalog.BookDetail{ID: bookID, Title: "Kassandra"}
	handler := catalog.NewHandler(newService(repository, newMemoryCache()))
	router := handler.PublicRoutes()

	cases := []struct {
		name   string
		target string
		status int
		body   string
	}{
		{"Featured", "/books/featured", http.StatusOK, `{"data":[]}`},
		{"Book", "/books/" + bookID, http.StatusOK, `"title":"Kassandra"`},
		{"UnknownBook", "/books/0190a0b2-7c4e-7d2a-9f1e-000000000000", http.StatusNotFound, `"code":"NOT_FOUND"`},
		{"Topics", "/topics", http.StatusOK, `{"data":[]}`},
		{"UnknownCurator", "/curators/niemand", http.StatusNotFound, `"error":"Curator not found"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tc.target, nil))
			assert.Equal(t, tc.status, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tc.body)
		})
	}

	t.Run("Stats", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.Stats(recorder, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"data":{"books":3,"featured":1,"tags":4,"affiliates":2,"curators":1}}`, recorder.Body.String())
	})
}
