// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"slices"

	"github.com/taibuivan/backlist/internal/core/tag"
	"github.com/taibuivan/backlist/internal/platform/apperr"
	"github.com/taibuivan/backlist/internal/platform/constants"
	"github.com/taibuivan/backlist/internal/platform/ctxutil"
	"github.com/taibuivan/backlist/internal/platform/validate"
	"github.com/taibuivan/backlist/pkg/slice"
)

// Cache keys, relative to the catalog prefix.
const (
	keyFeatured = "books:featured"
	keyBook     = "books:"
	keyTopics   = "topics"
	keyTopic    = "topics:"
	keyCurators = "curators"
	keyCurator  = "curators:"
)

// Service assembles public catalog views.
type Service struct {
	repository Repository
	cache      Cache
	logger     *slog.Logger
}

// NewService creates the catalog service. cache may be nil.
func NewService(repository Repository, cache Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repository: repository, cache: cache, logger: logger}
}

// FeaturedBooks returns the featured shelf.
func (service *Service) FeaturedBooks(context context.Context) ([]*BookCard, error) {
	return readThrough(context, service, keyFeatured, func() ([]*BookCard, error) {
		books, err := service.repository.FeaturedBooks(context, constants.FeaturedBookLimit)
		if err != nil {
			return nil, err
		}
		return formatCards(books), nil
	})
}

// Book returns an active book with the purchase links of every active shop.
func (service *Service) Book(context context.Context, id string) (*BookDetail, error) {
	if !validate.IsUUID(id) {
		return nil, apperr.NotFound("Book")
	}

	return readThrough(context, service, keyBook+id, func() (*BookDetail, error) {
		book, err := service.repository.Book(context, id)
		if err != nil {
			return nil, err
		}

		shops, err := service.repository.ShopAffiliates(context)
		if err != nil {
			return nil, err
		}

		book.Author = FormatAuthor(book.Author)
		book.Links = make([]PurchaseLink, 0, len(shops))
		for _, shop := range shops {
			url, ok := shop.Link(book.ISBN13)
			if !ok {
				continue
			}
			book.Links = append(book.Links, PurchaseLink{Affiliate: shop.Name, Slug: shop.Slug, URL: url})
		}
		return book, nil
	})
}

// Topics returns visible topics grouped by tag type. Groups follow the fixed
// presentation order, untyped topics come last and empty groups are left out.
func (service *Service) Topics(context context.Context) ([]*TopicGroup, error) {
	return readThrough(context, service, keyTopics, func() ([]*TopicGroup, error) {
		topics, err := service.repository.Topics(context)
		if err != nil {
			return nil, err
		}
		return groupTopics(topics), nil
	})
}

// Topic returns a topic by slug with its best-scored books.
func (service *Service) Topic(context context.Context, slug string) (*TopicDetail, error) {
	return readThrough(context, service, keyTopic+slug, func() (*TopicDetail, error) {
		topic, err := service.repository.Topic(context, slug)
		if err != nil {
			return nil, err
		}

		books, err := service.repository.TopicBooks(context, topic.ID, constants.TopicBookLimit)
		if err != nil {
			return nil, err
		}
		return &TopicDetail{Topic: topic, Books: formatCards(books)}, nil
	})
}

// Curators returns the visible curators.
func (service *Service) Curators(context context.Context) ([]*Curator, error) {
	return readThrough(context, service, keyCurators, func() ([]*Curator, error) {
		return service.repository.Curators(context)
	})
}

// Curator returns a curator by slug with their published curations and books.
func (service *Service) Curator(context context.Context, slug string) (*CuratorDetail, error) {
	return readThrough(context, service, keyCurator+slug, func() (*CuratorDetail, error) {
		curator, err := service.repository.Curator(context, slug)
		if err != nil {
			return nil, err
		}

		curations, err := service.repository.Curations(context, curator.ID)
		if err != nil {
			return nil, err
		}

		books, err := service.repository.CuratorBooks(context, curator.ID, constants.CuratorBookLimit)
		if err != nil {
			return nil, err
		}
		return &CuratorDetail{Curator: curator, Curations: curations, Books: formatCards(books)}, nil
	})
}

// Stats returns the dashboard counters. They are never cached.
func (service *Service) Stats(context context.Context) (*Stats, error) {
	return service.repository.Stats(context)
}

// Invalidate drops all cached catalog views.
func (service *Service) Invalidate(context context.Context) error {
	if service.cache == nil {
		return nil
	}
	return service.cache.Invalidate(context)
}

// # Helpers

// readThrough serves key from the cache or loads and stores it. Cache failures
// are logged and never fail the request.
func readThrough[V any](context context.Context, service *Service, key string, load func() (V, error)) (V, error) {
	if service.cache == nil {
		return load()
	}

	logger := service.logger.With(slog.String("request_id", ctxutil.GetRequestID(context)), slog.String("key", key))

	var cached V
	hit, err := service.cache.Get(context, key, &cached)
	if err != nil {
		logger.WarnContext(context, "catalog_cache_read_failed", slog.Any("error", err))
	} else if hit {
		return cached, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if err := service.cache.Set(context, key, value); err != nil {
		logger.WarnContext(context, "catalog_cache_write_failed", slog.Any("error", err))
	}
	return value, nil
}

func formatCards(books []*BookCard) []*BookCard {
	for _, book := range books {
		book.Author = FormatAuthor(book.Author)
	}
	return books
}

func groupTopics(topics []*Topic) []*TopicGroup {
	byType := slice.GroupBy(topics, func(topic *Topic) string { return tag.GroupOf(topic.TagType).Type })

	groups := make([]*TopicGroup, 0, len(byType))
	for _, group := range append(slices.Clip(tag.Groups), tag.OtherGroup) {
		if members, ok := byType[group.Type]; ok {
			groups = append(groups, &TopicGroup{Type: group.Type, Label: group.Label, Topics: members})
		}
	}
	return groups
}
