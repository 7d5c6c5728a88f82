package catalog

import (
	"context"

	"github.com/taibuivan/backlist/internal/core/affiliate"
)

// Repository reads the public catalog from the record store.
type Repository interface {
	// FeaturedBooks returns listable books by total_score, best first.
	FeaturedBooks(context context.Context, limit int) ([]*BookCard, error)
	// Book returns an active book. It fails with NotFound otherwise.
	Book(context context.Context, id string) (*BookDetail, error)
	// ShopAffiliates returns active affiliates with is_active set, in display order.
	ShopAffiliates(context context.Context) ([]*affiliate.Affiliate, error)
	// Topics returns visible active tags, most linked first.
	Topics(context context.Context) ([]*Topic, error)
	// Topic returns an active tag by slug.
	Topic(context context.Context, slug string) (*Topic, error)
	// TopicBooks returns listable books linked to tagID.
	TopicBooks(context context.Context, tagID string, limit int) ([]*BookCard, error)
	// Curators returns visible active curators in display order.
	Curators(context context.Context) ([]*Curator, error)
	// Curator returns a visible active curator by slug.
	Curator(context context.Context, slug string) (*Curator, error)
	// Curations returns the published curations of curatorID.
	Curations(context context.Context, curatorID string) ([]*Curation, error)
	// CuratorBooks returns distinct listable books from the curator's curations.
	CuratorBooks(context context.Context, curatorID string, limit int) ([]*BookCard, error)
	// Stats counts the dashboard figures.
	Stats(context context.Context) (*Stats, error)
}

// Cache stores catalog responses between admin mutations.
type Cache interface {
	// Get decodes the entry at key into target and reports whether it existed.
	Get(context context.Context, key string, target any) (bool, error)
	// Set stores value at key.
	Set(context context.Context, key string, value any) error
	// Invalidate drops every catalog entry.
	Invalidate(context context.Context) error
}
