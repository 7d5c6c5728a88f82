package console

import (
	"context"

	"github.com/taibuivan/backlist/internal/core/resource"
)

// Remote is the admin API of one resource as seen by the console.
type Remote[T resource.Entity] interface {
	List(context context.Context, query string) ([]T, error)
	ListTrashed(context context.Context) ([]T, error)
	Create(context context.Context, payload map[string]any) (T, error)
	Update(context context.Context, id string, payload map[string]any) (T, error)
	Duplicate(context context.Context, id string) (T, error)
	Reorder(context context.Context, ids []string) error
	Restore(context context.Context, id string) (T, error)
	SetFlag(context context.Context, id string, value bool) (T, error)
	SoftDelete(context context.Context, id string) error
}
