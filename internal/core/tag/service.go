package tag

import (
	"log/slog"

	"github.com/taibuivan/backlist/internal/core/resource"
)

// Service implements the tag lifecycle.
type Service = resource.Service[*Tag, Payload]

// NewService constructs the tag [Service]. invalidator may be nil.
func NewService(repository Repository, invalidator resource.Invalidator, logger *slog.Logger) *Service {
	return resource.NewService(repository, resource.Options{
		Label:         Table.Label,
		RequiredField: "name",
		Invalidator:   invalidator,
	}, logger)
}
