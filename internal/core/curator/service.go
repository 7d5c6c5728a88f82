package curator

import (
	"log/slog"

	"github.com/taibuivan/backlist/internal/core/resource"
)

// Service implements the curator lifecycle.
type Service = resource.Service[*Curator, Payload]

// NewService constructs the curator [Service]. invalidator may be nil.
func NewService(repository Repository, invalidator resource.Invalidator, logger *slog.Logger) *Service {
	return resource.NewService(repository, resource.Options{
		Label:         Table.Label,
		RequiredField: "name",
		Invalidator:   invalidator,
	}, logger)
}

// Handler serves the admin curator routes.
type Handler = resource.Handler[*Curator, Payload]

// NewHandler constructs the curator [Handler].
func NewHandler(service *Service) *Handler {
	return resource.NewHandler(service, false)
}
