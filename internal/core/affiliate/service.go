package affiliate

import (
	"log/slog"

	"github.com/taibuivan/backlist/internal/core/resource"
)

// Service implements the affiliate lifecycle.
type Service = resource.Service[*Affiliate, Payload]

// NewService constructs the affiliate [Service]. invalidator may be nil.
func NewService(repository Repository, invalidator resource.Invalidator, logger *slog.Logger) *Service {
	return resource.NewService(repository, resource.Options{
		Label:         Table.Label,
		RequiredField: "name",
		Invalidator:   invalidator,
	}, logger)
}

// Handler serves the admin affiliate routes.
type Handler = resource.Handler[*Affiliate, Payload]

// NewHandler constructs the affiliate [Handler].
func NewHandler(service *Service) *Handler {
	return resource.NewHandler(service, false)
}
