package tag

import "github.com/taibuivan/backlist/internal/core/resource"

// Handler serves the admin tag routes.
type Handler = resource.Handler[*Tag, Payload]

// NewHandler constructs the tag [Handler]. Tags are not searchable.
func NewHandler(service *Service) *Handler {
	return resource.NewHandler(service, false)
}
