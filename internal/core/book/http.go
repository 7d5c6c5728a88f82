package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/backlist/internal/core/resource"
	requestutil "github.com/taibuivan/backlist/internal/platform/request"
	"github.com/taibuivan/backlist/internal/platform/respond"
)

// Handler serves the admin book routes.
type Handler struct {
	service   *Service
	lifecycle *resource.Handler[*Book, Payload]
}

// NewHandler constructs a book [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		lifecycle: resource.NewHandler(service.Service, true),
	}
}

// Routes returns the lifecycle routes plus the tag link routes.
//
// # Endpoints
//   - GET    /{id}/tags         : Live tag links
//   - PUT    /{id}/tags/{tagID} : Attach
//   - DELETE /{id}/tags/{tagID} : Detach
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.lifecycle.Register(router)

	router.Get("/{id}/tags", handler.listTags)
	router.Put("/{id}/tags/{tagID}", handler.attachTag)
	router.Delete("/{id}/tags/{tagID}", handler.detachTag)

	return router
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	links, err := handler.service.ListTags(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, links)
}

/*
attachTag links a tag to a book, reviving a detached link.

PUT /api/admin/books/{id}/tags/{tagID}

Response:
  - 204
  - 404: NOT_FOUND (malformed id)
  - 422: UNPROCESSABLE (book or tag does not exist)
*/
func (handler *Handler) attachTag(writer http.ResponseWriter, request *http.Request) {
	err := handler.service.AttachTag(request.Context(), requestutil.ID(request, "id"), requestutil.ID(request, "tagID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) detachTag(writer http.ResponseWriter, request *http.Request) {
	err := handler.service.DetachTag(request.Context(), requestutil.ID(request, "id"), requestutil.ID(request, "tagID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
