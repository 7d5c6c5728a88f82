// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package resource

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/backlist/internal/platform/request"
	"github.com/taibuivan/backlist/internal/platform/respond"
	"github.com/taibuivan/backlist/internal/platform/validate"
)

// # Definitions & Constructors

// Handler exposes a [Service] as the admin boundary of one resource.
//
// Each lifecycle command has its own route instead of one endpoint that
// guesses the command from the shape of the body.
type Handler[T Entity, P Payload[P]] struct {
	service    *Service[T, P]
	searchable bool
}

// NewHandler constructs a [Handler]. Searchable enables the ?q= filter.
func NewHandler[T Entity, P Payload[P]](service *Service[T, P], searchable bool) *Handler[T, P] {
	return &Handler[T, P]{service: service, searchable: searchable}
}

// Routes returns a [chi.Router] with the lifecycle routes.
//
// # Endpoints
//   - GET    /             : Active list (?deleted=true for trash, ?q= for search)
//   - POST   /             : Create
//   - PUT    /order        : Reorder
//   - GET    /{id}         : Get
//   - PUT    /{id}         : Update
//   - DELETE /{id}         : Soft delete (?hard=true where allowed)
//   - POST   /{id}/copy    : Duplicate
//   - POST   /{id}/restore : Restore
//   - PATCH  /{id}/flag    : Set flag
func (handler *Handler[T, P]) Routes() chi.Router {
	router := chi.NewRouter()
	handler.Register(router)
	return router
}

// Register mounts the lifecycle routes on router.
func (handler *Handler[T, P]) Register(router chi.Router) {
	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Put("/order", handler.reorder)
	router.Get("/{id}", handler.get)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)
	router.Post("/{id}/copy", handler.duplicate)
	router.Post("/{id}/restore", handler.restore)
	router.Patch("/{id}/flag", handler.toggleFlag)
}

// # Request Payloads

type flagRequest struct {
	Value *bool `json:"value"`
}

type reorderRequest struct {
	IDs []string `json:"ids"`
}

// # Handlers

/*
list returns the active or trashed records.

GET /api/admin/{resource}?deleted=true&q=

Response:
  - 200: []T
  - 503: STORE_UNAVAILABLE
*/
func (handler *Handler[T, P]) list(writer http.ResponseWriter, request *http.Request) {
	var (
		records []T
		err     error
	)

	switch {
	case requestutil.QueryBool(request, "deleted"):
		records, err = handler.service.ListTrashed(request.Context())
	case handler.searchable:
		records, err = handler.service.List(request.Context(), request.URL.Query().Get("q"))
	default:
		records, err = handler.service.List(request.Context(), "")
	}

	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, records)
}

func (handler *Handler[T, P]) get(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

/*
create inserts a new active record.

POST /api/admin/{resource}

Response:
  - 201: T
  - 400: VALIDATION_ERROR (required field missing)
*/
func (handler *Handler[T, P]) create(writer http.ResponseWriter, request *http.Request) {
	var payload P
	if err := requestutil.DecodeJSON(writer, request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Create(request.Context(), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, record)
}

/*
update overwrites an active record.

PUT /api/admin/{resource}/{id}

Response:
  - 200: T
  - 404: NOT_FOUND (absent or trashed)
*/
func (handler *Handler[T, P]) update(writer http.ResponseWriter, request *http.Request) {
	var payload P
	if err := requestutil.DecodeJSON(writer, request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler[T, P]) duplicate(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Duplicate(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, record)
}

func (handler *Handler[T, P]) restore(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Restore(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

/*
toggleFlag stores an explicit flag value.

PATCH /api/admin/{resource}/{id}/flag

Request:
  - Body: {"value": bool}

Response:
  - 200: T
  - 400: VALIDATION_ERROR (value missing)
  - 404: NOT_FOUND
*/
func (handler *Handler[T, P]) toggleFlag(writer http.ResponseWriter, request *http.Request) {
	var body flagRequest
	if err := requestutil.DecodeJSON(writer, request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if body.Value == nil {
		respond.Error(writer, request, validate.RequiredError("value", "This field is required"))
		return
	}

	record, err := handler.service.ToggleFlag(request.Context(), requestutil.ID(request, "id"), *body.Value)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

/*
reorder assigns display positions from the order of ids.

PUT /api/admin/{resource}/order

Request:
  - Body: {"ids": [string]}

Response:
  - 204
  - 400: VALIDATION_ERROR (ids missing)
*/
func (handler *Handler[T, P]) reorder(writer http.ResponseWriter, request *http.Request) {
	var body reorderRequest
	if err := requestutil.DecodeJSON(writer, request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if body.IDs == nil {
		respond.Error(writer, request, validate.RequiredError("ids", "This field is required"))
		return
	}

	if err := handler.service.Reorder(request.Context(), body.IDs); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
delete trashes a record, or removes it for good with ?hard=true where allowed.

DELETE /api/admin/{resource}/{id}

Response:
  - 204
  - 404: NOT_FOUND
*/
func (handler *Handler[T, P]) delete(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var err error
	if handler.service.AllowsHardDelete() && requestutil.QueryBool(request, "hard") {
		err = handler.service.HardDelete(request.Context(), id)
	} else {
		err = handler.service.SoftDelete(request.Context(), id)
	}

	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
