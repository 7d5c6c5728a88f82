// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/backlist/internal/platform/request"
	"github.com/taibuivan/backlist/internal/platform/respond"
)

// Handler serves the public catalog and the admin dashboard counters.
type Handler struct {
	service *Service
}

// NewHandler constructs the catalog [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes returns the read-only catalog routes.
//
// # Endpoints
//   - GET /books/featured  : Featured shelf
//   - GET /books/{id}      : Book with purchase links
//   - GET /topics          : Topics grouped by type
//   - GET /topics/{slug}   : Topic with books
//   - GET /curators        : Curators
//   - GET /curators/{slug} : Curator with curations and books
func (handler *Handler) PublicRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/books/featured", handler.featuredBooks)
	router.Get("/books/{id}", handler.book)
	router.Get("/topics", handler.topics)
	router.Get("/topics/{slug}", handler.topic)
	router.Get("/curators", handler.curators)
	router.Get("/curators/{slug}", handler.curator)

	return router
}

func (handler *Handler) featuredBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.FeaturedBooks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

/*
book returns an active book with its purchase links.

GET /api/books/{id}

Response:
  - 200: BookDetail
  - 404: NOT_FOUND (unknown, trashed or malformed id)
*/
func (handler *Handler) book(writer http.ResponseWriter, request *http.Request) {
	book, err := handler.service.Book(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, book)
}

func (handler *Handler) topics(writer http.ResponseWriter, request *http.Request) {
	groups, err := handler.service.Topics(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, groups)
}

func (handler *Handler) topic(writer http.ResponseWriter, request *http.Request) {
	topic, err := handler.service.Topic(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, topic)
}

func (handler *Handler) curators(writer http.ResponseWriter, request *http.Request) {
	curators, err := handler.service.Curators(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, curators)
}

func (handler *Handler) curator(writer http.ResponseWriter, request *http.Request) {
	curator, err := handler.service.Curator(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, curator)
}

/*
Stats returns the dashboard counters.

GET /api/admin/stats

Response:
  - 200: Stats
  - 401: UNAUTHORIZED
*/
func (handler *Handler) Stats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Stats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}
