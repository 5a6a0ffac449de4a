// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package guide

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/selfhosthub/internal/platform/constants"
	"github.com/taibuivan/selfhosthub/internal/platform/respond"
	"github.com/taibuivan/selfhosthub/pkg/limits"
)

// Handler implements the guide catalog HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the guide endpoints.
//
// # Endpoints
//   - GET /featured : The single highlighted guide (404 if none).
//   - GET /latest   : Newest guides, ?limit= capped, default 2.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/featured", handler.getFeatured)
	router.Get("/latest", handler.listLatest)

	return router
}

// getFeatured handles GET /guides/featured.
func (handler *Handler) getFeatured(writer http.ResponseWriter, request *http.Request) {
	guide, err := handler.service.GetFeatured(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, guide)
}

// listLatest handles GET /guides/latest.
func (handler *Handler) listLatest(writer http.ResponseWriter, request *http.Request) {
	limit := limits.FromRequest(request, constants.DefaultLatestLimit, constants.MaxLatestLimit)

	guides, err := handler.service.ListLatest(request.Context(), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, guides)
}
