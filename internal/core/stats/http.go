// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/selfhosthub/internal/platform/respond"
)

// Handler implements the statistics HTTP endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the stats endpoint.
//
// # Endpoints
//   - GET / : The catalog aggregate {guides, categories, technologies}.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.get)

	return router
}

// get handles GET /stats.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Get(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}
