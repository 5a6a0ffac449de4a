// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package newsletter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/selfhosthub/internal/platform/respond"
	"github.com/taibuivan/selfhosthub/internal/platform/validate"
)

// Handler implements the newsletter HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the newsletter endpoints.
//
// # Endpoints
//   - POST /subscribe : Registers an email address (201 on success).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/subscribe", handler.subscribe)

	return router
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// subscribe handles POST /newsletter/subscribe.
//
// The address is read from the JSON body; the "email" query parameter is
// accepted as a fallback for clients of the previous API generation.
func (handler *Handler) subscribe(writer http.ResponseWriter, request *http.Request) {
	payload := subscribeRequest{}
	var decodeErr error
	if request.Body != nil {
		decodeErr = json.NewDecoder(request.Body).Decode(&payload)
		if errors.Is(decodeErr, io.EOF) {
			// An empty body is legal with the query-parameter form.
			decodeErr = nil
		}
	}
	if payload.Email == "" {
		payload.Email = request.URL.Query().Get("email")
	}

	// A broken body only matters when the query fallback cannot save the request.
	if decodeErr != nil && payload.Email == "" {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if _, err := handler.service.Subscribe(request.Context(), payload.Email); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]string{"message": "Subscription successful"})
}
