// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package favorite

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmedina/faunatlas/internal/platform/constants"
	"github.com/rmedina/faunatlas/internal/platform/middleware"
	requestutil "github.com/rmedina/faunatlas/internal/platform/request"
	"github.com/rmedina/faunatlas/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for user bookmarks.
type Handler struct {
	service *Service
}

// NewHandler constructs a new favorite [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the favorites endpoints.
// Every route requires an authenticated caller.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listFavorites)
	router.Post("/{speciesID}", handler.addFavorite)
	router.Delete("/{speciesID}", handler.removeFavorite)

	return router
}

// # Favorites Endpoints

/*
GET /api/v1/favorites.

Description: Retrieves the caller's bookmarked species as full catalogue DTOs,
ordered by bookmark creation time. Soft-deleted species are excluded.

Response:
  - 200: []DTO: The caller's bookmarked species
  - 401: 401: ErrUnauthorized: Missing or invalid token
*/
func (handler *Handler) listFavorites(writer http.ResponseWriter, request *http.Request) {

	// Identity extraction
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	dtos, err := handler.service.ListFavorites(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, dtos)
}

/*
POST /api/v1/favorites/{speciesID}.

Description: Bookmarks a species for the caller.

Request:
  - speciesID: int (Positive integer)

Response:
  - 201: Message: Bookmark created
  - 400: 400: Validation: Identifier is not a positive integer
  - 401: 401: ErrUnauthorized: Missing or invalid token
  - 404: 404: ErrNotFound: Species absent or soft-deleted
  - 409: 409: ErrConflict: Species already bookmarked
*/
func (handler *Handler) addFavorite(writer http.ResponseWriter, request *http.Request) {

	// Identity extraction
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Extract and coerce ID from URL
	speciesID, err := requestutil.IntID(request, "speciesID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	if err := handler.service.AddFavorite(request.Context(), userID, speciesID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.Created(writer, map[string]string{constants.FieldMessage: "Species added to favorites"})
}

/*
DELETE /api/v1/favorites/{speciesID}.

Description: Removes a species bookmark.

Request:
  - speciesID: int (Positive integer)

Response:
  - 200: Message: Bookmark removed
  - 400: 400: Validation: Identifier is not a positive integer
  - 401: 401: ErrUnauthorized: Missing or invalid token
  - 404: 404: ErrNotFound: No such bookmark
*/
func (handler *Handler) removeFavorite(writer http.ResponseWriter, request *http.Request) {

	// Identity extraction
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Extract and coerce ID from URL
	speciesID, err := requestutil.IntID(request, "speciesID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	if err := handler.service.RemoveFavorite(request.Context(), userID, speciesID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, map[string]string{constants.FieldMessage: "Species removed from favorites"})
}
