// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

/*
Package species provides the HTTP interface for discovery and curation of the catalogue.

It exposes endpoints for browsing species, retrieving full conservation records,
and managing catalogue entries by authorised personnel.

# Routing Strategy

  - Public (v1): Discovery endpoints accessible to all visitors (GET /species).
  - Restricted (v1): Mutative endpoints requiring the Admin role (POST, PUT, DELETE).

The handler translates between the web/JSON layer and the internal domain [Service].
*/
package species

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmedina/faunatlas/internal/platform/middleware"
	requestutil "github.com/rmedina/faunatlas/internal/platform/request"
	"github.com/rmedina/faunatlas/internal/platform/respond"
	"github.com/rmedina/faunatlas/internal/platform/sec"
	"github.com/rmedina/faunatlas/internal/platform/validate"
	"github.com/rmedina/faunatlas/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for species management and discovery.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new species [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the species domain's endpoints.
//
// # Routing Strategy
//
//   - Discovery (Public): Accessible by all visitors for browsing.
//   - Curation (Restricted): Requires [RoleAdmin] for state-mutating operations.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Get("/", handler.listSpecies)
	router.Get("/critical", handler.listCritical)
	router.Get("/rescued", handler.listRescued)
	router.Get("/{id}", handler.getSpecies)

	// ## Catalogue Curation (Admin Protected)
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.createSpecies)
		admin.Put("/{id}", handler.updateSpecies)
		admin.Delete("/{id}", handler.deleteSpecies)
	})

	return router
}

// # Discovery Endpoints

/*
GET /api/v1/species.

Description: Retrieves a paginated list of species from the catalogue.
Supports filtering by region name, taxonomy-kingdom category, conservation
status, and population trend.

Request:
  - region: string (Exact region name)
  - category: string (Taxonomy kingdom, e.g. Animalia)
  - status: string (IUCN category, e.g. CR)
  - trend: string (Population trajectory, e.g. aumento)
  - page: int (1-based)
  - limit: int (Clamped to 100)

Response:
  - 200: {data, pagination}: Paginated list of species DTOs
  - 400: 400: Validation: Malformed page/limit, unknown status or trend
*/
func (handler *Handler) listSpecies(writer http.ResponseWriter, request *http.Request) {

	// Query filter assembly
	queryParams := request.URL.Query()
	filter := Filter{
		Region:   queryParams.Get("region"),
		Category: queryParams.Get("category"),
	}

	// Conservation-state filter validation
	validator := &validate.Validator{}
	if status := IUCNStatus(queryParams.Get("status")); status != "" {
		validator.Custom("status", !status.IsValid(), "Must be a valid IUCN category")
		filter.Statuses = []IUCNStatus{status}
	}
	if trend := Trend(queryParams.Get("trend")); trend != "" {
		validator.Custom("trend", !trend.IsValid(), "Must be a valid trend value")
		filter.Trend = trend
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.renderList(writer, request, filter)
}

/*
GET /api/v1/species/critical.

Description: Curated home-page listing of species in the threatened
categories (CR, EN, VU), paginated like the main listing.

Response:
  - 200: {data, pagination}: Paginated list of species DTOs
  - 400: 400: Validation: Malformed page or limit values
*/
func (handler *Handler) listCritical(writer http.ResponseWriter, request *http.Request) {
	handler.renderList(writer, request, Filter{Statuses: CriticalStatuses})
}

/*
GET /api/v1/species/rescued.

Description: Curated home-page listing of recovery stories: species back in
the LC/NT categories with an increasing population trend.

Response:
  - 200: {data, pagination}: Paginated list of species DTOs
  - 400: 400: Validation: Malformed page or limit values
*/
func (handler *Handler) listRescued(writer http.ResponseWriter, request *http.Request) {
	handler.renderList(writer, request, Filter{Statuses: RescuedStatuses, Trend: TrendIncreasing})
}

// renderList runs the shared pagination, service call, and envelope writing
// for the main and curated listings.
func (handler *Handler) renderList(writer http.ResponseWriter, request *http.Request, filter Filter) {

	// Pagination extraction using pkg/pagination
	paginationParams, err := pagination.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	dtos, total, err := handler.service.ListSpecies(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.Paginated(writer, dtos, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/species/{id}.

Description: Retrieves the full conservation record for a species, including
census history, status history, media, and derived display fields.

Request:
  - id: int (Positive integer)

Response:
  - 200: DTO: Success
  - 400: 400: Validation: Identifier is not a positive integer
  - 404: 404: ErrNotFound: Species absent or soft-deleted
*/
func (handler *Handler) getSpecies(writer http.ResponseWriter, request *http.Request) {

	// Extract and coerce ID from URL
	speciesID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	dto, err := handler.service.GetSpecies(request.Context(), speciesID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, dto)
}

// # Request Payloads

// speciesRequest defines the inbound JSON schema for species creation and update.
// Pointer fields distinguish "absent" from "explicitly empty" on partial updates.
// A JSON null decodes to the same nil pointer as an absent field, so nullable
// scalars cannot be cleared back to NULL through this endpoint.
type speciesRequest struct {
	ScientificName     string     `json:"scientificName"`
	CommonName         *string    `json:"commonName"`
	IUCNStatus         IUCNStatus `json:"iucnStatus"`
	Habitat            *string    `json:"habitat"`
	Description        *string    `json:"description"`
	TaxonomyID         int        `json:"taxonomyId"`
	RegionIDs          []int      `json:"regionIds"`
	PopulationOperator *string    `json:"populationOperator"`
	CurrentTrend       Trend      `json:"currentTrend"`

	// Census side-effect fields
	Population *int64  `json:"population"`
	CensusDate *string `json:"censusDate"`
	SourceID   *int    `json:"sourceId"`
	Notes      *string `json:"notes"`

	// Media side-effect field
	ImageURL *string `json:"imageUrl"`
}

// entity maps the payload onto a domain [Species].
func (input *speciesRequest) entity() *Species {
	return &Species{
		ScientificName:     input.ScientificName,
		CommonName:         input.CommonName,
		IUCNStatus:         input.IUCNStatus,
		Habitat:            input.Habitat,
		Description:        input.Description,
		TaxonomyID:         input.TaxonomyID,
		RegionIDs:          input.RegionIDs,
		PopulationOperator: input.PopulationOperator,
		CurrentTrend:       input.CurrentTrend,
	}
}

// census maps the payload's census fields onto a [PopulationCensus] row,
// or nil when no population figure was supplied.
func (input *speciesRequest) census() *PopulationCensus {
	if input.Population == nil {
		return nil
	}

	row := &PopulationCensus{
		Population: *input.Population,
		SourceID:   input.SourceID,
		Notes:      input.Notes,
	}
	if input.CensusDate != nil {
		row.CensusDate = *input.CensusDate
	}

	return row
}

// # Curation Endpoints

/*
POST /api/v1/species.

Description: Creates a new species entry in the catalogue. The slug is derived
from the scientific name. Region links, the optional initial census, and the
optional image are written atomically with the species row.

Request (Body):
  - speciesRequest: JSON object

Response:
  - 201: DTO: Created species record
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: 401: ErrUnauthorized: Missing or invalid token
  - 403: 403: ErrForbidden: Insufficient permissions
  - 404: 404: ErrNotFound: Unknown taxonomy or region reference
  - 409: 409: ErrConflict: Duplicate scientific name
*/
func (handler *Handler) createSpecies(writer http.ResponseWriter, request *http.Request) {

	// Strict JSON decoding
	var input speciesRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	dto, err := handler.service.CreateSpecies(request.Context(), input.entity(), input.census(), input.ImageURL)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.Created(writer, dto)
}

/*
PUT /api/v1/species/{id}.

Description: Applies a partial merge to an existing species record. Absent
fields are left untouched; regionIds, when present, replace the region set
wholesale. A conservation-status change appends a status-history row.

Request:
  - id: int
  - body: speciesRequest (Partial JSON)

Response:
  - 200: DTO: Updated species record
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: 401: ErrUnauthorized: Missing or invalid token
  - 403: 403: ErrForbidden: Insufficient permissions
  - 404: 404: ErrNotFound: Species not found
*/
func (handler *Handler) updateSpecies(writer http.ResponseWriter, request *http.Request) {

	// Extract and coerce ID from URL
	speciesID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Strict JSON decoding
	var input speciesRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Map DTO to Domain Entity
	entity := input.entity()
	entity.ID = speciesID

	// Domain Logic Execution
	dto, err := handler.service.UpdateSpecies(request.Context(), entity, input.census(), input.ImageURL)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, dto)
}

/*
DELETE /api/v1/species/{id}.

Description: Performs a soft-delete of the species record. Deleted records are
hidden from discovery and favorites listings but remain in the database for
auditing.

Request:
  - id: int

Response:
  - 204: No Content: Success
  - 400: 400: Validation: Identifier is not a positive integer
  - 401: 401: ErrUnauthorized: Missing or invalid token
  - 403: 403: ErrForbidden: Insufficient permissions
  - 404: 404: ErrNotFound: Species not found
*/
func (handler *Handler) deleteSpecies(writer http.ResponseWriter, request *http.Request) {

	// Extract and coerce ID from URL
	speciesID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	if err := handler.service.DeleteSpecies(request.Context(), speciesID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.NoContent(writer)
}
