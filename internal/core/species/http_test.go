// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package species_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmedina/faunatlas/internal/core/species"
	"github.com/rmedina/faunatlas/internal/platform/apperr"
)

func newTestRouter(repo species.Repository) http.Handler {
	handler := species.NewHandler(newTestService(repo))
	return handler.Routes()
}

/*
TestListSpecies_MalformedPagination returns 400 without touching the service.
*/
func TestListSpecies_MalformedPagination(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	for _, query := range []string{"?page=abc", "?page=0", "?limit=-1"} {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/"+query, nil)

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code, query)
	}
}

/*
TestListSpecies_Envelope verifies the {data, pagination} list envelope.
*/
func TestListSpecies_Envelope(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/?page=1&limit=10", nil)

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
			Total int `json:"total"`
			Pages int `json:"pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	assert.NotNil(t, envelope.Data)
	assert.Equal(t, 1, envelope.Pagination.Page)
	assert.Equal(t, 10, envelope.Pagination.Limit)
	assert.Equal(t, 0, envelope.Pagination.Total)
	assert.Equal(t, 0, envelope.Pagination.Pages)
}

/*
TestListSpecies_PastTheEndPageKeepsTotal verifies that a page beyond the last
one still reports the true total and page count in the envelope.
*/
func TestListSpecies_PastTheEndPageKeepsTotal(t *testing.T) {
	repo := &fakeRepository{
		listFunc: func(ctx context.Context, filter species.Filter, limit, offset int) ([]*species.Species, int, error) {
			// 25 matching rows; offset 30 is past the end.
			if offset >= 25 {
				return []*species.Species{}, 25, nil
			}
			return []*species.Species{{ID: 1, ScientificName: "Panthera uncia"}}, 25, nil
		},
	}
	router := newTestRouter(repo)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/?page=4&limit=10", nil)

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Total int `json:"total"`
			Pages int `json:"pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	assert.NotNil(t, envelope.Data)
	assert.Empty(t, envelope.Data)
	assert.Equal(t, 25, envelope.Pagination.Total)
	assert.Equal(t, 3, envelope.Pagination.Pages)
}

/*
TestListSpecies_StatusAndTrendFilters checks validation and propagation of
the conservation-state query parameters.
*/
func TestListSpecies_StatusAndTrendFilters(t *testing.T) {

	// Unknown values are rejected before the service is touched.
	router := newTestRouter(&fakeRepository{})
	for _, query := range []string{"?status=XX", "?trend=sideways"} {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/"+query, nil)

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code, query)
	}

	// Valid values reach the repository filter.
	var captured species.Filter
	repo := &fakeRepository{
		listFunc: func(ctx context.Context, filter species.Filter, limit, offset int) ([]*species.Species, int, error) {
			captured = filter
			return []*species.Species{}, 0, nil
		},
	}
	router = newTestRouter(repo)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/?status=CR&trend=aumento", nil)

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []species.IUCNStatus{species.StatusCriticallyEndangered}, captured.Statuses)
	assert.Equal(t, species.TrendIncreasing, captured.Trend)
}

/*
TestCuratedListings verifies the preset filters behind the home-page
critical and rescued endpoints.
*/
func TestCuratedListings(t *testing.T) {
	var captured species.Filter
	repo := &fakeRepository{
		listFunc: func(ctx context.Context, filter species.Filter, limit, offset int) ([]*species.Species, int, error) {
			captured = filter
			return []*species.Species{}, 0, nil
		},
	}
	router := newTestRouter(repo)

	// Threatened categories only
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/critical", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, species.CriticalStatuses, captured.Statuses)
	assert.Empty(t, captured.Trend)

	// Recovered categories with an improving trend
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/rescued", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, species.RescuedStatuses, captured.Statuses)
	assert.Equal(t, species.TrendIncreasing, captured.Trend)
}

/*
TestGetSpecies_InvalidID rejects non-numeric and non-positive identifiers.
*/
func TestGetSpecies_InvalidID(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	for _, id := range []string{"abc", "0", "-3"} {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/"+id, nil)

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code, id)
	}
}

/*
TestGetSpecies_NotFound surfaces the repository 404 as JSON.
*/
func TestGetSpecies_NotFound(t *testing.T) {
	repo := &fakeRepository{
		findFunc: func(ctx context.Context, id int) (*species.Species, error) {
			return nil, apperr.NotFound("Species")
		},
	}
	router := newTestRouter(repo)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/42", nil)

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNotFound, recorder.Code)

	var envelope struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "NOT_FOUND", envelope.Code)
	assert.Equal(t, "Species not found", envelope.Error)
}

/*
TestCreateSpecies_RequiresAdmin ensures the curation group rejects
anonymous callers before any parsing happens.
*/
func TestCreateSpecies_RequiresAdmin(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/", nil)

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
