// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmedina/faunatlas/internal/platform/apperr"
	"github.com/rmedina/faunatlas/pkg/pagination"
)

/*
TestFromRequest covers defaults, explicit values, clamping, and rejection
of malformed parameters.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
		wantError bool
	}{
		{"defaults", "", pagination.DefaultPage, pagination.DefaultLimit, false},
		{"explicit_values", "?page=3&limit=10", 3, 10, false},
		{"limit_clamped_to_max", "?limit=5000", pagination.DefaultPage, pagination.MaxLimit, false},
		{"zero_page_rejected", "?page=0", 0, 0, true},
		{"negative_limit_rejected", "?limit=-5", 0, 0, true},
		{"non_numeric_rejected", "?page=abc", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/api/v1/species"+tt.query, nil)

			params, err := pagination.FromRequest(request)

			if tt.wantError {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestParams_Offset verifies the SQL offset derivation.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 20, pagination.Params{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 5, Limit: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 10}.Offset())
}

/*
TestNewMeta checks that Pages is always exactly ceil(total/limit).
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		total     int
		wantPages int
	}{
		{"exact_division", 10, 30, 3},
		{"partial_last_page", 10, 25, 3},
		{"single_item", 20, 1, 1},
		{"empty_result", 20, 0, 0},
		{"zero_limit_guard", 0, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(1, tt.limit, tt.total)
			assert.Equal(t, tt.wantPages, meta.Pages)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}
