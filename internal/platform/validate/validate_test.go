// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmedina/faunatlas/internal/platform/apperr"
	"github.com/rmedina/faunatlas/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "scientificName", "Panthera uncia", false},
		{"empty_string", "scientificName", "", true},
		{"whitespace_only", "scientificName", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_LenBetween checks the Unicode-aware length bounds.
*/
func TestValidator_LenBetween(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"within_bounds", "Lince ibérico", false},
		{"at_minimum", "Boa", false},
		{"below_minimum", "Ab", true},
		{"unicode_counted_as_runes", "ñuñ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.LenBetween("commonName", tt.value, 3, 150)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_address", "ranger@faunatlas.app", true},
		{"missing_at", "ranger.faunatlas.app", false},
		{"missing_domain", "ranger@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_URL checks the absolute http(s) URL rule.
*/
func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		isValid bool
	}{
		{"https", "https://cdn.faunatlas.app/uncia.jpg", true},
		{"http", "http://example.org/a.png", true},
		{"relative_path", "/images/a.png", false},
		{"ftp_scheme", "ftp://example.org/a.png", false},
		{"garbage", "not a url", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("imageUrl", tt.url)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_ISODate checks the calendar-date rule used by census rows.
*/
func TestValidator_ISODate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		isValid bool
	}{
		{"valid_date", "2024-06-15", true},
		{"month_out_of_range", "2024-13-01", false},
		{"wrong_separator", "2024/06/15", false},
		{"datetime_rejected", "2024-06-15T10:00:00Z", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.ISODate("censusDate", tt.date)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_OneOf checks set membership, as used by population operators.
*/
func TestValidator_OneOf(t *testing.T) {
	operators := []string{"<", ">", "<=", ">=", "~"}

	v := &validate.Validator{}
	v.OneOf("populationOperator", "~", operators...)
	assert.False(t, v.HasErrors())

	v = &validate.Validator{}
	v.OneOf("populationOperator", "==", operators...)
	assert.True(t, v.HasErrors())
}

/*
TestValidator_PositiveAll checks that one bad entry fails the whole slice.
*/
func TestValidator_PositiveAll(t *testing.T) {
	v := &validate.Validator{}
	v.PositiveAll("regionIds", []int{1, 2, 3})
	assert.False(t, v.HasErrors())

	v = &validate.Validator{}
	v.PositiveAll("regionIds", []int{1, 0, 3})
	assert.True(t, v.HasErrors())
}

/*
TestValidator_Chaining verifies that multiple failures accumulate into one
error with per-field details.
*/
func TestValidator_Chaining(t *testing.T) {
	v := &validate.Validator{}
	v.Required("scientificName", "").
		Positive("taxonomyId", 0).
		NotEmptySlice("regionIds", 0)

	err := v.Err()
	require.NotNil(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 3)
	assert.Equal(t, "scientificName", ae.Details[0].Field)
	assert.Equal(t, "taxonomyId", ae.Details[1].Field)
	assert.Equal(t, "regionIds", ae.Details[2].Field)
}
