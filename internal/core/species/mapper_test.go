// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package species_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmedina/faunatlas/internal/core/species"
	"github.com/rmedina/faunatlas/pkg/pointer"
)

/*
TestRiskLevel verifies the 0-5 severity scale across all IUCN categories.
*/
func TestRiskLevel(t *testing.T) {
	tests := []struct {
		status species.IUCNStatus
		level  int
	}{
		{species.StatusLeastConcern, 0},
		{species.StatusNearThreatened, 1},
		{species.StatusVulnerable, 2},
		{species.StatusEndangered, 3},
		{species.StatusCriticallyEndangered, 4},
		{species.StatusExtinct, 5},
		{species.StatusExtinctInWild, 5},
		{species.StatusDataDeficient, 0},
		{species.StatusNotEvaluated, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.level, species.RiskLevel(tt.status))
		})
	}
}

/*
TestIsCritical checks that only the threatened categories raise the badge.
*/
func TestIsCritical(t *testing.T) {
	critical := []species.IUCNStatus{
		species.StatusCriticallyEndangered,
		species.StatusEndangered,
		species.StatusVulnerable,
	}
	for _, status := range critical {
		assert.True(t, species.IsCritical(status), string(status))
	}

	notCritical := []species.IUCNStatus{
		species.StatusExtinct,
		species.StatusExtinctInWild,
		species.StatusNearThreatened,
		species.StatusLeastConcern,
		species.StatusDataDeficient,
		species.StatusNotEvaluated,
	}
	for _, status := range notCritical {
		assert.False(t, species.IsCritical(status), string(status))
	}
}

/*
TestTrendDirection verifies the translation to the public API vocabulary.
*/
func TestTrendDirection(t *testing.T) {
	assert.Equal(t, "up", species.TrendDirection(species.TrendIncreasing))
	assert.Equal(t, "down", species.TrendDirection(species.TrendDecreasing))
	assert.Equal(t, "stable", species.TrendDirection(species.TrendStable))
	assert.Equal(t, "unknown", species.TrendDirection(species.TrendUnknown))
	assert.Equal(t, "unknown", species.TrendDirection(species.Trend("")))
}

/*
TestScope verifies the geographic breadth classification boundaries.
*/
func TestScope(t *testing.T) {
	assert.Equal(t, "unknown", species.Scope(0))
	assert.Equal(t, "regional", species.Scope(1))
	assert.Equal(t, "regional", species.Scope(2))
	assert.Equal(t, "global", species.Scope(3))
	assert.Equal(t, "global", species.Scope(7))
}

/*
TestMap_DerivedFields maps a fully hydrated entity and checks every
computed field on the resulting DTO.
*/
func TestMap_DerivedFields(t *testing.T) {
	entity := &species.Species{
		ID:                 42,
		Slug:               "panthera-uncia",
		ScientificName:     "Panthera uncia",
		CommonName:         pointer.To("Snow Leopard"),
		IUCNStatus:         species.StatusVulnerable,
		TaxonomyID:         3,
		PopulationOperator: pointer.To("~"),
		CurrentTrend:       species.TrendDecreasing,
		Taxonomy: &species.Taxonomy{
			ID:      3,
			Kingdom: "Animalia",
			Genus:   "Panthera",
		},
		Regions: []species.RegionRef{
			{ID: 1, Name: "Asia", Type: "continent"},
			{ID: 7, Name: "Himalaya", Type: "ecoregion"},
		},
		Census: []species.PopulationCensus{
			{CensusDate: "2016-05-01", Population: 4000},
			{CensusDate: "2021-11-12", Population: 2500},
			{CensusDate: "2019-02-28", Population: 3200},
		},
	}

	dto := species.Map(entity)
	require.NotNil(t, dto)

	// Identity and legacy aliases
	assert.Equal(t, 42, dto.ID)
	assert.Equal(t, "panthera-uncia", dto.Slug)
	assert.Equal(t, "Snow Leopard", *dto.Name)
	assert.Equal(t, "Snow Leopard", *dto.CommonName)
	assert.Equal(t, "VU", dto.IUCNStatus)
	assert.Equal(t, "VU", dto.Status)

	// Derived conservation fields
	assert.Equal(t, 2, dto.RiskLevel)
	assert.True(t, dto.IsCritical)
	assert.Equal(t, "down", dto.TrendDirection)

	// Two regions is regional, not global
	assert.Equal(t, "regional", dto.Scope)
	assert.Equal(t, []string{"Asia", "Himalaya"}, dto.Regions)

	// Latest census wins by date, not by slice order
	require.NotNil(t, dto.LatestPopulation)
	assert.Equal(t, int64(2500), *dto.LatestPopulation)
	assert.Equal(t, "2021-11-12", *dto.LatestCensusDate)
	assert.Equal(t, "~2500", dto.PopulationDisplay)

	// Full history is preserved
	assert.Len(t, dto.Census, 3)

	// Taxonomy tuple is carried over
	require.NotNil(t, dto.Taxonomy)
	assert.Equal(t, "Animalia", dto.Taxonomy.Kingdom)
}

/*
TestMap_NoCensusNoRegions verifies the DTO shape for a sparse entity.
*/
func TestMap_NoCensusNoRegions(t *testing.T) {
	entity := &species.Species{
		ID:             7,
		ScientificName: "Lonesome species",
		IUCNStatus:     species.StatusDataDeficient,
	}

	dto := species.Map(entity)

	// Regions must serialize as an empty array, never null
	assert.NotNil(t, dto.Regions)
	assert.Empty(t, dto.Regions)

	assert.Equal(t, "unknown", dto.Scope)
	assert.Equal(t, "unknown", dto.TrendDirection)
	assert.Equal(t, 0, dto.RiskLevel)
	assert.False(t, dto.IsCritical)

	assert.Nil(t, dto.LatestPopulation)
	assert.Nil(t, dto.LatestCensusDate)
	assert.Empty(t, dto.PopulationDisplay)
}

/*
TestMap_PopulationDisplayWithoutOperator checks the bare-count fallback.
*/
func TestMap_PopulationDisplayWithoutOperator(t *testing.T) {
	entity := &species.Species{
		IUCNStatus: species.StatusEndangered,
		Census: []species.PopulationCensus{
			{CensusDate: "2024-01-01", Population: 180},
		},
	}

	dto := species.Map(entity)
	assert.Equal(t, "180", dto.PopulationDisplay)
}

/*
TestMapAll preserves input order and returns an empty slice for no input.
*/
func TestMapAll(t *testing.T) {
	dtos := species.MapAll(nil)
	assert.NotNil(t, dtos)
	assert.Empty(t, dtos)

	entities := []*species.Species{
		{ID: 2, ScientificName: "Beta"},
		{ID: 1, ScientificName: "Alpha"},
	}
	dtos = species.MapAll(entities)
	require.Len(t, dtos, 2)
	assert.Equal(t, 2, dtos[0].ID)
	assert.Equal(t, 1, dtos[1].ID)
}
