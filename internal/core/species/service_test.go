// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package species_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmedina/faunatlas/internal/core/species"
	"github.com/rmedina/faunatlas/internal/platform/apperr"
)

// fakeRepository is an in-memory stand-in for the Postgres repository.
// Each behaviour can be overridden per test; unset methods fall back to
// a minimal happy path.
type fakeRepository struct {
	listFunc     func(ctx context.Context, filter species.Filter, limit, offset int) ([]*species.Species, int, error)
	createFunc   func(ctx context.Context, entity *species.Species, census *species.PopulationCensus, media *species.Media) error
	updateFunc   func(ctx context.Context, entity *species.Species, census *species.PopulationCensus, media *species.Media) error
	findFunc     func(ctx context.Context, id int) (*species.Species, error)
	deleteFunc   func(ctx context.Context, id int) error
	createCalled bool
	updateCalled bool
}

func (f *fakeRepository) List(ctx context.Context, filter species.Filter, limit, offset int) ([]*species.Species, int, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, filter, limit, offset)
	}
	return []*species.Species{}, 0, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id int) (*species.Species, error) {
	if f.findFunc != nil {
		return f.findFunc(ctx, id)
	}
	return &species.Species{ID: id, ScientificName: "Testus species"}, nil
}

func (f *fakeRepository) Create(ctx context.Context, entity *species.Species, census *species.PopulationCensus, media *species.Media) error {
	f.createCalled = true
	if f.createFunc != nil {
		return f.createFunc(ctx, entity, census, media)
	}
	entity.ID = 1
	return nil
}

func (f *fakeRepository) Update(ctx context.Context, entity *species.Species, census *species.PopulationCensus, media *species.Media) error {
	f.updateCalled = true
	if f.updateFunc != nil {
		return f.updateFunc(ctx, entity, census, media)
	}
	return nil
}

func (f *fakeRepository) SoftDelete(ctx context.Context, id int) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, id)
	}
	return nil
}

func newTestService(repo species.Repository) *species.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return species.NewService(repo, logger)
}

/*
TestCreateSpecies_ValidationFailures ensures invalid input never reaches
the repository.
*/
func TestCreateSpecies_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		entity *species.Species
	}{
		{
			name:   "missing_everything",
			entity: &species.Species{},
		},
		{
			name: "scientific_name_too_short",
			entity: &species.Species{
				ScientificName: "Ab",
				IUCNStatus:     species.StatusEndangered,
				TaxonomyID:     1,
				RegionIDs:      []int{1},
			},
		},
		{
			name: "unknown_iucn_status",
			entity: &species.Species{
				ScientificName: "Panthera uncia",
				IUCNStatus:     species.IUCNStatus("XX"),
				TaxonomyID:     1,
				RegionIDs:      []int{1},
			},
		},
		{
			name: "no_regions",
			entity: &species.Species{
				ScientificName: "Panthera uncia",
				IUCNStatus:     species.StatusEndangered,
				TaxonomyID:     1,
				RegionIDs:      []int{},
			},
		},
		{
			name: "negative_region_id",
			entity: &species.Species{
				ScientificName: "Panthera uncia",
				IUCNStatus:     species.StatusEndangered,
				TaxonomyID:     1,
				RegionIDs:      []int{1, -4},
			},
		},
		{
			name: "missing_taxonomy",
			entity: &species.Species{
				ScientificName: "Panthera uncia",
				IUCNStatus:     species.StatusEndangered,
				RegionIDs:      []int{1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := newTestService(repo)

			dto, err := service.CreateSpecies(context.Background(), tt.entity, nil, nil)

			require.Error(t, err)
			assert.Nil(t, dto)
			assert.False(t, repo.createCalled, "repository must not be touched on invalid input")

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

/*
TestCreateSpecies_Defaults verifies slug derivation and trend defaulting
on the happy path.
*/
func TestCreateSpecies_Defaults(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	entity := &species.Species{
		ScientificName: "Panthera Uncia",
		IUCNStatus:     species.StatusVulnerable,
		TaxonomyID:     3,
		RegionIDs:      []int{1, 2},
	}

	dto, err := service.CreateSpecies(context.Background(), entity, nil, nil)

	require.NoError(t, err)
	require.NotNil(t, dto)
	assert.True(t, repo.createCalled)
	assert.Equal(t, "panthera-uncia", entity.Slug)
	assert.Equal(t, species.TrendUnknown, entity.CurrentTrend)
}

/*
TestCreateSpecies_UndatedCensusIsStampedToday checks the census-date default.
*/
func TestCreateSpecies_UndatedCensusIsStampedToday(t *testing.T) {
	var captured *species.PopulationCensus
	repo := &fakeRepository{
		createFunc: func(ctx context.Context, entity *species.Species, census *species.PopulationCensus, media *species.Media) error {
			entity.ID = 1
			captured = census
			return nil
		},
	}
	service := newTestService(repo)

	entity := &species.Species{
		ScientificName: "Gorilla beringei",
		IUCNStatus:     species.StatusCriticallyEndangered,
		TaxonomyID:     2,
		RegionIDs:      []int{5},
	}
	census := &species.PopulationCensus{Population: 1063}

	_, err := service.CreateSpecies(context.Background(), entity, census, nil)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, captured.CensusDate)
}

/*
TestCreateSpecies_UnknownTaxonomyPropagates verifies that a repository
reference failure surfaces unchanged as NotFound.
*/
func TestCreateSpecies_UnknownTaxonomyPropagates(t *testing.T) {
	repo := &fakeRepository{
		createFunc: func(ctx context.Context, entity *species.Species, census *species.PopulationCensus, media *species.Media) error {
			return apperr.NotFound("Referenced resource")
		},
	}
	service := newTestService(repo)

	entity := &species.Species{
		ScientificName: "Panthera uncia",
		IUCNStatus:     species.StatusVulnerable,
		TaxonomyID:     99999,
		RegionIDs:      []int{1},
	}

	dto, err := service.CreateSpecies(context.Background(), entity, nil, nil)

	require.Error(t, err)
	assert.Nil(t, dto)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestCreateSpecies_ImageURLBecomesMedia verifies the image side-effect.
*/
func TestCreateSpecies_ImageURLBecomesMedia(t *testing.T) {
	var captured *species.Media
	repo := &fakeRepository{
		createFunc: func(ctx context.Context, entity *species.Species, census *species.PopulationCensus, media *species.Media) error {
			entity.ID = 1
			captured = media
			return nil
		},
	}
	service := newTestService(repo)

	entity := &species.Species{
		ScientificName: "Panthera uncia",
		IUCNStatus:     species.StatusVulnerable,
		TaxonomyID:     3,
		RegionIDs:      []int{1},
	}
	imageURL := "https://cdn.faunatlas.app/species/uncia.jpg"

	_, err := service.CreateSpecies(context.Background(), entity, nil, &imageURL)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, imageURL, captured.MediaURL)
	assert.Equal(t, species.MediaTypeImage, captured.MediaType)
}

/*
TestUpdateSpecies_PartialValidation ensures absent fields are not validated
and present fields are.
*/
func TestUpdateSpecies_PartialValidation(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	// An empty update is valid: nothing changes, nothing to reject.
	_, err := service.UpdateSpecies(context.Background(), &species.Species{ID: 1}, nil, nil)
	require.NoError(t, err)
	assert.True(t, repo.updateCalled)

	// A present but invalid status must be rejected before storage.
	repo = &fakeRepository{}
	service = newTestService(repo)
	_, err = service.UpdateSpecies(context.Background(), &species.Species{
		ID:         1,
		IUCNStatus: species.IUCNStatus("BOGUS"),
	}, nil, nil)

	require.Error(t, err)
	assert.False(t, repo.updateCalled)
}

/*
TestDeleteSpecies_NotFound propagates the repository's NotFound.
*/
func TestDeleteSpecies_NotFound(t *testing.T) {
	repo := &fakeRepository{
		deleteFunc: func(ctx context.Context, id int) error {
			return apperr.NotFound("Species")
		},
	}
	service := newTestService(repo)

	err := service.DeleteSpecies(context.Background(), 404)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}
