// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package favorite_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmedina/faunatlas/internal/core/favorite"
	"github.com/rmedina/faunatlas/internal/core/species"
	"github.com/rmedina/faunatlas/internal/platform/apperr"
)

// fakeRepository records bookmark mutations in memory.
type fakeRepository struct {
	listFunc   func(ctx context.Context, userID string) ([]*species.Species, error)
	addFunc    func(ctx context.Context, userID string, speciesID int) error
	removeFunc func(ctx context.Context, userID string, speciesID int) error
}

func (f *fakeRepository) ListForUser(ctx context.Context, userID string) ([]*species.Species, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, userID)
	}
	return []*species.Species{}, nil
}

func (f *fakeRepository) Add(ctx context.Context, userID string, speciesID int) error {
	if f.addFunc != nil {
		return f.addFunc(ctx, userID, speciesID)
	}
	return nil
}

func (f *fakeRepository) Remove(ctx context.Context, userID string, speciesID int) error {
	if f.removeFunc != nil {
		return f.removeFunc(ctx, userID, speciesID)
	}
	return nil
}

func newTestService(repo favorite.Repository) *favorite.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return favorite.NewService(repo, logger)
}

/*
TestListFavorites_MapsToDTOs verifies bookmarks come back as catalogue DTOs
with derived fields computed.
*/
func TestListFavorites_MapsToDTOs(t *testing.T) {
	repo := &fakeRepository{
		listFunc: func(ctx context.Context, userID string) ([]*species.Species, error) {
			return []*species.Species{
				{
					ID:             1,
					ScientificName: "Panthera uncia",
					IUCNStatus:     species.StatusVulnerable,
					Regions:        []species.RegionRef{{ID: 1, Name: "Asia"}},
				},
			}, nil
		},
	}
	service := newTestService(repo)

	dtos, err := service.ListFavorites(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, 2, dtos[0].RiskLevel)
	assert.Equal(t, "regional", dtos[0].Scope)
}

/*
TestListFavorites_EmptyIsNotNil guarantees an empty list serializes as [].
*/
func TestListFavorites_EmptyIsNotNil(t *testing.T) {
	service := newTestService(&fakeRepository{})

	dtos, err := service.ListFavorites(context.Background(), "user-1")

	require.NoError(t, err)
	assert.NotNil(t, dtos)
	assert.Empty(t, dtos)
}

/*
TestAddFavorite_Duplicate surfaces the repository Conflict unchanged.
*/
func TestAddFavorite_Duplicate(t *testing.T) {
	repo := &fakeRepository{
		addFunc: func(ctx context.Context, userID string, speciesID int) error {
			return apperr.Conflict("Species is already in favorites")
		},
	}
	service := newTestService(repo)

	err := service.AddFavorite(context.Background(), "user-1", 42)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

/*
TestAddFavorite_UnknownSpecies surfaces NotFound for an absent species.
*/
func TestAddFavorite_UnknownSpecies(t *testing.T) {
	repo := &fakeRepository{
		addFunc: func(ctx context.Context, userID string, speciesID int) error {
			return apperr.NotFound("Species")
		},
	}
	service := newTestService(repo)

	err := service.AddFavorite(context.Background(), "user-1", 999)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestRemoveFavorite_Missing surfaces NotFound for a nonexistent bookmark.
*/
func TestRemoveFavorite_Missing(t *testing.T) {
	repo := &fakeRepository{
		removeFunc: func(ctx context.Context, userID string, speciesID int) error {
			return apperr.NotFound("Favorite")
		},
	}
	service := newTestService(repo)

	err := service.RemoveFavorite(context.Background(), "user-1", 42)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestAddFavorite_Success checks the happy path returns nil.
*/
func TestAddFavorite_Success(t *testing.T) {
	service := newTestService(&fakeRepository{})
	assert.NoError(t, service.AddFavorite(context.Background(), "user-1", 1))
	assert.NoError(t, service.RemoveFavorite(context.Background(), "user-1", 1))
}
