// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmedina/faunatlas/internal/auth"
	"github.com/rmedina/faunatlas/internal/platform/apperr"
	"github.com/rmedina/faunatlas/internal/platform/sec"
)

// fakeUserRepository is an in-memory user store keyed by email and ID.
type fakeUserRepository struct {
	byEmail map[string]*auth.User
	byID    map[string]*auth.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byEmail: map[string]*auth.User{},
		byID:    map[string]*auth.User{},
	}
}

func (f *fakeUserRepository) Create(ctx context.Context, user *auth.User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return apperr.Conflict("Email is already registered")
	}
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*auth.User, error) {
	if user, ok := f.byID[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) UpdateProfile(ctx context.Context, userID string, displayName, passwordHash *string) error {
	user, ok := f.byID[userID]
	if !ok {
		return apperr.NotFound("User")
	}
	if displayName != nil {
		user.DisplayName = *displayName
	}
	if passwordHash != nil {
		user.PasswordHash = *passwordHash
	}
	return nil
}

// fakeSessionRepository mimics the Redis session store without TTL expiry.
type fakeSessionRepository struct {
	sessions map[string]string
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: map[string]string{}}
}

func (f *fakeSessionRepository) Set(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	f.sessions[tokenHash] = userID
	return nil
}

func (f *fakeSessionRepository) Get(ctx context.Context, tokenHash string) (string, error) {
	if userID, ok := f.sessions[tokenHash]; ok {
		return userID, nil
	}
	return "", apperr.Unauthorized("Session is invalid or expired")
}

func (f *fakeSessionRepository) Delete(ctx context.Context, tokenHash string) error {
	delete(f.sessions, tokenHash)
	return nil
}

// fakeTokenProvider issues predictable token strings.
type fakeTokenProvider struct{}

func (f *fakeTokenProvider) GenerateAccessToken(userID, email, role string, ttl time.Duration) (string, error) {
	return "jwt-for-" + userID, nil
}

func newTestService() (*auth.Service, *fakeUserRepository, *fakeSessionRepository) {
	users := newFakeUserRepository()
	sessions := newFakeSessionRepository()
	service := auth.NewService(users, sessions, &fakeTokenProvider{})
	return service, users, sessions
}

func registerTestUser(t *testing.T, service *auth.Service) *auth.User {
	t.Helper()
	user, err := service.Register(context.Background(), auth.RegisterInput{
		Email:       "ranger@faunatlas.app",
		Password:    "super-secret-1",
		DisplayName: "Ranger",
	})
	require.NoError(t, err)
	return user
}

/*
TestRegister verifies account creation, hashing, and the duplicate guard.
*/
func TestRegister(t *testing.T) {
	service, _, _ := newTestService()

	user := registerTestUser(t, service)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, sec.RoleUser, user.Role)
	assert.NotEqual(t, "super-secret-1", user.PasswordHash, "password must never be stored in plain text")
	assert.True(t, sec.CheckPasswordHash("super-secret-1", user.PasswordHash))

	// Registering the same email again must conflict.
	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email:       "ranger@faunatlas.app",
		Password:    "another-password",
		DisplayName: "Impostor",
	})
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

/*
TestLogin covers the happy path and both credential failure modes, which
must be indistinguishable to the caller.
*/
func TestLogin(t *testing.T) {
	service, _, sessions := newTestService()
	user := registerTestUser(t, service)

	// Happy path
	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "ranger@faunatlas.app",
		Password: "super-secret-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-for-"+user.ID, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Len(t, sessions.sessions, 1)

	// Unknown email
	_, err = service.Login(context.Background(), auth.LoginInput{
		Email:    "ghost@faunatlas.app",
		Password: "super-secret-1",
	})
	require.Error(t, err)
	unknownEmail := apperr.As(err)

	// Wrong password
	_, err = service.Login(context.Background(), auth.LoginInput{
		Email:    "ranger@faunatlas.app",
		Password: "wrong-password",
	})
	require.Error(t, err)
	wrongPassword := apperr.As(err)

	// Anti-enumeration: identical code and message either way.
	require.NotNil(t, unknownEmail)
	require.NotNil(t, wrongPassword)
	assert.Equal(t, "UNAUTHORIZED", unknownEmail.Code)
	assert.Equal(t, unknownEmail.Message, wrongPassword.Message)
}

/*
TestRefreshSession verifies token rotation: the old refresh token dies,
the new one works.
*/
func TestRefreshSession(t *testing.T) {
	service, _, _ := newTestService()
	registerTestUser(t, service)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "ranger@faunatlas.app",
		Password: "super-secret-1",
	})
	require.NoError(t, err)

	rotated, err := service.RefreshSession(context.Background(), session.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	// Replaying the original token must now fail.
	_, err = service.RefreshSession(context.Background(), session.RefreshToken)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)

	// The rotated token is still valid.
	_, err = service.RefreshSession(context.Background(), rotated.RefreshToken)
	require.NoError(t, err)
}

/*
TestLogout revokes the session and stays idempotent on repeat calls.
*/
func TestLogout(t *testing.T) {
	service, _, sessions := newTestService()
	registerTestUser(t, service)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "ranger@faunatlas.app",
		Password: "super-secret-1",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), session.RefreshToken))
	assert.Empty(t, sessions.sessions)

	// Second logout with the same token is not an error.
	require.NoError(t, service.Logout(context.Background(), session.RefreshToken))

	// The revoked token can no longer refresh.
	_, err = service.RefreshSession(context.Background(), session.RefreshToken)
	require.Error(t, err)
}

/*
TestUpdateProfile covers display-name change, password rotation, and the
unknown-user case.
*/
func TestUpdateProfile(t *testing.T) {
	service, _, _ := newTestService()
	user := registerTestUser(t, service)

	// Display name only
	newName := "Senior Ranger"
	updated, err := service.UpdateProfile(context.Background(), user.ID, auth.UpdateProfileInput{
		DisplayName: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Ranger", updated.DisplayName)

	// Password rotation: old password stops working, new one logs in.
	newPassword := "even-more-secret-2"
	_, err = service.UpdateProfile(context.Background(), user.ID, auth.UpdateProfileInput{
		NewPassword: &newPassword,
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), auth.LoginInput{
		Email:    "ranger@faunatlas.app",
		Password: "super-secret-1",
	})
	require.Error(t, err)

	_, err = service.Login(context.Background(), auth.LoginInput{
		Email:    "ranger@faunatlas.app",
		Password: newPassword,
	})
	require.NoError(t, err)

	// Unknown user
	_, err = service.UpdateProfile(context.Background(), "no-such-id", auth.UpdateProfileInput{
		DisplayName: &newName,
	})
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}
