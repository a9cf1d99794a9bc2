// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		Create persists a new user account.

		Parameters:
		  - context: context.Context
		  - user: *User (Fully populated entity with hashed password)

		Returns:
		  - error: apperr.Conflict on a duplicate email, or storage errors
	*/
	Create(context context.Context, user *User) error

	/*
		FindByEmail returns the user with the given email address.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: The matching account
		  - error: apperr.NotFound if no account matches
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		FindByID returns the user with the given UUID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *User: The matching account
		  - error: apperr.NotFound if no account matches
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		UpdateProfile applies a partial update to the mutable account fields.
		Nil pointers leave the stored value untouched.

		Parameters:
		  - context: context.Context
		  - userID: string (UUID)
		  - displayName: *string (New display name, nil to skip)
		  - passwordHash: *string (New bcrypt hash, nil to skip)

		Returns:
		  - error: apperr.NotFound if the account does not exist
	*/
	UpdateProfile(context context.Context, userID string, displayName, passwordHash *string) error
}

// # Session Data Access

// SessionRepository defines the contract for refresh-token sessions.
// Sessions are keyed by the token digest, never the raw token.
type SessionRepository interface {

	// Set stores a session mapping a token digest to a user ID with a TTL.
	Set(context context.Context, tokenHash, userID string, ttl time.Duration) error

	// Get resolves the user ID for a token digest.
	// Returns apperr.Unauthorized if the session is absent or expired.
	Get(context context.Context, tokenHash string) (string, error)

	// Delete revokes a session. Deleting an absent session is not an error.
	Delete(context context.Context, tokenHash string) error
}
