// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

/*
Package favorite implements per-user species bookmarks.

A favorite is a (user, species) pair guarded by a database unique constraint,
which doubles as the concurrency guard for duplicate requests. Listings return
the bookmarked species as full catalogue DTOs, excluding soft-deleted species.
*/
package favorite

import "time"

// Favorite is one bookmark row linking a user to a species.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	SpeciesID int       `json:"species_id"`
	CreatedAt time.Time `json:"created_at"`
}
