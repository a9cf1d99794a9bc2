package schema

// FavoriteTable represents the 'favorite' table
type FavoriteTable struct {
	Table     string
	ID        string
	UserID    string
	SpeciesID string
	CreatedAt string
}

// Favorite is the schema definition for the favorite table
var Favorite = FavoriteTable{
	Table:     "favorite",
	ID:        "id",
	UserID:    "user_id",
	SpeciesID: "species_id",
	CreatedAt: "created_at",
}
