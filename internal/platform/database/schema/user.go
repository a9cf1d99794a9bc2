package schema

// UserTable represents the 'app_user' table
type UserTable struct {
	Table        string
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	Role         string
	CreatedAt    string
	UpdatedAt    string
}

// User is the schema definition for app_user
var User = UserTable{
	Table:        "app_user",
	ID:           "id",
	Email:        "email",
	DisplayName:  "display_name",
	PasswordHash: "password_hash",
	Role:         "role",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}
