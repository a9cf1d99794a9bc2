package schema

// StatusHistoryTable represents the 'status_history' table
type StatusHistoryTable struct {
	Table     string
	ID        string
	SpeciesID string
	OldStatus string
	NewStatus string
	ChangedAt string
	SourceID  string
	CreatedAt string
}

// StatusHistory is the schema definition for status_history
var StatusHistory = StatusHistoryTable{
	Table:     "status_history",
	ID:        "id",
	SpeciesID: "species_id",
	OldStatus: "old_status",
	NewStatus: "new_status",
	ChangedAt: "changed_at",
	SourceID:  "source_id",
	CreatedAt: "created_at",
}
