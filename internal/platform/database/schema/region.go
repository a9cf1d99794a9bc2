package schema

// RegionTable represents the 'region' table
type RegionTable struct {
	Table     string
	ID        string
	Name      string
	Type      string
	ParentID  string
	CreatedAt string
}

// Region is the schema definition for the region table
var Region = RegionTable{
	Table:     "region",
	ID:        "id",
	Name:      "name",
	Type:      "type",
	ParentID:  "parent_id",
	CreatedAt: "created_at",
}
