package schema

// DataSourceTable represents the 'data_source' table
type DataSourceTable struct {
	Table     string
	ID        string
	Name      string
	URL       string
	CreatedAt string
}

// DataSource is the schema definition for data_source
var DataSource = DataSourceTable{
	Table:     "data_source",
	ID:        "id",
	Name:      "name",
	URL:       "url",
	CreatedAt: "created_at",
}
