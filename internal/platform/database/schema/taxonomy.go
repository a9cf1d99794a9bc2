package schema

// TaxonomyTable represents the 'taxonomy' table
type TaxonomyTable struct {
	Table     string
	ID        string
	Kingdom   string
	Phylum    string
	ClassName string
	OrderName string
	Family    string
	Genus     string
	CreatedAt string
}

// Taxonomy is the schema definition for the taxonomy table
var Taxonomy = TaxonomyTable{
	Table:     "taxonomy",
	ID:        "id",
	Kingdom:   "kingdom",
	Phylum:    "phylum",
	ClassName: "class_name",
	OrderName: "order_name",
	Family:    "family",
	Genus:     "genus",
	CreatedAt: "created_at",
}

func (t TaxonomyTable) Columns() []string {
	return []string{t.ID, t.Kingdom, t.Phylum, t.ClassName, t.OrderName, t.Family, t.Genus}
}
