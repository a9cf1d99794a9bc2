// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

// Package taxonomy provides the read-only lookup catalogue of biological
// classification tuples.
package taxonomy

// Taxonomy is one classification tuple (kingdom through genus). Species
// reference a tuple by id; the tuple itself never changes once created.
type Taxonomy struct {
	ID        int    `json:"id"`
	Kingdom   string `json:"kingdom"`
	Phylum    string `json:"phylum"`
	ClassName string `json:"class_name"`
	OrderName string `json:"order_name"`
	Family    string `json:"family"`
	Genus     string `json:"genus"`
}
