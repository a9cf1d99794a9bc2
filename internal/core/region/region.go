// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

// Package region provides the read-only lookup catalogue of geographic regions.
package region

// Region is a geographic area a species can be associated with. Regions form
// a hierarchy via ParentID (e.g. a subregion inside a continent).
type Region struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID *int   `json:"parentId"`
}

// Types lists the recognised region classifications.
var Types = []string{"continent", "subregion", "biome", "climate", "ecoregion"}
