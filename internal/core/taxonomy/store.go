// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package taxonomy

import "context"

type Repository interface {
	ListTaxonomies(context context.Context) ([]*Taxonomy, error)
	GetTaxonomyByID(context context.Context, id int) (*Taxonomy, error)
}
