// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package region

import "context"

type Repository interface {
	ListRegions(context context.Context) ([]*Region, error)
	GetRegionByID(context context.Context, id int) (*Region, error)
}
