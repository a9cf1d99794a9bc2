// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

/*
Package species defines the core domain entities for the Faunatlas catalogue.

It manages the lifecycle of endangered-species records including taxonomy,
conservation status, population census history, and media.

Core Responsibility:

  - Catalogue: Defines IUCN conservation statuses and population trends.
  - Discovery: Manages region associations and taxonomy-based filtering.
  - Audit: Tracks every conservation-status transition in an append-only history.

This package acts as the source of truth for all species-related data models.
*/
package species

import "time"

// # Domain Enums

// IUCNStatus represents the IUCN Red List conservation category of a species.
type IUCNStatus string

const (
	// StatusExtinct indicates no known living individuals remain.
	StatusExtinct IUCNStatus = "EX"

	// StatusExtinctInWild indicates survival only in captivity or cultivation.
	StatusExtinctInWild IUCNStatus = "EW"

	// StatusCriticallyEndangered indicates an extremely high risk of extinction.
	StatusCriticallyEndangered IUCNStatus = "CR"

	// StatusEndangered indicates a very high risk of extinction.
	StatusEndangered IUCNStatus = "EN"

	// StatusVulnerable indicates a high risk of extinction.
	StatusVulnerable IUCNStatus = "VU"

	// StatusNearThreatened indicates proximity to a threatened category.
	StatusNearThreatened IUCNStatus = "NT"

	// StatusLeastConcern indicates a widespread and abundant taxon.
	StatusLeastConcern IUCNStatus = "LC"

	// StatusDataDeficient indicates insufficient data for an assessment.
	StatusDataDeficient IUCNStatus = "DD"

	// StatusNotEvaluated indicates the taxon has not yet been assessed.
	StatusNotEvaluated IUCNStatus = "NE"
)

// AllStatuses lists every recognised [IUCNStatus] value, for validation.
var AllStatuses = []IUCNStatus{
	StatusExtinct,
	StatusExtinctInWild,
	StatusCriticallyEndangered,
	StatusEndangered,
	StatusVulnerable,
	StatusNearThreatened,
	StatusLeastConcern,
	StatusDataDeficient,
	StatusNotEvaluated,
}

// IsValid reports whether s is a recognised [IUCNStatus] value.
func (s IUCNStatus) IsValid() bool {
	for _, status := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Trend represents the current population trajectory of a species.
//
// Values are kept in the assessment vocabulary used by the census sources;
// the mapper translates them to the public API vocabulary (up/down/stable/unknown).
type Trend string

const (
	TrendIncreasing Trend = "aumento"
	TrendDecreasing Trend = "descenso"
	TrendStable     Trend = "estable"
	TrendUnknown    Trend = "desconocido"
)

// IsValid reports whether t is a recognised [Trend] value.
func (t Trend) IsValid() bool {
	switch t {
	case TrendIncreasing, TrendDecreasing, TrendStable, TrendUnknown:
		return true
	}
	return false
}

// MediaType classifies a media attachment.
type MediaType string

const (
	MediaTypeImage    MediaType = "image"
	MediaTypeVideo    MediaType = "video"
	MediaTypeDocument MediaType = "document"
)

// IsValid reports whether m is a recognised [MediaType] value.
func (m MediaType) IsValid() bool {
	switch m {
	case MediaTypeImage, MediaTypeVideo, MediaTypeDocument:
		return true
	}
	return false
}

// PopulationOperators is the set of comparison operators allowed on a
// population figure (e.g. "~" for approximately, "<" for fewer than).
var PopulationOperators = []string{"<", ">", "<=", ">=", "~"}

// # Core Entities

// Species is the central aggregate of the Faunatlas domain.
// It represents a single catalogued endangered species.
type Species struct {
	ID                 int        `json:"id"`
	Slug               string     `json:"slug"` // URL-safe identifier derived from the scientific name
	ScientificName     string     `json:"scientific_name"`
	CommonName         *string    `json:"common_name"`
	IUCNStatus         IUCNStatus `json:"iucn_status"`
	Habitat            *string    `json:"habitat"`
	Description        *string    `json:"description"`
	TaxonomyID         int        `json:"taxonomy_id"`
	PopulationOperator *string    `json:"population_operator,omitempty"`
	CurrentTrend       Trend      `json:"current_trend"`

	// RegionIDs carries the desired region associations on writes.
	// Reads hydrate the Regions slice instead.
	RegionIDs []int `json:"-"`

	// Hydrated relations
	Taxonomy *Taxonomy          `json:"taxonomy,omitempty"`
	Regions  []RegionRef        `json:"regions,omitempty"`
	Media    []Media            `json:"media,omitempty"`
	Census   []PopulationCensus `json:"population_census,omitempty"`
	History  []StatusChange     `json:"status_history,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"` // nil = active; non-nil = soft-deleted
}

// Taxonomy is the biological classification tuple a species belongs to.
type Taxonomy struct {
	ID        int    `json:"id"`
	Kingdom   string `json:"kingdom"`
	Phylum    string `json:"phylum"`
	ClassName string `json:"class_name"`
	OrderName string `json:"order_name"`
	Family    string `json:"family"`
	Genus     string `json:"genus"`
}

// RegionRef is a lightweight region association attached to a species.
type RegionRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Media represents an image, video, or document attached to a species.
type Media struct {
	ID        int64     `json:"id"`
	SpeciesID int       `json:"species_id"`
	MediaURL  string    `json:"media_url"`
	MediaType MediaType `json:"media_type"`
	Credit    *string   `json:"credit"`
	License   *string   `json:"license"`
}

// PopulationCensus is a dated population-count observation for a species.
type PopulationCensus struct {
	ID         int64   `json:"id"`
	SpeciesID  int     `json:"species_id"`
	CensusDate string  `json:"census_date"` // ISO-8601 calendar date (YYYY-MM-DD)
	Population int64   `json:"population"`
	SourceID   *int    `json:"source_id"`
	Notes      *string `json:"notes"`
}

// StatusChange is one row of the append-only conservation-status audit trail.
type StatusChange struct {
	ID        int64      `json:"id"`
	SpeciesID int        `json:"species_id"`
	OldStatus IUCNStatus `json:"old_status"`
	NewStatus IUCNStatus `json:"new_status"`
	ChangedAt string     `json:"changed_at"`
	SourceID  *int       `json:"source_id"`
}

// # Search & Filtering

// Filter holds the parameters for a filtered species list query.
type Filter struct {
	// Region matches species associated with a region of this exact name.
	Region string `json:"region,omitempty"`

	// Category matches species whose taxonomy kingdom equals this value
	// (e.g. "Animalia", "Plantae", "Fungi").
	Category string `json:"category,omitempty"`

	// Statuses matches species whose conservation status is any of the
	// given categories. Empty means no status restriction.
	Statuses []IUCNStatus `json:"statuses,omitempty"`

	// Trend matches species with this exact population trajectory.
	Trend Trend `json:"trend,omitempty"`
}

// CriticalStatuses is the status set behind the curated "critical" listing:
// every category that warrants the act-now badge.
var CriticalStatuses = []IUCNStatus{
	StatusCriticallyEndangered,
	StatusEndangered,
	StatusVulnerable,
}

// RescuedStatuses is the status set behind the curated "rescued" listing:
// species that have recovered out of the threatened categories.
var RescuedStatuses = []IUCNStatus{
	StatusLeastConcern,
	StatusNearThreatened,
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldID                 = "id"
	FieldScientificName     = "scientificName"
	FieldCommonName         = "commonName"
	FieldIUCNStatus         = "iucnStatus"
	FieldHabitat            = "habitat"
	FieldDescription        = "description"
	FieldTaxonomyID         = "taxonomyId"
	FieldRegionIDs          = "regionIds"
	FieldPopulation         = "population"
	FieldCensusDate         = "censusDate"
	FieldSourceID           = "sourceId"
	FieldNotes              = "notes"
	FieldImageURL           = "imageUrl"
	FieldPopulationOperator = "populationOperator"
	FieldCurrentTrend       = "currentTrend"
)
