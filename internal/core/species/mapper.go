// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package species

import "strconv"

// # Response Shaping

// DTO is the externally-visible shape of a species after mapping,
// decoupled from the storage schema.
type DTO struct {
	ID             int     `json:"id"`
	Slug           string  `json:"slug"`
	ScientificName string  `json:"scientificName"`
	Name           *string `json:"name,omitempty"` // Legacy alias of commonName kept for the SPA
	CommonName     *string `json:"commonName,omitempty"`
	IUCNStatus     string  `json:"iucnStatus"`
	Status         string  `json:"status"` // Legacy alias of iucnStatus kept for the SPA
	TaxonomyID     int     `json:"taxonomyId"`

	Taxonomy *TaxonomyDTO `json:"taxonomy,omitempty"`

	Description *string `json:"description,omitempty"`
	Habitat     *string `json:"habitat,omitempty"`

	Regions []string   `json:"regions"`
	Media   []MediaDTO `json:"media,omitempty"`

	LatestPopulation *int64  `json:"latestPopulation,omitempty"`
	LatestCensusDate *string `json:"latestCensusDate,omitempty"`

	// Derived fields
	RiskLevel         int    `json:"riskLevel"`
	IsCritical        bool   `json:"isCritical"`
	TrendDirection    string `json:"trendDirection"`
	Scope             string `json:"scope"`
	PopulationDisplay string `json:"populationDisplay,omitempty"`

	Census  []CensusDTO        `json:"populationCensus,omitempty"`
	History []StatusHistoryDTO `json:"statusHistory,omitempty"`
}

// TaxonomyDTO is the wire shape of a taxonomy tuple.
type TaxonomyDTO struct {
	Kingdom   string `json:"kingdom"`
	Phylum    string `json:"phylum"`
	ClassName string `json:"class_name"`
	OrderName string `json:"order_name"`
	Family    string `json:"family"`
	Genus     string `json:"genus"`
}

// MediaDTO is the wire shape of a media attachment.
type MediaDTO struct {
	MediaURL  string  `json:"mediaUrl"`
	MediaType string  `json:"mediaType"`
	Credit    *string `json:"credit,omitempty"`
	License   *string `json:"license,omitempty"`
}

// CensusDTO is the wire shape of a population census row.
type CensusDTO struct {
	CensusDate string  `json:"censusDate"`
	Population int64   `json:"population"`
	SourceID   *int    `json:"sourceId,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// StatusHistoryDTO is the wire shape of a conservation-status transition.
type StatusHistoryDTO struct {
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
	ChangedAt string `json:"changedAt"`
}

// # Derived Fields

// riskLevels maps each IUCN status to a 0-5 severity scale.
//
// EW ranks with EX: "extinct in the wild" is not displayed as less severe
// than extinct. DD and NE carry no evidence of risk and map to 0.
var riskLevels = map[IUCNStatus]int{
	StatusLeastConcern:         0,
	StatusNearThreatened:       1,
	StatusVulnerable:           2,
	StatusEndangered:           3,
	StatusCriticallyEndangered: 4,
	StatusExtinct:              5,
	StatusExtinctInWild:        5,
	StatusDataDeficient:        0,
	StatusNotEvaluated:         0,
}

// RiskLevel returns the 0-5 severity of an IUCN status.
func RiskLevel(status IUCNStatus) int {
	return riskLevels[status]
}

// IsCritical reports whether a status warrants the catalogue's "act now"
// badge. Extinct categories are excluded: there is nothing left to act on.
func IsCritical(status IUCNStatus) bool {
	switch status {
	case StatusCriticallyEndangered, StatusEndangered, StatusVulnerable:
		return true
	}
	return false
}

// TrendDirection translates the internal trend vocabulary into the stable
// public API vocabulary.
func TrendDirection(trend Trend) string {
	switch trend {
	case TrendIncreasing:
		return "up"
	case TrendDecreasing:
		return "down"
	case TrendStable:
		return "stable"
	default:
		return "unknown"
	}
}

// Scope classifies the geographic breadth of a species by its distinct
// region count: more than 2 regions is "global", at least one is
// "regional", none is "unknown".
func Scope(regionCount int) string {
	switch {
	case regionCount > 2:
		return "global"
	case regionCount > 0:
		return "regional"
	default:
		return "unknown"
	}
}

// # Mapper

// Map converts a hydrated [Species] entity into its wire-facing [DTO].
//
// It is a pure function of already-loaded data: derived fields are computed
// without any additional queries.
func Map(entity *Species) *DTO {
	dto := &DTO{
		ID:             entity.ID,
		Slug:           entity.Slug,
		ScientificName: entity.ScientificName,
		Name:           entity.CommonName,
		CommonName:     entity.CommonName,
		IUCNStatus:     string(entity.IUCNStatus),
		Status:         string(entity.IUCNStatus),
		TaxonomyID:     entity.TaxonomyID,
		Description:    entity.Description,
		Habitat:        entity.Habitat,
		Regions:        make([]string, 0, len(entity.Regions)),

		RiskLevel:      RiskLevel(entity.IUCNStatus),
		IsCritical:     IsCritical(entity.IUCNStatus),
		TrendDirection: TrendDirection(entity.CurrentTrend),
		Scope:          Scope(len(entity.Regions)),
	}

	// Region names (empty array, never null, when there are none)
	for _, region := range entity.Regions {
		dto.Regions = append(dto.Regions, region.Name)
	}

	// Taxonomy tuple
	if entity.Taxonomy != nil {
		dto.Taxonomy = &TaxonomyDTO{
			Kingdom:   entity.Taxonomy.Kingdom,
			Phylum:    entity.Taxonomy.Phylum,
			ClassName: entity.Taxonomy.ClassName,
			OrderName: entity.Taxonomy.OrderName,
			Family:    entity.Taxonomy.Family,
			Genus:     entity.Taxonomy.Genus,
		}
	}

	// Media attachments
	for _, media := range entity.Media {
		dto.Media = append(dto.Media, MediaDTO{
			MediaURL:  media.MediaURL,
			MediaType: string(media.MediaType),
			Credit:    media.Credit,
			License:   media.License,
		})
	}

	// Latest census: the row with the greatest census date. ISO-8601 dates
	// compare correctly as strings, so a single lexicographic pass suffices.
	var latest *PopulationCensus
	for index := range entity.Census {
		row := &entity.Census[index]
		if latest == nil || row.CensusDate > latest.CensusDate {
			latest = row
		}
	}
	if latest != nil {
		dto.LatestPopulation = &latest.Population
		dto.LatestCensusDate = &latest.CensusDate

		// populationDisplay concatenates the optional comparison operator
		// with the most recent count (e.g. "~2500").
		operator := ""
		if entity.PopulationOperator != nil {
			operator = *entity.PopulationOperator
		}
		dto.PopulationDisplay = operator + strconv.FormatInt(latest.Population, 10)
	}

	// Full census history
	for _, row := range entity.Census {
		dto.Census = append(dto.Census, CensusDTO{
			CensusDate: row.CensusDate,
			Population: row.Population,
			SourceID:   row.SourceID,
			Notes:      row.Notes,
		})
	}

	// Status audit trail
	for _, change := range entity.History {
		dto.History = append(dto.History, StatusHistoryDTO{
			OldStatus: string(change.OldStatus),
			NewStatus: string(change.NewStatus),
			ChangedAt: change.ChangedAt,
		})
	}

	return dto
}

// MapAll converts a slice of entities, preserving order.
func MapAll(entities []*Species) []*DTO {
	dtos := make([]*DTO, 0, len(entities))
	for _, entity := range entities {
		dtos = append(dtos, Map(entity))
	}
	return dtos
}
