// Package dto defines data transfer objects for the awards HTTP API.
package dto

import "github.com/shopspring/decimal"

// AwardItem represents one award record in the API response.
// AwardAmount serializes as a decimal string, or null when the source
// value could not be parsed as a number.
type AwardItem struct {
	Agency      string              `json:"agency"`
	Phase       string              `json:"phase"`
	Program     string              `json:"program"`
	AwardAmount decimal.NullDecimal `json:"award_amount"`
	AwardYear   int                 `json:"award_year"`
	City        string              `json:"city"`
	State       string              `json:"state"`
}

// AwardsResponse is the detail-table payload: the filtered record sequence
// for one firm, plus a non-fatal warning when the fetch degraded.
type AwardsResponse struct {
	Firm    string      `json:"firm"`
	Count   int         `json:"count"`
	Warning string      `json:"warning,omitempty"`
	Records []AwardItem `json:"records"`
}

// GroupTotalItem is one grouped-summary row: a category value and the sum of
// award amounts over the filtered records carrying that value.
type GroupTotalItem struct {
	Key          string          `json:"key"`
	TotalAwarded decimal.Decimal `json:"total_awarded"`
}

// SummaryResponse carries the KPIs and the three grouped summaries used by
// the dashboard charts (choropleth by state, bar by agency, pie by phase).
type SummaryResponse struct {
	Firm          string           `json:"firm"`
	TotalAwarded  decimal.Decimal  `json:"total_awarded"`
	TotalProjects int              `json:"total_projects"`
	ByState       []GroupTotalItem `json:"by_state"`
	ByAgency      []GroupTotalItem `json:"by_agency"`
	ByPhase       []GroupTotalItem `json:"by_phase"`
	Warning       string           `json:"warning,omitempty"`
}
