package planner

import (
	"fmt"
	"strings"

	"github.com/lankatransit/trip-planner/catalog"
)

// ResultType distinguishes single-ride itineraries from one-transfer ones.
type ResultType string

const (
	TypeDirect   ResultType = "direct"
	TypeTransfer ResultType = "transfer"
)

// Leg is one continuous ride on a single route between two stops.
type Leg struct {
	Route             *catalog.Route `json:"route"`
	From              *catalog.Stop  `json:"from"`
	To                *catalog.Stop  `json:"to"`
	FromOrder         int            `json:"fromOrder"`
	ToOrder           int            `json:"toOrder"`
	EstimatedTimeMins int            `json:"estimated_time_mins"`
	Fare              float64        `json:"fare"`

	// AlternativeOverlapStops lists every other stop shared by both routes
	// of a transfer journey where the rider could equally hand off.
	// Populated on the first leg of transfer results only.
	AlternativeOverlapStops []*catalog.Stop `json:"alternativeOverlapStops,omitempty"`
}

// SearchResult is one ranked itinerary: a direct ride or a two-leg journey
// through a transfer hub.
type SearchResult struct {
	ID            string     `json:"id"`
	Type          ResultType `json:"type"`
	Legs          []Leg      `json:"legs"`
	TotalTimeMins int        `json:"total_time_mins"`
	TotalFare     float64    `json:"total_fare"`
	TransferCount int        `json:"transferCount"`

	// RankScore orders results. Advisory bonuses and penalties land here,
	// never on TotalTimeMins, so the displayed travel time stays honest.
	RankScore int `json:"-"`
}

// routeKey identifies an itinerary by its ordered route numbers, e.g.
// "177" or "177->174". Used for deduplication.
func (r *SearchResult) routeKey() string {
	nums := make([]string, len(r.Legs))
	for i, leg := range r.Legs {
		nums[i] = leg.Route.RouteNumber
	}
	return strings.Join(nums, "->")
}

func directID(route *catalog.Route) string {
	return fmt.Sprintf("direct-%s", route.ID)
}

func transferID(first, second *catalog.Route) string {
	return fmt.Sprintf("transfer-%s-%s", first.ID, second.ID)
}
