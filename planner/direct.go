package planner

import "github.com/lankatransit/trip-planner/catalog"

// findDirect emits one result per (origin, destination) route-stop pair on
// the same route with strictly increasing stop_order. An ambiguous query
// matching several stops on one route yields several results; the ranker
// dedupes by route number later.
func findDirect(snap *catalog.Snapshot, originIDs, destIDs map[string]struct{}) []SearchResult {
	var results []SearchResult
	routes := snap.Routes()
	for i := range routes {
		route := &routes[i]
		for oi := range route.Stops {
			origin := &route.Stops[oi]
			if _, ok := originIDs[origin.StopID]; !ok {
				continue
			}
			for di := range route.Stops {
				dest := &route.Stops[di]
				if _, ok := destIDs[dest.StopID]; !ok {
					continue
				}
				if origin.StopOrder >= dest.StopOrder {
					continue
				}
				timeMins := dest.TimeFromStartMins - origin.TimeFromStartMins
				results = append(results, SearchResult{
					ID:            directID(route),
					Type:          TypeDirect,
					TransferCount: 0,
					TotalTimeMins: timeMins,
					TotalFare:     route.FareEstimate,
					Legs: []Leg{{
						Route:             route,
						From:              origin.Stop,
						To:                dest.Stop,
						FromOrder:         origin.StopOrder,
						ToOrder:           dest.StopOrder,
						EstimatedTimeMins: timeMins,
						Fare:              route.FareEstimate,
					}},
				})
			}
		}
	}
	return results
}
