package planner

import (
	"github.com/lankatransit/trip-planner/catalog"
	"github.com/lankatransit/trip-planner/geo"
)

// transferBuilder accumulates everything discovered for one (routeA, routeB)
// pair. The first valid handoff becomes the primary itinerary; later valid
// handoffs only widen the transfer zone via AlternativeOverlapStops.
// Assembling through a keyed builder, then flattening once, keeps the merge
// independent of discovery order.
type transferBuilder struct {
	result     SearchResult
	primaryHub string
	seen       map[string]struct{}
	overlap    []*catalog.Stop
}

func newTransferBuilder(routeA, routeB *catalog.Route, origin, transfer, boarding, dest *catalog.RouteStop, cfg Config) *transferBuilder {
	leg1Time := transfer.TimeFromStartMins - origin.TimeFromStartMins
	leg2Time := dest.TimeFromStartMins - boarding.TimeFromStartMins
	fare1 := legFare(routeA, cfg)
	fare2 := legFare(routeB, cfg)

	return &transferBuilder{
		primaryHub: transfer.StopID,
		seen:       map[string]struct{}{transfer.StopID: {}},
		result: SearchResult{
			ID:            transferID(routeA, routeB),
			Type:          TypeTransfer,
			TransferCount: 1,
			TotalTimeMins: leg1Time + leg2Time + cfg.TransferOverheadMins,
			TotalFare:     fare1 + fare2,
			Legs: []Leg{
				{
					Route:             routeA,
					From:              origin.Stop,
					To:                transfer.Stop,
					FromOrder:         origin.StopOrder,
					ToOrder:           transfer.StopOrder,
					EstimatedTimeMins: leg1Time,
					Fare:              fare1,
				},
				{
					Route:             routeB,
					From:              transfer.Stop,
					To:                dest.Stop,
					FromOrder:         boarding.StopOrder,
					ToOrder:           dest.StopOrder,
					EstimatedTimeMins: leg2Time,
					Fare:              fare2,
				},
			},
		},
	}
}

// addHandoff records another order-valid shared stop between the two routes.
func (b *transferBuilder) addHandoff(hub *catalog.Stop) {
	if _, ok := b.seen[hub.ID]; ok {
		return
	}
	b.seen[hub.ID] = struct{}{}
	b.overlap = append(b.overlap, hub)
}

func (b *transferBuilder) build() SearchResult {
	r := b.result
	r.Legs[0].AlternativeOverlapStops = b.overlap
	return r
}

// legFare applies the flat per-route fare, falling back to the configured
// default when a route carries no estimate.
func legFare(route *catalog.Route, cfg Config) float64 {
	if route.FareEstimate > 0 {
		return route.FareEstimate
	}
	return cfg.DefaultLegFare
}

// findTransfers enumerates every two-leg itinerary: ride route A from a
// matched origin to some later stop, hand off to a different route B, ride
// B to a matched destination strictly downstream of the handoff. Every
// later stop on A is tried as a handoff, not just route intersections; a
// geographic detour filter prunes handoffs that drag the journey far off
// the straight line. The filter is a heuristic: pruning an honest but
// roundabout itinerary is acceptable, keeping an absurd one is not.
func findTransfers(snap *catalog.Snapshot, originIDs, destIDs map[string]struct{}, originAnchor, destAnchor *catalog.Stop, cfg Config) []SearchResult {
	directAirKm := geo.DistanceKm(
		originAnchor.Latitude, originAnchor.Longitude,
		destAnchor.Latitude, destAnchor.Longitude,
	)

	builders := map[string]*transferBuilder{}
	var order []string

	routes := snap.Routes()
	for ai := range routes {
		routeA := &routes[ai]
		for oi := range routeA.Stops {
			origin := &routeA.Stops[oi]
			if _, ok := originIDs[origin.StopID]; !ok {
				continue
			}
			for ti := range routeA.Stops {
				transfer := &routeA.Stops[ti]
				if transfer.StopOrder <= origin.StopOrder {
					continue
				}
				hub := transfer.Stop
				detourKm := geo.DistanceKm(originAnchor.Latitude, originAnchor.Longitude, hub.Latitude, hub.Longitude) +
					geo.DistanceKm(hub.Latitude, hub.Longitude, destAnchor.Latitude, destAnchor.Longitude)
				if detourKm > directAirKm*cfg.DetourToleranceFactor {
					continue
				}

				for _, occ := range snap.OccurrencesAt(transfer.StopID) {
					routeB := occ.Route
					if routeB.ID == routeA.ID {
						continue
					}
					boarding := occ.RouteStop
					for di := range routeB.Stops {
						dest := &routeB.Stops[di]
						if _, ok := destIDs[dest.StopID]; !ok {
							continue
						}
						if dest.StopOrder <= boarding.StopOrder {
							continue
						}

						key := routeA.ID + "|" + routeB.ID
						if b, ok := builders[key]; ok {
							b.addHandoff(hub)
							continue
						}
						builders[key] = newTransferBuilder(routeA, routeB, origin, transfer, boarding, dest, cfg)
						order = append(order, key)
					}
				}
			}
		}
	}

	out := make([]SearchResult, 0, len(order))
	for _, key := range order {
		out = append(out, builders[key].build())
	}
	return out
}
