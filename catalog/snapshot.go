package catalog

import (
	"log"
	"sort"
)

// Occurrence is one placement of a stop on a route. A stop shared by many
// routes (a transfer hub) has one occurrence per route.
type Occurrence struct {
	Route     *Route
	RouteStop *RouteStop
}

// Snapshot is a read-only, in-memory view of the route and stop catalog.
// It is built once from loaded data and shared by every search; nothing
// mutates it afterwards, so concurrent searches need no locking.
type Snapshot struct {
	routes      []Route
	stops       []Stop
	stopByID    map[string]*Stop
	occurrences map[string][]Occurrence // stop_id -> every placement on a route
}

// NewSnapshot normalizes raw catalog data into a searchable snapshot:
// route-stops are sorted by stop_order, entries referencing a missing stop
// are dropped, and Stop pointers are resolved.
func NewSnapshot(routes []Route, stops []Stop) *Snapshot {
	s := &Snapshot{
		stops:       stops,
		stopByID:    make(map[string]*Stop, len(stops)),
		occurrences: map[string][]Occurrence{},
	}
	for i := range s.stops {
		s.stopByID[s.stops[i].ID] = &s.stops[i]
	}

	s.routes = make([]Route, 0, len(routes))
	for _, r := range routes {
		kept := make([]RouteStop, 0, len(r.Stops))
		for _, rs := range r.Stops {
			stop, ok := s.stopByID[rs.StopID]
			if !ok {
				log.Printf("catalog: route %s references unknown stop %s, skipping", r.ID, rs.StopID)
				continue
			}
			rs.Stop = stop
			kept = append(kept, rs)
		}
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].StopOrder < kept[j].StopOrder
		})
		r.Stops = kept
		s.routes = append(s.routes, r)
	}

	for i := range s.routes {
		r := &s.routes[i]
		for j := range r.Stops {
			rs := &r.Stops[j]
			s.occurrences[rs.StopID] = append(s.occurrences[rs.StopID], Occurrence{Route: r, RouteStop: rs})
		}
	}
	return s
}

// Routes returns every route in the snapshot, route-stops sorted by order.
func (s *Snapshot) Routes() []Route { return s.routes }

// Stops returns every stop in catalog order.
func (s *Snapshot) Stops() []Stop { return s.stops }

// StopByID looks up a stop by its identifier.
func (s *Snapshot) StopByID(id string) (*Stop, bool) {
	st, ok := s.stopByID[id]
	return st, ok
}

// OccurrencesAt returns every (route, route-stop) placement of the given
// stop across all routes.
func (s *Snapshot) OccurrencesAt(stopID string) []Occurrence {
	return s.occurrences[stopID]
}

// RouteCount reports the number of routes in the snapshot.
func (s *Snapshot) RouteCount() int { return len(s.routes) }

// StopCount reports the number of stops in the snapshot.
func (s *Snapshot) StopCount() int { return len(s.stops) }
