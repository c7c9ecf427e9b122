package planner

import (
	"strings"

	"github.com/lankatransit/trip-planner/catalog"
)

// MatchStops returns every stop whose name or landmark contains the query,
// case-insensitively, in catalog order. The caller trims and lower-cases
// the query and enforces the minimum length; an unknown place yields an
// empty slice, never an error.
func MatchStops(query string, stops []catalog.Stop) []catalog.Stop {
	if query == "" {
		return nil
	}
	var out []catalog.Stop
	for _, s := range stops {
		if strings.Contains(strings.ToLower(s.Name), query) {
			out = append(out, s)
			continue
		}
		if s.Landmark != "" && strings.Contains(strings.ToLower(s.Landmark), query) {
			out = append(out, s)
		}
	}
	return out
}

func stopIDSet(stops []catalog.Stop) map[string]struct{} {
	set := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		set[s.ID] = struct{}{}
	}
	return set
}
