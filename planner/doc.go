// Package planner implements trip search over a catalog snapshot: fuzzy
// stop resolution, direct route matching, single-transfer matching with a
// geographic detour filter, and advisory-biased ranking.
package planner
