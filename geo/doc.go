// Package geo provides great-circle distance calculations over WGS84
// coordinates. It is used by the trip planner to judge the geographic
// plausibility of transfer points.
package geo
