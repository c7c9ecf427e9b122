// Package server exposes the trip planner over HTTP: search, stop and
// route lookups, health and Prometheus metrics.
package server
