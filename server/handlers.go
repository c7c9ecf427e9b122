package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/lankatransit/trip-planner/catalog"
	"github.com/lankatransit/trip-planner/planner"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

type healthResponse struct {
	Status string `json:"status"`
	Routes int    `json:"routes"`
	Stops  int    `json:"stops"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type searchResponse struct {
	Results []planner.SearchResult `json:"results"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Routes: s.snap.RouteCount(),
		Stops:  s.snap.StopCount(),
	})
}

func searchParams(r *http.Request) (from, to string, err error) {
	from = strings.TrimSpace(r.URL.Query().Get("from"))
	to = strings.TrimSpace(r.URL.Query().Get("to"))
	if from == "" {
		return "", "", &QueryError{Msg: "You must provide a from parameter."}
	}
	if to == "" {
		return "", "", &QueryError{Msg: "You must provide a to parameter."}
	}
	return from, to, nil
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	from, to, err := searchParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	results, err := s.planner.Search(r.Context(), from, to)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Results: results})
}

func (s *Server) handleStops(w http.ResponseWriter, r *http.Request) {
	stops := s.snap.Stops()
	if q := strings.TrimSpace(strings.ToLower(r.URL.Query().Get("q"))); q != "" {
		stops = planner.MatchStops(q, stops)
	}
	if stops == nil {
		stops = []catalog.Stop{}
	}
	writeJSON(w, http.StatusOK, stops)
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snap.Routes())
}
