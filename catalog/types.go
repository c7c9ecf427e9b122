package catalog

// Stop is a physical bus stop. Stops are reference data created by the
// seeding and contribution flows; the planner never mutates them.
type Stop struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Landmark  string  `json:"landmark,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RouteStop places a Stop on a Route. StopOrder is 1-based and strictly
// increasing along the route but not necessarily contiguous.
type RouteStop struct {
	RouteID           string `json:"route_id"`
	StopID            string `json:"stop_id"`
	StopOrder         int    `json:"stop_order"`
	TimeFromStartMins int    `json:"estimated_time_from_start_mins"`

	// Stop is resolved during snapshot construction. RouteStops whose
	// stop_id has no matching Stop are dropped, so a nil Stop never
	// escapes the snapshot.
	Stop *Stop `json:"-"`
}

// Route is a fixed bus route: an ordered sequence of stops, a flat fare
// estimate, and an end-to-end duration estimate.
type Route struct {
	ID                    string      `json:"id"`
	RouteNumber           string      `json:"route_number"`
	RouteName             string      `json:"route_name"`
	FareEstimate          float64     `json:"fare_estimate,omitempty"`
	EstimatedDurationMins int         `json:"estimated_duration_mins,omitempty"`
	Stops                 []RouteStop `json:"stops"`
}
