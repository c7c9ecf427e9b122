package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open connects to the catalog database.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// Ping verifies the database connection with a bounded timeout.
func Ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

// FetchSnapshot loads the whole stop and route catalog and returns a
// normalized snapshot. The catalog is loaded wholesale before searching;
// there is no partial or streaming load.
func FetchSnapshot(ctx context.Context, db *sql.DB) (*Snapshot, error) {
	stops, err := fetchStops(ctx, db)
	if err != nil {
		return nil, err
	}
	routes, err := fetchRoutes(ctx, db)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(routes, stops), nil
}

func fetchStops(ctx context.Context, db *sql.DB) ([]Stop, error) {
	q := `SELECT id, name, COALESCE(landmark, ''), latitude, longitude FROM stops`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query stops: %w", err)
	}
	defer rows.Close()

	var stops []Stop
	for rows.Next() {
		var s Stop
		if err := rows.Scan(&s.ID, &s.Name, &s.Landmark, &s.Latitude, &s.Longitude); err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}
	return stops, rows.Err()
}

func fetchRoutes(ctx context.Context, db *sql.DB) ([]Route, error) {
	q := `SELECT id, route_number, route_name,
                 COALESCE(fare_estimate, 0), COALESCE(estimated_duration_mins, 0)
          FROM routes`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query routes: %w", err)
	}
	defer rows.Close()

	var routes []Route
	byID := map[string]int{}
	for rows.Next() {
		var r Route
		if err := rows.Scan(&r.ID, &r.RouteNumber, &r.RouteName, &r.FareEstimate, &r.EstimatedDurationMins); err != nil {
			return nil, err
		}
		byID[r.ID] = len(routes)
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rsq := `SELECT route_id, stop_id, stop_order, COALESCE(estimated_time_from_start_mins, 0)
            FROM route_stops ORDER BY route_id, stop_order`
	rsRows, err := db.QueryContext(ctx, rsq)
	if err != nil {
		return nil, fmt.Errorf("query route_stops: %w", err)
	}
	defer rsRows.Close()

	for rsRows.Next() {
		var rs RouteStop
		if err := rsRows.Scan(&rs.RouteID, &rs.StopID, &rs.StopOrder, &rs.TimeFromStartMins); err != nil {
			return nil, err
		}
		idx, ok := byID[rs.RouteID]
		if !ok {
			// orphan route_stop rows are ignored
			continue
		}
		routes[idx].Stops = append(routes[idx].Stops, rs)
	}
	return routes, rsRows.Err()
}
