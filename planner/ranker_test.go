package planner

import (
	"testing"

	"github.com/lankatransit/trip-planner/advisory"
	"github.com/lankatransit/trip-planner/catalog"
)

func directResult(routeNumber string, timeMins int) SearchResult {
	route := &catalog.Route{ID: "route-" + routeNumber, RouteNumber: routeNumber}
	return SearchResult{
		ID:            directID(route),
		Type:          TypeDirect,
		TotalTimeMins: timeMins,
		Legs:          []Leg{{Route: route}},
	}
}

func transferResult(firstNumber, secondNumber, hubName string, timeMins int) SearchResult {
	first := &catalog.Route{ID: "route-" + firstNumber, RouteNumber: firstNumber}
	second := &catalog.Route{ID: "route-" + secondNumber, RouteNumber: secondNumber}
	hub := &catalog.Stop{ID: "stop-" + hubName, Name: hubName}
	return SearchResult{
		ID:            transferID(first, second),
		Type:          TypeTransfer,
		TransferCount: 1,
		TotalTimeMins: timeMins,
		Legs: []Leg{
			{Route: first, To: hub},
			{Route: second, From: hub},
		},
	}
}

func routeKeys(results []SearchResult) []string {
	keys := make([]string, len(results))
	for i := range results {
		keys[i] = results[i].routeKey()
	}
	return keys
}

func assertOrder(t *testing.T, got []SearchResult, expected []string) {
	t.Helper()
	keys := routeKeys(got)
	if len(keys) != len(expected) {
		t.Fatalf("expected %d results %v, got %d %v", len(expected), expected, len(keys), keys)
	}
	for i := range expected {
		if keys[i] != expected[i] {
			t.Fatalf("expected order %v, got %v", expected, keys)
		}
	}
}

func TestRankStandardOrdersDirectFirst(t *testing.T) {
	direct := []SearchResult{directResult("177", 40), directResult("138", 30)}
	transfers := []SearchResult{transferResult("174", "171", "Rajagiriya", 20)}

	got := rank(direct, transfers, advisory.Standard(), DefaultConfig())

	// Even a faster transfer sorts after every direct option.
	assertOrder(t, got, []string{"138", "177", "174->171"})
}

func TestRankDirectPriorityDropsMarginalTransfers(t *testing.T) {
	direct := []SearchResult{directResult("177", 30)}
	advice := advisory.Advice{Strategy: advisory.StrategyDirectPriority}

	tests := []struct {
		name         string
		transferTime int
		expected     []string
	}{
		{
			name:         "transfer inside the margin is dropped",
			transferTime: 25,
			expected:     []string{"177"},
		},
		{
			name:         "transfer exactly at the margin is dropped",
			transferTime: 20,
			expected:     []string{"177"},
		},
		{
			name:         "transfer clearly faster survives",
			transferTime: 15,
			expected:     []string{"177", "174->171"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			transfers := []SearchResult{transferResult("174", "171", "Rajagiriya", tc.transferTime)}
			got := rank(direct, transfers, advice, DefaultConfig())
			assertOrder(t, got, tc.expected)
		})
	}
}

func TestRankDirectPriorityWithoutDirectKeepsTransfers(t *testing.T) {
	transfers := []SearchResult{transferResult("174", "171", "Rajagiriya", 55)}
	advice := advisory.Advice{Strategy: advisory.StrategyDirectPriority}
	got := rank(nil, transfers, advice, DefaultConfig())
	assertOrder(t, got, []string{"174->171"})
}

func TestRankTransferRequiredBiasesScoreNotTime(t *testing.T) {
	transfers := []SearchResult{
		transferResult("174", "171", "Nugegoda", 50),
		transferResult("177", "171", "Rajagiriya", 60),
	}
	advice := advisory.Advice{
		Strategy:                advisory.StrategyTransferRequired,
		PreferredTransferPoints: []string{"Rajagiriya"},
	}

	got := rank(nil, transfers, advice, DefaultConfig())

	// The slower journey through the preferred hub wins the ordering.
	assertOrder(t, got, []string{"177->171", "174->171"})

	// Displayed travel times are untouched by the bias.
	if got[0].TotalTimeMins != 60 || got[1].TotalTimeMins != 50 {
		t.Errorf("total times changed by ranking: %d, %d", got[0].TotalTimeMins, got[1].TotalTimeMins)
	}
}

func TestRankTransferRequiredWithoutHubsIsNeutral(t *testing.T) {
	transfers := []SearchResult{
		transferResult("174", "171", "Rajagiriya", 60),
		transferResult("177", "171", "Borella", 50),
	}
	advice := advisory.Advice{Strategy: advisory.StrategyTransferRequired}

	got := rank(nil, transfers, advice, DefaultConfig())
	assertOrder(t, got, []string{"177->171", "174->171"})
}

func TestRankDedupsByRouteKeyFirstWins(t *testing.T) {
	// Two direct candidates on the same route number: only the faster one
	// survives because it sorts first.
	direct := []SearchResult{directResult("177", 40), directResult("177", 25)}
	got := rank(direct, nil, advisory.Standard(), DefaultConfig())
	if len(got) != 1 {
		t.Fatalf("expected 1 deduplicated result, got %d", len(got))
	}
	if got[0].TotalTimeMins != 25 {
		t.Errorf("expected the faster duplicate to win, got %d mins", got[0].TotalTimeMins)
	}
}

func TestRankTruncatesToMaxResults(t *testing.T) {
	direct := []SearchResult{
		directResult("100", 10),
		directResult("138", 20),
		directResult("154", 30),
		directResult("171", 40),
		directResult("174", 50),
		directResult("177", 60),
	}
	got := rank(direct, nil, advisory.Standard(), DefaultConfig())
	if len(got) != DefaultConfig().MaxResults {
		t.Fatalf("expected %d results, got %d", DefaultConfig().MaxResults, len(got))
	}
	assertOrder(t, got, []string{"100", "138", "154", "171", "174"})
}
