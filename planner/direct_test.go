package planner

import "testing"

func TestFindDirect(t *testing.T) {
	snap := testSnapshot(t)

	tests := []struct {
		name         string
		originID     string
		destID       string
		expectedIDs  []string
		expectedTime int
		expectedFare float64
	}{
		{
			name:         "single route forward",
			originID:     "stop-kollupitiya",
			destID:       "stop-rajagiriya",
			expectedIDs:  []string{"direct-route-177"},
			expectedTime: 25,
			expectedFare: 60,
		},
		{
			name:        "wrong direction yields nothing",
			originID:    "stop-rajagiriya",
			destID:      "stop-kollupitiya",
			expectedIDs: nil,
		},
		{
			name:         "shared segment on two routes",
			originID:     "stop-borella",
			destID:       "stop-battaramulla",
			expectedIDs:  []string{"direct-route-177", "direct-route-174"},
			expectedTime: 20,
			expectedFare: 60,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := findDirect(snap,
				map[string]struct{}{tc.originID: {}},
				map[string]struct{}{tc.destID: {}},
			)
			if len(got) != len(tc.expectedIDs) {
				t.Fatalf("expected %d results, got %d", len(tc.expectedIDs), len(got))
			}
			for i, id := range tc.expectedIDs {
				if got[i].ID != id {
					t.Errorf("result %d: expected id %s, got %s", i, id, got[i].ID)
				}
			}
			if len(got) == 0 {
				return
			}
			first := got[0]
			if first.TotalTimeMins != tc.expectedTime {
				t.Errorf("expected total time %d, got %d", tc.expectedTime, first.TotalTimeMins)
			}
			if first.TotalFare != tc.expectedFare {
				t.Errorf("expected fare %.0f, got %.0f", tc.expectedFare, first.TotalFare)
			}
			if first.TransferCount != 0 || first.Type != TypeDirect {
				t.Errorf("expected direct result with zero transfers, got %+v", first)
			}
			if len(first.Legs) != 1 {
				t.Fatalf("expected 1 leg, got %d", len(first.Legs))
			}
		})
	}
}

func TestFindDirectSameStopExcluded(t *testing.T) {
	snap := testSnapshot(t)
	got := findDirect(snap,
		map[string]struct{}{"stop-borella": {}},
		map[string]struct{}{"stop-borella": {}},
	)
	if len(got) != 0 {
		t.Fatalf("expected no results for identical origin and destination, got %d", len(got))
	}
}
