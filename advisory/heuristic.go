package advisory

import (
	"context"
	"strings"
)

// Heuristic is an offline advisor built on a keyword table of place names.
// The defaults encode Colombo geography: journeys from the coastal Galle
// Road corridor to the inland suburbs are best made through the central
// hubs rather than via Pettah. It is a stand-in default policy, not a
// correctness rule; swap the word lists, or the whole Advisor, for other
// networks.
type Heuristic struct {
	Coastal       []string
	Inland        []string
	PreferredHubs []string
}

// NewHeuristic returns the default Colombo keyword policy.
func NewHeuristic() *Heuristic {
	return &Heuristic{
		Coastal: []string{
			"kollupitiya", "bambalapitiya", "wellawatte", "dehiwala",
			"mount lavinia", "galle road",
		},
		Inland: []string{
			"thalawathugoda", "malabe", "kaduwela", "battaramulla",
			"koswatte", "pelawatte",
		},
		PreferredHubs: []string{
			"Borella Junction", "Town Hall", "Sethsiripaya", "Rajagiriya",
		},
	}
}

func (h *Heuristic) Suggest(ctx context.Context, originText, destinationText string, stopNames []string) (Advice, error) {
	from := strings.ToLower(originText)
	to := strings.ToLower(destinationText)

	if containsAny(from, h.Coastal) && containsAny(to, h.Inland) {
		return Advice{
			Strategy:                StrategyTransferRequired,
			Logic:                   "inland journey from the coastal corridor: transfer at a central hub",
			PreferredTransferPoints: h.PreferredHubs,
		}, nil
	}
	if containsAny(from, h.Coastal) && containsAny(to, h.Coastal) {
		return Advice{
			Strategy: StrategyDirectPriority,
			Logic:    "both ends on the coastal corridor: direct services run the whole way",
		}, nil
	}
	return Standard(), nil
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
