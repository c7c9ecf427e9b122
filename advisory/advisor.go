package advisory

import "context"

// Strategy is a ranking hint for the planner.
type Strategy string

const (
	// StrategyDirectPriority prefers single-route itineraries.
	StrategyDirectPriority Strategy = "direct_priority"
	// StrategyTransferRequired prefers itineraries through known hubs.
	StrategyTransferRequired Strategy = "transfer_required"
	// StrategyStandard applies no ranking bias.
	StrategyStandard Strategy = "standard"
)

// Advice is a best-effort ranking hint. It only ever biases result order;
// itinerary computation does not depend on it.
type Advice struct {
	Strategy                Strategy `json:"strategy"`
	Logic                   string   `json:"logic,omitempty"`
	PreferredTransferPoints []string `json:"preferredTransferPoints,omitempty"`
}

// Standard is the fallback advice used whenever no advisor is configured
// or the configured one fails.
func Standard() Advice {
	return Advice{Strategy: StrategyStandard}
}

// Advisor produces journey advice for a free-text origin/destination query.
// Implementations must be failure-tolerant: the planner treats any error as
// "no advice" and continues with the standard strategy.
type Advisor interface {
	Suggest(ctx context.Context, originText, destinationText string, stopNames []string) (Advice, error)
}

// Noop always returns the standard strategy.
type Noop struct{}

func (Noop) Suggest(ctx context.Context, originText, destinationText string, stopNames []string) (Advice, error) {
	return Standard(), nil
}
