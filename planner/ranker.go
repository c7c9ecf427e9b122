package planner

import (
	"sort"
	"strings"

	"github.com/lankatransit/trip-planner/advisory"
)

// rank merges direct and transfer candidates into the final list: the
// advisory strategy biases RankScore, direct results sort before transfer
// results, each type orders by ascending score, duplicates collapse on the
// ordered route-number key, and the list truncates to MaxResults.
func rank(direct, transfers []SearchResult, advice advisory.Advice, cfg Config) []SearchResult {
	for i := range direct {
		direct[i].RankScore = direct[i].TotalTimeMins
	}
	for i := range transfers {
		transfers[i].RankScore = transfers[i].TotalTimeMins
	}

	switch advice.Strategy {
	case advisory.StrategyDirectPriority:
		// Transfers survive only when they beat the best direct time by
		// more than the margin.
		if len(direct) > 0 {
			best := direct[0].TotalTimeMins
			for _, d := range direct[1:] {
				if d.TotalTimeMins < best {
					best = d.TotalTimeMins
				}
			}
			var kept []SearchResult
			for _, tr := range transfers {
				if tr.TotalTimeMins < best-cfg.DirectPriorityMarginMins {
					kept = append(kept, tr)
				}
			}
			transfers = kept
		}
	case advisory.StrategyTransferRequired:
		// Score adjustment only. TotalTimeMins is what riders see and
		// must stay untouched.
		if len(advice.PreferredTransferPoints) > 0 {
			for i := range transfers {
				hub := transfers[i].Legs[1].From.Name
				if nameMatchesAny(hub, advice.PreferredTransferPoints) {
					transfers[i].RankScore -= cfg.PreferredHubBonusMins
				} else {
					transfers[i].RankScore += cfg.NonPreferredHubPenaltyMins
				}
			}
		}
	}

	sort.SliceStable(direct, func(i, j int) bool { return direct[i].RankScore < direct[j].RankScore })
	sort.SliceStable(transfers, func(i, j int) bool { return transfers[i].RankScore < transfers[j].RankScore })

	seen := map[string]struct{}{}
	out := make([]SearchResult, 0, len(direct)+len(transfers))
	for _, r := range append(direct, transfers...) {
		key := r.routeKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}

	if len(out) > cfg.MaxResults {
		out = out[:cfg.MaxResults]
	}
	return out
}

func nameMatchesAny(stopName string, preferred []string) bool {
	name := strings.ToLower(stopName)
	for _, p := range preferred {
		if strings.Contains(name, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
