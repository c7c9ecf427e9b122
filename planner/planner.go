package planner

import (
	"context"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lankatransit/trip-planner/advisory"
	"github.com/lankatransit/trip-planner/catalog"
	"github.com/lankatransit/trip-planner/metrics"
)

// Config tunes the search heuristics. Every knob here shapes result
// quality, which is why none of them are literals buried in the matchers.
type Config struct {
	// DetourToleranceFactor rejects a transfer hub when travelling through
	// it exceeds this multiple of the origin-destination air distance.
	// Tighter values prune harder; 1.35 keeps transfers roughly on the
	// way, 2.5 tolerates wide arcs through the city.
	DetourToleranceFactor float64

	// TransferOverheadMins models walking and waiting at the handoff.
	// It is a fixed charge, not derived from data.
	TransferOverheadMins int

	// MaxResults truncates the final ranked list.
	MaxResults int

	// DirectPriorityMarginMins: under direct_priority advice, a transfer
	// survives only if it beats the best direct time by more than this.
	DirectPriorityMarginMins int

	// PreferredHubBonusMins / NonPreferredHubPenaltyMins adjust RankScore
	// under transfer_required advice.
	PreferredHubBonusMins      int
	NonPreferredHubPenaltyMins int

	// DefaultLegFare substitutes for a transfer leg whose route carries
	// no fare estimate.
	DefaultLegFare float64

	// MinQueryLen treats shorter queries as "no match" to avoid
	// pathological fan-out on one-letter searches.
	MinQueryLen int
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		DetourToleranceFactor:      1.35,
		TransferOverheadMins:       15,
		MaxResults:                 5,
		DirectPriorityMarginMins:   10,
		PreferredHubBonusMins:      20,
		NonPreferredHubPenaltyMins: 90,
		DefaultLegFare:             50,
		MinQueryLen:                2,
	}
}

// Planner is the search orchestrator. It is a pure function of the catalog
// snapshot, the query, and the advisory response; the surrounding app owns
// every piece of mutable state except the busy flag.
type Planner struct {
	snap    *catalog.Snapshot
	advisor advisory.Advisor
	cfg     Config

	// Metrics is optional; a nil collector disables instrumentation.
	Metrics *metrics.Collector

	searching atomic.Bool
}

// New builds a planner over a read-only catalog snapshot. A nil advisor
// behaves like advisory.Noop.
func New(snap *catalog.Snapshot, advisor advisory.Advisor, cfg Config) *Planner {
	if advisor == nil {
		advisor = advisory.Noop{}
	}
	return &Planner{snap: snap, advisor: advisor, cfg: cfg}
}

// Searching reports whether a search is currently in flight. Concurrent
// searches are allowed to race; callers wanting debounce should do it at
// the UI layer.
func (p *Planner) Searching() bool { return p.searching.Load() }

// Search resolves the free-text origin and destination against the stop
// catalog and returns the ranked itineraries. "No such place" and
// too-short queries are normal outcomes producing an empty list, not
// errors; the only error returned is context cancellation.
func (p *Planner) Search(ctx context.Context, originText, destinationText string) ([]SearchResult, error) {
	p.searching.Store(true)
	defer p.searching.Store(false)

	started := time.Now()
	searchID := uuid.NewString()
	defer func() {
		if p.Metrics != nil {
			p.Metrics.SearchesTotal.Inc()
			p.Metrics.SearchDuration.Observe(time.Since(started).Seconds())
		}
	}()

	origin := strings.ToLower(strings.TrimSpace(originText))
	dest := strings.ToLower(strings.TrimSpace(destinationText))
	if len(origin) < p.cfg.MinQueryLen || len(dest) < p.cfg.MinQueryLen {
		return p.empty(), nil
	}

	originStops := MatchStops(origin, p.snap.Stops())
	destStops := MatchStops(dest, p.snap.Stops())
	if len(originStops) == 0 || len(destStops) == 0 {
		log.Printf("search %s: %q -> %q matched no stops", searchID, originText, destinationText)
		return p.empty(), nil
	}

	// The advisory call crosses the network; run it alongside the
	// CPU-bound matching and join before ranking.
	adviceCh := make(chan advisory.Advice, 1)
	go func() {
		adviceCh <- p.consult(ctx, originText, destinationText)
	}()

	originIDs := stopIDSet(originStops)
	destIDs := stopIDSet(destStops)
	originAnchor := &originStops[0]
	destAnchor := &destStops[0]

	direct := findDirect(p.snap, originIDs, destIDs)
	transfers := findTransfers(p.snap, originIDs, destIDs, originAnchor, destAnchor, p.cfg)

	advice := <-adviceCh
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := rank(direct, transfers, advice, p.cfg)
	log.Printf("search %s: %q -> %q strategy=%s results=%d in %s",
		searchID, originText, destinationText, advice.Strategy, len(results), time.Since(started).Round(time.Millisecond))

	if p.Metrics != nil {
		p.Metrics.ResultsReturned.Observe(float64(len(results)))
		if len(results) == 0 {
			p.Metrics.EmptySearches.Inc()
		}
	}
	return results, nil
}

// consult asks the advisor for a strategy, downgrading every failure to
// standard. Matching never waits on this beyond the ranking join.
func (p *Planner) consult(ctx context.Context, originText, destinationText string) advisory.Advice {
	names := make([]string, 0, p.snap.StopCount())
	for _, s := range p.snap.Stops() {
		names = append(names, s.Name)
	}
	advice, err := p.advisor.Suggest(ctx, originText, destinationText, names)
	if err != nil {
		log.Printf("advisory unavailable, using standard strategy: %v", err)
		if p.Metrics != nil {
			p.Metrics.AdvisoryFallbacks.Inc()
		}
		return advisory.Standard()
	}
	return advice
}

// empty is the "normal miss" return: an allocated empty slice so callers
// and JSON encoders see [] rather than null.
func (p *Planner) empty() []SearchResult {
	if p.Metrics != nil {
		p.Metrics.EmptySearches.Inc()
	}
	return []SearchResult{}
}
