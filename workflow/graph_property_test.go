package workflow

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/voyago/tripcost/agent"
	"github.com/voyago/tripcost/types"
)

var propertyCities = []string{
	"Galle", "Colombo", "Tokyo", "Osaka", "New York", "Los Angeles",
	"Paris", "Nice", "London", "Bangkok", "Sydney", "Nowhereville",
}

// TestGraphInvariantsHold runs the full pipeline over random requests and
// checks the invariants that must survive every routing decision and every
// partial failure.
func TestGraphInvariantsHold(t *testing.T) {
	f := newGraphFixture(t)

	rapid.Check(t, func(t *rapid.T) {
		origin := rapid.SampledFrom(propertyCities).Draw(t, "origin")
		destination := rapid.SampledFrom(propertyCities).Draw(t, "destination")
		vibe := rapid.SampledFrom(types.Vibes).Draw(t, "vibe")
		month := time.Month(rapid.IntRange(1, 12).Draw(t, "month"))
		nights := rapid.IntRange(1, 14).Draw(t, "nights")
		travelers := rapid.IntRange(1, 6).Draw(t, "travelers")

		start := types.NewDate(2026, month, 5)
		req := &types.TravelRequest{
			Origin:      origin,
			Destination: destination,
			StartDate:   start,
			ReturnDate:  start.AddDays(nights),
			Travelers:   travelers,
			Vibe:        vibe,
		}

		state := f.run(req)
		resp := AssembleResponse(state, "USD")

		// Total cost is always the arithmetic sum of the six categories.
		sum := resp.CostBreakdown.Flights + resp.CostBreakdown.Accommodation +
			resp.CostBreakdown.Transportation + resp.CostBreakdown.Activities +
			resp.CostBreakdown.Food + resp.CostBreakdown.Miscellaneous
		if resp.TotalCost != sum {
			t.Fatalf("total_cost %v != category sum %v", resp.TotalCost, sum)
		}

		// A skipped flight search leaves the flights slot empty and absent
		// from the completed list.
		if state.SkipFlightSearch {
			if len(resp.Flights) != 0 {
				t.Fatalf("flights populated despite skip_flight_search")
			}
			if state.Completed(agent.NameFlightSearch) {
				t.Fatalf("flight_search completed despite skip_flight_search")
			}
		}

		// Skipping flights implies a domestic classification.
		if state.SkipFlightSearch && !state.IsDomesticTravel {
			t.Fatalf("skip_flight_search set on a non-domestic trip")
		}

		// The terminal step always runs; the response always exists.
		if !state.Completed(StepFinalize) {
			t.Fatalf("finalize did not run")
		}
		if resp.RequestID == "" {
			t.Fatalf("missing request id")
		}
	})
}

// TestGraphThresholdFlipsOnlySkipDecision checks the threshold boundary:
// with identical inputs except the route distance moving across the ground
// threshold, exactly the skip decision flips.
func TestGraphThresholdFlipsOnlySkipDecision(t *testing.T) {
	// Tokyo→Osaka sits under Japan's threshold, Tokyo→Kyoto too; use a
	// within-country long haul for the far side.
	f := newGraphFixture(t)

	near := f.run(beachRequest("Tokyo", "Osaka"))
	far := f.run(beachRequest("New York", "Los Angeles"))

	if !near.IsDomesticTravel || !far.IsDomesticTravel {
		t.Fatalf("both routes must classify as domestic")
	}
	if !near.SkipFlightSearch {
		t.Fatalf("short domestic route should skip flight search")
	}
	if far.SkipFlightSearch {
		t.Fatalf("long domestic route should run flight search")
	}
	if len(far.Flights) == 0 {
		t.Fatalf("long domestic route should have flight options")
	}
}
