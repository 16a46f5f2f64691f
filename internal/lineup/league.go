package lineup

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexbanham/fantasyapp-sub005/pkg/logger"
)

// leagueWorkers bounds concurrent per-team computations in a league report.
const leagueWorkers = 8

// TeamRoster is one team's roster for the week under report.
type TeamRoster struct {
	TeamID string         `json:"team_id"`
	Roster []RosterPlayer `json:"roster"`
}

// TeamEfficiency is one team's efficiency report inside a league report.
type TeamEfficiency struct {
	TeamID string            `json:"team_id"`
	Report *EfficiencyReport `json:"report"`
}

// LeagueReport ranks every team in a league by lineup efficiency for a
// single week.
type LeagueReport struct {
	Teams []TeamEfficiency `json:"teams"`
}

// ComputeLeagueReport computes each team's efficiency report against the
// shared slot model and returns teams ordered best-to-worst by efficiency
// (ties by team ID). Teams are processed concurrently; the engine holds no
// shared mutable state, so the only coordination needed is the result
// slice, which each worker writes at its own index.
func ComputeLeagueReport(ctx context.Context, teams []TeamRoster, model *SlotModel) (*LeagueReport, error) {
	if model == nil {
		return nil, invalidSlotModel("nil slot model")
	}

	start := time.Now()
	results := make([]TeamEfficiency, len(teams))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(leagueWorkers)
	for i := range teams {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := ComputeEfficiency(teams[i].Roster, model)
			if err != nil {
				return err
			}
			results[i] = TeamEfficiency{TeamID: teams[i].TeamID, Report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(a, b int) bool {
		if results[a].Report.Efficiency != results[b].Report.Efficiency {
			return results[a].Report.Efficiency > results[b].Report.Efficiency
		}
		return results[a].TeamID < results[b].TeamID
	})

	logger.WithComponent("lineup_engine").WithField("teams", len(teams)).
		WithField("duration_ms", time.Since(start).Milliseconds()).
		Debug("League efficiency report computed")

	return &LeagueReport{Teams: results}, nil
}
