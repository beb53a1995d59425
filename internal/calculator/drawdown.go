package calculator

import (
	"sort"

	"ProposalEngine/internal/model"
)

// MaxDrawdowns is how many episodes a report keeps.
const MaxDrawdowns = 3

// Drawdowns walks the wealth curve (starting at 1.0 one month before the
// first return) and returns the worst episodes, most negative first, at most
// limit of them.
//
// An episode opens when wealth falls below the running peak, tracks its
// deepest point, and closes on the first month wealth exceeds the peak; that
// month is the recovery date. A month that only matches the peak neither
// recovers nor opens an episode. An episode still open at the end of the series
// is kept with a nil recovery date.
func Drawdowns(series model.ReturnSeries, limit int) []model.Drawdown {
	episodes := AllDrawdowns(series)
	sort.SliceStable(episodes, func(i, j int) bool {
		return episodes[i].Drawdown < episodes[j].Drawdown
	})
	if limit >= 0 && len(episodes) > limit {
		episodes = episodes[:limit]
	}
	return episodes
}

// AllDrawdowns returns every episode in chronological order.
func AllDrawdowns(series model.ReturnSeries) []model.Drawdown {
	curve := GrowthOfDollar(series)
	episodes := []model.Drawdown{}
	if len(curve) == 0 {
		return episodes
	}

	peak, peakDate := curve[0].Value, curve[0].Date
	var open *model.Drawdown
	for _, p := range curve[1:] {
		if p.Value > peak {
			if open != nil {
				recovery := p.Date
				open.RecoveryDate = &recovery
				episodes = append(episodes, *open)
				open = nil
			}
			peak, peakDate = p.Value, p.Date
			continue
		}
		if p.Value == peak {
			continue
		}

		decline := p.Value/peak - 1
		if open == nil {
			open = &model.Drawdown{PeakDate: peakDate, TroughDate: p.Date, Drawdown: decline}
		} else if decline < open.Drawdown {
			open.TroughDate = p.Date
			open.Drawdown = decline
		}
	}
	if open != nil {
		episodes = append(episodes, *open)
	}
	return episodes
}
