package calculator

import "ProposalEngine/internal/model"

// GrowthOfDollar returns the cumulative value of $1 invested one month before
// the first return. The result has len(series)+1 points; it is empty for an
// empty series. A malformed first date leaves the baseline date empty.
func GrowthOfDollar(series model.ReturnSeries) []model.GrowthPoint {
	if len(series) == 0 {
		return []model.GrowthPoint{}
	}
	baseline, _ := model.PrevMonth(series[0].Date)

	points := make([]model.GrowthPoint, 0, len(series)+1)
	points = append(points, model.GrowthPoint{Date: baseline, Value: 1})
	wealth := 1.0
	for _, r := range series {
		wealth *= 1 + r.Value
		points = append(points, model.GrowthPoint{Date: r.Date, Value: wealth})
	}
	return points
}
