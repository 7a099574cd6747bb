package service

import "math"

// TeamResult is the aggregate of all stored score entries for one team. It is
// derived on every read and never stored.
type TeamResult struct {
	TeamID           uint    `json:"teamId"`
	TeamNumber       int     `json:"teamNumber"`
	TeamName         string  `json:"teamName"`
	TotalScore       int     `json:"totalScore"`
	AverageStars     float64 `json:"averageStars"`
	EvaluationsCount int     `json:"evaluationsCount"`
}

// AggregationService recomputes team totals from the raw committed entries on
// every call. Entry volume is judges x teams x criteria, so the O(entries)
// walk is cheap and there is no cached running total to drift.
type AggregationService struct {
	Teams  TeamStore
	Scores ScoreStore
}

func NewAggregationService(teams TeamStore, scores ScoreStore) *AggregationService {
	return &AggregationService{Teams: teams, Scores: scores}
}

// ComputeTeamResults returns one TeamResult per team of the hackathon, in
// team-number order. Teams without any entries are included with zeros; a
// team not yet judged is a visible state, not an error.
//
// averageStars normalizes each entry back to the five-star scale
// (points/maxScore*5) before averaging, so criteria with different maxScore
// weigh equally instead of high-ceiling criteria dominating.
func (s *AggregationService) ComputeTeamResults(hackathonID uint) ([]TeamResult, error) {
	teams, err := s.Teams.ListByHackathon(hackathonID)
	if err != nil {
		return nil, err
	}
	entries, err := s.Scores.ListByHackathon(hackathonID)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		total    int
		starsSum float64
		count    int
	}
	buckets := make(map[uint]*bucket, len(teams))
	for _, entry := range entries {
		b, ok := buckets[entry.TeamID]
		if !ok {
			b = &bucket{}
			buckets[entry.TeamID] = b
		}
		b.total += entry.Points
		if entry.MaxScore > 0 {
			b.starsSum += float64(entry.Points) / float64(entry.MaxScore) * 5
		}
		b.count++
	}

	results := make([]TeamResult, 0, len(teams))
	for _, team := range teams {
		result := TeamResult{
			TeamID:     team.ID,
			TeamNumber: team.TeamNumber,
			TeamName:   team.Name,
		}
		if b, ok := buckets[team.ID]; ok && b.count > 0 {
			result.TotalScore = b.total
			result.AverageStars = math.Round(b.starsSum/float64(b.count)*100) / 100
			result.EvaluationsCount = b.count
		}
		results = append(results, result)
	}
	return results, nil
}
