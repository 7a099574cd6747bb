package service

import "sort"

// RankedResult is a TeamResult with its leaderboard position.
type RankedResult struct {
	TeamResult
	Rank     int  `json:"rank"`
	IsWinner bool `json:"isWinner"`
}

// RankingService orders team results into a deterministic leaderboard.
// Primary key totalScore descending, ties broken by ascending teamNumber.
// Ranks are positional: tied totals receive distinct consecutive ranks in
// tie-break order.
type RankingService struct {
	// WinnerCount is how many top teams get the isWinner flag, matching the
	// platform's winner/top-3 certificate eligibility. Values below 1 mean 1.
	WinnerCount int
}

func NewRankingService(winnerCount int) *RankingService {
	if winnerCount < 1 {
		winnerCount = 1
	}
	return &RankingService{WinnerCount: winnerCount}
}

func (s *RankingService) Rank(results []TeamResult) []RankedResult {
	ordered := make([]TeamResult, len(results))
	copy(ordered, results)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].TotalScore != ordered[j].TotalScore {
			return ordered[i].TotalScore > ordered[j].TotalScore
		}
		return ordered[i].TeamNumber < ordered[j].TeamNumber
	})

	ranked := make([]RankedResult, len(ordered))
	for i, result := range ordered {
		ranked[i] = RankedResult{
			TeamResult: result,
			Rank:       i + 1,
			IsWinner:   i+1 <= s.WinnerCount,
		}
	}
	return ranked
}
