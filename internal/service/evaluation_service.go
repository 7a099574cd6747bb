package service

import (
	"errors"
	"math"

	"hackathon_judging_backend/internal/model"
	"hackathon_judging_backend/internal/util"

	"gorm.io/gorm"
)

// EvaluationService accepts one judge's complete evaluation of one team and
// persists it as an atomic replacement of any prior submission.
type EvaluationService struct {
	Hackathons HackathonStore
	Judges     JudgeStore
	Teams      TeamStore
	Criteria   CriterionStore
	Scores     ScoreStore
}

func NewEvaluationService(hackathons HackathonStore, judges JudgeStore, teams TeamStore, criteria CriterionStore, scores ScoreStore) *EvaluationService {
	return &EvaluationService{
		Hackathons: hackathons,
		Judges:     judges,
		Teams:      teams,
		Criteria:   criteria,
		Scores:     scores,
	}
}

// PointsForStars converts a 1-5 star rating to criterion points, rounding
// half away from zero. For stars in [1,5] and maxScore > 0 the result stays
// within [0, maxScore] and is non-decreasing in stars.
func PointsForStars(stars, maxScore int) int {
	return int(math.Round(float64(stars) / 5.0 * float64(maxScore)))
}

// Submit validates and stores starsByCriterion as the judge's full score set
// for the team. All validation happens before any write; the write itself is
// delete-then-insert in one transaction, so resubmitting identical input is
// idempotent and resubmitting different input fully supersedes the old set.
// Returns the number of entries saved.
func (s *EvaluationService) Submit(userID, hackathonID, teamID uint, starsByCriterion map[uint]int) (int, error) {
	hackathon, err := s.Hackathons.FindByID(hackathonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, util.ErrHackathonNotFound
		}
		return 0, err
	}

	judge, err := s.Judges.FindActiveByUser(userID, hackathonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, util.ErrJudgeNotAuthorized
		}
		return 0, err
	}

	if !hackathon.EvaluationOpen {
		return 0, util.ErrEvaluationClosed
	}

	team, err := s.Teams.FindByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, util.ErrTeamNotFound
		}
		return 0, err
	}
	if team.HackathonID != hackathonID {
		return 0, util.ErrTeamNotFound
	}

	criteria, err := s.Criteria.ListActiveByHackathon(hackathonID)
	if err != nil {
		return 0, err
	}
	if len(criteria) == 0 {
		return 0, util.ErrNoCriteria
	}

	entries := make([]model.ScoreEntry, 0, len(criteria))
	for _, criterion := range criteria {
		stars, ok := starsByCriterion[criterion.ID]
		if !ok {
			return 0, util.ErrMissingCriteriaScore
		}
		if stars < 1 || stars > 5 {
			return 0, util.ErrScoreOutOfRange
		}
		entries = append(entries, model.ScoreEntry{
			JudgeID:     judge.ID,
			TeamID:      team.ID,
			CriterionID: criterion.ID,
			HackathonID: hackathonID,
			Stars:       stars,
			Points:      PointsForStars(stars, criterion.MaxScore),
			MaxScore:    criterion.MaxScore,
		})
	}

	if err := s.Scores.Replace(judge.ID, team.ID, hackathonID, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}
