package util

import "errors"

var (
	ErrJudgeNotAuthorized   = errors.New("judge not found, inactive, or not assigned to this hackathon")
	ErrEvaluationClosed     = errors.New("evaluation window is closed for this hackathon")
	ErrMissingCriteriaScore = errors.New("submission is missing a score for one or more active criteria")
	ErrScoreOutOfRange      = errors.New("star rating must be an integer between 1 and 5")
	ErrHackathonNotFound    = errors.New("hackathon not found")
	ErrTeamNotFound         = errors.New("team not found")
	ErrNoCriteria           = errors.New("hackathon has no active criteria")
	ErrSnapshotNotFound     = errors.New("snapshot not found")
	ErrStorageUnavailable   = errors.New("object storage is not configured")
)
