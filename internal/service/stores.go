package service

import "hackathon_judging_backend/internal/model"

// Store interfaces are declared on the consumer side so services can be
// exercised against in-memory fakes; internal/repository provides the GORM
// implementations.

type HackathonStore interface {
	FindByID(id uint) (*model.Hackathon, error)
}

type TeamStore interface {
	FindByID(id uint) (*model.Team, error)
	ListByHackathon(hackathonID uint) ([]model.Team, error)
	CountByHackathon(hackathonID uint) (int64, error)
}

type CriterionStore interface {
	ListActiveByHackathon(hackathonID uint) ([]model.Criterion, error)
}

type JudgeStore interface {
	FindActiveByUser(userID, hackathonID uint) (*model.Judge, error)
	ListByHackathon(hackathonID uint) ([]model.Judge, error)
}

type ScoreStore interface {
	Replace(judgeID, teamID, hackathonID uint, entries []model.ScoreEntry) error
	ListByHackathon(hackathonID uint) ([]model.ScoreEntry, error)
	ListByJudge(judgeID, hackathonID uint) ([]model.ScoreEntry, error)
}

type SnapshotStore interface {
	Create(snapshot *model.ResultSnapshot) error
	List() ([]model.SnapshotSummary, error)
	FindByID(id string) (*model.ResultSnapshot, error)
}
