package repository

import (
	"hackathon_judging_backend/internal/model"

	"gorm.io/gorm"
)

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

// Replace swaps one judge's full score set for one team inside a single
// transaction. Either all prior rows are gone and the new set is in, or the
// transaction rolls back and the prior rows stay untouched. The unique index
// on (judge_id, team_id, criterion_id, hackathon_id) serializes two racing
// resubmissions from the same judge.
func (r *ScoreRepository) Replace(judgeID, teamID, hackathonID uint, entries []model.ScoreEntry) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("judge_id = ? AND team_id = ? AND hackathon_id = ?", judgeID, teamID, hackathonID).
			Delete(&model.ScoreEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

func (r *ScoreRepository) ListByHackathon(hackathonID uint) ([]model.ScoreEntry, error) {
	var entries []model.ScoreEntry
	err := r.DB.Where("hackathon_id = ?", hackathonID).Find(&entries).Error
	return entries, err
}

func (r *ScoreRepository) ListByJudge(judgeID, hackathonID uint) ([]model.ScoreEntry, error) {
	var entries []model.ScoreEntry
	err := r.DB.Where("judge_id = ? AND hackathon_id = ?", judgeID, hackathonID).Find(&entries).Error
	return entries, err
}
