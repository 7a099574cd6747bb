package repository

import (
	"hackathon_judging_backend/internal/model"

	"gorm.io/gorm"
)

type JudgeRepository struct {
	DB *gorm.DB
}

func NewJudgeRepository(db *gorm.DB) *JudgeRepository {
	return &JudgeRepository{DB: db}
}

// FindActiveByUser resolves the acting user's judge assignment for a
// hackathon. gorm.ErrRecordNotFound means the actor is not an assigned,
// active judge there.
func (r *JudgeRepository) FindActiveByUser(userID, hackathonID uint) (*model.Judge, error) {
	var j model.Judge
	err := r.DB.Where("user_id = ? AND hackathon_id = ? AND is_active = ?", userID, hackathonID, true).
		First(&j).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JudgeRepository) ListByHackathon(hackathonID uint) ([]model.Judge, error) {
	var judges []model.Judge
	err := r.DB.Preload("User").Where("hackathon_id = ?", hackathonID).
		Order("id asc").Find(&judges).Error
	return judges, err
}
