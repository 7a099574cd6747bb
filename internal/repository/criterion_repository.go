package repository

import (
	"hackathon_judging_backend/internal/model"

	"gorm.io/gorm"
)

type CriterionRepository struct {
	DB *gorm.DB
}

func NewCriterionRepository(db *gorm.DB) *CriterionRepository {
	return &CriterionRepository{DB: db}
}

func (r *CriterionRepository) ListActiveByHackathon(hackathonID uint) ([]model.Criterion, error) {
	var criteria []model.Criterion
	err := r.DB.Where("hackathon_id = ? AND is_active = ?", hackathonID, true).
		Order("id asc").Find(&criteria).Error
	return criteria, err
}
