package repository

import (
	"hackathon_judging_backend/internal/model"

	"gorm.io/gorm"
)

type HackathonRepository struct {
	DB *gorm.DB
}

func NewHackathonRepository(db *gorm.DB) *HackathonRepository {
	return &HackathonRepository{DB: db}
}

func (r *HackathonRepository) FindByID(id uint) (*model.Hackathon, error) {
	var h model.Hackathon
	if err := r.DB.First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}
