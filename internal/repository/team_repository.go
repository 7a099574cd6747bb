package repository

import (
	"hackathon_judging_backend/internal/model"

	"gorm.io/gorm"
)

type TeamRepository struct {
	DB *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{DB: db}
}

func (r *TeamRepository) FindByID(id uint) (*model.Team, error) {
	var t model.Team
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepository) ListByHackathon(hackathonID uint) ([]model.Team, error) {
	var teams []model.Team
	err := r.DB.Where("hackathon_id = ?", hackathonID).Order("team_number asc").Find(&teams).Error
	return teams, err
}

func (r *TeamRepository) CountByHackathon(hackathonID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Team{}).Where("hackathon_id = ?", hackathonID).Count(&count).Error
	return count, err
}
