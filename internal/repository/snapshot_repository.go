package repository

import (
	"hackathon_judging_backend/internal/model"

	"gorm.io/gorm"
)

type SnapshotRepository struct {
	DB *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{DB: db}
}

func (r *SnapshotRepository) Create(snapshot *model.ResultSnapshot) error {
	return r.DB.Create(snapshot).Error
}

func (r *SnapshotRepository) List() ([]model.SnapshotSummary, error) {
	var summaries []model.SnapshotSummary
	err := r.DB.Model(&model.ResultSnapshot{}).
		Select("id, hackathon_id, name, created_at").
		Order("created_at desc").
		Scan(&summaries).Error
	return summaries, err
}

func (r *SnapshotRepository) FindByID(id string) (*model.ResultSnapshot, error) {
	var s model.ResultSnapshot
	if err := r.DB.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
